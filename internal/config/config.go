// Package config provides configuration management for the ClipForge Agent.
// Configuration is loaded from environment variables with sensible defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/adrg/xdg"
)

const (
	// Default values
	DefaultPort        = 8765
	DefaultLogLevel    = "info"
	DefaultAppDirName  = "clipforge"
	DefaultFrontendURL = "http://127.0.0.1:1420"

	// Environment variable names
	EnvPort        = "CLIPFORGE_PORT"
	EnvLogLevel    = "CLIPFORGE_LOG_LEVEL"
	EnvDataDir     = "CLIPFORGE_DATA_DIR"
	EnvHeadless    = "CLIPFORGE_HEADLESS"
	EnvFFprobe     = "CLIPFORGE_FFPROBE"
	EnvFrontendURL = "CLIPFORGE_FRONTEND_URL"

	// Database filename
	DBFilename = "clipforge.db"
)

// Config defines the application configuration interface
type Config interface {
	Port() int
	LogLevel() string
	DataDir() string
	DBPath() string
	Headless() bool
	FFprobePath() string
	FrontendURL() string
}

// EnvConfig reads configuration from environment variables
type EnvConfig struct {
	port        int
	logLevel    string
	dataDir     string
	headless    bool
	ffprobePath string
	frontendURL string
}

// New creates a new EnvConfig with defaults and environment variable overrides
func New() (*EnvConfig, error) {
	cfg := &EnvConfig{
		port:        DefaultPort,
		logLevel:    DefaultLogLevel,
		dataDir:     defaultDataDir(),
		frontendURL: DefaultFrontendURL,
	}

	// Override port from environment
	if p := os.Getenv(EnvPort); p != "" {
		port, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", EnvPort, err)
		}
		if port < 1 || port > 65535 {
			return nil, fmt.Errorf("invalid %s: port must be between 1 and 65535", EnvPort)
		}
		cfg.port = port
	}

	// Override log level from environment
	if ll := os.Getenv(EnvLogLevel); ll != "" {
		cfg.logLevel = ll
	}

	// Override data directory from environment
	if dd := os.Getenv(EnvDataDir); dd != "" {
		cfg.dataDir = dd
	}

	if h := os.Getenv(EnvHeadless); h != "" {
		headless, err := strconv.ParseBool(h)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", EnvHeadless, err)
		}
		cfg.headless = headless
	}

	cfg.ffprobePath = os.Getenv(EnvFFprobe)

	if fu := os.Getenv(EnvFrontendURL); fu != "" {
		cfg.frontendURL = fu
	}

	return cfg, nil
}

// Port returns the HTTP server port
func (c *EnvConfig) Port() int {
	return c.port
}

// LogLevel returns the log level (debug, info, warn, error)
func (c *EnvConfig) LogLevel() string {
	return c.logLevel
}

// DataDir returns the data directory path
func (c *EnvConfig) DataDir() string {
	return c.dataDir
}

// DBPath returns the full path to the SQLite database file
func (c *EnvConfig) DBPath() string {
	return filepath.Join(c.dataDir, DBFilename)
}

// Headless reports whether the system tray should be skipped
func (c *EnvConfig) Headless() bool {
	return c.headless
}

// FFprobePath returns the ffprobe binary path, or empty when probing
// should stay on the stub prober
func (c *EnvConfig) FFprobePath() string {
	return c.ffprobePath
}

// FrontendURL returns the URL the tray "Open" action points at
func (c *EnvConfig) FrontendURL() string {
	return c.frontendURL
}

// defaultDataDir returns the platform-conventional per-application data
// directory
func defaultDataDir() string {
	return filepath.Join(xdg.DataHome, DefaultAppDirName)
}

// Version information (set at build time via ldflags)
var (
	Version   = "0.1.0"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

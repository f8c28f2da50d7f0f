package config

import (
	"os"
	"testing"
)

func TestPort_Default(t *testing.T) {
	os.Unsetenv(EnvPort)

	cfg, err := New()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port() != DefaultPort {
		t.Errorf("default Port = %d, want %d", cfg.Port(), DefaultPort)
	}
}

func TestPort_FromEnv(t *testing.T) {
	os.Setenv(EnvPort, "9900")
	defer os.Unsetenv(EnvPort)

	cfg, err := New()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port() != 9900 {
		t.Errorf("Port = %d, want 9900", cfg.Port())
	}
}

func TestPort_Invalid(t *testing.T) {
	os.Setenv(EnvPort, "not-a-port")
	defer os.Unsetenv(EnvPort)

	if _, err := New(); err == nil {
		t.Fatal("expected error for non-numeric port")
	}
}

func TestPort_OutOfRange(t *testing.T) {
	os.Setenv(EnvPort, "70000")
	defer os.Unsetenv(EnvPort)

	if _, err := New(); err == nil {
		t.Fatal("expected error for out-of-range port")
	}
}

func TestDataDir_FromEnv(t *testing.T) {
	os.Setenv(EnvDataDir, "/tmp/clipforge-test")
	defer os.Unsetenv(EnvDataDir)

	cfg, err := New()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.DataDir() != "/tmp/clipforge-test" {
		t.Errorf("DataDir = %q, want %q", cfg.DataDir(), "/tmp/clipforge-test")
	}
	if cfg.DBPath() != "/tmp/clipforge-test/"+DBFilename {
		t.Errorf("DBPath = %q, want under data dir", cfg.DBPath())
	}
}

func TestHeadless_Default(t *testing.T) {
	os.Unsetenv(EnvHeadless)

	cfg, err := New()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Headless() {
		t.Error("default Headless = true, want false")
	}
}

func TestHeadless_FromEnv(t *testing.T) {
	os.Setenv(EnvHeadless, "true")
	defer os.Unsetenv(EnvHeadless)

	cfg, err := New()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cfg.Headless() {
		t.Error("Headless = false, want true")
	}
}

func TestHeadless_Invalid(t *testing.T) {
	os.Setenv(EnvHeadless, "maybe")
	defer os.Unsetenv(EnvHeadless)

	if _, err := New(); err == nil {
		t.Fatal("expected error for invalid headless value")
	}
}

func TestFFprobePath_Default(t *testing.T) {
	os.Unsetenv(EnvFFprobe)

	cfg, err := New()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.FFprobePath() != "" {
		t.Errorf("default FFprobePath = %q, want empty", cfg.FFprobePath())
	}
}

func TestFrontendURL_FromEnv(t *testing.T) {
	os.Setenv(EnvFrontendURL, "http://127.0.0.1:5173")
	defer os.Unsetenv(EnvFrontendURL)

	cfg, err := New()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.FrontendURL() != "http://127.0.0.1:5173" {
		t.Errorf("FrontendURL = %q, want %q", cfg.FrontendURL(), "http://127.0.0.1:5173")
	}
}

package media

import (
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"strconv"
	"strings"
)

// Prober reads duration metadata from an audio file.
type Prober interface {
	Probe(ctx context.Context, filePath string) (*ProbeResult, error)
}

type ProbeResult struct {
	Duration float64
}

// StubProber returns the zero-duration sentinel without touching the
// filesystem. It is the default until real probing is configured.
type StubProber struct {
	logger *slog.Logger
}

func NewStubProber(logger *slog.Logger) *StubProber {
	return &StubProber{logger: logger}
}

func (p *StubProber) Probe(ctx context.Context, filePath string) (*ProbeResult, error) {
	p.logger.Debug("prober stub: probe requested (duration extraction not configured)",
		"path", filePath)
	return &ProbeResult{}, nil
}

// FFprobeProber shells out to ffprobe for container duration.
type FFprobeProber struct {
	binPath string
	logger  *slog.Logger
}

func NewFFprobeProber(binPath string, logger *slog.Logger) *FFprobeProber {
	return &FFprobeProber{binPath: binPath, logger: logger}
}

func (p *FFprobeProber) Probe(ctx context.Context, filePath string) (*ProbeResult, error) {
	cmd := exec.CommandContext(ctx, p.binPath,
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1",
		filePath,
	)

	out, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("ffprobe failed: %w", err)
	}

	duration, err := strconv.ParseFloat(strings.TrimSpace(string(out)), 64)
	if err != nil {
		return nil, fmt.Errorf("ffprobe returned unparseable duration: %w", err)
	}
	if duration < 0 {
		duration = 0
	}

	p.logger.Debug("probed audio duration", "path", filePath, "duration", duration)
	return &ProbeResult{Duration: duration}, nil
}

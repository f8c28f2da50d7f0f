// Package command implements the agent's command surface: the named
// operations the front end invokes over the local API. Every handler is
// stateless; platform access goes through the capability providers the
// Dispatcher is constructed with.
package command

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/clipforge/clipforge-agent/internal/host"
	"github.com/clipforge/clipforge-agent/internal/media"
	"github.com/clipforge/clipforge-agent/internal/store"
)

type Dispatcher struct {
	picker  host.Picker
	prober  media.Prober
	opener  host.Opener
	appDirs host.AppDirs
	repo    store.Repository
	logger  *slog.Logger
}

type DispatcherConfig struct {
	Picker     host.Picker
	Prober     media.Prober
	Opener     host.Opener
	AppDirs    host.AppDirs
	Repository store.Repository
	Logger     *slog.Logger
}

func NewDispatcher(cfg DispatcherConfig) *Dispatcher {
	return &Dispatcher{
		picker:  cfg.Picker,
		prober:  cfg.Prober,
		opener:  cfg.Opener,
		appDirs: cfg.AppDirs,
		repo:    cfg.Repository,
		logger:  cfg.Logger,
	}
}

// SelectAudioFile asks the picker for a file. The default picker never
// selects anything; the front end handles selection via drag-and-drop.
func (d *Dispatcher) SelectAudioFile(ctx context.Context) (*AudioFileRef, error) {
	path, ok, err := d.picker.PickAudioFile(ctx)
	if err != nil {
		return nil, HostCallError(err.Error(), err)
	}
	if !ok {
		return nil, nil
	}
	return d.GetAudioInfo(ctx, path)
}

// GetAudioInfo derives display metadata for a path. The path is not
// required to exist; the default prober performs no I/O and reports the
// zero-duration sentinel.
func (d *Dispatcher) GetAudioInfo(ctx context.Context, path string) (*AudioFileRef, error) {
	duration := 0.0
	if result, err := d.prober.Probe(ctx, path); err != nil {
		d.logger.Warn("audio probe failed, keeping zero duration",
			"path", path, "error", err)
	} else {
		duration = result.Duration
	}

	return &AudioFileRef{
		Path:     path,
		Duration: duration,
		Name:     stemName(path),
	}, nil
}

// ExportClip computes the output path for a clip export. No renderer is
// invoked and no file is written; the outcome is recorded in export
// history. The extension is a literal .mp4 regardless of the requested
// format, which the front end currently depends on.
func (d *Dispatcher) ExportClip(ctx context.Context, req ExportRequest) (*ExportOutcome, error) {
	outputPath := fmt.Sprintf("%s/clip_%s_%s.mp4", req.OutputDir, req.ClipID, req.Format)

	outcome := &ExportOutcome{
		Success:    true,
		OutputPath: outputPath,
	}

	record := &store.ExportRecord{
		ID:         store.NewID(),
		ClipID:     req.ClipID,
		Format:     req.Format,
		TemplateID: req.TemplateID,
		Quality:    req.Quality,
		OutputPath: outputPath,
		Success:    outcome.Success,
		CreatedAt:  time.Now().UTC(),
	}
	if err := d.repo.CreateExport(ctx, record); err != nil {
		d.logger.Warn("failed to record export history", "error", err, "clip_id", req.ClipID)
	}

	d.logger.Info("export requested", "clip_id", req.ClipID, "format", req.Format,
		"quality", req.Quality, "output_path", outputPath)
	return outcome, nil
}

// OpenURL hands the URL to the operating system's default handler. The
// URL shape is not validated; a bad value surfaces as a host error.
func (d *Dispatcher) OpenURL(ctx context.Context, url string) error {
	if err := d.opener.OpenURL(url); err != nil {
		return HostCallError(err.Error(), err)
	}
	return nil
}

// AppDataDir resolves the platform-conventional per-application data
// directory. The directory is not created.
func (d *Dispatcher) AppDataDir(ctx context.Context) (string, error) {
	dir, err := d.appDirs.AppDataDir()
	if err != nil {
		return "", HostCallError(err.Error(), err)
	}
	return dir, nil
}

// stemName returns the final path segment without its extension, or
// "Unknown" when the path has no usable segment.
func stemName(path string) string {
	base := filepath.Base(path)
	if base == "" || base == "." || base == ".." || base == "/" || base == string(filepath.Separator) {
		return "Unknown"
	}

	ext := filepath.Ext(base)
	if stem := strings.TrimSuffix(base, ext); stem != "" {
		return stem
	}
	// Dotfiles like ".config" have no separate extension.
	return base
}

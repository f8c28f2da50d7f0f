package api

import (
	"time"

	"github.com/clipforge/clipforge-agent/internal/store"
)

type HealthResponse struct {
	Status   string `json:"status"`
	Version  string `json:"version"`
	UptimeS  int64  `json:"uptime_s"`
	DeviceID string `json:"device_id"`
}

type StatusResponse struct {
	State        string          `json:"state"`
	ExportsCount int             `json:"exports_count"`
	LastExport   *ExportResponse `json:"last_export,omitempty"`
}

type GetAudioInfoRequest struct {
	Path string `json:"path"`
}

type OpenURLRequest struct {
	URL string `json:"url"`
}

type AppDataDirResponse struct {
	Path string `json:"path"`
}

type ExportResponse struct {
	ID         string `json:"id"`
	ClipID     string `json:"clip_id"`
	Format     string `json:"format"`
	TemplateID string `json:"template_id"`
	Quality    string `json:"quality"`
	OutputPath string `json:"output_path"`
	Success    bool   `json:"success"`
	Error      string `json:"error,omitempty"`
	CreatedAt  string `json:"created_at"`
}

type ExportsResponse struct {
	Exports []ExportResponse `json:"exports"`
}

type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

func ExportToResponse(e *store.ExportRecord) ExportResponse {
	return ExportResponse{
		ID:         e.ID,
		ClipID:     e.ClipID,
		Format:     e.Format,
		TemplateID: e.TemplateID,
		Quality:    e.Quality,
		OutputPath: e.OutputPath,
		Success:    e.Success,
		Error:      e.Error,
		CreatedAt:  e.CreatedAt.Format(time.RFC3339),
	}
}

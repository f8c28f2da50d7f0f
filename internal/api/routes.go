package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/clipforge/clipforge-agent/internal/command"
	"github.com/clipforge/clipforge-agent/internal/config"
)

func NewRouter(cfg ServerConfig) *chi.Mux {
	r := chi.NewRouter()

	r.Use(RequestIDMiddleware())
	r.Use(RecoveryMiddleware(cfg.Logger))
	r.Use(LoggingMiddleware(cfg.Logger))
	r.Use(CORSMiddleware())

	r.Get("/health", healthHandler(cfg))

	r.Group(func(r chi.Router) {
		r.Use(AuthMiddleware(cfg.Repository, cfg.Logger))

		r.Get("/status", statusHandler(cfg))

		r.Post("/commands/"+command.CmdSelectAudioFile, selectAudioFileHandler(cfg))
		r.Post("/commands/"+command.CmdGetAudioInfo, getAudioInfoHandler(cfg))
		r.Post("/commands/"+command.CmdExportClip, exportClipHandler(cfg))
		r.Post("/commands/"+command.CmdOpenURL, openURLHandler(cfg))
		r.Get("/commands/"+command.CmdGetAppDataDir, appDataDirHandler(cfg))

		r.Get("/exports", listExportsHandler(cfg))
		r.Get("/preview", previewHandler(cfg))
	})

	return r
}

func healthHandler(cfg ServerConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uptime := int64(time.Since(cfg.StartTime).Seconds())
		WriteJSON(w, http.StatusOK, HealthResponse{
			Status:   "ok",
			Version:  config.Version,
			UptimeS:  uptime,
			DeviceID: cfg.DeviceID,
		})
	}
}

func statusHandler(cfg ServerConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		count, err := cfg.Repository.CountExports(ctx)
		if err != nil {
			WriteError(w, http.StatusInternalServerError, "failed to count exports", "INTERNAL")
			return
		}

		resp := StatusResponse{
			State:        "idle",
			ExportsCount: count,
		}

		if recent, err := cfg.Repository.ListExports(ctx, 1); err == nil && len(recent) > 0 {
			last := ExportToResponse(recent[0])
			resp.LastExport = &last
		}

		WriteJSON(w, http.StatusOK, resp)
	}
}

// selectAudioFileHandler returns the picked file, or JSON null when
// nothing was selected.
func selectAudioFileHandler(cfg ServerConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ref, err := cfg.Dispatcher.SelectAudioFile(r.Context())
		if err != nil {
			WriteCommandError(w, err)
			return
		}
		WriteJSON(w, http.StatusOK, ref)
	}
}

func getAudioInfoHandler(cfg ServerConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req GetAudioInfoRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			WriteError(w, http.StatusBadRequest, "invalid request body", "VALIDATION")
			return
		}

		ref, err := cfg.Dispatcher.GetAudioInfo(r.Context(), req.Path)
		if err != nil {
			WriteCommandError(w, err)
			return
		}
		WriteJSON(w, http.StatusOK, ref)
	}
}

func exportClipHandler(cfg ServerConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req command.ExportRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			WriteError(w, http.StatusBadRequest, "invalid request body", "VALIDATION")
			return
		}

		outcome, err := cfg.Dispatcher.ExportClip(r.Context(), req)
		if err != nil {
			WriteCommandError(w, err)
			return
		}
		WriteJSON(w, http.StatusOK, outcome)
	}
}

func openURLHandler(cfg ServerConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req OpenURLRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			WriteError(w, http.StatusBadRequest, "invalid request body", "VALIDATION")
			return
		}

		if err := cfg.Dispatcher.OpenURL(r.Context(), req.URL); err != nil {
			WriteCommandError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func appDataDirHandler(cfg ServerConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dir, err := cfg.Dispatcher.AppDataDir(r.Context())
		if err != nil {
			WriteCommandError(w, err)
			return
		}
		WriteJSON(w, http.StatusOK, AppDataDirResponse{Path: dir})
	}
}

func listExportsHandler(cfg ServerConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		exports, err := cfg.Repository.ListExports(r.Context(), 50)
		if err != nil {
			WriteError(w, http.StatusInternalServerError, "failed to list exports", "INTERNAL")
			return
		}

		resp := ExportsResponse{Exports: make([]ExportResponse, len(exports))}
		for i, e := range exports {
			resp.Exports[i] = ExportToResponse(e)
		}
		WriteJSON(w, http.StatusOK, resp)
	}
}

func previewHandler(cfg ServerConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		path := r.URL.Query().Get("path")
		if path == "" {
			WriteError(w, http.StatusBadRequest, "path is required", "VALIDATION")
			return
		}

		if err := cfg.PreviewServer.ServeAudio(w, r, path); err != nil {
			cfg.Logger.Error("preview error", "error", err, "path", path)
		}
	}
}

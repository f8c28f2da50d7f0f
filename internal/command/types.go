package command

// Command names as exposed to the front end.
const (
	CmdSelectAudioFile = "select_audio_file"
	CmdGetAudioInfo    = "get_audio_info"
	CmdExportClip      = "export_clip"
	CmdOpenURL         = "open_url"
	CmdGetAppDataDir   = "get_app_data_dir"
)

// AudioFileRef describes an audio file handed to the front end. Name is
// derived from the path's final segment without extension. Duration is
// 0.0 when no prober is configured.
type AudioFileRef struct {
	Path     string  `json:"path"`
	Duration float64 `json:"duration"`
	Name     string  `json:"name"`
}

// ExportRequest carries the front end's export parameters. No field is
// validated against an allow-list.
type ExportRequest struct {
	ClipID     string `json:"clip_id"`
	Format     string `json:"format"`
	TemplateID string `json:"template_id"`
	OutputDir  string `json:"output_dir"`
	Quality    string `json:"quality"`
}

// ExportOutcome reports the result of an export. OutputPath is set on
// success, Error on failure.
type ExportOutcome struct {
	Success    bool   `json:"success"`
	OutputPath string `json:"output_path,omitempty"`
	Error      string `json:"error,omitempty"`
}

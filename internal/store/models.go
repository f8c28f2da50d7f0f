package store

import (
	"crypto/rand"
	"fmt"
	"time"
)

// ExportRecord is the persisted history entry for one export_clip call.
type ExportRecord struct {
	ID         string    `json:"id"`
	ClipID     string    `json:"clip_id"`
	Format     string    `json:"format"`
	TemplateID string    `json:"template_id"`
	Quality    string    `json:"quality"`
	OutputPath string    `json:"output_path"`
	Success    bool      `json:"success"`
	Error      string    `json:"error,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

type ConfigEntry struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

func NewID() string {
	b := make([]byte, 16)
	rand.Read(b)
	return fmt.Sprintf("%x-%x-%x-%x-%x", b[0:4], b[4:6], b[6:8], b[8:10], b[10:])
}

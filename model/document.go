package model

import (
	"time"
)

// Document represents a processed legal document
type Document struct {
	ID         string          `json:"id"`
	Filename   string          `json:"filename"`
	Tenant     string          `json:"tenant"`
	SourceType string          `json:"source_type"` // text, pdf, docx, txt
	TextLength int             `json:"text_length"`
	Status     string          `json:"status"` // pending, processing, completed, failed
	Text       string          `json:"-"`
	Result     *PipelineResult `json:"result,omitempty"`
	Risks      []RiskFinding   `json:"risks,omitempty"`
	ArchiveURL string          `json:"archive_url,omitempty"`
	ErrorMsg   string          `json:"error_msg,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// Document status constants
const (
	StatusPending    = "pending"
	StatusProcessing = "processing"
	StatusCompleted  = "completed"
	StatusFailed     = "failed"
)

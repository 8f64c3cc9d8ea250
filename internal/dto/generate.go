package dto

import (
	"time"

	"github.com/google/uuid"
)

// GenerateRequest triggers the preview engine for a prospect.
type GenerateRequest struct {
	ProspectID uuid.UUID  `json:"prospect_id"`
	CaptureID  *uuid.UUID `json:"capture_id"`
	Force      bool       `json:"force"`
}

// GenerateResult describes the generated (or already existing) preview.
type GenerateResult struct {
	AlreadyExists bool           `json:"already_exists,omitempty"`
	PreviewID     uuid.UUID      `json:"preview_id"`
	PreviewURL    string         `json:"preview_url"`
	TemplateUsed  string         `json:"template_used,omitempty"`
	Vertical      string         `json:"vertical,omitempty"`
	SubVertical   string         `json:"sub_vertical,omitempty"`
	Confidence    string         `json:"confidence,omitempty"`
	Reasoning     string         `json:"reasoning,omitempty"`
	ExpiresAt     time.Time      `json:"expires_at,omitzero"`
	InjectedData  map[string]any `json:"injected_data,omitempty"`
}

package entity

import (
	"time"

	"github.com/google/uuid"
)

// Preview review statuses.
const (
	ReviewStatusPending  = "pending"
	ReviewStatusApproved = "approved"
	ReviewStatusRejected = "rejected"
	ReviewStatusSent     = "sent"
	ReviewStatusExpired  = "expired"
)

// Preview is a generated redesign page for a prospect. The rendered HTML is
// persisted alongside the row so serving needs no extra storage hop.
type Preview struct {
	ID                 uuid.UUID      `json:"id"`
	ProspectID         uuid.UUID      `json:"prospect_id"`
	CaptureID          *uuid.UUID     `json:"capture_id"`
	TemplateSlug       string         `json:"template_slug"`
	InjectedData       map[string]any `json:"injected_data"`
	HTML               string         `json:"-"`
	PreviewURL         string         `json:"preview_url"`
	ExpiresAt          time.Time      `json:"expires_at"`
	ReviewStatus       string         `json:"review_status"`
	ReviewerNotes      *string        `json:"reviewer_notes"`
	ViewCount          int            `json:"view_count"`
	LastViewedAt       *time.Time     `json:"last_viewed_at"`
	ProspectClickedCTA bool           `json:"prospect_clicked_cta"`
	ApprovedAt         *time.Time     `json:"approved_at"`
	SentAt             *time.Time     `json:"sent_at"`
	CreatedAt          time.Time      `json:"created_at"`
}

// PreviewWithProspect is a preview row joined with its prospect's name, as
// the review queue and tracking paths need it.
type PreviewWithProspect struct {
	Preview
	BusinessName string `json:"business_name"`
}

package dto

import "github.com/google/uuid"

// Tracking events accepted from the preview page.
const (
	TrackEventView     = "view"
	TrackEventCTAClick = "cta_click"
)

// TrackRequest is a beacon from the tracking script embedded in previews.
type TrackRequest struct {
	PreviewID uuid.UUID `json:"preview_id"`
	Event     string    `json:"event"`
	Ref       string    `json:"ref"`
}

// Review actions accepted by the approve endpoint.
const (
	ReviewActionApprove  = "approve"
	ReviewActionReject   = "reject"
	ReviewActionMarkSent = "mark_sent"
)

// ApproveRequest records a reviewer's decision on a pending preview.
type ApproveRequest struct {
	PreviewID uuid.UUID `json:"preview_id"`
	Action    string    `json:"action"`
	Notes     *string   `json:"notes"`
}

// ApproveResult reports the outcome of a review action.
type ApproveResult struct {
	PreviewID  uuid.UUID `json:"preview_id"`
	NewStatus  string    `json:"new_status"`
	PreviewURL string    `json:"preview_url"`
}

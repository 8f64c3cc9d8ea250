package entity

import (
	"time"

	"github.com/google/uuid"
)

// Notification types surfaced on the dashboard.
const (
	NotificationPreviewReady    = "preview_ready"
	NotificationPreviewViewed   = "preview_viewed"
	NotificationCTAClicked      = "cta_clicked"
	NotificationMeetingBooked   = "meeting_booked"
	NotificationPaymentReceived = "payment_received"
)

// Notification is an operator-facing event line.
type Notification struct {
	ID         uuid.UUID  `json:"id"`
	Type       string     `json:"type"`
	ProspectID *uuid.UUID `json:"prospect_id"`
	PreviewID  *uuid.UUID `json:"preview_id"`
	Message    string     `json:"message"`
	IsRead     bool       `json:"is_read"`
	CreatedAt  time.Time  `json:"created_at"`
}

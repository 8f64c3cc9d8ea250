package entity

import (
	"time"

	"github.com/google/uuid"
)

// Prospect pipeline statuses, in funnel order.
const (
	ProspectStatusNew           = "new"
	ProspectStatusPreviewQueued = "preview_queued"
	ProspectStatusPreviewReady  = "preview_ready"
	ProspectStatusOutreachSent  = "outreach_sent"
	ProspectStatusReplied       = "replied"
	ProspectStatusMeetingBooked = "meeting_booked"
	ProspectStatusWon           = "won"
	ProspectStatusLost          = "lost"
)

// Prospect is a business in the outreach pipeline, keyed by website URL.
type Prospect struct {
	ID               uuid.UUID `json:"id"`
	WebsiteURL       string    `json:"website_url"`
	BusinessName     string    `json:"business_name"`
	Phone            *string   `json:"phone"`
	WhatsApp         *string   `json:"whatsapp"`
	Email            *string   `json:"email"`
	Address          *string   `json:"address"`
	DoctorName       *string   `json:"doctor_name"`
	GoogleRating     *float64  `json:"google_rating"`
	GoogleMapsURL    *string   `json:"google_maps_url"`
	Vertical         *string   `json:"vertical"`
	SubVertical      *string   `json:"sub_vertical"`
	WebsiteScore     *int      `json:"website_score"`
	OpportunityScore *int      `json:"opportunity_score"`
	Status           string    `json:"status"`
	Source           string    `json:"source"`
	Notes            *string   `json:"notes"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

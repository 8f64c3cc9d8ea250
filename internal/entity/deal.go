package entity

import (
	"time"

	"github.com/google/uuid"
)

// Deal statuses.
const (
	DealStatusOpen          = "open"
	DealStatusMeetingBooked = "meeting_booked"
	DealStatusWon           = "won"
	DealStatusLost          = "lost"
)

// Deal tracks the commercial side of a prospect: meetings and payment.
type Deal struct {
	ID                  uuid.UUID  `json:"id"`
	ProspectID          uuid.UUID  `json:"prospect_id"`
	Status              string     `json:"status"`
	AmountAED           *float64   `json:"amount_aed"`
	MeetingBooked       bool       `json:"meeting_booked"`
	MeetingAt           *time.Time `json:"meeting_at"`
	MeetingURL          *string    `json:"meeting_url"`
	StripePaymentIntent *string    `json:"stripe_payment_intent"`
	PaidAt              *time.Time `json:"paid_at"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
}

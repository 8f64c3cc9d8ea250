package dto

import "time"

// StripeEvent is the subset of a Stripe webhook payload the pipeline reads.
type StripeEvent struct {
	Type string `json:"type"`
	Data struct {
		Object StripePaymentIntent `json:"object"`
	} `json:"data"`
}

type StripePaymentIntent struct {
	ID       string            `json:"id"`
	Amount   int64             `json:"amount"`
	Metadata map[string]string `json:"metadata"`
}

// CalendlyEvent is the subset of a Calendly webhook payload the pipeline
// reads.
type CalendlyEvent struct {
	Event   string          `json:"event"`
	Payload CalendlyPayload `json:"payload"`
}

type CalendlyPayload struct {
	Email          string `json:"email"`
	Name           string `json:"name"`
	ScheduledEvent struct {
		StartTime time.Time `json:"start_time"`
	} `json:"scheduled_event"`
	EventDetail struct {
		URI string `json:"uri"`
	} `json:"event"`
}

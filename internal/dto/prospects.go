package dto

import "github.com/google/uuid"

// ProspectListFilter narrows the prospect list.
type ProspectListFilter struct {
	Status   string
	Vertical string
	Limit    int
	Offset   int
}

// ProspectUpdate carries the whitelisted patchable fields. Nil means leave
// the column untouched.
type ProspectUpdate struct {
	ID               uuid.UUID `json:"id"`
	Status           *string   `json:"status"`
	Notes            *string   `json:"notes"`
	Phone            *string   `json:"phone"`
	WhatsApp         *string   `json:"whatsapp"`
	Email            *string   `json:"email"`
	DoctorName       *string   `json:"doctor_name"`
	Address          *string   `json:"address"`
	WebsiteScore     *int      `json:"website_score"`
	OpportunityScore *int      `json:"opportunity_score"`
}

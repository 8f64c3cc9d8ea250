package entity

import (
	"time"

	"github.com/google/uuid"
)

// Template is a library entry mapping a slug to a template file on disk.
type Template struct {
	ID          uuid.UUID `json:"id"`
	Slug        string    `json:"slug"`
	Name        string    `json:"name"`
	Filename    string    `json:"filename"`
	Vertical    string    `json:"vertical"`
	SubVertical *string   `json:"sub_vertical"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

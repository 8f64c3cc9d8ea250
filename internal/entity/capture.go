package entity

import (
	"time"

	"github.com/google/uuid"
)

// Capture is one snapshot of a prospect's website: the raw scraped fields
// plus, once analysed, the model's template verdict.
type Capture struct {
	ID              uuid.UUID `json:"id"`
	ProspectID      uuid.UUID `json:"prospect_id"`
	PageURL         string    `json:"page_url"`
	PageTitle       string    `json:"page_title"`
	MetaDescription string    `json:"meta_description"`
	H1Text          string    `json:"h1_text"`
	H2Texts         []string  `json:"h2_texts"`
	LogoURL         *string   `json:"logo_url"`
	HeroImageURL    *string   `json:"hero_image_url"`
	ColorPalette    []string  `json:"color_palette"`
	FontFamilies    []string  `json:"font_families"`
	HasBooking      bool      `json:"has_booking"`
	HasWhatsApp     bool      `json:"has_whatsapp"`
	HasInstagram    bool      `json:"has_instagram"`
	ContactEmails   []string  `json:"contact_emails"`
	ContactPhones   []string  `json:"contact_phones"`
	PageContent     *string   `json:"page_content"`

	// Analysis verdict, filled by the generate pipeline.
	DetectedVertical     *string    `json:"detected_vertical"`
	DetectedSubVertical  *string    `json:"detected_sub_vertical"`
	RecommendedTemplate  *string    `json:"recommended_template"`
	WebsiteQualityScore  *int       `json:"website_quality_score"`
	AnalysisReasoning    *string    `json:"analysis_reasoning"`
	ExtractionConfidence *string    `json:"extraction_confidence"`
	AnalysedAt           *time.Time `json:"analysed_at"`

	CapturedAt time.Time `json:"captured_at"`
}

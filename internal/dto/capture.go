package dto

// CaptureRequest is the payload the Chrome extension posts after scraping a
// prospect's site. Everything beyond page_url is optional.
type CaptureRequest struct {
	PageURL         string   `json:"page_url"`
	PageTitle       string   `json:"page_title"`
	MetaDescription string   `json:"meta_description"`
	H1Text          string   `json:"h1_text"`
	H2Texts         []string `json:"h2_texts"`
	LogoURL         *string  `json:"logo_url"`
	HeroImageURL    *string  `json:"hero_image_url"`
	ColorPalette    []string `json:"color_palette"`
	FontFamilies    []string `json:"font_families"`
	HasBooking      bool     `json:"has_booking"`
	HasWhatsApp     bool     `json:"has_whatsapp"`
	HasInstagram    bool     `json:"has_instagram"`
	ContactEmails   []string `json:"contact_emails"`
	ContactPhones   []string `json:"contact_phones"`
	PageContent     *string  `json:"page_content"`

	// Manually provided by the operator in the extension popup.
	BusinessName  *string  `json:"business_name"`
	DoctorName    *string  `json:"doctor_name"`
	Address       *string  `json:"address"`
	GoogleRating  *float64 `json:"google_rating"`
	GoogleMapsURL *string  `json:"google_maps_url"`
}

// ScanRequest asks the server to fetch and scrape a URL itself, without the
// extension in the loop.
type ScanRequest struct {
	URL string `json:"url"`
}

// CaptureResult reports the rows a capture ingest touched.
type CaptureResult struct {
	ProspectID   string `json:"prospect_id"`
	CaptureID    string `json:"capture_id"`
	BusinessName string `json:"business_name"`
}

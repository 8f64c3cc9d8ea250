package extract

// List caps keep the capture record small enough to ship to the LLM
// collaborators without truncation surprises.
const (
	maxColors  = 8
	maxFonts   = 4
	maxEmails  = 5
	maxPhones  = 5
	maxNames   = 5
	maxContent = 2000
)

// Capture is the structured record of everything scraped from a prospect's
// website. All list fields are deduplicated and capped; absent data is a nil
// pointer or empty slice, never an error.
type Capture struct {
	PageURL         string   `json:"page_url"`
	PageTitle       string   `json:"page_title"`
	MetaDescription string   `json:"meta_description"`
	H1Text          string   `json:"h1_text"`
	H2Texts         []string `json:"h2_texts"`
	LogoURL         *string  `json:"logo_url"`
	HeroImageURL    *string  `json:"hero_image_url"`
	ImageURLs       []string `json:"image_urls"`
	ColorPalette    []string `json:"color_palette"`
	FontFamilies    []string `json:"font_families"`
	HasBooking      bool     `json:"has_booking"`
	HasWhatsApp     bool     `json:"has_whatsapp"`
	HasInstagram    bool     `json:"has_instagram"`
	ContactEmails   []string `json:"contact_emails"`
	ContactPhones   []string `json:"contact_phones"`
	DoctorNames     []string `json:"doctor_names"`
	Address         *string  `json:"address"`
	BusinessName    *string  `json:"business_name"`
	GoogleMapsURL   *string  `json:"google_maps_url"`
	PageContent     *string  `json:"page_content"`
}

// Run executes every heuristic against the snapshot and merges the results.
// Each heuristic only reads the snapshot and writes its own field, so the
// order here carries no meaning.
func Run(p *Page) *Capture {
	headings := collectHeadings(p)

	c := &Capture{
		PageURL:         p.URL(),
		PageTitle:       collectTitle(p),
		MetaDescription: p.metaContent("description"),
		ImageURLs:       collectImages(p),
		ColorPalette:    collectColors(p),
		FontFamilies:    collectFonts(p),
		ContactEmails:   collectEmails(p),
		ContactPhones:   collectPhones(p),
		DoctorNames:     collectDoctorNames(p),
		Address:         collectAddress(p),
		BusinessName:    collectBusinessName(p),
		LogoURL:         collectLogo(p),
		HeroImageURL:    collectHeroImage(p),
		GoogleMapsURL:   collectMapsURL(p),
		PageContent:     collectContent(p),
	}

	for _, h := range headings {
		switch h.Tag {
		case "h1":
			if c.H1Text == "" {
				c.H1Text = h.Text
			}
		case "h2":
			c.H2Texts = append(c.H2Texts, h.Text)
		}
	}

	c.HasBooking = detectBooking(p)
	c.HasWhatsApp = detectWhatsApp(p)
	c.HasInstagram = detectInstagram(p)

	return c
}

// dedupeCap removes duplicates preserving first-seen order and truncates to
// the given cap. Comparison is exact; callers normalize beforehand.
func dedupeCap(values []string, cap int) []string {
	var out []string
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
		if cap > 0 && len(out) == cap {
			break
		}
	}
	return out
}

func strPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

package preview

import (
	"log"
	"strings"
	"time"
)

// GenerateParams bundles everything one preview generation needs. Data is
// consumed once and never mutated afterward.
type GenerateParams struct {
	TemplateFilename string
	Data             map[string]any
	PreviewID        string
	ProspectName     string
	ExpiresAt        time.Time
	BaseURL          string
	ColorPalette     []string
}

// Generator produces final preview HTML from a template and a data bundle.
type Generator struct {
	store *Store
}

// NewGenerator returns a Generator reading templates from the given store.
func NewGenerator(store *Store) *Generator {
	return &Generator{store: store}
}

// Generate runs the fixed pipeline: load template, inject tokens, apply
// brand colors, add banner, add tracking. Token injection runs before the
// color rewrite so injected literals are never re-templated; banner and
// tracking go last so they are never subject to substitution or remapping.
func (g *Generator) Generate(p GenerateParams) (string, error) {
	html, err := g.store.Load(p.TemplateFilename)
	if err != nil {
		return "", err
	}

	html = InjectData(html, p.Data)
	if unfilled := UnfilledTokens(html); len(unfilled) > 0 {
		log.Printf("preview=%s template=%s unfilled_tokens=%s", p.PreviewID, p.TemplateFilename, strings.Join(unfilled, ","))
	}

	html = ApplyBrandColors(html, p.ColorPalette)
	html = AddPreviewBanner(html, p.PreviewID, p.ProspectName, p.ExpiresAt)
	html = AddTracking(html, p.PreviewID, p.BaseURL)

	return html, nil
}

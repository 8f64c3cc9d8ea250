package extract

import (
	"strings"
)

// Organization-like schema.org types that carry the trading name.
var orgLDTypes = []string{
	"Organization", "LocalBusiness", "MedicalBusiness", "MedicalClinic",
	"Dentist", "Store", "Restaurant", "HealthAndBeautyBusiness",
}

// Title separators after which the page title stops naming the business.
var titleSeparators = []string{"|", " - ", "–", "—", "::"}

const maxBusinessNameLen = 80

// collectBusinessName resolves the trading name through an ordered cascade:
// social-share site name, structured-data organization name, first H1, then
// the document title truncated at its separator.
func collectBusinessName(p *Page) *string {
	strategies := []func(*Page) string{
		businessFromShareMeta,
		businessFromStructuredData,
		businessFromH1,
		businessFromTitle,
	}
	for _, strategy := range strategies {
		if name := strategy(p); name != "" {
			return strPtr(name)
		}
	}
	return nil
}

func businessFromShareMeta(p *Page) string {
	return p.metaContent("og:site_name")
}

func businessFromStructuredData(p *Page) string {
	for _, node := range p.jsonLD {
		for _, t := range orgLDTypes {
			if ldType(node, t) {
				if name := ldString(node, "name"); name != "" {
					return name
				}
			}
		}
	}
	return ""
}

func businessFromH1(p *Page) string {
	h1 := squashSpace(p.doc.Find("h1").First().Text())
	if len(h1) < 2 || len(h1) > maxBusinessNameLen {
		return ""
	}
	return h1
}

func businessFromTitle(p *Page) string {
	title := collectTitle(p)
	if title == "" {
		return ""
	}
	for _, sep := range titleSeparators {
		if before, _, found := strings.Cut(title, sep); found {
			title = before
			break
		}
	}
	return strings.TrimSpace(title)
}

package extract

import (
	"net/url"
	"strings"
)

// Place names that anchor a line of text as a UAE address.
var uaePlaceKeywords = []string{
	"dubai", "abu dhabi", "sharjah", "ajman", "fujairah", "ras al khaimah",
	"umm al quwain", "al ain", "uae", "united arab emirates", "deira",
	"jumeirah", "marina", "al barsha", "business bay", "sheikh zayed",
}

const (
	minAddressLen = 12
	maxAddressLen = 150
)

// collectAddress resolves the business address through an ordered cascade:
// structured-data postal address, then a UAE-looking text line, then the
// query of an embedded Google Maps iframe.
func collectAddress(p *Page) *string {
	strategies := []func(*Page) string{
		addressFromStructuredData,
		addressFromText,
		addressFromMapsEmbed,
	}
	for _, strategy := range strategies {
		if addr := strategy(p); addr != "" {
			return strPtr(addr)
		}
	}
	return nil
}

// addressFromStructuredData joins the components of a schema.org postal
// address in street-first order.
func addressFromStructuredData(p *Page) string {
	for _, node := range p.jsonLD {
		addr, ok := node["address"].(map[string]any)
		if !ok {
			if ldType(node, "PostalAddress") {
				addr = node
			} else {
				continue
			}
		}

		var parts []string
		for _, key := range []string{"streetAddress", "addressLocality", "addressRegion", "addressCountry"} {
			if v := ldString(addr, key); v != "" {
				parts = append(parts, v)
			}
		}
		if len(parts) > 0 {
			return strings.Join(parts, ", ")
		}
	}
	return ""
}

// addressFromText looks for a visible line naming a UAE place within a
// plausible address length.
func addressFromText(p *Page) string {
	for _, line := range strings.Split(p.doc.Find("body").Text(), "\n") {
		line = squashSpace(line)
		if len(line) < minAddressLen || len(line) > maxAddressLen {
			continue
		}
		lower := strings.ToLower(line)
		for _, kw := range uaePlaceKeywords {
			if strings.Contains(lower, kw) {
				return line
			}
		}
	}
	return ""
}

// addressFromMapsEmbed pulls the q parameter from a Google Maps iframe.
func addressFromMapsEmbed(p *Page) string {
	src := findMapsEmbedSrc(p)
	if src == "" {
		return ""
	}
	parsed, err := url.Parse(src)
	if err != nil {
		return ""
	}
	return squashSpace(parsed.Query().Get("q"))
}

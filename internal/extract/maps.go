package extract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// collectMapsURL finds an embedded Google Maps iframe, falling back to a
// maps link.
func collectMapsURL(p *Page) *string {
	if src := findMapsEmbedSrc(p); src != "" {
		return strPtr(src)
	}

	var found string
	p.doc.Find("a[href]").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		href, _ := s.Attr("href")
		lower := strings.ToLower(href)
		if strings.Contains(lower, "google.com/maps") || strings.Contains(lower, "maps.google.") || strings.Contains(lower, "goo.gl/maps") {
			found = href
			return false
		}
		return true
	})
	return strPtr(found)
}

func findMapsEmbedSrc(p *Page) string {
	var src string
	p.doc.Find("iframe[src]").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		v, _ := s.Attr("src")
		if strings.Contains(strings.ToLower(v), "google.com/maps") {
			src = v
			return false
		}
		return true
	})
	return src
}

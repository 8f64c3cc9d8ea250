package extract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Paragraph bounds: shorter is chrome, longer is probably a legal wall.
const (
	minParagraphLen = 30
	maxParagraphLen = 500
	minServiceLen   = 3
	maxServiceLen   = 80
)

// Ancestry markers excluding a paragraph from free-text capture.
var chromeAncestorHints = []string{"nav", "header", "footer", "menu", "cookie", "banner"}

// collectContent captures free-form page text for downstream LLM grounding:
// real paragraphs plus short H3-level headings that usually name services.
func collectContent(p *Page) *string {
	var parts []string

	p.doc.Find("p").Each(func(_ int, s *goquery.Selection) {
		text := squashSpace(s.Text())
		if len(text) < minParagraphLen || len(text) > maxParagraphLen {
			return
		}
		if insideChrome(s) {
			return
		}
		parts = append(parts, text)
	})

	var services []string
	p.doc.Find("h3").Each(func(_ int, s *goquery.Selection) {
		text := squashSpace(s.Text())
		if len(text) >= minServiceLen && len(text) <= maxServiceLen {
			services = append(services, text)
		}
	})
	if len(services) > 0 {
		parts = append(parts, "Services: "+strings.Join(dedupeCap(services, 0), ", "))
	}

	joined := strings.Join(parts, "\n")
	if joined == "" {
		return nil
	}
	if runes := []rune(joined); len(runes) > maxContent {
		joined = string(runes[:maxContent])
	}
	return strPtr(joined)
}

// insideChrome walks the ancestry looking for nav/header/footer containers
// by tag name or class/id substring.
func insideChrome(s *goquery.Selection) bool {
	chrome := false
	s.Parents().EachWithBreak(func(_ int, parent *goquery.Selection) bool {
		probe := goquery.NodeName(parent)
		for _, attr := range []string{"class", "id"} {
			if v, ok := parent.Attr(attr); ok {
				probe += " " + strings.ToLower(v)
			}
		}
		for _, hint := range chromeAncestorHints {
			if strings.Contains(probe, hint) {
				chrome = true
				return false
			}
		}
		return true
	})
	return chrome
}

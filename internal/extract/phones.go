package extract

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/nyaruka/phonenumbers"
)

const phoneRegion = "AE"

// UAE phone shapes: international +971, local mobile (05x) and landline
// (0x), and 800 toll-free numbers. Separators are tolerated and stripped
// during normalization.
var phonePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\+?971[\s\-().]*\d(?:[\s\-().]*\d){7,8}`),
	regexp.MustCompile(`\b0(?:5\d|[2-9])(?:[\s\-().]*\d){7}\b`),
	regexp.MustCompile(`\b800[\s\-().]*\d(?:[\s\-().]*\d){2,6}\b`),
}

// collectPhones gathers contact numbers, trusting tel: links over loose
// text matches, normalized to digits (E.164 where the number parses).
func collectPhones(p *Page) []string {
	var raw []string

	p.doc.Find(`a[href^="tel:"]`).Each(func(_ int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		raw = append(raw, strings.TrimPrefix(href, "tel:"))
	})

	text := p.doc.Find("body").Text()
	for _, re := range phonePatterns {
		raw = append(raw, re.FindAllString(text, -1)...)
	}

	var phones []string
	for _, candidate := range raw {
		if normalized := normalizePhone(candidate); normalized != "" {
			phones = append(phones, normalized)
		}
	}
	return dedupeCap(phones, maxPhones)
}

// normalizePhone strips separators and, when the number parses as a valid
// UAE number, formats it E.164 so duplicates written differently collapse.
func normalizePhone(candidate string) string {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' || r == '+' {
			return r
		}
		return -1
	}, candidate)
	if len(strings.TrimPrefix(digits, "+")) < 7 {
		return ""
	}

	if num, err := phonenumbers.Parse(digits, phoneRegion); err == nil && phonenumbers.IsValidNumber(num) {
		return phonenumbers.Format(num, phonenumbers.E164)
	}

	// Keep plausible UAE-shaped numbers the library rejects; the LLM
	// extraction step prefers having a candidate over nothing.
	for _, re := range phonePatterns {
		if re.MatchString(candidate) {
			return digits
		}
	}
	return ""
}

package extract

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var emailRe = regexp.MustCompile(`[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}`)

// Filenames like hero@2x.png match the email pattern; drop by extension.
var emailAssetSuffixes = []string{".png", ".jpg", ".jpeg", ".gif", ".webp", ".svg", ".css", ".js", ".woff", ".woff2"}

// Tooling and vendor domains that show up in page source but are never the
// business's contact address.
var emailVendorDomains = []string{"sentry.io", "wixpress.com", "example.com", "sentry-next.wixpress.com", "schema.org", "w3.org"}

// collectEmails gathers contact addresses from mailto: links and visible
// text, filtering asset-name false positives and vendor noise.
func collectEmails(p *Page) []string {
	var raw []string

	p.doc.Find(`a[href^="mailto:"]`).Each(func(_ int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		addr := strings.TrimPrefix(href, "mailto:")
		if idx := strings.IndexByte(addr, '?'); idx >= 0 {
			addr = addr[:idx]
		}
		raw = append(raw, addr)
	})

	raw = append(raw, emailRe.FindAllString(p.doc.Find("body").Text(), -1)...)

	var emails []string
	for _, candidate := range raw {
		addr := strings.ToLower(strings.TrimSpace(candidate))
		if !emailRe.MatchString(addr) || isAssetName(addr) || isVendorEmail(addr) {
			continue
		}
		emails = append(emails, addr)
	}
	return dedupeCap(emails, maxEmails)
}

func isAssetName(addr string) bool {
	for _, suffix := range emailAssetSuffixes {
		if strings.HasSuffix(addr, suffix) {
			return true
		}
	}
	return false
}

func isVendorEmail(addr string) bool {
	_, domain, found := strings.Cut(addr, "@")
	if !found {
		return true
	}
	for _, vendor := range emailVendorDomains {
		if domain == vendor || strings.HasSuffix(domain, "."+vendor) {
			return true
		}
	}
	return false
}

package extract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// collectLogo resolves the site logo through an ordered cascade: a
// logo-marked image inside header/nav chrome, then anywhere on the page,
// then the social-share image as a last resort.
func collectLogo(p *Page) *string {
	strategies := []func(*Page) string{
		logoFromChrome,
		logoAnywhere,
		heroFromShareMeta,
	}
	for _, strategy := range strategies {
		if u := strategy(p); u != "" {
			return strPtr(u)
		}
	}
	return nil
}

func logoFromChrome(p *Page) string {
	var found string
	p.doc.Find(`header img, nav img, .header img, .navbar img, .nav img, [class*="logo"] img`).EachWithBreak(func(_ int, img *goquery.Selection) bool {
		src := p.resolve(imgSource(img))
		if src == "" {
			return true
		}
		if mentionsLogo(img, src) || withinLogoContainer(img) {
			found = src
			return false
		}
		return true
	})
	return found
}

func logoAnywhere(p *Page) string {
	var found string
	p.doc.Find("img").EachWithBreak(func(_ int, img *goquery.Selection) bool {
		src := p.resolve(imgSource(img))
		if src == "" || !mentionsLogo(img, src) {
			return true
		}
		found = src
		return false
	})
	return found
}

// mentionsLogo checks src, alt, class and id for a logo marker.
func mentionsLogo(img *goquery.Selection, src string) bool {
	probe := strings.ToLower(src)
	for _, attr := range []string{"alt", "class", "id"} {
		if v, ok := img.Attr(attr); ok {
			probe += " " + strings.ToLower(v)
		}
	}
	return strings.Contains(probe, "logo")
}

func withinLogoContainer(img *goquery.Selection) bool {
	return img.ParentsFiltered(`[class*="logo"], [id*="logo"]`).Length() > 0
}

package extract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// An image must declare at least this many pixels to qualify as hero
// material when its markup carries dimensions.
const minHeroArea = 400 * 250

var heroContainerHints = []string{"hero", "banner", "slider", "carousel", "jumbotron", "masthead"}

// collectHeroImage picks the page's hero image through an ordered cascade:
// hero-like containers first, then early content sections, then the largest
// declared image anywhere, then the social-share image. First hit wins.
func collectHeroImage(p *Page) *string {
	strategies := []func(*Page) string{
		heroFromContainer,
		heroFromFirstSections,
		heroLargestImage,
		heroFromShareMeta,
	}
	for _, strategy := range strategies {
		if u := strategy(p); u != "" {
			return strPtr(u)
		}
	}
	return nil
}

// heroFromContainer looks inside hero/banner/slider-like containers for a
// usable image, falling back to the container's own background-image.
func heroFromContainer(p *Page) string {
	var found string
	p.doc.Find("div, section, header, figure").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if !hasClassOrIDHint(s, heroContainerHints) {
			return true
		}

		s.Find("img").EachWithBreak(func(_ int, img *goquery.Selection) bool {
			src := p.resolve(imgSource(img))
			if src == "" || isDecorative(img, src) {
				return true
			}
			if area := imgArea(img); area >= 0 && area < minHeroArea {
				return true
			}
			found = src
			return false
		})
		if found != "" {
			return false
		}

		if style, ok := s.Attr("style"); ok {
			if urls := backgroundURLs(p, style); len(urls) > 0 {
				found = urls[0]
				return false
			}
		}
		return true
	})
	return found
}

// heroFromFirstSections scans the first few top-level content blocks for a
// sufficiently large image.
func heroFromFirstSections(p *Page) string {
	var found string
	p.doc.Find("body > *").EachWithBreak(func(i int, s *goquery.Selection) bool {
		if i >= 4 {
			return false
		}
		s.Find("img").EachWithBreak(func(_ int, img *goquery.Selection) bool {
			src := p.resolve(imgSource(img))
			if src == "" || isDecorative(img, src) {
				return true
			}
			if area := imgArea(img); area >= 0 && area < minHeroArea {
				return true
			}
			found = src
			return false
		})
		return found == ""
	})
	return found
}

// heroLargestImage picks the biggest non-decorative image by declared area.
func heroLargestImage(p *Page) string {
	var best string
	bestArea := 0
	p.doc.Find("img").Each(func(_ int, img *goquery.Selection) {
		src := p.resolve(imgSource(img))
		if src == "" || isDecorative(img, src) {
			return
		}
		if area := imgArea(img); area > bestArea {
			best, bestArea = src, area
		}
	})
	if bestArea < minHeroArea {
		return ""
	}
	return best
}

func heroFromShareMeta(p *Page) string {
	return p.resolve(p.metaContent("og:image"))
}

// hasClassOrIDHint matches a container by class/id substring.
func hasClassOrIDHint(s *goquery.Selection, hints []string) bool {
	probe := ""
	if v, ok := s.Attr("class"); ok {
		probe += strings.ToLower(v)
	}
	if v, ok := s.Attr("id"); ok {
		probe += " " + strings.ToLower(v)
	}
	if probe == "" {
		return false
	}
	for _, hint := range hints {
		if strings.Contains(probe, hint) {
			return true
		}
	}
	return false
}

package extract

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var bgImageURLRe = regexp.MustCompile(`url\(["']?([^"')]+)["']?\)`)

// Keywords marking an image as decorative chrome rather than content.
var decorativeHints = []string{"logo", "icon", "sprite", "spacer", "pixel", "avatar", "badge", "favicon"}

// collectImages gathers every <img> source (including common lazy-load
// attributes) plus CSS background-image URLs, deduplicated by exact URL.
func collectImages(p *Page) []string {
	var urls []string

	p.doc.Find("img").Each(func(_ int, s *goquery.Selection) {
		if u := p.resolve(imgSource(s)); u != "" {
			urls = append(urls, u)
		}
	})

	p.doc.Find("[style]").Each(func(_ int, s *goquery.Selection) {
		style, _ := s.Attr("style")
		urls = append(urls, backgroundURLs(p, style)...)
	})

	for _, rule := range p.rules {
		for _, prop := range []string{"background-image", "background"} {
			if v, ok := rule.props[prop]; ok {
				urls = append(urls, backgroundURLs(p, v)...)
			}
		}
	}

	return dedupeCap(urls, 0)
}

func imgSource(s *goquery.Selection) string {
	for _, attr := range []string{"src", "data-src", "data-lazy-src"} {
		if v, ok := s.Attr(attr); ok && strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

func backgroundURLs(p *Page, cssValue string) []string {
	var urls []string
	for _, m := range bgImageURLRe.FindAllStringSubmatch(cssValue, -1) {
		if u := p.resolve(m[1]); u != "" {
			urls = append(urls, u)
		}
	}
	return urls
}

// isDecorative filters out SVG and data-URI images and anything whose URL,
// alt text, class, or id smells like chrome (logos, icons, spacers).
func isDecorative(s *goquery.Selection, src string) bool {
	lower := strings.ToLower(src)
	if strings.HasPrefix(lower, "data:") || strings.HasSuffix(lower, ".svg") || strings.Contains(lower, ".svg?") {
		return true
	}

	probe := lower
	for _, attr := range []string{"alt", "class", "id"} {
		if v, ok := s.Attr(attr); ok {
			probe += " " + strings.ToLower(v)
		}
	}
	for _, hint := range decorativeHints {
		if strings.Contains(probe, hint) {
			return true
		}
	}
	return false
}

// imgArea returns width*height from the element's attributes, or -1 when
// the markup declares no size. Rendered dimensions are not available from a
// static snapshot, so declared attributes are the only size signal.
func imgArea(s *goquery.Selection) int {
	w := attrInt(s, "width")
	h := attrInt(s, "height")
	if w <= 0 || h <= 0 {
		return -1
	}
	return w * h
}

func attrInt(s *goquery.Selection, name string) int {
	v, ok := s.Attr(name)
	if !ok {
		return 0
	}
	n, err := strconv.Atoi(strings.TrimSuffix(strings.TrimSpace(v), "px"))
	if err != nil {
		return 0
	}
	return n
}

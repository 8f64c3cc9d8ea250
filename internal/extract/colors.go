package extract

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Elements most likely to carry brand colors, plus the broad containers
// that set the page's base tones.
const brandSelectors = `header, nav, footer, h1, h2, h3, a, button, ` +
	`.hero, .banner, .header, .navbar, .nav, ` +
	`[class*="brand"], [class*="primary"], [class*="accent"], ` +
	`body, main, section`

// Keyword form of the same list, for matching stylesheet rule selectors.
var brandSelectorHints = []string{
	"header", "nav", "footer", "h1", "h2", "h3", "a", "button",
	"hero", "banner", "brand", "primary", "accent", "body", "main", "section",
}

// Hand-curated deny list of near-white/near-black/greyscale values that say
// nothing about the brand. Kept literal on purpose: near-variants like
// #fefefe pass through.
var boringColors = map[string]struct{}{
	"#ffffff": {}, "#000000": {}, "#f5f5f5": {}, "#fafafa": {},
	"#f0f0f0": {}, "#e0e0e0": {}, "#cccccc": {}, "#333333": {},
	"#666666": {}, "#999999": {}, "#eeeeee": {}, "#dddddd": {},
	"#f8f8f8": {}, "#f9f9f9": {}, "#fbfbfb": {}, "#fcfcfc": {},
	"#111111": {}, "#222222": {}, "#444444": {}, "#555555": {},
	"#777777": {}, "#888888": {}, "#aaaaaa": {}, "#bbbbbb": {},
}

var rgbFuncRe = regexp.MustCompile(`rgba?\((\d+),\s*(\d+),\s*(\d+)`)

// collectColors tallies background and text colors declared on brand-likely
// elements and returns the top colors by frequency, boring greys excluded.
func collectColors(p *Page) []string {
	counts := make(map[string]int)
	var order []string

	tally := func(value string) {
		hex := normalizeColor(value)
		if hex == "" {
			return
		}
		if _, boring := boringColors[hex]; boring {
			return
		}
		if counts[hex] == 0 {
			order = append(order, hex)
		}
		counts[hex]++
	}

	p.doc.Find(brandSelectors).Each(func(_ int, s *goquery.Selection) {
		style, ok := s.Attr("style")
		if !ok {
			return
		}
		props := parseInlineStyle(style)
		tally(props["background-color"])
		tally(firstColorToken(props["background"]))
		tally(props["color"])
	})

	for _, rule := range p.rules {
		if !selectorMentions(rule.selector, brandSelectorHints) {
			continue
		}
		tally(rule.props["background-color"])
		tally(firstColorToken(rule.props["background"]))
		tally(rule.props["color"])
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})
	if len(order) > maxColors {
		order = order[:maxColors]
	}
	return order
}

// normalizeColor converts #rgb, #rrggbb and rgb()/rgba() color values to a
// lowercase 6-digit hex string. Anything else (named colors, gradients,
// transparent) yields "".
func normalizeColor(value string) string {
	value = strings.ToLower(strings.TrimSpace(value))
	if value == "" || value == "transparent" || strings.HasPrefix(value, "rgba(0, 0, 0, 0") {
		return ""
	}

	if strings.HasPrefix(value, "#") {
		hexDigits := value[1:]
		if !isHexDigits(hexDigits) {
			return ""
		}
		switch len(hexDigits) {
		case 3:
			return "#" + string([]byte{
				hexDigits[0], hexDigits[0],
				hexDigits[1], hexDigits[1],
				hexDigits[2], hexDigits[2],
			})
		case 6:
			return value
		}
		return ""
	}

	if m := rgbFuncRe.FindStringSubmatch(value); m != nil {
		r, _ := strconv.Atoi(m[1])
		g, _ := strconv.Atoi(m[2])
		b, _ := strconv.Atoi(m[3])
		if r > 255 || g > 255 || b > 255 {
			return ""
		}
		return fmt.Sprintf("#%02x%02x%02x", r, g, b)
	}

	return ""
}

// firstColorToken pulls a color literal out of a shorthand background value.
func firstColorToken(value string) string {
	for _, token := range strings.Fields(value) {
		if strings.HasPrefix(token, "#") || strings.HasPrefix(token, "rgb") {
			return token
		}
	}
	return ""
}

func isHexDigits(s string) bool {
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9', r >= 'a' && r <= 'f':
		default:
			return false
		}
	}
	return true
}

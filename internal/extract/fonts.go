package extract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Elements whose typography defines the brand: body copy, the two heading
// levels, and navigation.
var fontProbePoints = []struct {
	selector string
	hints    []string
}{
	{"body", []string{"body", "html"}},
	{"h1", []string{"h1"}},
	{"h2", []string{"h2"}},
	{"nav", []string{"nav", ".nav", "navbar"}},
}

// Generic family keywords and system stacks that carry no brand signal.
var genericFontKeywords = map[string]struct{}{
	"serif": {}, "sans-serif": {}, "monospace": {}, "cursive": {}, "fantasy": {},
	"system-ui": {}, "ui-sans-serif": {}, "ui-serif": {}, "ui-monospace": {},
	"-apple-system": {}, "blinkmacsystemfont": {}, "segoe ui": {}, "roboto": {},
	"arial": {}, "helvetica": {}, "helvetica neue": {}, "times new roman": {},
	"inherit": {}, "initial": {}, "unset": {},
}

// collectFonts reads the font families declared for body, headings, and
// nav, filters the generic stacks, and returns the distinct brand fonts.
func collectFonts(p *Page) []string {
	var families []string

	for _, probe := range fontProbePoints {
		if value := fontFamilyFor(p, probe.selector, probe.hints); value != "" {
			families = append(families, splitFontFamilies(value)...)
		}
	}

	return dedupeCap(families, maxFonts)
}

// fontFamilyFor finds the declared font-family for an element, preferring
// its inline style over stylesheet rules mentioning it.
func fontFamilyFor(p *Page, selector string, hints []string) string {
	var inline string
	p.doc.Find(selector).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		style, ok := s.Attr("style")
		if !ok {
			return true
		}
		if v, ok := parseInlineStyle(style)["font-family"]; ok {
			inline = v
			return false
		}
		return true
	})
	if inline != "" {
		return inline
	}

	for _, rule := range p.rules {
		if !selectorMentions(rule.selector, hints) {
			continue
		}
		if v, ok := rule.props["font-family"]; ok {
			return v
		}
	}
	return ""
}

// splitFontFamilies breaks a font-family value into individual names,
// stripping quotes and generic keywords.
func splitFontFamilies(value string) []string {
	var names []string
	for _, part := range strings.Split(value, ",") {
		name := strings.Trim(strings.TrimSpace(part), `"'`)
		if name == "" || strings.HasPrefix(name, "var(") {
			continue
		}
		if _, generic := genericFontKeywords[strings.ToLower(name)]; generic {
			continue
		}
		names = append(names, name)
	}
	return names
}

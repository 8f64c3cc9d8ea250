package extract

import (
	"regexp"
	"strings"
)

// styleRule is one selector with the declarations the heuristics care about.
// This is deliberately not a CSS engine: selectors are matched later by
// substring, which is enough to tell "this rule styles the header" apart
// from "this rule styles a table cell".
type styleRule struct {
	selector string
	props    map[string]string
}

var cssCommentRe = regexp.MustCompile(`(?s)/\*.*?\*/`)

// Declarations worth indexing for the color, image and font heuristics.
var indexedProps = map[string]struct{}{
	"color":            {},
	"background":       {},
	"background-color": {},
	"background-image": {},
	"font-family":      {},
}

// parseStyleRules scans a stylesheet for flat `selector{declarations}`
// rules. At-rule wrappers (@media, @supports, @font-face) are skipped; the
// rules nested inside a media query still surface because the scanner keys
// off the braces, not the grammar.
func parseStyleRules(css string) []styleRule {
	css = cssCommentRe.ReplaceAllString(css, "")

	var rules []styleRule
	for _, chunk := range strings.Split(css, "}") {
		selector, body, found := cutLast(chunk, "{")
		if !found {
			continue
		}
		selector = strings.TrimSpace(selector)
		// A selector left over from an at-rule wrapper looks like
		// "@media (max-width:768px) { .nav" after the outer split; keep
		// only the innermost part.
		if idx := strings.LastIndex(selector, "{"); idx >= 0 {
			selector = strings.TrimSpace(selector[idx+1:])
		}
		if selector == "" || strings.HasPrefix(selector, "@") {
			continue
		}

		props := parseDeclarations(body)
		if len(props) == 0 {
			continue
		}
		rules = append(rules, styleRule{selector: strings.ToLower(selector), props: props})
	}
	return rules
}

// parseDeclarations splits `name:value;...` keeping only indexed properties.
func parseDeclarations(body string) map[string]string {
	var props map[string]string
	for _, decl := range strings.Split(body, ";") {
		name, value, found := strings.Cut(decl, ":")
		if !found {
			continue
		}
		name = strings.ToLower(strings.TrimSpace(name))
		if _, ok := indexedProps[name]; !ok {
			continue
		}
		value = strings.TrimSpace(value)
		if value == "" {
			continue
		}
		if props == nil {
			props = make(map[string]string)
		}
		props[name] = value
	}
	return props
}

// parseInlineStyle parses a style attribute with the same property filter.
func parseInlineStyle(attr string) map[string]string {
	return parseDeclarations(attr)
}

// selectorMentions reports whether a rule's selector plausibly targets one
// of the given keywords (tag names or class/id fragments).
func selectorMentions(selector string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(selector, kw) {
			return true
		}
	}
	return false
}

func cutLast(s, sep string) (before, after string, found bool) {
	idx := strings.LastIndex(s, sep)
	if idx < 0 {
		return s, "", false
	}
	return s[:idx], s[idx+len(sep):], true
}

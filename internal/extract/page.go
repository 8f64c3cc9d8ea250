// Package extract runs a battery of independent, best-effort heuristics
// against a parsed page snapshot and combines the results into a Capture.
// Heuristics never fail: absence is a nil or empty field, not an error.
package extract

import (
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Page is an immutable snapshot of a scraped document. Every heuristic takes
// the snapshot explicitly instead of reaching for ambient browser state, so
// the whole battery is testable against synthetic fixtures.
type Page struct {
	doc  *goquery.Document
	base *url.URL

	rules  []styleRule
	jsonLD []map[string]any
}

// NewPage parses an HTML document and indexes its inline stylesheets and
// structured data blocks.
func NewPage(r io.Reader, pageURL string) (*Page, error) {
	node, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse page: %w", err)
	}

	p := &Page{doc: goquery.NewDocumentFromNode(node)}

	if base, err := url.Parse(pageURL); err == nil && base.Host != "" {
		p.base = base
	}

	p.doc.Find("style").Each(func(_ int, s *goquery.Selection) {
		p.rules = append(p.rules, parseStyleRules(s.Text())...)
	})

	p.doc.Find(`script[type="application/ld+json"]`).Each(func(_ int, s *goquery.Selection) {
		var raw any
		if err := json.Unmarshal([]byte(s.Text()), &raw); err != nil {
			return
		}
		p.jsonLD = append(p.jsonLD, flattenLD(raw)...)
	})

	return p, nil
}

// URL returns the source URL the snapshot was taken from.
func (p *Page) URL() string {
	if p.base == nil {
		return ""
	}
	return p.base.String()
}

// resolve turns a possibly relative reference into an absolute http(s) URL,
// or "" when it cannot be used (javascript:, data:, malformed).
func (p *Page) resolve(ref string) string {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return ""
	}
	parsed, err := url.Parse(ref)
	if err != nil {
		return ""
	}
	if p.base != nil {
		parsed = p.base.ResolveReference(parsed)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return ""
	}
	return parsed.String()
}

// metaContent reads a <meta> tag's content by name or property attribute.
func (p *Page) metaContent(key string) string {
	var content string
	p.doc.Find("meta").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		name, _ := s.Attr("name")
		prop, _ := s.Attr("property")
		if strings.EqualFold(name, key) || strings.EqualFold(prop, key) {
			content, _ = s.Attr("content")
			return false
		}
		return true
	})
	return strings.TrimSpace(content)
}

// flattenLD normalizes a decoded ld+json payload into a flat list of object
// nodes, unwrapping arrays and @graph containers.
func flattenLD(raw any) []map[string]any {
	var nodes []map[string]any
	switch v := raw.(type) {
	case []any:
		for _, item := range v {
			nodes = append(nodes, flattenLD(item)...)
		}
	case map[string]any:
		nodes = append(nodes, v)
		if graph, ok := v["@graph"]; ok {
			nodes = append(nodes, flattenLD(graph)...)
		}
	}
	return nodes
}

// ldType reports whether a structured-data node declares the given @type,
// tolerating both string and array forms.
func ldType(node map[string]any, want string) bool {
	switch t := node["@type"].(type) {
	case string:
		return strings.EqualFold(t, want)
	case []any:
		for _, item := range t {
			if s, ok := item.(string); ok && strings.EqualFold(s, want) {
				return true
			}
		}
	}
	return false
}

func ldString(node map[string]any, key string) string {
	if s, ok := node[key].(string); ok {
		return strings.TrimSpace(s)
	}
	return ""
}

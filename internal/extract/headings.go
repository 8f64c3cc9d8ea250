package extract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Heading is one H1/H2 with its level tag.
type Heading struct {
	Tag  string `json:"tag"`
	Text string `json:"text"`
}

func collectHeadings(p *Page) []Heading {
	var headings []Heading
	p.doc.Find("h1, h2").Each(func(_ int, s *goquery.Selection) {
		text := squashSpace(s.Text())
		if text == "" {
			return
		}
		headings = append(headings, Heading{Tag: goquery.NodeName(s), Text: text})
	})
	return headings
}

func collectTitle(p *Page) string {
	return squashSpace(p.doc.Find("title").First().Text())
}

// squashSpace trims and collapses internal whitespace runs to one space.
func squashSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

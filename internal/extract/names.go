package extract

import (
	"regexp"
)

// "Dr." followed by up to four capitalized words.
var doctorNameRe = regexp.MustCompile(`Dr\.?\s+[A-Z][A-Za-z'\-]+(?:\s+[A-Z][A-Za-z'\-]+){0,3}`)

const (
	minDoctorNameLen = 6
	maxDoctorNameLen = 60
)

// collectDoctorNames gathers candidate practitioner/owner names from
// structured data first, then from a Dr.-prefix scan of visible text.
func collectDoctorNames(p *Page) []string {
	var names []string

	for _, node := range p.jsonLD {
		if ldType(node, "Person") || ldType(node, "Physician") {
			names = append(names, ldString(node, "name"))
		}
		for _, key := range []string{"member", "physician", "employee", "founder"} {
			names = append(names, ldPersonNames(node[key])...)
		}
	}

	for _, m := range doctorNameRe.FindAllString(p.doc.Find("body").Text(), -1) {
		names = append(names, squashSpace(m))
	}

	var bounded []string
	for _, name := range names {
		name = squashSpace(name)
		if len(name) < minDoctorNameLen || len(name) > maxDoctorNameLen {
			continue
		}
		bounded = append(bounded, name)
	}
	return dedupeCap(bounded, maxNames)
}

// ldPersonNames extracts name fields from a node value that may be a single
// person object or a list of them.
func ldPersonNames(value any) []string {
	var names []string
	switch v := value.(type) {
	case map[string]any:
		names = append(names, ldString(v, "name"))
	case []any:
		for _, item := range v {
			if node, ok := item.(map[string]any); ok {
				names = append(names, ldString(node, "name"))
			}
		}
	}
	return names
}

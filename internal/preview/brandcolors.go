package preview

import (
	"regexp"
	"strings"

	"github.com/morningstar-ai/preview-engine/internal/colormath"
)

var (
	rootBlockRe = regexp.MustCompile(`:root\s*\{[^}]+\}`)
	cssVarRe    = regexp.MustCompile(`--([\w-]+)\s*:\s*([^;}]+)`)
)

// Structural variables name layout colors (backgrounds, borders, text).
// They never seed a brand color family; ink and muted are instead re-derived
// from the new primary.
var structuralNames = []string{"white", "off", "ink", "muted", "border", "text", "warm-white", "cream"}

const (
	tintFactor  = 0.88
	shadeFactor = 0.10
)

// ApplyBrandColors remaps the first :root custom-property block to the
// scraped palette. Variable families are inferred from naming convention:
// the first non-structural hex variable seeds the primary family, `-lt` and
// `-pale` suffixes are tints, `-mid` is a shade. An empty palette or a
// document without a :root block passes through unchanged.
func ApplyBrandColors(html string, palette []string) string {
	if len(palette) == 0 {
		return html
	}

	loc := rootBlockRe.FindStringIndex(html)
	if loc == nil {
		return html
	}
	rootBlock := html[loc[0]:loc[1]]

	// Parse declarations preserving order so the block can be rebuilt
	// without shuffling variables template authors expect to find.
	var order []string
	vars := make(map[string]string)
	for _, m := range cssVarRe.FindAllStringSubmatch(rootBlock, -1) {
		name, value := m[1], strings.TrimSpace(m[2])
		if _, seen := vars[name]; !seen {
			order = append(order, name)
		}
		vars[name] = value
	}
	if len(order) == 0 {
		return html
	}

	var colorVars []string
	for _, name := range order {
		if !isStructural(name) && colormath.IsHex(vars[name]) {
			colorVars = append(colorVars, name)
		}
	}
	if len(colorVars) == 0 {
		return html
	}

	primary := palette[0]

	// Primary family: seeded by the first color variable in declaration
	// order, e.g. --teal, --teal-lt, --teal-mid.
	baseName := colorVars[0]
	basePrefix, _, _ := strings.Cut(baseName, "-")
	remapFamily(vars, colorVars, baseName, basePrefix, primary)

	// Secondary family, if the palette and the template both have one.
	if len(palette) > 1 {
		var remaining []string
		for _, name := range colorVars {
			if !strings.HasPrefix(name, basePrefix) {
				remaining = append(remaining, name)
			}
		}
		if len(remaining) > 0 {
			secondBase := remaining[0]
			secondPrefix, _, _ := strings.Cut(secondBase, "-")
			remapFamily(vars, remaining, secondBase, secondPrefix, palette[1])
		}
	}

	// Re-derive ink and muted from the new primary for visual cohesion.
	// A muted declared as rgba() carries intentional transparency; skip it.
	if v, ok := vars["ink"]; ok && colormath.IsHex(v) {
		vars["ink"] = colormath.DeriveInk(primary)
	}
	if v, ok := vars["muted"]; ok && colormath.IsHex(v) && !strings.Contains(v, "rgba") {
		vars["muted"] = colormath.DeriveMuted(primary)
	}

	var b strings.Builder
	b.WriteString(":root{")
	for i, name := range order {
		if i > 0 {
			b.WriteByte(';')
		}
		b.WriteString("--")
		b.WriteString(name)
		b.WriteByte(':')
		b.WriteString(vars[name])
	}
	b.WriteString(";}")

	return html[:loc[0]] + b.String() + html[loc[1]:]
}

func remapFamily(vars map[string]string, candidates []string, baseName, basePrefix, color string) {
	for _, name := range candidates {
		if name != baseName && !strings.HasPrefix(name, basePrefix) {
			continue
		}
		switch {
		case name == baseName:
			vars[name] = color
		case strings.Contains(name, "-lt") || strings.Contains(name, "-pale"):
			vars[name] = colormath.Tint(color, tintFactor)
		case strings.Contains(name, "-mid"):
			vars[name] = colormath.Shade(color, shadeFactor)
			// Unrecognized suffixes in the family keep their original value.
		}
	}
}

func isStructural(name string) bool {
	lower := strings.ToLower(name)
	for _, s := range structuralNames {
		if lower == s {
			return true
		}
	}
	return false
}

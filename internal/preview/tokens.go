package preview

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// Token placeholders are uppercase snake case, matched case-sensitively.
var tokenRe = regexp.MustCompile(`\{\{([A-Z_]+)\}\}`)

// InjectData substitutes every {{KEY}} placeholder with the value's string
// form. Nil values become the empty string so a template degrades gracefully
// instead of showing a null literal.
func InjectData(html string, data map[string]any) string {
	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		html = strings.ReplaceAll(html, "{{"+key+"}}", stringify(data[key]))
	}
	return html
}

// UnfilledTokens returns the distinct placeholder names still present in the
// document, in order of first appearance. Unfilled tokens are a warning
// signal for operators, not a failure: the preview is still served.
func UnfilledTokens(html string) []string {
	var names []string
	seen := make(map[string]struct{})
	for _, m := range tokenRe.FindAllStringSubmatch(html, -1) {
		if _, ok := seen[m[1]]; ok {
			continue
		}
		seen[m[1]] = struct{}{}
		names = append(names, m[1])
	}
	return names
}

func stringify(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case float64:
		// JSON numbers decode as float64; render integers without a mantissa.
		if val == float64(int64(val)) {
			return fmt.Sprintf("%d", int64(val))
		}
		return fmt.Sprintf("%v", val)
	default:
		return fmt.Sprintf("%v", val)
	}
}

// Package preview turns a static HTML template plus extracted prospect data
// into a brand-adapted, instrumented preview document.
package preview

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
)

var (
	// ErrTemplateNotFound is the one fatal condition in the pipeline: there
	// is no reasonable default template body to fall back to.
	ErrTemplateNotFound = errors.New("template not found")

	// ErrMalformedTemplate indicates a template without a <body> tag. The
	// banner overlay needs a literal insertion point, so such templates are
	// rejected at load time instead of producing undefined output.
	ErrMalformedTemplate = errors.New("template has no <body> tag")
)

var bodyOpenRe = regexp.MustCompile(`<body[^>]*>`)

// Store is a read-only lookup of HTML templates by filename.
type Store struct {
	dir string
}

// NewStore returns a Store rooted at the given templates directory.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Load reads a template by filename and validates its shape.
func (s *Store) Load(filename string) (string, error) {
	path := filepath.Join(s.dir, filepath.Base(filename))

	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrTemplateNotFound, filename)
		}
		return "", fmt.Errorf("read template %s: %w", filename, err)
	}

	html := string(raw)
	if !bodyOpenRe.MatchString(html) {
		return "", fmt.Errorf("%w: %s", ErrMalformedTemplate, filename)
	}

	return html, nil
}

// Variables loads a template and returns the distinct set of {{TOKEN}}
// names it references, for template-authoring validation.
func (s *Store) Variables(filename string) (map[string]struct{}, error) {
	html, err := s.Load(filename)
	if err != nil {
		return nil, err
	}

	vars := make(map[string]struct{})
	for _, m := range tokenRe.FindAllStringSubmatch(html, -1) {
		vars[m[1]] = struct{}{}
	}
	return vars, nil
}

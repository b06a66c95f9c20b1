// Package catalog loads the templates a carousel is fed from.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/llehouerou/carousel/internal/carousel"
)

//go:embed default.yaml
var defaultCatalog []byte

// ErrEmpty is returned when a catalog defines no templates.
var ErrEmpty = errors.New("catalog has no templates")

// Entry is the YAML form of a template.
type Entry struct {
	Name  string   `yaml:"name"`
	Color string   `yaml:"color"`
	Art   []string `yaml:"art"`
}

type file struct {
	Templates   []Entry `yaml:"templates"`
	Placeholder *Entry  `yaml:"placeholder"`
}

// Catalog is an ordered set of templates plus the placeholder.
type Catalog struct {
	Templates   []*carousel.Template
	Placeholder *carousel.Template
	Source      string // file path, or "built-in"
}

// Load reads a catalog from path. An empty path loads the built-in catalog.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Parse(defaultCatalog, "built-in")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data, path)
}

// Default returns the built-in catalog.
func Default() *Catalog {
	c, err := Parse(defaultCatalog, "built-in")
	if err != nil {
		panic(fmt.Sprintf("built-in catalog: %v", err))
	}
	return c
}

// Parse decodes and validates a YAML catalog.
func Parse(data []byte, source string) (*Catalog, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse %s: %w", source, err)
	}
	if len(f.Templates) == 0 {
		return nil, fmt.Errorf("%s: %w", source, ErrEmpty)
	}

	seen := make(map[string]bool, len(f.Templates))
	c := &Catalog{
		Templates: make([]*carousel.Template, 0, len(f.Templates)),
		Source:    source,
	}
	for i, e := range f.Templates {
		name := strings.TrimSpace(e.Name)
		if name == "" {
			return nil, fmt.Errorf("%s: template %d has no name", source, i+1)
		}
		if seen[name] {
			return nil, fmt.Errorf("%s: duplicate template %q", source, name)
		}
		seen[name] = true
		c.Templates = append(c.Templates, e.template(name))
	}

	placeholder := Entry{}
	if f.Placeholder != nil {
		placeholder = *f.Placeholder
	}
	name := strings.TrimSpace(placeholder.Name)
	if name != "" && seen[name] {
		return nil, fmt.Errorf("%s: placeholder name %q collides with a template", source, name)
	}
	c.Placeholder = placeholder.template(name)

	return c, nil
}

func (e Entry) template(name string) *carousel.Template {
	return &carousel.Template{
		Name:  name,
		Color: e.Color,
		Art:   append([]string(nil), e.Art...),
	}
}

// Find returns the template with the given name, or nil.
// The placeholder is never returned.
func (c *Catalog) Find(name string) *carousel.Template {
	for _, t := range c.Templates {
		if t.Name == name {
			return t
		}
	}
	return nil
}

// IsPlaceholder reports whether t is the catalog's placeholder.
func (c *Catalog) IsPlaceholder(t *carousel.Template) bool {
	return t == c.Placeholder
}

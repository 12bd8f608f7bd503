package catalog

import (
	_ "embed"
	"fmt"
	"regexp"
	"sync"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/pagentum/pagentum/internal/model"
	pagerrors "github.com/pagentum/pagentum/pkg/errors"
)

//go:embed catalog.yaml
var catalogYAML []byte

var tokenPattern = regexp.MustCompile(`\{\{([a-zA-Z0-9_]+)\}\}`)

// Category groups templates for search and classification. Slice order in the
// catalog file is the deterministic tie-break order for the classifier.
type Category struct {
	Name     string   `yaml:"name" validate:"required"`
	Keywords []string `yaml:"keywords" validate:"required,min=1"`
}

type catalogFile struct {
	Templates  []model.SectionTemplate `yaml:"templates" validate:"required,min=1,dive"`
	Categories []Category              `yaml:"categories" validate:"required,min=1,dive"`
}

// Catalog is the immutable set of section templates plus the category keyword
// table, loaded once at process start.
type Catalog struct {
	templates  []model.SectionTemplate
	byID       map[string]int
	categories []Category
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
	defaultErr     error
)

// Default returns the catalog decoded from the embedded data file.
func Default() (*Catalog, error) {
	defaultOnce.Do(func() {
		defaultCatalog, defaultErr = Parse(catalogYAML)
	})
	return defaultCatalog, defaultErr
}

// Parse decodes and validates catalog data.
func Parse(data []byte) (*Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, pagerrors.NewParseError("catalog.yaml", err)
	}

	v := validator.New()
	if err := v.Struct(&file); err != nil {
		return nil, pagerrors.NewParseError("catalog.yaml", err)
	}

	c := &Catalog{
		templates:  file.Templates,
		byID:       make(map[string]int, len(file.Templates)),
		categories: file.Categories,
	}

	for i, tmpl := range file.Templates {
		if _, exists := c.byID[tmpl.ID]; exists {
			return nil, pagerrors.NewParseError("catalog.yaml", fmt.Errorf("duplicate template id %q", tmpl.ID))
		}
		if err := checkTokens(tmpl); err != nil {
			return nil, pagerrors.NewParseError("catalog.yaml", err)
		}
		c.byID[tmpl.ID] = i
	}

	return c, nil
}

// checkTokens enforces the catalog invariant: every {{token}} appearing in a
// template's HTML has a key in its default content. Generated edit forms are
// driven by the default content mapping, so an uncovered token would be
// uneditable.
func checkTokens(tmpl model.SectionTemplate) error {
	for _, match := range tokenPattern.FindAllStringSubmatch(tmpl.HTML, -1) {
		token := match[1]
		if _, ok := tmpl.DefaultContent[token]; !ok {
			return fmt.Errorf("template %q: token {{%s}} has no default content", tmpl.ID, token)
		}
	}
	return nil
}

// Template looks up a template by id.
func (c *Catalog) Template(id string) (model.SectionTemplate, bool) {
	i, ok := c.byID[id]
	if !ok {
		return model.SectionTemplate{}, false
	}
	return c.templates[i], true
}

// Templates returns all templates in catalog order.
func (c *Catalog) Templates() []model.SectionTemplate {
	out := make([]model.SectionTemplate, len(c.templates))
	copy(out, c.templates)
	return out
}

// ByCategory returns the templates in a category, preserving catalog order.
func (c *Catalog) ByCategory(category string) []model.SectionTemplate {
	var out []model.SectionTemplate
	for _, tmpl := range c.templates {
		if tmpl.Category == category {
			out = append(out, tmpl)
		}
	}
	return out
}

// FirstInCategory returns the first catalog template in a category. The
// classifier depends on this being deterministic.
func (c *Catalog) FirstInCategory(category string) (model.SectionTemplate, bool) {
	for _, tmpl := range c.templates {
		if tmpl.Category == category {
			return tmpl, true
		}
	}
	return model.SectionTemplate{}, false
}

// Categories returns the category keyword table in its fixed order.
func (c *Catalog) Categories() []Category {
	out := make([]Category, len(c.categories))
	copy(out, c.categories)
	return out
}

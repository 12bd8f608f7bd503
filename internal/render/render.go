// Package render turns an ordered sequence of sections plus a theme into HTML
// documents. Rendering is pure and best-effort: missing optional data resolves
// to documented defaults, and a section whose template id has no catalog entry
// or renderer contributes nothing rather than aborting the document.
package render

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/pagentum/pagentum/internal/catalog"
	"github.com/pagentum/pagentum/internal/model"
	"github.com/pagentum/pagentum/internal/theme"
)

// StylesheetName is the filename the linked document references. A linked
// render is only complete when both files are delivered together.
const StylesheetName = "style.css"

var tokenPattern = regexp.MustCompile(`\{\{([a-zA-Z0-9_]+)\}\}`)

// fragmentFunc composes the markup for one advanced section.
type fragmentFunc func(content map[string]string, images []model.PageImage, layout *model.SectionLayout) string

// Pipeline renders sections against a template catalog.
type Pipeline struct {
	catalog  *catalog.Catalog
	advanced map[string]fragmentFunc
}

// New creates a rendering pipeline. The dispatch table of advanced renderers
// is fixed: templates outside it go through generic token substitution.
func New(cat *catalog.Catalog) *Pipeline {
	return &Pipeline{
		catalog: cat,
		advanced: map[string]fragmentFunc{
			"hero-image-advanced": renderHeroAdvanced,
			"product-carousel":    renderProductCarousel,
			"navbar-1":            renderNavbar,
		},
	}
}

// RenderCSS produces the stylesheet for a theme.
func (p *Pipeline) RenderCSS(t model.ThemeConfig) string {
	return theme.GenerateCSS(t)
}

// RenderLinked produces the html/css file pair: the document references the
// stylesheet by its fixed filename.
func (p *Pipeline) RenderLinked(sections []model.PageSection, t model.ThemeConfig) (html, css string) {
	head := fmt.Sprintf("<link rel=\"stylesheet\" href=%q>", StylesheetName)
	return assemble(p.fragments(sections), head), p.RenderCSS(t)
}

// RenderStandalone produces a single self-contained document with the theme
// CSS inlined. Colocated with its stylesheet, a linked render displays
// identically.
func (p *Pipeline) RenderStandalone(sections []model.PageSection, t model.ThemeConfig) string {
	head := fmt.Sprintf("<style>\n%s\n  </style>", p.RenderCSS(t))
	return assemble(p.fragments(sections), head)
}

// Fragment renders a single section. Advanced templates dispatch to their
// dedicated composition function; everything else goes through token
// substitution against the catalog skeleton. Unknown template ids yield "".
func (p *Pipeline) Fragment(section model.PageSection) string {
	if fn, ok := p.advanced[section.TemplateID]; ok {
		tmpl, _ := p.catalog.Template(section.TemplateID)
		return fn(mergedContent(tmpl.DefaultContent, section.Content), section.Images, section.Layout)
	}

	tmpl, ok := p.catalog.Template(section.TemplateID)
	if !ok {
		return ""
	}
	return substitute(tmpl.HTML, mergedContent(tmpl.DefaultContent, section.Content))
}

// fragments renders all sections in ascending order and joins the non-empty
// results with newlines. The input slice is not mutated.
func (p *Pipeline) fragments(sections []model.PageSection) string {
	ordered := make([]model.PageSection, len(sections))
	copy(ordered, sections)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Order < ordered[j].Order
	})

	var parts []string
	for _, section := range ordered {
		if fragment := p.Fragment(section); fragment != "" {
			parts = append(parts, fragment)
		}
	}
	return strings.Join(parts, "\n")
}

// substitute performs a single-pass global replacement of {{token}}
// placeholders. Tokens with no content entry resolve to the empty string, so
// the output never carries residual placeholder syntax. Content is trusted
// author input and is not HTML-escaped.
func substitute(html string, content map[string]string) string {
	return tokenPattern.ReplaceAllStringFunc(html, func(match string) string {
		token := match[2 : len(match)-2]
		return content[token]
	})
}

// mergedContent layers sparse section content over the template defaults.
func mergedContent(defaults, content map[string]string) map[string]string {
	merged := make(map[string]string, len(defaults)+len(content))
	for k, v := range defaults {
		merged[k] = v
	}
	for k, v := range content {
		merged[k] = v
	}
	return merged
}

func assemble(body, head string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>Generated Page</title>
  %s
</head>
<body>
%s
</body>
</html>`, head, body)
}

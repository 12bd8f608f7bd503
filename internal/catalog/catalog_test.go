package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalogLoads(t *testing.T) {
	t.Parallel()

	c, err := Default()
	require.NoError(t, err)
	require.NotNil(t, c)
	assert.GreaterOrEqual(t, len(c.Templates()), 10)
}

func TestTemplateLookup(t *testing.T) {
	t.Parallel()

	c, err := Default()
	require.NoError(t, err)

	tmpl, ok := c.Template("hero-1")
	require.True(t, ok)
	assert.Equal(t, "hero", tmpl.Category)
	assert.Contains(t, tmpl.HTML, "{{title}}")
	assert.Equal(t, "Get Started", tmpl.DefaultContent["ctaText"])

	_, ok = c.Template("no-such-template")
	assert.False(t, ok)
}

func TestEveryTokenHasDefaultContent(t *testing.T) {
	t.Parallel()

	c, err := Default()
	require.NoError(t, err)

	for _, tmpl := range c.Templates() {
		matches := tokenPattern.FindAllStringSubmatch(tmpl.HTML, -1)
		for _, match := range matches {
			_, ok := tmpl.DefaultContent[match[1]]
			assert.True(t, ok, "template %s token %s", tmpl.ID, match[1])
		}
	}
}

func TestFirstInCategoryIsDeterministic(t *testing.T) {
	t.Parallel()

	c, err := Default()
	require.NoError(t, err)

	hero, ok := c.FirstInCategory("hero")
	require.True(t, ok)
	assert.Equal(t, "hero-1", hero.ID)

	features, ok := c.FirstInCategory("features")
	require.True(t, ok)
	assert.Equal(t, "features-3col", features.ID)

	_, ok = c.FirstInCategory("sidebar")
	assert.False(t, ok)
}

func TestCategoriesKeepFileOrder(t *testing.T) {
	t.Parallel()

	c, err := Default()
	require.NoError(t, err)

	cats := c.Categories()
	require.NotEmpty(t, cats)
	names := make([]string, 0, len(cats))
	for _, cat := range cats {
		names = append(names, cat.Name)
	}
	assert.Equal(t, []string{"hero", "features", "cta", "testimonials", "pricing", "footer", "navbar"}, names)
}

func TestParseRejectsUncoveredToken(t *testing.T) {
	t.Parallel()

	data := []byte(`
templates:
  - id: broken-1
    name: Broken
    category: hero
    html: "<h1>{{title}}</h1>"
    defaultContent:
      subtitle: wrong key
categories:
  - name: hero
    keywords: [hero]
`)

	_, err := Parse(data)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "{{title}}")
}

func TestParseRejectsDuplicateIDs(t *testing.T) {
	t.Parallel()

	data := []byte(`
templates:
  - id: dup
    name: One
    category: hero
    html: "<h1>static</h1>"
  - id: dup
    name: Two
    category: hero
    html: "<h2>static</h2>"
categories:
  - name: hero
    keywords: [hero]
`)

	_, err := Parse(data)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate template id")
}

package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pagentum/pagentum/internal/catalog"
	"github.com/pagentum/pagentum/internal/model"
	"github.com/pagentum/pagentum/internal/theme"
)

func newPipeline(t *testing.T) *Pipeline {
	t.Helper()
	cat, err := catalog.Default()
	require.NoError(t, err)
	return New(cat)
}

func cleanTheme(t *testing.T) model.ThemeConfig {
	t.Helper()
	reg, err := theme.Default()
	require.NoError(t, err)
	return reg.DefaultTheme()
}

func TestFragmentSubstitutesTokens(t *testing.T) {
	t.Parallel()

	p := newPipeline(t)
	fragment := p.Fragment(model.PageSection{
		ID:         "s1",
		TemplateID: "hero-1",
		Content: map[string]string{
			"title":    "Launch Week",
			"subtitle": "Seven days of shipping",
			"ctaText":  "Follow Along",
		},
	})

	assert.Contains(t, fragment, "Launch Week")
	assert.Contains(t, fragment, "Seven days of shipping")
	assert.Contains(t, fragment, "Follow Along")
	assert.NotContains(t, fragment, "{{")
}

func TestFragmentSparseContentFallsBackToDefaults(t *testing.T) {
	t.Parallel()

	p := newPipeline(t)
	fragment := p.Fragment(model.PageSection{
		ID:         "s1",
		TemplateID: "hero-1",
		Content:    map[string]string{"title": "Only a Title"},
	})

	assert.Contains(t, fragment, "Only a Title")
	// Missing keys resolve from template defaults, never to literal tokens.
	assert.Contains(t, fragment, "Get Started")
	assert.NotContains(t, fragment, "{{")
}

func TestSubstitutionIsTotal(t *testing.T) {
	t.Parallel()

	p := newPipeline(t)
	cat, err := catalog.Default()
	require.NoError(t, err)

	for _, tmpl := range cat.Templates() {
		// Empty content: every token must resolve (via defaults) with nothing left.
		fragment := p.Fragment(model.PageSection{ID: "s", TemplateID: tmpl.ID})
		assert.NotContains(t, fragment, "{{", "template %s", tmpl.ID)
		assert.NotContains(t, fragment, "}}", "template %s", tmpl.ID)
	}
}

func TestSubstitutionBlanksUncoveredTokens(t *testing.T) {
	t.Parallel()

	out := substitute("<h1>{{title}}</h1><p>{{missing}}</p>", map[string]string{"title": "Hi"})
	assert.Equal(t, "<h1>Hi</h1><p></p>", out)
}

func TestUnknownTemplateYieldsEmptyFragment(t *testing.T) {
	t.Parallel()

	p := newPipeline(t)
	assert.Empty(t, p.Fragment(model.PageSection{ID: "s1", TemplateID: "vanished"}))
}

func TestUnknownTemplateDoesNotAbortSiblings(t *testing.T) {
	t.Parallel()

	p := newPipeline(t)
	sections := []model.PageSection{
		{ID: "a", TemplateID: "hero-1", Order: 0},
		{ID: "b", TemplateID: "vanished", Order: 1},
		{ID: "c", TemplateID: "footer-1", Order: 2},
	}

	html := p.RenderStandalone(sections, cleanTheme(t))
	assert.Contains(t, html, "hero-section")
	assert.Contains(t, html, "footer-section")
}

func TestRenderingIsPure(t *testing.T) {
	t.Parallel()

	p := newPipeline(t)
	sections := []model.PageSection{
		{ID: "a", TemplateID: "hero-1", Order: 0, Content: map[string]string{"title": "One"}},
		{ID: "b", TemplateID: "pricing-3tier", Order: 1},
		{ID: "c", TemplateID: "product-carousel", Order: 2, Images: []model.PageImage{{ID: "i", Src: "p.png"}}},
	}
	th := cleanTheme(t)

	first := p.RenderStandalone(sections, th)
	second := p.RenderStandalone(sections, th)
	assert.Equal(t, first, second)

	htmlA, cssA := p.RenderLinked(sections, th)
	htmlB, cssB := p.RenderLinked(sections, th)
	assert.Equal(t, htmlA, htmlB)
	assert.Equal(t, cssA, cssB)
}

func TestSectionsRenderInOrder(t *testing.T) {
	t.Parallel()

	p := newPipeline(t)
	// Deliberately out of slice order: the order field wins.
	sections := []model.PageSection{
		{ID: "b", TemplateID: "footer-1", Order: 1},
		{ID: "a", TemplateID: "hero-1", Order: 0},
	}

	html, _ := p.RenderLinked(sections, cleanTheme(t))
	hero := strings.Index(html, "hero-section")
	footer := strings.Index(html, "footer-section")
	require.GreaterOrEqual(t, hero, 0)
	require.GreaterOrEqual(t, footer, 0)
	assert.Less(t, hero, footer)
}

func TestLinkedModeReferencesStylesheet(t *testing.T) {
	t.Parallel()

	p := newPipeline(t)
	html, css := p.RenderLinked(nil, cleanTheme(t))

	assert.Contains(t, html, `<link rel="stylesheet" href="style.css">`)
	assert.NotContains(t, html, "<style>")
	assert.Contains(t, css, "--primary-color:")
}

func TestStandaloneModeInlinesCSS(t *testing.T) {
	t.Parallel()

	p := newPipeline(t)
	html := p.RenderStandalone(nil, cleanTheme(t))

	assert.Contains(t, html, "<style>")
	assert.Contains(t, html, "--primary-color:")
	assert.NotContains(t, html, `href="style.css"`)
}

func TestStandaloneMatchesLinkedBody(t *testing.T) {
	t.Parallel()

	p := newPipeline(t)
	sections := []model.PageSection{
		{ID: "a", TemplateID: "hero-1", Order: 0},
		{ID: "b", TemplateID: "cta-1", Order: 1},
	}
	th := cleanTheme(t)

	standalone := p.RenderStandalone(sections, th)
	linked, css := p.RenderLinked(sections, th)

	bodyOf := func(doc string) string {
		start := strings.Index(doc, "<body>")
		end := strings.Index(doc, "</body>")
		require.Greater(t, end, start)
		return doc[start:end]
	}
	assert.Equal(t, bodyOf(linked), bodyOf(standalone))
	assert.Contains(t, standalone, css)
}

// Package classify maps free-text phrases to section templates via keyword
// scoring. It is a thin utility over the catalog's category keyword table.
package classify

import (
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/pagentum/pagentum/internal/catalog"
	"github.com/pagentum/pagentum/internal/model"
)

var phraseSplit = regexp.MustCompile(`[,\n]+`)

// Classifier produces section batches from free-text page descriptions.
type Classifier struct {
	catalog *catalog.Catalog
}

// New creates a classifier over the given catalog.
func New(cat *catalog.Catalog) *Classifier {
	return &Classifier{catalog: cat}
}

// Classify splits the input on commas and newlines and scores each phrase
// against every category: the longest keyword found as a case-insensitive
// substring wins, and ties keep the earliest category in the catalog's fixed
// category order. Unmatched phrases produce nothing. Non-empty input that
// matches nothing at all falls back to a single hero section. Returned
// sections carry batch-local order values starting at 0; the caller offsets
// them into the existing document.
func (c *Classifier) Classify(input string) []model.PageSection {
	var phrases []string
	for _, raw := range phraseSplit.Split(strings.ToLower(input), -1) {
		if phrase := strings.TrimSpace(raw); phrase != "" {
			phrases = append(phrases, phrase)
		}
	}
	if len(phrases) == 0 {
		return nil
	}

	var sections []model.PageSection
	for _, phrase := range phrases {
		category, matched := c.bestCategory(phrase)
		if !matched {
			continue
		}
		tmpl, ok := c.catalog.FirstInCategory(category)
		if !ok {
			continue
		}
		sections = append(sections, newSection(tmpl, len(sections)))
	}

	if len(sections) == 0 {
		if tmpl, ok := c.catalog.FirstInCategory("hero"); ok {
			sections = append(sections, newSection(tmpl, 0))
		}
	}

	return sections
}

// bestCategory scores a lowercased phrase. Later categories only win with a
// strictly longer keyword match.
func (c *Classifier) bestCategory(phrase string) (string, bool) {
	best := ""
	bestScore := 0
	for _, cat := range c.catalog.Categories() {
		for _, keyword := range cat.Keywords {
			if strings.Contains(phrase, keyword) && len(keyword) > bestScore {
				bestScore = len(keyword)
				best = cat.Name
			}
		}
	}
	return best, bestScore > 0
}

// Suggest returns up to five template names whose category keywords overlap
// the query, for interactive completion.
func (c *Classifier) Suggest(query string) []string {
	lower := strings.ToLower(strings.TrimSpace(query))
	if lower == "" {
		return nil
	}

	seen := make(map[string]bool)
	var suggestions []string
	for _, cat := range c.catalog.Categories() {
		for _, keyword := range cat.Keywords {
			if !strings.Contains(keyword, lower) && !strings.Contains(lower, keyword) {
				continue
			}
			for _, tmpl := range c.catalog.ByCategory(cat.Name) {
				if seen[tmpl.Name] {
					continue
				}
				seen[tmpl.Name] = true
				suggestions = append(suggestions, tmpl.Name)
				if len(suggestions) == 5 {
					return suggestions
				}
			}
			break
		}
	}
	return suggestions
}

func newSection(tmpl model.SectionTemplate, order int) model.PageSection {
	return model.PageSection{
		ID:         uuid.NewString(),
		TemplateID: tmpl.ID,
		Order:      order,
		Content:    model.CloneContent(tmpl.DefaultContent),
	}
}

// Package document implements the ordered section collection behind a page.
// Every mutation leaves section order values a contiguous 0-based permutation
// and stamps the project's updatedAt.
package document

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/pagentum/pagentum/internal/catalog"
	"github.com/pagentum/pagentum/internal/model"
	pagerrors "github.com/pagentum/pagentum/pkg/errors"
)

// Model wraps a project with the catalog-aware mutation operations.
type Model struct {
	project *model.Project
	catalog *catalog.Catalog
}

// New creates a document model over the given project.
func New(project *model.Project, cat *catalog.Catalog) *Model {
	return &Model{project: project, catalog: cat}
}

// Project exposes the underlying project.
func (m *Model) Project() *model.Project {
	return m.project
}

// AddSection appends a new section instantiated from a catalog template. The
// new section starts with a copy of the template's default content and takes
// the next order slot.
func (m *Model) AddSection(templateID string) (model.PageSection, error) {
	tmpl, ok := m.catalog.Template(templateID)
	if !ok {
		return model.PageSection{}, pagerrors.NewUnknownTemplateError(templateID)
	}

	section := model.PageSection{
		ID:         uuid.NewString(),
		TemplateID: tmpl.ID,
		Order:      len(m.project.Sections),
		Content:    model.CloneContent(tmpl.DefaultContent),
	}

	m.project.Sections = append(m.project.Sections, section)
	m.project.Touch()
	return section, nil
}

// Append adds pre-built sections (classifier output) at the end of the
// document, offsetting their batch-local order values past the existing
// sections.
func (m *Model) Append(sections []model.PageSection) {
	if len(sections) == 0 {
		return
	}
	base := len(m.project.Sections)
	for _, s := range sections {
		s.Order = base + s.Order
		m.project.Sections = append(m.project.Sections, s)
	}
	m.project.SortSections()
	m.renumber()
	m.project.Touch()
}

// RemoveSection deletes the section with the given id and renumbers the rest.
// Removing an unknown id is a deliberate no-op: the section is already gone,
// and the project is left untouched.
func (m *Model) RemoveSection(id string) {
	kept := m.project.Sections[:0]
	found := false
	for _, s := range m.project.Sections {
		if s.ID == id {
			found = true
			continue
		}
		kept = append(kept, s)
	}
	if !found {
		return
	}
	m.project.Sections = kept
	m.renumber()
	m.project.Touch()
}

// Reorder moves the section at position from to position to, both positions in
// the order-sorted sequence. Out-of-range indices are rejected rather than
// clamped. Reorder(i, i) leaves the sequence unchanged but still counts as a
// mutation for updatedAt purposes.
func (m *Model) Reorder(from, to int) error {
	n := len(m.project.Sections)
	if from < 0 || from >= n || to < 0 || to >= n {
		return fmt.Errorf("reorder: index out of range (from=%d, to=%d, sections=%d)", from, to, n)
	}

	m.project.SortSections()
	if from != to {
		moved := m.project.Sections[from]
		rest := append(m.project.Sections[:from], m.project.Sections[from+1:]...)
		rest = append(rest, model.PageSection{})
		copy(rest[to+1:], rest[to:])
		rest[to] = moved
		m.project.Sections = rest
	}
	m.renumber()
	m.project.Touch()
	return nil
}

// UpdateSectionContent replaces the mutable fields of one section. Updating an
// unknown id is a silent no-op: the edit target vanished, and dropping the
// edit beats corrupting another section.
func (m *Model) UpdateSectionContent(id string, content map[string]string, images []model.PageImage, layout *model.SectionLayout) {
	section := m.project.Section(id)
	if section == nil {
		return
	}
	section.Content = model.CloneContent(content)
	section.Images = images
	section.Layout = layout.Clone()
	m.project.Touch()
}

// Validate checks the structural invariants: order values form a strict
// 0-based permutation and no two sections share an id.
func (m *Model) Validate() error {
	seenOrder := make(map[int]bool, len(m.project.Sections))
	seenID := make(map[string]bool, len(m.project.Sections))
	n := len(m.project.Sections)

	for _, s := range m.project.Sections {
		if s.Order < 0 || s.Order >= n {
			return fmt.Errorf("section %s: order %d outside [0, %d)", s.ID, s.Order, n)
		}
		if seenOrder[s.Order] {
			return fmt.Errorf("section %s: duplicate order %d", s.ID, s.Order)
		}
		if seenID[s.ID] {
			return fmt.Errorf("duplicate section id %s", s.ID)
		}
		seenOrder[s.Order] = true
		seenID[s.ID] = true
	}
	return nil
}

// renumber rewrites order values to match slice positions.
func (m *Model) renumber() {
	for i := range m.project.Sections {
		m.project.Sections[i].Order = i
	}
}

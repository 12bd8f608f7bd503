package session

import (
	"fmt"

	"github.com/pagentum/pagentum/internal/model"
)

// Draft is a transient, section-scoped copy of the mutable fields opened by an
// edit action. Drafts only reach the document on an explicit commit, so a
// half-finished edit is never visible in a preview.
type Draft struct {
	SectionID string
	Content   map[string]string
	Images    []model.PageImage
	Layout    *model.SectionLayout
}

// BeginEdit opens a draft for a section. A session carries at most one
// in-flight draft at a time.
func (s *Session) BeginEdit(sectionID string) (*Draft, error) {
	if s.draft != nil {
		return nil, fmt.Errorf("edit already in progress for section %q", s.draft.SectionID)
	}

	section := s.project.Section(sectionID)
	if section == nil {
		return nil, fmt.Errorf("unknown section %q", sectionID)
	}

	clone := section.Clone()
	s.draft = &Draft{
		SectionID: sectionID,
		Content:   clone.Content,
		Images:    clone.Images,
		Layout:    clone.Layout,
	}
	return s.draft, nil
}

// Draft returns the in-flight draft, or nil.
func (s *Session) Draft() *Draft {
	return s.draft
}

// CommitDraft applies the in-flight draft to its section and closes it.
func (s *Session) CommitDraft() error {
	if s.draft == nil {
		return fmt.Errorf("no edit in progress")
	}
	s.doc.UpdateSectionContent(s.draft.SectionID, s.draft.Content, s.draft.Images, s.draft.Layout)
	s.draft = nil
	return nil
}

// DiscardDraft closes the in-flight draft without touching the project.
// Discarding when nothing is open is harmless.
func (s *Session) DiscardDraft() {
	s.draft = nil
}

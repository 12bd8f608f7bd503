// Package session coordinates UI-triggered operations against the document
// model, the theme registry, and the storage adapter. Every mutating action
// applies its document-level change and stamps the project's updatedAt; reads
// never do.
package session

import (
	"encoding/base64"
	"fmt"
	"mime"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/pagentum/pagentum/internal/catalog"
	"github.com/pagentum/pagentum/internal/classify"
	"github.com/pagentum/pagentum/internal/document"
	"github.com/pagentum/pagentum/internal/logger"
	"github.com/pagentum/pagentum/internal/model"
	"github.com/pagentum/pagentum/internal/store"
	"github.com/pagentum/pagentum/internal/theme"
)

// Session owns the single active project and the one in-flight edit draft.
type Session struct {
	project    *model.Project
	doc        *document.Model
	themes     *theme.Registry
	classifier *classify.Classifier
	store      store.Adapter
	log        *logger.Logger
	draft      *Draft
}

// New creates a session around an existing project.
func New(project *model.Project, cat *catalog.Catalog, themes *theme.Registry, adapter store.Adapter, log *logger.Logger) *Session {
	return &Session{
		project:    project,
		doc:        document.New(project, cat),
		themes:     themes,
		classifier: classify.New(cat),
		store:      adapter,
		log:        log,
	}
}

// NewProject builds the empty project a session starts with.
func NewProject(name string, themes *theme.Registry) *model.Project {
	now := model.NowMillis()
	return &model.Project{
		ID:        uuid.NewString(),
		Name:      name,
		Sections:  []model.PageSection{},
		Theme:     themes.DefaultTheme(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Project exposes the active project.
func (s *Session) Project() *model.Project {
	return s.project
}

// Document exposes the underlying document model.
func (s *Session) Document() *document.Model {
	return s.doc
}

// AddSection instantiates a catalog template at the end of the page.
func (s *Session) AddSection(templateID string) (model.PageSection, error) {
	section, err := s.doc.AddSection(templateID)
	if err != nil {
		return model.PageSection{}, err
	}
	s.log.WithFields(map[string]any{"template": templateID, "section": section.ID}).Debug("section added")
	return section, nil
}

// RemoveSection deletes a section by id.
func (s *Session) RemoveSection(id string) {
	s.doc.RemoveSection(id)
}

// Reorder moves the section at position from to position to.
func (s *Session) Reorder(from, to int) error {
	return s.doc.Reorder(from, to)
}

// SetTheme switches the active theme to a registry preset.
func (s *Session) SetTheme(name string) error {
	preset, ok := s.themes.Preset(name)
	if !ok {
		return fmt.Errorf("unknown theme %q", name)
	}
	s.project.Theme = preset
	s.project.Touch()
	return nil
}

// CycleTheme advances to the next preset and returns it.
func (s *Session) CycleTheme() model.ThemeConfig {
	s.project.Theme = s.themes.Next(s.project.Theme.Name)
	s.project.Touch()
	return s.project.Theme
}

// Generate classifies free text into sections and appends them to the page.
// It returns the appended batch.
func (s *Session) Generate(input string) []model.PageSection {
	batch := s.classifier.Classify(input)
	if len(batch) == 0 {
		return nil
	}
	s.doc.Append(batch)
	s.log.WithFields(map[string]any{"sections": len(batch)}).Debug("sections generated from text")
	return batch
}

// Save persists the project through the storage adapter.
func (s *Session) Save() error {
	if err := s.store.Save(s.project); err != nil {
		s.log.Error(err, "save failed")
		return err
	}
	s.log.WithFields(map[string]any{"project": s.project.Name}).Info("project saved")
	return nil
}

// Import replaces the project wholesale from a JSON payload. The imported
// project always gets a fresh id and updatedAt so it can never collide with
// the project it replaces once persisted.
func (s *Session) Import(data []byte) error {
	imported, err := store.ImportJSON(data)
	if err != nil {
		return err
	}

	imported.ID = uuid.NewString()
	*s.project = *imported
	s.project.SortSections()
	s.project.Touch()
	s.draft = nil
	s.log.WithFields(map[string]any{"project": s.project.Name}).Info("project imported")
	return nil
}

// AttachImage reads an image file and appends it to a section as a data URI.
// The read is single-shot: on failure nothing is attached.
func (s *Session) AttachImage(sectionID, path string) (model.PageImage, error) {
	section := s.project.Section(sectionID)
	if section == nil {
		return model.PageImage{}, fmt.Errorf("unknown section %q", sectionID)
	}

	data, err := store.ReadFile(path)
	if err != nil {
		return model.PageImage{}, err
	}

	mimeType := mime.TypeByExtension(filepath.Ext(path))
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}

	image := model.PageImage{
		ID:       uuid.NewString(),
		FileName: filepath.Base(path),
		Src:      fmt.Sprintf("data:%s;base64,%s", mimeType, base64.StdEncoding.EncodeToString(data)),
	}
	section.Images = append(section.Images, image)
	s.project.Touch()
	return image, nil
}

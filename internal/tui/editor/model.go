package editor

import (
	"sort"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pagentum/pagentum/internal/catalog"
	"github.com/pagentum/pagentum/internal/model"
	"github.com/pagentum/pagentum/internal/session"
)

// Model is the main editor model
type Model struct {
	// Core data
	session *session.Session
	catalog *catalog.Catalog

	// UI state
	viewMode ViewMode
	cursor   int

	// Edit state
	fields   []string
	fieldIdx int
	input    textinput.Model

	// Confirmation state
	confirmID   string
	confirmName string

	// Status line
	statusMsg string
	statusErr bool

	// Dimensions
	width  int
	height int

	quitting bool
}

// NewModel creates a new editor model
func NewModel(sess *session.Session, cat *catalog.Catalog) Model {
	ti := textinput.New()
	ti.CharLimit = 512
	ti.Width = 60

	return Model{
		session:  sess,
		catalog:  cat,
		viewMode: ViewSections,
		input:    ti,
		width:    80,
		height:   24,
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// sections returns the project sections in page order.
func (m Model) sections() []model.PageSection {
	secs := m.session.Project().Sections
	sorted := make([]model.PageSection, len(secs))
	copy(sorted, secs)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Order < sorted[j].Order })
	return sorted
}

// templateName resolves a template id to its display name, falling back to the
// raw id for sections whose template is no longer in the catalog.
func (m Model) templateName(templateID string) string {
	if tmpl, ok := m.catalog.Template(templateID); ok {
		return tmpl.Name
	}
	return templateID
}

// clampCursor keeps the cursor inside the section list after removals.
func (m *Model) clampCursor() {
	n := len(m.session.Project().Sections)
	if n == 0 {
		m.cursor = 0
		return
	}
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// setStatus replaces the transient status line.
func (m *Model) setStatus(msg string, isErr bool) {
	m.statusMsg = msg
	m.statusErr = isErr
}

// GetViewMode returns the current view mode
func (m *Model) GetViewMode() ViewMode {
	return m.viewMode
}

// GetCursor returns the current cursor position
func (m *Model) GetCursor() int {
	return m.cursor
}

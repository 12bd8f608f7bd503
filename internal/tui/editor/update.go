package editor

import (
	"fmt"
	"sort"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pagentum/pagentum/internal/session"
)

// Update handles incoming messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = m.width - 8
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case SaveResultMsg:
		if msg.Err != nil {
			m.setStatus(fmt.Sprintf("Save failed: %s", msg.Err), true)
		} else {
			m.setStatus("Project saved", false)
		}
		return m, nil
	}

	return m, nil
}

// handleKeyPress handles keyboard input based on current view mode
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.viewMode {
	case ViewSections:
		return m.handleSectionKeys(msg)
	case ViewEdit:
		return m.handleEditKeys(msg)
	case ViewConfirm:
		return m.handleConfirmKeys(msg)
	case ViewHelp:
		return m.handleHelpKeys(msg)
	default:
		return m, nil
	}
}

// handleSectionKeys handles keys in the section list view
func (m Model) handleSectionKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	secs := m.sections()

	switch msg.String() {
	case "q", "ctrl+c":
		m.quitting = true
		return m, tea.Quit

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case "down", "j":
		if m.cursor < len(secs)-1 {
			m.cursor++
		}
		return m, nil

	case "shift+up", "K":
		if m.cursor > 0 {
			if err := m.session.Reorder(m.cursor, m.cursor-1); err == nil {
				m.cursor--
			}
		}
		return m, nil

	case "shift+down", "J":
		if m.cursor < len(secs)-1 {
			if err := m.session.Reorder(m.cursor, m.cursor+1); err == nil {
				m.cursor++
			}
		}
		return m, nil

	case "enter":
		if len(secs) == 0 {
			return m, nil
		}
		return m.openDraft(secs[m.cursor].ID)

	case "d":
		if len(secs) == 0 {
			return m, nil
		}
		m.confirmID = secs[m.cursor].ID
		m.confirmName = m.templateName(secs[m.cursor].TemplateID)
		m.viewMode = ViewConfirm
		return m, nil

	case "t":
		next := m.session.CycleTheme()
		m.setStatus(fmt.Sprintf("Theme: %s", next.Name), false)
		return m, nil

	case "s":
		m.setStatus("Saving…", false)
		return m, saveCmd(m.session)

	case "?":
		m.viewMode = ViewHelp
		return m, nil
	}

	return m, nil
}

// openDraft begins an edit draft for a section and switches to the edit view.
func (m Model) openDraft(sectionID string) (tea.Model, tea.Cmd) {
	draft, err := m.session.BeginEdit(sectionID)
	if err != nil {
		m.setStatus(err.Error(), true)
		return m, nil
	}

	m.fields = make([]string, 0, len(draft.Content))
	for key := range draft.Content {
		m.fields = append(m.fields, key)
	}
	sort.Strings(m.fields)

	m.fieldIdx = 0
	m.loadField(draft)
	m.viewMode = ViewEdit
	m.statusMsg = ""
	return m, textinput.Blink
}

// loadField points the text input at the current draft field.
func (m *Model) loadField(draft *session.Draft) {
	if len(m.fields) == 0 {
		m.input.SetValue("")
		m.input.Blur()
		return
	}
	m.input.SetValue(draft.Content[m.fields[m.fieldIdx]])
	m.input.CursorEnd()
	m.input.Focus()
}

// storeField writes the text input back into the current draft field.
func (m *Model) storeField(draft *session.Draft) {
	if len(m.fields) == 0 {
		return
	}
	draft.Content[m.fields[m.fieldIdx]] = m.input.Value()
}

// handleEditKeys handles keys while a draft is open
func (m Model) handleEditKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	draft := m.session.Draft()
	if draft == nil {
		m.viewMode = ViewSections
		return m, nil
	}

	switch msg.String() {
	case "esc":
		m.session.DiscardDraft()
		m.viewMode = ViewSections
		m.setStatus("Changes discarded", false)
		return m, nil

	case "ctrl+s":
		m.storeField(draft)
		if err := m.session.CommitDraft(); err != nil {
			m.setStatus(err.Error(), true)
			return m, nil
		}
		m.viewMode = ViewSections
		m.setStatus("Section updated", false)
		return m, nil

	case "tab", "enter":
		if len(m.fields) > 0 {
			m.storeField(draft)
			m.fieldIdx = (m.fieldIdx + 1) % len(m.fields)
			m.loadField(draft)
		}
		return m, nil

	case "shift+tab":
		if len(m.fields) > 0 {
			m.storeField(draft)
			m.fieldIdx = (m.fieldIdx + len(m.fields) - 1) % len(m.fields)
			m.loadField(draft)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleConfirmKeys handles keys in the delete confirmation view
func (m Model) handleConfirmKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "enter":
		m.session.RemoveSection(m.confirmID)
		m.confirmID = ""
		m.confirmName = ""
		m.clampCursor()
		m.viewMode = ViewSections
		m.setStatus("Section removed", false)
		return m, nil

	case "n", "esc", "q":
		m.confirmID = ""
		m.confirmName = ""
		m.viewMode = ViewSections
		return m, nil
	}
	return m, nil
}

// handleHelpKeys handles keys in the help view
func (m Model) handleHelpKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	default:
		m.viewMode = ViewSections
		return m, nil
	}
}

// saveCmd persists the project through the session's storage adapter.
func saveCmd(sess *session.Session) tea.Cmd {
	return func() tea.Msg {
		return SaveResultMsg{Err: sess.Save()}
	}
}

package editor

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pagentum/pagentum/internal/catalog"
	"github.com/pagentum/pagentum/internal/logger"
	"github.com/pagentum/pagentum/internal/session"
	"github.com/pagentum/pagentum/internal/store"
	"github.com/pagentum/pagentum/internal/theme"
)

func newTestModel(t *testing.T, templateIDs ...string) Model {
	t.Helper()

	cat, err := catalog.Default()
	require.NoError(t, err)
	themes, err := theme.Default()
	require.NoError(t, err)

	project := session.NewProject("Test Page", themes)
	sess := session.New(project, cat, themes, store.NewMemoryStore(), logger.Discard())
	for _, id := range templateIDs {
		_, err := sess.AddSection(id)
		require.NoError(t, err)
	}

	return NewModel(sess, cat)
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestUpdate_WindowSizeMsg(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})

	em, ok := updated.(Model)
	require.True(t, ok)
	assert.Equal(t, 100, em.width)
	assert.Equal(t, 40, em.height)
}

func TestUpdate_CursorMovement(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, "hero-1", "features-3col", "footer-1")

	updated, _ := m.Update(keyRune('j'))
	m = updated.(Model)
	assert.Equal(t, 1, m.GetCursor())

	updated, _ = m.Update(keyRune('k'))
	m = updated.(Model)
	assert.Equal(t, 0, m.GetCursor())

	// Cursor does not move past the ends
	updated, _ = m.Update(keyRune('k'))
	m = updated.(Model)
	assert.Equal(t, 0, m.GetCursor())
}

func TestUpdate_ReorderFollowsCursor(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, "hero-1", "features-3col")

	updated, _ := m.Update(keyRune('J'))
	m = updated.(Model)

	require.Equal(t, 1, m.GetCursor())
	secs := m.sections()
	require.Len(t, secs, 2)
	assert.Equal(t, "features-3col", secs[0].TemplateID)
	assert.Equal(t, "hero-1", secs[1].TemplateID)
}

func TestUpdate_ReorderAtBottomIsNoop(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, "hero-1", "features-3col")
	m.cursor = 1

	updated, _ := m.Update(keyRune('J'))
	m = updated.(Model)

	assert.Equal(t, 1, m.GetCursor())
	assert.Equal(t, "features-3col", m.sections()[1].TemplateID)
}

func TestUpdate_DeleteFlow(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, "hero-1", "footer-1")

	updated, _ := m.Update(keyRune('d'))
	m = updated.(Model)
	require.Equal(t, ViewConfirm, m.GetViewMode())

	updated, _ = m.Update(keyRune('y'))
	m = updated.(Model)

	assert.Equal(t, ViewSections, m.GetViewMode())
	secs := m.sections()
	require.Len(t, secs, 1)
	assert.Equal(t, "footer-1", secs[0].TemplateID)
}

func TestUpdate_DeleteDeclined(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, "hero-1")

	updated, _ := m.Update(keyRune('d'))
	m = updated.(Model)
	updated, _ = m.Update(keyRune('n'))
	m = updated.(Model)

	assert.Equal(t, ViewSections, m.GetViewMode())
	assert.Len(t, m.sections(), 1)
}

func TestUpdate_EditCommit(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, "hero-1")

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(Model)
	require.Equal(t, ViewEdit, m.GetViewMode())
	require.NotNil(t, m.session.Draft())
	require.NotEmpty(t, m.fields)

	m.input.SetValue("Launch Week")
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	m = updated.(Model)

	assert.Equal(t, ViewSections, m.GetViewMode())
	assert.Nil(t, m.session.Draft())
	sec := m.sections()[0]
	assert.Equal(t, "Launch Week", sec.Content[m.fields[0]])
}

func TestUpdate_EditDiscard(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, "hero-1")
	original := m.sections()[0].Content

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(Model)
	m.input.SetValue("never applied")

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = updated.(Model)

	assert.Equal(t, ViewSections, m.GetViewMode())
	assert.Nil(t, m.session.Draft())
	assert.Equal(t, original, m.sections()[0].Content)
}

func TestUpdate_TabCyclesFields(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, "hero-1")

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(Model)
	require.Greater(t, len(m.fields), 1)

	first := m.fieldIdx
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = updated.(Model)
	assert.Equal(t, first+1, m.fieldIdx)

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = updated.(Model)
	assert.Equal(t, first, m.fieldIdx)
}

func TestUpdate_ThemeCycle(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	before := m.session.Project().Theme.Name

	updated, _ := m.Update(keyRune('t'))
	m = updated.(Model)

	assert.NotEqual(t, before, m.session.Project().Theme.Name)
	assert.Contains(t, m.statusMsg, m.session.Project().Theme.Name)
}

func TestUpdate_SaveReportsResult(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, "hero-1")

	_, cmd := m.Update(keyRune('s'))
	require.NotNil(t, cmd)

	msg := cmd()
	result, ok := msg.(SaveResultMsg)
	require.True(t, ok)
	assert.NoError(t, result.Err)

	updated, _ := m.Update(result)
	m = updated.(Model)
	assert.Equal(t, "Project saved", m.statusMsg)
}

func TestUpdate_QuitKey(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	updated, cmd := m.Update(keyRune('q'))
	m = updated.(Model)

	assert.True(t, m.quitting)
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

package editor

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View renders the current model state
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	switch m.viewMode {
	case ViewSections:
		return m.renderSectionList()
	case ViewEdit:
		return m.renderEditView()
	case ViewConfirm:
		return m.renderConfirmView()
	case ViewHelp:
		return m.renderHelpView()
	default:
		return m.renderSectionList()
	}
}

// renderSectionList renders the main section list view
func (m Model) renderSectionList() string {
	var content strings.Builder

	project := m.session.Project()
	content.WriteString(m.renderHeader())
	content.WriteString("\n")

	secs := m.sections()
	if len(secs) == 0 {
		content.WriteString(itemStyle.Render("No sections yet. Add some with `pagentum add` or `pagentum generate`."))
		content.WriteString("\n")
	}
	for i, sec := range secs {
		line := fmt.Sprintf("%s %s", orderStyle.Render(fmt.Sprintf("%2d.", i+1)), m.templateName(sec.TemplateID))
		if i == m.cursor {
			content.WriteString(selectedItemStyle.Render(line))
		} else {
			content.WriteString(itemStyle.Render(line))
		}
		content.WriteString("\n")
	}

	content.WriteString(m.renderStatus())
	content.WriteString(m.renderFooter(fmt.Sprintf(
		"%d sections · theme %s · ↑/↓ move cursor · K/J reorder · enter edit · d delete · t theme · s save · ? help · q quit",
		len(secs), project.Theme.Name)))

	return content.String()
}

// renderEditView renders the open draft's field inputs
func (m Model) renderEditView() string {
	var content strings.Builder

	draft := m.session.Draft()
	content.WriteString(m.renderHeader())
	content.WriteString("\n")

	if draft == nil {
		return content.String()
	}

	if sec := m.session.Project().Section(draft.SectionID); sec != nil {
		content.WriteString(titleStyle.Render("Editing " + m.templateName(sec.TemplateID)))
		content.WriteString("\n")
	}

	if len(m.fields) == 0 {
		content.WriteString(itemStyle.Render("This section has no editable fields."))
		content.WriteString("\n")
	}
	for i, field := range m.fields {
		if i == m.fieldIdx {
			content.WriteString(itemStyle.Render(fieldLabelStyle.Render(field)))
			content.WriteString("\n")
			content.WriteString(itemStyle.Render(m.input.View()))
		} else {
			value := draft.Content[field]
			if len(value) > 48 {
				value = value[:45] + "..."
			}
			content.WriteString(itemStyle.Render(fieldDoneStyle.Render(fmt.Sprintf("%s: %s", field, value))))
		}
		content.WriteString("\n")
	}

	content.WriteString(m.renderStatus())
	content.WriteString(m.renderFooter("tab next field · shift+tab previous · ctrl+s apply · esc discard"))

	return content.String()
}

// renderConfirmView renders the delete confirmation prompt
func (m Model) renderConfirmView() string {
	box := confirmBoxStyle.Render(fmt.Sprintf(
		"Delete section %q?\n\n%s yes   %s no",
		m.confirmName,
		helpKeyStyle.Render("y"),
		helpKeyStyle.Render("n")))

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

// renderHelpView renders the key binding reference
func (m Model) renderHelpView() string {
	var content strings.Builder

	content.WriteString(titleStyle.Render("Pagentum Editor — Keys"))
	content.WriteString("\n")

	bindings := []struct {
		key  string
		desc string
	}{
		{"↑/k, ↓/j", "move the cursor"},
		{"K/J, shift+↑/↓", "move the selected section"},
		{"enter", "edit the selected section"},
		{"d", "delete the selected section"},
		{"t", "cycle through theme presets"},
		{"s", "save the project"},
		{"?", "toggle this help"},
		{"q", "quit"},
	}
	for _, b := range bindings {
		content.WriteString(itemStyle.Render(fmt.Sprintf("%s  %s", helpKeyStyle.Render(fmt.Sprintf("%-16s", b.key)), b.desc)))
		content.WriteString("\n")
	}

	content.WriteString(m.renderFooter("press any key to go back"))
	return content.String()
}

// renderHeader renders the project title bar
func (m Model) renderHeader() string {
	return titleStyle.Render("📄 " + m.session.Project().Name)
}

// renderStatus renders the transient status line, if any
func (m Model) renderStatus() string {
	if m.statusMsg == "" {
		return ""
	}
	if m.statusErr {
		return itemStyle.Render(statusErrStyle.Render(m.statusMsg)) + "\n"
	}
	return itemStyle.Render(statusOkStyle.Render(m.statusMsg)) + "\n"
}

// renderFooter renders the key hint footer
func (m Model) renderFooter(hint string) string {
	return footerStyle.Render(hint)
}

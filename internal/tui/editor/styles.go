package editor

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	// Colors
	primaryColor = lipgloss.Color("33")  // Blue
	successColor = lipgloss.Color("42")  // Green
	errorColor   = lipgloss.Color("196") // Red
	mutedColor   = lipgloss.Color("245") // Gray
	accentColor  = lipgloss.Color("212") // Pink

	// Title style
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			PaddingLeft(2).
			PaddingRight(2).
			MarginBottom(1)

	// Section item styles
	itemStyle = lipgloss.NewStyle().
			PaddingLeft(2).
			PaddingRight(2)

	selectedItemStyle = lipgloss.NewStyle().
				PaddingLeft(2).
				PaddingRight(2).
				Foreground(accentColor).
				Bold(true).
				BorderStyle(lipgloss.NormalBorder()).
				BorderLeft(true).
				BorderForeground(primaryColor)

	orderStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	// Edit view styles
	fieldLabelStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor)

	fieldDoneStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	// Status line styles
	statusOkStyle = lipgloss.NewStyle().
			Foreground(successColor)

	statusErrStyle = lipgloss.NewStyle().
			Foreground(errorColor).
			Bold(true)

	// Footer style
	footerStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			BorderStyle(lipgloss.NormalBorder()).
			BorderTop(true).
			BorderForeground(mutedColor).
			PaddingTop(1).
			MarginTop(1)

	// Confirmation box style
	confirmBoxStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(errorColor).
			Padding(1, 3)

	// Help view style
	helpKeyStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor)
)

package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/pagentum/pagentum/internal/tui/editor"
)

func newEditCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Launch the interactive page editor",
		Long:  `Launch the interactive TUI editor to reorder, edit and restyle the page's sections.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEdit(flags)
		},
	}

	return cmd
}

func runEdit(flags *rootFlags) error {
	if !termIsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("the editor requires an interactive terminal; use the other pagentum commands in scripts")
	}

	ws, err := openWorkspace(flags)
	if err != nil {
		return err
	}

	m := editor.NewModel(ws.session, ws.catalog)
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		ws.log.Error(err, "editor execution failed")
		return fmt.Errorf("failed to run editor: %w", err)
	}

	return nil
}

var termIsTerminal = func(fd int) bool {
	return term.IsTerminal(fd)
}

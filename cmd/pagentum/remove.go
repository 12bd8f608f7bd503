package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRemoveCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove <section-id>",
		Short: "Remove a section from the page",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRemove(cmd, flags, args[0])
		},
	}

	return cmd
}

func runRemove(cmd *cobra.Command, flags *rootFlags, sectionID string) error {
	ws, err := openWorkspace(flags)
	if err != nil {
		return err
	}

	if ws.session.Project().Section(sectionID) == nil {
		return newCommandError("remove section", fmt.Sprintf("looking up section %q", sectionID),
			fmt.Errorf("section not found"),
			"Run 'pagentum list' to see the section ids on this page.")
	}

	ws.session.RemoveSection(sectionID)
	if err := ws.save(); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Removed section %s\n", sectionID)
	return nil
}

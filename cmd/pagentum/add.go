package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newAddCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <template-id>",
		Short: "Append a section instantiated from a catalog template",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdd(cmd, flags, args[0])
		},
	}

	return cmd
}

func runAdd(cmd *cobra.Command, flags *rootFlags, templateID string) error {
	ws, err := openWorkspace(flags)
	if err != nil {
		return err
	}

	section, err := ws.session.AddSection(templateID)
	if err != nil {
		return newCommandError("add section", fmt.Sprintf("instantiating template %q", templateID), err,
			"Run 'pagentum templates' to list the available template ids.")
	}

	if err := ws.save(); err != nil {
		return err
	}

	tmpl, _ := ws.catalog.Template(templateID)
	fmt.Fprintf(cmd.OutOrStdout(), "Added %s (%s) at position %d\n", tmpl.Name, section.ID, section.Order+1)
	return nil
}

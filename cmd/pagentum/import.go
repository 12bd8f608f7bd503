package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newImportCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Replace the saved page with an exported JSON document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(cmd, flags, args[0])
		},
	}

	return cmd
}

func runImport(cmd *cobra.Command, flags *rootFlags, path string) error {
	ws, err := openWorkspace(flags)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return newCommandError("import project", "reading "+path, err,
			"Check that the file exists and is readable.")
	}

	if err := ws.session.Import(data); err != nil {
		return newCommandError("import project", "validating "+path, err,
			"The file must be a Pagentum export with id, sections and theme fields.")
	}

	if err := ws.save(); err != nil {
		return err
	}

	project := ws.session.Project()
	fmt.Fprintf(cmd.OutOrStdout(), "Imported %q (%d sections) as project %s\n",
		project.Name, len(project.Sections), project.ID)
	return nil
}

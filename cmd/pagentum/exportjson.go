package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pagentum/pagentum/internal/model"
	"github.com/pagentum/pagentum/internal/store"
)

type exportJSONOptions struct {
	outFile string
}

func newExportJSONCmd(flags *rootFlags) *cobra.Command {
	opts := &exportJSONOptions{}

	cmd := &cobra.Command{
		Use:   "export-json",
		Short: "Export the page as a portable JSON document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExportJSON(cmd, flags, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.outFile, "out", "o", "", "Output file (defaults to a name derived from the page title)")

	return cmd
}

func runExportJSON(cmd *cobra.Command, flags *rootFlags, opts *exportJSONOptions) error {
	ws, err := openWorkspace(flags)
	if err != nil {
		return err
	}

	project := ws.session.Project()
	data, err := store.ExportJSON(project)
	if err != nil {
		return newCommandError("export project", "encoding the page", err,
			"The saved page may be corrupt; run 'pagentum list' to inspect it.")
	}

	path := opts.outFile
	if path == "" {
		path = store.ExportFileName(project.Name, model.NowMillis())
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return newCommandError("export project", "writing "+path, err,
			"Check free disk space and directory permissions.")
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Exported %s\n", path)
	return nil
}

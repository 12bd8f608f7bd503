package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/pagentum/pagentum/internal/render"
)

type exportOptions struct {
	standalone bool
	outDir     string
}

func newExportCmd(flags *rootFlags) *cobra.Command {
	opts := &exportOptions{}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Render the page to static HTML",
		Long: `Renders the saved page. The default output is an index.html that links a
style.css written next to it; --standalone inlines the stylesheet into a
single page.html instead.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd, flags, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.standalone, "standalone", false, "Write a single self-contained page.html")
	cmd.Flags().StringVarP(&opts.outDir, "out", "o", ".", "Directory to write the exported files into")

	return cmd
}

func runExport(cmd *cobra.Command, flags *rootFlags, opts *exportOptions) error {
	ws, err := openWorkspace(flags)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(opts.outDir, 0o755); err != nil {
		return newCommandError("export page", "creating the output directory", err,
			"Point --out at a writable directory.")
	}

	project := ws.session.Project()
	pipeline := render.New(ws.catalog)

	if opts.standalone {
		page := pipeline.RenderStandalone(project.Sections, project.Theme)
		path := filepath.Join(opts.outDir, "page.html")
		if err := os.WriteFile(path, []byte(page), 0o644); err != nil {
			return newCommandError("export page", "writing page.html", err,
				"Check free disk space and directory permissions.")
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Exported %s\n", path)
		return nil
	}

	html, css := pipeline.RenderLinked(project.Sections, project.Theme)
	htmlPath := filepath.Join(opts.outDir, "index.html")
	cssPath := filepath.Join(opts.outDir, render.StylesheetName)
	if err := os.WriteFile(htmlPath, []byte(html), 0o644); err != nil {
		return newCommandError("export page", "writing index.html", err,
			"Check free disk space and directory permissions.")
	}
	if err := os.WriteFile(cssPath, []byte(css), 0o644); err != nil {
		return newCommandError("export page", "writing "+render.StylesheetName, err,
			"Check free disk space and directory permissions.")
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Exported %s and %s\n", htmlPath, cssPath)
	return nil
}

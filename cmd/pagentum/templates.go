package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

type templatesOptions struct {
	jsonOutput bool
	category   string
}

func newTemplatesCmd(flags *rootFlags) *cobra.Command {
	opts := &templatesOptions{}

	cmd := &cobra.Command{
		Use:   "templates",
		Short: "List the section templates in the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTemplates(cmd, flags, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")
	cmd.Flags().StringVar(&opts.category, "category", "", "Only show templates in this category")

	return cmd
}

func runTemplates(cmd *cobra.Command, flags *rootFlags, opts *templatesOptions) error {
	ws, err := openWorkspace(flags)
	if err != nil {
		return err
	}

	templates := ws.catalog.Templates()
	if opts.category != "" {
		templates = ws.catalog.ByCategory(opts.category)
		if len(templates) == 0 {
			return newCommandError("list templates", fmt.Sprintf("resolving category %q", opts.category),
				fmt.Errorf("unknown category"),
				"Run 'pagentum templates' without --category to see every template and its category.")
		}
	}

	if opts.jsonOutput {
		data, err := json.MarshalIndent(templates, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal templates: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	}

	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "ID\tNAME\tCATEGORY\tDESCRIPTION")
	for _, tmpl := range templates {
		fmt.Fprintf(writer, "%s\t%s\t%s\t%s\n", tmpl.ID, tmpl.Name, tmpl.Category, tmpl.Description)
	}
	return writer.Flush()
}

package main

import (
	"encoding/json"
	"fmt"
	"sort"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/pagentum/pagentum/internal/model"
)

type listOptions struct {
	jsonOutput bool
}

func newListCmd(flags *rootFlags) *cobra.Command {
	opts := &listOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the sections of the saved page",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, flags, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

func runList(cmd *cobra.Command, flags *rootFlags, opts *listOptions) error {
	ws, err := openWorkspace(flags)
	if err != nil {
		return err
	}

	project := ws.session.Project()
	sections := make([]model.PageSection, len(project.Sections))
	copy(sections, project.Sections)
	sort.SliceStable(sections, func(i, j int) bool { return sections[i].Order < sections[j].Order })

	if opts.jsonOutput {
		return renderListJSON(cmd, ws, sections)
	}

	if len(sections) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "The page has no sections yet.")
		fmt.Fprintln(cmd.OutOrStdout(), "\nRun 'pagentum add <template-id>' or 'pagentum generate <description>' to add some.")
		return nil
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s · theme %s · updated %s\n\n",
		project.Name, project.Theme.Name, formatUpdatedAt(project.UpdatedAt))

	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "POS\tID\tTEMPLATE\tNAME")
	for i, sec := range sections {
		name := sec.TemplateID
		if tmpl, ok := ws.catalog.Template(sec.TemplateID); ok {
			name = tmpl.Name
		}
		fmt.Fprintf(writer, "%d\t%s\t%s\t%s\n", i+1, sec.ID, sec.TemplateID, name)
	}
	return writer.Flush()
}

type listEntry struct {
	Position   int    `json:"position"`
	ID         string `json:"id"`
	TemplateID string `json:"templateId"`
	Name       string `json:"name"`
}

func renderListJSON(cmd *cobra.Command, ws *workspace, sections []model.PageSection) error {
	entries := make([]listEntry, len(sections))
	for i, sec := range sections {
		name := sec.TemplateID
		if tmpl, ok := ws.catalog.Template(sec.TemplateID); ok {
			name = tmpl.Name
		}
		entries[i] = listEntry{Position: i + 1, ID: sec.ID, TemplateID: sec.TemplateID, Name: name}
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal section list: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}

func formatUpdatedAt(millis int64) string {
	if millis == 0 {
		return "never"
	}
	return time.UnixMilli(millis).Format("2006-01-02 15:04")
}

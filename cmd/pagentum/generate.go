package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newGenerateCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate <description>...",
		Short: "Append sections matched from a free-text page description",
		Long: `Splits the description on commas and newlines and appends one section per
recognized phrase, e.g. "hero, features, pricing" adds three sections.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, flags, strings.Join(args, " "))
		},
	}

	return cmd
}

func runGenerate(cmd *cobra.Command, flags *rootFlags, input string) error {
	ws, err := openWorkspace(flags)
	if err != nil {
		return err
	}

	added := ws.session.Generate(input)
	if len(added) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No sections matched the description.")
		return nil
	}

	if err := ws.save(); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Added %d sections:\n", len(added))
	for _, sec := range added {
		name := sec.TemplateID
		if tmpl, ok := ws.catalog.Template(sec.TemplateID); ok {
			name = tmpl.Name
		}
		fmt.Fprintf(cmd.OutOrStdout(), "  %d. %s\n", sec.Order+1, name)
	}
	return nil
}

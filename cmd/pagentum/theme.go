package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newThemeCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme [name]",
		Short: "Show the theme presets, or apply one to the page",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return runThemeList(cmd, flags)
			}
			return runThemeSet(cmd, flags, args[0])
		},
	}

	return cmd
}

func runThemeList(cmd *cobra.Command, flags *rootFlags) error {
	ws, err := openWorkspace(flags)
	if err != nil {
		return err
	}

	current := ws.session.Project().Theme.Name
	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "NAME\tPRIMARY\tBACKGROUND\tFONT")
	for _, preset := range ws.themes.Presets() {
		marker := ""
		if preset.Name == current {
			marker = " (current)"
		}
		fmt.Fprintf(writer, "%s%s\t%s\t%s\t%s\n", preset.Name, marker, preset.PrimaryColor, preset.BackgroundColor, preset.FontFamily)
	}
	return writer.Flush()
}

func runThemeSet(cmd *cobra.Command, flags *rootFlags, name string) error {
	ws, err := openWorkspace(flags)
	if err != nil {
		return err
	}

	if err := ws.session.SetTheme(name); err != nil {
		return newCommandError("apply theme", fmt.Sprintf("resolving preset %q", name), err,
			"Run 'pagentum theme' to list the available presets.")
	}

	if err := ws.save(); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Applied theme %s\n", ws.session.Project().Theme.Name)
	return nil
}

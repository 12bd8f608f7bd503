package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	verbose bool
	dir     string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "pagentum",
		Short:         "Pagentum builds landing pages from reusable section templates",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// If no subcommand is provided, launch the editor
			if len(args) == 0 {
				return runEdit(flags)
			}
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringVar(&flags.dir, "dir", ".", "Project directory holding the saved page")

	cmd.AddCommand(newAddCmd(flags))
	cmd.AddCommand(newRemoveCmd(flags))
	cmd.AddCommand(newMoveCmd(flags))
	cmd.AddCommand(newAttachCmd(flags))
	cmd.AddCommand(newListCmd(flags))
	cmd.AddCommand(newTemplatesCmd(flags))
	cmd.AddCommand(newGenerateCmd(flags))
	cmd.AddCommand(newThemeCmd(flags))
	cmd.AddCommand(newExportCmd(flags))
	cmd.AddCommand(newExportJSONCmd(flags))
	cmd.AddCommand(newImportCmd(flags))
	cmd.AddCommand(newServeCmd(flags))
	cmd.AddCommand(newEditCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

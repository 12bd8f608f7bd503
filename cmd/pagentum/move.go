package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newMoveCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "move <from> <to>",
		Short: "Move a section to another position (positions as shown by 'list', starting at 1)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid position %q: %w", args[0], err)
			}
			to, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid position %q: %w", args[1], err)
			}
			return runMove(cmd, flags, from, to)
		},
	}

	return cmd
}

func runMove(cmd *cobra.Command, flags *rootFlags, from, to int) error {
	ws, err := openWorkspace(flags)
	if err != nil {
		return err
	}

	if err := ws.session.Reorder(from-1, to-1); err != nil {
		return newCommandError("move section", fmt.Sprintf("moving position %d to %d", from, to), err,
			"Positions start at 1; run 'pagentum list' to see the current order.")
	}

	if err := ws.save(); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Moved section from position %d to %d\n", from, to)
	return nil
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newAttachCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "attach <section-id> <image-file>",
		Short: "Attach an image to a section",
		Long: `Reads an image file and embeds it into the section as a data URI, the way
the carousel and advanced hero templates expect their images.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAttach(cmd, flags, args[0], args[1])
		},
	}

	return cmd
}

func runAttach(cmd *cobra.Command, flags *rootFlags, sectionID, path string) error {
	ws, err := openWorkspace(flags)
	if err != nil {
		return err
	}

	image, err := ws.session.AttachImage(sectionID, path)
	if err != nil {
		return newCommandError("attach image", fmt.Sprintf("adding %s to section %q", path, sectionID), err,
			"Run 'pagentum list' to see the section ids, and check that the image file is readable.")
	}

	if err := ws.save(); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Attached %s as image %s\n", image.FileName, image.ID)
	return nil
}

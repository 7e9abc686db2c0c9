package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newAboutCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "about",
		Short: "Show a short description",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "assctx — shows the previous and next line of dialogue around every subtitle line")
			fmt.Fprintln(out, "Context lines use the P (previous) and F (following) styles.")
		},
	}
	cmd.SetUsageTemplate(subcommandUsageTemplate)
	return cmd
}

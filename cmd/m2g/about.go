package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/m2g-app/m2g/internal/version"
)

func newAboutCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "about",
		Short: "About this program",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), "m2g — companion tools for the M2G app's local data.")
			fmt.Fprintln(cmd.OutOrStdout(), version.Info())
			fmt.Fprintln(cmd.OutOrStdout(), "https://github.com/m2g-app/m2g")
			return nil
		},
	}
	cmd.SetUsageTemplate(subcommandUsageTemplate)
	return cmd
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/m2g-app/m2g/internal/licenses"
)

func newLicensesCmd() *cobra.Command {
	var showLicense bool

	cmd := &cobra.Command{
		Use:   "licenses",
		Short: "Print third-party license notices",
		RunE: func(cmd *cobra.Command, args []string) error {
			if showLicense {
				fmt.Fprintln(cmd.OutOrStdout(), licenses.LicenseText())
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), licenses.NoticesText())
			return nil
		},
		SilenceUsage: true,
	}

	cmd.Flags().BoolVar(&showLicense, "license", false, "Print this program's own license instead")
	cmd.SetUsageTemplate(subcommandUsageTemplate)
	return cmd
}

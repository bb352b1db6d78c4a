package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/m2g-app/m2g/internal/files"
	"github.com/m2g-app/m2g/internal/settings"
)

func newNotesCmd() *cobra.Command {
	opts := settingsOptions{}
	cmd := &cobra.Command{
		Use:   "notes",
		Short: "Work with the saved notes",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.SetUsageTemplate(subcommandUsageTemplate)
	cmd.PersistentFlags().StringVar(&opts.dir, "dir", "", "Settings directory (default: user config dir)")

	cmd.AddCommand(newNotesExportCmd(&opts))
	return cmd
}

func newNotesExportCmd(opts *settingsOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export <output.txt>",
		Short: "Write the saved notes to a text file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runNotesExport(cmd, opts, args[0])
		},
		SilenceUsage: true,
	}
	cmd.SetUsageTemplate(subcommandUsageTemplate)
	return cmd
}

func runNotesExport(cmd *cobra.Command, opts *settingsOptions, output string) error {
	store, err := opts.openStore()
	if err != nil {
		return err
	}
	notes, ok := store.GetString(settings.KeyUserNotes)
	if !ok || notes == "" {
		return fmt.Errorf("no saved notes to export")
	}

	path, renamed, err := files.SafePath(output)
	if err != nil {
		return err
	}
	if err := files.AtomicWrite(path, []byte(notes), 0o600); err != nil {
		return err
	}
	if renamed {
		fmt.Fprintf(cmd.OutOrStdout(), "Output existed; notes written to %s\n", path)
	} else {
		fmt.Fprintf(cmd.OutOrStdout(), "Notes written to %s\n", path)
	}
	return nil
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/m2g-app/m2g/internal/profile"
	"github.com/m2g-app/m2g/internal/settings"
)

type settingsOptions struct {
	dir string
}

func (o *settingsOptions) openStore() (settings.Store, error) {
	dir := o.dir
	if dir == "" {
		var err error
		dir, err = settings.DefaultDir()
		if err != nil {
			return nil, fmt.Errorf("cannot resolve settings directory: %w", err)
		}
	}
	return settings.NewDiskStore(dir)
}

func newSettingsCmd() *cobra.Command {
	opts := settingsOptions{}
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Inspect or reset the app's stored preferences",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSettingsShow(cmd, &opts)
		},
	}

	cmd.SetUsageTemplate(subcommandUsageTemplate)
	cmd.PersistentFlags().StringVar(&opts.dir, "dir", "", "Settings directory (default: user config dir)")

	cmd.AddCommand(
		newSettingsShowCmd(&opts),
		newSettingsResetCmd(&opts),
	)
	return cmd
}

func newSettingsShowCmd(opts *settingsOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the stored profile values",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSettingsShow(cmd, opts)
		},
		SilenceUsage: true,
	}
	cmd.SetUsageTemplate(subcommandUsageTemplate)
	return cmd
}

func newSettingsResetCmd(opts *settingsOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Restore every preference to its default",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSettingsReset(cmd, opts)
		},
		SilenceUsage: true,
	}
	cmd.SetUsageTemplate(subcommandUsageTemplate)
	return cmd
}

func runSettingsShow(cmd *cobra.Command, opts *settingsOptions) error {
	store, err := opts.openStore()
	if err != nil {
		return err
	}
	p := profile.NewManager(store).Current()

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "name:       %s\n", p.DisplayName)
	fmt.Fprintf(out, "theme:      %s\n", p.ThemeMode)
	fmt.Fprintf(out, "font size:  %d\n", int(p.FontSize))
	avatar := p.ImageRef
	if avatar == "" {
		avatar = "(default)"
	}
	fmt.Fprintf(out, "avatar:     %s\n", avatar)
	fmt.Fprintf(out, "notes:      %d characters\n", len([]rune(p.NotesText)))
	return nil
}

func runSettingsReset(cmd *cobra.Command, opts *settingsOptions) error {
	store, err := opts.openStore()
	if err != nil {
		return err
	}
	writeDefaults(store)
	fmt.Fprintln(cmd.OutOrStdout(), "Preferences restored to defaults.")
	return nil
}

func writeDefaults(store settings.Store) {
	d := profile.Default()
	store.SetString(settings.KeyUserName, d.DisplayName)
	store.SetString(settings.KeyUserNotes, d.NotesText)
	store.SetFloat(settings.KeyFontSize, d.FontSize)
	store.SetBool(settings.KeyDarkMode, false)
	store.SetString(settings.KeyProfilePic, d.ImageRef)
}

package cli

import (
	"fmt"

	"github.com/stockpilot/stockpilot-go/internal/store"

	"github.com/spf13/cobra"
)

// Preference commands operate on persisted local state only; no tier
// check and no network.
func newPrefsCmd(app *store.App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prefs",
		Short: "Show and change local preferences",
		RunE: func(cmd *cobra.Command, args []string) error {
			theme := "light"
			if app.UI.DarkMode() {
				theme = "dark"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "theme: %s\nlocale: %s\n", theme, app.UI.Locale())
			return nil
		},
	}

	theme := &cobra.Command{
		Use:   "theme",
		Short: "Toggle between light and dark theme",
		RunE: func(cmd *cobra.Command, args []string) error {
			app.UI.ToggleDarkMode()
			if app.UI.DarkMode() {
				fmt.Fprintln(cmd.OutOrStdout(), "theme: dark")
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "theme: light")
			}
			return nil
		},
	}

	locale := &cobra.Command{
		Use:   "locale <code>",
		Short: "Set the display locale",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app.UI.SetLocale(args[0])
			fmt.Fprintf(cmd.OutOrStdout(), "locale: %s\n", args[0])
			return nil
		},
	}

	cmd.AddCommand(theme, locale)
	return cmd
}

// Package cli is the view layer: a cobra command tree over the store
// containers. Commands render already-fetched store state; no business
// logic of consequence lives here beyond argument parsing.
package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/stockpilot/stockpilot-go/internal/guard"
	"github.com/stockpilot/stockpilot-go/internal/store"

	"github.com/spf13/cobra"
)

// NewRootCmd builds the command tree around the application context.
func NewRootCmd(app *store.App) *cobra.Command {
	root := &cobra.Command{
		Use:           "stockpilot",
		Short:         "Inventory management client",
		Long:          "stockpilot talks to the inventory backend: catalog, suppliers, orders, users and analytics.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newLoginCmd(app),
		newRegisterCmd(app),
		newLogoutCmd(app),
		newWhoamiCmd(app),
		newProfileCmd(app),
		newProductsCmd(app),
		newCategoriesCmd(app),
		newSuppliersCmd(app),
		newOrdersCmd(app),
		newUsersCmd(app),
		newAnalyticsCmd(app),
		newPrefsCmd(app),
		newStatsCmd(app),
	)

	return root
}

// requireTier bootstraps the session from persisted state and evaluates
// the guard for the command's tier. The guard decisions translate to the
// CLI's navigation: login redirect → ask the user to log in, home
// redirect → refuse with a permissions message.
func requireTier(ctx context.Context, app *store.App, tier guard.Tier) error {
	if !app.Session.Authenticated() {
		app.Session.CheckAuth(ctx)
	}

	switch guard.Evaluate(app.Session, tier) {
	case guard.Allow:
		return nil
	case guard.Pending:
		return errors.New("session check still in progress, try again")
	case guard.RedirectLogin:
		return errors.New("not logged in (run: stockpilot login)")
	default:
		return errors.New("insufficient permissions for this command")
	}
}

// opErr turns a store operation's false result into a command error using
// the container's captured message.
func opErr(ok bool, errMsg string) error {
	if ok {
		return nil
	}
	if errMsg == "" {
		errMsg = "operation failed"
	}
	return fmt.Errorf("%s", errMsg)
}

package cli

import (
	"fmt"

	"github.com/stockpilot/stockpilot-go/internal/domain"
	"github.com/stockpilot/stockpilot-go/internal/guard"
	"github.com/stockpilot/stockpilot-go/internal/store"

	"github.com/spf13/cobra"
)

func newUsersCmd(app *store.App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Administer user accounts",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List users",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireTier(cmd.Context(), app, guard.TierAdmin); err != nil {
				return err
			}
			ok := app.Users.FetchAll(cmd.Context())
			if err := opErr(ok, app.Users.Err()); err != nil {
				return err
			}
			rows := make([][]string, 0, len(app.Users.Items()))
			for _, u := range app.Users.Items() {
				rows = append(rows, []string{
					fmt.Sprint(u.ID), u.Email, u.Name, string(u.Role), yesNo(u.IsActive),
				})
			}
			table(cmd.OutOrStdout(), []string{"ID", "EMAIL", "NAME", "ROLE", "ACTIVE"}, rows)
			return nil
		},
	}

	get := &cobra.Command{
		Use:   "get <id>",
		Short: "Show one user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireTier(cmd.Context(), app, guard.TierAdmin); err != nil {
				return err
			}
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			ok := app.Users.FetchOne(cmd.Context(), id)
			if err := opErr(ok, app.Users.Err()); err != nil {
				return err
			}
			u := app.Users.Selected()
			table(cmd.OutOrStdout(),
				[]string{"ID", "EMAIL", "NAME", "ROLE", "ACTIVE", "PHONE"},
				[][]string{{fmt.Sprint(u.ID), u.Email, u.Name, string(u.Role), yesNo(u.IsActive), u.Phone}},
			)
			return nil
		},
	}

	var upd domain.UserUpdate
	var role string
	var activate, deactivate bool
	update := &cobra.Command{
		Use:   "update <id>",
		Short: "Edit a user's name, role or active flag",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireTier(cmd.Context(), app, guard.TierAdmin); err != nil {
				return err
			}
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if activate && deactivate {
				return fmt.Errorf("--activate and --deactivate are mutually exclusive")
			}
			if activate {
				v := true
				upd.IsActive = &v
			}
			if deactivate {
				v := false
				upd.IsActive = &v
			}
			upd.Role = domain.Role(role)

			ok := app.Users.Update(cmd.Context(), id, upd)
			if err := opErr(ok, app.Users.Err()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "user updated")
			return nil
		},
	}
	update.Flags().StringVar(&upd.Name, "name", "", "display name")
	update.Flags().StringVar(&role, "role", "", "role (admin, owner, employee)")
	update.Flags().StringVar(&upd.Phone, "phone", "", "contact phone")
	update.Flags().BoolVar(&activate, "activate", false, "reactivate the account")
	update.Flags().BoolVar(&deactivate, "deactivate", false, "deactivate the account")

	cmd.AddCommand(list, get, update)
	return cmd
}

package cli

import (
	"fmt"

	"github.com/stockpilot/stockpilot-go/internal/domain"
	"github.com/stockpilot/stockpilot-go/internal/guard"
	"github.com/stockpilot/stockpilot-go/internal/store"

	"github.com/spf13/cobra"
)

func newLoginCmd(app *store.App) *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Authenticate against the backend",
		RunE: func(cmd *cobra.Command, args []string) error {
			if email == "" {
				return &domain.ErrValidation{Field: "email", Message: "required"}
			}
			if password == "" {
				return &domain.ErrValidation{Field: "password", Message: "required"}
			}

			if !app.Session.Login(cmd.Context(), email, password) {
				return opErr(false, app.Session.Err())
			}

			user := app.Session.User()
			fmt.Fprintf(cmd.OutOrStdout(), "logged in as %s (%s)\n", user.Email, user.Role)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password")
	return cmd
}

func newRegisterCmd(app *store.App) *cobra.Command {
	var reg domain.Registration
	var role string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account",
		RunE: func(cmd *cobra.Command, args []string) error {
			if reg.Email == "" {
				return &domain.ErrValidation{Field: "email", Message: "required"}
			}
			if reg.Password == "" {
				return &domain.ErrValidation{Field: "password", Message: "required"}
			}
			if reg.Name == "" {
				return &domain.ErrValidation{Field: "name", Message: "required"}
			}
			reg.Role = domain.Role(role)

			if !app.Session.Register(cmd.Context(), reg) {
				return opErr(false, app.Session.Err())
			}

			user := app.Session.User()
			fmt.Fprintf(cmd.OutOrStdout(), "registered %s (%s)\n", user.Email, user.Role)
			return nil
		},
	}

	cmd.Flags().StringVar(&reg.Email, "email", "", "account email")
	cmd.Flags().StringVar(&reg.Password, "password", "", "account password")
	cmd.Flags().StringVar(&reg.Name, "name", "", "display name")
	cmd.Flags().StringVar(&role, "role", "", "role (admin, owner, employee)")
	cmd.Flags().StringVar(&reg.Phone, "phone", "", "contact phone")
	return cmd
}

func newLogoutCmd(app *store.App) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear the local session",
		RunE: func(cmd *cobra.Command, args []string) error {
			app.Session.Logout()
			fmt.Fprintln(cmd.OutOrStdout(), "logged out")
			return nil
		},
	}
}

func newWhoamiCmd(app *store.App) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the current user",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireTier(cmd.Context(), app, guard.TierAuthenticated); err != nil {
				return err
			}

			u := app.Session.User()
			table(cmd.OutOrStdout(),
				[]string{"ID", "EMAIL", "NAME", "ROLE", "ACTIVE"},
				[][]string{{fmt.Sprint(u.ID), u.Email, u.Name, string(u.Role), yesNo(u.IsActive)}},
			)
			return nil
		},
	}
}

func newProfileCmd(app *store.App) *cobra.Command {
	var update domain.ProfileUpdate

	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Update the current user's profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireTier(cmd.Context(), app, guard.TierAuthenticated); err != nil {
				return err
			}

			ok := app.Session.UpdateProfile(cmd.Context(), update)
			if err := opErr(ok, app.Session.Err()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "profile updated")
			return nil
		},
	}

	cmd.Flags().StringVar(&update.Name, "name", "", "display name")
	cmd.Flags().StringVar(&update.Phone, "phone", "", "contact phone")
	cmd.Flags().StringVar(&update.Password, "password", "", "new password")
	return cmd
}

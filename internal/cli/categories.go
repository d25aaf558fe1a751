package cli

import (
	"fmt"

	"github.com/stockpilot/stockpilot-go/internal/domain"
	"github.com/stockpilot/stockpilot-go/internal/guard"
	"github.com/stockpilot/stockpilot-go/internal/store"

	"github.com/spf13/cobra"
)

func newCategoriesCmd(app *store.App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Manage product categories",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List categories",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireTier(cmd.Context(), app, guard.TierAuthenticated); err != nil {
				return err
			}
			ok := app.Categories.FetchAll(cmd.Context())
			if err := opErr(ok, app.Categories.Err()); err != nil {
				return err
			}
			rows := make([][]string, 0, len(app.Categories.Items()))
			for _, c := range app.Categories.Items() {
				rows = append(rows, []string{fmt.Sprint(c.ID), c.Name, c.Description})
			}
			table(cmd.OutOrStdout(), []string{"ID", "NAME", "DESCRIPTION"}, rows)
			return nil
		},
	}

	var createCat domain.Category
	create := &cobra.Command{
		Use:   "create",
		Short: "Add a category",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireTier(cmd.Context(), app, guard.TierAuthenticated); err != nil {
				return err
			}
			if createCat.Name == "" {
				return &domain.ErrValidation{Field: "name", Message: "required"}
			}
			ok := app.Categories.Create(cmd.Context(), createCat)
			if err := opErr(ok, app.Categories.Err()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "category created")
			return nil
		},
	}
	create.Flags().StringVar(&createCat.Name, "name", "", "category name")
	create.Flags().StringVar(&createCat.Description, "description", "", "description")

	var updateCat domain.Category
	update := &cobra.Command{
		Use:   "update <id>",
		Short: "Edit a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireTier(cmd.Context(), app, guard.TierAuthenticated); err != nil {
				return err
			}
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			ok := app.Categories.Update(cmd.Context(), id, updateCat)
			if err := opErr(ok, app.Categories.Err()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "category updated")
			return nil
		},
	}
	update.Flags().StringVar(&updateCat.Name, "name", "", "category name")
	update.Flags().StringVar(&updateCat.Description, "description", "", "description")

	del := &cobra.Command{
		Use:   "delete <id>",
		Short: "Remove a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireTier(cmd.Context(), app, guard.TierAuthenticated); err != nil {
				return err
			}
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			ok := app.Categories.Delete(cmd.Context(), id)
			if err := opErr(ok, app.Categories.Err()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "category deleted")
			return nil
		},
	}

	cmd.AddCommand(list, create, update, del)
	return cmd
}

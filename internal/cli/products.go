package cli

import (
	"fmt"
	"strconv"

	"github.com/stockpilot/stockpilot-go/internal/domain"
	"github.com/stockpilot/stockpilot-go/internal/guard"
	"github.com/stockpilot/stockpilot-go/internal/store"

	"github.com/spf13/cobra"
)

func newProductsCmd(app *store.App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "products",
		Short: "Manage the product catalog",
	}

	cmd.AddCommand(
		newProductsListCmd(app),
		newProductsGetCmd(app),
		newProductsCreateCmd(app),
		newProductsUpdateCmd(app),
		newProductsDeleteCmd(app),
		newProductsLowStockCmd(app),
		newProductsLogsCmd(app),
	)
	return cmd
}

func newProductsListCmd(app *store.App) *cobra.Command {
	var filter domain.ProductFilter

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List products",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireTier(cmd.Context(), app, guard.TierAuthenticated); err != nil {
				return err
			}

			f := domain.DefaultProductFilter()
			if filter.Search != "" {
				f.Search = filter.Search
			}
			if filter.CategoryID != 0 {
				f.CategoryID = filter.CategoryID
			}
			if filter.SupplierID != 0 {
				f.SupplierID = filter.SupplierID
			}
			if filter.LowStock {
				f.LowStock = true
			}
			if filter.SortBy != "" {
				f.SortBy = filter.SortBy
			}
			if filter.SortOrder != "" {
				f.SortOrder = filter.SortOrder
			}

			ok := app.Products.SetFilter(cmd.Context(), f)
			if err := opErr(ok, app.Products.Err()); err != nil {
				return err
			}
			renderProducts(cmd, app.Products.Items())
			return nil
		},
	}

	cmd.Flags().StringVar(&filter.Search, "search", "", "name or SKU substring")
	cmd.Flags().Int64Var(&filter.CategoryID, "category", 0, "filter by category id")
	cmd.Flags().Int64Var(&filter.SupplierID, "supplier", 0, "filter by supplier id")
	cmd.Flags().BoolVar(&filter.LowStock, "low-stock", false, "only products below threshold")
	cmd.Flags().StringVar(&filter.SortBy, "sort-by", "", "sort column")
	cmd.Flags().StringVar(&filter.SortOrder, "sort-order", "", "asc or desc")
	return cmd
}

func newProductsGetCmd(app *store.App) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireTier(cmd.Context(), app, guard.TierAuthenticated); err != nil {
				return err
			}
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			ok := app.Products.FetchOne(cmd.Context(), id)
			if err := opErr(ok, app.Products.Err()); err != nil {
				return err
			}
			p := app.Products.Selected()
			renderProducts(cmd, []domain.Product{*p})
			return nil
		},
	}
}

func newProductsCreateCmd(app *store.App) *cobra.Command {
	var p domain.Product

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Add a product",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireTier(cmd.Context(), app, guard.TierAuthenticated); err != nil {
				return err
			}
			if p.Name == "" {
				return &domain.ErrValidation{Field: "name", Message: "required"}
			}
			if p.SKU == "" {
				return &domain.ErrValidation{Field: "sku", Message: "required"}
			}

			ok := app.Products.Create(cmd.Context(), p)
			if err := opErr(ok, app.Products.Err()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "product created")
			return nil
		},
	}

	addProductFlags(cmd, &p)
	return cmd
}

func newProductsUpdateCmd(app *store.App) *cobra.Command {
	var p domain.Product

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Edit a product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireTier(cmd.Context(), app, guard.TierAuthenticated); err != nil {
				return err
			}
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			ok := app.Products.Update(cmd.Context(), id, p)
			if err := opErr(ok, app.Products.Err()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "product updated")
			return nil
		},
	}

	addProductFlags(cmd, &p)
	return cmd
}

func newProductsDeleteCmd(app *store.App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Remove a product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireTier(cmd.Context(), app, guard.TierAuthenticated); err != nil {
				return err
			}
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			ok := app.Products.Delete(cmd.Context(), id)
			if err := opErr(ok, app.Products.Err()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "product deleted")
			return nil
		},
	}
}

func newProductsLowStockCmd(app *store.App) *cobra.Command {
	return &cobra.Command{
		Use:   "low-stock",
		Short: "List products below their stock threshold",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireTier(cmd.Context(), app, guard.TierAuthenticated); err != nil {
				return err
			}

			ok := app.Products.FetchLowStock(cmd.Context())
			if err := opErr(ok, app.Products.Err()); err != nil {
				return err
			}
			renderProducts(cmd, app.Products.Items())
			return nil
		},
	}
}

func newProductsLogsCmd(app *store.App) *cobra.Command {
	return &cobra.Command{
		Use:   "logs <id>",
		Short: "Show a product's stock movement history",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireTier(cmd.Context(), app, guard.TierAuthenticated); err != nil {
				return err
			}
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			logs, ok := app.Products.FetchLogs(cmd.Context(), id)
			if err := opErr(ok, app.Products.Err()); err != nil {
				return err
			}

			rows := make([][]string, 0, len(logs))
			for _, l := range logs {
				rows = append(rows, []string{
					fmt.Sprint(l.ID),
					fmt.Sprintf("%+d", l.QuantityChange),
					l.Comment,
					l.CreatedAt,
				})
			}
			table(cmd.OutOrStdout(), []string{"ID", "CHANGE", "COMMENT", "DATE"}, rows)
			return nil
		},
	}
}

func addProductFlags(cmd *cobra.Command, p *domain.Product) {
	cmd.Flags().StringVar(&p.Name, "name", "", "product name")
	cmd.Flags().StringVar(&p.SKU, "sku", "", "stock keeping unit")
	cmd.Flags().StringVar(&p.Description, "description", "", "description")
	cmd.Flags().Float64Var(&p.Price, "price", 0, "unit price")
	cmd.Flags().IntVar(&p.Quantity, "quantity", 0, "stock quantity")
	cmd.Flags().IntVar(&p.MinStock, "min-stock", 0, "low-stock threshold")
	cmd.Flags().Int64Var(&p.CategoryID, "category", 0, "category id")
	cmd.Flags().Int64Var(&p.SupplierID, "supplier", 0, "supplier id")
}

func renderProducts(cmd *cobra.Command, items []domain.Product) {
	rows := make([][]string, 0, len(items))
	for _, p := range items {
		category := ""
		if p.Category != nil {
			category = p.Category.Name
		}
		rows = append(rows, []string{
			fmt.Sprint(p.ID),
			p.SKU,
			p.Name,
			money(p.Price),
			fmt.Sprint(p.Quantity),
			fmt.Sprint(p.MinStock),
			category,
			yesNo(p.IsLowStock),
		})
	}
	table(cmd.OutOrStdout(), []string{"ID", "SKU", "NAME", "PRICE", "QTY", "MIN", "CATEGORY", "LOW"}, rows)
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, &domain.ErrValidation{Field: "id", Message: fmt.Sprintf("%q is not a positive integer", s)}
	}
	return id, nil
}

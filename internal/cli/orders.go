package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/stockpilot/stockpilot-go/internal/domain"
	"github.com/stockpilot/stockpilot-go/internal/guard"
	"github.com/stockpilot/stockpilot-go/internal/store"

	"github.com/spf13/cobra"
)

func newOrdersCmd(app *store.App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "orders",
		Short: "Manage purchase orders",
	}

	cmd.AddCommand(
		newOrdersListCmd(app),
		newOrdersGetCmd(app),
		newOrdersCreateCmd(app),
		newOrdersStatusCmd(app),
		newOrdersDeleteCmd(app),
		newOrdersUploadCmd(app),
	)
	return cmd
}

func newOrdersListCmd(app *store.App) *cobra.Command {
	var status string
	var filter domain.OrderFilter

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List orders",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireTier(cmd.Context(), app, guard.TierAuthenticated); err != nil {
				return err
			}

			filter.Status = domain.OrderStatus(status)
			ok := app.Orders.SetFilter(cmd.Context(), filter)
			if err := opErr(ok, app.Orders.Err()); err != nil {
				return err
			}

			rows := make([][]string, 0, len(app.Orders.Items()))
			for _, o := range app.Orders.Items() {
				supplier := ""
				if o.Supplier != nil {
					supplier = o.Supplier.Name
				}
				rows = append(rows, []string{
					fmt.Sprint(o.ID),
					o.OrderNumber,
					supplier,
					string(o.Status),
					money(o.TotalAmount),
					o.CreatedAt,
				})
			}
			table(cmd.OutOrStdout(), []string{"ID", "NUMBER", "SUPPLIER", "STATUS", "TOTAL", "CREATED"}, rows)
			return nil
		},
	}

	cmd.Flags().StringVar(&status, "status", "", "filter by lifecycle status")
	cmd.Flags().Int64Var(&filter.SupplierID, "supplier", 0, "filter by supplier id")
	cmd.Flags().StringVar(&filter.StartDate, "from", "", "created on or after (YYYY-MM-DD)")
	cmd.Flags().StringVar(&filter.EndDate, "to", "", "created on or before (YYYY-MM-DD)")
	return cmd
}

func newOrdersGetCmd(app *store.App) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one order with its lines and attachments",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireTier(cmd.Context(), app, guard.TierAuthenticated); err != nil {
				return err
			}
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			ok := app.Orders.FetchOne(cmd.Context(), id)
			if err := opErr(ok, app.Orders.Err()); err != nil {
				return err
			}

			o := app.Orders.Selected()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "order %s  status=%s  total=%s\n", o.OrderNumber, o.Status, money(o.TotalAmount))
			if o.ShippingAddress != "" {
				fmt.Fprintf(out, "ship to: %s\n", o.ShippingAddress)
			}
			if o.Notes != "" {
				fmt.Fprintf(out, "notes: %s\n", o.Notes)
			}

			rows := make([][]string, 0, len(o.Items))
			for _, item := range o.Items {
				name := ""
				if item.Product != nil {
					name = item.Product.Name
				}
				rows = append(rows, []string{
					fmt.Sprint(item.ProductID),
					name,
					fmt.Sprint(item.Quantity),
					money(item.UnitPrice),
					money(item.TotalPrice),
				})
			}
			table(out, []string{"PRODUCT", "NAME", "QTY", "UNIT", "TOTAL"}, rows)

			for _, f := range o.Files {
				fmt.Fprintf(out, "attachment: %s (%s)\n", f.Filename, f.UploadDate)
			}
			return nil
		},
	}
}

func newOrdersCreateCmd(app *store.App) *cobra.Command {
	var draft domain.OrderDraft
	var items []string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an order",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireTier(cmd.Context(), app, guard.TierAuthenticated); err != nil {
				return err
			}
			if draft.SupplierID == 0 {
				return &domain.ErrValidation{Field: "supplier", Message: "required"}
			}
			if len(items) == 0 {
				return &domain.ErrValidation{Field: "item", Message: "at least one order line is required"}
			}

			for _, raw := range items {
				line, err := parseItemLine(raw)
				if err != nil {
					return err
				}
				draft.Items = append(draft.Items, line)
			}

			id, ok := app.Orders.Create(cmd.Context(), draft)
			if err := opErr(ok, app.Orders.Err()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "order %d created\n", id)
			return nil
		},
	}

	cmd.Flags().Int64Var(&draft.SupplierID, "supplier", 0, "supplier id")
	cmd.Flags().StringArrayVar(&items, "item", nil, "order line as product:qty:unit_price, repeatable")
	cmd.Flags().StringVar(&draft.ShippingAddress, "address", "", "shipping address")
	cmd.Flags().StringVar(&draft.Notes, "notes", "", "free-text notes")
	cmd.Flags().StringVar(&draft.ExpectedDeliveryDate, "expected", "", "expected delivery date (YYYY-MM-DD)")
	return cmd
}

func newOrdersStatusCmd(app *store.App) *cobra.Command {
	return &cobra.Command{
		Use:   "status <id> <status>",
		Short: "Move an order through its lifecycle",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireTier(cmd.Context(), app, guard.TierAuthenticated); err != nil {
				return err
			}
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			ok := app.Orders.UpdateStatus(cmd.Context(), id, domain.OrderStatus(args[1]))
			if err := opErr(ok, app.Orders.Err()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "order status updated")
			return nil
		},
	}
}

func newOrdersDeleteCmd(app *store.App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Remove an order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireTier(cmd.Context(), app, guard.TierAuthenticated); err != nil {
				return err
			}
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			ok := app.Orders.Delete(cmd.Context(), id)
			if err := opErr(ok, app.Orders.Err()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "order deleted")
			return nil
		},
	}
}

func newOrdersUploadCmd(app *store.App) *cobra.Command {
	return &cobra.Command{
		Use:   "upload <id> <file>",
		Short: "Attach a file to an order",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireTier(cmd.Context(), app, guard.TierAuthenticated); err != nil {
				return err
			}
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			f, err := os.Open(args[1])
			if err != nil {
				return err
			}
			defer f.Close()

			ok := app.Orders.UploadFile(cmd.Context(), id, filepath.Base(args[1]), f)
			if err := opErr(ok, app.Orders.Err()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "file uploaded")
			return nil
		},
	}
}

// parseItemLine decodes the product:qty:unit_price order-line flag format.
func parseItemLine(raw string) (domain.OrderItemDraft, error) {
	parts := strings.Split(raw, ":")
	if len(parts) != 3 {
		return domain.OrderItemDraft{}, &domain.ErrValidation{Field: "item", Message: fmt.Sprintf("%q does not match product:qty:unit_price", raw)}
	}
	productID, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil || productID <= 0 {
		return domain.OrderItemDraft{}, &domain.ErrValidation{Field: "item", Message: fmt.Sprintf("bad product id in %q", raw)}
	}
	qty, err := strconv.Atoi(parts[1])
	if err != nil || qty <= 0 {
		return domain.OrderItemDraft{}, &domain.ErrValidation{Field: "item", Message: fmt.Sprintf("bad quantity in %q", raw)}
	}
	price, err := strconv.ParseFloat(parts[2], 64)
	if err != nil || price < 0 {
		return domain.OrderItemDraft{}, &domain.ErrValidation{Field: "item", Message: fmt.Sprintf("bad unit price in %q", raw)}
	}
	return domain.OrderItemDraft{ProductID: productID, Quantity: qty, UnitPrice: price}, nil
}

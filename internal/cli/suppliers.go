package cli

import (
	"fmt"

	"github.com/stockpilot/stockpilot-go/internal/domain"
	"github.com/stockpilot/stockpilot-go/internal/guard"
	"github.com/stockpilot/stockpilot-go/internal/store"

	"github.com/spf13/cobra"
)

func newSuppliersCmd(app *store.App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "suppliers",
		Short: "Manage suppliers",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List suppliers",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireTier(cmd.Context(), app, guard.TierAuthenticated); err != nil {
				return err
			}
			ok := app.Suppliers.FetchAll(cmd.Context())
			if err := opErr(ok, app.Suppliers.Err()); err != nil {
				return err
			}
			rows := make([][]string, 0, len(app.Suppliers.Items()))
			for _, s := range app.Suppliers.Items() {
				rows = append(rows, []string{fmt.Sprint(s.ID), s.Name, s.ContactPerson, s.Email, s.Phone})
			}
			table(cmd.OutOrStdout(), []string{"ID", "NAME", "CONTACT", "EMAIL", "PHONE"}, rows)
			return nil
		},
	}

	var createSup domain.Supplier
	create := &cobra.Command{
		Use:   "create",
		Short: "Add a supplier",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireTier(cmd.Context(), app, guard.TierAuthenticated); err != nil {
				return err
			}
			if createSup.Name == "" {
				return &domain.ErrValidation{Field: "name", Message: "required"}
			}
			ok := app.Suppliers.Create(cmd.Context(), createSup)
			if err := opErr(ok, app.Suppliers.Err()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "supplier created")
			return nil
		},
	}
	addSupplierFlags(create, &createSup)

	var updateSup domain.Supplier
	update := &cobra.Command{
		Use:   "update <id>",
		Short: "Edit a supplier",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireTier(cmd.Context(), app, guard.TierAuthenticated); err != nil {
				return err
			}
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			ok := app.Suppliers.Update(cmd.Context(), id, updateSup)
			if err := opErr(ok, app.Suppliers.Err()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "supplier updated")
			return nil
		},
	}
	addSupplierFlags(update, &updateSup)

	del := &cobra.Command{
		Use:   "delete <id>",
		Short: "Remove a supplier",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireTier(cmd.Context(), app, guard.TierAuthenticated); err != nil {
				return err
			}
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			ok := app.Suppliers.Delete(cmd.Context(), id)
			if err := opErr(ok, app.Suppliers.Err()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "supplier deleted")
			return nil
		},
	}

	cmd.AddCommand(list, create, update, del, newSuggestCmd(app))
	return cmd
}

// newSuggestCmd exposes the address/company lookup integrations used when
// filling supplier forms.
func newSuggestCmd(app *store.App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "suggest",
		Short: "Look up addresses and companies",
	}

	var addrCount int
	address := &cobra.Command{
		Use:   "address <query>",
		Short: "Suggest addresses",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireTier(cmd.Context(), app, guard.TierAuthenticated); err != nil {
				return err
			}
			hits, ok := app.Suppliers.SuggestAddresses(cmd.Context(), args[0], addrCount)
			if err := opErr(ok, app.Suppliers.Err()); err != nil {
				return err
			}
			for _, h := range hits {
				fmt.Fprintln(cmd.OutOrStdout(), h.Value)
			}
			return nil
		},
	}
	address.Flags().IntVar(&addrCount, "count", 10, "max suggestions")

	var compCount int
	company := &cobra.Command{
		Use:   "company <query>",
		Short: "Suggest companies",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireTier(cmd.Context(), app, guard.TierAuthenticated); err != nil {
				return err
			}
			hits, ok := app.Suppliers.SuggestCompanies(cmd.Context(), args[0], compCount)
			if err := opErr(ok, app.Suppliers.Err()); err != nil {
				return err
			}
			rows := make([][]string, 0, len(hits))
			for _, h := range hits {
				rows = append(rows, []string{h.Value, h.INN, h.KPP})
			}
			table(cmd.OutOrStdout(), []string{"NAME", "INN", "KPP"}, rows)
			return nil
		},
	}
	company.Flags().IntVar(&compCount, "count", 10, "max suggestions")

	cmd.AddCommand(address, company)
	return cmd
}

func addSupplierFlags(cmd *cobra.Command, s *domain.Supplier) {
	cmd.Flags().StringVar(&s.Name, "name", "", "supplier name")
	cmd.Flags().StringVar(&s.Email, "email", "", "contact email")
	cmd.Flags().StringVar(&s.Phone, "phone", "", "contact phone")
	cmd.Flags().StringVar(&s.Address, "address", "", "postal address")
	cmd.Flags().StringVar(&s.ContactPerson, "contact", "", "contact person")
}

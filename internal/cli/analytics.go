package cli

import (
	"fmt"

	"github.com/stockpilot/stockpilot-go/internal/guard"
	"github.com/stockpilot/stockpilot-go/internal/store"

	"github.com/spf13/cobra"
)

func newAnalyticsCmd(app *store.App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analytics",
		Short: "Sales analytics and demand forecasting",
	}

	cmd.AddCommand(
		newDashboardCmd(app),
		newForecastCmd(app),
		newRestockCmd(app),
		newTrainCmd(app),
	)
	return cmd
}

func newDashboardCmd(app *store.App) *cobra.Command {
	var period int

	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Show the sales dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireTier(cmd.Context(), app, guard.TierAuthenticated); err != nil {
				return err
			}

			ok := app.Analytics.FetchDashboard(cmd.Context(), period)
			if err := opErr(ok, app.Analytics.Err()); err != nil {
				return err
			}

			d := app.Analytics.Dashboard()
			out := cmd.OutOrStdout()

			fmt.Fprintf(out, "sales today %s  month %s  growth %.1f%%\n",
				money(d.Stats.SalesToday), money(d.Stats.SalesMonth), d.Stats.RevenueGrowthPct)
			fmt.Fprintf(out, "orders today %d  pending %d  low stock %d of %d products\n",
				d.Stats.OrdersToday, d.Stats.PendingOrders, d.Stats.LowStockCount, d.Stats.TotalProducts)

			fmt.Fprintln(out, "\ntop products:")
			rows := make([][]string, 0, len(d.TopProducts))
			for _, p := range d.TopProducts {
				rows = append(rows, []string{p.ProductName, fmt.Sprint(p.QuantitySold), money(p.Revenue)})
			}
			table(out, []string{"PRODUCT", "SOLD", "REVENUE"}, rows)

			fmt.Fprintln(out, "\ncategory distribution:")
			rows = rows[:0]
			for _, c := range d.Distribution {
				rows = append(rows, []string{c.Category, fmt.Sprint(c.Value), fmt.Sprintf("%.1f%%", c.Percentage)})
			}
			table(out, []string{"CATEGORY", "PRODUCTS", "SHARE"}, rows)

			fmt.Fprintln(out, "\nsales trend:")
			rows = rows[:0]
			for _, t := range d.Trends {
				rows = append(rows, []string{t.Date, money(t.TotalSales), fmt.Sprint(t.OrderCount)})
			}
			table(out, []string{"DATE", "SALES", "ORDERS"}, rows)
			return nil
		},
	}

	cmd.Flags().IntVar(&period, "period", 30, "trend window in days")
	return cmd
}

func newForecastCmd(app *store.App) *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "forecast <product-id>",
		Short: "Predict demand for a product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireTier(cmd.Context(), app, guard.TierOwner); err != nil {
				return err
			}
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			ok := app.Analytics.FetchForecast(cmd.Context(), id, days)
			if err := opErr(ok, app.Analytics.Err()); err != nil {
				return err
			}

			rows := make([][]string, 0, len(app.Analytics.Forecast()))
			for _, p := range app.Analytics.Forecast() {
				rows = append(rows, []string{p.Date, fmt.Sprintf("%.1f", p.PredictedQuantity)})
			}
			table(cmd.OutOrStdout(), []string{"DATE", "PREDICTED"}, rows)
			return nil
		},
	}

	cmd.Flags().IntVar(&days, "days", 30, "forecast horizon in days")
	return cmd
}

func newRestockCmd(app *store.App) *cobra.Command {
	return &cobra.Command{
		Use:   "restock",
		Short: "Show restock recommendations",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireTier(cmd.Context(), app, guard.TierOwner); err != nil {
				return err
			}

			ok := app.Analytics.FetchRestock(cmd.Context())
			if err := opErr(ok, app.Analytics.Err()); err != nil {
				return err
			}

			rows := make([][]string, 0, len(app.Analytics.Restock()))
			for _, r := range app.Analytics.Restock() {
				rows = append(rows, []string{
					fmt.Sprint(r.ProductID),
					r.ProductName,
					fmt.Sprint(r.CurrentQuantity),
					fmt.Sprint(r.MinThreshold),
					fmt.Sprintf("%.1f", r.DaysUntilThreshold),
					fmt.Sprint(r.RecommendedOrderQuantity),
				})
			}
			table(cmd.OutOrStdout(),
				[]string{"ID", "PRODUCT", "QTY", "MIN", "DAYS LEFT", "ORDER"}, rows)
			return nil
		},
	}
}

func newTrainCmd(app *store.App) *cobra.Command {
	var productID int64

	cmd := &cobra.Command{
		Use:   "train",
		Short: "Retrain the forecasting model",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireTier(cmd.Context(), app, guard.TierOwner); err != nil {
				return err
			}

			ok := app.Analytics.Train(cmd.Context(), productID)
			if err := opErr(ok, app.Analytics.Err()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "model trained")
			return nil
		},
	}

	cmd.Flags().Int64Var(&productID, "product", 0, "limit training to one product")
	return cmd
}

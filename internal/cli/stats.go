package cli

import (
	"fmt"

	"github.com/stockpilot/stockpilot-go/internal/store"

	"github.com/spf13/cobra"
)

func newStatsCmd(app *store.App) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show client-side request counters for this run",
		RunE: func(cmd *cobra.Command, args []string) error {
			snap := app.Metrics.GetSnapshot()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "requests: %.0f\n", snap.TotalRequests)
			fmt.Fprintf(out, "error rate: %.1f%%\n", snap.ErrorRate*100)
			fmt.Fprintf(out, "api errors: %.0f\n", snap.APIErrors)
			fmt.Fprintf(out, "token refreshes: %.0f\n", snap.TokenRefreshes)
			fmt.Fprintf(out, "cache hit rate: %.1f%%\n", snap.CacheHitRate*100)
			return nil
		},
	}
}

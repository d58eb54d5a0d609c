package cmd

import (
	"github.com/artkessler/pulse/core"
	"github.com/artkessler/pulse/internal/contract"
	"github.com/spf13/cobra"
)

// readinessCmd shows recent per-day readiness scores.
var readinessCmd = &cobra.Command{
	Use:   "readiness",
	Short: "Show recent readiness scores.",
	Long: `Fetch recent daily readiness records and show one row per day.

Readiness rows share the day-score table with the sleep command so
both views line up day by day.

Examples:
  # Last week of readiness
  pulse readiness

  # Two weeks as JSON
  pulse readiness --days 14 --output json`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteReadinessDays(rootCtx, cfg, api); err != nil {
			contract.LogFatal("Cannot show readiness days", err)
		}
	},
}

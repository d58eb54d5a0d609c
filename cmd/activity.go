package cmd

import (
	"github.com/artkessler/pulse/core"
	"github.com/artkessler/pulse/internal/contract"
	"github.com/spf13/cobra"
)

// activityCmd shows recent per-day activity metrics.
var activityCmd = &cobra.Command{
	Use:   "activity",
	Short: "Show recent activity scores, steps and calories.",
	Long: `Fetch recent daily activity records and show one row per day.

Examples:
  # Last week of activity
  pulse activity

  # A month of steps as CSV
  pulse activity --days 30 --output csv`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteActivityDays(rootCtx, cfg, api); err != nil {
			contract.LogFatal("Cannot show activity days", err)
		}
	},
}

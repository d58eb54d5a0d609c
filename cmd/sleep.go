package cmd

import (
	"github.com/artkessler/pulse/core"
	"github.com/artkessler/pulse/internal/contract"
	"github.com/spf13/cobra"
)

// sleepCmd shows recent per-day sleep scores.
var sleepCmd = &cobra.Command{
	Use:   "sleep",
	Short: "Show recent sleep scores and sleep quality metrics.",
	Long: `Fetch recent nights from the provider and show one row per day.

Each row carries the sleep score, its label, efficiency, duration,
average HRV and resting heart rate, plus the readiness and stress
scores for the same day.

Examples:
  # Last week of sleep
  pulse sleep

  # A full month, exported to CSV
  pulse sleep --days 30 --output csv --output-file sleep.csv

  # Columnar export for notebooks
  pulse sleep --days 90 --output parquet --output-file sleep.parquet`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteSleepDays(rootCtx, cfg, api); err != nil {
			contract.LogFatal("Cannot show sleep days", err)
		}
	},
}

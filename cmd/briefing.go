package cmd

import (
	"github.com/artkessler/pulse/core"
	"github.com/artkessler/pulse/internal/contract"
	"github.com/spf13/cobra"
)

// briefingCmd shows the morning briefing for a target date.
var briefingCmd = &cobra.Command{
	Use:   "briefing [date]",
	Short: "Show the morning briefing for a date.",
	Long: `Show last night's sleep and readiness for a target date, with deltas
against a trailing baseline window.

The date defaults to today in the configured timezone. The baseline
covers the preceding days (14 by default) and yields deltas for sleep
score, duration, HRV and resting heart rate.

Examples:
  # This morning's briefing
  pulse briefing

  # A specific date with a longer baseline
  pulse briefing 2026-01-16 --baseline-days 30`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteBriefing(rootCtx, cfg, api); err != nil {
			contract.LogFatal("Cannot build briefing", err)
		}
	},
}

package cmd

import (
	"github.com/artkessler/pulse/core"
	"github.com/artkessler/pulse/internal/contract"
	"github.com/spf13/cobra"
)

// compareCmd diffs the current period against the previous one.
var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare the current period against the previous one.",
	Long: `Build weekly summaries for the trailing window and the window
immediately before it, then show each metric side by side with its diff.

Examples:
  # This week vs last week
  pulse compare

  # Month over month
  pulse compare --days 30`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteComparison(rootCtx, cfg, api); err != nil {
			contract.LogFatal("Cannot compare periods", err)
		}
	},
}

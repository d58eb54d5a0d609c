package cmd

import (
	"github.com/artkessler/pulse/core"
	"github.com/artkessler/pulse/internal/contract"
	"github.com/spf13/cobra"
)

// stressCmd shows the weekly stress summary.
var stressCmd = &cobra.Command{
	Use:   "stress",
	Short: "Show the weekly stress summary.",
	Long: `Summarize stress over the trailing window.

Days with a device-reported stress score use it directly. Days without
one get a proxy derived from recovery signals: HRV and resting heart
rate deviation from baseline, inverted readiness contributors, and
sleep efficiency. The summary shows the weekly average, trend, best
and worst days, and how many days were direct versus derived.

Examples:
  # Last week of stress
  pulse stress

  # A month, exported to JSON
  pulse stress --days 30 --output json --output-file stress.json`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteStressSummary(rootCtx, cfg, api); err != nil {
			contract.LogFatal("Cannot summarize stress", err)
		}
	},
}

package cmd

import (
	"github.com/artkessler/pulse/core"
	"github.com/artkessler/pulse/internal/contract"
	"github.com/artkessler/pulse/internal/telegram"
	"github.com/spf13/cobra"
)

// alertsCmd flags days that breach the configured thresholds.
var alertsCmd = &cobra.Command{
	Use:   "alerts",
	Short: "Flag days that fall below health thresholds.",
	Long: `Scan the trailing window and flag days whose readiness score, sleep
efficiency or sleep duration fall below the configured cutoffs.

Days with pending readiness data never alert on readiness; the record
may simply not have synced yet.

Examples:
  # Default thresholds (readiness 60, efficiency 80%, sleep 7h)
  pulse alerts

  # Stricter sleep duration cutoff, delivered to Telegram
  pulse alerts --sleep-threshold 7.5 --telegram`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		alerts, err := core.ExecuteAlerts(rootCtx, cfg, api)
		if err != nil {
			contract.LogFatal("Cannot check thresholds", err)
		}
		if cfg.SendTelegram {
			if err := sendToTelegram(telegram.FormatAlerts(alerts)); err != nil {
				contract.LogFatal("Cannot send alerts to Telegram", err)
			}
		}
	},
}

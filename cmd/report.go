package cmd

import (
	"github.com/artkessler/pulse/core"
	"github.com/artkessler/pulse/internal/contract"
	"github.com/artkessler/pulse/internal/iocache"
	"github.com/artkessler/pulse/internal/telegram"
	"github.com/spf13/cobra"
)

// reportCmd shows the weekly health report.
var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Show the weekly health report.",
	Long: `Aggregate sleep, readiness and stress over the trailing window.

The report shows weekly averages, best and worst days, and the stress
summary. When a history backend is configured the run is archived with
its per-day scores so trends can be exported later.

Examples:
  # Weekly report for the last 7 days
  pulse report

  # Two weeks, delivered to Telegram as well
  pulse report --days 14 --telegram

  # Archive runs to a local SQLite history store
  pulse report --history-backend sqlite`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		summary, err := core.ExecuteWeeklyReport(rootCtx, cfg, api, iocache.Manager.GetHistoryStore())
		if err != nil {
			contract.LogFatal("Cannot build weekly report", err)
		}
		if cfg.SendTelegram {
			if err := sendToTelegram(telegram.FormatWeeklySummary(summary)); err != nil {
				contract.LogFatal("Cannot send report to Telegram", err)
			}
		}
	},
}

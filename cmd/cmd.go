// Package cmd defines the command-line interface for pulse.
package cmd

import (
	"github.com/artkessler/pulse/internal/contract"
	"github.com/artkessler/pulse/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(sleepCmd)
	rootCmd.AddCommand(readinessCmd)
	rootCmd.AddCommand(activityCmd)
	rootCmd.AddCommand(stressCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(briefingCmd)
	rootCmd.AddCommand(alertsCmd)
	rootCmd.AddCommand(noteCmd)
	rootCmd.AddCommand(botCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(cacheCmd)
	rootCmd.AddCommand(historyCmd)

	// Add the cache subcommands to the parent cache command
	cacheCmd.AddCommand(cacheStatusCmd)
	cacheCmd.AddCommand(cacheClearCmd)

	// Add the history subcommands to the parent history command
	historyCmd.AddCommand(historyStatusCmd)
	historyCmd.AddCommand(historyExportCmd)
	historyCmd.AddCommand(historyMigrateCmd)
	historyCmd.AddCommand(historyClearCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().String("api-token", "", "Oura personal access token (prefer the OURA_API_TOKEN env variable)")
	rootCmd.PersistentFlags().String("api-url", "", "Override the Oura API base URL")
	rootCmd.PersistentFlags().IntP("days", "d", contract.DefaultDays, "Trailing window in days")
	rootCmd.PersistentFlags().String("date", "", "Target date in YYYY-MM-DD (defaults to today)")
	rootCmd.PersistentFlags().Int("baseline-days", contract.DefaultBaselineDays, "Baseline window for briefing deltas")
	rootCmd.PersistentFlags().String("timezone", contract.DefaultTimezone, "IANA timezone used to align days")
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Output format: text or csv or json or parquet")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().Int("precision", contract.DefaultPrecision, "Decimal precision for numeric columns")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().Float64("readiness-threshold", 60, "Alert when readiness score drops below this")
	rootCmd.PersistentFlags().Float64("efficiency-threshold", 80, "Alert when sleep efficiency drops below this")
	rootCmd.PersistentFlags().Float64("sleep-threshold", 7, "Alert when sleep duration drops below this many hours")
	rootCmd.PersistentFlags().String("telegram-token", "", "Telegram bot token (prefer the TELEGRAM_BOT_TOKEN env variable)")
	rootCmd.PersistentFlags().String("telegram-chat-id", "", "Telegram chat to deliver messages to")
	rootCmd.PersistentFlags().Bool("telegram", false, "Also send the result to the configured Telegram chat")
	rootCmd.PersistentFlags().String("notes-dir", "notes", "Directory where daily notes are written")
	rootCmd.PersistentFlags().String("cache-backend", string(schema.SQLiteBackend), "Response cache backend: sqlite or mysql or postgresql or none")
	rootCmd.PersistentFlags().String("cache-db-connect", "", "Database connection string for mysql/postgresql (e.g., user:pass@tcp(host:port)/dbname)")
	rootCmd.PersistentFlags().String("cache-ttl", "", "How long cached API responses stay fresh (e.g. 30m, 2h)")
	rootCmd.PersistentFlags().String("history-backend", "", "Report history backend: sqlite or mysql or postgresql or none")
	rootCmd.PersistentFlags().String("history-db-connect", "", "Database connection string for report history (must differ from cache-db-connect)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of historyMigrateCmd to Viper
	historyMigrateCmd.Flags().Int("target-version", -1, "Target migration version (-1 means latest, 0 means rollback to initial state)")
	if err := viper.BindPFlags(historyMigrateCmd.Flags()); err != nil {
		contract.LogFatal("Error binding history migrate flags", err)
	}
}

package cmd

import (
	"errors"
	"fmt"

	"github.com/artkessler/pulse/internal/contract"
	"github.com/artkessler/pulse/internal/iocache"
	"github.com/artkessler/pulse/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// historySetup loads minimal configuration needed for history operations.
func historySetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	// Get history-related config values
	backend := schema.DatabaseBackend(viper.GetString("history-backend"))
	if backend == "" {
		return errors.New("no history backend configured. Set history-backend in .pulse.yaml or PULSE_HISTORY_BACKEND")
	}
	connStr := viper.GetString("history-db-connect")

	// Basic validation for database backends
	if err := contract.ValidateDatabaseConnectionString(backend, connStr); err != nil {
		return err
	}

	// Initialize the history store only (no response caching for history commands)
	if err := iocache.InitStores("", "", backend, connStr); err != nil {
		return fmt.Errorf("failed to initialize history store: %w", err)
	}

	cfg.HistoryBackend = backend
	cfg.HistoryDBConnect = connStr

	return nil
}

// historySetupWrapper wraps historySetup to provide PreRunE for history commands.
func historySetupWrapper(_ *cobra.Command, _ []string) error {
	return historySetup()
}

// historyCmd focused on report history management.
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Manage the archived report history",
	Long: `Manage the history store that archives weekly report runs.

When a history backend is configured, every pulse report run records
its parameters and per-day scores. The archive can be inspected,
exported to Parquet, migrated across schema versions, and cleared.

Supported backends: SQLite, MySQL, PostgreSQL

Subcommands:
  status  - Show archive statistics and connection info
  export  - Export archived runs and day scores to Parquet files
  migrate - Run schema migrations on the history database
  clear   - Remove all archived data

Examples:
  # Check archive status
  pulse history status

  # Export for notebook analysis
  pulse history export --output-file pulse_history`,
}

// historyStatusCmd shows history store status.
var historyStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Display archive statistics and connection details",
	Long: `Show detailed information about the report history archive.

Displays:
- Backend type and connection status
- Total archived report runs and day score rows
- Last and oldest run timestamps

Examples:
  # Check archive status
  pulse history status`,
	PreRunE: historySetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		status, err := iocache.Manager.GetHistoryStore().GetStatus()
		if err != nil {
			contract.LogFatal("Failed to get history status", err)
		}
		iocache.PrintHistoryStatus(status)
	},
}

// historyExportCmd exports history data to Parquet files.
var historyExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export archived report runs and day scores to Parquet",
	Long: `Export all archived report runs and per-day scores to Parquet files.

Two files are written next to the given prefix:
  <output-file>.report_runs.parquet
  <output-file>.day_scores.parquet

Examples:
  # Export everything under a prefix
  pulse history export --output-file pulse_history`,
	PreRunE: historySetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := iocache.ExecuteHistoryExport(viper.GetString("output-file")); err != nil {
			contract.LogFatal("Failed to export history", err)
		}
	},
}

// historyMigrateCmd runs schema migrations on the history database.
var historyMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run schema migrations on the history database",
	Long: `Apply versioned schema migrations to the history database.

By default this migrates to the latest version. Pass --target-version
to migrate to a specific version, or 0 to roll back everything.

Examples:
  # Migrate to the latest schema
  pulse history migrate

  # Roll back to the initial state
  pulse history migrate --target-version 0`,
	PreRunE: historySetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		target := viper.GetInt("target-version")
		if err := iocache.MigrateHistory(cfg.HistoryBackend, cfg.HistoryDBConnect, target); err != nil {
			contract.LogFatal("Failed to migrate history store", err)
		}
		fmt.Println("History store migrated successfully.")
	},
}

// historyClearCmd clears the history store.
var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all archived report data",
	Long: `Delete all archived report runs and day scores from the configured backend.

For SQLite: Deletes the database file
For MySQL/PostgreSQL: Drops the archive tables

Examples:
  # Clear the SQLite archive
  pulse history clear`,
	PreRunE: historySetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := iocache.ClearHistory(cfg.HistoryBackend, contract.GetHistoryDBFilePath(), cfg.HistoryDBConnect); err != nil {
			contract.LogFatal("Failed to clear history", err)
		}
		fmt.Println("History cleared successfully.")
	},
}

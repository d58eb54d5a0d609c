package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/artkessler/pulse/internal/contract"
	"github.com/artkessler/pulse/internal/iocache"
	"github.com/artkessler/pulse/internal/ouraapi"
	"github.com/artkessler/pulse/internal/telegram"
	"github.com/artkessler/pulse/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// All linker flags will be set by goreleaser infra at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// rootCtx is the root context for all operations.
var rootCtx = context.Background()

// cfg will hold the validated, final configuration.
var cfg = &contract.Config{}

// input holds the raw, unvalidated configuration from all sources (file, env, flags).
// Viper will unmarshal into this struct.
var input = &contract.ConfigRawInput{}

// api is the provider client shared by all commands after setup.
var api contract.HealthAPI

// rootCmd is the command-line entrypoint for all other commands.
var rootCmd = &cobra.Command{
	Use:                "pulse",
	Short:              "Analyze wearable health data from the command line.",
	Long:               `Pulse turns raw Oura ring data into sleep, readiness, stress and recovery insights.`,
	Version:            version,
	SilenceErrors:      true,
	SilenceUsage:       true,
	DisableSuggestions: true,
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	// Check if a specific config file is provided
	if configFile := viper.GetString("config"); configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		// Set config file name and paths
		viper.SetConfigName(".pulse") // Name of config file (without extension)
		viper.SetConfigType("yaml")   // We'll use YAML format
		viper.AddConfigPath(".")      // Look in the current directory
		viper.AddConfigPath("$HOME")  // Look in the home directory
	}

	// Set environment variable prefix
	viper.SetEnvPrefix("PULSE")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv() // Read in environment variables that match

	// Secrets keep their historical unprefixed names alongside PULSE_* ones.
	_ = viper.BindEnv("api-token", "PULSE_API_TOKEN", "OURA_API_TOKEN")
	_ = viper.BindEnv("telegram-token", "PULSE_TELEGRAM_TOKEN", "TELEGRAM_BOT_TOKEN")
	_ = viper.BindEnv("telegram-chat-id", "PULSE_TELEGRAM_CHAT_ID", "TELEGRAM_CHAT_ID")
	_ = viper.BindEnv("timezone", "PULSE_TIMEZONE", "USER_TIMEZONE")

	// Set defaults in Viper
	thresholds := schema.DefaultAlertThresholds()
	viper.SetDefault("days", contract.DefaultDays)
	viper.SetDefault("baseline-days", contract.DefaultBaselineDays)
	viper.SetDefault("timezone", contract.DefaultTimezone)
	viper.SetDefault("precision", contract.DefaultPrecision)
	viper.SetDefault("output", schema.TextOut)
	viper.SetDefault("color", "yes")
	viper.SetDefault("readiness-threshold", thresholds.Readiness)
	viper.SetDefault("efficiency-threshold", thresholds.Efficiency)
	viper.SetDefault("sleep-threshold", thresholds.SleepHours)
	viper.SetDefault("notes-dir", "notes")
	viper.SetDefault("cache-backend", schema.SQLiteBackend)
	viper.SetDefault("cache-db-connect", "")
	viper.SetDefault("history-backend", "")
	viper.SetDefault("history-db-connect", "")
}

// sharedSetup unmarshals config, runs validation and builds the API client.
func sharedSetup(_ context.Context, _ *cobra.Command, args []string) error {
	// 1. Read config file. This merges defaults, file, env, and flags.
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Config file was found but another error was produced
			return fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found, which is fine; we'll use defaults/env/flags.
	}

	// 2. Unmarshal all resolved values from Viper into our raw input struct.
	if err := viper.Unmarshal(input); err != nil {
		return fmt.Errorf("unable to unmarshal config: %w", err)
	}

	// 3. Handle positional arguments (which Viper doesn't do).
	// Briefing and note accept a date argument.
	if len(args) == 1 {
		input.Date = args[0]
	}

	// 4. Run all validation and complex parsing.
	// This function now populates the global 'cfg' from 'input'.
	if err := contract.ProcessAndValidate(cfg, input); err != nil {
		return err
	}
	if err := cfg.RequireAPIToken(); err != nil {
		return err
	}

	// 5. Initialize persistence layer with validated config
	if err := iocache.InitStores(cfg.CacheBackend, cfg.CacheDBConnect, cfg.HistoryBackend, cfg.HistoryDBConnect); err != nil {
		return fmt.Errorf("failed to initialize persistence: %w", err)
	}

	// 6. Build the provider client, wrapped with the response cache when
	// one is configured.
	client := ouraapi.NewClient(cfg.APIBaseURL, cfg.APIToken)
	api = client
	if store := iocache.Manager.GetResponseStore(); store != nil && cfg.CacheBackend != schema.NoneBackend {
		api = ouraapi.NewCachedClient(client, store, cfg.CacheTTL)
	}

	return nil
}

// sharedSetupWrapper wraps sharedSetup to provide context for Cobra's PreRunE.
func sharedSetupWrapper(cmd *cobra.Command, args []string) error {
	return sharedSetup(rootCtx, cmd, args)
}

// loadConfigFile handles config file loading logic common to all setup functions.
func loadConfigFile() error {
	// Handle config file
	if configFile := viper.GetString("config"); configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		viper.SetConfigName(".pulse")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME")
	}

	// Load config file if present
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}

	return nil
}

// sendToTelegram delivers a formatted message to the configured chat.
func sendToTelegram(text string) error {
	if err := cfg.RequireTelegram(); err != nil {
		return err
	}
	client := telegram.NewClient(telegram.DefaultBaseURL, cfg.TelegramToken, cfg.TelegramChatID)
	return client.SendMessage(rootCtx, text)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

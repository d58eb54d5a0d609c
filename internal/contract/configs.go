package contract

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/artkessler/pulse/schema"
)

// Default values for configuration.
const (
	DefaultDays         = 7
	MaxDays             = 365
	DefaultBaselineDays = 14
	MaxBaselineDays     = 90
	DefaultPrecision    = 1
	DefaultCacheTTL     = time.Hour
)

// DefaultTimezone is used when the user has not configured one.
const DefaultTimezone = "America/Los_Angeles"

// DateFormat is the calendar day representation used across the CLI.
const DateFormat = "2006-01-02"

// Config holds the runtime configuration for all commands.
// This struct remains the "final, validated" config.
type Config struct {
	APIToken   string // Please use env var as this is plaintext
	APIBaseURL string

	Days         int
	Date         string // target date for briefing/note ("" means today)
	BaselineDays int

	Timezone     *time.Location
	TimezoneName string

	Output     schema.OutputMode
	OutputFile string
	Precision  int
	Width      int // Terminal width override (0 = auto-detect)
	UseColors  bool

	ReadinessThreshold  float64
	EfficiencyThreshold float64
	SleepHoursThreshold float64

	TelegramToken  string // Please use env var as this is plaintext
	TelegramChatID string
	SendTelegram   bool

	NotesDir string

	CacheBackend   schema.DatabaseBackend
	CacheDBConnect string // Please use env var as this is plaintext
	CacheTTL       time.Duration

	HistoryBackend   schema.DatabaseBackend
	HistoryDBConnect string // Please use env var as this is plaintext
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// --- Fields from rootCmd.PersistentFlags() ---
	APIToken         string `mapstructure:"api-token"`
	APIBaseURL       string `mapstructure:"api-url"`
	Days             int    `mapstructure:"days"`
	Timezone         string `mapstructure:"timezone"`
	Output           string `mapstructure:"output"`
	OutputFile       string `mapstructure:"output-file"`
	Precision        int    `mapstructure:"precision"`
	Width            int    `mapstructure:"width"`
	Color            string `mapstructure:"color"`
	CacheBackend     string `mapstructure:"cache-backend"`
	CacheDBConnect   string `mapstructure:"cache-db-connect"`
	CacheTTL         string `mapstructure:"cache-ttl"`
	HistoryBackend   string `mapstructure:"history-backend"`
	HistoryDBConnect string `mapstructure:"history-db-connect"`

	// --- Fields from briefingCmd / noteCmd flags ---
	Date         string `mapstructure:"date"`
	BaselineDays int    `mapstructure:"baseline-days"`
	NotesDir     string `mapstructure:"notes-dir"`

	// --- Fields from alertsCmd / botCmd flags ---
	ReadinessThreshold  float64 `mapstructure:"readiness-threshold"`
	EfficiencyThreshold float64 `mapstructure:"efficiency-threshold"`
	SleepHoursThreshold float64 `mapstructure:"sleep-threshold"`
	TelegramToken       string  `mapstructure:"telegram-token"`
	TelegramChatID      string  `mapstructure:"telegram-chat-id"`
	SendTelegram        bool    `mapstructure:"telegram"`
}

// Clone returns a copy of the Config struct.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}

// RequireAPIToken errors when no provider token is configured. Commands that
// never touch the API skip this check.
func (c *Config) RequireAPIToken() error {
	if c.APIToken == "" {
		return errors.New("no API token configured. Set OURA_API_TOKEN or api-token in .pulse.yaml")
	}
	return nil
}

// RequireTelegram errors when the bot token or chat ID is missing.
func (c *Config) RequireTelegram() error {
	if c.TelegramToken == "" {
		return errors.New("no Telegram bot token configured. Set TELEGRAM_BOT_TOKEN or telegram-token in .pulse.yaml")
	}
	if c.TelegramChatID == "" {
		return errors.New("no Telegram chat ID configured. Set TELEGRAM_CHAT_ID or telegram-chat-id in .pulse.yaml")
	}
	return nil
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and updates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	// --- 0. Transfer simple non-validated fields from input -> cfg ---
	cfg.APIToken = strings.TrimSpace(input.APIToken)
	cfg.APIBaseURL = strings.TrimSpace(input.APIBaseURL)
	cfg.OutputFile = input.OutputFile
	cfg.Width = input.Width
	cfg.TelegramToken = strings.TrimSpace(input.TelegramToken)
	cfg.TelegramChatID = strings.TrimSpace(input.TelegramChatID)
	cfg.SendTelegram = input.SendTelegram
	cfg.NotesDir = input.NotesDir

	// Parse color flag
	colors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	cfg.UseColors = colors

	// --- 1. Window Validation ---
	if input.Days <= 0 || input.Days > MaxDays {
		return fmt.Errorf("days must be greater than 0 and cannot exceed %d (received %d)", MaxDays, input.Days)
	}
	cfg.Days = input.Days

	if input.BaselineDays <= 0 || input.BaselineDays > MaxBaselineDays {
		return fmt.Errorf("baseline-days must be greater than 0 and cannot exceed %d (received %d)", MaxBaselineDays, input.BaselineDays)
	}
	cfg.BaselineDays = input.BaselineDays

	// --- 2. Date Validation ---
	if input.Date != "" {
		if _, err := time.Parse(DateFormat, input.Date); err != nil {
			return fmt.Errorf("invalid date '%s'. Expected YYYY-MM-DD", input.Date)
		}
	}
	cfg.Date = input.Date

	// --- 3. Timezone Validation ---
	cfg.TimezoneName = input.Timezone
	if cfg.TimezoneName == "" {
		cfg.TimezoneName = DefaultTimezone
	}
	loc, err := time.LoadLocation(cfg.TimezoneName)
	if err != nil {
		return fmt.Errorf("invalid timezone '%s': %w", cfg.TimezoneName, err)
	}
	cfg.Timezone = loc

	// --- 4. Precision and Output Validation ---
	if input.Precision < 1 || input.Precision > 2 {
		return fmt.Errorf("precision must be 1 or 2 (received %d)", input.Precision)
	}
	cfg.Precision = input.Precision

	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be text, csv, json, parquet", cfg.Output)
	}

	// --- 5. Threshold Validation ---
	if input.ReadinessThreshold < 0 || input.ReadinessThreshold > 100 {
		return fmt.Errorf("readiness-threshold must be within [0,100] (received %v)", input.ReadinessThreshold)
	}
	cfg.ReadinessThreshold = input.ReadinessThreshold

	if input.EfficiencyThreshold < 0 || input.EfficiencyThreshold > 100 {
		return fmt.Errorf("efficiency-threshold must be within [0,100] (received %v)", input.EfficiencyThreshold)
	}
	cfg.EfficiencyThreshold = input.EfficiencyThreshold

	if input.SleepHoursThreshold < 0 || input.SleepHoursThreshold > 24 {
		return fmt.Errorf("sleep-threshold must be within [0,24] hours (received %v)", input.SleepHoursThreshold)
	}
	cfg.SleepHoursThreshold = input.SleepHoursThreshold

	// --- 6. Backend Validation ---
	if err := validateBackendConfigs(cfg, input); err != nil {
		return err
	}

	// --- 7. Cache TTL Validation ---
	cfg.CacheTTL = DefaultCacheTTL
	if input.CacheTTL != "" {
		ttl, err := time.ParseDuration(input.CacheTTL)
		if err != nil {
			return fmt.Errorf("invalid cache-ttl '%s': %w", input.CacheTTL, err)
		}
		if ttl <= 0 {
			return fmt.Errorf("cache-ttl must be positive (received %s)", ttl)
		}
		cfg.CacheTTL = ttl
	}

	return nil
}

// AlertThresholds assembles the validated cutoffs for threshold checks.
func (c *Config) AlertThresholds() schema.AlertThresholds {
	return schema.AlertThresholds{
		Readiness:  c.ReadinessThreshold,
		Efficiency: c.EfficiencyThreshold,
		SleepHours: c.SleepHoursThreshold,
	}
}

// ValidateDatabaseConnectionString validates the format of database
// connection strings for MySQL and PostgreSQL backends.
func ValidateDatabaseConnectionString(backend schema.DatabaseBackend, connStr string) error {
	switch backend {
	case schema.SQLiteBackend, schema.NoneBackend:
		return nil
	case schema.MySQLBackend:
		if connStr == "" {
			return fmt.Errorf("cache-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "@tcp(") {
			return fmt.Errorf("MySQL connection string must contain '@tcp(' for host:port specification")
		}
		if !strings.Contains(connStr, "/") {
			return fmt.Errorf("MySQL connection string must contain '/' followed by database name")
		}
	case schema.PostgreSQLBackend:
		if connStr == "" {
			return fmt.Errorf("cache-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "host=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'host=' parameter")
		}
		if !strings.Contains(connStr, "dbname=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'dbname=' parameter")
		}
	}
	return nil
}

// validateBackendConfigs validates cache and history backend configurations.
func validateBackendConfigs(cfg *Config, input *ConfigRawInput) error {
	// --- Cache Backend Validation ---
	cfg.CacheBackend = schema.DatabaseBackend(strings.ToLower(input.CacheBackend))
	if _, ok := schema.ValidDatabaseBackends[cfg.CacheBackend]; !ok {
		return fmt.Errorf("invalid cache backend '%s'. must be sqlite, mysql, postgresql, none", input.CacheBackend)
	}
	cfg.CacheDBConnect = input.CacheDBConnect
	if err := ValidateDatabaseConnectionString(cfg.CacheBackend, cfg.CacheDBConnect); err != nil {
		return err
	}

	// --- History Backend Validation ---
	cfg.HistoryBackend = schema.DatabaseBackend(strings.ToLower(input.HistoryBackend))
	if cfg.HistoryBackend != "" {
		if _, ok := schema.ValidDatabaseBackends[cfg.HistoryBackend]; !ok {
			return fmt.Errorf("invalid history backend '%s'. must be sqlite, mysql, postgresql, none", input.HistoryBackend)
		}
		cfg.HistoryDBConnect = input.HistoryDBConnect
		if err := ValidateDatabaseConnectionString(cfg.HistoryBackend, cfg.HistoryDBConnect); err != nil {
			return err
		}

		// Validate that cache and history use different databases
		if cfg.CacheBackend == cfg.HistoryBackend && cfg.CacheBackend != schema.NoneBackend {
			// For SQLite, resolve to actual file paths to catch default path conflicts
			if cfg.CacheBackend == schema.SQLiteBackend {
				cacheDBPath := cfg.CacheDBConnect
				if cacheDBPath == "" {
					cacheDBPath = GetCacheDBFilePath()
				}
				historyDBPath := cfg.HistoryDBConnect
				if historyDBPath == "" {
					historyDBPath = GetHistoryDBFilePath()
				}
				if cacheDBPath == historyDBPath {
					return fmt.Errorf("cache and history storage must use different SQLite database files. Both resolve to %q", cacheDBPath)
				}
			}
		}
	}

	return nil
}

package contract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/artkessler/pulse/schema"
	"github.com/fatih/color"
)

// Score label constants for metrics where higher is better.
const (
	ExcellentValue = "Excellent" // Excellent value
	GoodValue      = "Good"      // Good value
	FairValue      = "Fair"      // Fair value
	PoorValue      = "Poor"      // Poor value
)

// Color variables for console output.
var (
	ExcellentColor = color.New(color.FgGreen, color.Bold) // excellentColor represents a strong positive signal.
	GoodColor      = color.New(color.FgCyan)              // goodColor represents a healthy, unremarkable signal.
	FairColor      = color.New(color.FgYellow)            // fairColor represents standard caution, not bold.
	PoorColor      = color.New(color.FgRed, color.Bold)   // poorColor represents standard danger.

	HighStressColor     = color.New(color.FgRed, color.Bold) // high stress reads as danger.
	ModerateStressColor = color.New(color.FgYellow)          // moderate stress reads as caution.
	LowStressColor      = color.New(color.FgCyan)            // low stress is informational.
	UnknownStressColor  = color.New(color.FgWhite)           // unknown stress carries no signal.
)

// GetPlainScoreLabel returns a plain text label for a 0-100 wellness score
// where higher is better (sleep, readiness). This is the core logic used for
// CSV, JSON, and table printing.
func GetPlainScoreLabel(score float64) string {
	switch {
	case score >= 85:
		return ExcellentValue
	case score >= 70:
		return GoodValue
	case score >= 50:
		return FairValue
	default:
		return PoorValue
	}
}

// GetColorScoreLabel returns a colored text label for console output (table).
// It uses GetPlainScoreLabel to determine the string, then applies the color.
func GetColorScoreLabel(score float64) string {
	text := GetPlainScoreLabel(score)

	switch text {
	case ExcellentValue:
		return ExcellentColor.Sprint(text)
	case GoodValue:
		return GoodColor.Sprint(text)
	case FairValue:
		return FairColor.Sprint(text)
	default: // "Poor"
		return PoorColor.Sprint(text)
	}
}

// GetColorStressLabel returns a colored stress status for console output.
func GetColorStressLabel(status schema.StressStatus) string {
	switch status {
	case schema.HighStress:
		return HighStressColor.Sprint(string(status))
	case schema.ModerateStress:
		return ModerateStressColor.Sprint(string(status))
	case schema.LowStress:
		return LowStressColor.Sprint(string(status))
	default: // UNKNOWN
		return UnknownStressColor.Sprint(string(status))
	}
}

// SelectOutputFile returns the appropriate file handle for output, based on
// the provided file path. An empty path means os.Stdout.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}

// GetCacheDBFilePath returns the path to the SQLite DB file for the response cache.
func GetCacheDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".pulse_cache.db"
	}
	return filepath.Join(homeDir, ".pulse_cache.db")
}

// GetHistoryDBFilePath returns the path to the SQLite DB file for report history.
func GetHistoryDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".pulse_history.db"
	}
	return filepath.Join(homeDir, ".pulse_history.db")
}

// ParseBoolString parses a string value into a boolean.
// Accepts "yes", "no", "true", "false", "1", "0" (case-insensitive).
// Returns an error for invalid values.
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "true", "1":
		return true, nil
	case "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean string: %s (expected yes/no/true/false/1/0)", s)
	}
}

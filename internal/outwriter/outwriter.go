// Package outwriter has output and writer logic.
package outwriter

import (
	"time"

	"github.com/artkessler/pulse/internal/contract"
	"github.com/artkessler/pulse/schema"
)

// OutWriter provides a unified interface for all output operations.
// It encapsulates the various output formats and provides a clean API for the core logic.
type OutWriter struct{}

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{}
}

// WriteDayScores prints per-day score rows using the configured output format.
func (ow *OutWriter) WriteDayScores(rows []schema.DayScoreRecord, cfg *contract.Config, duration time.Duration) error {
	return PrintDayScoreResults(rows, cfg, duration)
}

// WriteActivityDays prints per-day activity rows using the configured output format.
func (ow *OutWriter) WriteActivityDays(rows []schema.ActivityDay, cfg *contract.Config, duration time.Duration) error {
	return PrintActivityResults(rows, cfg, duration)
}

// WriteStressSummary prints a weekly stress summary using the configured output format.
func (ow *OutWriter) WriteStressSummary(summary *schema.WeeklyStressSummary, cfg *contract.Config, duration time.Duration) error {
	return PrintStressResults(summary, cfg, duration)
}

// WriteWeeklyReport prints a weekly report summary using the configured output format.
func (ow *OutWriter) WriteWeeklyReport(summary *schema.WeeklySummary, cfg *contract.Config, duration time.Duration) error {
	return PrintWeeklyReportResults(summary, cfg, duration)
}

// WriteComparison prints a period comparison using the configured output format.
func (ow *OutWriter) WriteComparison(comparison *schema.PeriodComparison, cfg *contract.Config, duration time.Duration) error {
	return PrintComparisonResults(comparison, cfg, duration)
}

// WriteAlerts prints threshold alerts using the configured output format.
func (ow *OutWriter) WriteAlerts(alerts []schema.DayAlerts, thresholds schema.AlertThresholds, cfg *contract.Config, duration time.Duration) error {
	return PrintAlertResults(alerts, thresholds, cfg, duration)
}

// WriteBriefing prints a morning briefing using the configured output format.
func (ow *OutWriter) WriteBriefing(briefing *schema.Briefing, cfg *contract.Config) error {
	return PrintBriefingResults(briefing, cfg)
}

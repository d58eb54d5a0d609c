package core

import (
	"context"
	"fmt"
	"time"

	"github.com/artkessler/pulse/internal/contract"
	"github.com/artkessler/pulse/internal/iocache"
	"github.com/artkessler/pulse/internal/outwriter"
	"github.com/artkessler/pulse/schema"
)

// localNow returns the current time in the user's timezone.
func localNow(cfg *contract.Config) time.Time {
	if cfg.Timezone != nil {
		return time.Now().In(cfg.Timezone)
	}
	return time.Now()
}

// TargetDate resolves the briefing date, defaulting to today in the user's timezone.
func TargetDate(cfg *contract.Config) string {
	if cfg.Date != "" {
		return cfg.Date
	}
	return localNow(cfg).Format(dateLayout)
}

// executeDayScores fetches the trailing window and prints per-day score rows.
func executeDayScores(ctx context.Context, cfg *contract.Config, api contract.HealthAPI) error {
	start := time.Now()
	window, err := FetchWindow(ctx, api, cfg.Days, localNow(cfg))
	if err != nil {
		return err
	}
	rows := BuildDayScores(window, time.Now().UTC())
	return outwriter.NewOutWriter().WriteDayScores(rows, cfg, time.Since(start))
}

// ExecuteSleepDays prints recent per-day sleep scores.
func ExecuteSleepDays(ctx context.Context, cfg *contract.Config, api contract.HealthAPI) error {
	return executeDayScores(ctx, cfg, api)
}

// ExecuteReadinessDays prints recent per-day readiness scores. Sleep and
// readiness share the day-score table so days line up between the two views.
func ExecuteReadinessDays(ctx context.Context, cfg *contract.Config, api contract.HealthAPI) error {
	return executeDayScores(ctx, cfg, api)
}

// ExecuteActivityDays prints recent per-day activity metrics.
func ExecuteActivityDays(ctx context.Context, cfg *contract.Config, api contract.HealthAPI) error {
	start := time.Now()
	now := localNow(cfg)
	begin := now.AddDate(0, 0, -cfg.Days).Format(dateLayout)
	end := now.Format(dateLayout)
	records, err := api.DailyActivity(ctx, begin, end)
	if err != nil {
		return fmt.Errorf("fetch activity: %w", err)
	}
	rows := BuildActivityDays(records)
	return outwriter.NewOutWriter().WriteActivityDays(rows, cfg, time.Since(start))
}

// ExecuteStressSummary prints the weekly stress summary.
func ExecuteStressSummary(ctx context.Context, cfg *contract.Config, api contract.HealthAPI) error {
	start := time.Now()
	window, err := FetchWindow(ctx, api, cfg.Days, localNow(cfg))
	if err != nil {
		return err
	}
	summary := SummarizeWeeklyStress(window.Sleep, window.Readiness, window.Stress)
	return outwriter.NewOutWriter().WriteStressSummary(&summary, cfg, time.Since(start))
}

// ExecuteWeeklyReport prints the weekly report and, when a history store is
// configured, archives the run with its per-day scores. The summary is
// returned so callers can forward it to other channels.
func ExecuteWeeklyReport(ctx context.Context, cfg *contract.Config, api contract.HealthAPI, history contract.HistoryStore) (*schema.WeeklySummary, error) {
	start := time.Now()
	window, summary, err := BuildWeeklyReport(ctx, api, cfg.Days, localNow(cfg))
	if err != nil {
		return nil, err
	}
	if err := outwriter.NewOutWriter().WriteWeeklyReport(summary, cfg, time.Since(start)); err != nil {
		return nil, err
	}

	if history != nil {
		rows := BuildDayScores(window, time.Now().UTC())
		params := map[string]any{
			"days":     cfg.Days,
			"timezone": cfg.TimezoneName,
		}
		if _, err := iocache.ArchiveReport(history, start, time.Now(), params, rows); err != nil {
			contract.LogWarn("Could not archive report run", err)
		}
	}
	return summary, nil
}

// ExecuteComparison prints the current period against the previous one.
func ExecuteComparison(ctx context.Context, cfg *contract.Config, api contract.HealthAPI) error {
	start := time.Now()
	comparison, err := BuildComparison(ctx, api, cfg.Days, localNow(cfg))
	if err != nil {
		return err
	}
	return outwriter.NewOutWriter().WriteComparison(comparison, cfg, time.Since(start))
}

// ExecuteAlerts prints days that breach the configured thresholds and returns
// them so callers can forward the list to other channels.
func ExecuteAlerts(ctx context.Context, cfg *contract.Config, api contract.HealthAPI) ([]schema.DayAlerts, error) {
	start := time.Now()
	alerts, err := BuildAlerts(ctx, api, cfg.Days, localNow(cfg), cfg.AlertThresholds())
	if err != nil {
		return nil, err
	}
	if err := outwriter.NewOutWriter().WriteAlerts(alerts, cfg.AlertThresholds(), cfg, time.Since(start)); err != nil {
		return nil, err
	}
	return alerts, nil
}

// ExecuteBriefing prints the morning briefing for the target date.
func ExecuteBriefing(ctx context.Context, cfg *contract.Config, api contract.HealthAPI) error {
	briefing, err := BuildBriefingForDate(ctx, api, TargetDate(cfg), cfg.BaselineDays)
	if err != nil {
		return err
	}
	return outwriter.NewOutWriter().WriteBriefing(briefing, cfg)
}

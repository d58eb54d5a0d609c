package core

import (
	"context"
	"fmt"
	"time"

	"github.com/artkessler/pulse/internal/contract"
	"github.com/artkessler/pulse/schema"
)

const dateLayout = "2006-01-02"

// ReportWindow is the raw provider data backing one report window.
type ReportWindow struct {
	StartDate string
	EndDate   string
	Sleep     []schema.Record
	Readiness []schema.Record
	Stress    []schema.Record
}

// FetchWindow pulls sleep, readiness and stress records for the trailing
// window of days ending now.
func FetchWindow(ctx context.Context, api contract.HealthAPI, days int, now time.Time) (*ReportWindow, error) {
	end := now.Format(dateLayout)
	start := now.AddDate(0, 0, -days).Format(dateLayout)
	return FetchRange(ctx, api, start, end)
}

// FetchRange pulls sleep, readiness and stress records for a date range.
func FetchRange(ctx context.Context, api contract.HealthAPI, start, end string) (*ReportWindow, error) {
	sleep, err := api.Sleep(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("fetch sleep: %w", err)
	}
	readiness, err := api.DailyReadiness(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("fetch readiness: %w", err)
	}
	stress, err := api.DailyStress(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("fetch stress: %w", err)
	}
	return &ReportWindow{
		StartDate: start,
		EndDate:   end,
		Sleep:     sleep,
		Readiness: readiness,
		Stress:    stress,
	}, nil
}

// BuildWeeklyReport fetches the trailing window and summarizes it.
func BuildWeeklyReport(ctx context.Context, api contract.HealthAPI, days int, now time.Time) (*ReportWindow, *schema.WeeklySummary, error) {
	window, err := FetchWindow(ctx, api, days, now)
	if err != nil {
		return nil, nil, err
	}
	return window, AnalyzeWeek(window.Sleep, window.Readiness, window.Stress), nil
}

// BuildComparison fetches the trailing window and the one before it, then
// diffs their summaries.
func BuildComparison(ctx context.Context, api contract.HealthAPI, days int, now time.Time) (*schema.PeriodComparison, error) {
	current, err := FetchWindow(ctx, api, days, now)
	if err != nil {
		return nil, err
	}
	previous, err := FetchWindow(ctx, api, days, now.AddDate(0, 0, -days))
	if err != nil {
		return nil, err
	}
	return ComparePeriods(current, previous), nil
}

// ComparePeriods summarizes two windows and diffs their shared numeric
// metrics (current minus previous, 2 decimals). A metric missing from either
// window is absent from the diff.
func ComparePeriods(current, previous *ReportWindow) *schema.PeriodComparison {
	cur := AnalyzeWeek(current.Sleep, current.Readiness, current.Stress)
	prev := AnalyzeWeek(previous.Sleep, previous.Readiness, previous.Stress)

	diff := make(map[string]float64)
	add := func(key string, a, b *float64) {
		if a != nil && b != nil {
			diff[key] = roundN(*a-*b, 2)
		}
	}
	if cur != nil && prev != nil {
		add("avg_sleep_score", cur.AvgSleepScore, prev.AvgSleepScore)
		add("avg_readiness", cur.AvgReadiness, prev.AvgReadiness)
		add("avg_efficiency", cur.AvgEfficiency, prev.AvgEfficiency)
		add("avg_duration", cur.AvgDurationHours, prev.AvgDurationHours)
		add("avg_stress", cur.Stress.Avg, prev.Stress.Avg)
	}
	return &schema.PeriodComparison{Current: cur, Previous: prev, Diff: diff}
}

// BuildDayScores flattens a report window into one normalized row per day,
// suitable for history archiving and per-day display. Rows follow the sleep
// records; days without a sleep record are skipped.
func BuildDayScores(window *ReportWindow, recordedAt time.Time) []schema.DayScoreRecord {
	readinessByDay := indexByDay(window.Readiness)
	stressByDay := indexByDay(window.Stress)

	baselineHRV := baselineFrom(window.Sleep, "average_hrv", schema.DefaultBaselineHRV)
	baselineRHR := baselineFrom(window.Sleep, "lowest_heart_rate", schema.DefaultBaselineRHR)

	rows := make([]schema.DayScoreRecord, 0, len(window.Sleep))
	for _, sleep := range window.Sleep {
		day := sleep.Day()
		if day == "" {
			continue
		}

		row := schema.DayScoreRecord{
			Day:          day,
			RecordedAt:   recordedAt,
			StressSource: string(schema.UnavailableSource),
		}
		if score, ok := sleepScoreOf(sleep); ok {
			row.SleepScore = score
		}
		if v, ok := sleep.Float("efficiency"); ok {
			row.Efficiency = v
		}
		if v, ok := sleep.Float("total_sleep_duration"); ok {
			row.DurationHours = HoursFromSeconds(v)
		}
		if v, ok := sleep.Float("average_hrv"); ok {
			row.AvgHRV = v
		}
		if v, ok := sleep.Float("lowest_heart_rate"); ok {
			row.RestingHR = v
		}
		if r := readinessByDay[day]; r != nil {
			if v, ok := r.Float("score"); ok {
				row.ReadinessScore = v
			}
		}

		stressDay := BuildStressDay(day, sleep, readinessByDay[day], stressByDay[day], baselineHRV, baselineRHR)
		if stressDay.Score != nil {
			row.StressScore = *stressDay.Score
			row.StressSource = string(stressDay.Source)
		}

		rows = append(rows, row)
	}
	return rows
}

// BuildAlerts fetches the trailing window and runs threshold checks on it.
func BuildAlerts(ctx context.Context, api contract.HealthAPI, days int, now time.Time, thresholds schema.AlertThresholds) ([]schema.DayAlerts, error) {
	window, err := FetchWindow(ctx, api, days, now)
	if err != nil {
		return nil, err
	}
	return CheckThresholds(window.Sleep, window.Readiness, thresholds), nil
}

// BuildBriefingForDate fetches the target date's night record plus the
// trailing baseline window and assembles the morning briefing. The baseline
// excludes the target date itself.
func BuildBriefingForDate(ctx context.Context, api contract.HealthAPI, date string, baselineDays int) (*schema.Briefing, error) {
	target, err := time.Parse(dateLayout, date)
	if err != nil {
		return nil, fmt.Errorf("invalid briefing date: %w", err)
	}
	start := target.AddDate(0, 0, -baselineDays).Format(dateLayout)

	window, err := FetchRange(ctx, api, start, date)
	if err != nil {
		return nil, err
	}

	var night schema.Record
	var baseline []schema.Record
	for _, rec := range window.Sleep {
		if rec.Day() == date {
			night = rec
		} else {
			baseline = append(baseline, rec)
		}
	}

	briefing := BuildBriefing(date, night, indexByDay(window.Readiness)[date])
	AttachBaseline(&briefing, BriefingBaselineFrom(baseline))
	return &briefing, nil
}

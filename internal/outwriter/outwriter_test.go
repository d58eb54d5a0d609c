package outwriter

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/artkessler/pulse/internal/contract"
	"github.com/artkessler/pulse/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestConfig builds a config with deterministic output settings.
func newTestConfig(output schema.OutputMode, outputFile string) *contract.Config {
	return &contract.Config{
		Output:       output,
		OutputFile:   outputFile,
		Precision:    1,
		Width:        120,
		UseColors:    false,
		CacheBackend: schema.SQLiteBackend,
	}
}

func sampleDayRows() []schema.DayScoreRecord {
	recordedAt := time.Date(2026, 1, 17, 8, 0, 0, 0, time.UTC)
	return []schema.DayScoreRecord{
		{
			Day:            "2026-01-15",
			RecordedAt:     recordedAt,
			SleepScore:     82.5,
			ReadinessScore: 78,
			StressScore:    41.5,
			StressSource:   string(schema.DirectSource),
			Efficiency:     91,
			DurationHours:  7.4,
			AvgHRV:         46,
			RestingHR:      52,
		},
		{
			Day:            "2026-01-16",
			RecordedAt:     recordedAt,
			SleepScore:     74,
			ReadinessScore: 70,
			StressScore:    55.3,
			StressSource:   string(schema.DerivedSource),
			Efficiency:     85,
			DurationHours:  6.8,
			AvgHRV:         41,
			RestingHR:      55,
		},
	}
}

func sampleWeeklySummary() *schema.WeeklySummary {
	return &schema.WeeklySummary{
		AvgSleepScore:    schema.FloatPtr(78.3),
		AvgReadiness:     schema.FloatPtr(74),
		AvgEfficiency:    schema.FloatPtr(88),
		AvgDurationHours: schema.FloatPtr(7.1),
		BestDay:          "2026-01-15",
		WorstDay:         "2026-01-16",
		DaysTracked:      2,
		Stress: schema.WeeklyStressSummary{
			Avg:            schema.FloatPtr(48.4),
			Status:         schema.ModerateStress,
			BestDay:        "2026-01-15",
			WorstDay:       "2026-01-16",
			Trend:          schema.FloatPtr(13.8),
			TrendDirection: schema.TrendUp,
			DaysTracked:    2,
			DirectDays:     1,
			DerivedDays:    1,
			Days: []schema.StressDay{
				{
					Day:        "2026-01-15",
					Score:      schema.FloatPtr(41.5),
					Status:     schema.ModerateStress,
					Source:     schema.DirectSource,
					Components: []string{},
					Label:      "direct stress",
				},
				{
					Day:        "2026-01-16",
					Score:      schema.FloatPtr(55.3),
					Status:     schema.ModerateStress,
					Source:     schema.DerivedSource,
					Derived:    true,
					Components: []string{"hrv", "resting_hr"},
					Label:      "derived from HRV/RHR/readiness contributors",
				},
			},
		},
	}
}

func TestOutWriterAllFormats(t *testing.T) {
	ow := NewOutWriter()
	duration := 25 * time.Millisecond

	for _, output := range []schema.OutputMode{schema.TextOut, schema.JSONOut, schema.CSVOut} {
		t.Run(string(output), func(t *testing.T) {
			tmpDir := t.TempDir()
			outputFile := filepath.Join(tmpDir, "out."+string(output))
			cfg := newTestConfig(output, outputFile)

			summary := sampleWeeklySummary()
			require.NoError(t, ow.WriteDayScores(sampleDayRows(), cfg, duration))
			require.NoError(t, ow.WriteStressSummary(&summary.Stress, cfg, duration))
			require.NoError(t, ow.WriteWeeklyReport(summary, cfg, duration))
			require.NoError(t, ow.WriteComparison(&schema.PeriodComparison{
				Current:  summary,
				Previous: summary,
				Diff:     map[string]float64{"avg_sleep_score": 0},
			}, cfg, duration))
			require.NoError(t, ow.WriteAlerts([]schema.DayAlerts{
				{Day: "2026-01-16", Alerts: []string{"Readiness 55 below threshold 60"}},
			}, schema.DefaultAlertThresholds(), cfg, duration))
			require.NoError(t, ow.WriteBriefing(&schema.Briefing{
				Day:        "2026-01-16",
				SleepScore: schema.FloatPtr(74),
			}, cfg))

			// Last write wins; the file should carry the briefing output
			info, err := os.Stat(outputFile)
			require.NoError(t, err)
			assert.Greater(t, info.Size(), int64(0))
		})
	}
}

func TestOutWriterParquetDayScores(t *testing.T) {
	ow := NewOutWriter()
	outputFile := filepath.Join(t.TempDir(), "days.parquet")
	cfg := newTestConfig(schema.ParquetOut, outputFile)

	require.NoError(t, ow.WriteDayScores(sampleDayRows(), cfg, time.Millisecond))

	info, err := os.Stat(outputFile)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestOutWriterParquetUnsupported(t *testing.T) {
	ow := NewOutWriter()
	cfg := newTestConfig(schema.ParquetOut, filepath.Join(t.TempDir(), "out.parquet"))
	duration := time.Millisecond

	summary := sampleWeeklySummary()
	assert.Error(t, ow.WriteStressSummary(&summary.Stress, cfg, duration))
	assert.Error(t, ow.WriteWeeklyReport(summary, cfg, duration))
	assert.Error(t, ow.WriteComparison(&schema.PeriodComparison{Diff: map[string]float64{}}, cfg, duration))
	assert.Error(t, ow.WriteAlerts(nil, schema.DefaultAlertThresholds(), cfg, duration))
	assert.Error(t, ow.WriteBriefing(&schema.Briefing{Day: "2026-01-16"}, cfg))
}

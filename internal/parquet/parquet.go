// Package parquet provides data structures and functions for exporting report
// history data to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"
	"time"

	"github.com/artkessler/pulse/schema"
	"github.com/parquet-go/parquet-go"
)

// ReportRun represents a single report run with metadata.
// This struct maps to the pulse_report_runs database table.
type ReportRun struct {
	// RunID is the unique identifier for this report run
	RunID int64 `parquet:"run_id,snappy"`

	// StartTime is when the run began (stored as TIMESTAMP with nanosecond precision)
	StartTime time.Time `parquet:"start_time,snappy"`

	// EndTime is when the run completed (nullable, stored as TIMESTAMP with nanosecond precision)
	EndTime *time.Time `parquet:"end_time,optional,snappy"`

	// RunDurationMs is the duration of the run in milliseconds (nullable)
	RunDurationMs *int32 `parquet:"run_duration_ms,optional,snappy"`

	// TotalDays is the number of days covered by this run
	TotalDays int32 `parquet:"total_days,snappy"`

	// ConfigParams contains the JSON-encoded configuration parameters (nullable)
	ConfigParams *string `parquet:"config_params,optional,snappy"`
}

// DayScore represents the normalized health scores for one day of a run.
// This struct maps to the pulse_day_scores database table.
type DayScore struct {
	// RunID references the parent report run
	RunID int64 `parquet:"run_id,snappy"`

	// Day is the calendar day in YYYY-MM-DD form
	Day string `parquet:"day,snappy"`

	// RecordedAt is when this day was archived (stored as TIMESTAMP with nanosecond precision)
	RecordedAt time.Time `parquet:"recorded_at,snappy"`

	// SleepScore is the daily sleep score (0-100)
	SleepScore float64 `parquet:"sleep_score,snappy"`

	// ReadinessScore is the daily readiness score (0-100)
	ReadinessScore float64 `parquet:"readiness_score,snappy"`

	// StressScore is the daily stress score (0-100)
	StressScore float64 `parquet:"stress_score,snappy"`

	// StressSource indicates whether the stress score was direct or derived
	StressSource string `parquet:"stress_source,snappy"`

	// Efficiency is the sleep efficiency percentage
	Efficiency float64 `parquet:"efficiency,snappy"`

	// DurationHours is the total sleep duration in hours
	DurationHours float64 `parquet:"duration_hours,snappy"`

	// AvgHRV is the average heart rate variability for the night
	AvgHRV float64 `parquet:"avg_hrv,snappy"`

	// RestingHR is the lowest heart rate for the night
	RestingHR float64 `parquet:"resting_hr,snappy"`
}

// WriteReportRunsParquet writes a slice of ReportRun structs to a Parquet file.
func WriteReportRunsParquet(data []ReportRun, outputPath string) error {
	// Create the output file
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// Create a Parquet writer using struct schema inference
	// The schema is automatically derived from the ReportRun struct tags
	writer := parquet.NewGenericWriter[ReportRun](file)
	defer func() { _ = writer.Close() }()

	// Write all records to the file
	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}

// WriteDayScoresParquet writes a slice of DayScore structs to a Parquet file.
func WriteDayScoresParquet(data []DayScore, outputPath string) error {
	// Create the output file
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// Create a Parquet writer using struct schema inference
	// The schema is automatically derived from the DayScore struct tags
	writer := parquet.NewGenericWriter[DayScore](file)
	defer func() { _ = writer.Close() }()

	// Write all records to the file
	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}

// MockFetchReportRuns generates sample ReportRun data for demonstration.
func MockFetchReportRuns() []ReportRun {
	now := time.Now()
	startTime1 := now.Add(-2 * time.Hour)
	endTime1 := startTime1.Add(3 * time.Second)
	durationMs1 := int32(endTime1.Sub(startTime1).Milliseconds())
	configParams1 := `{"days":7,"output":"text","timezone":"America/Los_Angeles"}`

	startTime2 := now.Add(-26 * time.Hour)
	endTime2 := startTime2.Add(5 * time.Second)
	durationMs2 := int32(endTime2.Sub(startTime2).Milliseconds())
	configParams2 := `{"days":30,"output":"json"}`

	startTime3 := now.Add(-10 * time.Minute)
	// Note: endTime3, durationMs3, configParams3 are nil to demonstrate nullable fields

	return []ReportRun{
		{
			RunID:         1,
			StartTime:     startTime1,
			EndTime:       &endTime1,
			RunDurationMs: &durationMs1,
			TotalDays:     7,
			ConfigParams:  &configParams1,
		},
		{
			RunID:         2,
			StartTime:     startTime2,
			EndTime:       &endTime2,
			RunDurationMs: &durationMs2,
			TotalDays:     30,
			ConfigParams:  &configParams2,
		},
		{
			RunID:         3,
			StartTime:     startTime3,
			EndTime:       nil, // Still running - nullable field
			RunDurationMs: nil, // Not yet calculated - nullable field
			TotalDays:     0,
			ConfigParams:  nil, // No config stored - nullable field
		},
	}
}

// MockFetchDayScores generates sample DayScore data for demonstration.
func MockFetchDayScores() []DayScore {
	now := time.Now()

	return []DayScore{
		{
			RunID:          1,
			Day:            "2026-01-15",
			RecordedAt:     now.Add(-2 * time.Hour),
			SleepScore:     82.5,
			ReadinessScore: 78,
			StressScore:    41.5,
			StressSource:   "direct",
			Efficiency:     91,
			DurationHours:  7.4,
			AvgHRV:         46,
			RestingHR:      52,
		},
		{
			RunID:          1,
			Day:            "2026-01-16",
			RecordedAt:     now.Add(-2 * time.Hour),
			SleepScore:     74,
			ReadinessScore: 70,
			StressScore:    55.3,
			StressSource:   "derived",
			Efficiency:     85,
			DurationHours:  6.8,
			AvgHRV:         41,
			RestingHR:      55,
		},
		{
			RunID:          2,
			Day:            "2026-01-10",
			RecordedAt:     now.Add(-26 * time.Hour),
			SleepScore:     88,
			ReadinessScore: 84,
			StressScore:    30,
			StressSource:   "direct",
			Efficiency:     94,
			DurationHours:  8.1,
			AvgHRV:         51,
			RestingHR:      50,
		},
	}
}

// ConvertReportRunRecords converts schema.ReportRunRecord to ReportRun for Parquet export.
func ConvertReportRunRecords(records []schema.ReportRunRecord) []ReportRun {
	result := make([]ReportRun, len(records))
	for i, record := range records {
		result[i] = ReportRun{
			RunID:         record.RunID,
			StartTime:     record.StartTime,
			EndTime:       record.EndTime,
			RunDurationMs: record.RunDurationMs,
			TotalDays:     record.TotalDays,
			ConfigParams:  record.ConfigParams,
		}
	}
	return result
}

// ConvertDayScoreRecords converts schema.DayScoreRecord to DayScore for Parquet export.
func ConvertDayScoreRecords(records []schema.DayScoreRecord) []DayScore {
	result := make([]DayScore, len(records))
	for i, record := range records {
		result[i] = DayScore{
			RunID:          record.RunID,
			Day:            record.Day,
			RecordedAt:     record.RecordedAt,
			SleepScore:     record.SleepScore,
			ReadinessScore: record.ReadinessScore,
			StressScore:    record.StressScore,
			StressSource:   record.StressSource,
			Efficiency:     record.Efficiency,
			DurationHours:  record.DurationHours,
			AvgHRV:         record.AvgHRV,
			RestingHR:      record.RestingHR,
		}
	}
	return result
}

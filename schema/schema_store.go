package schema

import "time"

// ReportRunRecord represents a row from the pulse_report_runs table.
type ReportRunRecord struct {
	RunID         int64
	StartTime     time.Time
	EndTime       *time.Time
	RunDurationMs *int32
	TotalDays     int32
	ConfigParams  *string
}

// DayScoreRecord represents a row from the pulse_day_scores table.
type DayScoreRecord struct {
	RunID          int64
	Day            string
	RecordedAt     time.Time
	SleepScore     float64
	ReadinessScore float64
	StressScore    float64
	StressSource   string
	Efficiency     float64
	DurationHours  float64
	AvgHRV         float64
	RestingHR      float64
}

// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"context"
	"time"

	"github.com/artkessler/pulse/schema"
)

// HealthAPI defines the wearable provider operations the analysis layer
// needs. This allows the HTTP client to be wrapped by a cache-backed
// decorator or mocked for testing.
type HealthAPI interface {
	// --- Raw endpoint fetches over a date range ---

	// Sleep returns detailed sleep period records.
	Sleep(ctx context.Context, startDate, endDate string) ([]schema.Record, error)

	// DailySleep returns daily sleep score records.
	DailySleep(ctx context.Context, startDate, endDate string) ([]schema.Record, error)

	// DailyReadiness returns daily readiness records with contributors.
	DailyReadiness(ctx context.Context, startDate, endDate string) ([]schema.Record, error)

	// DailyActivity returns daily activity records.
	DailyActivity(ctx context.Context, startDate, endDate string) ([]schema.Record, error)

	// DailyStress returns daily stress records, on devices that report them.
	DailyStress(ctx context.Context, startDate, endDate string) ([]schema.Record, error)

	// Heartrate returns raw heart rate samples.
	Heartrate(ctx context.Context, startDate, endDate string) ([]schema.Record, error)

	// --- Composite fetches ---

	// RecentSleep returns the last count nights of detailed sleep records,
	// with daily sleep scores merged in by day.
	RecentSleep(ctx context.Context, count int) ([]schema.Record, error)
}

// Messenger sends rendered summaries to an external chat surface.
// This allows the Telegram client to be mocked for testing.
type Messenger interface {
	SendMessage(ctx context.Context, text string) error
}

// CacheManager defines the interface for managing persistence stores.
// This allows the persistence layer to be mocked for testing.
type CacheManager interface {
	GetResponseStore() CacheStore
	GetHistoryStore() HistoryStore
}

// CacheStore defines the interface for API response cache storage.
// This allows mocking the store for testing.
type CacheStore interface {
	Get(key string) ([]byte, int, int64, error)
	Set(key string, value []byte, version int, timestamp int64) error
	GetStatus() (schema.CacheStatus, error)
	Close() error
}

// HistoryStore defines the interface for archiving report runs and the
// per-day scores they produced.
type HistoryStore interface {
	// BeginRun creates a new report run and returns its unique ID
	BeginRun(startTime time.Time, configParams map[string]any) (int64, error)

	// EndRun updates the report run with completion data
	EndRun(runID int64, endTime time.Time, totalDays int) error

	// RecordDayScore stores the normalized scores for one day of a run
	RecordDayScore(runID int64, record schema.DayScoreRecord) error

	// GetAllRuns returns every archived report run
	GetAllRuns() ([]schema.ReportRunRecord, error)

	// GetAllDayScores returns every archived day score row
	GetAllDayScores() ([]schema.DayScoreRecord, error)

	// GetStatus returns status information about the history store
	GetStatus() (schema.HistoryStatus, error)

	// Close closes the underlying connection
	Close() error
}

package iocache

import (
	"fmt"
	"time"

	"github.com/artkessler/pulse/internal/contract"
	"github.com/artkessler/pulse/schema"
)

// ArchiveReport records a completed report run and its per-day scores in the
// history store. It returns the run ID, which is 0 when tracking is disabled.
func ArchiveReport(store contract.HistoryStore, startTime, endTime time.Time, configParams map[string]any, days []schema.DayScoreRecord) (int64, error) {
	runID, err := store.BeginRun(startTime, configParams)
	if err != nil {
		return 0, fmt.Errorf("failed to begin report run: %w", err)
	}

	for _, day := range days {
		if err := store.RecordDayScore(runID, day); err != nil {
			return runID, fmt.Errorf("failed to record day %s: %w", day.Day, err)
		}
	}

	if err := store.EndRun(runID, endTime, len(days)); err != nil {
		return runID, fmt.Errorf("failed to end report run: %w", err)
	}

	return runID, nil
}

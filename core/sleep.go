package core

import (
	"math"

	"github.com/artkessler/pulse/schema"
)

// HoursFromSeconds converts a duration in seconds to hours, 1 decimal.
func HoursFromSeconds(seconds float64) float64 {
	return round1(seconds / 3600)
}

// SleepScore computes a composite 0-100 sleep score. Efficiency carries 60%
// of the weight and duration the rest, with 8 hours treated as a full night.
func SleepScore(rec schema.Record) float64 {
	eff, _ := rec.Float("efficiency")
	seconds, _ := rec.Float("total_sleep_duration")
	hours := seconds / 3600

	effScore := math.Min(eff, 100)
	durScore := math.Min(hours/8*100, 100)
	return round1(effScore*0.6 + durScore*0.4)
}

// sleepScoreOf prefers the provider's own daily score when the record
// carries one, and falls back to the composite score when the record has
// enough raw signal to compute it.
func sleepScoreOf(rec schema.Record) (float64, bool) {
	if v, ok := rec.Float("score"); ok {
		return v, true
	}
	_, hasEff := rec.Float("efficiency")
	_, hasDur := rec.Float("total_sleep_duration")
	if hasEff || hasDur {
		return SleepScore(rec), true
	}
	return 0, false
}

// AnalyzeWeek aggregates a window of sleep, readiness and stress records
// into a weekly summary. Returns nil when there are no sleep records.
// Best and worst days rank by sleep score; ties go to the earliest day.
func AnalyzeWeek(sleepData, readinessData, stressData []schema.Record) *schema.WeeklySummary {
	if len(sleepData) == 0 {
		return nil
	}

	readinessByDay := indexByDay(readinessData)

	var scores, efficiencies, durations, readinessScores []float64
	bestIdx, worstIdx := -1, -1
	for i, rec := range sleepData {
		if score, ok := sleepScoreOf(rec); ok {
			scores = append(scores, score)
			if bestIdx < 0 || score > mustSleepScore(sleepData[bestIdx]) {
				bestIdx = i
			}
			if worstIdx < 0 || score < mustSleepScore(sleepData[worstIdx]) {
				worstIdx = i
			}
		}
		if eff, ok := rec.Float("efficiency"); ok {
			efficiencies = append(efficiencies, eff)
		}
		if sec, ok := rec.Float("total_sleep_duration"); ok {
			durations = append(durations, sec/3600)
		}
		if r := readinessByDay[rec.Day()]; r != nil {
			if v, ok := r.Float("score"); ok {
				readinessScores = append(readinessScores, v)
			}
		}
	}

	summary := &schema.WeeklySummary{
		AvgSleepScore:    avgPtr(scores, 1),
		AvgReadiness:     avgPtr(readinessScores, 1),
		AvgEfficiency:    avgPtr(efficiencies, 1),
		AvgDurationHours: avgPtr(durations, 1),
		DaysTracked:      len(sleepData),
		Stress:           SummarizeWeeklyStress(sleepData, readinessData, stressData),
	}
	if bestIdx >= 0 {
		summary.BestDay = sleepData[bestIdx].Day()
	}
	if worstIdx >= 0 {
		summary.WorstDay = sleepData[worstIdx].Day()
	}
	return summary
}

func mustSleepScore(rec schema.Record) float64 {
	score, _ := sleepScoreOf(rec)
	return score
}

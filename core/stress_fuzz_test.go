package core

import (
	"testing"

	"github.com/artkessler/pulse/schema"
)

// FuzzToScore fuzzes score coercion with random record values.
func FuzzToScore(f *testing.F) {
	seeds := []string{"64", "58.3", "-5", "150", "restored", "", " 41.5 ", "NaN", "1e10"}
	for _, seed := range seeds {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, raw string) {
		score, ok := toScore(raw)
		if ok && (score < 0 || score > 100) {
			t.Errorf("toScore(%q) = %v, outside [0,100]", raw, score)
		}
	})
}

// FuzzBuildStressDay fuzzes day normalization with random signal values.
func FuzzBuildStressDay(f *testing.F) {
	f.Add(35.0, 58.0, 85.0, 70.0, 40.0, 60.0)
	f.Add(0.0, 0.0, 0.0, 0.0, 0.0, 0.0)
	f.Add(-100.0, 300.0, 150.0, -20.0, 40.0, 60.0)

	f.Fuzz(func(t *testing.T, hrv, rhr, eff, balance, baseHRV, baseRHR float64) {
		sleep := schema.Record{"day": "2026-01-15", "average_hrv": hrv, "lowest_heart_rate": rhr, "efficiency": eff}
		readiness := schema.Record{"day": "2026-01-15", "contributors": map[string]any{"hrv_balance": balance}}

		day := BuildStressDay("2026-01-15", sleep, readiness, nil, baseHRV, baseRHR)
		if day.Score != nil && (*day.Score < 0 || *day.Score > 100) {
			t.Errorf("derived score %v outside [0,100]", *day.Score)
		}
	})
}

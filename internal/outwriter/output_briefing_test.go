package outwriter

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"testing"

	"github.com/artkessler/pulse/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleBriefing() *schema.Briefing {
	return &schema.Briefing{
		Day:            "2026-01-16",
		SleepScore:     schema.FloatPtr(74),
		ReadinessScore: schema.FloatPtr(70),
		DurationHours:  schema.FloatPtr(6.8),
		AvgHRV:         schema.FloatPtr(41),
		RestingHR:      schema.FloatPtr(55),
		Efficiency:     schema.FloatPtr(85),
		Baseline: &schema.BriefingBaseline{
			SleepScore:    schema.FloatPtr(78.3),
			DurationHours: schema.FloatPtr(7.1),
			AvgHRV:        schema.FloatPtr(45),
			RestingHR:     schema.FloatPtr(53),
			Days:          14,
		},
		Deltas: map[string]float64{
			"sleep_score":    -4.3,
			"duration_hours": -0.3,
			"avg_hrv":        -4,
			"resting_hr":     2,
		},
	}
}

func TestBriefingMetrics(t *testing.T) {
	t.Run("with baseline", func(t *testing.T) {
		metrics := briefingMetrics(sampleBriefing())
		require.Len(t, metrics, 6)

		assert.Equal(t, "sleep_score", metrics[0].key)
		require.NotNil(t, metrics[0].baseline)
		assert.InDelta(t, 78.3, *metrics[0].baseline, 1e-9)

		// Readiness and efficiency have no baseline counterpart
		assert.Equal(t, "readiness_score", metrics[1].key)
		assert.Nil(t, metrics[1].baseline)
		assert.Equal(t, "efficiency", metrics[5].key)
		assert.Nil(t, metrics[5].baseline)
	})

	t.Run("without baseline", func(t *testing.T) {
		metrics := briefingMetrics(&schema.Briefing{Day: "2026-01-16"})
		require.Len(t, metrics, 6)
		for _, m := range metrics {
			assert.Nil(t, m.baseline)
		}
	})
}

func TestWriteBriefingTable(t *testing.T) {
	var buf bytes.Buffer
	cfg := newTestConfig(schema.TextOut, "")
	fmtFloat, _ := createFormatters(cfg.Precision)

	err := writeBriefingTable(&buf, sampleBriefing(), cfg, fmtFloat)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Sleep Score")
	assert.Contains(t, out, "74.0")
	assert.Contains(t, out, "78.3")
	assert.Contains(t, out, "-4.3")
	assert.Contains(t, out, "+2.0")
	assert.Contains(t, out, "Briefing for 2026-01-16 (baseline over 14 days)")
}

func TestWriteBriefingTableNoBaseline(t *testing.T) {
	var buf bytes.Buffer
	cfg := newTestConfig(schema.TextOut, "")
	fmtFloat, _ := createFormatters(cfg.Precision)

	err := writeBriefingTable(&buf, &schema.Briefing{Day: "2026-01-16"}, cfg, fmtFloat)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "n/a")
	assert.Contains(t, out, "baseline over 0 days")
}

func TestWriteCSVResultsForBriefing(t *testing.T) {
	var buf bytes.Buffer
	csvWriter := csv.NewWriter(&buf)
	fmtFloat, _ := createFormatters(1)

	err := writeCSVResultsForBriefing(csvWriter, sampleBriefing(), fmtFloat)
	require.NoError(t, err)
	csvWriter.Flush()

	records, err := csv.NewReader(bytes.NewReader(buf.Bytes())).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 7, "Header plus six metric rows")

	assert.Equal(t, []string{"day", "metric", "value", "baseline", "delta"}, records[0])
	assert.Equal(t, []string{"2026-01-16", "sleep_score", "74.0", "78.3", "-4.3"}, records[1])
	assert.Equal(t, "", records[2][3], "Readiness has no baseline")
}

func TestWriteJSONResultsForBriefing(t *testing.T) {
	var buf bytes.Buffer
	err := writeJSONResultsForBriefing(&buf, sampleBriefing())
	require.NoError(t, err)

	var decoded schema.Briefing
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "2026-01-16", decoded.Day)
	require.NotNil(t, decoded.Baseline)
	assert.Equal(t, 14, decoded.Baseline.Days)
	assert.InDelta(t, -4.3, decoded.Deltas["sleep_score"], 1e-9)
}

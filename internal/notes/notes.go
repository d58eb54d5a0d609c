// Package notes renders morning briefings into daily Markdown notes
// compatible with wiki-link based note vaults.
package notes

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/artkessler/pulse/internal/contract"
	"github.com/artkessler/pulse/schema"
)

// ErrNoteExists reports that a daily note is already on disk. Notes hold
// hand-written journal content, so they are never overwritten.
var ErrNoteExists = errors.New("daily note already exists")

// Writer creates daily notes under a vault directory.
type Writer struct {
	dir string
}

// NewWriter builds a writer rooted at the given directory.
func NewWriter(dir string) *Writer {
	return &Writer{dir: dir}
}

// WriteDailyNote renders the briefing into <dir>/<day>.md and returns the
// path. Fails with ErrNoteExists when the note is already present.
func (w *Writer) WriteDailyNote(briefing *schema.Briefing) (string, error) {
	path := filepath.Join(w.dir, briefing.Day+".md")
	if _, err := os.Stat(path); err == nil {
		return "", fmt.Errorf("%w: %s", ErrNoteExists, path)
	} else if !errors.Is(err, os.ErrNotExist) {
		return "", fmt.Errorf("stat note: %w", err)
	}

	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return "", fmt.Errorf("create notes directory: %w", err)
	}

	content, err := BuildDailyNote(briefing)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("write note: %w", err)
	}
	return path, nil
}

// BuildDailyNote renders the Markdown body for one briefing day.
func BuildDailyNote(briefing *schema.Briefing) (string, error) {
	day, err := time.Parse(contract.DateFormat, briefing.Day)
	if err != nil {
		return "", fmt.Errorf("invalid note date '%s': %w", briefing.Day, err)
	}
	prev := day.AddDate(0, 0, -1).Format(contract.DateFormat)
	next := day.AddDate(0, 0, 1).Format(contract.DateFormat)

	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s\n\n", briefing.Day)
	fmt.Fprintf(&sb, "[[%s]] | [[%s]]\n\n", prev, next)

	sb.WriteString("## Morning Check-in\n\n")
	writeMetricTable(&sb, briefing)
	sb.WriteString("\n")

	sb.WriteString("## Today's Priorities\n\n")
	sb.WriteString("- [ ] \n- [ ] \n- [ ] \n\n")

	sb.WriteString("## Notes\n\n\n")

	sb.WriteString("## Evening Reflection\n\n")

	return sb.String(), nil
}

// writeMetricTable renders the briefing metrics as a Markdown table.
func writeMetricTable(sb *strings.Builder, briefing *schema.Briefing) {
	sb.WriteString("| Metric | Value | Baseline | Delta |\n")
	sb.WriteString("| --- | --- | --- | --- |\n")

	base := briefing.Baseline
	pick := func(f func(*schema.BriefingBaseline) *float64) *float64 {
		if base == nil {
			return nil
		}
		return f(base)
	}
	rows := []struct {
		name     string
		key      string
		value    *float64
		baseline *float64
	}{
		{"Sleep Score", "sleep_score", briefing.SleepScore, pick(func(b *schema.BriefingBaseline) *float64 { return b.SleepScore })},
		{"Readiness", "readiness_score", briefing.ReadinessScore, nil},
		{"Duration (h)", "duration_hours", briefing.DurationHours, pick(func(b *schema.BriefingBaseline) *float64 { return b.DurationHours })},
		{"Avg HRV", "avg_hrv", briefing.AvgHRV, pick(func(b *schema.BriefingBaseline) *float64 { return b.AvgHRV })},
		{"Resting HR", "resting_hr", briefing.RestingHR, pick(func(b *schema.BriefingBaseline) *float64 { return b.RestingHR })},
		{"Efficiency", "efficiency", briefing.Efficiency, nil},
	}

	for _, row := range rows {
		delta := "n/a"
		if d, ok := briefing.Deltas[row.key]; ok {
			delta = schema.FormatFloat(d)
			if d >= 0 {
				delta = "+" + delta
			}
		}
		fmt.Fprintf(sb, "| %s | %s | %s | %s |\n",
			row.name, optCell(row.value), optCell(row.baseline), delta)
	}
}

// optCell renders an optional metric value for a table cell.
func optCell(v *float64) string {
	if v == nil {
		return "n/a"
	}
	return schema.FormatFloat(*v)
}

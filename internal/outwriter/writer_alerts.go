package outwriter

import (
	"encoding/csv"
	"io"
	"strings"

	"github.com/artkessler/pulse/schema"
)

// writeJSONResultsForAlerts marshals the alert days to JSON and writes them.
func writeJSONResultsForAlerts(w io.Writer, alerts []schema.DayAlerts) error {
	return writeJSON(w, alerts)
}

// writeCSVResultsForAlerts writes the alert days to a CSV writer.
func writeCSVResultsForAlerts(w *csv.Writer, alerts []schema.DayAlerts) error {
	// 1. Write Header Row
	header := []string{"day", "alerts"}
	if err := w.Write(header); err != nil {
		return err
	}

	// 2. Write Data Rows
	for _, a := range alerts {
		row := []string{
			a.Day,
			strings.Join(a.Alerts, "|"),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

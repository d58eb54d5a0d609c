package outwriter

import (
	"os"

	"github.com/artkessler/pulse/internal/contract"
	"golang.org/x/term"
)

// GetMaxTableNoteWidth calculates the maximum width for free-text table
// columns (stress components, alert messages) based on terminal width.
func GetMaxTableNoteWidth(cfg *contract.Config) int {
	var termWidth int

	// Check for absolute width override from flag/env
	if cfg.Width > 0 {
		termWidth = cfg.Width
	}

	if termWidth == 0 { // Not set by override
		// Get terminal width
		detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || detectedWidth <= 0 {
			// Fallback to conservative default if terminal size can't be detected
			termWidth = 80 // Conservative default for narrow terminals and CI
		} else {
			termWidth = detectedWidth
		}
	}

	// Reserve space for the fixed columns (day, score, status, source)
	// plus table borders, separators, and padding.
	baseWidth := 45

	// Calculate available space for free text
	available := termWidth - baseWidth
	if available < 15 {
		// Minimum reasonable note width
		return 15
	}
	if available > 60 {
		// Maximum note width to prevent overly wide tables
		return 60
	}
	return available
}

// truncateText shortens free text to max characters, marking the cut with an
// ellipsis when there is room for one.
func truncateText(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}

package cmd

import (
	"fmt"

	"github.com/artkessler/pulse/core"
	"github.com/artkessler/pulse/internal/contract"
	"github.com/artkessler/pulse/internal/notes"
	"github.com/spf13/cobra"
)

// noteCmd writes a daily Markdown note seeded with the morning briefing.
var noteCmd = &cobra.Command{
	Use:   "note [date]",
	Short: "Write a daily Markdown note seeded with health metrics.",
	Long: `Render the morning briefing into a daily note under the notes
directory, with wiki links to the surrounding days and empty journal
sections to fill in by hand.

Existing notes are never overwritten; they hold hand-written content.

Examples:
  # Today's note under ./notes
  pulse note

  # A specific date into an Obsidian vault
  pulse note 2026-01-16 --notes-dir ~/vault/daily`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		briefing, err := core.BuildBriefingForDate(rootCtx, api, core.TargetDate(cfg), cfg.BaselineDays)
		if err != nil {
			contract.LogFatal("Cannot build briefing", err)
		}
		path, err := notes.NewWriter(cfg.NotesDir).WriteDailyNote(briefing)
		if err != nil {
			contract.LogFatal("Cannot write daily note", err)
		}
		fmt.Printf("Wrote daily note to %s\n", path)
	},
}

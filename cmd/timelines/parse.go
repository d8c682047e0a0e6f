// Package main provides the entry point for the timelines CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/KialHarrison/kh-timelines/internal/output"
	"github.com/KialHarrison/kh-timelines/internal/timeline"
)

// newParseCmd creates the parse command.
func newParseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse [file]",
		Short: "Parse timeline source into structured entries",
		Long: `Parse timeline source text into structured entries without rendering.

Reads from the given file, or stdin when no file is given. Parsing is
total: malformed blocks become body-only entries rather than errors.

Examples:
  timelines parse notes.txt          # Show parsed entries
  timelines parse notes.txt --json   # Machine-readable entry list
  cat notes.txt | timelines parse    # Parse stdin`,
		Args: cobra.MaximumNArgs(1),
		RunE: runParse,
	}
}

// runParse executes the parse command.
func runParse(cmd *cobra.Command, args []string) error {
	printer := newPrinter(cmd)

	source, _, err := readSource(cmd, args)
	if err != nil {
		printer.Error(err)
		return err
	}

	entries := timeline.Parse(source)

	if printer.IsJSON() {
		return printer.WriteJSON(map[string]any{
			"count":   len(entries),
			"entries": entries,
		})
	}

	if len(entries) == 0 {
		printer.Println("No timeline entries found.")
		return nil
	}

	for _, entry := range entries {
		printEntry(printer, entry)
	}
	return nil
}

// printEntry writes one entry in human-readable form.
func printEntry(printer *output.Printer, entry timeline.Entry) {
	title := entry.Title
	if title == "" {
		title = "(untitled)"
	}
	printer.Section(title)
	if entry.HasDate() {
		printer.KeyValue("Date", entry.Date)
	}
	if entry.HasBody() {
		printer.Println(entry.Body)
	}
}

// Package main provides the entry point for the timelines CLI.
package main

import (
	"context"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/KialHarrison/kh-timelines/internal/output"
	"github.com/KialHarrison/kh-timelines/internal/render"
	"github.com/KialHarrison/kh-timelines/internal/timeline"
	"github.com/KialHarrison/kh-timelines/internal/tui"
)

// newPreviewCmd creates the preview command.
func newPreviewCmd() *cobra.Command {
	var markersFlag bool
	var dateLabelFlag string

	cmd := &cobra.Command{
		Use:   "preview [file]",
		Short: "Interactively preview a timeline in the terminal",
		Long: `Preview a timeline as a scrollable view in the terminal.

Entry bodies are shown as their markdown source. Press m to toggle
marker decorations, q to quit.

Examples:
  timelines preview notes.txt
  timelines preview notes.txt --markers=false`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPreview(cmd, args, markersFlag, dateLabelFlag)
		},
	}

	cmd.Flags().BoolVar(&markersFlag, "markers", true, "Emit marker decorations")
	cmd.Flags().StringVar(&dateLabelFlag, "date-label", "", "Fallback date label for entries without a date")

	return cmd
}

// runPreview executes the preview command.
func runPreview(cmd *cobra.Command, args []string, markersFlag bool, dateLabelFlag string) error {
	printer := newPrinter(cmd)

	if !output.IsTTY(os.Stdout) {
		err := output.NewUserError("preview requires a terminal; use 'timelines render' for piped output")
		printer.Error(err)
		return err
	}

	source, sourcePath, err := readSource(cmd, args)
	if err != nil {
		printer.Error(err)
		return err
	}

	cfg, err := resolveRenderConfig(cmd, markersFlag, dateLabelFlag)
	if err != nil {
		printer.Error(err)
		return err
	}

	title := "timeline"
	if sourcePath != "" {
		title = filepath.Base(sourcePath)
	}

	// The preview shows prose as-authored; HTML rendering is for exports.
	prose := render.ProseFunc(func(_ context.Context, body, _ string) (string, error) {
		return body, nil
	})

	entries := timeline.Parse(source)
	if runErr := tui.Run(title, entries, cfg, prose, sourcePath); runErr != nil {
		sysErr := output.NewSystemErrorWithCause("preview failed", runErr)
		printer.Error(sysErr)
		return sysErr
	}
	return nil
}

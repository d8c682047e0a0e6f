// Package main provides the entry point for the timelines CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KialHarrison/kh-timelines/internal/document"
	"github.com/KialHarrison/kh-timelines/internal/markdown"
	"github.com/KialHarrison/kh-timelines/internal/output"
)

// convertResult reports the outcome for one document. Document carries
// the rewritten text when the command is not writing in place.
type convertResult struct {
	Path      string `json:"path"`
	Converted int    `json:"converted"`
	Document  string `json:"document,omitempty"`
}

// newConvertCmd creates the convert command.
func newConvertCmd() *cobra.Command {
	var markersFlag bool
	var dateLabelFlag string
	var writeFlag bool

	cmd := &cobra.Command{
		Use:   "convert <doc.md>...",
		Short: "Replace timeline code fences in markdown documents with HTML",
		Long: "Convert markdown documents in place of their timeline blocks.\n\n" +
			"Every ```timeline fenced code block is replaced with its rendered\n" +
			"HTML. Documents without timeline blocks are reported and left\n" +
			"untouched.\n\n" +
			"Examples:\n" +
			"  timelines convert notes.md            # Rewritten document to stdout\n" +
			"  timelines convert notes.md --write    # Edit the file in place\n" +
			"  timelines convert a.md b.md --write   # Convert several documents",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, args, markersFlag, dateLabelFlag, writeFlag)
		},
	}

	cmd.Flags().BoolVar(&markersFlag, "markers", true, "Emit marker decorations")
	cmd.Flags().StringVar(&dateLabelFlag, "date-label", "", "Fallback date label for entries without a date")
	cmd.Flags().BoolVar(&writeFlag, "write", false, "Rewrite documents in place instead of printing")

	return cmd
}

// runConvert executes the convert command.
func runConvert(cmd *cobra.Command, args []string, markersFlag bool, dateLabelFlag string, writeFlag bool) error {
	printer := newPrinter(cmd)

	cfg, err := resolveRenderConfig(cmd, markersFlag, dateLabelFlag)
	if err != nil {
		printer.Error(err)
		return err
	}

	prose := markdown.NewRenderer()
	results := make([]convertResult, 0, len(args))
	total := 0

	for _, path := range args {
		data, readErr := os.ReadFile(path)
		if readErr != nil {
			userErr := output.NewUserError(fmt.Sprintf("reading %s: %v", path, readErr))
			printer.Error(userErr)
			return userErr
		}

		converted, count, convErr := document.Convert(cmd.Context(), string(data), cfg, prose, path)
		if convErr != nil {
			sysErr := output.NewSystemErrorWithCause(fmt.Sprintf("converting %s", path), convErr)
			printer.Error(sysErr)
			return sysErr
		}

		result := convertResult{Path: path, Converted: count}

		switch {
		case count == 0:
			if !printer.IsJSON() {
				printer.Warn("no timeline blocks found in %s; left unchanged", path)
			}
		case writeFlag:
			if writeErr := os.WriteFile(path, []byte(converted), 0o644); writeErr != nil {
				sysErr := output.NewSystemError(fmt.Sprintf("writing %s: %v", path, writeErr))
				printer.Error(sysErr)
				return sysErr
			}
		case printer.IsJSON():
			result.Document = converted
		default:
			printer.Print("%s", converted)
		}

		results = append(results, result)
		total += count
	}

	if printer.IsJSON() {
		return printer.WriteJSON(map[string]any{
			"total":   total,
			"results": results,
		})
	}

	if writeFlag {
		return printer.Success(map[string]any{
			"message": fmt.Sprintf("Converted %d timeline blocks in %d documents", total, len(args)),
		})
	}
	return nil
}

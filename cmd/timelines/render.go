// Package main provides the entry point for the timelines CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KialHarrison/kh-timelines/internal/markdown"
	"github.com/KialHarrison/kh-timelines/internal/output"
	"github.com/KialHarrison/kh-timelines/internal/render"
	"github.com/KialHarrison/kh-timelines/internal/timeline"
)

// newRenderCmd creates the render command.
func newRenderCmd() *cobra.Command {
	var markersFlag bool
	var dateLabelFlag string
	var basePathFlag string
	var outFlag string

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render timeline source to standalone HTML",
		Long: `Render timeline source text to a standalone HTML timeline.

Reads from the given file, or stdin when no file is given. Entry bodies
are markdown and are rendered with relative links resolved against the
source file's location (override with --base-path).

Examples:
  timelines render notes.txt                   # HTML to stdout
  timelines render notes.txt --out timeline.html
  timelines render notes.txt --markers=false   # No marker decorations
  timelines render notes.txt --date-label When # Fallback date label`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, args, markersFlag, dateLabelFlag, basePathFlag, outFlag)
		},
	}

	cmd.Flags().BoolVar(&markersFlag, "markers", true, "Emit marker decorations")
	cmd.Flags().StringVar(&dateLabelFlag, "date-label", "", "Fallback date label for entries without a date")
	cmd.Flags().StringVar(&basePathFlag, "base-path", "", "Document path for resolving relative links")
	cmd.Flags().StringVar(&outFlag, "out", "", "Output file (if omitted, writes to stdout)")

	return cmd
}

// runRender executes the render command.
func runRender(cmd *cobra.Command, args []string, markersFlag bool, dateLabelFlag, basePathFlag, outFlag string) error {
	printer := newPrinter(cmd)

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

	basePath := basePathFlag
	if basePath == "" {
		basePath = sourcePath
	}

	entries := timeline.Parse(source)
	html, err := render.RenderHTML(cmd.Context(), entries, cfg, markdown.NewRenderer(), basePath)
	if err != nil {
		sysErr := output.NewSystemErrorWithCause("rendering timeline", err)
		printer.Error(sysErr)
		return sysErr
	}

	if outFlag != "" {
		if err := os.WriteFile(outFlag, []byte(html+"\n"), 0o644); err != nil {
			sysErr := output.NewSystemError(fmt.Sprintf("writing %s: %v", outFlag, err))
			printer.Error(sysErr)
			return sysErr
		}
		return printer.Success(map[string]any{
			"message": fmt.Sprintf("Rendered %d entries to %s", len(entries), outFlag),
			"entries": len(entries),
			"path":    outFlag,
		})
	}

	if printer.IsJSON() {
		return printer.WriteJSON(map[string]any{
			"entries": len(entries),
			"html":    html,
		})
	}

	printer.Print("%s\n", html)
	return nil
}

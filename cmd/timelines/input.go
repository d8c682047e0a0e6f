// Package main provides the entry point for the timelines CLI.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/KialHarrison/kh-timelines/internal/output"
	"github.com/KialHarrison/kh-timelines/internal/render"
	"github.com/KialHarrison/kh-timelines/internal/settings"
)

// readSource returns timeline source text plus the path it came from.
// With a file argument it reads that file; with none (or "-") it reads
// stdin and returns an empty path.
func readSource(cmd *cobra.Command, args []string) (source, path string, err error) {
	if len(args) == 1 && args[0] != "-" {
		data, readErr := os.ReadFile(args[0])
		if readErr != nil {
			return "", "", output.NewUserError(fmt.Sprintf("reading %s: %v", args[0], readErr))
		}
		return string(data), args[0], nil
	}

	data, readErr := io.ReadAll(cmd.InOrStdin())
	if readErr != nil {
		return "", "", output.NewSystemError(fmt.Sprintf("reading stdin: %v", readErr))
	}
	return string(data), "", nil
}

// resolveRenderConfig builds the effective render configuration:
// persisted settings, then environment overrides, then any flags the
// user set on this invocation.
func resolveRenderConfig(cmd *cobra.Command, markersFlag bool, dateLabelFlag string) (render.Config, error) {
	resolved, err := settings.Resolve()
	if err != nil {
		return render.Config{}, output.NewUserError(err.Error())
	}

	cfg := resolved.Config()
	if cmd.Flags().Changed("markers") {
		cfg.ShowMarkers = markersFlag
	}
	if cmd.Flags().Changed("date-label") {
		cfg.DefaultDateLabel = dateLabelFlag
	}
	return cfg, nil
}

// newPrinter builds a printer wired to the command's writers.
func newPrinter(cmd *cobra.Command) *output.Printer {
	out := cmd.OutOrStdout()
	return output.NewPrinter(out, isJSONMode(cmd), output.IsTTY(out)).
		WithStderr(cmd.ErrOrStderr())
}

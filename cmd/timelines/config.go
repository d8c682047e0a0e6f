// Package main provides the entry point for the timelines CLI.
package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/KialHarrison/kh-timelines/internal/output"
	"github.com/KialHarrison/kh-timelines/internal/settings"
)

// Recognized config keys.
const (
	keyShowMarkers = "show-markers"
	keyDateLabel   = "date-label"
)

// newConfigCmd creates the config command with its subcommands.
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Read and write persisted render settings",
		Long: `Read and write the persisted render settings.

Settings live in ` + settings.Filename + ` under the timelines config
directory and apply to every render unless overridden by flags or
TIMELINES_* environment variables.

Keys:
  show-markers  Emit marker decorations (true/false, default true)
  date-label    Fallback date label for entries without a date (default "Date")`,
	}

	cmd.AddCommand(newConfigListCmd())
	cmd.AddCommand(newConfigGetCmd())
	cmd.AddCommand(newConfigSetCmd())

	return cmd
}

// newConfigListCmd creates the config list subcommand.
func newConfigListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show all settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			printer := newPrinter(cmd)

			s, err := settings.Load(settings.Path())
			if err != nil {
				userErr := output.NewUserError(err.Error())
				printer.Error(userErr)
				return userErr
			}

			if printer.IsJSON() {
				return printer.WriteJSON(map[string]any{
					keyShowMarkers: s.ShowMarkers,
					keyDateLabel:   s.DefaultDateLabel,
				})
			}
			printer.KeyValue(keyShowMarkers, strconv.FormatBool(s.ShowMarkers))
			printer.KeyValue(keyDateLabel, s.DefaultDateLabel)
			return nil
		},
	}
}

// newConfigGetCmd creates the config get subcommand.
func newConfigGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <key>",
		Short: "Show one setting",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			printer := newPrinter(cmd)

			s, err := settings.Load(settings.Path())
			if err != nil {
				userErr := output.NewUserError(err.Error())
				printer.Error(userErr)
				return userErr
			}

			var value string
			switch args[0] {
			case keyShowMarkers:
				value = strconv.FormatBool(s.ShowMarkers)
			case keyDateLabel:
				value = s.DefaultDateLabel
			default:
				userErr := output.NewUserError(fmt.Sprintf("unknown key %q (valid: %s, %s)", args[0], keyShowMarkers, keyDateLabel))
				printer.Error(userErr)
				return userErr
			}

			if printer.IsJSON() {
				return printer.WriteJSON(map[string]any{args[0]: value})
			}
			printer.Println(value)
			return nil
		},
	}
}

// newConfigSetCmd creates the config set subcommand.
func newConfigSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Change one setting",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			printer := newPrinter(cmd)

			path := settings.Path()
			if path == "" {
				sysErr := output.NewSystemError("cannot resolve a config directory")
				printer.Error(sysErr)
				return sysErr
			}

			s, err := settings.Load(path)
			if err != nil {
				userErr := output.NewUserError(err.Error())
				printer.Error(userErr)
				return userErr
			}

			key, value := args[0], args[1]
			switch key {
			case keyShowMarkers:
				parsed, parseErr := strconv.ParseBool(value)
				if parseErr != nil {
					userErr := output.NewUserError(fmt.Sprintf("%s must be true or false, got %q", keyShowMarkers, value))
					printer.Error(userErr)
					return userErr
				}
				s.ShowMarkers = parsed
			case keyDateLabel:
				s.DefaultDateLabel = value
			default:
				userErr := output.NewUserError(fmt.Sprintf("unknown key %q (valid: %s, %s)", key, keyShowMarkers, keyDateLabel))
				printer.Error(userErr)
				return userErr
			}

			if err := settings.Save(path, s); err != nil {
				sysErr := output.NewSystemErrorWithCause("saving settings", err)
				printer.Error(sysErr)
				return sysErr
			}

			return printer.Success(map[string]any{
				"message": fmt.Sprintf("Set %s to %s", key, value),
				"key":     key,
				"value":   value,
			})
		},
	}
}

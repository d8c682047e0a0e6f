// Package output provides structured output handling for the timelines CLI.
//
// Every command works for both humans and pipelines: the Printer switches
// between lipgloss-styled human output and structured JSON based on the
// --json flag, and styling drops out automatically when output is piped.
//
//	printer := output.NewPrinter(cmd.OutOrStdout(), jsonMode, output.IsTTY(cmd.OutOrStdout()))
//
//	printer.Success(map[string]any{"message": "converted 3 blocks"})
//	printer.Error(err)
//	printer.Print("%s\n", markup)
//
// # Exit codes
//
//	output.ExitSuccess     // 0: success
//	output.ExitUserError   // 1: user error (bad args, unreadable input)
//	output.ExitSystemError // 2: system error (I/O failure, prose render failure)
//
// Errors created with NewUserError / NewSystemError carry their exit code
// through cobra back to main, and render as {"error": ..., "code": N} in
// JSON mode.
package output

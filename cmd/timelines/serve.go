// Package main provides the entry point for the timelines CLI.
package main

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	timelinesmcp "github.com/KialHarrison/kh-timelines/internal/mcp"
	"github.com/KialHarrison/kh-timelines/internal/output"
	"github.com/KialHarrison/kh-timelines/internal/settings"
)

// newServeCmd creates the serve command for running as an MCP server.
func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run as MCP server (stdio transport)",
		Long: `Run timelines as a Model Context Protocol (MCP) server over stdio.

This exposes the timeline pipeline as MCP tools that any MCP-capable
agent environment can use.

Configure in your agent's MCP settings:
  {
    "mcpServers": {
      "timelines": {
        "command": "timelines",
        "args": ["serve"]
      }
    }
  }

Available tools: parse, render, convert`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			resolved, err := settings.Resolve()
			if err != nil {
				return output.NewUserError(err.Error())
			}
			server := timelinesmcp.NewServer(buildVersion(), resolved.Config())
			return server.Run(cmd.Context(), &mcp.StdioTransport{})
		},
	}
}

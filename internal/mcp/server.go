// Package mcp provides a Model Context Protocol server for timelines.
// It exposes the parse/render/convert pipeline as MCP tools that any
// MCP-capable agent can use.
package mcp

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/KialHarrison/kh-timelines/internal/markdown"
	"github.com/KialHarrison/kh-timelines/internal/render"
)

// NewServer creates an MCP server with all timeline tools registered.
// defaults supplies the render options used when a tool call does not
// override them.
func NewServer(version string, defaults render.Config) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "timelines",
		Version: version,
	}, nil)
	registerTools(server, defaults, markdown.NewRenderer())
	return server
}

// boolPtr returns a pointer to a bool value.
func boolPtr(b bool) *bool {
	return &b
}

// pureAnnotations marks tools that transform their input and touch
// nothing else.
func pureAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		ReadOnlyHint:   true,
		IdempotentHint: true,
		OpenWorldHint:  boolPtr(false),
	}
}

// registerTools adds all timeline tools to the server.
func registerTools(server *mcp.Server, defaults render.Config, prose render.ProseRenderer) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "parse",
		Description: "Parse timeline source text into structured entries (date, title, body). Parsing is total: malformed blocks fall back to body-only entries, never errors.",
		Annotations: pureAnnotations(),
	}, handleParse())

	mcp.AddTool(server, &mcp.Tool{
		Name:        "render",
		Description: "Render timeline source text into standalone HTML markup. Accepts optional marker and date-label overrides.",
		Annotations: pureAnnotations(),
	}, handleRender(defaults, prose))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "convert",
		Description: "Replace every ```timeline code fence in a markdown document with rendered HTML. Returns the rewritten document and the number of blocks converted.",
		Annotations: pureAnnotations(),
	}, handleConvert(defaults, prose))
}

package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/KialHarrison/kh-timelines/internal/document"
	"github.com/KialHarrison/kh-timelines/internal/render"
	"github.com/KialHarrison/kh-timelines/internal/timeline"
)

// --- Shared types ---

// EntryOut is one parsed timeline entry for tool output.
type EntryOut struct {
	Date  string `json:"date,omitempty"  jsonschema:"raw date label, if the entry has one"`
	Title string `json:"title,omitempty" jsonschema:"entry title, if the entry has one"`
	Body  string `json:"body,omitempty"  jsonschema:"prose body in markdown"`
}

// toEntryOuts converts parsed entries to tool output form.
func toEntryOuts(entries []timeline.Entry) []EntryOut {
	result := make([]EntryOut, 0, len(entries))
	for _, entry := range entries {
		result = append(result, EntryOut{Date: entry.Date, Title: entry.Title, Body: entry.Body})
	}
	return result
}

// overrideConfig applies optional per-call overrides to the defaults.
func overrideConfig(defaults render.Config, showMarkers *bool, dateLabel string) render.Config {
	cfg := defaults
	if showMarkers != nil {
		cfg.ShowMarkers = *showMarkers
	}
	if dateLabel != "" {
		cfg.DefaultDateLabel = dateLabel
	}
	return cfg
}

// --- Parse tool ---

// ParseInput is the input for the parse tool.
type ParseInput struct {
	Source string `json:"source" jsonschema:"timeline source text (blank-line separated blocks)"`
}

// ParseOutput is the output for the parse tool.
type ParseOutput struct {
	Count   int        `json:"count"             jsonschema:"number of entries parsed"`
	Entries []EntryOut `json:"entries,omitempty" jsonschema:"parsed entries in source order"`
}

func handleParse() mcp.ToolHandlerFor[ParseInput, ParseOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, in ParseInput) (*mcp.CallToolResult, ParseOutput, error) {
		entries := timeline.Parse(in.Source)
		return nil, ParseOutput{
			Count:   len(entries),
			Entries: toEntryOuts(entries),
		}, nil
	}
}

// --- Render tool ---

// RenderInput is the input for the render tool.
type RenderInput struct {
	Source      string `json:"source"                 jsonschema:"timeline source text"`
	ShowMarkers *bool  `json:"show_markers,omitempty" jsonschema:"override the configured marker visibility"`
	DateLabel   string `json:"date_label,omitempty"   jsonschema:"override the configured fallback date label"`
	BasePath    string `json:"base_path,omitempty"    jsonschema:"document path used to resolve relative links"`
}

// RenderOutput is the output for the render tool.
type RenderOutput struct {
	HTML    string `json:"html"    jsonschema:"standalone timeline markup"`
	Entries int    `json:"entries" jsonschema:"number of entries rendered"`
}

func handleRender(defaults render.Config, prose render.ProseRenderer) mcp.ToolHandlerFor[RenderInput, RenderOutput] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in RenderInput) (*mcp.CallToolResult, RenderOutput, error) {
		entries := timeline.Parse(in.Source)
		cfg := overrideConfig(defaults, in.ShowMarkers, in.DateLabel)

		html, err := render.RenderHTML(ctx, entries, cfg, prose, in.BasePath)
		if err != nil {
			return nil, RenderOutput{}, fmt.Errorf("rendering timeline: %w", err)
		}
		return nil, RenderOutput{HTML: html, Entries: len(entries)}, nil
	}
}

// --- Convert tool ---

// ConvertInput is the input for the convert tool.
type ConvertInput struct {
	Document    string `json:"document"               jsonschema:"full markdown document text"`
	ShowMarkers *bool  `json:"show_markers,omitempty" jsonschema:"override the configured marker visibility"`
	DateLabel   string `json:"date_label,omitempty"   jsonschema:"override the configured fallback date label"`
	BasePath    string `json:"base_path,omitempty"    jsonschema:"document path used to resolve relative links"`
}

// ConvertOutput is the output for the convert tool.
type ConvertOutput struct {
	Document  string `json:"document"          jsonschema:"rewritten document"`
	Converted int    `json:"converted"         jsonschema:"number of timeline blocks converted"`
	Message   string `json:"message,omitempty" jsonschema:"informational note, set when no blocks were found"`
}

func handleConvert(defaults render.Config, prose render.ProseRenderer) mcp.ToolHandlerFor[ConvertInput, ConvertOutput] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in ConvertInput) (*mcp.CallToolResult, ConvertOutput, error) {
		cfg := overrideConfig(defaults, in.ShowMarkers, in.DateLabel)

		doc, count, err := document.Convert(ctx, in.Document, cfg, prose, in.BasePath)
		if err != nil {
			return nil, ConvertOutput{}, fmt.Errorf("converting document: %w", err)
		}

		out := ConvertOutput{Document: doc, Converted: count}
		if count == 0 {
			out.Message = "no timeline blocks found; document unchanged"
		}
		return nil, out, nil
	}
}

package mcp

import (
	"context"
	"strings"
	"testing"

	"github.com/KialHarrison/kh-timelines/internal/render"
)

var testProse = render.ProseFunc(func(_ context.Context, source, _ string) (string, error) {
	return "<p>" + source + "</p>", nil
})

var testDefaults = render.Config{ShowMarkers: true, DefaultDateLabel: "Date"}

func TestHandleParse(t *testing.T) {
	handler := handleParse()

	_, out, err := handler(context.Background(), nil, ParseInput{
		Source: "2024 | Launch\nshipped it\n\nReview",
	})
	if err != nil {
		t.Fatalf("parse handler error = %v", err)
	}
	if out.Count != 2 {
		t.Fatalf("Count = %d, want 2", out.Count)
	}
	first := out.Entries[0]
	if first.Date != "2024" || first.Title != "Launch" || first.Body != "shipped it" {
		t.Errorf("first entry = %+v", first)
	}
	if out.Entries[1].Title != "Review" {
		t.Errorf("second entry = %+v", out.Entries[1])
	}
}

func TestHandleParse_EmptySource(t *testing.T) {
	handler := handleParse()
	_, out, err := handler(context.Background(), nil, ParseInput{Source: "   \n\n  "})
	if err != nil {
		t.Fatalf("parse handler error = %v", err)
	}
	if out.Count != 0 || len(out.Entries) != 0 {
		t.Errorf("output = %+v, want zero entries", out)
	}
}

func TestHandleRender(t *testing.T) {
	handler := handleRender(testDefaults, testProse)

	_, out, err := handler(context.Background(), nil, RenderInput{
		Source: "2024 | Launch\nshipped it",
	})
	if err != nil {
		t.Fatalf("render handler error = %v", err)
	}
	if out.Entries != 1 {
		t.Errorf("Entries = %d, want 1", out.Entries)
	}
	for _, want := range []string{"timeline-date", "2024", "timeline-title", "Launch", "<p>shipped it</p>"} {
		if !strings.Contains(out.HTML, want) {
			t.Errorf("HTML missing %q:\n%s", want, out.HTML)
		}
	}
}

func TestHandleRender_Overrides(t *testing.T) {
	handler := handleRender(testDefaults, testProse)
	off := false

	_, out, err := handler(context.Background(), nil, RenderInput{
		Source:      "Launch",
		ShowMarkers: &off,
		DateLabel:   "When",
	})
	if err != nil {
		t.Fatalf("render handler error = %v", err)
	}
	if strings.Contains(out.HTML, "marker") {
		t.Errorf("HTML contains marker segments despite override:\n%s", out.HTML)
	}
	if !strings.Contains(out.HTML, "When") {
		t.Errorf("HTML missing overridden date label:\n%s", out.HTML)
	}
}

func TestHandleConvert(t *testing.T) {
	handler := handleConvert(testDefaults, testProse)

	_, out, err := handler(context.Background(), nil, ConvertInput{
		Document: "# Doc\n\n```timeline\n2024 | Launch\n```\n",
	})
	if err != nil {
		t.Fatalf("convert handler error = %v", err)
	}
	if out.Converted != 1 {
		t.Errorf("Converted = %d, want 1", out.Converted)
	}
	if out.Message != "" {
		t.Errorf("Message = %q, want empty on success", out.Message)
	}
	if strings.Contains(out.Document, "```timeline") {
		t.Errorf("fence survived conversion:\n%s", out.Document)
	}
}

func TestHandleConvert_NoBlocks(t *testing.T) {
	handler := handleConvert(testDefaults, testProse)
	doc := "nothing to do here\n"

	_, out, err := handler(context.Background(), nil, ConvertInput{Document: doc})
	if err != nil {
		t.Fatalf("convert handler error = %v", err)
	}
	if out.Converted != 0 {
		t.Errorf("Converted = %d, want 0", out.Converted)
	}
	if out.Document != doc {
		t.Errorf("document changed despite zero blocks")
	}
	if out.Message == "" {
		t.Error("Message empty; zero blocks should be reported explicitly")
	}
}

func TestNewServer(t *testing.T) {
	server := NewServer("test", testDefaults)
	if server == nil {
		t.Fatal("NewServer() returned nil")
	}
}

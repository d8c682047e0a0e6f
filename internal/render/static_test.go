package render

import (
	"context"
	"errors"
	"html"
	"strings"
	"testing"

	"github.com/KialHarrison/kh-timelines/internal/timeline"
)

// passthroughProse returns the body source unchanged.
var passthroughProse = ProseFunc(func(_ context.Context, source, _ string) (string, error) {
	return source, nil
})

func TestRenderHTML_Empty(t *testing.T) {
	out, err := RenderHTML(context.Background(), nil, Config{ShowMarkers: true}, passthroughProse, "")
	if err != nil {
		t.Fatalf("RenderHTML() error = %v", err)
	}
	if !strings.Contains(out, ClassEmpty) || !strings.Contains(out, EmptyMessage) {
		t.Errorf("output missing empty indicator: %q", out)
	}
	if strings.Contains(out, ClassItem) || strings.Contains(out, ClassStartMarker) {
		t.Errorf("empty output must carry no items or markers: %q", out)
	}
}

func TestRenderHTML_Structure(t *testing.T) {
	entries := []timeline.Entry{
		{Date: "2024", Title: "Launch", Body: "shipped it"},
		{Title: "Review"},
	}
	out, err := RenderHTML(context.Background(), entries, Config{ShowMarkers: true, DefaultDateLabel: "Date"}, passthroughProse, "")
	if err != nil {
		t.Fatalf("RenderHTML() error = %v", err)
	}

	for _, want := range []string{
		`<span class="timeline-date">2024</span>`,
		`<span class="timeline-title">Launch</span>`,
		`<span class="timeline-date">Date</span>`,
		`<span class="timeline-title">Review</span>`,
		`<div class="timeline-body">`,
		"shipped it",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	if got := strings.Count(out, ClassStartMarker); got != 1 {
		t.Errorf("start marker segments = %d, want 1", got)
	}
	if got := strings.Count(out, `class="`+ClassMarker+`"`); got != 2 {
		t.Errorf("item marker segments = %d, want 2", got)
	}
	if got := strings.Count(out, `class="`+ClassItem+`"`); got != 2 {
		t.Errorf("item segments = %d, want 2", got)
	}
}

func TestRenderHTML_MarkerToggle(t *testing.T) {
	entries := []timeline.Entry{{Title: "a"}, {Title: "b"}}
	out, err := RenderHTML(context.Background(), entries, Config{ShowMarkers: false}, passthroughProse, "")
	if err != nil {
		t.Fatalf("RenderHTML() error = %v", err)
	}
	if strings.Contains(out, "marker") {
		t.Errorf("output contains marker segments with ShowMarkers off:\n%s", out)
	}
}

func TestRenderHTML_EscapesEntryText(t *testing.T) {
	title := `<b>"x" & 'y'</b>`
	entries := []timeline.Entry{{Date: "a<b", Title: title}}
	out, err := RenderHTML(context.Background(), entries, Config{}, passthroughProse, "")
	if err != nil {
		t.Fatalf("RenderHTML() error = %v", err)
	}

	if strings.Contains(out, "<b>") {
		t.Errorf("raw markup from entry title leaked into output:\n%s", out)
	}

	// The escaped title must decode back to the authored text exactly.
	start := strings.Index(out, `<span class="timeline-title">`) + len(`<span class="timeline-title">`)
	end := strings.Index(out[start:], "</span>")
	if end < 0 {
		t.Fatalf("no title span in output:\n%s", out)
	}
	if got := html.UnescapeString(out[start : start+end]); got != title {
		t.Errorf("decoded title = %q, want %q", got, title)
	}
}

func TestRenderHTML_EmptyRenderedBodySuppressed(t *testing.T) {
	blank := ProseFunc(func(context.Context, string, string) (string, error) {
		return "  \n  ", nil
	})
	entries := []timeline.Entry{{Title: "a", Body: "something"}}
	out, err := RenderHTML(context.Background(), entries, Config{}, blank, "")
	if err != nil {
		t.Fatalf("RenderHTML() error = %v", err)
	}
	if strings.Contains(out, ClassBody) {
		t.Errorf("body block present despite empty rendered prose:\n%s", out)
	}
}

func TestRenderHTML_ProseFailureAborts(t *testing.T) {
	boom := errors.New("render failed")
	failing := ProseFunc(func(context.Context, string, string) (string, error) {
		return "", boom
	})
	entries := []timeline.Entry{{Title: "a", Body: "text"}}
	out, err := RenderHTML(context.Background(), entries, Config{}, failing, "")
	if !errors.Is(err, boom) {
		t.Fatalf("RenderHTML() error = %v, want prose failure", err)
	}
	if out != "" {
		t.Errorf("RenderHTML() returned partial output %q alongside an error", out)
	}
}

// TestRenderParity checks that both renderers agree on which sections
// exist for the same input.
func TestRenderParity(t *testing.T) {
	entries := timeline.Parse("2024 | Launch\nshipped it\n\nplain prose block\n\n- list\n- only")
	cfg := Config{ShowMarkers: true, DefaultDateLabel: "Date"}
	ctx := context.Background()

	tree, err := RenderTree(ctx, entries, cfg, passthroughProse, "")
	if err != nil {
		t.Fatalf("RenderTree() error = %v", err)
	}
	out, err := RenderHTML(ctx, entries, cfg, passthroughProse, "")
	if err != nil {
		t.Fatalf("RenderHTML() error = %v", err)
	}

	for _, class := range []string{
		ClassStartMarker, ClassItem, ClassMarker, ClassContent,
		ClassMeta, ClassDate, ClassTitle, ClassBody,
	} {
		nodes := len(tree.FindAll(class))
		segments := strings.Count(out, `class="`+class+`"`)
		if nodes != segments {
			t.Errorf("%s: %d nodes vs %d markup segments", class, nodes, segments)
		}
	}
}

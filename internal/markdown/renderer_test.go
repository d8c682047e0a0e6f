package markdown

import (
	"context"
	"strings"
	"testing"
)

func TestRenderProse_Basic(t *testing.T) {
	r := NewRenderer()
	out, err := r.RenderProse(context.Background(), "some **bold** text", "")
	if err != nil {
		t.Fatalf("RenderProse() error = %v", err)
	}
	if !strings.Contains(out, "<strong>bold</strong>") {
		t.Errorf("output missing rendered emphasis: %q", out)
	}
}

func TestRenderProse_GFMStrikethrough(t *testing.T) {
	r := NewRenderer()
	out, err := r.RenderProse(context.Background(), "~~gone~~", "")
	if err != nil {
		t.Fatalf("RenderProse() error = %v", err)
	}
	if !strings.Contains(out, "<del>gone</del>") {
		t.Errorf("GFM strikethrough not rendered: %q", out)
	}
}

func TestRenderProse_RelativeLinks(t *testing.T) {
	r := NewRenderer()
	tests := []struct {
		name     string
		source   string
		basePath string
		want     string
	}{
		{
			name:     "relative link joins base dir",
			source:   "[x](img/pic.png)",
			basePath: "notes/2024/log.md",
			want:     `href="notes/2024/img/pic.png"`,
		},
		{
			name:     "relative image joins base dir",
			source:   "![x](pic.png)",
			basePath: "notes/log.md",
			want:     `src="notes/pic.png"`,
		},
		{
			name:     "absolute url untouched",
			source:   "[x](https://example.com/a)",
			basePath: "notes/log.md",
			want:     `href="https://example.com/a"`,
		},
		{
			name:     "root-relative untouched",
			source:   "[x](/top.md)",
			basePath: "notes/log.md",
			want:     `href="/top.md"`,
		},
		{
			name:     "fragment untouched",
			source:   "[x](#section)",
			basePath: "notes/log.md",
			want:     `href="#section"`,
		},
		{
			name:     "no base path leaves links alone",
			source:   "[x](pic.png)",
			basePath: "",
			want:     `href="pic.png"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := r.RenderProse(context.Background(), tt.source, tt.basePath)
			if err != nil {
				t.Fatalf("RenderProse() error = %v", err)
			}
			if !strings.Contains(out, tt.want) {
				t.Errorf("output = %q, want it to contain %q", out, tt.want)
			}
		})
	}
}

func TestRenderProse_CancelledContext(t *testing.T) {
	r := NewRenderer()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := r.RenderProse(ctx, "text", ""); err == nil {
		t.Error("RenderProse() with cancelled context returned nil error")
	}
}

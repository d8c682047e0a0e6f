package render

import (
	"context"
	"fmt"
	"strings"

	"github.com/KialHarrison/kh-timelines/internal/timeline"
)

// escaper rewrites the five reserved markup characters. Ampersand is
// first so already-escaped sequences are not double-mangled the other
// way around.
var escaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

// escapeText makes entry-sourced text safe to embed in markup.
func escapeText(text string) string {
	return escaper.Replace(text)
}

// RenderHTML renders entries into a self-contained markup string that
// mirrors the node tree produced by RenderTree section for section.
// Dates and titles are escaped before embedding; body markup comes from
// the ProseRenderer and is embedded as produced, trimmed. A prose
// failure aborts the render with no partial output.
func RenderHTML(ctx context.Context, entries []timeline.Entry, cfg Config, prose ProseRenderer, basePath string) (string, error) {
	plan := BuildPlan(entries, cfg)

	var b strings.Builder
	b.WriteString(`<div class="` + ClassRoot + `">` + "\n")

	if plan.Empty {
		fmt.Fprintf(&b, `<div class="%s">%s</div>`+"\n", ClassEmpty, escapeText(EmptyMessage))
		b.WriteString(`</div>`)
		return b.String(), nil
	}

	if plan.StartMarker {
		writeMarker(&b, ClassStartMarker)
	}

	for _, item := range plan.Items {
		fmt.Fprintf(&b, `<div class="%s">`+"\n", ClassItem)
		if item.Marker {
			writeMarker(&b, ClassMarker)
		}
		fmt.Fprintf(&b, `<div class="%s">`+"\n", ClassContent)

		if item.ShowMeta {
			fmt.Fprintf(&b, `<div class="%s">`, ClassMeta)
			if item.Date != "" {
				fmt.Fprintf(&b, `<span class="%s">%s</span>`, ClassDate, escapeText(item.Date))
			}
			if item.Title != "" {
				fmt.Fprintf(&b, `<span class="%s">%s</span>`, ClassTitle, escapeText(item.Title))
			}
			b.WriteString(`</div>` + "\n")
		}

		if item.Body != "" {
			rendered, err := prose.RenderProse(ctx, item.Body, basePath)
			if err != nil {
				return "", fmt.Errorf("rendering entry body: %w", err)
			}
			if rendered = strings.TrimSpace(rendered); rendered != "" {
				fmt.Fprintf(&b, `<div class="%s">`+"\n%s\n</div>\n", ClassBody, rendered)
			}
		}

		b.WriteString(`</div>` + "\n" + `</div>` + "\n")
	}

	b.WriteString(`</div>`)
	return b.String(), nil
}

// writeMarker emits a decorative, accessibility-hidden marker element.
func writeMarker(b *strings.Builder, class string) {
	fmt.Fprintf(b, `<div class="%s" aria-hidden="true"></div>`+"\n", class)
}

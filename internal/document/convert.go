// Package document rewrites markdown documents, replacing designated
// timeline code fences with their rendered static markup.
package document

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/KialHarrison/kh-timelines/internal/render"
	"github.com/KialHarrison/kh-timelines/internal/timeline"
)

// fencePattern matches a ```timeline fenced code block. The capture
// group is the timeline source between the fences.
var fencePattern = regexp.MustCompile("(?ms)^```timeline[ \t]*\r?\n(.*?)^```[ \t]*$")

// Convert replaces every timeline code fence in doc with its static
// rendering and returns the rewritten document plus the number of blocks
// converted. Zero blocks is not an error: the document comes back
// unchanged with a zero count so callers can report it. basePath is the
// document's own path, used to resolve relative links in entry prose.
func Convert(ctx context.Context, doc string, cfg render.Config, prose render.ProseRenderer, basePath string) (string, int, error) {
	matches := fencePattern.FindAllStringSubmatchIndex(doc, -1)
	if len(matches) == 0 {
		return doc, 0, nil
	}

	var b strings.Builder
	last := 0
	for i, m := range matches {
		source := doc[m[2]:m[3]]
		entries := timeline.Parse(source)
		rendered, err := render.RenderHTML(ctx, entries, cfg, prose, basePath)
		if err != nil {
			return "", 0, fmt.Errorf("converting timeline block %d: %w", i+1, err)
		}
		b.WriteString(doc[last:m[0]])
		b.WriteString(rendered)
		last = m[1]
	}
	b.WriteString(doc[last:])

	return b.String(), len(matches), nil
}

// Count reports how many timeline code fences doc contains without
// converting anything.
func Count(doc string) int {
	return len(fencePattern.FindAllStringIndex(doc, -1))
}

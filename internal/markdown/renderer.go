// Package markdown implements the prose-rendering collaborator on top of
// the goldmark engine. It satisfies render.ProseRenderer, converting
// entry bodies (Markdown) into HTML with GFM extensions enabled and
// relative links resolved against the enclosing document's path.
package markdown

import (
	"bytes"
	"context"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/util"
)

// Renderer converts Markdown prose to HTML. It is stateless apart from
// the configured engine, so one instance can serve any number of
// sequential render calls.
type Renderer struct {
	engine goldmark.Markdown
}

// NewRenderer constructs a renderer with GFM, autolinking, and task
// lists enabled. Raw HTML in prose is passed through: timeline sources
// are authored by the document owner, not untrusted input.
func NewRenderer() *Renderer {
	return &Renderer{
		engine: goldmark.New(
			goldmark.WithExtensions(
				extension.GFM,
				extension.Linkify,
				extension.TaskList,
			),
			goldmark.WithParserOptions(
				parser.WithAutoHeadingID(),
				parser.WithASTTransformers(
					util.Prioritized(&linkResolver{}, 100),
				),
			),
			goldmark.WithRendererOptions(
				html.WithUnsafe(),
			),
		),
	}
}

// RenderProse satisfies render.ProseRenderer. basePath is the path of
// the enclosing document; relative link and image destinations in the
// prose are resolved against its directory.
func (r *Renderer) RenderProse(ctx context.Context, source, basePath string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	pctx := parser.NewContext()
	pctx.Set(basePathKey, basePath)

	var buf bytes.Buffer
	if err := r.engine.Convert([]byte(source), &buf, parser.WithContext(pctx)); err != nil {
		return "", fmt.Errorf("markdown convert: %w", err)
	}
	return buf.String(), nil
}

package markdown

import (
	"net/url"
	"path"
	"strings"

	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
)

// basePathKey carries the enclosing document path through the parser
// context into the AST transform.
var basePathKey = parser.NewContextKey()

// linkResolver rewrites relative link and image destinations so they
// resolve from the enclosing document's directory instead of wherever
// the rendered output ends up.
type linkResolver struct{}

// Transform implements parser.ASTTransformer.
func (linkResolver) Transform(doc *ast.Document, _ text.Reader, pc parser.Context) {
	base, _ := pc.Get(basePathKey).(string)
	if base == "" {
		return
	}
	dir := path.Dir(base)
	if dir == "." {
		return
	}

	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *ast.Link:
			node.Destination = resolve(node.Destination, dir)
		case *ast.Image:
			node.Destination = resolve(node.Destination, dir)
		}
		return ast.WalkContinue, nil
	})
}

// resolve joins a relative destination onto dir. Absolute URLs,
// root-relative paths, and fragment references are left alone.
func resolve(dest []byte, dir string) []byte {
	s := string(dest)
	if s == "" || strings.HasPrefix(s, "/") || strings.HasPrefix(s, "#") {
		return dest
	}
	if u, err := url.Parse(s); err != nil || u.IsAbs() {
		return dest
	}
	return []byte(path.Join(dir, s))
}

package render

import (
	"context"
	"fmt"

	"github.com/KialHarrison/kh-timelines/internal/timeline"
)

// RenderTree renders entries into a labeled node tree for interactive
// hosts. Entries are rendered sequentially; the first prose failure
// aborts the render and no partial tree is returned.
func RenderTree(ctx context.Context, entries []timeline.Entry, cfg Config, prose ProseRenderer, basePath string) (*Node, error) {
	plan := BuildPlan(entries, cfg)
	root := newNode(ClassRoot)

	if plan.Empty {
		root.appendChild(ClassEmpty).Text = EmptyMessage
		return root, nil
	}

	if plan.StartMarker {
		root.appendChild(ClassStartMarker).AriaHidden = true
	}

	for _, item := range plan.Items {
		node := root.appendChild(ClassItem)
		if item.Marker {
			node.appendChild(ClassMarker).AriaHidden = true
		}
		content := node.appendChild(ClassContent)

		if item.ShowMeta {
			meta := content.appendChild(ClassMeta)
			if item.Date != "" {
				meta.appendChild(ClassDate).Text = item.Date
			}
			if item.Title != "" {
				meta.appendChild(ClassTitle).Text = item.Title
			}
		}

		if item.Body != "" {
			rendered, err := prose.RenderProse(ctx, item.Body, basePath)
			if err != nil {
				return nil, fmt.Errorf("rendering entry body: %w", err)
			}
			content.appendChild(ClassBody).Raw = rendered
		}
	}

	return root, nil
}

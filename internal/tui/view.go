package tui

import (
	"strings"

	"github.com/KialHarrison/kh-timelines/internal/render"
)

// viewNode flattens a rendered timeline tree into a styled terminal
// string. It walks the same node vocabulary both renderers emit, so the
// preview shows exactly the sections an export would contain.
func viewNode(root *render.Node) string {
	var lines []string

	for _, child := range root.Children {
		switch child.Class {
		case render.ClassEmpty:
			lines = append(lines, styleEmpty.Render(child.Text))
		case render.ClassStartMarker:
			lines = append(lines, styleMarker.Render("│"))
		case render.ClassItem:
			lines = append(lines, viewItem(child)...)
		}
	}

	return strings.Join(lines, "\n")
}

// viewItem renders one timeline item as indented lines.
func viewItem(item *render.Node) []string {
	var lines []string

	marker := item.Find(render.ClassMarker) != nil
	prefix := "  "
	if marker {
		prefix = styleMarker.Render("● ")
	}

	if meta := item.Find(render.ClassMeta); meta != nil {
		var parts []string
		if date := meta.Find(render.ClassDate); date != nil {
			parts = append(parts, styleDate.Render(date.Text))
		}
		if title := meta.Find(render.ClassTitle); title != nil {
			parts = append(parts, styleTitle.Render(title.Text))
		}
		lines = append(lines, prefix+strings.Join(parts, "  "))
	} else if marker {
		lines = append(lines, strings.TrimRight(prefix, " "))
	}

	if body := item.Find(render.ClassBody); body != nil {
		for _, line := range strings.Split(strings.TrimRight(body.Raw, "\n"), "\n") {
			lines = append(lines, "  "+styleBody.Render(line))
		}
	}

	lines = append(lines, "")
	return lines
}

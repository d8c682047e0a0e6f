package render

import (
	"strings"

	"github.com/KialHarrison/kh-timelines/internal/timeline"
)

// Plan is the renderer-independent decomposition of one render call:
// exactly which sections each adapter must emit, in order.
type Plan struct {
	// Empty is set when there are no entries; adapters emit the single
	// empty indicator and nothing else.
	Empty bool

	// StartMarker requests one leading marker before the first item.
	StartMarker bool

	Items []ItemPlan
}

// ItemPlan describes the sections of a single timeline item.
type ItemPlan struct {
	// Marker requests the per-item marker decoration.
	Marker bool

	// Date and Title are the resolved display values; empty means the
	// corresponding span is omitted. ShowMeta is false when neither
	// resolved, in which case the meta block is omitted entirely.
	Date     string
	Title    string
	ShowMeta bool

	// Body is the prose source to delegate to the ProseRenderer; empty
	// means the body block is omitted.
	Body string
}

// BuildPlan applies the shared conditional-inclusion rules to an entry
// sequence. The displayed date is the entry's own date when present,
// else the trimmed DefaultDateLabel when non-empty, else nothing.
func BuildPlan(entries []timeline.Entry, cfg Config) Plan {
	if len(entries) == 0 {
		return Plan{Empty: true}
	}

	plan := Plan{
		StartMarker: cfg.ShowMarkers,
		Items:       make([]ItemPlan, 0, len(entries)),
	}

	fallback := strings.TrimSpace(cfg.DefaultDateLabel)
	for _, entry := range entries {
		item := ItemPlan{
			Marker: cfg.ShowMarkers,
			Date:   entry.Date,
			Title:  entry.Title,
		}
		if item.Date == "" {
			item.Date = fallback
		}
		item.ShowMeta = item.Date != "" || item.Title != ""
		if entry.HasBody() {
			item.Body = entry.Body
		}
		plan.Items = append(plan.Items, item)
	}
	return plan
}

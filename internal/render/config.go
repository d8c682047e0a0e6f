package render

import "context"

// Config holds the recognized render options. It is supplied per render
// call and never mutated by the renderers.
type Config struct {
	// ShowMarkers controls the decorative start and per-item markers.
	ShowMarkers bool

	// DefaultDateLabel is the fallback date text shown when an entry has
	// no date of its own. Trimmed-empty means no fallback.
	DefaultDateLabel string
}

// EmptyMessage is the user-facing text emitted when a timeline has no entries.
const EmptyMessage = "No timeline entries found."

// Class labels shared by both output surfaces.
const (
	ClassRoot        = "timeline"
	ClassEmpty       = "timeline-empty"
	ClassStartMarker = "timeline-start-marker"
	ClassItem        = "timeline-item"
	ClassMarker      = "timeline-marker"
	ClassContent     = "timeline-content"
	ClassMeta        = "timeline-meta"
	ClassDate        = "timeline-date"
	ClassTitle       = "timeline-title"
	ClassBody        = "timeline-body"
)

// ProseRenderer renders inline markup text (entry bodies) to output
// markup. basePath identifies the enclosing document so relative links
// can be resolved. Implementations must treat separate calls as
// independent; the renderers never issue two calls concurrently within
// one render.
type ProseRenderer interface {
	RenderProse(ctx context.Context, source, basePath string) (string, error)
}

// ProseFunc adapts a function to the ProseRenderer interface.
type ProseFunc func(ctx context.Context, source, basePath string) (string, error)

// RenderProse calls f.
func (f ProseFunc) RenderProse(ctx context.Context, source, basePath string) (string, error) {
	return f(ctx, source, basePath)
}

// Package render turns parsed timeline entries into output.
//
// Two renderers share one decomposition. BuildPlan reduces an entry
// sequence plus a Config to the exact set of semantic sections to emit
// (markers, meta, body), and the two adapters map that plan onto their
// concrete representations:
//
//   - RenderTree produces a tree of labeled Nodes for interactive hosts.
//   - RenderHTML produces a standalone markup string for export.
//
// Keeping the conditional-inclusion rules in one place is what keeps the
// two outputs structurally identical; the adapters only differ in how
// text is escaped and how prose is injected.
//
// Prose rendering is delegated to a ProseRenderer. Entries are rendered
// strictly in order, one at a time, and a prose failure aborts the whole
// render with the error propagated to the caller.
//
// # Output vocabulary
//
// Both outputs use the same class labels:
//
//	timeline, timeline-empty, timeline-start-marker, timeline-item,
//	timeline-marker, timeline-content, timeline-meta, timeline-date,
//	timeline-title, timeline-body
//
// Marker elements are decorative and carry aria-hidden.
package render

// Package canvas implements the viewport and node-position coordination core
// of the corkboard diagramming surface.
//
// The package has two cooperating components:
//
//   - [Viewport]: tracks the visible canvas size, the zoom level, and a flat
//     list of positioned rectangles. It computes the content bounding box,
//     whether the scaled content overflows the viewport, the compensating
//     scroll offset, and the subset of rectangles intersecting the visible
//     window.
//   - [Coordinator]: owns the keyed map of node positions and the drag
//     life-cycle. Every structural mutation converts positions into
//     rectangles and republishes them into the Viewport, so overflow and
//     visibility always reflect the current node set.
//
// # Coordinate Spaces
//
// Node positions and element rectangles live in content space: the unscaled
// coordinate system independent of zoom. Negative coordinates are valid and
// common (nodes placed left of or above the canvas origin). The viewport
// scales content space by the zoom factor and compensates for negative-origin
// content with a non-negative scroll offset.
//
// # Totality
//
// Every operation in this package is total: there are no error returns and no
// panics for numeric edge cases. Empty element sets, zero-size canvases, and
// out-of-range zoom inputs all degrade to documented defaults. This keeps the
// render loop of the consuming UI layer exception-free.
//
// # Concurrency
//
// Viewport and Coordinator are single-owner mutable state and are not safe
// for concurrent use. Callers that multiplex multiple event sources (for
// example an HTTP surface) must serialize access behind a single mutex or
// actor loop; none of the bounds arithmetic is safely interleavable.
package canvas

package canvas

// =============================================================================
// Geometry Types
// =============================================================================

// Size is a width/height pair in pixels (viewport) or content units (node
// footprints).
type Size struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Point is a position in content space.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Element is an axis-aligned rectangle in content space. X,Y is the top-left
// corner before zoom is applied. Elements are ephemeral: the Coordinator
// derives them from node positions on every mutation and never stores them
// independently.
type Element struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Intersects reports whether e and o overlap. Touching edges count as an
// intersection, so an element sitting exactly on the window border is still
// considered visible.
func (e Element) Intersects(o Element) bool {
	return !(e.X+e.Width < o.X ||
		e.X > o.X+o.Width ||
		e.Y+e.Height < o.Y ||
		e.Y > o.Y+o.Height)
}

// =============================================================================
// Snapshots
// =============================================================================

// OverflowResult is the immutable snapshot returned by every mutating
// Viewport operation. Scroll components are always >= 0, and both are zero
// whenever Overflow is false.
type OverflowResult struct {
	Overflow bool    `json:"overflow"`
	Scroll   Point   `json:"scroll"`
	Zoom     float64 `json:"zoom"`
}

// =============================================================================
// Node Positions
// =============================================================================

// NodePosition is one entry in the Coordinator's position map.
type NodePosition struct {
	ID string  `json:"id"`
	X  float64 `json:"x"`
	Y  float64 `json:"y"`
}

// DragEvent carries one step of an active drag. Deltas are relative to the
// node's current position; repeated events accumulate.
type DragEvent struct {
	ID     string  `json:"id"`
	DeltaX float64 `json:"delta_x"`
	DeltaY float64 `json:"delta_y"`
}

// =============================================================================
// Capabilities
// =============================================================================

// GridPolicy controls grid snapping of dragged positions. When SnapToGrid is
// set, each axis is independently rounded to the nearest multiple of
// GridSize. A GridSize of zero with snapping enabled propagates NaN through
// the snapped position; providers and config validation must guard
// GridSize > 0.
type GridPolicy struct {
	SnapToGrid bool    `json:"snap_to_grid"`
	GridSize   float64 `json:"grid_size"`
}

// PolicyProvider supplies the grid-snap policy. The Coordinator reads it
// fresh on every drag update rather than caching or subscribing, so backends
// may serve live values (a config file, a shared key-value store).
type PolicyProvider interface {
	GridPolicy() GridPolicy
}

// PolicyFunc adapts a plain function to a PolicyProvider.
type PolicyFunc func() GridPolicy

// GridPolicy implements PolicyProvider.
func (f PolicyFunc) GridPolicy() GridPolicy { return f() }

// FootprintFunc reports the rectangle size a node occupies on the canvas.
// It lets overflow and visibility math track real per-node sizes once they
// vary; [DefaultFootprint] returns the fixed footprint used when no function
// is supplied.
type FootprintFunc func(id string) Size

// PositionObserver is notified synchronously after a drag update commits a
// new position for a node.
type PositionObserver func(id string, pos NodePosition)

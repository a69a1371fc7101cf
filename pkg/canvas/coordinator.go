package canvas

import (
	"math"
	"slices"
)

// defaultFootprint is the fixed rectangle a node occupies when no
// FootprintFunc is supplied. See DefaultFootprint.
var defaultFootprint = Size{Width: 200, Height: 100}

// DefaultFootprint returns the fixed node footprint used when no per-node
// sizing function is configured.
func DefaultFootprint(string) Size { return defaultFootprint }

// CoordinatorOptions configures a Coordinator. The zero value (or a nil
// pointer) selects the defaults.
type CoordinatorOptions struct {
	// Footprint reports the canvas rectangle occupied by a node. Defaults
	// to DefaultFootprint (200x100 for every node).
	Footprint FootprintFunc
}

// Coordinator maintains authoritative node positions, mediates the drag
// life-cycle, applies optional grid snapping, and keeps the Viewport's
// rectangle list in sync after every structural change.
//
// Drag handling is a two-state machine: idle (no dragged node) and dragging
// exactly one node. Updates whose id does not match the active drag target
// are discarded, so a stale or mismatched pointer stream can never corrupt
// another node's position.
//
// Coordinator is not safe for concurrent use; see the package documentation.
type Coordinator struct {
	viewport  *Viewport
	policy    PolicyProvider
	footprint FootprintFunc
	positions map[string]NodePosition
	draggedID string // "" when idle
	observers []PositionObserver
}

// NewCoordinator creates a coordinator publishing into viewport. policy
// supplies the grid-snap configuration and is consulted fresh on every drag
// update; a nil policy disables snapping. opts may be nil.
func NewCoordinator(viewport *Viewport, policy PolicyProvider, opts *CoordinatorOptions) *Coordinator {
	c := &Coordinator{
		viewport:  viewport,
		policy:    policy,
		footprint: DefaultFootprint,
		positions: make(map[string]NodePosition),
	}
	if c.policy == nil {
		c.policy = PolicyFunc(func() GridPolicy { return GridPolicy{} })
	}
	if opts != nil && opts.Footprint != nil {
		c.footprint = opts.Footprint
	}
	return c
}

// Viewport returns the viewport this coordinator publishes into.
func (c *Coordinator) Viewport() *Viewport { return c.viewport }

// RegisterNode inserts or overwrites the node's position and republishes the
// rectangle list.
func (c *Coordinator) RegisterNode(id string, pos Point) OverflowResult {
	c.positions[id] = NodePosition{ID: id, X: pos.X, Y: pos.Y}
	return c.republish()
}

// UnregisterNode removes the node's position entry and republishes. Removing
// an unknown id is a no-op apart from the recompute.
//
// If id is the active drag target the drag id is left in place: subsequent
// updates for it miss the position lookup and no-op, and the next StartDrag
// overwrites it.
func (c *Coordinator) UnregisterNode(id string) OverflowResult {
	delete(c.positions, id)
	return c.republish()
}

// StartDrag marks id as the active drag target, overwriting any stale drag
// state from a missed EndDrag. The id is not required to be registered.
func (c *Coordinator) StartDrag(id string) {
	c.draggedID = id
}

// UpdateDrag applies one drag step. The event is discarded unless its id
// matches the active drag target and a position entry exists for it; the
// returned bool reports whether a position was committed.
//
// The delta is added to the node's current position. If the policy provider
// currently enables snapping, both axes are independently rounded to the
// nearest grid multiple before the position is stored. Observers fire
// synchronously with the committed position.
func (c *Coordinator) UpdateDrag(ev DragEvent) (OverflowResult, bool) {
	if ev.ID == "" || ev.ID != c.draggedID {
		return c.viewport.Result(), false
	}
	cur, ok := c.positions[ev.ID]
	if !ok {
		return c.viewport.Result(), false
	}

	next := NodePosition{ID: ev.ID, X: cur.X + ev.DeltaX, Y: cur.Y + ev.DeltaY}
	if p := c.policy.GridPolicy(); p.SnapToGrid {
		next.X = snap(next.X, p.GridSize)
		next.Y = snap(next.Y, p.GridSize)
	}
	c.positions[ev.ID] = next

	res := c.republish()
	for _, fn := range c.observers {
		fn(ev.ID, next)
	}
	return res, true
}

// EndDrag returns the drag state machine to idle. Idempotent.
func (c *Coordinator) EndDrag() {
	c.draggedID = ""
}

// Dragging returns the active drag target, if any.
func (c *Coordinator) Dragging() (string, bool) {
	return c.draggedID, c.draggedID != ""
}

// OnPositionUpdate appends an observer to be notified after each committed
// drag update. Observers fire in registration order.
func (c *Coordinator) OnPositionUpdate(fn PositionObserver) {
	if fn != nil {
		c.observers = append(c.observers, fn)
	}
}

// NodePosition returns the position entry for id.
func (c *Coordinator) NodePosition(id string) (NodePosition, bool) {
	pos, ok := c.positions[id]
	return pos, ok
}

// Positions returns all position entries sorted by id for deterministic
// output.
func (c *Coordinator) Positions() []NodePosition {
	out := make([]NodePosition, 0, len(c.positions))
	for _, p := range c.positions {
		out = append(out, p)
	}
	slices.SortFunc(out, func(a, b NodePosition) int {
		if a.ID < b.ID {
			return -1
		}
		if a.ID > b.ID {
			return 1
		}
		return 0
	})
	return out
}

// Len returns the number of registered nodes.
func (c *Coordinator) Len() int { return len(c.positions) }

// republish converts the position map into footprint rectangles and replaces
// the viewport's element list. Every structural mutation funnels through
// here; there is no batching, so N updates trigger N full recomputes. Fine
// for the tens of nodes a board holds.
func (c *Coordinator) republish() OverflowResult {
	elements := make([]Element, 0, len(c.positions))
	for id, p := range c.positions {
		fp := c.footprint(id)
		elements = append(elements, Element{X: p.X, Y: p.Y, Width: fp.Width, Height: fp.Height})
	}
	return c.viewport.UpdateElements(elements)
}

// snap rounds v to the nearest multiple of grid. A zero grid propagates NaN;
// callers enabling snapping must guard grid > 0.
func snap(v, grid float64) float64 {
	return math.Round(v/grid) * grid
}

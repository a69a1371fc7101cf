package canvas

import "math"

// Zoom defaults. Zoom is always clamped to the closed interval
// [minZoom, maxZoom]; no NaN or out-of-range value is ever observable.
const (
	DefaultMinZoom = 0.1
	DefaultMaxZoom = 3.0
	DefaultZoom    = 1.0
)

// ViewportOptions configures a Viewport. The zero value (or a nil pointer)
// selects the package defaults. Bounds that are non-positive or inverted
// fall back to the defaults rather than producing an unusable viewport.
type ViewportOptions struct {
	MinZoom float64 // lower zoom bound, default DefaultMinZoom
	MaxZoom float64 // upper zoom bound, default DefaultMaxZoom
	Zoom    float64 // initial zoom, default DefaultZoom, clamped to bounds
}

// Viewport tracks the visible canvas size, the current zoom level, and the
// flat list of content-space rectangles. It derives overflow state, scroll
// compensation, and the visible element subset.
//
// The zero value is not usable; use [NewViewport]. Viewport is not safe for
// concurrent use.
type Viewport struct {
	size     Size
	zoom     float64
	minZoom  float64
	maxZoom  float64
	elements []Element
}

// NewViewport creates a viewport for the given canvas size. opts may be nil
// to accept the default zoom bounds and initial zoom.
func NewViewport(size Size, opts *ViewportOptions) *Viewport {
	v := &Viewport{
		size:    size,
		minZoom: DefaultMinZoom,
		maxZoom: DefaultMaxZoom,
		zoom:    DefaultZoom,
	}
	if opts != nil {
		if opts.MinZoom > 0 && opts.MaxZoom >= opts.MinZoom {
			v.minZoom = opts.MinZoom
			v.maxZoom = opts.MaxZoom
		}
		if opts.Zoom != 0 {
			v.zoom = opts.Zoom
		}
	}
	v.zoom = v.clamp(v.zoom)
	return v
}

// Size returns the current canvas size.
func (v *Viewport) Size() Size { return v.size }

// SetSize replaces the canvas size (window resize) and recomputes.
func (v *Viewport) SetSize(size Size) OverflowResult {
	v.size = size
	return v.recompute()
}

// Zoom returns the current zoom level.
func (v *Viewport) Zoom() float64 { return v.zoom }

// SetZoom stores the given zoom level, clamped to the viewport's bounds, and
// recomputes. Out-of-range input is silently clamped, never rejected; NaN
// clamps to the lower bound.
func (v *Viewport) SetZoom(zoom float64) OverflowResult {
	v.zoom = v.clamp(zoom)
	return v.recompute()
}

// UpdateElements replaces the tracked rectangle list wholesale (no diffing)
// and recomputes. An empty list yields no overflow and zero scroll.
func (v *Viewport) UpdateElements(elements []Element) OverflowResult {
	v.elements = make([]Element, len(elements))
	copy(v.elements, elements)
	return v.recompute()
}

// Elements returns a copy of the tracked rectangle list.
func (v *Viewport) Elements() []Element {
	out := make([]Element, len(v.elements))
	copy(out, v.elements)
	return out
}

// Result returns the current overflow snapshot without mutating anything.
func (v *Viewport) Result() OverflowResult { return v.recompute() }

// VisibleElements returns the subset of tracked rectangles whose bounding box
// intersects the current visible window. Touching the window edge counts as
// visible. The call is side-effect-free.
func (v *Viewport) VisibleElements() []Element {
	area := v.visibleArea()
	visible := make([]Element, 0, len(v.elements))
	for _, e := range v.elements {
		if e.Intersects(area) {
			visible = append(visible, e)
		}
	}
	return visible
}

// clamp confines zoom to [minZoom, maxZoom]. NaN maps to minZoom so the
// invariant that zoom is always a valid scalar holds for any input.
func (v *Viewport) clamp(zoom float64) float64 {
	if math.IsNaN(zoom) || zoom < v.minZoom {
		return v.minZoom
	}
	if zoom > v.maxZoom {
		return v.maxZoom
	}
	return zoom
}

// contentBounds is the axis-aligned bounding box of all tracked elements in
// content space. Collapses to the origin when no elements are tracked.
type contentBounds struct {
	minX, minY, maxX, maxY float64
}

// bounds computes the content bounding box. Negative coordinates are
// supported; the box simply extends left of or above the origin.
func (v *Viewport) bounds() contentBounds {
	if len(v.elements) == 0 {
		return contentBounds{}
	}
	b := contentBounds{
		minX: v.elements[0].X,
		minY: v.elements[0].Y,
		maxX: v.elements[0].X + v.elements[0].Width,
		maxY: v.elements[0].Y + v.elements[0].Height,
	}
	for _, e := range v.elements[1:] {
		b.minX = math.Min(b.minX, e.X)
		b.minY = math.Min(b.minY, e.Y)
		b.maxX = math.Max(b.maxX, e.X+e.Width)
		b.maxY = math.Max(b.maxY, e.Y+e.Height)
	}
	return b
}

// recompute derives the overflow snapshot from the current size, zoom, and
// element list. Content exactly filling the canvas is not overflow. Scroll
// only compensates for content starting left of or above the origin and is
// never negative; it is zero whenever there is no overflow.
func (v *Viewport) recompute() OverflowResult {
	b := v.bounds()
	contentWidth := (b.maxX - b.minX) * v.zoom
	contentHeight := (b.maxY - b.minY) * v.zoom

	overflow := contentWidth > v.size.Width || contentHeight > v.size.Height
	var scroll Point
	if overflow {
		scroll.X = math.Max(0, -b.minX*v.zoom)
		scroll.Y = math.Max(0, -b.minY*v.zoom)
	}
	return OverflowResult{Overflow: overflow, Scroll: scroll, Zoom: v.zoom}
}

// visibleArea is the currently visible window expressed in content space:
// the canvas extent divided by zoom, shifted by the compensating scroll.
func (v *Viewport) visibleArea() Element {
	r := v.recompute()
	return Element{
		X:      -r.Scroll.X / v.zoom,
		Y:      -r.Scroll.Y / v.zoom,
		Width:  v.size.Width / v.zoom,
		Height: v.size.Height / v.zoom,
	}
}

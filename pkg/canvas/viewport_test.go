package canvas

import (
	"math"
	"testing"
)

func TestSetZoomClamping(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{name: "WithinRange", in: 1.5, want: 1.5},
		{name: "BelowMin", in: -5, want: 0.1},
		{name: "ExactMin", in: 0.1, want: 0.1},
		{name: "AboveMax", in: 100, want: 3.0},
		{name: "ExactMax", in: 3.0, want: 3.0},
		{name: "Zero", in: 0, want: 0.1},
		{name: "NaN", in: math.NaN(), want: 0.1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := NewViewport(Size{Width: 100, Height: 100}, nil)
			res := v.SetZoom(tt.in)
			if res.Zoom != tt.want {
				t.Errorf("SetZoom(%v).Zoom = %v, want %v", tt.in, res.Zoom, tt.want)
			}
			if v.Zoom() != tt.want {
				t.Errorf("Zoom() = %v, want %v", v.Zoom(), tt.want)
			}
		})
	}
}

func TestViewportCustomBounds(t *testing.T) {
	v := NewViewport(Size{Width: 100, Height: 100}, &ViewportOptions{MinZoom: 0.5, MaxZoom: 2.0})

	if got := v.SetZoom(0.1).Zoom; got != 0.5 {
		t.Errorf("SetZoom(0.1).Zoom = %v, want 0.5", got)
	}
	if got := v.SetZoom(10).Zoom; got != 2.0 {
		t.Errorf("SetZoom(10).Zoom = %v, want 2.0", got)
	}
}

func TestViewportInvalidBoundsFallBack(t *testing.T) {
	// Inverted and non-positive bounds are replaced with the defaults.
	v := NewViewport(Size{Width: 100, Height: 100}, &ViewportOptions{MinZoom: 2.0, MaxZoom: 0.5})

	if got := v.SetZoom(-1).Zoom; got != DefaultMinZoom {
		t.Errorf("SetZoom(-1).Zoom = %v, want %v", got, DefaultMinZoom)
	}
	if got := v.SetZoom(100).Zoom; got != DefaultMaxZoom {
		t.Errorf("SetZoom(100).Zoom = %v, want %v", got, DefaultMaxZoom)
	}
}

func TestUpdateElementsEmpty(t *testing.T) {
	v := NewViewport(Size{Width: 100, Height: 100}, nil)
	v.SetZoom(2.0)

	res := v.UpdateElements(nil)
	if res.Overflow {
		t.Error("empty element set must not overflow")
	}
	if res.Scroll.X != 0 || res.Scroll.Y != 0 {
		t.Errorf("empty element set scroll = %+v, want {0 0}", res.Scroll)
	}
	if res.Zoom != 2.0 {
		t.Errorf("zoom = %v, want unchanged 2.0", res.Zoom)
	}
}

func TestOverflow(t *testing.T) {
	tests := []struct {
		name         string
		size         Size
		zoom         float64
		elements     []Element
		wantOverflow bool
		wantScroll   Point
	}{
		{
			name:         "ExactFitIsNotOverflow",
			size:         Size{Width: 100, Height: 100},
			zoom:         1.0,
			elements:     []Element{{X: 0, Y: 0, Width: 100, Height: 100}},
			wantOverflow: false,
		},
		{
			name:         "OnePixelPast",
			size:         Size{Width: 100, Height: 100},
			zoom:         1.0,
			elements:     []Element{{X: 0, Y: 0, Width: 101, Height: 50}},
			wantOverflow: true,
		},
		{
			name:         "ZoomPushesContentOver",
			size:         Size{Width: 100, Height: 100},
			zoom:         2.0,
			elements:     []Element{{X: 0, Y: 0, Width: 60, Height: 40}},
			wantOverflow: true,
		},
		{
			name:         "ZoomOutPullsContentBack",
			size:         Size{Width: 100, Height: 100},
			zoom:         0.5,
			elements:     []Element{{X: 0, Y: 0, Width: 150, Height: 150}},
			wantOverflow: false,
		},
		{
			name:         "NegativeOriginCompensated",
			size:         Size{Width: 100, Height: 100},
			zoom:         1.0,
			elements:     []Element{{X: -50, Y: 0, Width: 200, Height: 50}},
			wantOverflow: true,
			wantScroll:   Point{X: 50, Y: 0},
		},
		{
			name: "NegativeBothAxes",
			size: Size{Width: 100, Height: 100},
			zoom: 1.0,
			elements: []Element{
				{X: -30, Y: -20, Width: 10, Height: 10},
				{X: 100, Y: 100, Width: 50, Height: 50},
			},
			wantOverflow: true,
			wantScroll:   Point{X: 30, Y: 20},
		},
		{
			name:         "NegativeOriginScaledByZoom",
			size:         Size{Width: 100, Height: 100},
			zoom:         2.0,
			elements:     []Element{{X: -50, Y: 0, Width: 200, Height: 50}},
			wantOverflow: true,
			wantScroll:   Point{X: 100, Y: 0},
		},
		{
			name:         "NegativeOriginWithoutOverflowKeepsZeroScroll",
			size:         Size{Width: 100, Height: 100},
			zoom:         1.0,
			elements:     []Element{{X: -10, Y: -10, Width: 50, Height: 50}},
			wantOverflow: false,
			wantScroll:   Point{},
		},
		{
			name:         "ZeroSizeCanvas",
			size:         Size{},
			zoom:         1.0,
			elements:     []Element{{X: 0, Y: 0, Width: 1, Height: 1}},
			wantOverflow: true,
			wantScroll:   Point{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := NewViewport(tt.size, nil)
			v.SetZoom(tt.zoom)
			res := v.UpdateElements(tt.elements)

			if res.Overflow != tt.wantOverflow {
				t.Errorf("Overflow = %v, want %v", res.Overflow, tt.wantOverflow)
			}
			if res.Scroll != tt.wantScroll {
				t.Errorf("Scroll = %+v, want %+v", res.Scroll, tt.wantScroll)
			}
			if !res.Overflow && (res.Scroll.X != 0 || res.Scroll.Y != 0) {
				t.Errorf("scroll must be zero without overflow, got %+v", res.Scroll)
			}
			if res.Scroll.X < 0 || res.Scroll.Y < 0 {
				t.Errorf("scroll must never be negative, got %+v", res.Scroll)
			}
		})
	}
}

func TestSetSizeRecomputes(t *testing.T) {
	v := NewViewport(Size{Width: 100, Height: 100}, nil)
	res := v.UpdateElements([]Element{{X: 0, Y: 0, Width: 150, Height: 50}})
	if !res.Overflow {
		t.Fatal("expected overflow at 100x100")
	}

	res = v.SetSize(Size{Width: 200, Height: 100})
	if res.Overflow {
		t.Error("resize to 200x100 should clear the overflow")
	}
}

func TestVisibleElements(t *testing.T) {
	tests := []struct {
		name     string
		size     Size
		zoom     float64
		elements []Element
		want     int
	}{
		{
			name: "OffscreenExcludedPartialIncluded",
			size: Size{Width: 50, Height: 50},
			zoom: 1.0,
			elements: []Element{
				{X: 60, Y: 0, Width: 10, Height: 10}, // fully right of window
				{X: 40, Y: 0, Width: 20, Height: 20}, // partial overlap
			},
			want: 1,
		},
		{
			name: "TouchingEdgeIsVisible",
			size: Size{Width: 50, Height: 50},
			zoom: 1.0,
			elements: []Element{
				{X: 50, Y: 0, Width: 10, Height: 10}, // left edge on window border
			},
			want: 1,
		},
		{
			name: "ZoomShrinksWindow",
			size: Size{Width: 100, Height: 100},
			zoom: 2.0,
			// Window in content space is 50x50 at zoom 2.
			elements: []Element{
				{X: 10, Y: 10, Width: 10, Height: 10},
				{X: 60, Y: 60, Width: 10, Height: 10},
			},
			want: 1,
		},
		{
			name: "ScrollShiftsWindowToNegativeContent",
			size: Size{Width: 100, Height: 100},
			zoom: 1.0,
			// Overflowing set with negative origin: window starts at x=-50.
			elements: []Element{
				{X: -50, Y: 0, Width: 20, Height: 20},
				{X: 200, Y: 0, Width: 20, Height: 20},
			},
			want: 1,
		},
		{
			name:     "EmptySet",
			size:     Size{Width: 100, Height: 100},
			zoom:     1.0,
			elements: nil,
			want:     0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := NewViewport(tt.size, nil)
			v.SetZoom(tt.zoom)
			v.UpdateElements(tt.elements)

			got := v.VisibleElements()
			if len(got) != tt.want {
				t.Errorf("VisibleElements() returned %d elements, want %d: %+v", len(got), tt.want, got)
			}
		})
	}
}

func TestVisibleElementsIsSideEffectFree(t *testing.T) {
	v := NewViewport(Size{Width: 100, Height: 100}, nil)
	v.SetZoom(1.5)
	v.UpdateElements([]Element{{X: 0, Y: 0, Width: 10, Height: 10}})

	before := v.Result()
	v.VisibleElements()
	after := v.Result()

	if before != after {
		t.Errorf("VisibleElements mutated state: before %+v, after %+v", before, after)
	}
}

func TestUpdateElementsCopiesInput(t *testing.T) {
	v := NewViewport(Size{Width: 100, Height: 100}, nil)
	in := []Element{{X: 0, Y: 0, Width: 10, Height: 10}}
	v.UpdateElements(in)

	in[0].X = 9999
	got := v.Elements()
	if got[0].X != 0 {
		t.Error("UpdateElements must copy the caller's slice")
	}
}

func TestElementIntersects(t *testing.T) {
	base := Element{X: 0, Y: 0, Width: 10, Height: 10}
	tests := []struct {
		name  string
		other Element
		want  bool
	}{
		{name: "Overlap", other: Element{X: 5, Y: 5, Width: 10, Height: 10}, want: true},
		{name: "Contained", other: Element{X: 2, Y: 2, Width: 2, Height: 2}, want: true},
		{name: "TouchingRightEdge", other: Element{X: 10, Y: 0, Width: 5, Height: 5}, want: true},
		{name: "TouchingCorner", other: Element{X: 10, Y: 10, Width: 5, Height: 5}, want: true},
		{name: "DisjointRight", other: Element{X: 11, Y: 0, Width: 5, Height: 5}, want: false},
		{name: "DisjointAbove", other: Element{X: 0, Y: -6, Width: 5, Height: 5}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := base.Intersects(tt.other); got != tt.want {
				t.Errorf("Intersects(%+v) = %v, want %v", tt.other, got, tt.want)
			}
			// Intersection is symmetric.
			if got := tt.other.Intersects(base); got != tt.want {
				t.Errorf("reverse Intersects = %v, want %v", got, tt.want)
			}
		})
	}
}

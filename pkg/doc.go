// Package pkg provides the core libraries for Corkboard viewport coordination.
//
// # Overview
//
// Corkboard keeps an infinite brainstorming canvas honest: it tracks where
// every node sits, whether the content spills past the visible canvas, and
// which nodes are worth painting at the current zoom. The pkg directory is
// organized into four main areas:
//
//  1. [canvas] - Domain logic (viewport geometry, drag coordination)
//  2. [settings] - Grid policy providers (static, file, Redis)
//  3. [errors] - Structured errors and boundary validation
//  4. [observability] - Lifecycle hooks for logging and metrics
//
// # Architecture
//
// The typical data flow through Corkboard:
//
//	Drag/Register events
//	         ↓
//	    [canvas] Coordinator (positions + snap policy)
//	         ↓
//	    [canvas] Viewport (bounds, overflow, scroll, culling)
//	         ↓
//	    OverflowResult + visible elements
//
// # Quick Start
//
// Build a coordinator and drive a drag:
//
//	import (
//	    "github.com/corkboard/corkboard/pkg/canvas"
//	    "github.com/corkboard/corkboard/pkg/settings"
//	)
//
//	vp := canvas.NewViewport(canvas.Size{Width: 1280, Height: 800}, nil)
//	policy := settings.NewStatic(canvas.GridPolicy{SnapToGrid: true, GridSize: 20})
//	coord := canvas.NewCoordinator(vp, policy, nil)
//
//	coord.RegisterNode("note", canvas.NodePosition{ID: "note", X: 40, Y: 40})
//	coord.StartDrag("note")
//	res, _ := coord.UpdateDrag(canvas.DragEvent{ID: "note", DeltaX: 15, DeltaY: 7})
//	coord.EndDrag()
//
// # Main Packages
//
// [canvas] - Viewport geometry and node coordination. The Viewport computes
// content bounds, overflow, scroll compensation, and visibility culling; the
// Coordinator owns node positions, the single-flight drag state machine, and
// grid snapping, republishing element rectangles on every mutation.
//
// [settings] - PolicyProvider implementations. Static holds a policy in
// memory, File re-reads a TOML document on every lookup, Redis fetches the
// policy from a shared key space. File and Redis fall back to a configured
// default when the backend misbehaves.
//
// [errors] - Error codes and wrapping shared across the boundary layers,
// plus validators for node IDs, zoom bounds, grid policies, canvas sizes,
// and footprints. Core canvas operations are total and never return errors;
// validation happens before input reaches them.
//
// [observability] - Hook interfaces fired on node lifecycle, drag, zoom, and
// overflow transitions, with no-op defaults. Consumers install hooks via the
// package-level registry.
//
// [buildinfo] - Version metadata injected at build time.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...            # All tests
//	go test ./pkg/canvas/...     # Specific package
//	go test -run Example         # Examples only
//
// [canvas]: https://pkg.go.dev/github.com/corkboard/corkboard/pkg/canvas
// [settings]: https://pkg.go.dev/github.com/corkboard/corkboard/pkg/settings
// [errors]: https://pkg.go.dev/github.com/corkboard/corkboard/pkg/errors
// [observability]: https://pkg.go.dev/github.com/corkboard/corkboard/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/corkboard/corkboard/pkg/buildinfo
package pkg

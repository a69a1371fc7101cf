package errors

import (
	"math"
	"unicode"
)

// ValidateNodeID validates a node identifier supplied by an external caller
// (HTTP surface, config file). Identifiers key the position map and appear in
// log output, so the rules are intentionally conservative:
//   - No empty ids
//   - No control characters or null bytes
//   - Maximum length of 256 characters
func ValidateNodeID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidNodeID, "node id cannot be empty")
	}

	if len(id) > 256 {
		return New(ErrCodeInvalidNodeID, "node id too long (max 256 characters)")
	}

	for _, r := range id {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidNodeID, "node id contains invalid control characters")
		}
	}

	return nil
}

// ValidateZoomBounds validates a min/max zoom pair from configuration.
// Bounds must be positive, finite, and ordered.
func ValidateZoomBounds(minZoom, maxZoom float64) error {
	if math.IsNaN(minZoom) || math.IsNaN(maxZoom) || math.IsInf(minZoom, 0) || math.IsInf(maxZoom, 0) {
		return New(ErrCodeInvalidConfig, "zoom bounds must be finite numbers")
	}
	if minZoom <= 0 {
		return New(ErrCodeInvalidConfig, "min_zoom must be positive, got %v", minZoom)
	}
	if maxZoom < minZoom {
		return New(ErrCodeInvalidConfig, "max_zoom (%v) must not be below min_zoom (%v)", maxZoom, minZoom)
	}
	return nil
}

// ValidateGridPolicy validates a grid-snap policy from configuration. A zero
// or negative grid size with snapping enabled would propagate NaN through
// every snapped position, so it is rejected here at the boundary.
func ValidateGridPolicy(snapToGrid bool, gridSize float64) error {
	if !snapToGrid {
		return nil
	}
	if math.IsNaN(gridSize) || math.IsInf(gridSize, 0) {
		return New(ErrCodeInvalidConfig, "grid_size must be a finite number")
	}
	if gridSize <= 0 {
		return New(ErrCodeInvalidConfig, "grid_size must be positive when snap_to_grid is enabled, got %v", gridSize)
	}
	return nil
}

// ValidateCanvasSize validates a canvas size from configuration. Zero-size
// canvases are permitted by the core (everything simply overflows) but are
// almost certainly a configuration mistake, so they are rejected here.
func ValidateCanvasSize(width, height float64) error {
	if math.IsNaN(width) || math.IsNaN(height) || math.IsInf(width, 0) || math.IsInf(height, 0) {
		return New(ErrCodeInvalidConfig, "canvas size must be finite")
	}
	if width <= 0 || height <= 0 {
		return New(ErrCodeInvalidConfig, "canvas size must be positive, got %vx%v", width, height)
	}
	return nil
}

// ValidateFootprint validates a node footprint from configuration.
func ValidateFootprint(width, height float64) error {
	if math.IsNaN(width) || math.IsNaN(height) || math.IsInf(width, 0) || math.IsInf(height, 0) {
		return New(ErrCodeInvalidConfig, "node footprint must be finite")
	}
	if width <= 0 || height <= 0 {
		return New(ErrCodeInvalidConfig, "node footprint must be positive, got %vx%v", width, height)
	}
	return nil
}

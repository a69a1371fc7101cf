// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard
// dependencies on specific observability backends. Consumers register hooks
// at startup to receive events about canvas mutations and settings reads.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// This approach:
//   - Avoids import cycles (hooks are registered by main, not by libraries)
//   - Keeps the core library dependency-free from observability frameworks
//   - Allows different backends (OpenTelemetry, Prometheus, DataDog, etc.)
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetCanvasHooks(&myCanvasHooks{})
//	    observability.SetSettingsHooks(&mySettingsHooks{})
//	    // ... run application
//	}
//
// Surfaces call hooks to emit events:
//
//	observability.Canvas().OnDragStart(ctx, id)
//	// ... apply drag updates ...
//	observability.Canvas().OnDragEnd(ctx, id, duration)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Canvas Hooks
// =============================================================================

// CanvasHooks receives events from canvas mutations.
type CanvasHooks interface {
	// Node lifecycle events
	OnNodeRegistered(ctx context.Context, id string, nodeCount int)
	OnNodeUnregistered(ctx context.Context, id string, nodeCount int)

	// Drag lifecycle events
	OnDragStart(ctx context.Context, id string)
	OnDragEnd(ctx context.Context, id string, duration time.Duration)

	// OnZoom records a zoom change with the requested and the clamped value.
	OnZoom(ctx context.Context, requested, applied float64)

	// OnOverflowChange records a transition of the overflow flag.
	OnOverflowChange(ctx context.Context, overflow bool)
}

// =============================================================================
// Settings Hooks
// =============================================================================

// SettingsHooks receives events from settings backend reads.
type SettingsHooks interface {
	// OnPolicyRead records one grid-policy read from a backend.
	OnPolicyRead(ctx context.Context, backend string, duration time.Duration)

	// OnPolicyFallback records a read that fell back to the default policy.
	OnPolicyFallback(ctx context.Context, backend string, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopCanvasHooks is a no-op implementation of CanvasHooks.
type NoopCanvasHooks struct{}

func (NoopCanvasHooks) OnNodeRegistered(context.Context, string, int)      {}
func (NoopCanvasHooks) OnNodeUnregistered(context.Context, string, int)    {}
func (NoopCanvasHooks) OnDragStart(context.Context, string)                {}
func (NoopCanvasHooks) OnDragEnd(context.Context, string, time.Duration)   {}
func (NoopCanvasHooks) OnZoom(context.Context, float64, float64)           {}
func (NoopCanvasHooks) OnOverflowChange(context.Context, bool)             {}

// NoopSettingsHooks is a no-op implementation of SettingsHooks.
type NoopSettingsHooks struct{}

func (NoopSettingsHooks) OnPolicyRead(context.Context, string, time.Duration) {}
func (NoopSettingsHooks) OnPolicyFallback(context.Context, string, error)     {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	canvasHooks   CanvasHooks   = NoopCanvasHooks{}
	settingsHooks SettingsHooks = NoopSettingsHooks{}
	hooksMu       sync.RWMutex
)

// SetCanvasHooks registers custom canvas hooks.
// This should be called once at application startup before any canvas operations.
func SetCanvasHooks(h CanvasHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		canvasHooks = h
	}
}

// SetSettingsHooks registers custom settings hooks.
// This should be called once at application startup before any settings reads.
func SetSettingsHooks(h SettingsHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		settingsHooks = h
	}
}

// Canvas returns the registered canvas hooks.
func Canvas() CanvasHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return canvasHooks
}

// Settings returns the registered settings hooks.
func Settings() SettingsHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return settingsHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	canvasHooks = NoopCanvasHooks{}
	settingsHooks = NoopSettingsHooks{}
}

// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard
// dependencies on specific observability backends. Consumers can
// register hooks at startup to receive events about layout computation
// and findings parsing.
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
//	    observability.SetLayoutHooks(&myLayoutHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Layout().OnLayoutStart(regionCount)
//	// ... compute layout ...
//	observability.Layout().OnLayoutComplete(placed, duration)
package observability

import (
	"sync"
	"time"
)

// =============================================================================
// Layout Hooks
// =============================================================================

// LayoutHooks receives events from the label placement engine.
type LayoutHooks interface {
	// OnLayoutStart records the beginning of a plan computation.
	OnLayoutStart(regionCount int)

	// OnRegionDropped records a region skipped for lack of a source point.
	OnRegionDropped(id string)

	// OnLayoutDegraded records a side that needed the gap-compression
	// fallback, with the vertical excess over the bound span.
	OnLayoutDegraded(side string, excess float64)

	// OnLayoutComplete records the end of a plan computation.
	OnLayoutComplete(placed int, duration time.Duration)
}

// =============================================================================
// Findings Hooks
// =============================================================================

// FindingsHooks receives events from findings parsing.
type FindingsHooks interface {
	// OnFindingsParsed records a parsed report: how many findings matched
	// the vocabulary and how many were discarded as unknown.
	OnFindingsParsed(matched, unknown int)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopLayoutHooks is a no-op implementation of LayoutHooks.
type NoopLayoutHooks struct{}

func (NoopLayoutHooks) OnLayoutStart(int)                   {}
func (NoopLayoutHooks) OnRegionDropped(string)              {}
func (NoopLayoutHooks) OnLayoutDegraded(string, float64)    {}
func (NoopLayoutHooks) OnLayoutComplete(int, time.Duration) {}

// NoopFindingsHooks is a no-op implementation of FindingsHooks.
type NoopFindingsHooks struct{}

func (NoopFindingsHooks) OnFindingsParsed(int, int) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	layoutHooks   LayoutHooks   = NoopLayoutHooks{}
	findingsHooks FindingsHooks = NoopFindingsHooks{}
	hooksMu       sync.RWMutex
)

// SetLayoutHooks registers custom layout hooks.
// This should be called once at application startup before any layout operations.
func SetLayoutHooks(h LayoutHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		layoutHooks = h
	}
}

// SetFindingsHooks registers custom findings hooks.
// This should be called once at application startup before any parsing operations.
func SetFindingsHooks(h FindingsHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		findingsHooks = h
	}
}

// Layout returns the registered layout hooks.
func Layout() LayoutHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return layoutHooks
}

// Findings returns the registered findings hooks.
func Findings() FindingsHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return findingsHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	layoutHooks = NoopLayoutHooks{}
	findingsHooks = NoopFindingsHooks{}
}

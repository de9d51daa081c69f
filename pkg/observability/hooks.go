// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers can register hooks at startup
// to receive events about connectivity edits and model I/O.
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
//	    observability.SetConnectHooks(&myConnectHooks{})
//	    observability.SetIOHooks(&myIOHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Connect().OnConnect(model, member, links, duration)
//
// Engine operations are synchronous and take no context, so unlike I/O hooks
// the connect hooks carry none either.
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Connect Hooks
// =============================================================================

// ConnectHooks receives events from the connectivity engine.
type ConnectHooks interface {
	// OnConnect records a member insertion and the number of adjacency
	// entries created on both sides.
	OnConnect(model, member string, links int, duration time.Duration)

	// OnDisconnect records a member removal from every adjacency set and the
	// number of references removed.
	OnDisconnect(model, member string, removed int)

	// OnCrossing records a crossing or collinear overlap between two members.
	OnCrossing(model, a, b string)
}

// =============================================================================
// IO Hooks
// =============================================================================

// IOHooks receives events from model file operations.
type IOHooks interface {
	// OnRead records a model file read.
	OnRead(ctx context.Context, format string, members int, duration time.Duration, err error)

	// OnWrite records a model file write.
	OnWrite(ctx context.Context, format string, members int, duration time.Duration, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopConnectHooks is a no-op implementation of ConnectHooks.
type NoopConnectHooks struct{}

func (NoopConnectHooks) OnConnect(string, string, int, time.Duration) {}
func (NoopConnectHooks) OnDisconnect(string, string, int)             {}
func (NoopConnectHooks) OnCrossing(string, string, string)            {}

// NoopIOHooks is a no-op implementation of IOHooks.
type NoopIOHooks struct{}

func (NoopIOHooks) OnRead(context.Context, string, int, time.Duration, error)  {}
func (NoopIOHooks) OnWrite(context.Context, string, int, time.Duration, error) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	connectHooks ConnectHooks = NoopConnectHooks{}
	ioHooks      IOHooks      = NoopIOHooks{}
	hooksMu      sync.RWMutex
)

// SetConnectHooks registers custom connect hooks.
// This should be called once at application startup before any engine operations.
func SetConnectHooks(h ConnectHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		connectHooks = h
	}
}

// SetIOHooks registers custom I/O hooks.
// This should be called once at application startup before any file operations.
func SetIOHooks(h IOHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		ioHooks = h
	}
}

// Connect returns the registered connect hooks.
func Connect() ConnectHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return connectHooks
}

// IO returns the registered I/O hooks.
func IO() IOHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return ioHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	connectHooks = NoopConnectHooks{}
	ioHooks = NoopIOHooks{}
}

package ext

import (
	"context"
	"time"

	"github.com/taskcall/taskcall/task"
)

// Extension is the base interface all extensions must implement.
type Extension interface {
	// Name returns a unique human-readable name for the extension.
	Name() string
}

// ──────────────────────────────────────────────────
// Call lifecycle hooks
// ──────────────────────────────────────────────────

// TaskRegistered is called after a task descriptor is registered.
type TaskRegistered interface {
	OnTaskRegistered(ctx context.Context, d task.Descriptor) error
}

// CallStarted is called when a call has been parsed and resolved,
// immediately before the handler runs.
type CallStarted interface {
	OnCallStarted(ctx context.Context, c *task.Call) error
}

// CallCompleted is called after a handler finishes successfully.
type CallCompleted interface {
	OnCallCompleted(ctx context.Context, c *task.Call, elapsed time.Duration) error
}

// CallFailed is called when a handler returns an error or panics.
type CallFailed interface {
	OnCallFailed(ctx context.Context, c *task.Call, err error) error
}

// ParseFailed is called when an invocation string cannot be parsed or its
// argument list cannot be decoded in strict mode. The raw string is passed
// so extensions can record the offending input.
type ParseFailed interface {
	OnParseFailed(ctx context.Context, invokeTarget string, err error) error
}

// TaskNotFound is called when a parsed invocation names an unregistered task.
type TaskNotFound interface {
	OnTaskNotFound(ctx context.Context, name string) error
}

// Shutdown is called during graceful shutdown.
type Shutdown interface {
	OnShutdown(ctx context.Context) error
}

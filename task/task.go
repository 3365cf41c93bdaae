// Package task defines the named-task model: descriptors pairing a unique
// name with a handler, the per-dispatch Call value, and the Registry that
// answers name lookups.
package task

import (
	"context"
	"time"

	"github.com/taskcall/taskcall/id"
)

// HandlerFunc is the executable body of a task. It receives the decoded,
// loosely typed argument list from the invocation string: string, float64,
// bool, nil, []any, and map[string]any values.
type HandlerFunc func(ctx context.Context, args []any) error

// Descriptor pairs a unique task name with its handler and an optional
// human-readable description. Descriptors are immutable after registration.
type Descriptor struct {
	// Name is the unique identifier for this task.
	Name string

	// Description is free-form operator documentation. Optional.
	Description string

	// Handler is the function invoked when the task is dispatched.
	Handler HandlerFunc
}

// Set is a static registration table: the explicit list of
// (name, description, handler) tuples built at process start.
type Set []Descriptor

// Call is one dispatched invocation of a task. It is transient: created per
// Execute call and discarded when the call returns.
type Call struct {
	// ID uniquely identifies this dispatch for log and trace correlation.
	ID id.CallID

	// Name is the resolved task name.
	Name string

	// Args is the decoded argument list.
	Args []any

	// ReceivedAt is when the invocation string was accepted.
	ReceivedAt time.Time

	// Timeout bounds handler execution. Zero means no deadline.
	Timeout time.Duration
}

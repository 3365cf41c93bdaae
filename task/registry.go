package task

import (
	"log/slog"
	"sync"
)

// Registry maps task names to descriptors. It is safe for concurrent use,
// though the expected pattern is registration at startup followed by
// read-only lookups.
//
// Duplicate names are resolved last-write-wins: a later registration
// replaces the earlier handler and the replacement is logged at warn level.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]Descriptor
	order   []string
	logger  *slog.Logger
}

// NewRegistry creates an empty task registry. A nil logger falls back to
// slog.Default().
func NewRegistry(logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.Default()
	}

	return &Registry{
		entries: make(map[string]Descriptor),
		logger:  logger,
	}
}

// Register adds or replaces the entry for d.Name. Registering a duplicate
// name overwrites the earlier descriptor and keeps its original position in
// Names(). Every registration emits an info log line.
func (r *Registry) Register(d Descriptor) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.entries[d.Name]; exists {
		r.logger.Warn("task overwritten, duplicate name registered",
			slog.String("name", d.Name),
		)
	} else {
		r.order = append(r.order, d.Name)
	}
	r.entries[d.Name] = d

	r.logger.Info("task registered",
		slog.String("name", d.Name),
		slog.String("description", d.Description),
	)
}

// RegisterSet registers every descriptor in the set, in order.
func (r *Registry) RegisterSet(s Set) {
	for _, d := range s {
		r.Register(d)
	}
}

// Lookup returns the descriptor for the given task name.
// Returns false if no task is registered under that name.
func (r *Registry) Lookup(name string) (Descriptor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	d, ok := r.entries[name]
	return d, ok
}

// Names returns all registered task names in first-registration order.
// A duplicate registration does not move a name.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}

// Len returns the number of registered tasks.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.entries)
}

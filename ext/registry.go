package ext

import (
	"context"
	"log/slog"
	"time"

	"github.com/taskcall/taskcall/task"
)

// Named entry types pair a hook implementation with the extension name
// captured at registration time. This avoids type-asserting back to
// Extension inside the emit methods.
type taskRegisteredEntry struct {
	name string
	hook TaskRegistered
}

type callStartedEntry struct {
	name string
	hook CallStarted
}

type callCompletedEntry struct {
	name string
	hook CallCompleted
}

type callFailedEntry struct {
	name string
	hook CallFailed
}

type parseFailedEntry struct {
	name string
	hook ParseFailed
}

type taskNotFoundEntry struct {
	name string
	hook TaskNotFound
}

type shutdownEntry struct {
	name string
	hook Shutdown
}

// Registry holds registered extensions and dispatches lifecycle events
// to them. It type-caches extensions at registration time so emit calls
// iterate only over extensions that implement the relevant hook.
type Registry struct {
	extensions []Extension
	logger     *slog.Logger

	// Type-cached slices for each lifecycle hook.
	taskRegistered []taskRegisteredEntry
	callStarted    []callStartedEntry
	callCompleted  []callCompletedEntry
	callFailed     []callFailedEntry
	parseFailed    []parseFailedEntry
	taskNotFound   []taskNotFoundEntry
	shutdown       []shutdownEntry
}

// NewRegistry creates an extension registry with the given logger.
func NewRegistry(logger *slog.Logger) *Registry {
	return &Registry{logger: logger}
}

// Register adds an extension and type-asserts it into all applicable
// hook caches. Extensions are notified in registration order.
func (r *Registry) Register(e Extension) {
	r.extensions = append(r.extensions, e)
	name := e.Name()

	if h, ok := e.(TaskRegistered); ok {
		r.taskRegistered = append(r.taskRegistered, taskRegisteredEntry{name, h})
	}
	if h, ok := e.(CallStarted); ok {
		r.callStarted = append(r.callStarted, callStartedEntry{name, h})
	}
	if h, ok := e.(CallCompleted); ok {
		r.callCompleted = append(r.callCompleted, callCompletedEntry{name, h})
	}
	if h, ok := e.(CallFailed); ok {
		r.callFailed = append(r.callFailed, callFailedEntry{name, h})
	}
	if h, ok := e.(ParseFailed); ok {
		r.parseFailed = append(r.parseFailed, parseFailedEntry{name, h})
	}
	if h, ok := e.(TaskNotFound); ok {
		r.taskNotFound = append(r.taskNotFound, taskNotFoundEntry{name, h})
	}
	if h, ok := e.(Shutdown); ok {
		r.shutdown = append(r.shutdown, shutdownEntry{name, h})
	}
}

// Extensions returns all registered extensions.
func (r *Registry) Extensions() []Extension { return r.extensions }

// EmitTaskRegistered notifies all extensions that implement TaskRegistered.
func (r *Registry) EmitTaskRegistered(ctx context.Context, d task.Descriptor) {
	for _, e := range r.taskRegistered {
		if err := e.hook.OnTaskRegistered(ctx, d); err != nil {
			r.logHookError("OnTaskRegistered", e.name, err)
		}
	}
}

// EmitCallStarted notifies all extensions that implement CallStarted.
func (r *Registry) EmitCallStarted(ctx context.Context, c *task.Call) {
	for _, e := range r.callStarted {
		if err := e.hook.OnCallStarted(ctx, c); err != nil {
			r.logHookError("OnCallStarted", e.name, err)
		}
	}
}

// EmitCallCompleted notifies all extensions that implement CallCompleted.
func (r *Registry) EmitCallCompleted(ctx context.Context, c *task.Call, elapsed time.Duration) {
	for _, e := range r.callCompleted {
		if err := e.hook.OnCallCompleted(ctx, c, elapsed); err != nil {
			r.logHookError("OnCallCompleted", e.name, err)
		}
	}
}

// EmitCallFailed notifies all extensions that implement CallFailed.
func (r *Registry) EmitCallFailed(ctx context.Context, c *task.Call, callErr error) {
	for _, e := range r.callFailed {
		if err := e.hook.OnCallFailed(ctx, c, callErr); err != nil {
			r.logHookError("OnCallFailed", e.name, err)
		}
	}
}

// EmitParseFailed notifies all extensions that implement ParseFailed.
func (r *Registry) EmitParseFailed(ctx context.Context, invokeTarget string, parseErr error) {
	for _, e := range r.parseFailed {
		if err := e.hook.OnParseFailed(ctx, invokeTarget, parseErr); err != nil {
			r.logHookError("OnParseFailed", e.name, err)
		}
	}
}

// EmitTaskNotFound notifies all extensions that implement TaskNotFound.
func (r *Registry) EmitTaskNotFound(ctx context.Context, name string) {
	for _, e := range r.taskNotFound {
		if err := e.hook.OnTaskNotFound(ctx, name); err != nil {
			r.logHookError("OnTaskNotFound", e.name, err)
		}
	}
}

// EmitShutdown notifies all extensions that implement Shutdown.
func (r *Registry) EmitShutdown(ctx context.Context) {
	for _, e := range r.shutdown {
		if err := e.hook.OnShutdown(ctx); err != nil {
			r.logHookError("OnShutdown", e.name, err)
		}
	}
}

// logHookError logs a warning when a lifecycle hook returns an error.
// Errors from hooks are never propagated — they must not block dispatch.
func (r *Registry) logHookError(hook, extName string, err error) {
	r.logger.Warn("extension hook error",
		slog.String("hook", hook),
		slog.String("extension", extName),
		slog.String("error", err.Error()),
	)
}

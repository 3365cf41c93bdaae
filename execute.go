package taskcall

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/taskcall/taskcall/id"
	"github.com/taskcall/taskcall/invocation"
	"github.com/taskcall/taskcall/task"
)

// Register adds descriptors to the dispatcher's registry. A descriptor with
// an empty name or nil handler is rejected; descriptors before it in the
// call are still registered. Registering a name twice replaces the earlier
// handler.
func (d *Dispatcher) Register(descs ...task.Descriptor) error {
	for _, desc := range descs {
		if desc.Name == "" {
			return ErrEmptyName
		}
		if desc.Handler == nil {
			return fmt.Errorf("%w: %q", ErrNilHandler, desc.Name)
		}
		d.registry.Register(desc)
		d.extensions.EmitTaskRegistered(context.Background(), desc)
	}
	return nil
}

// Tasks returns the registered task names in first-registration order.
func (d *Dispatcher) Tasks() []string {
	return d.registry.Names()
}

// Execute parses invokeTarget, resolves the named task, and runs its
// handler through the middleware chain. It returns true only when the
// handler completed without error.
//
// Execute never panics and never returns an error: malformed invocation
// strings, unknown task names, handler errors, and handler panics are all
// logged and reported as false. It is safe for concurrent use.
func (d *Dispatcher) Execute(ctx context.Context, invokeTarget string) bool {
	inv, err := invocation.Parse(invokeTarget)
	if err != nil {
		d.logger.Error("invocation rejected",
			slog.String("invoke_target", invokeTarget),
			slog.String("error", err.Error()))
		d.extensions.EmitParseFailed(ctx, invokeTarget, err)
		return false
	}

	args, err := invocation.DecodeArgs(inv.RawArgs)
	if err != nil {
		if d.config.StrictArguments {
			d.logger.Error("argument decode failed",
				slog.String("task", inv.Name),
				slog.String("raw_args", inv.RawArgs),
				slog.String("error", err.Error()))
			d.extensions.EmitParseFailed(ctx, invokeTarget, err)
			return false
		}
		// Lenient mode: run the handler with zero arguments rather than
		// dropping the call. Still an error-level entry; the input was bad
		// even though the call proceeds.
		d.logger.Error("argument decode failed, dispatching with zero arguments",
			slog.String("task", inv.Name),
			slog.String("raw_args", inv.RawArgs),
			slog.String("error", err.Error()))
		args = nil
	}

	desc, ok := d.registry.Lookup(inv.Name)
	if !ok {
		d.logger.Error("task not found",
			slog.String("task", inv.Name),
			slog.String("invoke_target", invokeTarget))
		d.extensions.EmitTaskNotFound(ctx, inv.Name)
		return false
	}

	c := &task.Call{
		ID:         id.NewCallID(),
		Name:       desc.Name,
		Args:       args,
		ReceivedAt: time.Now().UTC(),
		Timeout:    d.config.CallTimeout,
	}

	d.extensions.EmitCallStarted(ctx, c)

	start := time.Now()
	err = d.mw(ctx, c, func(ctx context.Context) error {
		return desc.Handler(ctx, c.Args)
	})
	elapsed := time.Since(start)

	if err != nil {
		// The logging middleware already error-logged the fault.
		d.extensions.EmitCallFailed(ctx, c, err)
		return false
	}

	d.extensions.EmitCallCompleted(ctx, c, elapsed)
	return true
}

// Stop shuts the dispatcher down, notifying extensions that implement the
// Shutdown hook. The dispatcher must not be used after Stop returns.
func (d *Dispatcher) Stop(ctx context.Context) error {
	d.logger.Info("dispatcher stopping")
	d.extensions.EmitShutdown(ctx)
	return nil
}

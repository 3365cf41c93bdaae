// Package middleware provides composable middleware for task dispatch.
//
// A [Middleware] is a function that wraps a task handler. Middleware are
// composed into a chain using [Chain] and applied before each call executes.
// They are applied right-to-left: the first middleware in the slice is the
// outermost wrapper.
//
//	// logging → recover → handler
//	chain := middleware.Chain(middleware.Logging(logger), middleware.Recover(logger))
//
// # Built-in Middleware
//
//   - [Logging] — logs task name, call ID, duration, and outcome at each call
//   - [Recover] — catches panics and converts them to errors
//   - [Timeout] — cancels the call context after a configured duration
//   - [Tracing] — wraps execution in an OpenTelemetry span
//   - [Metrics] — records per-call duration and outcome counters
//
// # Writing Custom Middleware
//
// A middleware receives the context, the call being dispatched, and the next
// handler. Call next to continue the chain, or return early to short-circuit:
//
//	func Audit(log *slog.Logger) middleware.Middleware {
//		return func(ctx context.Context, c *task.Call, next middleware.Handler) error {
//			log.Info("dispatching", "task", c.Name)
//			return next(ctx)
//		}
//	}
package middleware

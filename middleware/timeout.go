package middleware

import (
	"context"
	"log/slog"

	"github.com/taskcall/taskcall/task"
)

// Timeout returns middleware that enforces a per-call execution deadline.
// If the call has a non-zero Timeout, a context.WithTimeout wraps the
// handler call. When the deadline is exceeded the context is cancelled and
// the handler should return context.DeadlineExceeded.
func Timeout(logger *slog.Logger) Middleware {
	return func(ctx context.Context, c *task.Call, next Handler) error {
		if c.Timeout > 0 {
			logger.Debug("call timeout set",
				slog.String("call_id", c.ID.String()),
				slog.Duration("timeout", c.Timeout),
			)
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, c.Timeout)
			defer cancel()
		}
		return next(ctx)
	}
}

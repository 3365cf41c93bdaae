package middleware

import (
	"context"
	"log/slog"
	"time"

	"github.com/taskcall/taskcall/task"
)

// Logging returns middleware that logs call start and completion.
func Logging(logger *slog.Logger) Middleware {
	return func(ctx context.Context, c *task.Call, next Handler) error {
		logger.Info("task call started",
			slog.String("task", c.Name),
			slog.String("call_id", c.ID.String()),
			slog.Int("args", len(c.Args)),
		)

		start := time.Now()
		err := next(ctx)
		elapsed := time.Since(start)

		if err != nil {
			logger.Error("task call failed",
				slog.String("task", c.Name),
				slog.String("call_id", c.ID.String()),
				slog.Duration("elapsed", elapsed),
				slog.String("error", err.Error()),
			)
		} else {
			logger.Info("task call completed",
				slog.String("task", c.Name),
				slog.String("call_id", c.ID.String()),
				slog.Duration("elapsed", elapsed),
			)
		}

		return err
	}
}

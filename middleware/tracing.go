package middleware

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/taskcall/taskcall/task"
)

// tracerName is the instrumentation scope name for taskcall tracing.
const tracerName = "github.com/taskcall/taskcall"

// Tracing returns middleware that wraps task dispatch in an OpenTelemetry span.
// If no TracerProvider is configured globally, the default noop tracer is used
// and this middleware becomes a pass-through with zero overhead.
//
// Span attributes include: taskcall.call.id, taskcall.task.name,
// taskcall.call.args. On error, the span status is set to codes.Error with
// the error message.
func Tracing() Middleware {
	tracer := otel.Tracer(tracerName)
	return TracingWithTracer(tracer)
}

// TracingWithTracer returns tracing middleware using the provided tracer.
// This variant allows injecting a specific TracerProvider for testing or
// when multiple providers are in use.
func TracingWithTracer(tracer trace.Tracer) Middleware {
	return func(ctx context.Context, c *task.Call, next Handler) error {
		ctx, span := tracer.Start(ctx, "taskcall.execute",
			trace.WithAttributes(
				attribute.String("taskcall.call.id", c.ID.String()),
				attribute.String("taskcall.task.name", c.Name),
				attribute.Int("taskcall.call.args", len(c.Args)),
			),
			trace.WithSpanKind(trace.SpanKindInternal),
		)
		defer span.End()

		err := next(ctx)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		} else {
			span.SetStatus(codes.Ok, "")
		}

		return err
	}
}

package ports

import (
	"context"
	"io"
)

// SpanConfig holds options applied when starting a span.
type SpanConfig struct{}

// SpanOption configures a span at start time.
type SpanOption func(*SpanConfig)

// Span is one traced unit of work: a target's pipeline or a single stage.
// Spans also accept live process output via io.Writer, which renderers may
// forward; writes are batched by the implementation.
type Span interface {
	io.Writer

	// End completes the span.
	End()

	// RecordError marks the span failed with the given error.
	RecordError(err error)

	// SetAttribute adds a key-value pair to the span.
	SetAttribute(key string, value any)
}

// Tracer creates spans and announces the batch plan. The spans drive the
// renderer through the telemetry bridge.
//
//go:generate mockgen -source=tracer.go -destination=mocks/mock_tracer.go -package=mocks
type Tracer interface {
	// Start creates a span as a child of the span in ctx, if any.
	Start(ctx context.Context, name string, opts ...SpanOption) (context.Context, Span)

	// EmitPlan signals that a batch over the given targets is starting.
	EmitPlan(ctx context.Context, pipeline string, targets []string)
}

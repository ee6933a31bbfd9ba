package telemetry

import (
	"context"

	"github.com/simark/many-buildroots/internal/core/ports"
)

// NoOpTracer is a ports.Tracer that records nothing. It backs commands that
// run pipelines without a renderer attached.
type NoOpTracer struct{}

// NewNoOpTracer creates a new NoOpTracer.
func NewNoOpTracer() *NoOpTracer {
	return &NoOpTracer{}
}

// Start returns the context unchanged and a span that swallows everything.
func (t *NoOpTracer) Start(ctx context.Context, _ string, _ ...ports.SpanOption) (context.Context, ports.Span) {
	return ctx, &NoOpSpan{}
}

// EmitPlan does nothing.
func (t *NoOpTracer) EmitPlan(_ context.Context, _ string, _ []string) {}

// NoOpSpan is a ports.Span that discards all input.
type NoOpSpan struct{}

// End does nothing.
func (s *NoOpSpan) End() {}

// RecordError does nothing.
func (s *NoOpSpan) RecordError(_ error) {}

// SetAttribute does nothing.
func (s *NoOpSpan) SetAttribute(_ string, _ any) {}

// Write discards the data.
func (s *NoOpSpan) Write(p []byte) (int, error) {
	return len(p), nil
}

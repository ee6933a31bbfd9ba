package telemetry

import (
	"context"
	"fmt"
	"sync"

	"github.com/simark/many-buildroots/internal/core/ports"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// LogBufferSize determines the size of the async log channel.
const LogBufferSize = 4096

// planEvent and logEvent are the message kinds carried by the log channel.
type planEvent struct {
	pipeline string
	targets  []string
}

type logEvent struct {
	spanID string
	data   []byte
}

// OTelTracer is a concrete implementation of ports.Tracer using OpenTelemetry.
type OTelTracer struct {
	tracer   trace.Tracer
	renderer ports.Renderer
	logChan  chan any
	mu       sync.RWMutex
}

// NewOTelTracer creates a new OTelTracer with the given instrumentation name.
func NewOTelTracer(name string) *OTelTracer {
	t := &OTelTracer{
		tracer:  otel.Tracer(name),
		logChan: make(chan any, LogBufferSize), // Buffered to handle bursts
	}
	go t.runLoop()
	return t
}

func (t *OTelTracer) runLoop() {
	for msg := range t.logChan {
		t.mu.RLock()
		renderer := t.renderer
		t.mu.RUnlock()

		if renderer == nil {
			continue
		}

		switch m := msg.(type) {
		case planEvent:
			renderer.OnPlanEmit(m.pipeline, m.targets)
		case logEvent:
			renderer.OnSpanLog(m.spanID, m.data)
		}
	}
}

// Shutdown stops the background log processor.
func (t *OTelTracer) Shutdown(_ context.Context) error {
	close(t.logChan)
	return nil
}

// WithRenderer sets the renderer that receives plan and log events.
func (t *OTelTracer) WithRenderer(r ports.Renderer) *OTelTracer {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.renderer = r
	return t
}

// Start creates a new span.
func (t *OTelTracer) Start(ctx context.Context, name string, opts ...ports.SpanOption) (context.Context, ports.Span) {
	cfg := &ports.SpanConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	ctx, span := t.tracer.Start(ctx, name)

	t.mu.RLock()
	renderer := t.renderer
	t.mu.RUnlock()

	var batcher *BatchProcessor
	if renderer != nil {
		spanID := span.SpanContext().SpanID().String()
		cb := func(data []byte) {
			select {
			case t.logChan <- logEvent{spanID: spanID, data: data}:
			default:
				// Drop logs if the buffer is full rather than stall the build
			}
		}
		batcher = NewBatchProcessor(0, 0, cb)
	}

	return ctx, &OTelSpan{span: span, batcher: batcher}
}

// EmitPlan announces the ordered set of targets a pipeline run will process.
func (t *OTelTracer) EmitPlan(ctx context.Context, pipeline string, targets []string) {
	span := trace.SpanFromContext(ctx)
	if span.IsRecording() {
		span.AddEvent("plan_emitted", trace.WithAttributes(
			attribute.String("pipeline", pipeline),
			attribute.StringSlice("targets", targets),
		))
	}

	t.mu.RLock()
	renderer := t.renderer
	t.mu.RUnlock()

	if renderer != nil {
		select {
		case t.logChan <- planEvent{pipeline: pipeline, targets: targets}:
		default:
			// The plan must reach the UI even if the buffer is full; this
			// blocking fallback runs before any build output exists.
			t.logChan <- planEvent{pipeline: pipeline, targets: targets}
		}
	}
}

// OTelSpan is a concrete implementation of ports.Span using OpenTelemetry.
type OTelSpan struct {
	span    trace.Span
	batcher *BatchProcessor
}

// End completes the span.
func (s *OTelSpan) End() {
	if s.batcher != nil {
		_ = s.batcher.Close()
	}
	s.span.End()
}

// RecordError records an error for the span.
func (s *OTelSpan) RecordError(err error) {
	s.span.RecordError(err)
	s.span.SetStatus(codes.Error, err.Error())
}

// SetAttribute adds a key-value pair to the span.
func (s *OTelSpan) SetAttribute(key string, value any) {
	switch v := value.(type) {
	case string:
		s.span.SetAttributes(attribute.String(key, v))
	case int:
		s.span.SetAttributes(attribute.Int(key, v))
	case int64:
		s.span.SetAttributes(attribute.Int64(key, v))
	case float64:
		s.span.SetAttributes(attribute.Float64(key, v))
	case bool:
		s.span.SetAttributes(attribute.Bool(key, v))
	case []string:
		s.span.SetAttributes(attribute.StringSlice(key, v))
	default:
		s.span.SetAttributes(attribute.String(key, fmt.Sprintf("%v", v)))
	}
}

// Write satisfies io.Writer by routing build output through the batcher, or
// recording it as a span event when no renderer is attached.
func (s *OTelSpan) Write(p []byte) (n int, err error) {
	if s.batcher != nil {
		return s.batcher.Write(p)
	}
	s.span.AddEvent("log", trace.WithAttributes(attribute.String("message", string(p))))
	return len(p), nil
}

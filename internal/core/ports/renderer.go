package ports

import (
	"context"
	"time"
)

// Renderer is the abstraction for progress rendering.
// It decouples telemetry collection from presentation logic, allowing the
// same event stream to drive either a rich TUI or linear CI logs.
//
//go:generate mockgen -source=renderer.go -destination=mocks/mock_renderer.go -package=mocks
type Renderer interface {
	// Start initializes the renderer and begins its lifecycle.
	// For asynchronous renderers (like TUI), this may launch background goroutines.
	Start(ctx context.Context) error

	// Stop signals the renderer to stop accepting new events and prepare
	// for shutdown. It should flush any buffered output.
	Stop() error

	// Wait blocks until the renderer has fully terminated.
	// For synchronous renderers, this may return immediately.
	Wait() error

	// OnPlanEmit is called once at the start of a batch.
	// pipeline: the pipeline kind being driven
	// targets: the target names in processing order
	OnPlanEmit(pipeline string, targets []string)

	// OnSpanStart is called when a pipeline or stage span begins.
	// spanID: unique identifier for this span
	// parentID: spanID of the enclosing span (empty for a target's
	// pipeline span)
	// name: the target name for pipeline spans, the stage name for stage
	// spans
	OnSpanStart(spanID, parentID, name string, startTime time.Time)

	// OnSpanLog is called when a span emits live output.
	// data: raw log bytes (may contain partial lines or ANSI sequences)
	OnSpanLog(spanID string, data []byte)

	// OnSpanEnd is called when a span finishes.
	// err: nil if successful, error otherwise
	OnSpanEnd(spanID string, endTime time.Time, err error)
}

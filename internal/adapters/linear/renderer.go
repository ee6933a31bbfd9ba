// Package linear provides a synchronous, line-buffered renderer for CI
// environments and single-target builds.
package linear

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/muesli/termenv"

	"github.com/simark/many-buildroots/internal/ui/output"
)

// Renderer implements ports.Renderer for non-interactive environments.
// It prints chronological logs prefixed with the target name and reports
// stage transitions as they happen.
type Renderer struct {
	stdout io.Writer
	stderr io.Writer
	output *termenv.Output

	mu      sync.Mutex
	spans   map[string]*spanState // spanID -> span state
	buffers map[string]*bytes.Buffer
}

type spanState struct {
	name      string
	parentID  string
	startTime time.Time
}

// NewRenderer creates a new linear Renderer writing logs to stdout and
// status messages to stderr.
func NewRenderer(stdout, stderr io.Writer) *Renderer {
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}

	return &Renderer{
		stdout:  stdout,
		stderr:  stderr,
		output:  output.NewWithProfile(stderr, output.ColorProfileANSI),
		spans:   make(map[string]*spanState),
		buffers: make(map[string]*bytes.Buffer),
	}
}

// Start is a no-op for the linear renderer (synchronous).
func (r *Renderer) Start(_ context.Context) error {
	return nil
}

// Stop flushes all remaining buffers.
func (r *Renderer) Stop() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for spanID := range r.buffers {
		r.flushBufferLocked(spanID)
	}

	return nil
}

// Wait is a no-op for the linear renderer (synchronous).
func (r *Renderer) Wait() error {
	return nil
}

// OnPlanEmit prints the batch plan.
func (r *Renderer) OnPlanEmit(pipeline string, targets []string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, _ = fmt.Fprintf(r.stderr, "Planning %s build for %d target(s): %v\n",
		pipeline, len(targets), targets)
}

// OnSpanStart records the span and prints a start message. Target spans
// announce the target, stage spans announce the stage under the target's
// prefix.
func (r *Renderer) OnSpanStart(spanID, parentID, name string, startTime time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.spans[spanID] = &spanState{
		name:      name,
		parentID:  parentID,
		startTime: startTime,
	}
	r.buffers[spanID] = new(bytes.Buffer)

	prefix := r.output.String(fmt.Sprintf("[%s]", r.rootNameLocked(spanID))).Faint().String()
	if parentID == "" {
		_, _ = fmt.Fprintf(r.stderr, "%s Starting...\n", prefix)
	} else {
		_, _ = fmt.Fprintf(r.stderr, "%s %s...\n", prefix, name)
	}
}

// OnSpanLog buffers log data and prints complete lines with the target
// prefix. Log events arrive asynchronously, so data for a span that has
// already ended is still printed.
func (r *Renderer) OnSpanLog(spanID string, data []byte) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.spans[spanID]; !ok {
		return
	}

	buf, ok := r.buffers[spanID]
	if !ok {
		buf = new(bytes.Buffer)
		r.buffers[spanID] = buf
	}
	buf.Write(data)

	name := r.rootNameLocked(spanID)
	for {
		line, err := buf.ReadBytes('\n')
		if err != nil {
			// Incomplete line, put it back
			if len(line) > 0 {
				newBuf := new(bytes.Buffer)
				newBuf.Write(line)
				r.buffers[spanID] = newBuf
			}
			break
		}

		r.printLineLocked(name, line)
	}
}

// OnSpanEnd flushes remaining output and prints the completion status.
// Span states are kept around so that late log events and parent lookups
// for sibling stages still resolve.
func (r *Renderer) OnSpanEnd(spanID string, endTime time.Time, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	span, ok := r.spans[spanID]
	if !ok {
		return
	}

	r.flushBufferLocked(spanID)

	duration := endTime.Sub(span.startTime)
	prefix := fmt.Sprintf("[%s]", r.rootNameLocked(spanID))

	switch {
	case err != nil && span.parentID != "":
		symbol := r.output.String("✗").Foreground(termenv.ANSIRed).String()
		_, _ = fmt.Fprintf(r.stderr, "%s %s %s failed after %v: %v\n",
			prefix, symbol, span.name, duration, err)
	case err != nil:
		symbol := r.output.String("✗").Foreground(termenv.ANSIRed).String()
		_, _ = fmt.Fprintf(r.stderr, "%s %s Failed after %v: %v\n",
			prefix, symbol, duration, err)
	case span.parentID != "":
		symbol := r.output.String("✓").Foreground(termenv.ANSIGreen).String()
		_, _ = fmt.Fprintf(r.stderr, "%s %s %s finished in %v\n",
			prefix, symbol, span.name, duration)
	default:
		symbol := r.output.String("✓").Foreground(termenv.ANSIGreen).String()
		_, _ = fmt.Fprintf(r.stderr, "%s %s Completed in %v\n",
			prefix, symbol, duration)
	}
}

// rootNameLocked resolves a span to the name of its top-level ancestor,
// which for stage spans is the target they belong to.
// Must be called with r.mu held.
func (r *Renderer) rootNameLocked(spanID string) string {
	span := r.spans[spanID]
	for span.parentID != "" {
		parent, ok := r.spans[span.parentID]
		if !ok {
			break
		}
		span = parent
	}
	return span.name
}

// flushBufferLocked prints any remaining partial line for a span.
// Must be called with r.mu held.
func (r *Renderer) flushBufferLocked(spanID string) {
	if _, ok := r.spans[spanID]; !ok {
		return
	}

	buf := r.buffers[spanID]
	if buf != nil && buf.Len() > 0 {
		r.printLineLocked(r.rootNameLocked(spanID), buf.Bytes())
		buf.Reset()
	}
}

// printLineLocked prints a line with the target name prefix.
// Must be called with r.mu held.
func (r *Renderer) printLineLocked(name string, line []byte) {
	line = bytes.TrimSuffix(line, []byte("\n"))
	line = bytes.TrimSuffix(line, []byte("\r"))

	if len(line) == 0 {
		return
	}

	_, _ = fmt.Fprintf(r.stdout, "[%s] %s\n", name, string(line))
}

package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Renderer wraps the dashboard Bubble Tea model as a ports.Renderer.
type Renderer struct {
	program *tea.Program
	model   *Model
	errCh   chan error
}

// NewRenderer creates a new dashboard renderer.
func NewRenderer(model *Model, opts ...tea.ProgramOption) *Renderer {
	program := tea.NewProgram(model, opts...)
	return &Renderer{
		program: program,
		model:   model,
		errCh:   make(chan error, 1),
	}
}

// Start launches the dashboard in a background goroutine.
func (r *Renderer) Start(_ context.Context) error {
	go func() {
		_, err := r.program.Run()
		r.errCh <- err
	}()
	return nil
}

// Stop signals the dashboard to quit.
func (r *Renderer) Stop() error {
	r.program.Quit()
	return nil
}

// Wait blocks until the dashboard has terminated.
func (r *Renderer) Wait() error {
	return <-r.errCh
}

// OnPlanEmit forwards plan initialization to the dashboard.
func (r *Renderer) OnPlanEmit(pipeline string, targets []string) {
	r.program.Send(MsgInitPlan{
		Pipeline: pipeline,
		Targets:  targets,
	})
}

// OnSpanStart forwards span start events to the dashboard.
func (r *Renderer) OnSpanStart(spanID, parentID, name string, startTime time.Time) {
	r.program.Send(MsgSpanStart{
		SpanID:    spanID,
		ParentID:  parentID,
		Name:      name,
		StartTime: startTime,
	})
}

// OnSpanLog forwards span log data to the dashboard.
func (r *Renderer) OnSpanLog(spanID string, data []byte) {
	r.program.Send(MsgSpanLog{
		SpanID: spanID,
		Data:   data,
	})
}

// OnSpanEnd forwards span completion events to the dashboard.
func (r *Renderer) OnSpanEnd(spanID string, endTime time.Time, err error) {
	r.program.Send(MsgSpanEnd{
		SpanID:  spanID,
		EndTime: endTime,
		Err:     err,
	})
}

// Program returns the underlying tea.Program for testing.
func (r *Renderer) Program() *tea.Program {
	return r.program
}

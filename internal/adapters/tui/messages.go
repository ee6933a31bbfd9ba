package tui

import (
	"time"
)

// MsgInitPlan serves as a signal to initialize or reset the target list in
// the UI.
type MsgInitPlan struct {
	Pipeline string
	Targets  []string
}

// MsgSpanStart indicates a new span has started. Spans with an empty
// ParentID are target builds, the rest are stages within one.
type MsgSpanStart struct {
	SpanID    string
	ParentID  string
	Name      string
	StartTime time.Time
}

// MsgSpanLog carries a chunk of log output for a specific span.
type MsgSpanLog struct {
	SpanID string
	Data   []byte
}

// MsgSpanEnd indicates a span has finished.
type MsgSpanEnd struct {
	SpanID  string
	EndTime time.Time
	Err     error
}

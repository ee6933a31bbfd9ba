// Package tui provides the interactive dashboard for multi-target builds.
package tui

import (
	"io"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
)

const defaultTickInterval = 100

// NewModel creates a new dashboard model with default settings.
func NewModel(w io.Writer) Model {
	if w == nil {
		w = os.Stderr
	}

	out := NewOutput(w)
	lipgloss.SetColorProfile(out.Profile)

	return Model{
		Targets:      make([]*TargetNode, 0),
		TargetMap:    make(map[string]*TargetNode),
		SpanMap:      make(map[string]*TargetNode),
		Output:       out,
		AutoScroll:   true,
		FollowMode:   true,
		ViewMode:     ViewModeList,
		TickInterval: defaultTickInterval * time.Millisecond,
	}
}

// WithDisableTick returns a copy of the model without the background clock.
// Used in tests where ticking would make assertions racy.
func (m Model) WithDisableTick() Model {
	m.DisableTick = true
	return m
}

package tui

import (
	"io"

	"github.com/muesli/termenv"

	"github.com/simark/many-buildroots/internal/ui/output"
)

// ColorProfile returns the color profile to use for the dashboard.
// It checks if NO_COLOR is set, returning Ascii if so. Otherwise it forces
// TrueColor, since the dashboard only runs on interactive terminals.
func ColorProfile() termenv.Profile {
	if output.NoColor() {
		return termenv.Ascii
	}
	return termenv.TrueColor
}

// NewOutput creates a new termenv.Output with the dashboard profile logic.
func NewOutput(w io.Writer, opts ...termenv.OutputOption) *termenv.Output {
	return output.NewWithProfile(w, ColorProfile, opts...)
}

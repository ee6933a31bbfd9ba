// Package summary renders the closing report of a batch and the
// list-targets table.
package summary

import (
	"fmt"
	"io"
	"time"

	"github.com/muesli/termenv"

	"github.com/simark/many-buildroots/internal/core/domain"
	"github.com/simark/many-buildroots/internal/ui/output"
	"github.com/simark/many-buildroots/internal/ui/style"
)

// Render writes the closing block of a batch: one line per requested target
// in request order, then the tally. The block is the durable answer to "what
// happened" once the live rendering has scrolled away or torn down.
func Render(w io.Writer, report *domain.RunReport) {
	out := output.NewWithProfile(w, output.ColorProfileANSI)

	width := 0
	for _, res := range report.Results {
		if len(res.Target) > width {
			width = len(res.Target)
		}
	}

	_, _ = fmt.Fprintf(w, "\n%s build summary\n", report.Pipeline)
	for _, res := range report.Results {
		line := fmt.Sprintf("  %s %-*s  %s", outcomeIcon(out, res.Outcome), width, res.Target, res.Outcome.Tag())

		switch {
		case res.Outcome.OK():
			line += fmt.Sprintf(" (%s)", res.Duration.Round(time.Second))
		case res.Reason != "":
			line += ": " + res.Reason
		}
		if res.LogPath != "" {
			line += " " + out.String("(log: "+res.LogPath+")").Faint().String()
		}

		_, _ = fmt.Fprintln(w, line)
	}

	succeeded, failed, skipped := report.Counts()
	_, _ = fmt.Fprintf(w, "\n%d succeeded, %d failed, %d skipped\n", succeeded, failed, skipped)
}

// TargetRow is one row of the list-targets table.
type TargetRow struct {
	Name             string
	Defconfig        string
	ToolchainPresent bool

	// LastOutcome is the most recent recorded toolchain outcome, empty
	// when the target has never been built.
	LastOutcome domain.Outcome
	LastTime    time.Time
}

// Column headers of the target table.
const (
	headerTarget    = "TARGET"
	headerDefconfig = "DEFCONFIG"
	headerToolchain = "TOOLCHAIN"
	headerLastBuild = "LAST BUILD"
)

// RenderTargetList writes the target table in declaration order.
func RenderTargetList(w io.Writer, rows []TargetRow) {
	out := output.NewWithProfile(w, output.ColorProfileANSI)

	nameWidth, defconfigWidth := len(headerTarget), len(headerDefconfig)
	for _, row := range rows {
		if len(row.Name) > nameWidth {
			nameWidth = len(row.Name)
		}
		if len(row.Defconfig) > defconfigWidth {
			defconfigWidth = len(row.Defconfig)
		}
	}

	_, _ = fmt.Fprintf(w, "%-*s  %-*s  %-9s  %s\n",
		nameWidth, headerTarget, defconfigWidth, headerDefconfig, headerToolchain, headerLastBuild)

	for _, row := range rows {
		// Pad before styling so escape sequences never skew the columns.
		toolchain := out.String(fmt.Sprintf("%-9s", "missing")).Faint().String()
		if row.ToolchainPresent {
			toolchain = out.String(fmt.Sprintf("%-9s", "built")).Foreground(termenv.ANSIGreen).String()
		}

		last := "never"
		if row.LastOutcome != "" {
			last = fmt.Sprintf("%s (%s)", row.LastOutcome.Tag(), row.LastTime.Format("2006-01-02 15:04"))
		}

		_, _ = fmt.Fprintf(w, "%-*s  %-*s  %s  %s\n",
			nameWidth, row.Name, defconfigWidth, row.Defconfig, toolchain, last)
	}
}

// outcomeIcon maps an outcome to its colored status symbol.
func outcomeIcon(out *termenv.Output, o domain.Outcome) string {
	switch {
	case o.OK():
		return out.String(style.Check).Foreground(termenv.ANSIGreen).String()
	case o == domain.OutcomeSkipped:
		return out.String(style.Circle).Faint().String()
	default:
		return out.String(style.Cross).Foreground(termenv.ANSIRed).String()
	}
}

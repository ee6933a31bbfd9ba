package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// View renders the UI.
//
//nolint:gocritic // hugeParam ignored
func (m *Model) View() string {
	if m.ListHeight == 0 {
		return "Initializing..."
	}

	if m.ViewMode == ViewModeLogs {
		return m.fullScreenLogPane()
	}

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		m.targetList(),
		m.logPane(),
	)
}

//nolint:gocritic // hugeParam ignored
func (m *Model) targetList() string {
	var s strings.Builder

	title := "TARGETS"
	if m.Pipeline != "" {
		title += " (" + m.Pipeline + ")"
	}
	s.WriteString(titleStyle.Render(title) + "\n\n")

	if len(m.Targets) == 0 {
		s.WriteString(targetPendingStyle.Render("No targets planned") + "\n")
		return listStyle.Render(s.String())
	}

	start := m.ListOffset
	end := m.ListOffset + m.ListHeight
	if end > len(m.Targets) {
		end = len(m.Targets)
	}
	if start > end {
		start = end
	}

	for i := start; i < end; i++ {
		target := m.Targets[i]
		s.WriteString(m.renderTargetRow(i, target) + "\n")
	}

	return listStyle.Render(s.String())
}

func (m *Model) renderTargetRow(index int, target *TargetNode) string {
	icon := m.getTargetIcon(target)
	style := m.getTargetStyle(target)

	// Highlight selected target
	var cursor string
	if index == m.SelectedIdx {
		cursor = selectedStyle.Render("> ")
		// If not Done/Error, highlight the text as well
		if target.Status != StatusDone && target.Status != StatusError {
			style = selectedStyle
		}
	} else {
		cursor = "  "
	}

	content := fmt.Sprintf("%s %s %s", icon, target.Name, m.formatStatus(target))
	return cursor + style.Render(content)
}

func (m *Model) getTargetIcon(target *TargetNode) string {
	switch target.Status {
	case StatusRunning:
		return "●"
	case StatusDone:
		return "✓"
	case StatusError:
		return "✗"
	default: // Pending
		return "○"
	}
}

func (m *Model) getTargetStyle(target *TargetNode) lipgloss.Style {
	switch target.Status {
	case StatusRunning:
		return targetRunningStyle
	case StatusDone:
		return targetDoneStyle
	case StatusError:
		return targetErrorStyle
	default: // Pending
		return targetPendingStyle
	}
}

// formatStatus renders the bracketed status suffix for a target row and for
// the log pane header.
func (m *Model) formatStatus(target *TargetNode) string {
	switch target.Status {
	case StatusRunning:
		label := "Running"
		if target.Phase != "" {
			label = target.Phase
		}
		return fmt.Sprintf("[%s %s]", label, formatDuration(m.clock().Sub(target.StartTime)))
	case StatusDone:
		return fmt.Sprintf("[Took %s]", formatDuration(m.endOf(target).Sub(target.StartTime)))
	case StatusError:
		return fmt.Sprintf("[Failed %s]", formatDuration(m.endOf(target).Sub(target.StartTime)))
	default:
		return "[Pending]"
	}
}

func (m *Model) clock() time.Time {
	if m.Now.IsZero() {
		return time.Now()
	}
	return m.Now
}

func (m *Model) endOf(target *TargetNode) time.Time {
	if target.EndTime.IsZero() {
		return m.clock()
	}
	return target.EndTime
}

func formatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	switch {
	case d < time.Second:
		return fmt.Sprintf("%dms", d.Milliseconds())
	case d < 10*time.Second:
		return fmt.Sprintf("%.1fs", d.Seconds())
	default:
		return d.Truncate(time.Second).String()
	}
}

//nolint:gocritic // hugeParam ignored
func (m *Model) logPane() string {
	var header string
	var content string

	if m.ActiveTarget != "" {
		status := ""
		if m.FollowMode {
			status = " (Following)"
		} else {
			status = " (Manual)"
		}

		if node, ok := m.TargetMap[m.ActiveTarget]; ok {
			header = m.logTitle(node).Render("LOGS: " + m.ActiveTarget + status + " " + m.formatStatus(node))
			content = node.Term.View()
		} else {
			header = titleStyle.Render("LOGS: " + m.ActiveTarget + status)
			content = "Target not found"
		}
	} else {
		header = titleStyle.Render("LOGS (Waiting...)")
	}

	return logStyle.Render(
		lipgloss.JoinVertical(
			lipgloss.Left,
			header,
			content,
		),
	)
}

//nolint:gocritic // hugeParam ignored
func (m *Model) fullScreenLogPane() string {
	if m.ActiveTarget == "" {
		return logStyle.Render(titleStyle.Render("LOGS") + "\nNo target selected")
	}

	node, ok := m.TargetMap[m.ActiveTarget]
	if !ok {
		return logStyle.Render(titleStyle.Render("LOGS") + "\nTarget not found")
	}

	header := m.logTitle(node).Render("LOGS: " + m.ActiveTarget + " " + m.formatStatus(node))
	hint := targetPendingStyle.Render("esc to return")

	return logStyle.Render(
		lipgloss.JoinVertical(
			lipgloss.Left,
			header+" "+hint,
			node.Term.View(),
		),
	)
}

func (m *Model) logTitle(node *TargetNode) lipgloss.Style {
	if node.Status == StatusError {
		return failureTitleStyle
	}
	return titleStyle
}

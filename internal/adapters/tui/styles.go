package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/simark/many-buildroots/internal/ui/style"
)

var (
	targetPendingStyle = lipgloss.NewStyle().
				Foreground(style.Slate)

	targetRunningStyle = lipgloss.NewStyle().
				Foreground(style.Ember).
				Bold(true)

	targetDoneStyle = lipgloss.NewStyle().
			Foreground(style.Green)

	targetErrorStyle = lipgloss.NewStyle().
			Foreground(style.Red)

	selectedStyle = lipgloss.NewStyle().
			Foreground(style.Ember).
			Bold(true)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1).
			Background(style.Ember).
			Foreground(style.White)

	failureTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Padding(0, 1).
				Background(style.Red).
				Foreground(style.White)

	listStyle = lipgloss.NewStyle().
			Padding(0, 1)

	logStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(style.Slate)
)

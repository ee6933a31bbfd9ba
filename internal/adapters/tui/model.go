package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

const (
	targetListWidthRatio = 0.3
	logPaneBorderWidth   = 4
)

// TargetStatus represents the current state of a target build.
type TargetStatus string

const (
	// StatusPending indicates the target is waiting to start.
	StatusPending TargetStatus = "Pending"
	// StatusRunning indicates the target is currently building.
	StatusRunning TargetStatus = "Running"
	// StatusDone indicates the target built successfully.
	StatusDone TargetStatus = "Done"
	// StatusError indicates the target build failed.
	StatusError TargetStatus = "Error"
)

// ViewMode selects between the split dashboard and a full-screen log view.
type ViewMode string

const (
	// ViewModeList shows the target list next to the selected target's logs.
	ViewModeList ViewMode = "list"
	// ViewModeLogs shows the selected target's logs full screen.
	ViewModeLogs ViewMode = "logs"
)

// TargetNode represents a single target row in the dashboard.
type TargetNode struct {
	Name      string
	Status    TargetStatus
	Phase     string // name of the stage currently running, if any
	SpanID    string // span of the target build itself
	StartTime time.Time
	EndTime   time.Time
	Err       error
	Term      *Vterm
}

// Model represents the dashboard state.
type Model struct {
	Pipeline  string
	Targets   []*TargetNode
	TargetMap map[string]*TargetNode
	SpanMap   map[string]*TargetNode

	Output       *termenv.Output
	AutoScroll   bool
	FollowMode   bool
	ViewMode     ViewMode
	ActiveTarget string
	SelectedIdx  int
	ListOffset   int
	ListHeight   int
	LogWidth     int
	LogHeight    int

	Now          time.Time
	TickInterval time.Duration
	DisableTick  bool
}

type tickMsg time.Time

func (m *Model) tickCmd() tea.Cmd {
	interval := m.TickInterval
	if interval <= 0 {
		interval = defaultTickInterval * time.Millisecond
	}
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Init starts the clock that drives elapsed time display.
func (m *Model) Init() tea.Cmd {
	if m.DisableTick {
		return nil
	}
	return m.tickCmd()
}

func (m *Model) ensureVisible() {
	if m.ListHeight <= 0 {
		return
	}
	if m.SelectedIdx < m.ListOffset {
		m.ListOffset = m.SelectedIdx
	} else if m.SelectedIdx >= m.ListOffset+m.ListHeight {
		m.ListOffset = m.SelectedIdx - m.ListHeight + 1
	}
}

func (m *Model) getSelectedTarget() *TargetNode {
	if m.SelectedIdx >= 0 && m.SelectedIdx < len(m.Targets) {
		return m.Targets[m.SelectedIdx]
	}
	return nil
}

func (m *Model) updateActiveView() {
	if node := m.getSelectedTarget(); node != nil {
		m.ActiveTarget = node.Name

		if m.FollowMode && m.AutoScroll {
			maxOff := node.Term.UsedHeight() - node.Term.Height
			if maxOff < 0 {
				maxOff = 0
			}
			node.Term.Offset = maxOff
		}
	}
}

// Update handles incoming messages and updates the model state.
//
//nolint:cyclop,gocritic // hugeParam ignored, cyclop ignored
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tickMsg:
		m.Now = time.Time(msg)
		if !m.DisableTick {
			cmd = m.tickCmd()
		}

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "k", "up":
			if m.ViewMode == ViewModeLogs {
				m.forwardToActiveTerm(msg)
				break
			}
			if m.SelectedIdx > 0 {
				m.SelectedIdx--
				m.FollowMode = false
				m.ensureVisible()
				m.updateActiveView()
			}
		case "j", "down":
			if m.ViewMode == ViewModeLogs {
				m.forwardToActiveTerm(msg)
				break
			}
			if m.SelectedIdx < len(m.Targets)-1 {
				m.SelectedIdx++
				m.FollowMode = false
				m.ensureVisible()
				m.updateActiveView()
			}
		case "enter":
			if m.ViewMode == ViewModeLogs {
				m.ViewMode = ViewModeList
			} else if m.getSelectedTarget() != nil {
				m.ViewMode = ViewModeLogs
				m.updateActiveView()
			}
		case "esc":
			m.ViewMode = ViewModeList
			m.FollowMode = true
			// Jump to the currently building target if any.
			for i, t := range m.Targets {
				if t.Status == StatusRunning {
					m.SelectedIdx = i
					break
				}
			}
			m.ensureVisible()
			m.updateActiveView()

		default:
			m.forwardToActiveTerm(msg)
		}

	case tea.WindowSizeMsg:
		// Split screen: 30% for the target list, 70% for logs
		listWidth := int(float64(msg.Width) * targetListWidthRatio)
		logWidth := msg.Width - listWidth - logPaneBorderWidth // minus margins/borders

		headerHeight := lipgloss.Height(titleStyle.Render("TEST"))
		logHeight := msg.Height - headerHeight

		m.LogWidth = logWidth
		m.LogHeight = logHeight

		fullHeader := titleStyle.Render("TARGETS") + "\n\n"
		listInfoHeight := lipgloss.Height(fullHeader)
		m.ListHeight = msg.Height - listInfoHeight
		m.ensureVisible()

		for _, node := range m.Targets {
			node.Term.SetWidth(logWidth)
			node.Term.SetHeight(logHeight)
		}

	case MsgInitPlan:
		m.Pipeline = msg.Pipeline
		m.Targets = make([]*TargetNode, len(msg.Targets))
		m.TargetMap = make(map[string]*TargetNode, len(msg.Targets))
		m.SpanMap = make(map[string]*TargetNode)
		for i, name := range msg.Targets {
			term := NewVterm()
			if m.LogWidth > 0 && m.LogHeight > 0 {
				term.SetWidth(m.LogWidth)
				term.SetHeight(m.LogHeight)
			}

			m.Targets[i] = &TargetNode{
				Name:   name,
				Status: StatusPending,
				Term:   term,
			}
			m.TargetMap[name] = m.Targets[i]
		}

	case MsgSpanStart:
		if msg.ParentID == "" {
			m.onTargetStart(msg)
		} else {
			m.onStageStart(msg)
		}

	case MsgSpanLog:
		if node, ok := m.SpanMap[msg.SpanID]; ok {
			_, _ = node.Term.Write(msg.Data)
		}

	case MsgSpanEnd:
		node, ok := m.SpanMap[msg.SpanID]
		if !ok {
			break
		}
		// Stage spans only drive the phase column, the row outcome
		// comes from the target's own span.
		if node.SpanID != msg.SpanID {
			break
		}
		node.EndTime = msg.EndTime
		node.Err = msg.Err
		if msg.Err != nil {
			node.Status = StatusError
		} else {
			node.Status = StatusDone
			node.Phase = ""
		}
	}

	return m, cmd
}

func (m *Model) onTargetStart(msg MsgSpanStart) {
	node, ok := m.TargetMap[msg.Name]
	if !ok {
		return
	}

	node.Status = StatusRunning
	node.SpanID = msg.SpanID
	node.StartTime = msg.StartTime
	m.SpanMap[msg.SpanID] = node

	// Focus follows activity only while FollowMode is on
	if m.FollowMode {
		m.ActiveTarget = msg.Name
		for i, t := range m.Targets {
			if t.Name == msg.Name {
				m.SelectedIdx = i
				break
			}
		}
		m.ensureVisible()
		m.updateActiveView()
	}
}

// forwardToActiveTerm hands a key to the selected target's terminal so
// scrollback keys work in both view modes.
func (m *Model) forwardToActiveTerm(msg tea.KeyMsg) {
	if m.ActiveTarget == "" {
		return
	}
	if node, ok := m.TargetMap[m.ActiveTarget]; ok {
		node.Term.Update(msg)
	}
}

func (m *Model) onStageStart(msg MsgSpanStart) {
	node, ok := m.SpanMap[msg.ParentID]
	if !ok {
		return
	}

	node.Phase = msg.Name
	m.SpanMap[msg.SpanID] = node
}

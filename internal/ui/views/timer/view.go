package timer

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	trackerdto "focustracker/internal/modules/tracker/dto"
	"focustracker/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

// Port is the manual-timer slice of the tracker use-case.
type Port interface {
	Start(ctx context.Context) (trackerdto.StateOutput, error)
	Pause(ctx context.Context) (trackerdto.StateOutput, error)
	Resume(ctx context.Context) (trackerdto.StateOutput, error)
	Stop(ctx context.Context) (trackerdto.FinishOutput, error)
	Discard(ctx context.Context) (trackerdto.StateOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

// ChangedMsg carries the tracker state after a timer action.
type ChangedMsg struct {
	State    trackerdto.StateOutput
	Recorded *trackerdto.Session
	Err      error
}

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	port   Port
	state  trackerdto.StateOutput
	width  int
	height int
}

func New(port Port) Model {
	return Model{port: port}
}

func (m Model) Init() tea.Cmd { return nil }

// SetState replaces the displayed tracker state.
func (m *Model) SetState(state trackerdto.StateOutput) { m.state = state }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case tea.KeyMsg:
		switch msg.String() {
		case "s":
			return m, m.run(m.port.Start)
		case " ", "p":
			if m.state.Paused {
				return m, m.run(m.port.Resume)
			}
			return m, m.run(m.port.Pause)
		case "x":
			return m, m.stopCmd()
		case "d":
			return m, m.run(m.port.Discard)
		}
	}
	return m, nil
}

func (m Model) View() string {
	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Focus Timer") + "\n")

	elapsed := "0:00"
	if m.manual() {
		elapsed = m.state.ElapsedLabel
	}
	sb.WriteString(theme.Clock.Render(elapsed) + "\n")

	switch {
	case m.manual() && m.state.Running:
		sb.WriteString(theme.Running.Render("● running"))
	case m.manual() && m.state.Paused:
		sb.WriteString(theme.Paused.Render("❚❚ paused"))
	case m.state.Running || m.state.Paused:
		sb.WriteString(theme.Muted.Render("a pomodoro phase is active"))
	default:
		sb.WriteString(theme.Muted.Render("idle"))
	}
	sb.WriteString("\n\n")
	sb.WriteString(theme.Muted.Render(fmt.Sprintf("%d sessions recorded", m.state.SessionCount)) + "\n\n")
	sb.WriteString(theme.Muted.Render("s: start  space: pause/resume  x: stop & record  d: discard"))

	pane := theme.Pane.Render(sb.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, pane)
}

// ─── private ─────────────────────────────────────────────────────────────────

func (m Model) manual() bool {
	return m.state.Kind == "manual"
}

func (m Model) run(action func(context.Context) (trackerdto.StateOutput, error)) tea.Cmd {
	return func() tea.Msg {
		state, err := action(context.Background())
		return ChangedMsg{State: state, Err: err}
	}
}

func (m Model) stopCmd() tea.Cmd {
	return func() tea.Msg {
		out, err := m.port.Stop(context.Background())
		return ChangedMsg{State: out.State, Recorded: out.Recorded, Err: err}
	}
}

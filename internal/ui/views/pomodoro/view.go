package pomodoro

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	trackerdto "focustracker/internal/modules/tracker/dto"
	"focustracker/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

// Port is the pomodoro slice of the tracker use-case.
type Port interface {
	Start(ctx context.Context) (trackerdto.StateOutput, error)
	Pause(ctx context.Context) (trackerdto.StateOutput, error)
	Resume(ctx context.Context) (trackerdto.StateOutput, error)
	Stop(ctx context.Context) (trackerdto.StateOutput, error)
	SetPhase(ctx context.Context, phase string) (trackerdto.StateOutput, error)
	ResetPomodoroCount(ctx context.Context) (trackerdto.StateOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

// ChangedMsg carries the tracker state after a pomodoro action.
type ChangedMsg struct {
	State trackerdto.StateOutput
	Err   error
}

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	port   Port
	state  trackerdto.StateOutput
	bar    progress.Model
	width  int
	height int
}

func New(port Port) Model {
	bar := progress.New(progress.WithoutPercentage(), progress.WithWidth(40))
	return Model{port: port, bar: bar}
}

func (m Model) Init() tea.Cmd { return nil }

func (m *Model) SetState(state trackerdto.StateOutput) {
	m.state = state
	m.bar.FullColor = string(theme.PhaseColor(state.Phase))
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.bar.Width = min(max(m.width/2, 20), 60)
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
			return m, m.run(m.port.Stop)
		case "1":
			return m, m.phaseCmd("focus")
		case "2":
			return m, m.phaseCmd("short-break")
		case "3":
			return m, m.phaseCmd("long-break")
		case "c":
			return m, m.run(m.port.ResetPomodoroCount)
		}
	}
	return m, nil
}

func (m Model) View() string {
	s := m.state
	var sb strings.Builder
	sb.WriteString(theme.Phase(s.Phase).Render(s.PhaseLabel) + "\n")

	remaining := s.RemainingLabel
	if remaining == "" {
		remaining = "0:00"
	}
	sb.WriteString(theme.Clock.Render(remaining) + "\n")
	sb.WriteString(m.bar.ViewAs(m.fraction()) + "\n\n")

	switch {
	case m.active() && s.Running:
		sb.WriteString(theme.Running.Render("● running"))
	case m.active() && s.Paused:
		sb.WriteString(theme.Paused.Render("❚❚ paused"))
	case s.Running || s.Paused:
		sb.WriteString(theme.Muted.Render("the manual timer is active"))
	default:
		sb.WriteString(theme.Muted.Render("ready"))
	}
	sb.WriteString("\n\n")
	sb.WriteString(fmt.Sprintf("Next: %s\n", s.Upcoming))
	sb.WriteString(fmt.Sprintf("Completed focus sessions: %d\n", s.PomodoroCount))
	set := s.Settings
	sb.WriteString(theme.Muted.Render(fmt.Sprintf("%d / %d / %d min, long break every %d", set.FocusMinutes, set.ShortBreakMinutes, set.LongBreakMinutes, set.SessionsUntilLongBreak)) + "\n\n")
	sb.WriteString(theme.Muted.Render("s: start  space: pause/resume  x: stop  1/2/3: phase  c: reset count"))

	pane := theme.Pane.BorderForeground(theme.PhaseColor(s.Phase)).Render(sb.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, pane)
}

// ─── private ─────────────────────────────────────────────────────────────────

func (m Model) active() bool {
	return m.state.Kind == "pomodoro"
}

func (m Model) fraction() float64 {
	total := m.state.PhaseLength
	if total <= 0 || !m.active() {
		return 0
	}
	f := float64(m.state.Elapsed) / float64(total)
	if f > 1 {
		return 1
	}
	return f
}

func (m Model) run(action func(context.Context) (trackerdto.StateOutput, error)) tea.Cmd {
	return func() tea.Msg {
		state, err := action(context.Background())
		return ChangedMsg{State: state, Err: err}
	}
}

func (m Model) phaseCmd(phase string) tea.Cmd {
	return func() tea.Msg {
		state, err := m.port.SetPhase(context.Background(), phase)
		return ChangedMsg{State: state, Err: err}
	}
}

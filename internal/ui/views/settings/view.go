package settings

import (
	"context"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	trackerdto "focustracker/internal/modules/tracker/dto"
	"focustracker/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type Port interface {
	Settings(ctx context.Context) (trackerdto.Settings, error)
	SetSetting(ctx context.Context, key, value string) (trackerdto.StateOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

type LoadedMsg struct {
	Settings trackerdto.Settings
	Err      error
}

// SavedMsg reports the outcome of saving every field.
type SavedMsg struct {
	State trackerdto.StateOutput
	Err   error
}

// ─── model ───────────────────────────────────────────────────────────────────

type field struct {
	key   string
	label string
	unit  string
}

var fields = []field{
	{key: "focus", label: "Focus duration", unit: "min"},
	{key: "short-break", label: "Short break", unit: "min"},
	{key: "long-break", label: "Long break", unit: "min"},
	{key: "long-break-every", label: "Long break every", unit: "sessions"},
	{key: "auto-start", label: "Auto-start next phase", unit: "true/false"},
}

type Model struct {
	port    Port
	inputs  []textinput.Model
	focus   int
	editing bool
	message string
	width   int
	height  int
}

func New(port Port) Model {
	inputs := make([]textinput.Model, len(fields))
	for i := range fields {
		ti := textinput.New()
		ti.CharLimit = 5
		ti.Width = 8
		ti.Prompt = ""
		inputs[i] = ti
	}
	return Model{port: port, inputs: inputs}
}

func (m Model) Init() tea.Cmd {
	if m.port == nil {
		return nil
	}
	return m.loadCmd()
}

// Editing reports whether a field has keyboard focus.
func (m Model) Editing() bool { return m.editing }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case LoadedMsg:
		if msg.Err != nil {
			m.message = "load failed: " + msg.Err.Error()
			return m, nil
		}
		m.fill(msg.Settings)
		return m, nil

	case SavedMsg:
		if msg.Err != nil {
			m.message = msg.Err.Error()
			return m, nil
		}
		m.fill(msg.State.Settings)
		m.message = "settings saved"
		if msg.State.Warning != "" {
			m.message = msg.State.Warning
		}
		return m, nil

	case tea.KeyMsg:
		if !m.editing {
			switch msg.String() {
			case "e", "enter":
				m.editing = true
				m.message = ""
				return m, m.inputs[m.focus].Focus()
			case "up", "k":
				m.focus = (m.focus + len(m.inputs) - 1) % len(m.inputs)
			case "down", "j":
				m.focus = (m.focus + 1) % len(m.inputs)
			}
			return m, nil
		}
		switch msg.String() {
		case "esc":
			m.editing = false
			m.inputs[m.focus].Blur()
			return m, m.loadCmd()
		case "enter":
			m.editing = false
			m.inputs[m.focus].Blur()
			return m, m.saveCmd()
		case "tab", "down":
			return m, m.moveFocus(1)
		case "shift+tab", "up":
			return m, m.moveFocus(-1)
		}
		var cmd tea.Cmd
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) View() string {
	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Pomodoro Settings") + "\n\n")
	for i, f := range fields {
		cursor := "  "
		label := theme.Muted.Render(f.label)
		if i == m.focus {
			cursor = theme.Hot.Render("› ")
			label = f.label
		}
		sb.WriteString(cursor + lipgloss.NewStyle().Width(24).Render(label) + m.inputs[i].View() + " " + theme.Muted.Render(f.unit) + "\n")
	}
	sb.WriteString("\n")
	if m.message != "" {
		sb.WriteString(theme.Warn.Render(m.message) + "\n\n")
	}
	if m.editing {
		sb.WriteString(theme.Muted.Render("tab/↑/↓: field  enter: save  esc: cancel"))
	} else {
		sb.WriteString(theme.Muted.Render("↑/↓: field  e: edit  :export / :import <file> from the palette"))
	}
	pane := theme.Pane.Render(sb.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, pane)
}

// ─── private ─────────────────────────────────────────────────────────────────

func (m *Model) moveFocus(delta int) tea.Cmd {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + len(m.inputs) + delta) % len(m.inputs)
	return m.inputs[m.focus].Focus()
}

func (m *Model) fill(s trackerdto.Settings) {
	values := []string{
		strconv.Itoa(s.FocusMinutes),
		strconv.Itoa(s.ShortBreakMinutes),
		strconv.Itoa(s.LongBreakMinutes),
		strconv.Itoa(s.SessionsUntilLongBreak),
		strconv.FormatBool(s.AutoStartNext),
	}
	for i, v := range values {
		m.inputs[i].SetValue(v)
	}
}

func (m Model) loadCmd() tea.Cmd {
	return func() tea.Msg {
		s, err := m.port.Settings(context.Background())
		return LoadedMsg{Settings: s, Err: err}
	}
}

// saveCmd applies every field in order and stops at the first rejected one.
func (m Model) saveCmd() tea.Cmd {
	values := make([]string, len(m.inputs))
	for i, in := range m.inputs {
		values[i] = in.Value()
	}
	return func() tea.Msg {
		var state trackerdto.StateOutput
		for i, f := range fields {
			out, err := m.port.SetSetting(context.Background(), f.key, values[i])
			if err != nil {
				return SavedMsg{Err: err}
			}
			state = out
		}
		return SavedMsg{State: state}
	}
}

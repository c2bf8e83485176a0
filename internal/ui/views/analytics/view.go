package analytics

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"focustracker/internal/ui/theme"
)

// Port renders the analytics overview as markdown.
type Port interface {
	Report(ctx context.Context) (string, error)
}

// LoadedMsg is sent when a report has been produced.
type LoadedMsg struct {
	Markdown string
	Err      error
}

type Model struct {
	port     Port
	viewport viewport.Model
	spinner  spinner.Model
	renderer *glamour.TermRenderer
	markdown string
	loading  bool
	width    int
	height   int
}

func New(port Port) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Lavender)
	r, _ := glamour.NewTermRenderer(glamour.WithStylePath("dark"), glamour.WithWordWrap(0))
	return Model{port: port, viewport: viewport.New(0, 0), spinner: sp, renderer: r}
}

func (m Model) Init() tea.Cmd { return nil }

// Refresh reloads the report.
func (m *Model) Refresh() tea.Cmd {
	if m.port == nil {
		return nil
	}
	m.loading = true
	return tea.Batch(m.loadCmd(), m.spinner.Tick)
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = m.width
		m.viewport.Height = max(m.height-1, 1)
		if r, err := glamour.NewTermRenderer(glamour.WithStylePath("dark"), glamour.WithWordWrap(m.width)); err == nil {
			m.renderer = r
		}
		if m.markdown != "" {
			m.viewport.SetContent(m.render())
		}

	case LoadedMsg:
		m.loading = false
		if msg.Err != nil {
			m.viewport.SetContent(theme.Hot.Render("Error: " + msg.Err.Error()))
			return m, nil
		}
		m.markdown = msg.Markdown
		m.viewport.SetContent(m.render())
		m.viewport.GotoTop()

	case spinner.TickMsg:
		if m.loading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}

	case tea.KeyMsg:
		if msg.String() == "r" {
			cmds = append(cmds, m.Refresh())
		}
	}

	var vCmd tea.Cmd
	m.viewport, vCmd = m.viewport.Update(msg)
	cmds = append(cmds, vCmd)
	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	if m.loading && m.markdown == "" {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.spinner.View()+" Crunching numbers…")
	}
	footer := theme.Muted.Render("r: refresh  ↑/↓: scroll")
	return lipgloss.JoinVertical(lipgloss.Left, m.viewport.View(), footer)
}

func (m Model) render() string {
	if m.renderer == nil {
		return m.markdown
	}
	out, err := m.renderer.Render(m.markdown)
	if err != nil {
		return m.markdown
	}
	return out
}

func (m Model) loadCmd() tea.Cmd {
	return func() tea.Msg {
		md, err := m.port.Report(context.Background())
		return LoadedMsg{Markdown: md, Err: err}
	}
}

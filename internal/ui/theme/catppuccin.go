package theme

import "github.com/charmbracelet/lipgloss"

// Catppuccin mocha.
var (
	Base     = lipgloss.Color("#1e1e2e")
	Mantle   = lipgloss.Color("#181825")
	Surface0 = lipgloss.Color("#313244")
	Surface1 = lipgloss.Color("#45475a")
	Text     = lipgloss.Color("#cdd6f4")
	Subtext0 = lipgloss.Color("#a6adc8")
	Lavender = lipgloss.Color("#b4befe")
	Sapphire = lipgloss.Color("#74c7ec")
	Blue     = lipgloss.Color("#89b4fa")
	Green    = lipgloss.Color("#a6e3a1")
	Red      = lipgloss.Color("#f38ba8")
	Yellow   = lipgloss.Color("#f9e2af")
	Peach    = lipgloss.Color("#fab387")

	Pane = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Surface1).
		Foreground(Text).
		Padding(1, 3)

	Title   = lipgloss.NewStyle().Foreground(Sapphire).Bold(true)
	Muted   = lipgloss.NewStyle().Foreground(Subtext0)
	Hot     = lipgloss.NewStyle().Foreground(Peach).Bold(true)
	Warn    = lipgloss.NewStyle().Foreground(Yellow)
	Clock   = lipgloss.NewStyle().Foreground(Text).Bold(true).Padding(1, 0)
	Running = lipgloss.NewStyle().Foreground(Green).Bold(true)
	Paused  = lipgloss.NewStyle().Foreground(Yellow).Bold(true)
)

// PhaseColor is the accent for a pomodoro phase: red while focusing, green
// for a short break, blue for a long one.
func PhaseColor(phase string) lipgloss.Color {
	switch phase {
	case "short-break":
		return Green
	case "long-break":
		return Blue
	default:
		return Red
	}
}

func Phase(phase string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(PhaseColor(phase)).Bold(true)
}

package components

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestPaletteCompletesCommandWord(t *testing.T) {
	t.Parallel()
	p := NewPalette(Hints)
	p.Open()
	p.input.SetValue("pomodoro:ph")

	p, _ = p.Update(tea.KeyMsg{Type: tea.KeyTab})
	if got := p.input.Value(); got != "pomodoro:phase " {
		t.Fatalf("unexpected completion %q", got)
	}
}

func TestPaletteSubmitTrimsAndCloses(t *testing.T) {
	t.Parallel()
	p := NewPalette(Hints)
	p.Open()
	p.input.SetValue("  export /tmp  ")

	p, cmd := p.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if p.Visible() {
		t.Fatalf("palette should close on enter")
	}
	msg, ok := cmd().(PaletteSubmitMsg)
	if !ok || msg.Input != "export /tmp" {
		t.Fatalf("unexpected submit %#v", msg)
	}
}

func TestPaletteEscCancels(t *testing.T) {
	t.Parallel()
	p := NewPalette(Hints)
	p.Open()
	p, cmd := p.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if p.Visible() {
		t.Fatalf("palette should close on esc")
	}
	if _, ok := cmd().(PaletteCancelMsg); !ok {
		t.Fatalf("expected cancel message")
	}
}

func TestClosedPaletteIgnoresKeys(t *testing.T) {
	t.Parallel()
	p := NewPalette(Hints)
	if _, cmd := p.Update(tea.KeyMsg{Type: tea.KeyEnter}); cmd != nil {
		t.Fatalf("closed palette should not emit commands")
	}
}

package app

import (
	"context"
	"errors"
	"testing"
	"time"

	trackerdto "focustracker/internal/modules/tracker/dto"
	transferdto "focustracker/internal/modules/transfer/dto"
	"focustracker/internal/ui/components"
)

type fakeTracker struct {
	state    trackerdto.StateOutput
	started  []string
	ticks    int
	discards int
	phase    string
}

func (f *fakeTracker) Status(context.Context) (trackerdto.StateOutput, error) { return f.state, nil }
func (f *fakeTracker) Start(_ context.Context, kind string) (trackerdto.StateOutput, error) {
	f.started = append(f.started, kind)
	f.state.Running = true
	f.state.Kind = kind
	return f.state, nil
}
func (f *fakeTracker) Pause(context.Context) (trackerdto.StateOutput, error)  { return f.state, nil }
func (f *fakeTracker) Resume(context.Context) (trackerdto.StateOutput, error) { return f.state, nil }
func (f *fakeTracker) Stop(context.Context) (trackerdto.FinishOutput, error) {
	return trackerdto.FinishOutput{State: f.state}, nil
}
func (f *fakeTracker) Discard(context.Context) (trackerdto.StateOutput, error) {
	f.discards++
	f.state.Running = false
	return f.state, nil
}
func (f *fakeTracker) Tick(context.Context) (trackerdto.TickOutput, error) {
	f.ticks++
	return trackerdto.TickOutput{State: f.state}, nil
}
func (f *fakeTracker) SetPhase(_ context.Context, phase string) (trackerdto.StateOutput, error) {
	f.phase = phase
	return f.state, nil
}
func (f *fakeTracker) ResetPomodoroCount(context.Context) (trackerdto.StateOutput, error) {
	return f.state, nil
}
func (f *fakeTracker) Settings(context.Context) (trackerdto.Settings, error) {
	return f.state.Settings, nil
}
func (f *fakeTracker) SetSetting(context.Context, string, string) (trackerdto.StateOutput, error) {
	return f.state, nil
}
func (f *fakeTracker) Reset(context.Context) (trackerdto.StateOutput, error) {
	return trackerdto.StateOutput{}, nil
}

type fakeTransfer struct {
	exportDir string
	err       error
}

func (f *fakeTransfer) Export(_ context.Context, dir string) (transferdto.ExportOutput, error) {
	f.exportDir = dir
	return transferdto.ExportOutput{Path: dir + "/focus_data.json", Sessions: 2}, f.err
}
func (f *fakeTransfer) Import(context.Context, string) (transferdto.ImportOutput, error) {
	return transferdto.ImportOutput{Message: "Invalid data format"}, errors.New("invalid import")
}

type fakeReport struct{}

func (fakeReport) Report(context.Context) (string, error) { return "# report", nil }

func newTestModel(tr *fakeTracker, tf *fakeTransfer) Model {
	return NewModel("/data", tr, fakeReport{}, tf)
}

func TestRunningStateSchedulesSingleTick(t *testing.T) {
	t.Parallel()
	m := newTestModel(&fakeTracker{}, &fakeTransfer{})

	if cmd := m.applyState(trackerdto.StateOutput{Running: true}); cmd == nil {
		t.Fatalf("expected tick to be scheduled for running state")
	}
	if !m.ticking || m.tickGen != 1 {
		t.Fatalf("unexpected tick bookkeeping: ticking=%v gen=%d", m.ticking, m.tickGen)
	}
	if cmd := m.applyState(trackerdto.StateOutput{Running: true}); cmd != nil {
		t.Fatalf("second running state must not schedule another tick")
	}
}

func TestIdleStateDoesNotTick(t *testing.T) {
	t.Parallel()
	m := newTestModel(&fakeTracker{}, &fakeTransfer{})
	if cmd := m.applyState(trackerdto.StateOutput{Paused: true}); cmd != nil {
		t.Fatalf("paused state must not tick")
	}
}

func TestStaleTickIgnored(t *testing.T) {
	t.Parallel()
	tr := &fakeTracker{}
	m := newTestModel(tr, &fakeTransfer{})
	m.tickGen = 3

	next, cmd := m.Update(tickMsg{gen: 2})
	if cmd != nil {
		t.Fatalf("stale tick should produce no command")
	}
	if next.(Model).tickGen != 3 {
		t.Fatalf("stale tick changed generation")
	}

	next, cmd = m.Update(tickMsg{gen: 3})
	if cmd == nil {
		t.Fatalf("current tick should run the tracker tick")
	}
	if next.(Model).ticking {
		t.Fatalf("ticking flag should clear once the tick fires")
	}
	if msg := cmd(); msg.(tickedMsg).err != nil || tr.ticks != 1 {
		t.Fatalf("expected one tracker tick, got %d", tr.ticks)
	}
}

func TestPhaseOutcomeSchedulesAutoStart(t *testing.T) {
	t.Parallel()
	tr := &fakeTracker{}
	m := newTestModel(tr, &fakeTransfer{})

	next, cmd := m.Update(tickedMsg{out: trackerdto.TickOutput{
		State: trackerdto.StateOutput{Kind: "pomodoro", Phase: "short-break"},
		Outcome: &trackerdto.PhaseOutcomeOutput{
			Completed:      "focus",
			Next:           "short-break",
			Message:        "Focus complete! Time for a short break.",
			AutoStart:      true,
			AutoStartAfter: time.Millisecond,
		},
	}})
	got := next.(Model)
	if cmd == nil || !got.pending {
		t.Fatalf("expected pending auto-start, pending=%v", got.pending)
	}
	if got.status != "Focus complete! Time for a short break." {
		t.Fatalf("unexpected status %q", got.status)
	}

	next, cmd = got.Update(autoStartMsg{})
	if cmd == nil || next.(Model).pending {
		t.Fatalf("auto-start should fire once")
	}
	cmd()
	if len(tr.started) != 1 || tr.started[0] != "pomodoro" {
		t.Fatalf("expected pomodoro start, got %v", tr.started)
	}
}

func TestCancelledAutoStartIsDropped(t *testing.T) {
	t.Parallel()
	m := newTestModel(&fakeTracker{}, &fakeTransfer{})
	if _, cmd := m.Update(autoStartMsg{}); cmd != nil {
		t.Fatalf("auto-start without pending flag must be ignored")
	}
}

func TestPaletteCommands(t *testing.T) {
	t.Parallel()
	tr := &fakeTracker{}
	tf := &fakeTransfer{}
	m := newTestModel(tr, tf)

	next, cmd := m.Update(components.PaletteSubmitMsg{Input: "export"})
	if cmd == nil {
		t.Fatalf("export should return a command")
	}
	msg := cmd().(exportedMsg)
	if tf.exportDir != "/data" || msg.out.Sessions != 2 {
		t.Fatalf("unexpected export: dir=%q out=%+v", tf.exportDir, msg.out)
	}
	next, _ = next.Update(msg)
	if next.(Model).status != "exported 2 sessions to /data/focus_data.json" {
		t.Fatalf("unexpected status %q", next.(Model).status)
	}

	_, cmd = m.Update(components.PaletteSubmitMsg{Input: "pomodoro:phase long-break"})
	cmd()
	if tr.phase != "long-break" {
		t.Fatalf("expected phase long-break, got %q", tr.phase)
	}

	_, cmd = m.Update(components.PaletteSubmitMsg{Input: "pomodoro:stop"})
	cmd()
	if tr.discards != 1 {
		t.Fatalf("pomodoro stop should discard the running phase")
	}

	next, _ = m.Update(components.PaletteSubmitMsg{Input: "frobnicate"})
	if next.(Model).status != "unknown command: frobnicate" {
		t.Fatalf("unexpected status %q", next.(Model).status)
	}
}

func TestImportFailureShowsUserMessage(t *testing.T) {
	t.Parallel()
	m := newTestModel(&fakeTracker{}, &fakeTransfer{})
	_, cmd := m.Update(components.PaletteSubmitMsg{Input: "import /tmp/bad.json"})
	msg := cmd()
	next, _ := m.Update(msg)
	if next.(Model).status != "Invalid data format" {
		t.Fatalf("unexpected status %q", next.(Model).status)
	}
}

func TestTimerBridgeFixesKind(t *testing.T) {
	t.Parallel()
	tr := &fakeTracker{}
	if _, err := (timerPortBridge{p: tr}).Start(context.Background()); err != nil {
		t.Fatalf("start: %v", err)
	}
	if _, err := (pomodoroPortBridge{p: tr}).Start(context.Background()); err != nil {
		t.Fatalf("start: %v", err)
	}
	if len(tr.started) != 2 || tr.started[0] != "manual" || tr.started[1] != "pomodoro" {
		t.Fatalf("unexpected kinds %v", tr.started)
	}
}

package domain

import "time"

// Action is the closed set of transitions Reduce understands. Implementations
// outside this package cannot satisfy it.
type Action interface {
	isAction()
}

type StartTimer struct {
	Kind      SessionKind
	Now       time.Time
	SessionID string
}

type PauseTimer struct {
	Now time.Time
}

type ResumeTimer struct {
	Now time.Time
}

type StopTimer struct{}

type CompleteSession struct {
	Session FocusSession
}

type UpdateSettings struct {
	Settings PomodoroSettings
}

type SetPomodoroPhase struct {
	Phase Phase
}

type IncrementPomodoroCount struct{}

type ResetPomodoroCount struct{}

type ImportData struct {
	Sessions []FocusSession
	Settings PomodoroSettings
}

type LoadState struct {
	State AppState
}

func (StartTimer) isAction()             {}
func (PauseTimer) isAction()             {}
func (ResumeTimer) isAction()            {}
func (StopTimer) isAction()              {}
func (CompleteSession) isAction()        {}
func (UpdateSettings) isAction()         {}
func (SetPomodoroPhase) isAction()       {}
func (IncrementPomodoroCount) isAction() {}
func (ResetPomodoroCount) isAction()     {}
func (ImportData) isAction()             {}
func (LoadState) isAction()              {}

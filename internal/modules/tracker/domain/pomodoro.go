package domain

import "time"

// AutoStartDelay separates a phase completion from the automatic start of the
// next phase so the completion notice is visible first.
const AutoStartDelay = time.Second

func PhaseDuration(settings PomodoroSettings, phase Phase) time.Duration {
	switch phase {
	case PhaseShortBreak:
		return time.Duration(settings.ShortBreakDuration) * time.Minute
	case PhaseLongBreak:
		return time.Duration(settings.LongBreakDuration) * time.Minute
	default:
		return time.Duration(settings.FocusDuration) * time.Minute
	}
}

// LongBreakDue reports whether the focus phase finishing now, with count
// focus phases already completed, earns a long break.
func LongBreakDue(count int, settings PomodoroSettings) bool {
	every := settings.SessionsUntilLongBreak
	if every < 1 {
		return false
	}
	return (count+1)%every == 0
}

func NextPhase(current Phase, count int, settings PomodoroSettings) Phase {
	if current != PhaseFocus {
		return PhaseFocus
	}
	if LongBreakDue(count, settings) {
		return PhaseLongBreak
	}
	return PhaseShortBreak
}

// PhaseLabel is the display name of a phase.
func PhaseLabel(p Phase) string {
	switch p {
	case PhaseShortBreak:
		return "Short Break"
	case PhaseLongBreak:
		return "Long Break"
	default:
		return "Focus Time"
	}
}

// UpcomingLabel names what follows the current phase.
func UpcomingLabel(current Phase, count int, settings PomodoroSettings) string {
	if current != PhaseFocus {
		return "Focus"
	}
	if LongBreakDue(count, settings) {
		return "Long Break"
	}
	return "Short Break"
}

type PhaseOutcome struct {
	Completed Phase
	Next      Phase
	Session   *FocusSession
	AutoStart bool
}

// Message is the notification text for the completed phase.
func (o PhaseOutcome) Message() string {
	if o.Completed == PhaseFocus {
		return "Focus session complete! Time for a break."
	}
	return "Break time over! Ready to focus?"
}

// PhaseComplete reports whether the running pomodoro phase has used up its
// configured duration at now.
func PhaseComplete(state AppState, now time.Time) bool {
	t := state.TimerState
	if !t.IsRunning || t.CurrentSession == nil || t.CurrentSession.Type != KindPomodoro {
		return false
	}
	return t.Elapsed(now) >= PhaseDuration(state.PomodoroSettings, state.CurrentPomodoroPhase)
}

// CompletePhase records a finished focus phase, advances the phase and leaves
// the timer idle. When the outcome asks for auto-start the caller starts the
// next phase after AutoStartDelay.
func CompletePhase(state AppState, now time.Time) (AppState, PhaseOutcome) {
	settings := state.PomodoroSettings
	count := state.PomodoroSessionCount
	current := state.CurrentPomodoroPhase
	outcome := PhaseOutcome{
		Completed: current,
		Next:      NextPhase(current, count, settings),
		AutoStart: settings.AutoStartNext,
	}

	if current == PhaseFocus && state.TimerState.CurrentSession != nil {
		cs := state.TimerState.CurrentSession
		breakMinutes := settings.ShortBreakDuration
		if LongBreakDue(count, settings) {
			breakMinutes = settings.LongBreakDuration
		}
		session := FocusSession{
			ID:            cs.ID,
			Date:          cs.Date,
			Start:         cs.Start,
			End:           Timestamp(now),
			Duration:      state.TimerState.Elapsed(now).Milliseconds(),
			Type:          KindPomodoro,
			FocusDuration: intPtr(settings.FocusDuration),
			BreakDuration: intPtr(breakMinutes),
		}
		state = Reduce(state, CompleteSession{Session: session})
		state = Reduce(state, IncrementPomodoroCount{})
		outcome.Session = &session
	}

	state = Reduce(state, SetPomodoroPhase{Phase: outcome.Next})
	state = Reduce(state, StopTimer{})
	return state, outcome
}

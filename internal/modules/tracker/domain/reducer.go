package domain

// Reduce returns the state that follows action. It performs no I/O and never
// fails; actions it does not recognise leave the state unchanged.
func Reduce(state AppState, action Action) AppState {
	switch a := action.(type) {
	case StartTimer:
		if state.TimerState.IsRunning {
			return state
		}
		state.TimerState = TimerState{
			IsRunning:  true,
			StartTime:  millis(a.Now),
			PausedTime: 0,
			CurrentSession: &CurrentSession{
				ID:    a.SessionID,
				Type:  a.Kind,
				Start: Timestamp(a.Now),
				Date:  DateOf(a.Now),
			},
		}
		return state

	case PauseTimer:
		t := state.TimerState
		if !t.IsRunning {
			return state
		}
		if t.StartTime != nil {
			t.PausedTime = a.Now.UnixMilli() - *t.StartTime
		}
		t.IsRunning = false
		t.IsPaused = true
		t.StartTime = nil
		state.TimerState = t
		return state

	case ResumeTimer:
		t := state.TimerState
		if !t.IsPaused {
			return state
		}
		paused := t.Elapsed(a.Now)
		t.IsRunning = true
		t.IsPaused = false
		t.StartTime = millis(a.Now.Add(-paused))
		state.TimerState = t
		return state

	case StopTimer:
		state.TimerState = IdleTimer()
		return state

	case CompleteSession:
		sessions := make([]FocusSession, len(state.Sessions), len(state.Sessions)+1)
		copy(sessions, state.Sessions)
		state.Sessions = append(sessions, a.Session)
		state.TimerState = IdleTimer()
		return state

	case UpdateSettings:
		state.PomodoroSettings = a.Settings
		return state

	case SetPomodoroPhase:
		state.CurrentPomodoroPhase = a.Phase
		return state

	case IncrementPomodoroCount:
		state.PomodoroSessionCount++
		return state

	case ResetPomodoroCount:
		state.PomodoroSessionCount = 0
		return state

	case ImportData:
		sessions := make([]FocusSession, len(a.Sessions))
		copy(sessions, a.Sessions)
		state.Sessions = sessions
		state.PomodoroSettings = a.Settings
		return state

	case LoadState:
		return a.State

	default:
		return state
	}
}

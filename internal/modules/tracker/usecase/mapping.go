package usecase

import (
	"time"

	"focustracker/internal/modules/tracker/domain"
	"focustracker/internal/modules/tracker/dto"
)

func toSessionDTO(s domain.FocusSession) dto.Session {
	return dto.Session{
		ID:           s.ID,
		Date:         s.Date,
		Start:        s.Start,
		End:          s.End,
		DurationMS:   s.Duration,
		Type:         string(s.Type),
		FocusMinutes: copyInt(s.FocusDuration),
		BreakMinutes: copyInt(s.BreakDuration),
	}
}

func fromSessionDTO(s dto.Session) domain.FocusSession {
	return domain.FocusSession{
		ID:            s.ID,
		Date:          s.Date,
		Start:         s.Start,
		End:           s.End,
		Duration:      s.DurationMS,
		Type:          domain.SessionKind(s.Type),
		FocusDuration: copyInt(s.FocusMinutes),
		BreakDuration: copyInt(s.BreakMinutes),
	}
}

func toSettingsDTO(s domain.PomodoroSettings) dto.Settings {
	return dto.Settings{
		FocusMinutes:           s.FocusDuration,
		ShortBreakMinutes:      s.ShortBreakDuration,
		LongBreakMinutes:       s.LongBreakDuration,
		AutoStartNext:          s.AutoStartNext,
		SessionsUntilLongBreak: s.SessionsUntilLongBreak,
	}
}

func fromSettingsDTO(s dto.Settings) domain.PomodoroSettings {
	return domain.PomodoroSettings{
		FocusDuration:          s.FocusMinutes,
		ShortBreakDuration:     s.ShortBreakMinutes,
		LongBreakDuration:      s.LongBreakMinutes,
		AutoStartNext:          s.AutoStartNext,
		SessionsUntilLongBreak: s.SessionsUntilLongBreak,
	}
}

func toStateDTO(state domain.AppState, now time.Time) dto.StateOutput {
	t := state.TimerState
	out := dto.StateOutput{
		Running:       t.IsRunning,
		Paused:        t.IsPaused,
		Elapsed:       t.Elapsed(now),
		Phase:         string(state.CurrentPomodoroPhase),
		PhaseLabel:    domain.PhaseLabel(state.CurrentPomodoroPhase),
		Upcoming:      domain.UpcomingLabel(state.CurrentPomodoroPhase, state.PomodoroSessionCount, state.PomodoroSettings),
		PomodoroCount: state.PomodoroSessionCount,
		Settings:      toSettingsDTO(state.PomodoroSettings),
		SessionCount:  len(state.Sessions),
	}
	if t.CurrentSession != nil {
		out.Kind = string(t.CurrentSession.Type)
		out.SessionID = t.CurrentSession.ID
		out.StartedAt = t.CurrentSession.Start
	}
	out.PhaseLength = domain.PhaseDuration(state.PomodoroSettings, state.CurrentPomodoroPhase)
	remaining := out.PhaseLength
	if out.Kind == string(domain.KindPomodoro) {
		remaining -= out.Elapsed
	}
	if remaining < 0 {
		remaining = 0
	}
	out.Remaining = remaining
	out.ElapsedLabel = domain.FormatElapsed(out.Elapsed)
	out.RemainingLabel = domain.FormatElapsed(remaining)
	return out
}

func toOutcomeDTO(o domain.PhaseOutcome) *dto.PhaseOutcomeOutput {
	out := &dto.PhaseOutcomeOutput{
		Completed: string(o.Completed),
		Next:      string(o.Next),
		Message:   o.Message(),
		AutoStart: o.AutoStart,
	}
	if o.AutoStart {
		out.AutoStartAfter = domain.AutoStartDelay
	}
	if o.Session != nil {
		s := toSessionDTO(*o.Session)
		out.Session = &s
	}
	return out
}

func copyInt(v *int) *int {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

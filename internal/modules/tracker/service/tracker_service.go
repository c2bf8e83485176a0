package service

import (
	"fmt"
	"time"

	"focustracker/internal/modules/tracker/domain"
	"focustracker/internal/platform/clock"
	apperrors "focustracker/internal/platform/errors"
	"focustracker/internal/platform/id"
)

// TrackerService turns user intents into reducer actions, supplying the
// clock reads and ids the pure reducer must not produce itself.
type TrackerService struct {
	clock clock.Clock
	idGen id.Generator
}

func NewTrackerService(clock clock.Clock, idGen id.Generator) *TrackerService {
	return &TrackerService{clock: clock, idGen: idGen}
}

func (s *TrackerService) Now() time.Time {
	return s.clock.Now()
}

func (s *TrackerService) Start(state domain.AppState, kind domain.SessionKind) (domain.AppState, error) {
	if !kind.Valid() {
		return state, fmt.Errorf("%w: session kind %q", apperrors.ErrInvalidInput, kind)
	}
	if !state.TimerState.Idle() {
		return state, apperrors.ErrTimerActive
	}
	return domain.Reduce(state, domain.StartTimer{Kind: kind, Now: s.clock.Now(), SessionID: s.idGen.New()}), nil
}

func (s *TrackerService) Pause(state domain.AppState) (domain.AppState, error) {
	if !state.TimerState.IsRunning {
		return state, apperrors.ErrTimerNotRunning
	}
	return domain.Reduce(state, domain.PauseTimer{Now: s.clock.Now()}), nil
}

func (s *TrackerService) Resume(state domain.AppState) (domain.AppState, error) {
	if !state.TimerState.IsPaused {
		return state, apperrors.ErrTimerNotPaused
	}
	return domain.Reduce(state, domain.ResumeTimer{Now: s.clock.Now()}), nil
}

func (s *TrackerService) Stop(state domain.AppState) domain.AppState {
	return domain.Reduce(state, domain.StopTimer{})
}

// Finish ends the active timer. A session with tracked time is recorded;
// otherwise the timer is simply stopped.
func (s *TrackerService) Finish(state domain.AppState) (domain.AppState, *domain.FocusSession) {
	now := s.clock.Now()
	cs := state.TimerState.CurrentSession
	elapsed := state.TimerState.Elapsed(now)
	if cs == nil || elapsed <= 0 {
		return domain.Reduce(state, domain.StopTimer{}), nil
	}
	session := domain.FocusSession{
		ID:       cs.ID,
		Date:     cs.Date,
		Start:    cs.Start,
		End:      domain.Timestamp(now),
		Duration: elapsed.Milliseconds(),
		Type:     cs.Type,
	}
	if session.ID == "" {
		session.ID = s.idGen.New()
	}
	if session.Date == "" {
		session.Date = domain.DateOf(now)
	}
	if session.Start == "" {
		session.Start = domain.Timestamp(now.Add(-elapsed))
	}
	if session.Type == "" {
		session.Type = domain.KindManual
	}
	return domain.Reduce(state, domain.CompleteSession{Session: session}), &session
}

func (s *TrackerService) Complete(state domain.AppState, session domain.FocusSession) (domain.AppState, error) {
	if err := ValidateSession(session); err != nil {
		return state, err
	}
	return domain.Reduce(state, domain.CompleteSession{Session: session}), nil
}

func (s *TrackerService) UpdateSettings(state domain.AppState, settings domain.PomodoroSettings) (domain.AppState, error) {
	if err := ValidateSettings(settings); err != nil {
		return state, err
	}
	return domain.Reduce(state, domain.UpdateSettings{Settings: settings}), nil
}

func (s *TrackerService) SetPhase(state domain.AppState, phase domain.Phase) (domain.AppState, error) {
	if !phase.Valid() {
		return state, fmt.Errorf("%w: phase %q", apperrors.ErrInvalidInput, phase)
	}
	return domain.Reduce(state, domain.SetPomodoroPhase{Phase: phase}), nil
}

// Tick reads the clock once and applies the phase policy when the running
// pomodoro phase has run its course.
func (s *TrackerService) Tick(state domain.AppState) (domain.AppState, *domain.PhaseOutcome, time.Time) {
	now := s.clock.Now()
	if !domain.PhaseComplete(state, now) {
		return state, nil, now
	}
	next, outcome := domain.CompletePhase(state, now)
	return next, &outcome, now
}

func ValidateSettings(settings domain.PomodoroSettings) error {
	switch {
	case settings.FocusDuration < 1:
		return fmt.Errorf("%w: focus duration must be at least 1 minute", apperrors.ErrInvalidInput)
	case settings.ShortBreakDuration < 1:
		return fmt.Errorf("%w: short break duration must be at least 1 minute", apperrors.ErrInvalidInput)
	case settings.LongBreakDuration < 1:
		return fmt.Errorf("%w: long break duration must be at least 1 minute", apperrors.ErrInvalidInput)
	case settings.SessionsUntilLongBreak < 2:
		return fmt.Errorf("%w: sessions until long break must be at least 2", apperrors.ErrInvalidInput)
	}
	return nil
}

func ValidateSession(session domain.FocusSession) error {
	switch {
	case session.ID == "":
		return fmt.Errorf("%w: session id is required", apperrors.ErrInvalidInput)
	case session.Date == "" || session.Start == "":
		return fmt.Errorf("%w: session date and start are required", apperrors.ErrInvalidInput)
	case !session.Type.Valid():
		return fmt.Errorf("%w: session type %q", apperrors.ErrInvalidInput, session.Type)
	case session.Duration < 0:
		return fmt.Errorf("%w: session duration must be non-negative", apperrors.ErrInvalidInput)
	}
	return nil
}

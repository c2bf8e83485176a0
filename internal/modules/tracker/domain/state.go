package domain

import "time"

type SessionKind string

const (
	KindManual   SessionKind = "manual"
	KindPomodoro SessionKind = "pomodoro"
)

func (k SessionKind) Valid() bool {
	return k == KindManual || k == KindPomodoro
}

type Phase string

const (
	PhaseFocus      Phase = "focus"
	PhaseShortBreak Phase = "short-break"
	PhaseLongBreak  Phase = "long-break"
)

func (p Phase) Valid() bool {
	switch p {
	case PhaseFocus, PhaseShortBreak, PhaseLongBreak:
		return true
	default:
		return false
	}
}

const (
	DateLayout      = "2006-01-02"
	TimestampLayout = "2006-01-02T15:04:05.000Z07:00"
)

// FocusSession is a completed interval of tracked work. It is never mutated
// after it has been appended to AppState.Sessions.
type FocusSession struct {
	ID            string      `json:"id"`
	Date          string      `json:"date"`
	Start         string      `json:"start"`
	End           string      `json:"end,omitempty"`
	Duration      int64       `json:"duration"`
	Type          SessionKind `json:"type"`
	FocusDuration *int        `json:"focusDuration,omitempty"`
	BreakDuration *int        `json:"breakDuration,omitempty"`
}

type PomodoroSettings struct {
	FocusDuration          int  `json:"focusDuration"`
	ShortBreakDuration     int  `json:"shortBreakDuration"`
	LongBreakDuration      int  `json:"longBreakDuration"`
	AutoStartNext          bool `json:"autoStartNext"`
	SessionsUntilLongBreak int  `json:"sessionsUntilLongBreak"`
}

func DefaultSettings() PomodoroSettings {
	return PomodoroSettings{
		FocusDuration:          25,
		ShortBreakDuration:     5,
		LongBreakDuration:      15,
		AutoStartNext:          false,
		SessionsUntilLongBreak: 4,
	}
}

// CurrentSession is the partially built session of an active timer.
type CurrentSession struct {
	ID    string      `json:"id"`
	Type  SessionKind `json:"type"`
	Start string      `json:"start"`
	Date  string      `json:"date"`
}

// TimerState holds absolute unix milliseconds so the elapsed time can be
// recomputed from any clock read.
type TimerState struct {
	IsRunning      bool            `json:"isRunning"`
	IsPaused       bool            `json:"isPaused"`
	StartTime      *int64          `json:"startTime"`
	PausedTime     int64           `json:"pausedTime"`
	CurrentSession *CurrentSession `json:"currentSession"`
}

func IdleTimer() TimerState {
	return TimerState{}
}

func (t TimerState) Idle() bool {
	return !t.IsRunning && !t.IsPaused
}

// Elapsed is the active duration at now: rebased start for a running timer,
// the paused snapshot for a paused one, zero when idle.
func (t TimerState) Elapsed(now time.Time) time.Duration {
	switch {
	case t.IsRunning && t.StartTime != nil:
		ms := now.UnixMilli() - *t.StartTime
		if ms < 0 {
			return 0
		}
		return time.Duration(ms) * time.Millisecond
	case t.IsPaused:
		if t.PausedTime < 0 {
			return 0
		}
		return time.Duration(t.PausedTime) * time.Millisecond
	default:
		return 0
	}
}

type AppState struct {
	Sessions             []FocusSession   `json:"sessions"`
	TimerState           TimerState       `json:"timerState"`
	PomodoroSettings     PomodoroSettings `json:"pomodoroSettings"`
	CurrentPomodoroPhase Phase            `json:"currentPomodoroPhase"`
	PomodoroSessionCount int              `json:"pomodoroSessionCount"`
}

func DefaultState() AppState {
	return AppState{
		Sessions:             []FocusSession{},
		TimerState:           IdleTimer(),
		PomodoroSettings:     DefaultSettings(),
		CurrentPomodoroPhase: PhaseFocus,
	}
}

// Normalize repairs state read back from storage so the timer invariants
// hold before the first transition.
func (s AppState) Normalize() AppState {
	if s.Sessions == nil {
		s.Sessions = []FocusSession{}
	}
	if s.PomodoroSettings == (PomodoroSettings{}) {
		s.PomodoroSettings = DefaultSettings()
	}
	if !s.CurrentPomodoroPhase.Valid() {
		s.CurrentPomodoroPhase = PhaseFocus
	}
	if s.PomodoroSessionCount < 0 {
		s.PomodoroSessionCount = 0
	}
	t := s.TimerState
	if t.IsRunning && t.IsPaused {
		t.IsRunning = false
	}
	if t.IsRunning && t.StartTime == nil {
		t = IdleTimer()
	}
	if t.IsPaused {
		t.StartTime = nil
	}
	if t.Idle() {
		t = IdleTimer()
	} else if t.CurrentSession == nil {
		t = IdleTimer()
	}
	s.TimerState = t
	return s
}

// DateOf formats the local calendar date of t.
func DateOf(t time.Time) string {
	return t.Format(DateLayout)
}

// Timestamp renders t in UTC with millisecond precision.
func Timestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

func millis(t time.Time) *int64 {
	v := t.UnixMilli()
	return &v
}

func intPtr(v int) *int {
	return &v
}

package dto

import "time"

type Session struct {
	ID           string
	Date         string
	Start        string
	End          string
	DurationMS   int64
	Type         string
	FocusMinutes *int
	BreakMinutes *int
}

type Settings struct {
	FocusMinutes           int
	ShortBreakMinutes      int
	LongBreakMinutes       int
	AutoStartNext          bool
	SessionsUntilLongBreak int
}

type StateOutput struct {
	Running        bool
	Paused         bool
	Kind           string
	SessionID      string
	StartedAt      string
	Elapsed        time.Duration
	ElapsedLabel   string
	Remaining      time.Duration
	RemainingLabel string
	Phase          string
	PhaseLabel     string
	PhaseLength    time.Duration
	Upcoming       string
	PomodoroCount  int
	Settings       Settings
	SessionCount   int
	Warning        string
}

type PhaseOutcomeOutput struct {
	Completed      string
	Next           string
	Message        string
	AutoStart      bool
	AutoStartAfter time.Duration
	Session        *Session
}

type TickOutput struct {
	State   StateOutput
	Outcome *PhaseOutcomeOutput
}

type FinishOutput struct {
	State    StateOutput
	Recorded *Session
}

type ImportInput struct {
	Sessions []Session
	Settings Settings
}

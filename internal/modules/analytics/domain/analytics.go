package domain

import (
	"math"
	"time"
)

const (
	DateLayout  = "2006-01-02"
	WeekDays    = 7
	RecentLimit = 10
)

// SessionRecord is the slice of a recorded focus session the aggregations
// read.
type SessionRecord struct {
	ID         string
	Date       string
	Start      string
	DurationMS int64
	Type       string
}

type DayTotal struct {
	Date    string
	Minutes int
}

type Summary struct {
	Streak        int
	Daily         []DayTotal
	TotalMinutes  int
	WeeklyAverage int
	TotalSessions int
	Recent        []SessionRecord
}

// DailyFocusMinutes returns one entry per day for the last days days, oldest
// first and ending with today. Dates are calendar dates in today's location.
func DailyFocusMinutes(sessions []SessionRecord, days int, today time.Time) []DayTotal {
	if days <= 0 {
		return []DayTotal{}
	}
	byDate := make(map[string]int64, len(sessions))
	for _, s := range sessions {
		byDate[s.Date] += s.DurationMS
	}
	out := make([]DayTotal, 0, days)
	for offset := days - 1; offset >= 0; offset-- {
		date := today.AddDate(0, 0, -offset).Format(DateLayout)
		out = append(out, DayTotal{Date: date, Minutes: roundMinutes(byDate[date])})
	}
	return out
}

// ConsecutiveDaysStreak counts the run of days, ending today, that each
// have at least one session.
func ConsecutiveDaysStreak(sessions []SessionRecord, today time.Time) int {
	if len(sessions) == 0 {
		return 0
	}
	seen := make(map[string]struct{}, len(sessions))
	for _, s := range sessions {
		seen[s.Date] = struct{}{}
	}
	streak := 0
	for day := today; ; day = day.AddDate(0, 0, -1) {
		if _, ok := seen[day.Format(DateLayout)]; !ok {
			return streak
		}
		streak++
	}
}

// Summarize builds the analytics overview. Recent holds the last
// RecentLimit sessions in recording order, newest first.
func Summarize(sessions []SessionRecord, today time.Time) Summary {
	daily := DailyFocusMinutes(sessions, WeekDays, today)
	total := 0
	for _, d := range daily {
		total += d.Minutes
	}
	from := len(sessions) - RecentLimit
	if from < 0 {
		from = 0
	}
	recent := make([]SessionRecord, 0, len(sessions)-from)
	for i := len(sessions) - 1; i >= from; i-- {
		recent = append(recent, sessions[i])
	}
	return Summary{
		Streak:        ConsecutiveDaysStreak(sessions, today),
		Daily:         daily,
		TotalMinutes:  total,
		WeeklyAverage: roundHalfUp(float64(total) / WeekDays),
		TotalSessions: len(sessions),
		Recent:        recent,
	}
}

func roundMinutes(ms int64) int {
	return roundHalfUp(float64(ms) / float64(time.Minute/time.Millisecond))
}

func roundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}

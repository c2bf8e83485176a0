package domain

import (
	"testing"
	"time"
)

var today = time.Date(2026, 3, 10, 15, 30, 0, 0, time.UTC)

func rec(id, date string, minutes float64) SessionRecord {
	return SessionRecord{ID: id, Date: date, Start: date + "T09:00:00.000Z", DurationMS: int64(minutes * 60000), Type: "manual"}
}

func TestDailyFocusMinutes(t *testing.T) {
	t.Parallel()
	sessions := []SessionRecord{
		rec("a", "2026-03-10", 25),
		rec("b", "2026-03-10", 4.5),
		rec("c", "2026-03-08", 10.4),
		rec("d", "2026-03-01", 60),
	}
	got := DailyFocusMinutes(sessions, 7, today)
	if len(got) != 7 {
		t.Fatalf("expected 7 days, got %d", len(got))
	}
	if got[0].Date != "2026-03-04" || got[6].Date != "2026-03-10" {
		t.Fatalf("unexpected range %s..%s", got[0].Date, got[6].Date)
	}
	if got[6].Minutes != 30 {
		t.Fatalf("expected 29.5 to round to 30, got %d", got[6].Minutes)
	}
	if got[4].Minutes != 10 {
		t.Fatalf("expected 10 minutes on 03-08, got %d", got[4].Minutes)
	}
	if got[5].Minutes != 0 {
		t.Fatalf("expected empty day, got %d", got[5].Minutes)
	}
}

func TestDailyFocusMinutesNonPositiveDays(t *testing.T) {
	t.Parallel()
	for _, days := range []int{0, -3} {
		if got := DailyFocusMinutes([]SessionRecord{rec("a", "2026-03-10", 5)}, days, today); len(got) != 0 {
			t.Fatalf("days=%d: expected empty, got %v", days, got)
		}
	}
}

func TestDailyFocusMinutesCrossesMonth(t *testing.T) {
	t.Parallel()
	got := DailyFocusMinutes(nil, 3, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC))
	want := []string{"2026-02-27", "2026-02-28", "2026-03-01"}
	for i, d := range got {
		if d.Date != want[i] {
			t.Fatalf("day %d: want %s, got %s", i, want[i], d.Date)
		}
	}
}

func TestConsecutiveDaysStreak(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name     string
		sessions []SessionRecord
		want     int
	}{
		{"empty", nil, 0},
		{"no session today", []SessionRecord{rec("a", "2026-03-09", 5)}, 0},
		{"today only", []SessionRecord{rec("a", "2026-03-10", 5)}, 1},
		{"three days", []SessionRecord{rec("a", "2026-03-10", 5), rec("b", "2026-03-09", 5), rec("c", "2026-03-08", 5)}, 3},
		{"gap", []SessionRecord{rec("a", "2026-03-10", 5), rec("b", "2026-03-09", 5), rec("c", "2026-03-07", 5)}, 2},
		{"several per day", []SessionRecord{rec("a", "2026-03-10", 5), rec("b", "2026-03-10", 5)}, 1},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := ConsecutiveDaysStreak(tc.sessions, today); got != tc.want {
				t.Fatalf("want %d, got %d", tc.want, got)
			}
		})
	}
}

func TestSummarize(t *testing.T) {
	t.Parallel()
	sessions := make([]SessionRecord, 0, 12)
	for i := 0; i < 12; i++ {
		sessions = append(sessions, rec(string(rune('a'+i)), "2026-03-10", 5))
	}
	s := Summarize(sessions, today)
	if s.TotalMinutes != 60 || s.WeeklyAverage != 9 {
		t.Fatalf("expected 60 total and 9 average, got %d/%d", s.TotalMinutes, s.WeeklyAverage)
	}
	if s.TotalSessions != 12 || s.Streak != 1 {
		t.Fatalf("unexpected counts: %+v", s)
	}
	if len(s.Recent) != RecentLimit || s.Recent[0].ID != "l" || s.Recent[9].ID != "c" {
		t.Fatalf("unexpected recent order: first=%s last=%s", s.Recent[0].ID, s.Recent[len(s.Recent)-1].ID)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	t.Parallel()
	s := Summarize(nil, today)
	if s.TotalSessions != 0 || len(s.Recent) != 0 || len(s.Daily) != WeekDays || s.WeeklyAverage != 0 {
		t.Fatalf("unexpected empty summary: %+v", s)
	}
}

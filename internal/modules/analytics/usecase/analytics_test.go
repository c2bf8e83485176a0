package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	analyticsout "focustracker/internal/modules/analytics/adapter/out"
	"focustracker/internal/modules/analytics/service"
	analyticsusecase "focustracker/internal/modules/analytics/usecase"
	trackerdto "focustracker/internal/modules/tracker/dto"
	trackerin "focustracker/internal/modules/tracker/port/in"
)

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

type stubTracker struct {
	trackerin.Usecase
	sessions []trackerdto.Session
	err      error
}

func (s stubTracker) Sessions(context.Context) ([]trackerdto.Session, error) {
	return s.sessions, s.err
}

func TestSummaryThroughTrackerBridge(t *testing.T) {
	t.Parallel()
	tracker := stubTracker{sessions: []trackerdto.Session{
		{ID: "a", Date: "2026-03-09", Start: "2026-03-09T10:00:00.000Z", DurationMS: 30 * 60000, Type: "manual"},
		{ID: "b", Date: "2026-03-10", Start: "2026-03-10T10:00:00.000Z", DurationMS: 12 * 60000, Type: "pomodoro"},
	}}
	clk := fixedClock{now: time.Date(2026, 3, 10, 18, 0, 0, 0, time.UTC)}
	uc := analyticsusecase.NewInteractor(service.NewAnalyticsService(clk, analyticsout.NewTrackerSourceAdapter(tracker)))

	summary, err := uc.Summary(context.Background())
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if summary.Streak != 2 || summary.TotalMinutes != 42 || summary.WeeklyAverage != 6 {
		t.Fatalf("unexpected summary: %+v", summary)
	}
	if len(summary.Recent) != 2 || summary.Recent[0].ID != "b" {
		t.Fatalf("unexpected recent: %+v", summary.Recent)
	}

	daily, err := uc.Daily(context.Background(), 2)
	if err != nil {
		t.Fatalf("daily: %v", err)
	}
	if len(daily) != 2 || daily[0].Minutes != 30 || daily[1].Minutes != 12 {
		t.Fatalf("unexpected daily: %+v", daily)
	}
}

func TestSourceErrorsPropagate(t *testing.T) {
	t.Parallel()
	boom := errors.New("boom")
	uc := analyticsusecase.NewInteractor(service.NewAnalyticsService(fixedClock{now: time.Now()}, analyticsout.NewTrackerSourceAdapter(stubTracker{err: boom})))
	if _, err := uc.Streak(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("expected source error, got %v", err)
	}
}

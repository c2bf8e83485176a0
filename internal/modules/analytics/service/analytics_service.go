package service

import (
	"context"

	"focustracker/internal/modules/analytics/domain"
	analyticsout "focustracker/internal/modules/analytics/port/out"
	"focustracker/internal/platform/clock"
)

type AnalyticsService struct {
	clock  clock.Clock
	source analyticsout.SessionSource
}

func NewAnalyticsService(clock clock.Clock, source analyticsout.SessionSource) *AnalyticsService {
	return &AnalyticsService{clock: clock, source: source}
}

func (s *AnalyticsService) Daily(ctx context.Context, days int) ([]domain.DayTotal, error) {
	sessions, err := s.source.Sessions(ctx)
	if err != nil {
		return nil, err
	}
	return domain.DailyFocusMinutes(sessions, days, s.clock.Now()), nil
}

func (s *AnalyticsService) Streak(ctx context.Context) (int, error) {
	sessions, err := s.source.Sessions(ctx)
	if err != nil {
		return 0, err
	}
	return domain.ConsecutiveDaysStreak(sessions, s.clock.Now()), nil
}

func (s *AnalyticsService) Summary(ctx context.Context) (domain.Summary, error) {
	sessions, err := s.source.Sessions(ctx)
	if err != nil {
		return domain.Summary{}, err
	}
	return domain.Summarize(sessions, s.clock.Now()), nil
}

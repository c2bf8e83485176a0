package usecase

import (
	"context"

	"focustracker/internal/modules/analytics/domain"
	"focustracker/internal/modules/analytics/dto"
	analyticsin "focustracker/internal/modules/analytics/port/in"
	"focustracker/internal/modules/analytics/service"
)

type Interactor struct {
	svc *service.AnalyticsService
}

func NewInteractor(svc *service.AnalyticsService) analyticsin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Daily(ctx context.Context, days int) ([]dto.DayTotalOutput, error) {
	daily, err := i.svc.Daily(ctx, days)
	if err != nil {
		return nil, err
	}
	return toDayTotals(daily), nil
}

func (i *Interactor) Streak(ctx context.Context) (int, error) {
	return i.svc.Streak(ctx)
}

func (i *Interactor) Summary(ctx context.Context) (dto.SummaryOutput, error) {
	summary, err := i.svc.Summary(ctx)
	if err != nil {
		return dto.SummaryOutput{}, err
	}
	recent := make([]dto.SessionOutput, 0, len(summary.Recent))
	for _, s := range summary.Recent {
		recent = append(recent, dto.SessionOutput{ID: s.ID, Date: s.Date, Start: s.Start, DurationMS: s.DurationMS, Type: s.Type})
	}
	return dto.SummaryOutput{
		Streak:        summary.Streak,
		Daily:         toDayTotals(summary.Daily),
		TotalMinutes:  summary.TotalMinutes,
		WeeklyAverage: summary.WeeklyAverage,
		TotalSessions: summary.TotalSessions,
		Recent:        recent,
	}, nil
}

func toDayTotals(days []domain.DayTotal) []dto.DayTotalOutput {
	out := make([]dto.DayTotalOutput, 0, len(days))
	for _, d := range days {
		out = append(out, dto.DayTotalOutput{Date: d.Date, Minutes: d.Minutes})
	}
	return out
}

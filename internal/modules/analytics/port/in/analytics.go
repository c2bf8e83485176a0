package in

import (
	"context"

	"focustracker/internal/modules/analytics/dto"
)

type Usecase interface {
	Daily(ctx context.Context, days int) ([]dto.DayTotalOutput, error)
	Streak(ctx context.Context) (int, error)
	Summary(ctx context.Context) (dto.SummaryOutput, error)
}

package in

import (
	"context"

	analyticsdto "focustracker/internal/modules/analytics/dto"
	analyticsin "focustracker/internal/modules/analytics/port/in"
)

type CLIHandler struct {
	usecase analyticsin.Usecase
}

func NewCLIHandler(usecase analyticsin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Daily(ctx context.Context, days int) ([]analyticsdto.DayTotalOutput, error) {
	return h.usecase.Daily(ctx, days)
}

func (h CLIHandler) Streak(ctx context.Context) (int, error) {
	return h.usecase.Streak(ctx)
}

func (h CLIHandler) Summary(ctx context.Context) (analyticsdto.SummaryOutput, error) {
	return h.usecase.Summary(ctx)
}

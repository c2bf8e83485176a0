package in

import (
	"context"

	analyticsin "focustracker/internal/modules/analytics/port/in"
	"focustracker/internal/platform/clock"
)

// TUIHandler serves the analytics tab.
type TUIHandler struct {
	usecase analyticsin.Usecase
	clock   clock.Clock
}

func NewTUIHandler(usecase analyticsin.Usecase, clock clock.Clock) TUIHandler {
	return TUIHandler{usecase: usecase, clock: clock}
}

// Report returns the analytics overview as markdown.
func (h TUIHandler) Report(ctx context.Context) (string, error) {
	summary, err := h.usecase.Summary(ctx)
	if err != nil {
		return "", err
	}
	return MarkdownReport(summary, h.clock.Now()), nil
}

package out

import (
	"context"

	"focustracker/internal/modules/analytics/domain"
)

type SessionSource interface {
	Sessions(ctx context.Context) ([]domain.SessionRecord, error)
}

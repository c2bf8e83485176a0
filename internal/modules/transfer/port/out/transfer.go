package out

import (
	"context"

	"focustracker/internal/modules/transfer/domain"
)

// TrackerGateway reads and replaces the tracked sessions and settings.
type TrackerGateway interface {
	Snapshot(ctx context.Context) ([]domain.Session, domain.Settings, error)
	Replace(ctx context.Context, sessions []domain.Session, settings domain.Settings) error
}

type Archive interface {
	Write(ctx context.Context, path string, payload []byte) error
	Read(ctx context.Context, path string) ([]byte, error)
}

package out

import (
	"context"

	"focustracker/internal/modules/tracker/domain"
)

// KVStore is the text key-value store the state blob lives in.
type KVStore interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}

type StateRepository interface {
	Load(ctx context.Context) (domain.AppState, error)
	Save(ctx context.Context, state domain.AppState) error
}

// Notifier delivers best-effort desktop notifications. Prepare is called on
// the first user-initiated start and may probe for notification support.
type Notifier interface {
	Prepare(ctx context.Context)
	Notify(ctx context.Context, title, body string) error
}

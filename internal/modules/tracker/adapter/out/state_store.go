package out

import (
	"context"
	"encoding/json"
	"fmt"

	humanize "github.com/dustin/go-humanize"
	hclog "github.com/hashicorp/go-hclog"

	"focustracker/internal/modules/tracker/domain"
	trackerout "focustracker/internal/modules/tracker/port/out"
	apperrors "focustracker/internal/platform/errors"
	"focustracker/internal/platform/logging"
)

const (
	StateKey      = "focus-tracker-data"
	maxStateBytes = 5 * 1024 * 1024
)

// KVStateStore persists the whole application state as one JSON blob.
type KVStateStore struct {
	kv       trackerout.KVStore
	logger   hclog.Logger
	maxBytes int
}

func NewKVStateStore(kv trackerout.KVStore, logger hclog.Logger) *KVStateStore {
	if logger == nil {
		logger = logging.Discard()
	}
	return &KVStateStore{kv: kv, logger: logger.Named("storage"), maxBytes: maxStateBytes}
}

var _ trackerout.StateRepository = (*KVStateStore)(nil)

func (s *KVStateStore) Save(ctx context.Context, state domain.AppState) error {
	payload, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("encode state: %w", err)
	}
	if len(payload) > s.maxBytes {
		s.logger.Warn("state exceeds storage limit, not saving",
			"size", humanize.IBytes(uint64(len(payload))),
			"limit", humanize.IBytes(uint64(s.maxBytes)))
		return apperrors.ErrStateTooLarge
	}
	if err := s.kv.Set(ctx, StateKey, string(payload)); err != nil {
		s.logger.Error("failed to save state", "error", err)
		return fmt.Errorf("%w: %v", apperrors.ErrStorageUnavailable, err)
	}
	return nil
}

func (s *KVStateStore) Load(ctx context.Context) (domain.AppState, error) {
	raw, ok, err := s.kv.Get(ctx, StateKey)
	if err != nil {
		s.logger.Error("failed to read state", "error", err)
		return domain.AppState{}, fmt.Errorf("%w: %v", apperrors.ErrNoSavedState, err)
	}
	if !ok || raw == "" {
		return domain.AppState{}, apperrors.ErrNoSavedState
	}
	state := domain.AppState{}
	if err := json.Unmarshal([]byte(raw), &state); err != nil {
		s.logger.Error("failed to decode state", "error", err)
		return domain.AppState{}, fmt.Errorf("%w: %v", apperrors.ErrNoSavedState, err)
	}
	return state.Normalize(), nil
}

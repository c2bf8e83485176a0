package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"

	hclog "github.com/hashicorp/go-hclog"

	"focustracker/internal/modules/tracker/domain"
	"focustracker/internal/modules/tracker/dto"
	trackerin "focustracker/internal/modules/tracker/port/in"
	trackerout "focustracker/internal/modules/tracker/port/out"
	"focustracker/internal/modules/tracker/service"
	apperrors "focustracker/internal/platform/errors"
	"focustracker/internal/platform/logging"
)

const notificationTitle = "FocusTracker"

// Interactor is the only writer of the application state. Every transition
// goes through the reducer and is then handed to the repository; a failed
// save is reported as a warning and the in-memory state is kept.
type Interactor struct {
	mu       sync.Mutex
	svc      *service.TrackerService
	repo     trackerout.StateRepository
	notifier trackerout.Notifier
	logger   hclog.Logger

	state    domain.AppState
	loaded   bool
	prepared bool
}

func NewInteractor(svc *service.TrackerService, repo trackerout.StateRepository, notifier trackerout.Notifier, logger hclog.Logger) trackerin.Usecase {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Interactor{svc: svc, repo: repo, notifier: notifier, logger: logger.Named("tracker"), state: domain.DefaultState()}
}

func (i *Interactor) Load(ctx context.Context) (dto.StateOutput, error) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.loaded = false
	i.ensureLoaded(ctx)
	return toStateDTO(i.state, i.svc.Now()), nil
}

func (i *Interactor) Snapshot(ctx context.Context) (dto.StateOutput, error) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.ensureLoaded(ctx)
	return toStateDTO(i.state, i.svc.Now()), nil
}

func (i *Interactor) Start(ctx context.Context, kind string) (dto.StateOutput, error) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.ensureLoaded(ctx)
	next, err := i.svc.Start(i.state, domain.SessionKind(kind))
	if err != nil {
		return dto.StateOutput{}, err
	}
	if !i.prepared && i.notifier != nil {
		i.notifier.Prepare(ctx)
		i.prepared = true
	}
	return i.commit(ctx, next), nil
}

func (i *Interactor) Pause(ctx context.Context) (dto.StateOutput, error) {
	return i.transition(ctx, i.svc.Pause)
}

func (i *Interactor) Resume(ctx context.Context) (dto.StateOutput, error) {
	return i.transition(ctx, i.svc.Resume)
}

func (i *Interactor) Stop(ctx context.Context) (dto.StateOutput, error) {
	return i.transition(ctx, func(state domain.AppState) (domain.AppState, error) {
		return i.svc.Stop(state), nil
	})
}

func (i *Interactor) Finish(ctx context.Context) (dto.FinishOutput, error) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.ensureLoaded(ctx)
	next, recorded := i.svc.Finish(i.state)
	out := dto.FinishOutput{State: i.commit(ctx, next)}
	if recorded != nil {
		s := toSessionDTO(*recorded)
		out.Recorded = &s
		i.logger.Debug("session recorded", "id", recorded.ID, "duration_ms", recorded.Duration)
	}
	return out, nil
}

func (i *Interactor) CompleteSession(ctx context.Context, session dto.Session) (dto.StateOutput, error) {
	return i.transition(ctx, func(state domain.AppState) (domain.AppState, error) {
		return i.svc.Complete(state, fromSessionDTO(session))
	})
}

func (i *Interactor) UpdateSettings(ctx context.Context, settings dto.Settings) (dto.StateOutput, error) {
	return i.transition(ctx, func(state domain.AppState) (domain.AppState, error) {
		return i.svc.UpdateSettings(state, fromSettingsDTO(settings))
	})
}

func (i *Interactor) SetPhase(ctx context.Context, phase string) (dto.StateOutput, error) {
	return i.transition(ctx, func(state domain.AppState) (domain.AppState, error) {
		return i.svc.SetPhase(state, domain.Phase(phase))
	})
}

func (i *Interactor) ResetPomodoroCount(ctx context.Context) (dto.StateOutput, error) {
	return i.transition(ctx, func(state domain.AppState) (domain.AppState, error) {
		return domain.Reduce(state, domain.ResetPomodoroCount{}), nil
	})
}

// Tick recomputes the elapsed time and, once the running pomodoro phase has
// finished, records it, advances the phase and sends the notification.
func (i *Interactor) Tick(ctx context.Context) (dto.TickOutput, error) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.ensureLoaded(ctx)
	next, outcome, now := i.svc.Tick(i.state)
	if outcome == nil {
		return dto.TickOutput{State: toStateDTO(i.state, now)}, nil
	}
	state := i.commit(ctx, next)
	i.logger.Info("pomodoro phase complete", "completed", outcome.Completed, "next", outcome.Next, "count", next.PomodoroSessionCount)
	if i.notifier != nil {
		if err := i.notifier.Notify(ctx, notificationTitle, outcome.Message()); err != nil {
			i.logger.Warn("notification failed", "error", err)
		}
	}
	return dto.TickOutput{State: state, Outcome: toOutcomeDTO(*outcome)}, nil
}

func (i *Interactor) ImportData(ctx context.Context, input dto.ImportInput) (dto.StateOutput, error) {
	sessions := make([]domain.FocusSession, len(input.Sessions))
	for idx, s := range input.Sessions {
		sessions[idx] = fromSessionDTO(s)
	}
	return i.transition(ctx, func(state domain.AppState) (domain.AppState, error) {
		return domain.Reduce(state, domain.ImportData{Sessions: sessions, Settings: fromSettingsDTO(input.Settings)}), nil
	})
}

func (i *Interactor) Reset(ctx context.Context) (dto.StateOutput, error) {
	return i.transition(ctx, func(state domain.AppState) (domain.AppState, error) {
		return domain.Reduce(state, domain.LoadState{State: domain.DefaultState()}), nil
	})
}

func (i *Interactor) Sessions(ctx context.Context) ([]dto.Session, error) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.ensureLoaded(ctx)
	out := make([]dto.Session, len(i.state.Sessions))
	for idx, s := range i.state.Sessions {
		out[idx] = toSessionDTO(s)
	}
	return out, nil
}

func (i *Interactor) Settings(ctx context.Context) (dto.Settings, error) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.ensureLoaded(ctx)
	return toSettingsDTO(i.state.PomodoroSettings), nil
}

func (i *Interactor) transition(ctx context.Context, fn func(domain.AppState) (domain.AppState, error)) (dto.StateOutput, error) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.ensureLoaded(ctx)
	next, err := fn(i.state)
	if err != nil {
		return dto.StateOutput{}, err
	}
	return i.commit(ctx, next), nil
}

// ensureLoaded reads persisted state the first time it is needed. Anything
// unreadable falls back to the defaults.
func (i *Interactor) ensureLoaded(ctx context.Context) {
	if i.loaded {
		return
	}
	i.loaded = true
	if i.repo == nil {
		i.state = domain.DefaultState()
		return
	}
	state, err := i.repo.Load(ctx)
	if err != nil {
		if errors.Is(err, apperrors.ErrNoSavedState) {
			i.logger.Debug("no saved state, starting fresh")
		} else {
			i.logger.Warn("using default state", "error", err)
		}
		i.state = domain.DefaultState()
		return
	}
	i.state = domain.Reduce(i.state, domain.LoadState{State: state.Normalize()})
}

func (i *Interactor) commit(ctx context.Context, next domain.AppState) dto.StateOutput {
	i.state = next
	out := toStateDTO(next, i.svc.Now())
	if i.repo == nil {
		return out
	}
	if err := i.repo.Save(ctx, next); err != nil {
		i.logger.Warn("state not persisted", "error", err)
		out.Warning = warningFor(err)
	}
	return out
}

func warningFor(err error) string {
	switch {
	case errors.Is(err, apperrors.ErrStateTooLarge):
		return "data too large to save; changes are kept in memory only"
	case errors.Is(err, apperrors.ErrStorageUnavailable):
		return "storage unavailable; changes are kept in memory only"
	default:
		return fmt.Sprintf("could not save data: %v", err)
	}
}

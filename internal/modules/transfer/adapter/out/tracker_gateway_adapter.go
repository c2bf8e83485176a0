package out

import (
	"context"

	trackerdto "focustracker/internal/modules/tracker/dto"
	trackerin "focustracker/internal/modules/tracker/port/in"
	"focustracker/internal/modules/transfer/domain"
	transferout "focustracker/internal/modules/transfer/port/out"
)

type TrackerGatewayAdapter struct {
	tracker trackerin.Usecase
}

func NewTrackerGatewayAdapter(tracker trackerin.Usecase) transferout.TrackerGateway {
	return &TrackerGatewayAdapter{tracker: tracker}
}

func (a *TrackerGatewayAdapter) Snapshot(ctx context.Context) ([]domain.Session, domain.Settings, error) {
	sessions, err := a.tracker.Sessions(ctx)
	if err != nil {
		return nil, domain.Settings{}, err
	}
	settings, err := a.tracker.Settings(ctx)
	if err != nil {
		return nil, domain.Settings{}, err
	}
	out := make([]domain.Session, 0, len(sessions))
	for _, s := range sessions {
		out = append(out, domain.Session{
			ID:            s.ID,
			Date:          s.Date,
			Start:         s.Start,
			End:           s.End,
			Duration:      s.DurationMS,
			Type:          s.Type,
			FocusDuration: s.FocusMinutes,
			BreakDuration: s.BreakMinutes,
		})
	}
	return out, domain.Settings{
		FocusDuration:          settings.FocusMinutes,
		ShortBreakDuration:     settings.ShortBreakMinutes,
		LongBreakDuration:      settings.LongBreakMinutes,
		AutoStartNext:          settings.AutoStartNext,
		SessionsUntilLongBreak: settings.SessionsUntilLongBreak,
	}, nil
}

func (a *TrackerGatewayAdapter) Replace(ctx context.Context, sessions []domain.Session, settings domain.Settings) error {
	input := trackerdto.ImportInput{
		Sessions: make([]trackerdto.Session, 0, len(sessions)),
		Settings: trackerdto.Settings{
			FocusMinutes:           settings.FocusDuration,
			ShortBreakMinutes:      settings.ShortBreakDuration,
			LongBreakMinutes:       settings.LongBreakDuration,
			AutoStartNext:          settings.AutoStartNext,
			SessionsUntilLongBreak: settings.SessionsUntilLongBreak,
		},
	}
	for _, s := range sessions {
		input.Sessions = append(input.Sessions, trackerdto.Session{
			ID:           s.ID,
			Date:         s.Date,
			Start:        s.Start,
			End:          s.End,
			DurationMS:   s.Duration,
			Type:         s.Type,
			FocusMinutes: s.FocusDuration,
			BreakMinutes: s.BreakDuration,
		})
	}
	_, err := a.tracker.ImportData(ctx, input)
	return err
}

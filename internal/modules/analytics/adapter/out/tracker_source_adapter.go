package out

import (
	"context"

	"focustracker/internal/modules/analytics/domain"
	analyticsout "focustracker/internal/modules/analytics/port/out"
	trackerin "focustracker/internal/modules/tracker/port/in"
)

type TrackerSourceAdapter struct {
	tracker trackerin.Usecase
}

func NewTrackerSourceAdapter(tracker trackerin.Usecase) analyticsout.SessionSource {
	return &TrackerSourceAdapter{tracker: tracker}
}

func (a *TrackerSourceAdapter) Sessions(ctx context.Context) ([]domain.SessionRecord, error) {
	sessions, err := a.tracker.Sessions(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.SessionRecord, 0, len(sessions))
	for _, s := range sessions {
		out = append(out, domain.SessionRecord{
			ID:         s.ID,
			Date:       s.Date,
			Start:      s.Start,
			DurationMS: s.DurationMS,
			Type:       s.Type,
		})
	}
	return out, nil
}

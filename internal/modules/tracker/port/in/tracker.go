package in

import (
	"context"

	"focustracker/internal/modules/tracker/dto"
)

type Usecase interface {
	Load(ctx context.Context) (dto.StateOutput, error)
	Snapshot(ctx context.Context) (dto.StateOutput, error)
	Start(ctx context.Context, kind string) (dto.StateOutput, error)
	Pause(ctx context.Context) (dto.StateOutput, error)
	Resume(ctx context.Context) (dto.StateOutput, error)
	Stop(ctx context.Context) (dto.StateOutput, error)
	Finish(ctx context.Context) (dto.FinishOutput, error)
	CompleteSession(ctx context.Context, session dto.Session) (dto.StateOutput, error)
	UpdateSettings(ctx context.Context, settings dto.Settings) (dto.StateOutput, error)
	SetPhase(ctx context.Context, phase string) (dto.StateOutput, error)
	ResetPomodoroCount(ctx context.Context) (dto.StateOutput, error)
	Tick(ctx context.Context) (dto.TickOutput, error)
	ImportData(ctx context.Context, input dto.ImportInput) (dto.StateOutput, error)
	Reset(ctx context.Context) (dto.StateOutput, error)
	Sessions(ctx context.Context) ([]dto.Session, error)
	Settings(ctx context.Context) (dto.Settings, error)
}

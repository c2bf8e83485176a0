package in

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	trackerdto "focustracker/internal/modules/tracker/dto"
	trackerin "focustracker/internal/modules/tracker/port/in"
	apperrors "focustracker/internal/platform/errors"
)

type CLIHandler struct {
	usecase trackerin.Usecase
}

func NewCLIHandler(usecase trackerin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Status(ctx context.Context) (trackerdto.StateOutput, error) {
	return h.usecase.Snapshot(ctx)
}

func (h CLIHandler) Start(ctx context.Context, kind string) (trackerdto.StateOutput, error) {
	return h.usecase.Start(ctx, kind)
}

func (h CLIHandler) Pause(ctx context.Context) (trackerdto.StateOutput, error) {
	return h.usecase.Pause(ctx)
}

func (h CLIHandler) Resume(ctx context.Context) (trackerdto.StateOutput, error) {
	return h.usecase.Resume(ctx)
}

// Stop records the running session when it has tracked time.
func (h CLIHandler) Stop(ctx context.Context) (trackerdto.FinishOutput, error) {
	return h.usecase.Finish(ctx)
}

// Discard abandons the running session without recording it.
func (h CLIHandler) Discard(ctx context.Context) (trackerdto.StateOutput, error) {
	return h.usecase.Stop(ctx)
}

func (h CLIHandler) Tick(ctx context.Context) (trackerdto.TickOutput, error) {
	return h.usecase.Tick(ctx)
}

func (h CLIHandler) SetPhase(ctx context.Context, phase string) (trackerdto.StateOutput, error) {
	return h.usecase.SetPhase(ctx, phase)
}

func (h CLIHandler) ResetPomodoroCount(ctx context.Context) (trackerdto.StateOutput, error) {
	return h.usecase.ResetPomodoroCount(ctx)
}

func (h CLIHandler) Settings(ctx context.Context) (trackerdto.Settings, error) {
	return h.usecase.Settings(ctx)
}

// SetSetting changes one pomodoro setting by its key, e.g. "focus" or
// "auto-start".
func (h CLIHandler) SetSetting(ctx context.Context, key, value string) (trackerdto.StateOutput, error) {
	settings, err := h.usecase.Settings(ctx)
	if err != nil {
		return trackerdto.StateOutput{}, err
	}
	if err := ApplySetting(&settings, key, value); err != nil {
		return trackerdto.StateOutput{}, err
	}
	return h.usecase.UpdateSettings(ctx, settings)
}

func (h CLIHandler) Sessions(ctx context.Context) ([]trackerdto.Session, error) {
	return h.usecase.Sessions(ctx)
}

func (h CLIHandler) Reset(ctx context.Context) (trackerdto.StateOutput, error) {
	return h.usecase.Reset(ctx)
}

// SettingKeys lists the keys accepted by ApplySetting.
var SettingKeys = []string{"focus", "short-break", "long-break", "auto-start", "long-break-every"}

func ApplySetting(settings *trackerdto.Settings, key, value string) error {
	key = strings.ToLower(strings.TrimSpace(key))
	value = strings.TrimSpace(value)
	if key == "auto-start" {
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%w: auto-start must be true or false", apperrors.ErrInvalidInput)
		}
		settings.AutoStartNext = b
		return nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("%w: %s must be a whole number", apperrors.ErrInvalidInput, key)
	}
	switch key {
	case "focus":
		settings.FocusMinutes = n
	case "short-break":
		settings.ShortBreakMinutes = n
	case "long-break":
		settings.LongBreakMinutes = n
	case "long-break-every":
		settings.SessionsUntilLongBreak = n
	default:
		return fmt.Errorf("%w: unknown setting %q (want one of %s)", apperrors.ErrInvalidInput, key, strings.Join(SettingKeys, ", "))
	}
	return nil
}

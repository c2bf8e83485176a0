package in

import (
	"errors"
	"testing"

	trackerdto "focustracker/internal/modules/tracker/dto"
	apperrors "focustracker/internal/platform/errors"
)

func TestApplySetting(t *testing.T) {
	t.Parallel()
	settings := trackerdto.Settings{FocusMinutes: 25, ShortBreakMinutes: 5, LongBreakMinutes: 15, SessionsUntilLongBreak: 4}

	cases := []struct {
		key, value string
		check      func(trackerdto.Settings) bool
	}{
		{"focus", "50", func(s trackerdto.Settings) bool { return s.FocusMinutes == 50 }},
		{"Short-Break", " 10 ", func(s trackerdto.Settings) bool { return s.ShortBreakMinutes == 10 }},
		{"long-break", "30", func(s trackerdto.Settings) bool { return s.LongBreakMinutes == 30 }},
		{"long-break-every", "3", func(s trackerdto.Settings) bool { return s.SessionsUntilLongBreak == 3 }},
		{"auto-start", "true", func(s trackerdto.Settings) bool { return s.AutoStartNext }},
	}
	for _, tc := range cases {
		if err := ApplySetting(&settings, tc.key, tc.value); err != nil {
			t.Fatalf("apply %s=%s: %v", tc.key, tc.value, err)
		}
		if !tc.check(settings) {
			t.Fatalf("setting %s not applied: %+v", tc.key, settings)
		}
	}

	for _, bad := range [][2]string{{"focus", "ten"}, {"auto-start", "maybe"}, {"colour", "3"}} {
		if err := ApplySetting(&settings, bad[0], bad[1]); !errors.Is(err, apperrors.ErrInvalidInput) {
			t.Fatalf("expected invalid input for %v, got %v", bad, err)
		}
	}
}

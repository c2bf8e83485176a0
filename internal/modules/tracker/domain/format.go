package domain

import (
	"fmt"
	"time"
)

// FormatDuration renders milliseconds as M:SS, or H:MM:SS from one hour up.
func FormatDuration(ms int64) string {
	if ms < 0 {
		ms = 0
	}
	total := ms / 1000
	hours := total / 3600
	minutes := (total % 3600) / 60
	seconds := total % 60
	if hours > 0 {
		return fmt.Sprintf("%d:%02d:%02d", hours, minutes, seconds)
	}
	return fmt.Sprintf("%d:%02d", minutes, seconds)
}

func FormatElapsed(d time.Duration) string {
	return FormatDuration(d.Milliseconds())
}

package clock

import "time"

// Clock abstracts time to keep usecases deterministic in tests.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the local wall clock. Calendar dates are derived from
// the local zone, so the location is kept.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

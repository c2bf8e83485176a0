package domain

import "testing"

func TestFormatDuration(t *testing.T) {
	t.Parallel()
	cases := map[int64]string{
		0:        "0:00",
		999:      "0:00",
		30000:    "0:30",
		90000:    "1:30",
		3599999:  "59:59",
		3600000:  "1:00:00",
		3661000:  "1:01:01",
		36000000: "10:00:00",
		-5000:    "0:00",
	}
	for in, want := range cases {
		if got := FormatDuration(in); got != want {
			t.Fatalf("FormatDuration(%d): expected %q, got %q", in, want, got)
		}
	}
}

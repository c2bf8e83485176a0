package domain

import (
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"

	apperrors "focustracker/internal/platform/errors"
)

func sampleExport() ExportData {
	focus, brk := 25, 5
	return Export([]Session{
		{ID: "s1", Date: "2026-03-02", Start: "2026-03-02T09:00:00.000Z", End: "2026-03-02T09:25:00.000Z", Duration: 1500000, Type: "pomodoro", FocusDuration: &focus, BreakDuration: &brk},
		{ID: "s2", Date: "2026-03-02", Start: "2026-03-02T10:00:00.000Z", Duration: 600000, Type: "manual"},
	}, Settings{FocusDuration: 25, ShortBreakDuration: 5, LongBreakDuration: 15, SessionsUntilLongBreak: 4}, time.Date(2026, 3, 2, 11, 0, 0, 0, time.UTC))
}

func TestExportEnvelope(t *testing.T) {
	t.Parallel()
	data := sampleExport()
	if data.Version != "1.0.0" || data.ExportDate != "2026-03-02T11:00:00.000Z" {
		t.Fatalf("unexpected envelope: %+v", data)
	}
	payload, err := Encode(data)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if !strings.Contains(string(payload), "\n  \"version\": \"1.0.0\"") {
		t.Fatalf("expected two-space indent:\n%s", payload)
	}
	if got := FileName(time.Date(2026, 3, 2, 23, 0, 0, 0, time.UTC)); got != "focus_data_2026-03-02.json" {
		t.Fatalf("unexpected file name %s", got)
	}
	empty := Export(nil, Settings{}, time.Now())
	if empty.Sessions == nil {
		t.Fatalf("expected empty sessions slice")
	}
}

func TestExportRoundTrip(t *testing.T) {
	t.Parallel()
	data := sampleExport()
	payload, err := Encode(data)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	parsed, err := ParseImport(payload)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if !reflect.DeepEqual(parsed.Sessions, data.Sessions) || parsed.Settings != data.Settings {
		t.Fatalf("round trip mismatch:\nwant %+v\ngot  %+v", data, parsed)
	}
}

func TestValidateImportRejects(t *testing.T) {
	t.Parallel()
	cases := map[string]string{
		"null":              `null`,
		"empty object":      `{}`,
		"string":            `"sessions"`,
		"sessions string":   `{"sessions":"invalid","settings":{}}`,
		"missing settings":  `{"sessions":[]}`,
		"null settings":     `{"sessions":[],"settings":null}`,
		"array settings":    `{"sessions":[],"settings":[]}`,
		"scalar session":    `{"sessions":[1],"settings":{}}`,
		"null session":      `{"sessions":[null],"settings":{}}`,
		"missing type":      `{"sessions":[{"id":"a","date":"2026-03-02","start":"x"}],"settings":{}}`,
		"empty id":          `{"sessions":[{"id":"","date":"2026-03-02","start":"x","type":"manual"}],"settings":{}}`,
		"zero date":         `{"sessions":[{"id":"a","date":0,"start":"x","type":"manual"}],"settings":{}}`,
		"false start":       `{"sessions":[{"id":"a","date":"d","start":false,"type":"manual"}],"settings":{}}`,
	}
	for name, raw := range cases {
		var value any
		if err := json.Unmarshal([]byte(raw), &value); err != nil {
			t.Fatalf("%s: bad fixture: %v", name, err)
		}
		if _, err := ValidateImport(value); !errors.Is(err, apperrors.ErrInvalidImport) {
			t.Fatalf("%s: expected invalid import, got %v", name, err)
		}
	}
}

func TestValidateImportAcceptsMinimalShape(t *testing.T) {
	t.Parallel()
	var value any
	raw := `{"sessions":[{"id":"a","date":"2026-03-02","start":"x","type":"whatever","extra":true}],"settings":{}}`
	if err := json.Unmarshal([]byte(raw), &value); err != nil {
		t.Fatalf("fixture: %v", err)
	}
	got, err := ValidateImport(value)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if !reflect.DeepEqual(got, value) {
		t.Fatalf("expected value returned unchanged")
	}
	if _, err := ValidateImport(map[string]any{"sessions": []any{}, "settings": map[string]any{}}); err != nil {
		t.Fatalf("empty sessions should pass: %v", err)
	}
}

func TestParseImportErrors(t *testing.T) {
	t.Parallel()
	if _, err := ParseImport([]byte("{nope")); !errors.Is(err, apperrors.ErrImportParse) {
		t.Fatalf("expected parse error, got %v", err)
	}
	if _, err := ParseImport([]byte(`{"sessions":"invalid"}`)); !errors.Is(err, apperrors.ErrInvalidImport) {
		t.Fatalf("expected invalid import, got %v", err)
	}
	typeMismatch := `{"sessions":[{"id":7,"date":"2026-03-02","start":"x","type":"manual"}],"settings":{}}`
	if _, err := ParseImport([]byte(typeMismatch)); !errors.Is(err, apperrors.ErrInvalidImport) {
		t.Fatalf("expected invalid import on type mismatch, got %v", err)
	}
}

func TestUserMessage(t *testing.T) {
	t.Parallel()
	if got := UserMessage(apperrors.ErrImportParse); got != "Failed to parse JSON file. Please check the file format." {
		t.Fatalf("unexpected parse message %q", got)
	}
	if got := UserMessage(apperrors.ErrInvalidImport); got != "Invalid file format. Please check your JSON file." {
		t.Fatalf("unexpected invalid message %q", got)
	}
	if got := UserMessage(nil); got != "Data imported successfully!" {
		t.Fatalf("unexpected success message %q", got)
	}
}

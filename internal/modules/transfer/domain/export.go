package domain

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"time"

	apperrors "focustracker/internal/platform/errors"
)

const (
	FormatVersion   = "1.0.0"
	timestampLayout = "2006-01-02T15:04:05.000Z07:00"
)

type Session struct {
	ID            string `json:"id"`
	Date          string `json:"date"`
	Start         string `json:"start"`
	End           string `json:"end,omitempty"`
	Duration      int64  `json:"duration"`
	Type          string `json:"type"`
	FocusDuration *int   `json:"focusDuration,omitempty"`
	BreakDuration *int   `json:"breakDuration,omitempty"`
}

type Settings struct {
	FocusDuration          int  `json:"focusDuration"`
	ShortBreakDuration     int  `json:"shortBreakDuration"`
	LongBreakDuration      int  `json:"longBreakDuration"`
	AutoStartNext          bool `json:"autoStartNext"`
	SessionsUntilLongBreak int  `json:"sessionsUntilLongBreak"`
}

// ExportData is the on-disk backup envelope.
type ExportData struct {
	Version    string    `json:"version"`
	ExportDate string    `json:"exportDate"`
	Sessions   []Session `json:"sessions"`
	Settings   Settings  `json:"settings"`
}

func Export(sessions []Session, settings Settings, now time.Time) ExportData {
	if sessions == nil {
		sessions = []Session{}
	}
	return ExportData{
		Version:    FormatVersion,
		ExportDate: now.UTC().Format(timestampLayout),
		Sessions:   sessions,
		Settings:   settings,
	}
}

// FileName is the suggested backup name for an export taken at now.
func FileName(now time.Time) string {
	return fmt.Sprintf("focus_data_%s.json", now.Format("2006-01-02"))
}

func Encode(data ExportData) ([]byte, error) {
	payload, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode export: %w", err)
	}
	return payload, nil
}

// ValidateImport checks the shape of a decoded JSON value: an object with a
// sessions array whose entries carry id, date, start and type, and a
// settings object. Values are not range checked. The input is returned
// unchanged on success.
func ValidateImport(value any) (any, error) {
	obj, ok := value.(map[string]any)
	if !ok {
		return nil, apperrors.ErrInvalidImport
	}
	sessions, ok := obj["sessions"].([]any)
	if !ok {
		return nil, apperrors.ErrInvalidImport
	}
	if _, ok := obj["settings"].(map[string]any); !ok {
		return nil, apperrors.ErrInvalidImport
	}
	for _, raw := range sessions {
		session, ok := raw.(map[string]any)
		if !ok {
			return nil, apperrors.ErrInvalidImport
		}
		for _, field := range []string{"id", "date", "start", "type"} {
			if !truthy(session[field]) {
				return nil, apperrors.ErrInvalidImport
			}
		}
	}
	return value, nil
}

// ParseImport decodes, validates and types a backup file.
func ParseImport(raw []byte) (ExportData, error) {
	var value any
	if err := json.Unmarshal(raw, &value); err != nil {
		return ExportData{}, fmt.Errorf("%w: %v", apperrors.ErrImportParse, err)
	}
	if _, err := ValidateImport(value); err != nil {
		return ExportData{}, err
	}
	data := ExportData{}
	decoder := json.NewDecoder(bytes.NewReader(raw))
	if err := decoder.Decode(&data); err != nil {
		return ExportData{}, fmt.Errorf("%w: %v", apperrors.ErrInvalidImport, err)
	}
	if data.Sessions == nil {
		data.Sessions = []Session{}
	}
	return data, nil
}

// UserMessage is the text shown to the user for an import failure.
func UserMessage(err error) string {
	switch {
	case err == nil:
		return "Data imported successfully!"
	case errors.Is(err, apperrors.ErrImportParse):
		return "Failed to parse JSON file. Please check the file format."
	case errors.Is(err, apperrors.ErrInvalidImport):
		return "Invalid file format. Please check your JSON file."
	default:
		return err.Error()
	}
}

func truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case string:
		return x != ""
	case float64:
		return x != 0 && !math.IsNaN(x)
	default:
		return true
	}
}

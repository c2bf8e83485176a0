package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	hclog "github.com/hashicorp/go-hclog"
)

// New builds the application logger writing to w.
func New(level string, w io.Writer) hclog.Logger {
	return hclog.New(&hclog.LoggerOptions{
		Name:   "focustracker",
		Level:  hclog.LevelFromString(level),
		Output: w,
	})
}

// NewFile opens (or creates) path for appending and logs there. The TUI uses
// it so log lines never land on the alternate screen.
func NewFile(level, path string) (hclog.Logger, io.Closer, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return New(level, f), f, nil
}

// Discard is used by tests and by callers that were not handed a logger.
func Discard() hclog.Logger {
	return hclog.NewNullLogger()
}

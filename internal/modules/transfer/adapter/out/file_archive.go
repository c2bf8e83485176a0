package out

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	transferout "focustracker/internal/modules/transfer/port/out"
)

type FileArchive struct{}

func NewFileArchive() transferout.Archive {
	return FileArchive{}
}

func (FileArchive) Write(_ context.Context, path string, payload []byte) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create export dir: %w", err)
		}
	}
	if err := os.WriteFile(path, append(payload, '\n'), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func (FileArchive) Read(_ context.Context, path string) ([]byte, error) {
	payload, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return payload, nil
}

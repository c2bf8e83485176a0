package service

import (
	"context"
	"fmt"
	"path/filepath"

	"focustracker/internal/modules/transfer/domain"
	transferout "focustracker/internal/modules/transfer/port/out"
	"focustracker/internal/platform/clock"
)

type TransferService struct {
	clock   clock.Clock
	tracker transferout.TrackerGateway
	archive transferout.Archive
}

func NewTransferService(clock clock.Clock, tracker transferout.TrackerGateway, archive transferout.Archive) *TransferService {
	return &TransferService{clock: clock, tracker: tracker, archive: archive}
}

func (s *TransferService) Build(ctx context.Context) (domain.ExportData, []byte, error) {
	sessions, settings, err := s.tracker.Snapshot(ctx)
	if err != nil {
		return domain.ExportData{}, nil, err
	}
	data := domain.Export(sessions, settings, s.clock.Now())
	payload, err := domain.Encode(data)
	if err != nil {
		return domain.ExportData{}, nil, err
	}
	return data, payload, nil
}

// ExportFile writes the backup into dir and returns its path.
func (s *TransferService) ExportFile(ctx context.Context, dir string) (string, domain.ExportData, int, error) {
	data, payload, err := s.Build(ctx)
	if err != nil {
		return "", domain.ExportData{}, 0, err
	}
	path := filepath.Join(dir, domain.FileName(s.clock.Now()))
	if err := s.archive.Write(ctx, path, payload); err != nil {
		return "", domain.ExportData{}, 0, fmt.Errorf("write export: %w", err)
	}
	return path, data, len(payload), nil
}

func (s *TransferService) ImportFile(ctx context.Context, path string) (domain.ExportData, error) {
	raw, err := s.archive.Read(ctx, path)
	if err != nil {
		return domain.ExportData{}, fmt.Errorf("read import: %w", err)
	}
	return s.ImportBytes(ctx, raw)
}

// ImportBytes replaces tracked sessions and settings with the backup. The
// tracker is left untouched when the payload does not validate.
func (s *TransferService) ImportBytes(ctx context.Context, raw []byte) (domain.ExportData, error) {
	data, err := domain.ParseImport(raw)
	if err != nil {
		return domain.ExportData{}, err
	}
	if err := s.tracker.Replace(ctx, data.Sessions, data.Settings); err != nil {
		return domain.ExportData{}, err
	}
	return data, nil
}

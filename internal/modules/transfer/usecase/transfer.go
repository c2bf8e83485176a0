package usecase

import (
	"context"
	"fmt"
	"io"

	hclog "github.com/hashicorp/go-hclog"

	"focustracker/internal/modules/transfer/domain"
	"focustracker/internal/modules/transfer/dto"
	transferin "focustracker/internal/modules/transfer/port/in"
	"focustracker/internal/modules/transfer/service"
	"focustracker/internal/platform/logging"
)

type Interactor struct {
	svc    *service.TransferService
	logger hclog.Logger
}

func NewInteractor(svc *service.TransferService, logger hclog.Logger) transferin.Usecase {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Interactor{svc: svc, logger: logger.Named("transfer")}
}

func (i *Interactor) Export(ctx context.Context, dir string) (dto.ExportOutput, error) {
	path, data, size, err := i.svc.ExportFile(ctx, dir)
	if err != nil {
		return dto.ExportOutput{}, err
	}
	i.logger.Info("exported data", "path", path, "sessions", len(data.Sessions))
	return dto.ExportOutput{Path: path, Sessions: len(data.Sessions), SizeBytes: size}, nil
}

func (i *Interactor) ExportTo(ctx context.Context, w io.Writer) error {
	_, payload, err := i.svc.Build(ctx)
	if err != nil {
		return err
	}
	if _, err := w.Write(append(payload, '\n')); err != nil {
		return fmt.Errorf("write export: %w", err)
	}
	return nil
}

func (i *Interactor) Import(ctx context.Context, path string) (dto.ImportOutput, error) {
	data, err := i.svc.ImportFile(ctx, path)
	if err != nil {
		i.logger.Warn("import rejected", "path", path, "error", err)
		return dto.ImportOutput{Message: domain.UserMessage(err)}, err
	}
	i.logger.Info("imported data", "path", path, "sessions", len(data.Sessions))
	return dto.ImportOutput{Sessions: len(data.Sessions), Message: domain.UserMessage(nil)}, nil
}

func (i *Interactor) ImportBytes(ctx context.Context, raw []byte) (dto.ImportOutput, error) {
	data, err := i.svc.ImportBytes(ctx, raw)
	if err != nil {
		i.logger.Warn("import rejected", "error", err)
		return dto.ImportOutput{Message: domain.UserMessage(err)}, err
	}
	return dto.ImportOutput{Sessions: len(data.Sessions), Message: domain.UserMessage(nil)}, nil
}

package in

import (
	"context"
	"io"

	"focustracker/internal/modules/transfer/dto"
)

type Usecase interface {
	Export(ctx context.Context, dir string) (dto.ExportOutput, error)
	ExportTo(ctx context.Context, w io.Writer) error
	Import(ctx context.Context, path string) (dto.ImportOutput, error)
	ImportBytes(ctx context.Context, raw []byte) (dto.ImportOutput, error)
}

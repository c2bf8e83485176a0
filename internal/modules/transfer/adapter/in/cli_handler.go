package in

import (
	"context"
	"io"

	transferdto "focustracker/internal/modules/transfer/dto"
	transferin "focustracker/internal/modules/transfer/port/in"
)

type CLIHandler struct {
	usecase transferin.Usecase
}

func NewCLIHandler(usecase transferin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Export(ctx context.Context, dir string) (transferdto.ExportOutput, error) {
	return h.usecase.Export(ctx, dir)
}

func (h CLIHandler) ExportTo(ctx context.Context, w io.Writer) error {
	return h.usecase.ExportTo(ctx, w)
}

func (h CLIHandler) Import(ctx context.Context, path string) (transferdto.ImportOutput, error) {
	return h.usecase.Import(ctx, path)
}

package in

import (
	"context"

	"syntaxlabs/internal/modules/report/dto"
)

type Usecase interface {
	// Full builds the progress report of the logged-in user.
	Full(ctx context.Context) (dto.ReportOutput, error)
	// Code analyses the programming view's editor buffer.
	Code(ctx context.Context) (dto.ReportOutput, error)
	CodeFor(ctx context.Context, language, source string) (dto.ReportOutput, error)
	Save(ctx context.Context, report dto.ReportOutput, dir string) (dto.SavedReport, error)
}

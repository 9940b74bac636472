package in

import (
	"context"

	reportdto "syntaxlabs/internal/modules/report/dto"
	reportin "syntaxlabs/internal/modules/report/port/in"
)

type CLIHandler struct {
	usecase reportin.Usecase
}

func NewCLIHandler(usecase reportin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

// Progress builds the progress report and, when dir is set, saves it there.
func (h CLIHandler) Progress(ctx context.Context, dir string) (reportdto.ReportOutput, *reportdto.SavedReport, error) {
	report, err := h.usecase.Full(ctx)
	if err != nil {
		return reportdto.ReportOutput{}, nil, err
	}
	return h.maybeSave(ctx, report, dir)
}

func (h CLIHandler) Code(ctx context.Context, language, source, dir string) (reportdto.ReportOutput, *reportdto.SavedReport, error) {
	report, err := h.usecase.CodeFor(ctx, language, source)
	if err != nil {
		return reportdto.ReportOutput{}, nil, err
	}
	return h.maybeSave(ctx, report, dir)
}

func (h CLIHandler) maybeSave(ctx context.Context, report reportdto.ReportOutput, dir string) (reportdto.ReportOutput, *reportdto.SavedReport, error) {
	if dir == "" {
		return report, nil, nil
	}
	saved, err := h.usecase.Save(ctx, report, dir)
	if err != nil {
		return report, nil, err
	}
	return report, &saved, nil
}

package usecase

import (
	"context"
	"fmt"
	"strings"

	playgroundin "syntaxlabs/internal/modules/playground/port/in"
	progressin "syntaxlabs/internal/modules/progress/port/in"
	"syntaxlabs/internal/modules/report/domain"
	reportdto "syntaxlabs/internal/modules/report/dto"
	reportin "syntaxlabs/internal/modules/report/port/in"
	reportout "syntaxlabs/internal/modules/report/port/out"
	"syntaxlabs/internal/modules/report/service"
	sessionin "syntaxlabs/internal/modules/session/port/in"
	"syntaxlabs/internal/platform/clock"
	apperrors "syntaxlabs/internal/platform/errors"
	"syntaxlabs/internal/platform/logger"
	"syntaxlabs/internal/platform/markdown"
	"syntaxlabs/internal/platform/slug"
)

type Interactor struct {
	svc        *service.ReportService
	session    sessionin.Usecase
	progress   progressin.Usecase
	playground playgroundin.Usecase
	files      reportout.FileWriter
	clock      clock.Clock
	log        *logger.Logger
}

func NewInteractor(
	svc *service.ReportService,
	session sessionin.Usecase,
	progress progressin.Usecase,
	playground playgroundin.Usecase,
	files reportout.FileWriter,
	clk clock.Clock,
	log *logger.Logger,
) reportin.Usecase {
	if log == nil {
		log = logger.Nop()
	}
	return &Interactor{
		svc:        svc,
		session:    session,
		progress:   progress,
		playground: playground,
		files:      files,
		clock:      clk,
		log:        log.With("module", "report"),
	}
}

func (i *Interactor) Full(ctx context.Context) (reportdto.ReportOutput, error) {
	if _, err := i.session.Current(ctx); err != nil {
		return reportdto.ReportOutput{}, err
	}
	snapshot, err := i.progress.Get(ctx)
	if err != nil {
		return reportdto.ReportOutput{}, err
	}
	doc, err := i.svc.Progress(snapshot, i.clock.Now())
	if err != nil {
		return reportdto.ReportOutput{}, err
	}
	return toOutput(doc), nil
}

func (i *Interactor) Code(ctx context.Context) (reportdto.ReportOutput, error) {
	editor := i.playground.Editor(ctx)
	return i.CodeFor(ctx, editor.Language, editor.Source)
}

func (i *Interactor) CodeFor(_ context.Context, language, source string) (reportdto.ReportOutput, error) {
	if strings.TrimSpace(language) == "" {
		return reportdto.ReportOutput{}, apperrors.ErrNoLanguage
	}
	if strings.TrimSpace(source) == "" {
		return reportdto.ReportOutput{}, apperrors.ErrEmptySource
	}
	doc, err := i.svc.Code(language, source, i.clock.Now())
	if err != nil {
		return reportdto.ReportOutput{}, err
	}
	return toOutput(doc), nil
}

// Save writes the report as <slug>-<unix seconds>.md under dir.
func (i *Interactor) Save(ctx context.Context, report reportdto.ReportOutput, dir string) (reportdto.SavedReport, error) {
	if report.Markdown == "" {
		return reportdto.SavedReport{}, apperrors.Validation("report", "Nothing to save.")
	}
	name := fmt.Sprintf("%s-%d.md", slug.Make(report.Title), report.GeneratedAt.Unix())
	path, err := i.files.Write(ctx, dir, name, []byte(report.Markdown))
	if err != nil {
		return reportdto.SavedReport{}, err
	}
	i.log.Info("report saved", "kind", report.Kind, "path", path)
	return reportdto.SavedReport{FileName: name, Path: path}, nil
}

func toOutput(doc domain.Document) reportdto.ReportOutput {
	return reportdto.ReportOutput{
		Kind:        string(doc.Meta.Kind),
		Title:       doc.Meta.Title,
		Language:    doc.Meta.Language,
		GeneratedAt: doc.GeneratedAt,
		Markdown:    doc.Content,
		Body:        markdown.Body(doc.Content),
	}
}

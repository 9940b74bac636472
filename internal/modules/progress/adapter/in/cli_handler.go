package in

import (
	"context"

	progressdto "syntaxlabs/internal/modules/progress/dto"
	progressin "syntaxlabs/internal/modules/progress/port/in"
)

type CLIHandler struct {
	usecase progressin.Usecase
}

func NewCLIHandler(usecase progressin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Show(ctx context.Context) (progressdto.SnapshotOutput, error) {
	return h.usecase.Get(ctx)
}

func (h CLIHandler) Reset(ctx context.Context) (progressdto.SnapshotOutput, error) {
	return h.usecase.Reset(ctx)
}

func (h CLIHandler) Settings(ctx context.Context) (progressdto.SettingsOutput, error) {
	return h.usecase.Settings(ctx)
}

func (h CLIHandler) SetSetting(ctx context.Context, key string, value bool) (progressdto.SettingsOutput, error) {
	return h.usecase.SaveSetting(ctx, key, value)
}

func (h CLIHandler) Ranking(ctx context.Context) ([]progressdto.RankEntry, error) {
	return h.usecase.Ranking(ctx)
}

func (h CLIHandler) Export(ctx context.Context, dir string) (progressdto.ExportOutput, error) {
	return h.usecase.Export(ctx, dir)
}

func (h CLIHandler) Import(ctx context.Context, payload []byte) error {
	return h.usecase.Import(ctx, payload)
}

func (h CLIHandler) DeleteAccount(ctx context.Context) error {
	return h.usecase.DeleteAccount(ctx)
}

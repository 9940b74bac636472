package in

import (
	"context"

	"syntaxlabs/internal/modules/progress/dto"
)

type Usecase interface {
	Get(ctx context.Context) (dto.SnapshotOutput, error)
	Reset(ctx context.Context) (dto.SnapshotOutput, error)
	Settings(ctx context.Context) (dto.SettingsOutput, error)
	SaveSetting(ctx context.Context, key string, value bool) (dto.SettingsOutput, error)
	Ranking(ctx context.Context) ([]dto.RankEntry, error)
	Overview(ctx context.Context) (dto.OverviewOutput, error)
	// Export builds the account dump and, when dir is set, writes it there.
	Export(ctx context.Context, dir string) (dto.ExportOutput, error)
	Import(ctx context.Context, payload []byte) error
	DeleteAccount(ctx context.Context) error
}

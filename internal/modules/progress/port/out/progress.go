package out

import (
	"context"
	"encoding/json"

	"syntaxlabs/internal/modules/progress/domain"
	"syntaxlabs/internal/platform/tx"
)

// Store persists progress data. Within makes a group of writes atomic.
type Store interface {
	tx.Manager
	LoadSnapshot(ctx context.Context) (domain.Snapshot, bool, error)
	SaveSnapshot(ctx context.Context, snapshot domain.Snapshot) error
	LoadSettings(ctx context.Context) (domain.Settings, bool, error)
	SaveSettings(ctx context.Context, settings domain.Settings) error
	// DarkTheme reports whether the stored theme is dark (the default).
	DarkTheme(ctx context.Context) (bool, error)
	LoadUser(ctx context.Context) (json.RawMessage, bool, error)
	SaveUser(ctx context.Context, user json.RawMessage) error
	// ClearUser removes the stored user and token, not the live session.
	ClearUser(ctx context.Context) error
	DeleteUserData(ctx context.Context) error
}

type FileWriter interface {
	Write(ctx context.Context, dir, name string, payload []byte) (string, error)
}

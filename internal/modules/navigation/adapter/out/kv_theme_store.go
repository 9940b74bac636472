package out

import (
	"context"

	"syntaxlabs/internal/modules/navigation/domain"
	navigationout "syntaxlabs/internal/modules/navigation/port/out"
	"syntaxlabs/internal/platform/kvstore"
)

// KVThemeStore keeps the theme as a plain string, not JSON.
type KVThemeStore struct {
	kv kvstore.Store
}

func NewKVThemeStore(kv kvstore.Store) navigationout.ThemeStore {
	return &KVThemeStore{kv: kv}
}

func (s *KVThemeStore) LoadTheme(ctx context.Context) (domain.Theme, error) {
	raw, ok, err := s.kv.Get(ctx, kvstore.KeyTheme)
	if err != nil {
		return "", err
	}
	if !ok {
		return domain.ThemeDark, nil
	}
	return domain.ParseTheme(raw), nil
}

func (s *KVThemeStore) SaveTheme(ctx context.Context, theme domain.Theme) error {
	return s.kv.Set(ctx, kvstore.KeyTheme, string(theme))
}

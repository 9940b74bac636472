package out

import (
	"context"
	"encoding/json"

	"syntaxlabs/internal/modules/progress/domain"
	progressout "syntaxlabs/internal/modules/progress/port/out"
	"syntaxlabs/internal/platform/kvstore"
	"syntaxlabs/internal/platform/logger"
)

type KVProgressStore struct {
	kv  kvstore.Store
	log *logger.Logger
}

func NewKVProgressStore(kv kvstore.Store, log *logger.Logger) progressout.Store {
	return &KVProgressStore{kv: kv, log: log}
}

func (s *KVProgressStore) Within(ctx context.Context, fn func(context.Context) error) error {
	return s.kv.Within(ctx, fn)
}

func (s *KVProgressStore) LoadSnapshot(ctx context.Context) (domain.Snapshot, bool, error) {
	snapshot := domain.Snapshot{}
	ok, err := kvstore.LoadJSON(ctx, s.kv, kvstore.KeyUserProgress, &snapshot, s.log)
	if err != nil || !ok {
		return domain.Snapshot{}, false, err
	}
	if snapshot.Languages == nil {
		snapshot.Languages = map[string]domain.LanguageProgress{}
	}
	return snapshot, true, nil
}

func (s *KVProgressStore) SaveSnapshot(ctx context.Context, snapshot domain.Snapshot) error {
	return kvstore.SaveJSON(ctx, s.kv, kvstore.KeyUserProgress, snapshot)
}

func (s *KVProgressStore) LoadSettings(ctx context.Context) (domain.Settings, bool, error) {
	settings := domain.Settings{}
	ok, err := kvstore.LoadJSON(ctx, s.kv, kvstore.KeyUserSettings, &settings, s.log)
	if err != nil || !ok {
		return domain.Settings{}, false, err
	}
	return settings, true, nil
}

func (s *KVProgressStore) SaveSettings(ctx context.Context, settings domain.Settings) error {
	return kvstore.SaveJSON(ctx, s.kv, kvstore.KeyUserSettings, settings)
}

func (s *KVProgressStore) DarkTheme(ctx context.Context) (bool, error) {
	theme, ok, err := s.kv.Get(ctx, kvstore.KeyTheme)
	if err != nil {
		return false, err
	}
	return !ok || theme != "light", nil
}

func (s *KVProgressStore) LoadUser(ctx context.Context) (json.RawMessage, bool, error) {
	raw, ok, err := s.kv.Get(ctx, kvstore.KeyCurrentUser)
	if err != nil || !ok {
		return nil, false, err
	}
	if !json.Valid([]byte(raw)) {
		s.log.Warn("storage corruption, treating value as absent", "key", kvstore.KeyCurrentUser)
		return nil, false, nil
	}
	return json.RawMessage(raw), true, nil
}

func (s *KVProgressStore) SaveUser(ctx context.Context, user json.RawMessage) error {
	return s.kv.Set(ctx, kvstore.KeyCurrentUser, string(user))
}

func (s *KVProgressStore) ClearUser(ctx context.Context) error {
	for _, key := range []string{kvstore.KeyCurrentUser, kvstore.KeyAuthToken} {
		if err := s.kv.Delete(ctx, key); err != nil {
			return err
		}
	}
	return nil
}

func (s *KVProgressStore) DeleteUserData(ctx context.Context) error {
	for _, key := range []string{kvstore.KeyUserProgress, kvstore.KeyUserSettings, kvstore.KeySavedCode} {
		if err := s.kv.Delete(ctx, key); err != nil {
			return err
		}
	}
	return nil
}

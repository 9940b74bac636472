package out

import (
	"context"

	"syntaxlabs/internal/modules/playground/domain"
	playgroundout "syntaxlabs/internal/modules/playground/port/out"
	"syntaxlabs/internal/platform/kvstore"
	"syntaxlabs/internal/platform/logger"
)

type KVCodeStore struct {
	kv  kvstore.Store
	log *logger.Logger
}

func NewKVCodeStore(kv kvstore.Store, log *logger.Logger) playgroundout.CodeStore {
	return &KVCodeStore{kv: kv, log: log}
}

func (s *KVCodeStore) Load(ctx context.Context) (map[string]domain.SavedCode, error) {
	code := map[string]domain.SavedCode{}
	ok, err := kvstore.LoadJSON(ctx, s.kv, kvstore.KeySavedCode, &code, s.log)
	if err != nil {
		return nil, err
	}
	if !ok || code == nil {
		return map[string]domain.SavedCode{}, nil
	}
	return code, nil
}

func (s *KVCodeStore) Save(ctx context.Context, code map[string]domain.SavedCode) error {
	return kvstore.SaveJSON(ctx, s.kv, kvstore.KeySavedCode, code)
}

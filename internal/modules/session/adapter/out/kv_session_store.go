package out

import (
	"context"

	"syntaxlabs/internal/modules/session/domain"
	sessionout "syntaxlabs/internal/modules/session/port/out"
	"syntaxlabs/internal/platform/kvstore"
	"syntaxlabs/internal/platform/logger"
)

type KVSessionStore struct {
	kv  kvstore.Store
	log *logger.Logger
}

func NewKVSessionStore(kv kvstore.Store, log *logger.Logger) sessionout.SessionStore {
	return &KVSessionStore{kv: kv, log: log}
}

func (s *KVSessionStore) Within(ctx context.Context, fn func(context.Context) error) error {
	return s.kv.Within(ctx, fn)
}

func (s *KVSessionStore) Save(ctx context.Context, session domain.Session) error {
	return kvstore.SaveJSON(ctx, s.kv, kvstore.KeyCurrentUser, session)
}

func (s *KVSessionStore) SaveToken(ctx context.Context, token string) error {
	return s.kv.Set(ctx, kvstore.KeyAuthToken, token)
}

// Load restores the mirrored session as-is. There is no signature or expiry
// check on the stored value.
func (s *KVSessionStore) Load(ctx context.Context) (domain.Session, bool, error) {
	session := domain.Session{}
	ok, err := kvstore.LoadJSON(ctx, s.kv, kvstore.KeyCurrentUser, &session, s.log)
	if err != nil || !ok {
		return domain.Session{}, false, err
	}
	return session, true, nil
}

func (s *KVSessionStore) Clear(ctx context.Context) error {
	return s.kv.Within(ctx, func(ctx context.Context) error {
		if err := s.kv.Delete(ctx, kvstore.KeyCurrentUser); err != nil {
			return err
		}
		return s.kv.Delete(ctx, kvstore.KeyAuthToken)
	})
}

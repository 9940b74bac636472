package kvstore

import (
	"context"
	"encoding/json"
	"fmt"

	"syntaxlabs/internal/platform/logger"
	"syntaxlabs/internal/platform/tx"
)

// Keys written by the application. Values are JSON unless noted.
const (
	KeyTheme        = "theme" // plain string
	KeyCurrentUser  = "currentUser"
	KeyAuthToken    = "authToken" // plain string
	KeyUserProgress = "userProgress"
	KeyUserSettings = "userSettings"
	KeySavedCode    = "userAdvancedCode"
)

// Store is a synchronous, last-write-wins string key-value store. Within
// groups several writes so that they land together or not at all.
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Keys(ctx context.Context) ([]string, error)
	tx.Manager
}

// LoadJSON decodes the value under key into v. A missing key reports false.
// A value that is not valid JSON is logged and reported as missing too.
func LoadJSON(ctx context.Context, store Store, key string, v any, log *logger.Logger) (bool, error) {
	raw, ok, err := store.Get(ctx, key)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		if log != nil {
			log.Warn("storage corruption, treating value as absent", "key", key, "error", err)
		}
		return false, nil
	}
	return true, nil
}

func SaveJSON(ctx context.Context, store Store, key string, v any) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}
	return store.Set(ctx, key, string(payload))
}

package out

import (
	"context"

	"syntaxlabs/internal/modules/session/domain"
	"syntaxlabs/internal/platform/tx"
)

// SessionStore mirrors the live session. Within groups the user and token
// writes so they land together.
type SessionStore interface {
	tx.Manager
	Save(ctx context.Context, session domain.Session) error
	SaveToken(ctx context.Context, token string) error
	Load(ctx context.Context) (domain.Session, bool, error)
	Clear(ctx context.Context) error
}

type TokenIssuer interface {
	Issue(session domain.Session) (string, error)
}

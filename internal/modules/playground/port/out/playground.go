package out

import (
	"context"

	"syntaxlabs/internal/modules/playground/domain"
)

// ScriptEngine evaluates source for the one language that really runs.
type ScriptEngine interface {
	Eval(ctx context.Context, source string) (string, error)
}

// CodeStore keeps the saved code map keyed by language name.
type CodeStore interface {
	Load(ctx context.Context) (map[string]domain.SavedCode, error)
	Save(ctx context.Context, code map[string]domain.SavedCode) error
}

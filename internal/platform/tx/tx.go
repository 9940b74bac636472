package tx

import "context"

// Manager wraps transactional boundaries for multi-key writes. Stores
// joined through ctx see the writes of fn as one unit.
type Manager interface {
	Within(ctx context.Context, fn func(context.Context) error) error
}

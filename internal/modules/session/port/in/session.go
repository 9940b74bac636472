package in

import (
	"context"

	"syntaxlabs/internal/modules/session/dto"
)

type Usecase interface {
	Login(ctx context.Context, input dto.LoginInput) (dto.SessionOutput, error)
	Register(ctx context.Context, input dto.RegisterInput) (dto.RegisterOutput, error)
	Logout(ctx context.Context) error
	// Forget ends the session without asking; callers have already confirmed.
	Forget(ctx context.Context) error
	Restore(ctx context.Context) (dto.SessionOutput, error)
	Current(ctx context.Context) (dto.SessionOutput, error)
	Rename(ctx context.Context, name string) (dto.SessionOutput, error)
}

package in

import (
	"context"

	sessiondto "syntaxlabs/internal/modules/session/dto"
	sessionin "syntaxlabs/internal/modules/session/port/in"
)

type CLIHandler struct {
	usecase sessionin.Usecase
}

func NewCLIHandler(usecase sessionin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Login(ctx context.Context, profile, name, email, password string) (sessiondto.SessionOutput, error) {
	return h.usecase.Login(ctx, sessiondto.LoginInput{Profile: profile, Name: name, Email: email, Password: password})
}

func (h CLIHandler) Register(ctx context.Context, profile, name, email, password, confirm string) (sessiondto.RegisterOutput, error) {
	return h.usecase.Register(ctx, sessiondto.RegisterInput{Profile: profile, Name: name, Email: email, Password: password, Confirm: confirm})
}

func (h CLIHandler) Logout(ctx context.Context) error {
	return h.usecase.Logout(ctx)
}

func (h CLIHandler) WhoAmI(ctx context.Context) (sessiondto.SessionOutput, error) {
	return h.usecase.Current(ctx)
}

func (h CLIHandler) Rename(ctx context.Context, name string) (sessiondto.SessionOutput, error) {
	return h.usecase.Rename(ctx, name)
}

package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"syntaxlabs/internal/modules/session/domain"
	sessiondto "syntaxlabs/internal/modules/session/dto"
	sessionin "syntaxlabs/internal/modules/session/port/in"
	sessionout "syntaxlabs/internal/modules/session/port/out"
	"syntaxlabs/internal/modules/session/service"
	apperrors "syntaxlabs/internal/platform/errors"
	"syntaxlabs/internal/platform/logger"
	"syntaxlabs/internal/platform/prompt"
)

// Interactor owns the one live session. The in-memory copy is the source of
// truth; the store only mirrors it for the next start. Logins run on UI
// worker goroutines, so current is read and swapped under mu.
type Interactor struct {
	svc     *service.SessionService
	store   sessionout.SessionStore
	confirm prompt.Confirmer
	log     *logger.Logger

	mu      sync.RWMutex
	current *domain.Session
}

func NewInteractor(svc *service.SessionService, store sessionout.SessionStore, confirm prompt.Confirmer, log *logger.Logger) sessionin.Usecase {
	if log == nil {
		log = logger.Nop()
	}
	return &Interactor{svc: svc, store: store, confirm: confirm, log: log.With("module", "session")}
}

func (i *Interactor) Login(ctx context.Context, input sessiondto.LoginInput) (sessiondto.SessionOutput, error) {
	kind, err := i.svc.ValidateLogin(input.Profile, input.Email, input.Password)
	if err != nil {
		return sessiondto.SessionOutput{}, err
	}
	session, token, err := i.svc.Login(ctx, kind, input.Name, input.Email)
	if err != nil {
		return sessiondto.SessionOutput{}, err
	}
	err = i.store.Within(ctx, func(ctx context.Context) error {
		if err := i.store.Save(ctx, session); err != nil {
			return err
		}
		return i.store.SaveToken(ctx, token)
	})
	if err != nil {
		return sessiondto.SessionOutput{}, fmt.Errorf("store session: %w", err)
	}
	i.mu.Lock()
	replaced := i.current != nil
	i.current = &session
	i.mu.Unlock()
	i.log.Info("session started", "profile", string(session.Profile), "replaced", replaced)
	return toOutput(session), nil
}

func (i *Interactor) Register(ctx context.Context, input sessiondto.RegisterInput) (sessiondto.RegisterOutput, error) {
	kind, err := i.svc.ValidateRegister(input.Profile, input.Name, input.Email, input.Password, input.Confirm)
	if err != nil {
		return sessiondto.RegisterOutput{}, err
	}
	i.svc.Register(ctx)
	i.log.Info("account registered", "profile", string(kind))
	return sessiondto.RegisterOutput{Profile: string(kind), NextStep: "login"}, nil
}

func (i *Interactor) Logout(ctx context.Context) error {
	if _, ok := i.session(); !ok {
		return apperrors.ErrNoSession
	}
	ok, err := i.confirm.Confirm(ctx, "Are you sure you want to log out?")
	if err != nil {
		return err
	}
	if !ok {
		return apperrors.ErrNotConfirmed
	}
	return i.Forget(ctx)
}

func (i *Interactor) Forget(ctx context.Context) error {
	if err := i.store.Clear(ctx); err != nil {
		return err
	}
	i.mu.Lock()
	i.current = nil
	i.mu.Unlock()
	i.log.Info("session ended")
	return nil
}

func (i *Interactor) Restore(ctx context.Context) (sessiondto.SessionOutput, error) {
	session, ok, err := i.store.Load(ctx)
	if err != nil {
		return sessiondto.SessionOutput{}, err
	}
	if !ok {
		return sessiondto.SessionOutput{}, apperrors.ErrNoSession
	}
	i.mu.Lock()
	i.current = &session
	i.mu.Unlock()
	return toOutput(session), nil
}

func (i *Interactor) Current(context.Context) (sessiondto.SessionOutput, error) {
	session, ok := i.session()
	if !ok {
		return sessiondto.SessionOutput{}, apperrors.ErrNoSession
	}
	return toOutput(session), nil
}

func (i *Interactor) Rename(ctx context.Context, name string) (sessiondto.SessionOutput, error) {
	current, ok := i.session()
	if !ok {
		return sessiondto.SessionOutput{}, apperrors.ErrNoSession
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return sessiondto.SessionOutput{}, apperrors.Validation("name", "Name cannot be empty.")
	}
	current.Name = name
	if err := i.store.Save(ctx, current); err != nil {
		return sessiondto.SessionOutput{}, err
	}
	i.mu.Lock()
	i.current = &current
	i.mu.Unlock()
	return toOutput(current), nil
}

func (i *Interactor) session() (domain.Session, bool) {
	i.mu.RLock()
	defer i.mu.RUnlock()
	if i.current == nil {
		return domain.Session{}, false
	}
	return *i.current, true
}

func toOutput(s domain.Session) sessiondto.SessionOutput {
	return sessiondto.SessionOutput{
		ID:        s.ID,
		Name:      s.Name,
		Email:     s.Email,
		Profile:   string(s.Profile),
		Level:     s.Level,
		Points:    s.Points,
		Specialty: s.Specialty,
		Plan:      s.Plan,
		Employees: s.Employees,
	}
}

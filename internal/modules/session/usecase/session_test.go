package usecase_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	sessionout "syntaxlabs/internal/modules/session/adapter/out"
	"syntaxlabs/internal/modules/session/domain"
	sessiondto "syntaxlabs/internal/modules/session/dto"
	sessionin "syntaxlabs/internal/modules/session/port/in"
	"syntaxlabs/internal/modules/session/service"
	"syntaxlabs/internal/modules/session/usecase"
	apperrors "syntaxlabs/internal/platform/errors"
	"syntaxlabs/internal/platform/kvstore"
	"syntaxlabs/internal/platform/logger"
	"syntaxlabs/internal/platform/prompt"
)

type fakeClock struct {
	now time.Time
}

func (f *fakeClock) Now() time.Time {
	f.now = f.now.Add(time.Second)
	return f.now
}

type recordingSleeper struct {
	slept []time.Duration
}

func (r *recordingSleeper) Sleep(d time.Duration) { r.slept = append(r.slept, d) }

type fakeID struct{}

func (fakeID) New() string { return "jti-1" }

func newInteractor(t *testing.T, kv kvstore.Store, confirm prompt.Confirmer) (sessionin.Usecase, *recordingSleeper) {
	t.Helper()
	sleeper := &recordingSleeper{}
	svc := service.NewSessionService(
		&fakeClock{now: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)},
		sleeper,
		sessionout.NewJWTIssuer("test-secret", fakeID{}),
		service.Delays{Login: 1500 * time.Millisecond, Register: 2 * time.Second},
	)
	return usecase.NewInteractor(svc, sessionout.NewKVSessionStore(kv, logger.Nop()), confirm, logger.Nop()), sleeper
}

func TestLoginReplacesPreviousSession(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	kv := kvstore.NewMemoryStore()
	uc, sleeper := newInteractor(t, kv, prompt.Always(true))

	first, err := uc.Login(ctx, sessiondto.LoginInput{Profile: "student", Email: "ana@example.com", Password: "x"})
	if err != nil {
		t.Fatalf("first login: %v", err)
	}
	second, err := uc.Login(ctx, sessiondto.LoginInput{Profile: "company", Email: "ops@acme.io", Password: "y", Name: "Acme"})
	if err != nil {
		t.Fatalf("second login: %v", err)
	}
	if second.ID == first.ID {
		t.Fatalf("second login must create a new session")
	}

	current, err := uc.Current(ctx)
	if err != nil {
		t.Fatalf("current: %v", err)
	}
	if current.Email != "ops@acme.io" || current.Profile != "company" || current.Name != "Acme" {
		t.Fatalf("expected second session to be live, got %+v", current)
	}
	if current.Specialty != "" || current.Points != 0 || current.Plan != "Corporate" {
		t.Fatalf("session must be replaced, not merged: %+v", current)
	}

	raw, ok, _ := kv.Get(ctx, kvstore.KeyCurrentUser)
	if !ok {
		t.Fatalf("session must be mirrored to the store")
	}
	stored := domain.Session{}
	if err := json.Unmarshal([]byte(raw), &stored); err != nil {
		t.Fatalf("decode stored session: %v", err)
	}
	if stored.Email != "ops@acme.io" {
		t.Fatalf("store holds stale session %+v", stored)
	}
	if token, ok, _ := kv.Get(ctx, kvstore.KeyAuthToken); !ok || token == "" {
		t.Fatalf("auth token must be written on login")
	}
	if len(sleeper.slept) != 2 || sleeper.slept[0] != 1500*time.Millisecond {
		t.Fatalf("expected one login delay per login, got %v", sleeper.slept)
	}
}

func TestLoginValidationLeavesStateUnchanged(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	kv := kvstore.NewMemoryStore()
	uc, sleeper := newInteractor(t, kv, prompt.Always(true))

	cases := []sessiondto.LoginInput{
		{Profile: "student", Email: "", Password: "x"},
		{Profile: "student", Email: "ana@example.com", Password: ""},
		{Profile: "student", Email: "ana@example", Password: "x"},
		{Profile: "wizard", Email: "ana@example.com", Password: "x"},
	}
	for _, input := range cases {
		_, err := uc.Login(ctx, input)
		if !errors.Is(err, apperrors.ErrInvalidInput) {
			t.Fatalf("input %+v: expected validation error, got %v", input, err)
		}
		var verr *apperrors.ValidationError
		if !errors.As(err, &verr) || verr.Message == "" {
			t.Fatalf("validation error must carry a user message: %v", err)
		}
	}
	if _, err := uc.Current(ctx); !errors.Is(err, apperrors.ErrNoSession) {
		t.Fatalf("no session expected after failed logins, got %v", err)
	}
	if keys, _ := kv.Keys(ctx); len(keys) != 0 {
		t.Fatalf("store must stay empty, got %v", keys)
	}
	if len(sleeper.slept) != 0 {
		t.Fatalf("validation failures must not wait, got %v", sleeper.slept)
	}
}

func TestRegisterThenLoginSucceeds(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	kv := kvstore.NewMemoryStore()
	uc, _ := newInteractor(t, kv, prompt.Always(true))

	out, err := uc.Register(ctx, sessiondto.RegisterInput{
		Profile: "professional", Name: "Rui", Email: "rui@example.com", Password: "secret1", Confirm: "secret1",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if out.NextStep != "login" {
		t.Fatalf("register must route to login, got %q", out.NextStep)
	}
	if _, err := uc.Current(ctx); !errors.Is(err, apperrors.ErrNoSession) {
		t.Fatalf("register must not log in, got %v", err)
	}
	if keys, _ := kv.Keys(ctx); len(keys) != 0 {
		t.Fatalf("register must not persist anything, got %v", keys)
	}

	// Login does not check the registered password.
	session, err := uc.Login(ctx, sessiondto.LoginInput{Profile: "professional", Email: "rui@example.com", Password: "anything"})
	if err != nil {
		t.Fatalf("login after register: %v", err)
	}
	if session.Level != 7 || session.Points != 2000 {
		t.Fatalf("unexpected professional defaults %+v", session)
	}
}

func TestRegisterValidation(t *testing.T) {
	t.Parallel()
	uc, _ := newInteractor(t, kvstore.NewMemoryStore(), prompt.Always(true))
	cases := map[string]sessiondto.RegisterInput{
		"missing name":   {Profile: "student", Email: "a@b.co", Password: "secret1", Confirm: "secret1"},
		"bad email":      {Profile: "student", Name: "A", Email: "a@b", Password: "secret1", Confirm: "secret1"},
		"short password": {Profile: "student", Name: "A", Email: "a@b.co", Password: "12345", Confirm: "12345"},
		"mismatch":       {Profile: "student", Name: "A", Email: "a@b.co", Password: "secret1", Confirm: "secret2"},
	}
	for name, input := range cases {
		if _, err := uc.Register(context.Background(), input); !errors.Is(err, apperrors.ErrInvalidInput) {
			t.Fatalf("%s: expected validation error, got %v", name, err)
		}
	}
}

func TestLogoutRequiresConfirmation(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	kv := kvstore.NewMemoryStore()
	confirm := &prompt.Scripted{Answers: []bool{false, true}}
	uc, _ := newInteractor(t, kv, confirm)

	if err := uc.Logout(ctx); !errors.Is(err, apperrors.ErrNoSession) {
		t.Fatalf("logout without session: %v", err)
	}
	if _, err := uc.Login(ctx, sessiondto.LoginInput{Profile: "student", Email: "ana@example.com", Password: "x"}); err != nil {
		t.Fatalf("login: %v", err)
	}

	if err := uc.Logout(ctx); !errors.Is(err, apperrors.ErrNotConfirmed) {
		t.Fatalf("declined logout must report not confirmed, got %v", err)
	}
	if _, err := uc.Current(ctx); err != nil {
		t.Fatalf("declined logout must keep the session: %v", err)
	}

	if err := uc.Logout(ctx); err != nil {
		t.Fatalf("confirmed logout: %v", err)
	}
	if _, err := uc.Current(ctx); !errors.Is(err, apperrors.ErrNoSession) {
		t.Fatalf("session must be gone, got %v", err)
	}
	for _, key := range []string{kvstore.KeyCurrentUser, kvstore.KeyAuthToken} {
		if _, ok, _ := kv.Get(ctx, key); ok {
			t.Fatalf("%s must be removed on logout", key)
		}
	}
}

func TestRestoreAndRename(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	kv := kvstore.NewMemoryStore()
	_ = kvstore.SaveJSON(ctx, kv, kvstore.KeyCurrentUser, domain.NewSession(42, "Ana", "ana@example.com", domain.ProfileStudent))

	uc, _ := newInteractor(t, kv, prompt.Always(true))
	restored, err := uc.Restore(ctx)
	if err != nil {
		t.Fatalf("restore: %v", err)
	}
	if restored.ID != 42 || restored.Name != "Ana" {
		t.Fatalf("unexpected restored session %+v", restored)
	}

	renamed, err := uc.Rename(ctx, "  Ana Paula ")
	if err != nil {
		t.Fatalf("rename: %v", err)
	}
	if renamed.Name != "Ana Paula" {
		t.Fatalf("unexpected name %q", renamed.Name)
	}
	stored := domain.Session{}
	if ok, _ := kvstore.LoadJSON(ctx, kv, kvstore.KeyCurrentUser, &stored, nil); !ok || stored.Name != "Ana Paula" {
		t.Fatalf("rename must persist, got %+v", stored)
	}
	if _, err := uc.Rename(ctx, " "); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("blank rename must fail validation, got %v", err)
	}
}

func TestRestoreTreatsCorruptSessionAsAbsent(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	kv := kvstore.NewMemoryStore()
	_ = kv.Set(ctx, kvstore.KeyCurrentUser, "{broken")
	uc, _ := newInteractor(t, kv, prompt.Always(true))
	if _, err := uc.Restore(ctx); !errors.Is(err, apperrors.ErrNoSession) {
		t.Fatalf("expected no session for corrupt value, got %v", err)
	}
}

func TestLoginTokenWriteFailureKeepsPreviousSession(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	kv := kvstore.NewMemoryStore()
	uc, _ := newInteractor(t, kv, prompt.Always(true))

	if _, err := uc.Login(ctx, sessiondto.LoginInput{Profile: "student", Email: "ana@example.com", Password: "x"}); err != nil {
		t.Fatalf("first login: %v", err)
	}
	diskFull := errors.New("disk full")
	kv.Fail(kvstore.KeyAuthToken, diskFull)

	if _, err := uc.Login(ctx, sessiondto.LoginInput{Profile: "student", Email: "bob@example.com", Password: "y"}); !errors.Is(err, diskFull) {
		t.Fatalf("expected the store error, got %v", err)
	}
	current, err := uc.Current(ctx)
	if err != nil || current.Email != "ana@example.com" {
		t.Fatalf("failed login must keep the live session, got %+v %v", current, err)
	}
	stored := domain.Session{}
	if ok, _ := kvstore.LoadJSON(ctx, kv, kvstore.KeyCurrentUser, &stored, nil); !ok || stored.Email != "ana@example.com" {
		t.Fatalf("failed login must not reach the store, got %+v", stored)
	}
}

func TestLogoutDeleteFailureKeepsSessionStored(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	kv := kvstore.NewMemoryStore()
	uc, _ := newInteractor(t, kv, prompt.Always(true))

	if _, err := uc.Login(ctx, sessiondto.LoginInput{Profile: "student", Email: "ana@example.com", Password: "x"}); err != nil {
		t.Fatalf("login: %v", err)
	}
	diskFull := errors.New("disk full")
	kv.Fail(kvstore.KeyAuthToken, diskFull)

	if err := uc.Logout(ctx); !errors.Is(err, diskFull) {
		t.Fatalf("expected the store error, got %v", err)
	}
	if _, err := uc.Current(ctx); err != nil {
		t.Fatalf("failed logout must keep the session: %v", err)
	}
	if _, ok, _ := kv.Get(ctx, kvstore.KeyCurrentUser); !ok {
		t.Fatalf("currentUser must be rolled back with the token")
	}
}

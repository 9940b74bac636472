package service

import (
	"context"
	"strings"
	"time"

	"syntaxlabs/internal/modules/session/domain"
	sessionout "syntaxlabs/internal/modules/session/port/out"
	"syntaxlabs/internal/platform/clock"
	apperrors "syntaxlabs/internal/platform/errors"
)

type Delays struct {
	Login    time.Duration
	Register time.Duration
}

type SessionService struct {
	clock   clock.Clock
	sleeper clock.Sleeper
	issuer  sessionout.TokenIssuer
	delays  Delays
}

func NewSessionService(clock clock.Clock, sleeper clock.Sleeper, issuer sessionout.TokenIssuer, delays Delays) *SessionService {
	return &SessionService{clock: clock, sleeper: sleeper, issuer: issuer, delays: delays}
}

func (s *SessionService) ValidateLogin(profile, email, password string) (domain.ProfileKind, error) {
	kind, err := domain.ParseProfile(profile)
	if err != nil {
		return "", apperrors.Validation("profile", "Choose a profile: student, professional or company.")
	}
	if strings.TrimSpace(email) == "" || password == "" {
		return "", apperrors.Validation("email", "Please fill in all fields.")
	}
	if !domain.ValidEmail(email) {
		return "", apperrors.Validation("email", "Please enter a valid email address.")
	}
	return kind, nil
}

func (s *SessionService) ValidateRegister(profile, name, email, password, confirm string) (domain.ProfileKind, error) {
	kind, err := domain.ParseProfile(profile)
	if err != nil {
		return "", apperrors.Validation("profile", "Choose a profile: student, professional or company.")
	}
	if strings.TrimSpace(name) == "" || strings.TrimSpace(email) == "" || password == "" || confirm == "" {
		return "", apperrors.Validation("name", "Please fill in all required fields.")
	}
	if !domain.ValidEmail(email) {
		return "", apperrors.Validation("email", "Please enter a valid email address.")
	}
	if len(password) < 6 {
		return "", apperrors.Validation("password", "Password must be at least 6 characters long.")
	}
	if password != confirm {
		return "", apperrors.Validation("confirm", "Passwords do not match.")
	}
	return kind, nil
}

// Login waits out the simulated network delay and builds a fresh session
// with its placeholder token. Nothing is checked against registered data.
func (s *SessionService) Login(_ context.Context, kind domain.ProfileKind, name, email string) (domain.Session, string, error) {
	s.sleeper.Sleep(s.delays.Login)
	session := domain.NewSession(s.clock.Now().UnixMilli(), name, strings.TrimSpace(email), kind)
	token, err := s.issuer.Issue(session)
	if err != nil {
		return domain.Session{}, "", err
	}
	return session, token, nil
}

func (s *SessionService) Register(context.Context) {
	s.sleeper.Sleep(s.delays.Register)
}

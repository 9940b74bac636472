package out_test

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"

	sessionout "syntaxlabs/internal/modules/session/adapter/out"
	"syntaxlabs/internal/modules/session/domain"
)

type fixedID struct{}

func (fixedID) New() string { return "tok-1" }

func TestJWTIssuerEmbedsSessionClaims(t *testing.T) {
	t.Parallel()
	issuer := sessionout.NewJWTIssuer("secret", fixedID{})
	raw, err := issuer.Issue(domain.NewSession(1767225600000, "Ana", "ana@example.com", domain.ProfileStudent))
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	token, err := jwt.Parse(raw, func(*jwt.Token) (any, error) { return []byte("secret"), nil })
	if err != nil || !token.Valid {
		t.Fatalf("parse token: %v", err)
	}
	claims := token.Claims.(jwt.MapClaims)
	if sub, _ := claims.GetSubject(); sub != "1767225600000" {
		t.Fatalf("unexpected subject %q", sub)
	}
	if claims["profile"] != "student" || claims["jti"] != "tok-1" {
		t.Fatalf("unexpected claims %v", claims)
	}
}

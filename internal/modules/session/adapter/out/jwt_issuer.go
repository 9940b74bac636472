package out

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"syntaxlabs/internal/modules/session/domain"
	sessionout "syntaxlabs/internal/modules/session/port/out"
	"syntaxlabs/internal/platform/id"
)

// JWTIssuer mints the placeholder auth token kept next to the session.
// Nothing ever validates it.
type JWTIssuer struct {
	secret []byte
	ids    id.Generator
}

func NewJWTIssuer(secret string, ids id.Generator) sessionout.TokenIssuer {
	return &JWTIssuer{secret: []byte(secret), ids: ids}
}

func (j *JWTIssuer) Issue(session domain.Session) (string, error) {
	claims := jwt.MapClaims{
		"sub":     strconv.FormatInt(session.ID, 10),
		"profile": string(session.Profile),
		"iat":     time.UnixMilli(session.ID).Unix(),
		"jti":     j.ids.New(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(j.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return token, nil
}

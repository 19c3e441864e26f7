// Package token persists the bearer token between sessions. Two backends are
// provided: a file under the user's home directory and a Redis key.
package token

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Store is the persistence contract for the bearer token.
type Store interface {
	// Get returns the persisted token, or "" when none is stored.
	Get(ctx context.Context) (string, error)
	// Set persists the token.
	Set(ctx context.Context, token string) error
	// Clear removes the persisted token.
	Clear(ctx context.Context) error
}

// Expired reports whether tok is a JWT whose exp claim has passed. Opaque or
// unparsable tokens are never reported expired; the server stays the
// authority for those.
func Expired(tok string) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tok, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(time.Now())
}

// Package auth verifies session tokens minted by the external identity
// provider. The dashboard never issues tokens or stores credentials.
package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

type contextKey string

const userKeyContextKey = contextKey("user_key")

// WithUserKey stores the authenticated user's key on the request context.
func WithUserKey(ctx context.Context, userKey string) context.Context {
	return context.WithValue(ctx, userKeyContextKey, userKey)
}

// UserKeyFromContext returns the key stored by the auth middleware, or "".
func UserKeyFromContext(ctx context.Context) string {
	if val, ok := ctx.Value(userKeyContextKey).(string); ok {
		return val
	}
	return ""
}

var jwtSecret = []byte("waffy-dev-secret") // replaced from config at startup

// SetSecret installs the shared signing secret the identity provider uses.
func SetSecret(secret string) {
	if secret != "" {
		jwtSecret = []byte(secret)
	}
}

func ParseToken(tokenStr string) (*jwt.Token, error) {
	return jwt.Parse(tokenStr, func(t *jwt.Token) (any, error) {
		return jwtSecret, nil
	})
}

// TokenClaims extracts the claims from an Authorization header value.
func TokenClaims(authorization string) (*jwt.Token, jwt.MapClaims, error) {
	if !strings.HasPrefix(authorization, "Bearer ") {
		return nil, nil, errors.New("missing or invalid bearer token")
	}

	token, err := ParseToken(strings.TrimPrefix(authorization, "Bearer "))
	if err != nil || !token.Valid {
		return nil, nil, errors.New("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, nil, errors.New("unexpected claims type")
	}
	return token, claims, nil
}

// UserKey returns the identity provider's opaque user identifier from the
// subject claim. Records upstream are scoped by this key.
func UserKey(claims jwt.MapClaims) string {
	if sub, ok := claims["sub"].(string); ok {
		return sub
	}
	return ""
}

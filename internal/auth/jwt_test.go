package auth

import (
	"context"
	"testing"

	"github.com/golang-jwt/jwt/v5"
)

func signedToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("error signing token: %v", err)
	}
	return token
}

func TestTokenClaims(t *testing.T) {
	SetSecret("test-secret")
	t.Cleanup(func() { SetSecret("waffy-dev-secret") })

	token := signedToken(t, "test-secret", jwt.MapClaims{"sub": "user_123"})

	_, claims, err := TokenClaims("Bearer " + token)
	if err != nil {
		t.Fatalf("error parsing token: %v", err)
	}
	if UserKey(claims) != "user_123" {
		t.Errorf("expected user key 'user_123', got %q", UserKey(claims))
	}
}

func TestTokenClaimsRejectsBadInput(t *testing.T) {
	SetSecret("test-secret")
	t.Cleanup(func() { SetSecret("waffy-dev-secret") })

	tests := []struct {
		name          string
		authorization string
	}{
		{"empty header", ""},
		{"missing bearer prefix", signedToken(t, "test-secret", jwt.MapClaims{"sub": "user_123"})},
		{"wrong secret", "Bearer " + signedToken(t, "other-secret", jwt.MapClaims{"sub": "user_123"})},
		{"garbage token", "Bearer not.a.token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := TokenClaims(tt.authorization); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestUserKeyMissingSubject(t *testing.T) {
	if got := UserKey(jwt.MapClaims{}); got != "" {
		t.Errorf("expected empty user key, got %q", got)
	}
	if got := UserKey(jwt.MapClaims{"sub": 42}); got != "" {
		t.Errorf("expected empty user key for non-string subject, got %q", got)
	}
}

func TestUserKeyContextRoundTrip(t *testing.T) {
	ctx := WithUserKey(context.Background(), "user_123")
	if got := UserKeyFromContext(ctx); got != "user_123" {
		t.Errorf("expected 'user_123', got %q", got)
	}
	if got := UserKeyFromContext(context.Background()); got != "" {
		t.Errorf("expected empty key on a bare context, got %q", got)
	}
}

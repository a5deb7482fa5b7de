package http

import (
	"net"
	"net/http"

	"github.com/waffyhq/waffy-dashboard/internal/auth"
	"github.com/waffyhq/waffy-dashboard/internal/http/ratelimit"
)

// AuthMiddleware verifies the identity provider's bearer token and stores the
// opaque user key for downstream handlers. No role or permission checks
// happen here; authorization is out of scope.
func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := auth.TokenClaims(r.Header.Get("Authorization"))
		if err != nil {
			http.Error(w, "missing or invalid token", http.StatusUnauthorized)
			return
		}

		userKey := auth.UserKey(claims)
		if userKey == "" {
			http.Error(w, "token has no subject", http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r.WithContext(auth.WithUserKey(r.Context(), userKey)))
	})
}

// RateLimitMiddleware applies a per-client request budget keyed by IP.
func RateLimitMiddleware(reg *ratelimit.Registry) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip, _, err := net.SplitHostPort(r.RemoteAddr)
			if err != nil {
				ip = r.RemoteAddr
			}
			if !reg.Allow(ip) {
				http.Error(w, "too many requests", http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

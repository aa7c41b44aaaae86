package middleware

import (
	"context"
	"net/http"
	"strings"

	jwtinfra "github.com/abmacros/server/internal/infrastructure/jwt"
)

type contextKey string

const identityKey contextKey = "identity"

// Auth returns middleware that validates the Bearer JWT and injects the
// authenticated identity into the request context. Public routes are mounted
// outside the group wrapped by this middleware, so no path allowlist is
// consulted here.
func Auth(provider *jwtinfra.Provider) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if !strings.HasPrefix(authHeader, "Bearer ") {
				writeUnauthorized(w, "missing or invalid authorization header")
				return
			}
			tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
			claims, err := provider.Verify(tokenStr)
			if err != nil {
				writeUnauthorized(w, "invalid or expired token")
				return
			}
			ctx := context.WithValue(r.Context(), identityKey, claims.Identity())
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// IdentityFromContext extracts the authenticated identity from the request
// context. Handlers must treat a false result as unauthorized: it means the
// request never passed through Auth.
func IdentityFromContext(ctx context.Context) (string, bool) {
	identity, ok := ctx.Value(identityKey).(string)
	return identity, ok && identity != ""
}

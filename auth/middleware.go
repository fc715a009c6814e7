// This file defines the session middleware and the context plumbing that
// carries the authenticated principal through a request.
package auth

import (
	"context"
	"net/http"

	"github.com/user/pension-backend/apperror"
)

// contextKey is a custom type for context keys, preventing collisions with
// keys set by other packages.
type contextKey string

const principalContextKey contextKey = "auth_principal"

// NewContextWithPrincipal returns a child context carrying the principal.
func NewContextWithPrincipal(ctx context.Context, principal *MiniUser) context.Context {
	return context.WithValue(ctx, principalContextKey, principal)
}

// PrincipalFromContext extracts the principal stored by RequireUser.
func PrincipalFromContext(ctx context.Context) (*MiniUser, bool) {
	principal, ok := ctx.Value(principalContextKey).(*MiniUser)
	return principal, ok
}

// RequireUser returns middleware that resolves the loginToken cookie into a
// principal and stores it in the request context. A missing or invalid token
// is answered with 401; token decode failures are never surfaced as errors,
// only as "unauthenticated".
func RequireUser(crypter *Crypter) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(loginCookieName)
			if err != nil {
				apperror.WriteError(w, r, apperror.NewAuthError("Not authenticated", nil))
				return
			}

			principal, ok := crypter.Verify(cookie.Value)
			if !ok {
				apperror.WriteError(w, r, apperror.NewAuthError("Not authenticated", nil))
				return
			}

			ctx := NewContextWithPrincipal(r.Context(), principal)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

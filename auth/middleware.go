package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/user/devjournal-go/apperror"
)

// contextKey is a private type for context keys to avoid collisions.
type contextKey string

// accountIDKey is the key under which the authenticated account's ID is
// stored in the request context.
const accountIDKey contextKey = "accountID"

// JWTMiddleware verifies the bearer token on incoming requests and attaches
// the account identifier to the request context. Handlers behind it can
// assume AccountIDFromContext succeeds.
func JWTMiddleware(issuer *TokenIssuer) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				WriteError(w, r, apperror.NewUnauthorizedError("authorization header is missing", nil))
				return
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				WriteError(w, r, apperror.NewUnauthorizedError("authorization header format must be Bearer {token}", nil))
				return
			}

			claims, err := issuer.Verify(parts[1])
			if err != nil {
				WriteError(w, r, apperror.NewUnauthorizedError("invalid token", err))
				return
			}

			ctx := context.WithValue(r.Context(), accountIDKey, claims.User.ID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// AccountIDFromContext retrieves the authenticated account's ID set by
// JWTMiddleware. Returns 0 and false if absent.
func AccountIDFromContext(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(accountIDKey).(int64)
	return id, ok
}

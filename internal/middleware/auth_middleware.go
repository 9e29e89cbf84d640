package middleware

import (
	"context"
	"net/http"

	"github.com/muhammad-sohel131/groupStudy-backend/internal/auth"
)

type contextKey string

const identityKey contextKey = "identity"

// Identity returns the authenticated caller's email, or "" when the
// request never passed through RequireAuth.
func Identity(ctx context.Context) string {
	email, _ := ctx.Value(identityKey).(string)
	return email
}

// RequireAuth rejects requests without a valid session cookie and binds
// the verified identity to the request context.
func RequireAuth(codec *auth.Codec) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie("token")
			if err != nil {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			email, err := codec.Verify(cookie.Value)
			if err != nil {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), identityKey, email)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

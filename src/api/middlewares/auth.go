package middlewares

import (
	"context"
	"errors"
	"net/http"

	"tracker/src/utils"

	"github.com/go-chi/jwtauth"
)

// Authenticator rejects requests whose token is absent or does not verify.
// It must run after jwtauth.Verifier. A missing token reports 401, an invalid
// one 403.
func Authenticator(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, _, err := jwtauth.FromContext(r.Context())

		if err != nil {
			if errors.Is(err, jwtauth.ErrNoTokenFound) {
				utils.WriteError(w, utils.Unauthorized("Access token missing"))
			} else {
				utils.WriteError(w, utils.Forbidden("Invalid token"))
			}
			return
		}

		if token == nil {
			utils.WriteError(w, utils.Unauthorized("Access token missing"))
			return
		}

		next.ServeHTTP(w, r)
	})
}

// UserIDFromContext resolves the authenticated owner identity from the
// verified token claims.
func UserIDFromContext(ctx context.Context) (int64, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return 0, utils.Forbidden("Invalid token")
	}

	switch v := claims["user_id"].(type) {
	case float64:
		return int64(v), nil
	case int64:
		return v, nil
	}
	return 0, utils.Forbidden("Invalid token payload")
}

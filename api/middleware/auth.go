package middleware

import (
	"context"
	"net/http"

	"github.com/projectscope/projectscope-backend/api/responses"
	pkgauth "github.com/projectscope/projectscope-backend/pkg/auth"
	"github.com/projectscope/projectscope-backend/pkg/db/models"
	pkgerrors "github.com/projectscope/projectscope-backend/pkg/errors"
	"github.com/projectscope/projectscope-backend/pkg/logger"
)

// Authenticator resolves an opaque session token to its user.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*models.User, error)
}

// Auth resolves the session token from the Authorization header or the
// session cookie and seeds the request context with the user identity.
func Auth(authn Authenticator, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := pkgauth.TokenFromRequest(r)
			if token == "" {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing credentials"))
				return
			}

			user, err := authn.Authenticate(r.Context(), token)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, err)
				return
			}

			ctx := context.WithValue(r.Context(), ctxUserID, user.ID.String())
			ctx = context.WithValue(ctx, ctxRole, string(user.SelectedRole))

			if logg != nil {
				ctx = logg.WithFields(ctx, map[string]any{
					"user_id":    user.ID.String(),
					"actor_role": string(user.SelectedRole),
				})
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"dotback/internal/auth/models"
	"dotback/internal/transport/httpjson"
)

// SessionReader extracts the session token from a request, if present.
type SessionReader interface {
	Read(r *http.Request) (string, bool)
}

// IdentityVerifier resolves a session token to a live admin identity.
type IdentityVerifier interface {
	VerifyToken(ctx context.Context, token string) (*models.Identity, error)
}

type identityKey struct{}

// GetIdentity retrieves the authenticated admin identity from the context.
func GetIdentity(ctx context.Context) *models.Identity {
	identity, _ := ctx.Value(identityKey{}).(*models.Identity)
	return identity
}

// RequireAdmin guards protected routes behind a verified admin identity.
// A missing cookie short-circuits to 401 without any store or signature work;
// an invalid or stale token does the same after verification.
func RequireAdmin(sessions SessionReader, verifier IdentityVerifier, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			token, ok := sessions.Read(r)
			if !ok {
				httpjson.WriteMessage(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			identity, err := verifier.VerifyToken(ctx, token)
			if err != nil {
				logger.WarnContext(ctx, "unauthorized access - invalid session",
					"error", err,
					"request_id", GetRequestID(ctx),
					"path", r.URL.Path,
				)
				httpjson.WriteMessage(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			ctx = context.WithValue(ctx, identityKey{}, identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

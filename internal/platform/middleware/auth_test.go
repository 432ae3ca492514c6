package middleware

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dotback/internal/auth/models"
	"dotback/internal/auth/session"
	dErrors "dotback/pkg/domain-errors"
)

type countingVerifier struct {
	calls    int
	identity *models.Identity
	err      error
}

func (v *countingVerifier) VerifyToken(_ context.Context, _ string) (*models.Identity, error) {
	v.calls++
	return v.identity, v.err
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func okHandler(t *testing.T, wantIdentity *models.Identity) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, wantIdentity, GetIdentity(r.Context()))
		w.WriteHeader(http.StatusOK)
	})
}

func TestRequireAdmin_NoCookieSkipsVerification(t *testing.T) {
	verifier := &countingVerifier{}
	sessions := session.NewManager(time.Hour, false)
	guard := RequireAdmin(sessions, verifier, discardLogger())

	rec := httptest.NewRecorder()
	guard(okHandler(t, nil)).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/levels", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Zero(t, verifier.calls)
	assert.JSONEq(t, `{"message":"Unauthorized"}`, rec.Body.String())
}

func TestRequireAdmin_InvalidToken(t *testing.T) {
	verifier := &countingVerifier{err: dErrors.New(dErrors.CodeUnauthorized, "invalid token")}
	sessions := session.NewManager(time.Hour, false)
	guard := RequireAdmin(sessions, verifier, discardLogger())

	r := httptest.NewRequest(http.MethodGet, "/api/levels", nil)
	r.AddCookie(&http.Cookie{Name: session.CookieName, Value: "bad"})

	rec := httptest.NewRecorder()
	guard(okHandler(t, nil)).ServeHTTP(rec, r)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, 1, verifier.calls)
}

func TestRequireAdmin_ValidToken(t *testing.T) {
	identity := &models.Identity{ID: "admin-1", Email: "admin@dotback.com", Name: "DotBack Admin"}
	verifier := &countingVerifier{identity: identity}
	sessions := session.NewManager(time.Hour, false)
	guard := RequireAdmin(sessions, verifier, discardLogger())

	r := httptest.NewRequest(http.MethodGet, "/api/levels", nil)
	r.AddCookie(&http.Cookie{Name: session.CookieName, Value: "good"})

	rec := httptest.NewRecorder()
	guard(okHandler(t, identity)).ServeHTTP(rec, r)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, verifier.calls)
}

// Package handler exposes the authentication endpoints: login, logout, and
// the current-identity lookup. It stays thin; credential and token logic
// lives in the service package.
package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"dotback/internal/auth/models"
	"dotback/internal/auth/session"
	"dotback/internal/platform/middleware"
	"dotback/internal/transport/httpjson"
	dErrors "dotback/pkg/domain-errors"
)

// Service defines the session authority operations the handler needs.
type Service interface {
	Authenticate(ctx context.Context, email, password string) (*models.Identity, error)
	IssueToken(identity *models.Identity) (string, error)
}

// Handler handles the authentication endpoints.
type Handler struct {
	auth     Service
	sessions *session.Manager
	logger   *slog.Logger
}

// New creates an auth Handler.
func New(auth Service, sessions *session.Manager, logger *slog.Logger) *Handler {
	return &Handler{auth: auth, sessions: sessions, logger: logger}
}

// Register mounts the public auth routes.
// GET /auth/me is registered by the parent router behind the admin guard.
func (h *Handler) Register(r chi.Router) {
	r.Post("/auth/login", h.HandleLogin)
	r.Post("/auth/logout", h.HandleLogout)
}

// HandleLogin implements POST /api/auth/login.
//
// Input: { "email": "...", "password": "..." }
// Output: { "message": "Logged in successfully.", "admin": { "email", "name" } }
// plus the session cookie. Missing fields map to 400, bad credentials to 401,
// anything unexpected to 500 with a generic message.
func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpjson.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "Invalid JSON in request body."))
		return
	}

	req.Normalize()
	if req.Email == "" || req.Password == "" {
		httpjson.WriteError(w, dErrors.New(dErrors.CodeValidation, "Email and password are required."))
		return
	}

	identity, err := h.auth.Authenticate(ctx, req.Email, req.Password)
	if err != nil {
		if dErrors.HasCode(err, dErrors.CodeUnauthorized) {
			httpjson.WriteError(w, err)
			return
		}
		h.logger.ErrorContext(ctx, "login failed",
			"error", err,
			"request_id", requestID,
		)
		httpjson.WriteError(w, dErrors.Wrap(err, dErrors.CodeInternal, "Unexpected error during login."))
		return
	}

	token, err := h.auth.IssueToken(identity)
	if err != nil {
		h.logger.ErrorContext(ctx, "token issuance failed",
			"error", err,
			"request_id", requestID,
		)
		httpjson.WriteError(w, dErrors.Wrap(err, dErrors.CodeInternal, "Unexpected error during login."))
		return
	}

	h.sessions.Set(w, token)

	h.logger.InfoContext(ctx, "admin logged in",
		"email", identity.Email,
		"request_id", requestID,
	)

	httpjson.WriteJSON(w, http.StatusOK, models.LoginResponse{
		Message: "Logged in successfully.",
		Admin:   models.AdminView{Email: identity.Email, Name: identity.Name},
	})
}

// HandleLogout implements POST /api/auth/logout. It clears the session cookie
// regardless of whether a token was present.
func (h *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	h.sessions.Clear(w)
	httpjson.WriteMessage(w, http.StatusOK, "Logged out.")
}

// HandleMe implements GET /api/auth/me behind the admin guard.
func (h *Handler) HandleMe(w http.ResponseWriter, r *http.Request) {
	identity := middleware.GetIdentity(r.Context())
	if identity == nil {
		// The guard always sets the identity; reaching here is a wiring bug.
		httpjson.WriteError(w, errors.New("missing identity in context"))
		return
	}

	httpjson.WriteJSON(w, http.StatusOK, models.MeResponse{
		Admin: models.AdminView{Email: identity.Email, Name: identity.Name},
	})
}

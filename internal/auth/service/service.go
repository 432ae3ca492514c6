// Package service implements the session authority: credential verification,
// token issuance and verification, and the seed-once guarantee for the
// default admin. It normalizes every lower-level failure on the credential
// path to an unauthorized result so the transport layer never distinguishes
// "unknown email" from "wrong password".
package service

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/sync/singleflight"

	"dotback/internal/auth/metrics"
	"dotback/internal/auth/models"
	"dotback/internal/auth/store"
	"dotback/internal/jwttoken"
	dErrors "dotback/pkg/domain-errors"
)

// ErrUnauthenticated is returned whenever credentials or a token do not
// resolve to a live admin identity. Callers map it to 401.
var ErrUnauthenticated = dErrors.New(dErrors.CodeUnauthorized, "Invalid email or password.")

// bcryptCost matches the cost the seeded admin record is hashed with.
const bcryptCost = 12

// Service is the session authority.
type Service struct {
	admins  store.Store
	tokens  *jwttoken.Service
	logger  *slog.Logger
	metrics *metrics.Metrics

	seeded    atomic.Bool
	seedGroup singleflight.Group
}

// New constructs the session authority.
func New(admins store.Store, tokens *jwttoken.Service, logger *slog.Logger, m *metrics.Metrics) *Service {
	return &Service{
		admins:  admins,
		tokens:  tokens,
		logger:  logger,
		metrics: m,
	}
}

// Authenticate verifies an email/password pair against the store. The email
// must already be normalized by the caller. On success it returns the full
// identity; any mismatch, missing record, or store failure on the lookup path
// yields ErrUnauthenticated. It has no side effects and issues no token.
func (s *Service) Authenticate(ctx context.Context, email, password string) (*models.Identity, error) {
	admin, err := s.admins.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			s.metrics.LoginAttempts.WithLabelValues("failure").Inc()
			s.metrics.AuthFailures.Inc()
			return nil, ErrUnauthenticated
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		s.metrics.LoginAttempts.WithLabelValues("failure").Inc()
		s.metrics.AuthFailures.Inc()
		return nil, ErrUnauthenticated
	}

	s.metrics.LoginAttempts.WithLabelValues("success").Inc()
	return admin.Identity(), nil
}

// IssueToken signs a session token for the identity. The expiry window is
// fixed at issuance; there is no refresh mechanism.
func (s *Service) IssueToken(identity *models.Identity) (string, error) {
	return s.tokens.Generate(identity.ID, identity.Email)
}

// VerifyToken validates signature and expiry, then re-fetches the admin by
// the id embedded in the token. Embedded email and name are never trusted as
// current truth. Any failure, including an admin deleted out of band, yields
// ErrUnauthenticated.
func (s *Service) VerifyToken(ctx context.Context, token string) (*models.Identity, error) {
	claims, err := s.tokens.Validate(token)
	if err != nil {
		s.metrics.TokenVerifications.WithLabelValues("invalid").Inc()
		return nil, ErrUnauthenticated
	}

	admin, err := s.admins.FindByID(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			s.metrics.TokenVerifications.WithLabelValues("stale").Inc()
			return nil, ErrUnauthenticated
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "")
	}

	s.metrics.TokenVerifications.WithLabelValues("ok").Inc()
	return admin.Identity(), nil
}

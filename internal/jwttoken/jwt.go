// Package jwttoken issues and validates the signed session tokens carried in
// the admin cookie. Tokens are HS256, carry the admin's store id as subject
// plus the email at issuance time, and expire after a fixed window with no
// refresh mechanism.
package jwttoken

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	dErrors "dotback/pkg/domain-errors"
)

// SessionClaims are the claims embedded in an admin session token. The email
// is informational; verification re-fetches the admin by subject id and never
// trusts the embedded email as current truth.
type SessionClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// Service handles session token creation and validation.
type Service struct {
	signingKey []byte
	ttl        time.Duration
	now        func() time.Time
}

// New constructs a token service with the process-wide signing key and the
// fixed session lifetime.
func New(signingKey string, ttl time.Duration) *Service {
	return &Service{
		signingKey: []byte(signingKey),
		ttl:        ttl,
		now:        time.Now,
	}
}

// Generate signs a session token for the given admin id and email.
func (s *Service) Generate(adminID, email string) (string, error) {
	now := s.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, SessionClaims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   adminID,
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	})

	signed, err := token.SignedString(s.signingKey)
	if err != nil {
		return "", dErrors.Wrap(err, dErrors.CodeInternal, "could not sign session token")
	}
	return signed, nil
}

// Validate checks signature and expiry and returns the claims. Any failure
// (bad signature, expired, malformed, wrong algorithm) is an unauthorized
// domain error; callers treat it as "no identity", never as a server fault.
func (s *Service) Validate(tokenString string) (*SessionClaims, error) {
	if tokenString == "" {
		return nil, dErrors.New(dErrors.CodeUnauthorized, "empty token")
	}

	parsed, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(t *jwt.Token) (any, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenUnverifiable
		}
		return s.signingKey, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, dErrors.New(dErrors.CodeUnauthorized, "token expired")
		}
		return nil, dErrors.New(dErrors.CodeUnauthorized, "invalid token")
	}

	claims, ok := parsed.Claims.(*SessionClaims)
	if !ok || !parsed.Valid || claims.Subject == "" {
		return nil, dErrors.New(dErrors.CodeUnauthorized, "invalid token claims")
	}

	return claims, nil
}

// TTL reports the fixed session lifetime, which the cookie max-age mirrors.
func (s *Service) TTL() time.Duration {
	return s.ttl
}

package service

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"dotback/internal/auth/models"
	"dotback/internal/auth/store"
	dErrors "dotback/pkg/domain-errors"
)

// Default admin credentials created when the store is empty.
const (
	DefaultAdminEmail    = "admin@dotback.com"
	DefaultAdminPassword = "dotback123"
	DefaultAdminDisplay  = "DotBack Admin"
)

// Seed ensures exactly one default admin record exists. It runs once at
// process startup rather than lazily per request. Concurrent calls within the
// process collapse into a single attempt; across processes the store's unique
// email constraint is the authoritative backstop, so losing that race is
// benign and never surfaces as an error.
//
// The memoized flag is an optimization only. It is not invalidated if the
// store is wiped externally; a restart re-seeds.
func (s *Service) Seed(ctx context.Context) error {
	if s.seeded.Load() {
		return nil
	}

	_, err, _ := s.seedGroup.Do("seed", func() (any, error) {
		return nil, s.seedOnce(ctx)
	})
	return err
}

func (s *Service) seedOnce(ctx context.Context) error {
	if s.seeded.Load() {
		return nil
	}

	count, err := s.admins.Count(ctx)
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "could not count admins")
	}

	if count == 0 {
		hash, err := bcrypt.GenerateFromPassword([]byte(DefaultAdminPassword), bcryptCost)
		if err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "could not hash default password")
		}

		admin := &models.Admin{
			Email:        DefaultAdminEmail,
			PasswordHash: string(hash),
			Name:         DefaultAdminDisplay,
		}

		err = s.admins.Create(ctx, admin)
		switch {
		case err == nil:
			s.metrics.AdminsSeeded.Inc()
			s.logger.InfoContext(ctx, "seeded default admin", "email", DefaultAdminEmail)
		case errors.Is(err, store.ErrDuplicateEmail):
			// Another process won the race; the record exists, which is all
			// the guarantee requires.
			s.metrics.SeedRacesLost.Inc()
			s.logger.InfoContext(ctx, "default admin already seeded by another process")
		default:
			return dErrors.Wrap(err, dErrors.CodeInternal, "could not create default admin")
		}
	}

	s.seeded.Store(true)
	return nil
}

// Package store persists admin records. Implementations must enforce a
// unique constraint on email; it is the authoritative backstop for the
// seed-once guarantee when concurrent processes race to create the default
// admin.
package store

import (
	"context"
	"errors"

	"dotback/internal/auth/models"
)

// Error Contract:
// All store methods follow this error pattern:
// - Return ErrNotFound when the requested admin does not exist
// - Return ErrDuplicateEmail when Create would violate email uniqueness
// - Return wrapped errors with context for infrastructure failures
var (
	ErrNotFound       = errors.New("admin not found")
	ErrDuplicateEmail = errors.New("admin email already exists")
)

// Store is the admin persistence contract used by the session authority.
type Store interface {
	FindByEmail(ctx context.Context, email string) (*models.Admin, error)
	FindByID(ctx context.Context, id string) (*models.Admin, error)
	Create(ctx context.Context, admin *models.Admin) error
	Count(ctx context.Context) (int64, error)
}

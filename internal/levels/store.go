package levels

import (
	"context"
	"errors"
)

// Error Contract:
// All store methods follow this error pattern:
// - Return ErrNotFound when the requested level does not exist
// - Return ErrDuplicateLevel when Create would violate level-number uniqueness
// - Return wrapped errors with context for infrastructure failures
var (
	ErrNotFound       = errors.New("level not found")
	ErrDuplicateLevel = errors.New("level number already exists")
)

// Store is the level configuration persistence contract.
type Store interface {
	List(ctx context.Context) ([]*Level, error)
	FindByNumber(ctx context.Context, number int) (*Level, error)
	Create(ctx context.Context, level *Level) error
	Update(ctx context.Context, number int, payload *ConfigPayload) (*Level, error)
	Delete(ctx context.Context, number int) (*Level, error)
}

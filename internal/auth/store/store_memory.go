package store

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"dotback/internal/auth/models"
)

// MemoryStore keeps admins in memory. It backs tests and local development
// without a configured document store, and enforces the same unique email
// constraint as the Mongo backend.
type MemoryStore struct {
	mu     sync.RWMutex
	admins map[string]*models.Admin
}

// NewMemory constructs an empty in-memory admin store.
func NewMemory() *MemoryStore {
	return &MemoryStore{admins: make(map[string]*models.Admin)}
}

func (s *MemoryStore) FindByEmail(_ context.Context, email string) (*models.Admin, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, admin := range s.admins {
		if admin.Email == email {
			copied := *admin
			return &copied, nil
		}
	}
	return nil, fmt.Errorf("find by email: %w", ErrNotFound)
}

func (s *MemoryStore) FindByID(_ context.Context, id string) (*models.Admin, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if admin, ok := s.admins[id]; ok {
		copied := *admin
		return &copied, nil
	}
	return nil, fmt.Errorf("find by id: %w", ErrNotFound)
}

func (s *MemoryStore) Create(_ context.Context, admin *models.Admin) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	admin.Email = models.NormalizeEmail(admin.Email)
	for _, existing := range s.admins {
		if existing.Email == admin.Email {
			return fmt.Errorf("create admin: %w", ErrDuplicateEmail)
		}
	}

	if admin.ID == "" {
		admin.ID = uuid.NewString()
	}
	if admin.Name == "" {
		admin.Name = models.DefaultAdminName
	}
	now := time.Now().UTC()
	admin.CreatedAt = now
	admin.UpdatedAt = now

	copied := *admin
	s.admins[admin.ID] = &copied
	return nil
}

func (s *MemoryStore) Count(_ context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.admins)), nil
}

// Delete removes an admin by id. No route exposes this; it exists so tests
// can exercise the "admin deleted out of band" verification path.
func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.admins[id]; !ok {
		return fmt.Errorf("delete admin: %w", ErrNotFound)
	}
	delete(s.admins, id)
	return nil
}

package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"dotback/internal/auth/models"
)

type MemoryStoreSuite struct {
	suite.Suite
	store *MemoryStore
}

func (s *MemoryStoreSuite) SetupTest() {
	s.store = NewMemory()
}

func TestMemoryStoreSuite(t *testing.T) {
	suite.Run(t, new(MemoryStoreSuite))
}

func (s *MemoryStoreSuite) TestCreateAndFind() {
	admin := &models.Admin{
		Email:        "jane.doe@example.com",
		PasswordHash: "$2a$12$notarealhash",
		Name:         "Jane Doe",
	}

	err := s.store.Create(context.Background(), admin)
	require.NoError(s.T(), err)
	require.NotEmpty(s.T(), admin.ID)
	require.False(s.T(), admin.CreatedAt.IsZero())

	foundByID, err := s.store.FindByID(context.Background(), admin.ID)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), admin.Email, foundByID.Email)

	foundByEmail, err := s.store.FindByEmail(context.Background(), admin.Email)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), admin.ID, foundByEmail.ID)
}

func (s *MemoryStoreSuite) TestCreateNormalizesEmail() {
	admin := &models.Admin{Email: "  Admin@Example.COM ", PasswordHash: "h"}
	require.NoError(s.T(), s.store.Create(context.Background(), admin))

	found, err := s.store.FindByEmail(context.Background(), "admin@example.com")
	require.NoError(s.T(), err)
	assert.Equal(s.T(), "admin@example.com", found.Email)
	assert.Equal(s.T(), models.DefaultAdminName, found.Name)
}

func (s *MemoryStoreSuite) TestDuplicateEmail() {
	first := &models.Admin{Email: "admin@dotback.com", PasswordHash: "h"}
	require.NoError(s.T(), s.store.Create(context.Background(), first))

	second := &models.Admin{Email: "admin@dotback.com", PasswordHash: "h2"}
	err := s.store.Create(context.Background(), second)
	assert.ErrorIs(s.T(), err, ErrDuplicateEmail)

	count, err := s.store.Count(context.Background())
	require.NoError(s.T(), err)
	assert.EqualValues(s.T(), 1, count)
}

func (s *MemoryStoreSuite) TestFindNotFound() {
	_, err := s.store.FindByID(context.Background(), "missing")
	assert.ErrorIs(s.T(), err, ErrNotFound)

	_, err = s.store.FindByEmail(context.Background(), "missing@example.com")
	assert.ErrorIs(s.T(), err, ErrNotFound)
}

func (s *MemoryStoreSuite) TestDelete() {
	admin := &models.Admin{Email: "delete.me@example.com", PasswordHash: "h"}
	require.NoError(s.T(), s.store.Create(context.Background(), admin))

	require.NoError(s.T(), s.store.Delete(context.Background(), admin.ID))

	_, err := s.store.FindByID(context.Background(), admin.ID)
	assert.ErrorIs(s.T(), err, ErrNotFound)

	err = s.store.Delete(context.Background(), admin.ID)
	assert.ErrorIs(s.T(), err, ErrNotFound)
}

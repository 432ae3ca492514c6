package levels

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryStore keeps level configurations in memory for tests and local
// development without a configured document store.
type MemoryStore struct {
	mu     sync.RWMutex
	levels map[int]*Level
}

// NewMemory constructs an empty in-memory level store.
func NewMemory() *MemoryStore {
	return &MemoryStore{levels: make(map[int]*Level)}
}

func (s *MemoryStore) List(_ context.Context) ([]*Level, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*Level, 0, len(s.levels))
	for _, level := range s.levels {
		copied := *level
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Number < out[j].Number })
	return out, nil
}

func (s *MemoryStore) FindByNumber(_ context.Context, number int) (*Level, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if level, ok := s.levels[number]; ok {
		copied := *level
		return &copied, nil
	}
	return nil, fmt.Errorf("find level %d: %w", number, ErrNotFound)
}

func (s *MemoryStore) Create(_ context.Context, level *Level) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.levels[level.Number]; ok {
		return fmt.Errorf("create level %d: %w", level.Number, ErrDuplicateLevel)
	}

	if level.ID == "" {
		level.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	level.CreatedAt = now
	level.UpdatedAt = now

	copied := *level
	s.levels[level.Number] = &copied
	return nil
}

func (s *MemoryStore) Update(_ context.Context, number int, payload *ConfigPayload) (*Level, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	level, ok := s.levels[number]
	if !ok {
		return nil, fmt.Errorf("update level %d: %w", number, ErrNotFound)
	}

	payload.Apply(level)
	level.UpdatedAt = time.Now().UTC()

	copied := *level
	return &copied, nil
}

func (s *MemoryStore) Delete(_ context.Context, number int) (*Level, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	level, ok := s.levels[number]
	if !ok {
		return nil, fmt.Errorf("delete level %d: %w", number, ErrNotFound)
	}

	delete(s.levels, number)
	return level, nil
}

package registry

import (
	"context"
	"sync"

	"github.com/mergington/activities/internal/domain"
)

// MemoryStore holds the activity map in process memory. Records are created
// once at construction and never added or removed afterwards; only rosters
// mutate. Echo serves requests on separate goroutines, so the map is guarded
// by an RWMutex.
type MemoryStore struct {
	mu         sync.RWMutex
	activities map[string]*domain.Activity
}

// NewMemoryStore builds a store from the given catalog. The catalog map is
// taken over by the store and must not be used by the caller afterwards.
func NewMemoryStore(catalog map[string]*domain.Activity) *MemoryStore {
	return &MemoryStore{activities: catalog}
}

func (s *MemoryStore) List(_ context.Context) (map[string]*domain.Activity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]*domain.Activity, len(s.activities))
	for name, act := range s.activities {
		out[name] = act.Clone()
	}
	return out, nil
}

func (s *MemoryStore) Get(_ context.Context, name string) (*domain.Activity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	act, ok := s.activities[name]
	if !ok {
		return nil, domain.ErrActivityNotFound
	}
	return act.Clone(), nil
}

func (s *MemoryStore) Signup(_ context.Context, name, email string) (*domain.Activity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	act, ok := s.activities[name]
	if !ok {
		return nil, domain.ErrActivityNotFound
	}
	if err := act.Signup(email); err != nil {
		return nil, err
	}
	return act.Clone(), nil
}

func (s *MemoryStore) Unregister(_ context.Context, name, email string) (*domain.Activity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	act, ok := s.activities[name]
	if !ok {
		return nil, domain.ErrActivityNotFound
	}
	if err := act.Unregister(email); err != nil {
		return nil, err
	}
	return act.Clone(), nil
}

package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrymomot/entitykit/pkg/entity"
)

// Memory is an in-memory implementation of Store.
// Suitable for development, testing and single-process deployments.
//
// All operations hold the lock for their full duration, so no two operations
// mutate or observe the mapping mid-mutation. Stored values are the caller's
// references; the store owns the canonical copy but does not isolate callers
// from each other's mutations of an entity.
type Memory[T entity.Storable] struct {
	entities map[string]T
	mu       sync.RWMutex
}

// NewMemory creates an empty in-memory store.
func NewMemory[T entity.Storable]() *Memory[T] {
	return &Memory[T]{
		entities: make(map[string]T),
	}
}

// Save inserts or overwrites the entry for the entity's identifier.
// The entity's update timestamp is refreshed in place before storing.
func (s *Memory[T]) Save(ctx context.Context, e T) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := e.EntityID()
	if id == "" {
		return fmt.Errorf("%w: %T", ErrEmptyID, e)
	}

	e.Touch()
	s.entities[id] = e
	return nil
}

// Get returns the stored entity for the identifier.
// The boolean reports presence; absence is not an error.
func (s *Memory[T]) Get(ctx context.Context, id string) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.entities[id]
	return e, ok
}

// Delete removes the entry if present and is a no-op otherwise.
func (s *Memory[T]) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entities, id)
	return nil
}

// List returns a snapshot of the current entries.
// The slice is freshly allocated, so later mutations of the store never
// change a previously returned snapshot.
func (s *Memory[T]) List(ctx context.Context) []T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snapshot := make([]T, 0, len(s.entities))
	for _, e := range s.entities {
		snapshot = append(snapshot, e)
	}
	return snapshot
}

// Len returns the number of stored entries.
func (s *Memory[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.entities)
}

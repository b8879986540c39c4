package config

import "sync"

// Store is a mutable key/value settings map shared by reference.
//
// It is constructed once at the composition root and passed to the
// components that need it; every holder of the same *Store observes the same
// mutations. There is no hidden process-wide instance. All methods are safe
// for concurrent use.
type Store struct {
	values map[string]any
	mu     sync.RWMutex
}

// NewStore creates an empty settings store.
func NewStore() *Store {
	return &Store{
		values: make(map[string]any),
	}
}

// Set stores a value under the key, overwriting any previous value.
func (s *Store) Set(key string, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[key] = value
}

// Get returns the value stored under the key, or fallback when absent.
func (s *Store) Get(key string, fallback any) any {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if v, ok := s.values[key]; ok {
		return v
	}
	return fallback
}

// Has reports whether a value is stored under the key.
func (s *Store) Has(key string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.values[key]
	return ok
}

// Delete removes the key if present.
func (s *Store) Delete(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.values, key)
}

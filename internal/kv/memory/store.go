// Package memory implements an in-memory key-value Store for tests and
// ephemeral sessions.
package memory

import (
	"context"
	"sync"

	"github.com/thenoetrevino/huddle/internal/kv/core"
)

// Store implements core.Store backed by process memory.
type Store struct {
	mu   sync.RWMutex
	data map[string][]byte

	// putErr, when set, is returned by every Put. Used to exercise save failures.
	putErr error
}

// New returns an empty in-memory store.
func New() *Store { return &Store{data: make(map[string][]byte)} }

// Driver returns the kv driver identifier.
func (s *Store) Driver() core.Driver { return core.DriverMemory }

// Get returns a copy of the stored value.
func (s *Store) Get(_ context.Context, key string) ([]byte, error) {
	if err := core.ValidateKey(key); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.data[key]
	if !ok {
		return nil, core.ErrNotFound
	}
	return append([]byte(nil), v...), nil
}

// Put stores a copy of value under key.
func (s *Store) Put(_ context.Context, key string, value []byte) error {
	if err := core.ValidateKey(key); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.putErr != nil {
		return s.putErr
	}
	s.data[key] = append([]byte(nil), value...)
	return nil
}

// Delete removes key.
func (s *Store) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return nil
}

// Close is a no-op.
func (s *Store) Close() error { return nil }

// FailPuts makes every subsequent Put return err. Pass nil to recover.
func (s *Store) FailPuts(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.putErr = err
}

// Keys returns the number of stored keys.
func (s *Store) Keys() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}

/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
// Package memory is an in-process Store backed by a mutex-guarded map,
// useful for tests and single-process deployments that don't need the
// realtime store's cross-process optimistic locking.
package memory

import (
	"context"
	"sync"

	"github.com/mikeb26/swisstd/swiss"
)

// Store holds one swiss.Section per name, guarded by a single RWMutex.
// Load and Save exchange Clones, so concurrent readers can't observe
// another goroutine's in-flight edit; only Mutate's fn is handed the
// stored Section itself, while the write lock is held.
type Store struct {
	mu       sync.RWMutex
	sections map[string]*swiss.Section
}

// New returns an empty Store.
func New() *Store {
	return &Store{sections: make(map[string]*swiss.Section)}
}

// Load returns a clone of the named section, or nil if it doesn't exist.
func (s *Store) Load(_ context.Context, name string) (*swiss.Section, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sec, ok := s.sections[name]
	if !ok {
		return nil, nil
	}
	return sec.Clone(), nil
}

// Save stores a clone of sec under its Name, overwriting any prior
// value — the store, not the caller, owns the copy held afterward.
func (s *Store) Save(_ context.Context, sec *swiss.Section) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sections[sec.Name] = sec.Clone()
	return nil
}

// Mutate loads the named section, applies fn, and saves the result
// under the protection of the same lock — the single-process analogue
// of the realtime store's WATCH/MULTI transaction. fn is called with
// the store's own Section, not a clone, since the lock already
// serializes access for this call's duration.
func (s *Store) Mutate(_ context.Context, name string, fn func(*swiss.Section) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sec, ok := s.sections[name]
	if !ok {
		sec = swiss.NewSection(name, 0)
		s.sections[name] = sec
	}
	return fn(sec)
}

package properties

import (
	"sync/atomic"
	"time"
)

// Snapshot is one published property collection. Refreshes replace the
// whole snapshot in a single assignment, so readers always see either
// the old or the new collection, never a partial mix.
type Snapshot struct {
	Properties  []Property
	LastUpdated time.Time
}

// Store holds the current in-memory snapshot. There is no in-place
// mutation; Replace publishes atomically.
type Store struct {
	current atomic.Pointer[Snapshot]
}

// NewStore returns an empty store
func NewStore() *Store {
	s := &Store{}
	s.current.Store(&Snapshot{})
	return s
}

// Replace publishes a new property collection
func (s *Store) Replace(props []Property) {
	s.current.Store(&Snapshot{
		Properties:  props,
		LastUpdated: time.Now(),
	})
}

// Snapshot returns the current published collection
func (s *Store) Snapshot() Snapshot {
	return *s.current.Load()
}

// Empty reports whether the store has never been populated
func (s *Store) Empty() bool {
	snap := s.current.Load()
	return snap.LastUpdated.IsZero()
}

package settings

import (
	"context"
	"sync"
	"sync/atomic"

	pkgLog "pelangi-assistant/pkg/log"
)

// Store holds the current settings snapshot. Readers call Current and never
// block; reloads and operator writes are serialized and swap the snapshot
// atomically.
type Store struct {
	dir     string
	l       pkgLog.Logger
	current atomic.Pointer[Snapshot]

	mu       sync.Mutex
	onChange []func(*Snapshot)
}

// New loads dir and returns a Store. The initial load must succeed.
func New(ctx context.Context, dir string, l pkgLog.Logger) (*Store, error) {
	snap, err := LoadSnapshot(ctx, dir)
	if err != nil {
		return nil, err
	}
	s := &Store{dir: dir, l: l}
	s.current.Store(snap)
	return s, nil
}

// NewFromSnapshot wraps an already built snapshot. Writes still persist to dir.
func NewFromSnapshot(dir string, snap *Snapshot, l pkgLog.Logger) *Store {
	s := &Store{dir: dir, l: l}
	s.current.Store(snap)
	return s
}

// Dir is the settings directory.
func (s *Store) Dir() string {
	return s.dir
}

// Current returns the active snapshot.
func (s *Store) Current() *Snapshot {
	return s.current.Load()
}

// OnChange registers fn to run after every successful swap.
func (s *Store) OnChange(fn func(*Snapshot)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onChange = append(s.onChange, fn)
}

// swap must be called with mu held.
func (s *Store) swap(snap *Snapshot) {
	s.current.Store(snap)
	for _, fn := range s.onChange {
		fn(snap)
	}
}

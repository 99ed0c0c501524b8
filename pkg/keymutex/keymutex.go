// Package keymutex provides a mutex per string key. Entries are reference
// counted and dropped once no goroutine holds or waits on them.
package keymutex

import "sync"

type entry struct {
	mu   sync.Mutex
	refs int
}

// KeyMutex serializes work per key.
type KeyMutex struct {
	mu    sync.Mutex
	locks map[string]*entry
}

// New creates an empty KeyMutex.
func New() *KeyMutex {
	return &KeyMutex{locks: make(map[string]*entry)}
}

// Lock blocks until the lock for key is held.
func (k *KeyMutex) Lock(key string) {
	k.mu.Lock()
	e, ok := k.locks[key]
	if !ok {
		e = &entry{}
		k.locks[key] = e
	}
	e.refs++
	k.mu.Unlock()

	e.mu.Lock()
}

// Unlock releases the lock for key. Unlocking a key that is not locked panics.
func (k *KeyMutex) Unlock(key string) {
	k.mu.Lock()
	e, ok := k.locks[key]
	if !ok {
		k.mu.Unlock()
		panic("keymutex: unlock of unlocked key " + key)
	}
	e.refs--
	if e.refs == 0 {
		delete(k.locks, key)
	}
	k.mu.Unlock()

	e.mu.Unlock()
}

// Len returns the number of keys currently held or awaited.
func (k *KeyMutex) Len() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return len(k.locks)
}

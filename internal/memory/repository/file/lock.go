package file

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gofrs/flock"

	"pelangi-assistant/internal/memory"
)

// Lock takes the edit lock for key. The lock is a flock on
// locks/<key>.lock, so it excludes every process sharing root, this one
// included. It waits until the lock is free or ctx is done.
func (r *implRepository) Lock(ctx context.Context, key string) (func(), error) {
	if err := validKey(key); err != nil {
		return nil, fmt.Errorf("%s: %w", LogPrefixLock, err)
	}

	fl := flock.New(filepath.Join(r.root, locksDir, key+lockExt))
	ok, err := fl.TryLockContext(ctx, lockRetryDelay)
	if err != nil {
		return nil, fmt.Errorf("%s: %s: %w", LogPrefixLock, key, err)
	}
	if !ok {
		return nil, fmt.Errorf("%s: %s: %w", LogPrefixLock, key, memory.ErrConcurrentWriteConflict)
	}

	return func() {
		if err := fl.Unlock(); err != nil {
			r.l.Warnf(ctx, "%s: unlock %s: %v", LogPrefixLock, key, err)
		}
	}, nil
}

func validKey(key string) error {
	if key == "" || strings.ContainsAny(key, `/\`) || strings.Contains(key, "..") {
		return fmt.Errorf("invalid key %q", key)
	}
	return nil
}

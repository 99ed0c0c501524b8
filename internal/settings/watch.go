package settings

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watch reloads the settings whenever a file in the settings directory or its
// knowledge/ subdirectory changes. Bursts of events within debounce collapse
// into one reload. Watch blocks until ctx is done.
func (s *Store) Watch(ctx context.Context, debounce time.Duration) error {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("%s: %w", LogPrefixWatch, err)
	}
	defer w.Close()

	if err := w.Add(s.dir); err != nil {
		return fmt.Errorf("%s: %w", LogPrefixWatch, err)
	}
	kdir := filepath.Join(s.dir, KnowledgeDir)
	if info, err := os.Stat(kdir); err == nil && info.IsDir() {
		if err := w.Add(kdir); err != nil {
			return fmt.Errorf("%s: %w", LogPrefixWatch, err)
		}
	}

	timer := time.NewTimer(debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !relevant(ev) {
				continue
			}
			timer.Reset(debounce)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			s.l.Warnf(ctx, "%s: %v", LogPrefixWatch, err)
		case <-timer.C:
			if _, err := s.Reload(ctx); err != nil {
				s.l.Errorf(ctx, "%s: reload failed: %v", LogPrefixWatch, err)
			}
		}
	}
}

// relevant filters out temp files and pure metadata changes.
func relevant(ev fsnotify.Event) bool {
	if strings.HasPrefix(filepath.Base(ev.Name), ".") {
		return false
	}
	return ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Remove) || ev.Has(fsnotify.Rename)
}

package file

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gofrs/flock"

	"pelangi-assistant/internal/memory"
)

func (r *implRepository) dayPath(date string) string {
	return filepath.Join(r.root, daysDir, date+fileExt)
}

func (r *implRepository) durablePath() string {
	return filepath.Join(r.root, durableFile)
}

func (r *implRepository) ReadDay(ctx context.Context, date string) (memory.Document, error) {
	if err := memory.ValidateDate(date); err != nil {
		return memory.Document{}, err
	}
	doc, err := readDocument(r.dayPath(date))
	if errors.Is(err, fs.ErrNotExist) {
		return memory.Document{}, fmt.Errorf("%w: %s", memory.ErrDayNotFound, date)
	}
	return doc, err
}

func (r *implRepository) WriteDay(ctx context.Context, date, content, expectedVersion string) error {
	if err := memory.ValidateDate(date); err != nil {
		return err
	}
	return r.write(r.dayPath(date), content, expectedVersion)
}

func (r *implRepository) ReadDurable(ctx context.Context) (memory.Document, error) {
	doc, err := readDocument(r.durablePath())
	if errors.Is(err, fs.ErrNotExist) {
		return memory.Document{}, memory.ErrDurableNotFound
	}
	return doc, err
}

func (r *implRepository) WriteDurable(ctx context.Context, content, expectedVersion string) error {
	return r.write(r.durablePath(), content, expectedVersion)
}

func (r *implRepository) ListDays(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(filepath.Join(r.root, daysDir))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", LogPrefixListDays, err)
	}

	days := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), fileExt) {
			continue
		}
		date := strings.TrimSuffix(e.Name(), fileExt)
		if memory.ValidateDate(date) != nil {
			continue
		}
		days = append(days, date)
	}
	sort.Strings(days)
	return days, nil
}

// write replaces path with content when the stored version still equals
// expectedVersion. A missing file has the empty version. The check and the
// rename run under path's file lock, so writers in other processes see them
// as one step.
func (r *implRepository) write(path, content, expectedVersion string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	fl := flock.New(path + lockExt)
	if err := fl.Lock(); err != nil {
		return fmt.Errorf("%s: lock: %w", LogPrefixWrite, err)
	}
	defer fl.Unlock()

	if expectedVersion != memory.AnyVersion {
		current, err := readDocument(path)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%s: %w", LogPrefixWrite, err)
		}
		if current.Version != expectedVersion {
			return memory.ErrVersionMismatch
		}
	}

	return writeAtomic(path, content)
}

func readDocument(path string) (memory.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return memory.Document{}, err
	}
	return memory.Document{Content: string(data), Version: version(data)}, nil
}

func version(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

func writeAtomic(path, content string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return fmt.Errorf("%s: %w", LogPrefixWrite, err)
	}
	tmp, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return fmt.Errorf("%s: %w", LogPrefixWrite, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.WriteString(content); err != nil {
		tmp.Close()
		return fmt.Errorf("%s: %w", LogPrefixWrite, err)
	}
	if err := tmp.Chmod(filePerm); err != nil {
		tmp.Close()
		return fmt.Errorf("%s: %w", LogPrefixWrite, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%s: %w", LogPrefixWrite, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("%s: %w", LogPrefixWrite, err)
	}
	return nil
}

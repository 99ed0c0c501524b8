package file

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"pelangi-assistant/internal/memory"
)

// SaveBackup stores content under backups/<key>/<timestamp>.md. Empty content
// is still written so every overwrite has a retrievable predecessor.
func (r *implRepository) SaveBackup(ctx context.Context, key, content string, at time.Time) (memory.Backup, error) {
	if err := validKey(key); err != nil {
		return memory.Backup{}, fmt.Errorf("%s: %w", LogPrefixSaveBackup, err)
	}

	dir := filepath.Join(r.root, backupsDir, key)
	path := filepath.Join(dir, at.UTC().Format(backupLayout)+fileExt)
	if err := writeAtomic(path, content); err != nil {
		return memory.Backup{}, fmt.Errorf("%s: %w", LogPrefixSaveBackup, err)
	}

	r.l.Debugf(ctx, "%s: saved %s (%d bytes)", LogPrefixSaveBackup, path, len(content))
	return memory.Backup{Key: key, Path: path, Content: content, TakenAt: at}, nil
}

func (r *implRepository) LatestBackup(ctx context.Context, key string) (memory.Backup, error) {
	dir := filepath.Join(r.root, backupsDir, key)
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return memory.Backup{}, memory.ErrBackupNotFound
	}
	if err != nil {
		return memory.Backup{}, fmt.Errorf("%s: %w", LogPrefixLatestBackp, err)
	}

	var names []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), fileExt) {
			names = append(names, e.Name())
		}
	}
	if len(names) == 0 {
		return memory.Backup{}, memory.ErrBackupNotFound
	}
	sort.Strings(names)
	latest := names[len(names)-1]

	path := filepath.Join(dir, latest)
	data, err := os.ReadFile(path)
	if err != nil {
		return memory.Backup{}, fmt.Errorf("%s: %w", LogPrefixLatestBackp, err)
	}
	takenAt, _ := time.Parse(backupLayout, strings.TrimSuffix(latest, fileExt))

	return memory.Backup{Key: key, Path: path, Content: string(data), TakenAt: takenAt}, nil
}

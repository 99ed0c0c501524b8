package file

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"pelangi-assistant/internal/memory"
	pkgLog "pelangi-assistant/pkg/log"
)

// Layout under the root directory:
//
//	days/YYYY-MM-DD.md   day documents
//	MEMORY.md            durable memory
//	backups/<key>/*.md   pre-overwrite copies
//	locks/<key>.lock     edit locks shared by every process on root
//
// Each document also has a sibling <name>.lock held around its version check
// and rename.
type implRepository struct {
	root string
	l    pkgLog.Logger
	mu   sync.Mutex
}

var _ memory.Repository = (*implRepository)(nil)

// New creates a file-backed memory repository rooted at dir.
func New(dir string, l pkgLog.Logger) (*implRepository, error) {
	if dir == "" {
		return nil, fmt.Errorf("%s: memory dir is required", LogPrefixNew)
	}
	for _, sub := range []string{daysDir, backupsDir, locksDir} {
		if err := os.MkdirAll(filepath.Join(dir, sub), dirPerm); err != nil {
			return nil, fmt.Errorf("%s: create %s: %w", LogPrefixNew, sub, err)
		}
	}
	return &implRepository{root: dir, l: l}, nil
}

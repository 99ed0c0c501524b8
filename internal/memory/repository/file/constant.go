package file

import (
	"os"
	"time"
)

const (
	LogPrefixNew         = "internal.memory.repository.file.New"
	LogPrefixWrite       = "internal.memory.repository.file.write"
	LogPrefixSaveBackup  = "internal.memory.repository.file.SaveBackup"
	LogPrefixListDays    = "internal.memory.repository.file.ListDays"
	LogPrefixLatestBackp = "internal.memory.repository.file.LatestBackup"
	LogPrefixLock        = "internal.memory.repository.file.Lock"
)

const (
	daysDir      = "days"
	backupsDir   = "backups"
	locksDir     = "locks"
	lockExt      = ".lock"
	durableFile  = "MEMORY.md"
	fileExt      = ".md"
	backupLayout = "20060102T150405.000000000"

	dirPerm  os.FileMode = 0o755
	filePerm os.FileMode = 0o644

	lockRetryDelay = 20 * time.Millisecond
)

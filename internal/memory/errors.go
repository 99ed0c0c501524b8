package memory

import "errors"

var (
	ErrDayNotFound             = errors.New("memory day not found")
	ErrDurableNotFound         = errors.New("durable memory not found")
	ErrBackupNotFound          = errors.New("backup not found")
	ErrInvalidDate             = errors.New("invalid date, expected YYYY-MM-DD")
	ErrUnknownSection          = errors.New("unknown memory section")
	ErrEmptyEntry              = errors.New("memory entry text is empty")
	ErrVersionMismatch         = errors.New("memory document changed since it was read")
	ErrConcurrentWriteConflict = errors.New("concurrent write conflict on memory day")
)

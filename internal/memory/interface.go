package memory

import (
	"context"
	"time"
)

// Repository is the storage boundary for memory documents.
// Writes carry the version the caller read; a stale version yields ErrVersionMismatch.
type Repository interface {
	ReadDay(ctx context.Context, date string) (Document, error)
	WriteDay(ctx context.Context, date, content, expectedVersion string) error
	ListDays(ctx context.Context) ([]string, error)
	ReadDurable(ctx context.Context) (Document, error)
	WriteDurable(ctx context.Context, content, expectedVersion string) error
	SaveBackup(ctx context.Context, key, content string, at time.Time) (Backup, error)
	LatestBackup(ctx context.Context, key string) (Backup, error)
	// Lock holds key (a date or DurableKey) against editors in any process
	// sharing the store until the returned func is called.
	Lock(ctx context.Context, key string) (func(), error)
}

// UseCase is the memory store used by the assistant and operators.
type UseCase interface {
	AppendToDay(ctx context.Context, in AppendInput) error
	OverwriteDay(ctx context.Context, date, content string) (OverwriteOutput, error)
	OverwriteDurable(ctx context.Context, content string) (OverwriteOutput, error)
	ReadDay(ctx context.Context, date string) (string, error)
	ReadDurable(ctx context.Context) (string, error)
	ListDays(ctx context.Context) ([]string, error)
	LatestBackup(ctx context.Context, key string) (Backup, error)
	Today() string
}

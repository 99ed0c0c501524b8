package usecase

import (
	"time"

	"pelangi-assistant/internal/memory"
	"pelangi-assistant/pkg/keymutex"
	pkgLog "pelangi-assistant/pkg/log"
)

type implUseCase struct {
	repo       memory.Repository
	l          pkgLog.Logger
	loc        *time.Location
	locks      *keymutex.KeyMutex
	maxRetries int
	now        func() time.Time
}

var _ memory.UseCase = (*implUseCase)(nil)

// Config tunes the memory store.
type Config struct {
	Location        *time.Location
	MaxWriteRetries int
}

// New creates the memory use case.
func New(repo memory.Repository, l pkgLog.Logger, cfg Config) *implUseCase {
	loc := cfg.Location
	if loc == nil {
		loc = time.UTC
	}
	retries := cfg.MaxWriteRetries
	if retries <= 0 {
		retries = DefaultMaxWriteRetries
	}
	return &implUseCase{
		repo:       repo,
		l:          l,
		loc:        loc,
		locks:      keymutex.New(),
		maxRetries: retries,
		now:        time.Now,
	}
}

package workflow

import (
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	pkgLog "pelangi-assistant/pkg/log"
)

// Engine steps conversations through workflow definitions.
type Engine struct {
	l        pkgLog.Logger
	mu       sync.Mutex
	sessions *expirable.LRU[string, Session]
	now      func() time.Time
}

// New creates an Engine.
func New(l pkgLog.Logger, cfg Config) *Engine {
	size := cfg.MaxSessions
	if size <= 0 {
		size = DefaultMaxSessions
	}
	ttl := cfg.SessionTTL
	if ttl < 0 {
		ttl = noExpiry
	}
	return &Engine{
		l:        l,
		sessions: expirable.NewLRU[string, Session](size, nil, ttl),
		now:      time.Now,
	}
}

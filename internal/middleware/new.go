package middleware

import (
	pkgLog "pelangi-assistant/pkg/log"
)

// Config configures the operator route guards.
type Config struct {
	// InternalKey is required in the X-Internal-Key header. Empty disables the check.
	InternalKey string
	// RateLimitPerMin bounds requests per client IP. Zero or less disables limiting.
	RateLimitPerMin int
}

type Middleware struct {
	l           pkgLog.Logger
	internalKey string
	limiter     *rateLimiter
}

func New(l pkgLog.Logger, cfg Config) Middleware {
	mw := Middleware{
		l:           l,
		internalKey: cfg.InternalKey,
	}
	if cfg.RateLimitPerMin > 0 {
		mw.limiter = newRateLimiter(cfg.RateLimitPerMin)
	}
	return mw
}

package voyage

import "errors"

var (
	ErrRateLimited = errors.New("voyage: rate limited")
	ErrNoAPIKey    = errors.New("voyage: API key is required")
)

package openaicompat

import "errors"

var (
	ErrRateLimited      = errors.New("openaicompat: rate limited")
	ErrEmptyResponse    = errors.New("openaicompat: response has no choices")
	ErrNoEmbeddingModel = errors.New("openaicompat: no embedding model configured")
)

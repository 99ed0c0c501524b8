package matcher

import "errors"

var (
	ErrInvalidPattern      = errors.New("invalid intent pattern")
	ErrDimensionMismatch   = errors.New("embedding dimensions do not match")
	ErrZeroVector          = errors.New("embedding has zero magnitude")
	ErrNonFiniteVector     = errors.New("embedding contains non-finite values")
	ErrEmbeddingCountShort = errors.New("embedder returned fewer vectors than requested")
)

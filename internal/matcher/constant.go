package matcher

import "time"

const (
	LogPrefixMatchSemantic = "internal.matcher.MatchSemantic"
	LogPrefixNewIndex      = "internal.matcher.NewIndex"
)

const (
	DefaultFuzzyThreshold    = 0.72
	DefaultSemanticThreshold = 0.80

	// DiagnosticLimit caps hits per stage in Score.
	DiagnosticLimit = 5

	DefaultEmbeddingCacheSize = 4096
	DefaultEmbeddingCacheTTL  = 24 * time.Hour
)

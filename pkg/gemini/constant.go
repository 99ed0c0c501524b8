package gemini

import "time"

const (
	// DefaultModel is the default Gemini chat model
	DefaultModel = "gemini-2.5-flash"

	// DefaultEmbeddingModel is the default Gemini embedding model
	DefaultEmbeddingModel = "gemini-embedding-001"

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 30 * time.Second

	// embeddingTaskType tunes embeddings for similarity comparison
	embeddingTaskType = "SEMANTIC_SIMILARITY"
)

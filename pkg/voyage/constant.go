package voyage

import "time"

const (
	DefaultBaseURL = "https://api.voyageai.com/v1"
	DefaultModel   = "voyage-3"
	DefaultTimeout = 15 * time.Second

	// Voyage accepts at most this many inputs per request.
	maxBatch = 128
)

// Input types tune the embedding for its side of a similarity search.
const (
	InputTypeQuery    = "query"
	InputTypeDocument = "document"
)

package gemini

import "context"

// IGemini defines the interface for the Gemini API client.
// Implementations are safe for concurrent use.
type IGemini interface {
	// GenerateContent sends a generation request to Gemini
	GenerateContent(ctx context.Context, req *Request) (*Response, error)

	// Embed returns one vector per text, in order
	Embed(ctx context.Context, texts []string) ([][]float32, error)

	// Model returns the chat model being used
	Model() string

	// EmbeddingModel returns the embedding model being used
	EmbeddingModel() string
}

// New creates a new Gemini client with the given configuration
func New(ctx context.Context, cfg Config) (IGemini, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newGeminiImpl(ctx, cfg)
}

package openaicompat

import "context"

// IClient is a chat and embedding client for an OpenAI-compatible API.
// Implementations are safe for concurrent use.
type IClient interface {
	GenerateContent(ctx context.Context, req *Request) (*Response, error)
	Embed(ctx context.Context, texts []string) ([][]float32, error)
	Name() string
	Model() string
	EmbeddingModel() string
}

// New creates a client with the given configuration.
func New(cfg Config) (IClient, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newClientImpl(cfg), nil
}

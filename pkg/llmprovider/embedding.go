package llmprovider

import (
	"context"
	"fmt"

	"pelangi-assistant/pkg/log"
)

// EmbeddingManager fails over across embedding providers the same way Manager
// does for chat.
type EmbeddingManager struct {
	providers []EmbeddingProvider
	config    *Config
	logger    log.Logger
}

// NewEmbeddingManager creates an EmbeddingManager
func NewEmbeddingManager(providers []EmbeddingProvider, config *Config, logger log.Logger) *EmbeddingManager {
	return &EmbeddingManager{providers: providers, config: config, logger: logger}
}

// Embed returns one vector per text from the first provider that succeeds.
func (m *EmbeddingManager) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	if len(m.providers) == 0 {
		return nil, ErrNoProvidersConfigured
	}
	if len(texts) == 0 {
		return nil, nil
	}

	ctx, cancel := withTotalTimeout(ctx, m.config.MaxTotalTimeout)
	defer cancel()

	var lastErr error
	for _, provider := range m.providers {
		if ctx.Err() != nil {
			break
		}
		vecs, err := withRetry(ctx, m.config, func(ctx context.Context) ([][]float32, error) {
			return provider.Embed(ctx, texts)
		})
		if err == nil && len(vecs) != len(texts) {
			err = fmt.Errorf("%w: got %d vectors for %d texts", ErrInvalidResponse, len(vecs), len(texts))
		}
		if err == nil {
			return vecs, nil
		}

		m.logger.Warn(ctx, "embedding provider failed",
			"provider", provider.Name(),
			"model", provider.Model(),
			"error", err.Error(),
		)
		lastErr = &ProviderError{Provider: provider.Name(), Err: err}
		if !m.config.FallbackEnabled {
			break
		}
	}
	if lastErr == nil {
		lastErr = ctx.Err()
	}
	return nil, fmt.Errorf("%w: %w", ErrAllProvidersFailed, lastErr)
}

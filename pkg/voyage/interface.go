package voyage

import (
	"context"
	"net/http"
	"strings"
)

// IClient embeds texts with Voyage AI.
// Implementations are safe for concurrent use.
type IClient interface {
	Embed(ctx context.Context, texts []string) ([][]float32, error)
	Model() string
}

// New creates a client. Empty fields take the package defaults.
func New(cfg Config) (IClient, error) {
	if cfg.APIKey == "" {
		return nil, ErrNoAPIKey
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{Timeout: DefaultTimeout}
	}
	return &client{
		apiKey:     cfg.APIKey,
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		model:      cfg.Model,
		inputType:  cfg.InputType,
		httpClient: cfg.HTTPClient,
	}, nil
}

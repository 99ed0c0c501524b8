package llmprovider

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"time"

	"pelangi-assistant/config"
	"pelangi-assistant/pkg/gemini"
	"pelangi-assistant/pkg/log"
	"pelangi-assistant/pkg/openaicompat"
	"pelangi-assistant/pkg/voyage"
)

// InitializeProviders creates chat providers from config.LLMConfig.
// Returns providers sorted by priority (ascending) with disabled providers filtered out.
// Skips providers that fail to initialize instead of failing the entire service.
func InitializeProviders(ctx context.Context, cfg *config.LLMConfig, l log.Logger) ([]Provider, error) {
	if cfg == nil {
		return nil, fmt.Errorf("LLM config is nil")
	}

	var providers []Provider
	var initErrors []string
	for _, p := range enabledByPriority(cfg.Providers) {
		provider, err := createProvider(ctx, p)
		if err != nil {
			initErrors = append(initErrors, fmt.Sprintf("provider %s (priority %d): %v", p.Name, p.Priority, err))
			l.Warnf(ctx, "failed to initialize provider %s: %v", p.Name, err)
			continue
		}
		providers = append(providers, WithLimits(provider, limitsOf(p)))
	}

	if len(providers) == 0 {
		if len(initErrors) == 0 {
			return nil, ErrNoProvidersConfigured
		}
		return nil, fmt.Errorf("no providers successfully initialized: %s", strings.Join(initErrors, "; "))
	}
	if len(initErrors) > 0 {
		l.Warnf(ctx, "%d provider(s) failed to initialize, continuing with %d", len(initErrors), len(providers))
	}
	return providers, nil
}

// InitializeEmbeddingProviders creates embedding providers. An empty result is
// not an error: the semantic stage is then disabled.
func InitializeEmbeddingProviders(ctx context.Context, cfg *config.LLMConfig, l log.Logger) []EmbeddingProvider {
	if cfg == nil {
		return nil
	}

	var providers []EmbeddingProvider
	for _, p := range enabledByPriority(cfg.EmbeddingProviders) {
		provider, err := createEmbeddingProvider(ctx, p)
		if err != nil {
			l.Warnf(ctx, "failed to initialize embedding provider %s: %v", p.Name, err)
			continue
		}
		providers = append(providers, WithEmbeddingLimits(provider, limitsOf(p)))
	}
	return providers
}

// ManagerConfig converts the string durations of config.LLMConfig.
func ManagerConfig(cfg *config.LLMConfig) *Config {
	return &Config{
		FallbackEnabled: cfg.FallbackEnabled,
		RetryAttempts:   cfg.RetryAttempts,
		RetryDelay:      parseDuration(cfg.RetryDelay, time.Second),
		MaxTotalTimeout: parseDuration(cfg.MaxTotalTimeout, 60*time.Second),
	}
}

func enabledByPriority(in []config.ProviderConfig) []config.ProviderConfig {
	var out []config.ProviderConfig
	for _, p := range in {
		if p.Enabled {
			out = append(out, p)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Priority < out[j].Priority
	})
	return out
}

func limitsOf(p config.ProviderConfig) Limits {
	return Limits{Timeout: parseDuration(p.Timeout, 0), PerMinute: p.RateLimitPerMin}
}

// createProvider creates a concrete provider instance based on the provider config
func createProvider(ctx context.Context, cfg config.ProviderConfig) (Provider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("provider %s: API key is required", cfg.Name)
	}

	switch cfg.Name {
	case "gemini":
		client, err := gemini.New(ctx, gemini.Config{APIKey: cfg.APIKey, Model: cfg.Model, BaseURL: cfg.BaseURL})
		if err != nil {
			return nil, fmt.Errorf("failed to create gemini client: %w", err)
		}
		return NewGeminiAdapter(client), nil

	case "openai", "deepseek", "qwen", "alibaba":
		client, err := openaicompat.New(openaicompat.Config{
			Name:    cfg.Name,
			APIKey:  cfg.APIKey,
			BaseURL: cfg.BaseURL,
			Model:   cfg.Model,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create %s client: %w", cfg.Name, err)
		}
		return NewOpenAICompatAdapter(client), nil

	default:
		return nil, fmt.Errorf("unknown provider: %s", cfg.Name)
	}
}

func createEmbeddingProvider(ctx context.Context, cfg config.ProviderConfig) (EmbeddingProvider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("provider %s: API key is required", cfg.Name)
	}
	model := cfg.EmbeddingModel
	if model == "" {
		model = cfg.Model
	}

	switch cfg.Name {
	case "gemini":
		client, err := gemini.New(ctx, gemini.Config{APIKey: cfg.APIKey, EmbeddingModel: model, BaseURL: cfg.BaseURL})
		if err != nil {
			return nil, fmt.Errorf("failed to create gemini client: %w", err)
		}
		return geminiEmbedder{NewGeminiAdapter(client)}, nil

	case "openai", "qwen", "alibaba":
		if model == "" {
			model = openaicompat.DefaultEmbeddingModel
		}
		client, err := openaicompat.New(openaicompat.Config{
			Name:           cfg.Name,
			APIKey:         cfg.APIKey,
			BaseURL:        cfg.BaseURL,
			EmbeddingModel: model,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create %s client: %w", cfg.Name, err)
		}
		return openAICompatEmbedder{NewOpenAICompatAdapter(client)}, nil

	case "voyage":
		client, err := voyage.New(voyage.Config{
			APIKey:    cfg.APIKey,
			BaseURL:   cfg.BaseURL,
			Model:     model,
			InputType: voyage.InputTypeDocument,
			HTTPClient: &http.Client{
				Timeout: parseDuration(cfg.Timeout, voyage.DefaultTimeout),
			},
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create voyage client: %w", err)
		}
		return NewVoyageAdapter(client), nil

	default:
		return nil, fmt.Errorf("unknown embedding provider: %s", cfg.Name)
	}
}

func parseDuration(s string, def time.Duration) time.Duration {
	if s == "" {
		return def
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return def
	}
	return d
}

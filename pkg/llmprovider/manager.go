package llmprovider

import (
	"context"
	"errors"
	"fmt"
	"time"

	"pelangi-assistant/pkg/log"
)

// Manager orchestrates provider selection, fallback, and retry logic
type Manager struct {
	providers []Provider
	config    *Config
	logger    log.Logger
}

// Config defines configuration for the Provider Manager
type Config struct {
	FallbackEnabled bool
	RetryAttempts   int
	RetryDelay      time.Duration
	MaxTotalTimeout time.Duration // Global timeout for entire fallback chain
}

// NewManager creates a new Provider Manager with the given providers, config, and logger
func NewManager(providers []Provider, config *Config, logger log.Logger) *Manager {
	return &Manager{
		providers: providers,
		config:    config,
		logger:    logger,
	}
}

// GenerateContent iterates through providers in priority order with fallback logic
func (m *Manager) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	if len(m.providers) == 0 {
		return nil, ErrNoProvidersConfigured
	}

	ctx, cancel := withTotalTimeout(ctx, m.config.MaxTotalTimeout)
	defer cancel()

	var lastErr error
	for _, provider := range m.providers {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("%w: global timeout exceeded: %w", ErrAllProvidersFailed, errors.Join(ErrProviderTimeout, err))
		}

		resp, err := withRetry(ctx, m.config, func(ctx context.Context) (*Response, error) {
			return provider.GenerateContent(ctx, req)
		})
		if err == nil {
			m.logSuccess(ctx, provider, resp)
			return resp, nil
		}

		m.logFailure(ctx, provider.Name(), provider.Model(), err)
		lastErr = &ProviderError{Provider: provider.Name(), Err: err}

		if !m.config.FallbackEnabled {
			break
		}
	}

	return nil, fmt.Errorf("%w: %w", ErrAllProvidersFailed, lastErr)
}

// Classify sends a single deterministic prompt and returns the raw answer text.
func (m *Manager) Classify(ctx context.Context, prompt string) (string, error) {
	if prompt == "" {
		return "", ErrInvalidRequest
	}
	resp, err := m.GenerateContent(ctx, &Request{
		Messages:  []Message{{Role: "user", Text: prompt}},
		MaxTokens: classifyMaxTokens,
	})
	if err != nil {
		return "", err
	}
	return resp.Text, nil
}

// Complete generates a reply to user given a system prompt and prior turns.
func (m *Manager) Complete(ctx context.Context, system string, history []Message, user string) (Completion, error) {
	messages := make([]Message, 0, len(history)+1)
	messages = append(messages, history...)
	messages = append(messages, Message{Role: "user", Text: user})

	resp, err := m.GenerateContent(ctx, &Request{
		SystemInstruction: system,
		Messages:          messages,
		Temperature:       completeTemperature,
		MaxTokens:         completeMaxTokens,
	})
	if err != nil {
		return Completion{}, err
	}
	return Completion{Text: resp.Text, ModelID: resp.ProviderName + "/" + resp.ModelName}, nil
}

// withRetry implements the retry mechanism with linear backoff. Rate limited
// providers are not retried.
func withRetry[T any](ctx context.Context, cfg *Config, call func(context.Context) (T, error)) (T, error) {
	var zero T
	var lastErr error

	attempts := cfg.RetryAttempts
	if attempts < 1 {
		attempts = 1
	}
	for attempt := 0; attempt < attempts; attempt++ {
		if attempt > 0 {
			delay := time.Duration(attempt) * cfg.RetryDelay
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return zero, ctx.Err()
			}
		}

		out, err := call(ctx)
		if err == nil {
			return out, nil
		}
		lastErr = err
		if errors.Is(err, ErrProviderRateLimited) {
			break
		}
	}
	return zero, lastErr
}

func withTotalTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d > 0 {
		return context.WithTimeout(ctx, d)
	}
	return context.WithCancel(ctx)
}

// logSuccess logs successful LLM generation with metrics
func (m *Manager) logSuccess(ctx context.Context, provider Provider, resp *Response) {
	var in, out int
	if resp.Usage != nil {
		in, out = resp.Usage.InputTokens, resp.Usage.OutputTokens
	}
	m.logger.Info(ctx, "LLM generation successful",
		"provider", provider.Name(),
		"model", provider.Model(),
		"input_tokens", in,
		"output_tokens", out,
	)
}

// logFailure logs failed provider attempts
func (m *Manager) logFailure(ctx context.Context, name, model string, err error) {
	m.logger.Warn(ctx, "LLM provider failed",
		"provider", name,
		"model", model,
		"error", err.Error(),
	)
}

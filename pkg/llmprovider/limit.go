package llmprovider

import (
	"context"
	"errors"
	"time"

	"golang.org/x/time/rate"
)

// Limits bound one provider's calls.
type Limits struct {
	Timeout time.Duration
	// PerMinute is the sustained call budget. Zero means unlimited.
	PerMinute int
}

func (l Limits) limiter() *rate.Limiter {
	if l.PerMinute <= 0 {
		return nil
	}
	burst := l.PerMinute / 10
	if burst < 1 {
		burst = 1
	}
	return rate.NewLimiter(rate.Every(time.Minute/time.Duration(l.PerMinute)), burst)
}

// guard applies a limiter and timeout around call. An exhausted budget fails
// fast so the manager can move to the next provider.
func guard[T any](ctx context.Context, limiter *rate.Limiter, timeout time.Duration, call func(context.Context) (T, error)) (T, error) {
	var zero T
	if limiter != nil && !limiter.Allow() {
		return zero, ErrProviderRateLimited
	}
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	out, err := call(ctx)
	if err != nil && errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return zero, errors.Join(ErrProviderTimeout, err)
	}
	return out, err
}

type limitedProvider struct {
	Provider
	limiter *rate.Limiter
	timeout time.Duration
}

// WithLimits wraps p with a per-provider rate limit and timeout.
func WithLimits(p Provider, l Limits) Provider {
	return &limitedProvider{Provider: p, limiter: l.limiter(), timeout: l.Timeout}
}

func (p *limitedProvider) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	return guard(ctx, p.limiter, p.timeout, func(ctx context.Context) (*Response, error) {
		return p.Provider.GenerateContent(ctx, req)
	})
}

type limitedEmbedder struct {
	EmbeddingProvider
	limiter *rate.Limiter
	timeout time.Duration
}

// WithEmbeddingLimits wraps p with a per-provider rate limit and timeout.
func WithEmbeddingLimits(p EmbeddingProvider, l Limits) EmbeddingProvider {
	return &limitedEmbedder{EmbeddingProvider: p, limiter: l.limiter(), timeout: l.Timeout}
}

func (p *limitedEmbedder) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	return guard(ctx, p.limiter, p.timeout, func(ctx context.Context) ([][]float32, error) {
		return p.EmbeddingProvider.Embed(ctx, texts)
	})
}

package llmprovider

import (
	"context"
	"errors"
	"testing"
	"time"
)

// mockProvider is a test implementation of the Provider interface
type mockProvider struct {
	name       string
	model      string
	shouldFail bool
	err        error
	delay      time.Duration
	response   *Response
	callCount  int
	lastReq    *Request
}

func (m *mockProvider) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	m.callCount++
	m.lastReq = req
	if m.delay > 0 {
		select {
		case <-time.After(m.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if m.err != nil {
		return nil, m.err
	}
	if m.shouldFail {
		return nil, errors.New("mock provider error")
	}
	return m.response, nil
}

func (m *mockProvider) Name() string {
	return m.name
}

func (m *mockProvider) Model() string {
	return m.model
}

// mockLogger is a test implementation of the Logger interface
type mockLogger struct {
	infoMessages []string
	warnMessages []string
}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Info(ctx context.Context, arg ...any) {
	if len(arg) > 0 {
		if msg, ok := arg[0].(string); ok {
			m.infoMessages = append(m.infoMessages, msg)
		}
	}
}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any) {
	if len(arg) > 0 {
		if msg, ok := arg[0].(string); ok {
			m.warnMessages = append(m.warnMessages, msg)
		}
	}
}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}

func okResponse(provider string) *Response {
	return &Response{
		Text:         "Hello from " + provider,
		ProviderName: provider,
		ModelName:    provider + "-model",
		Usage:        &Usage{InputTokens: 100, OutputTokens: 50, TotalTokens: 150},
	}
}

func helloRequest() *Request {
	return &Request{Messages: []Message{{Role: "user", Text: "Hello"}}}
}

func TestGenerateContent_SuccessWithPrimaryProvider(t *testing.T) {
	primary := &mockProvider{name: "primary", model: "primary-model", response: okResponse("primary")}
	logger := &mockLogger{}
	manager := NewManager([]Provider{primary}, &Config{FallbackEnabled: true, RetryAttempts: 3, RetryDelay: 100 * time.Millisecond}, logger)

	resp, err := manager.GenerateContent(context.Background(), helloRequest())
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if resp.ProviderName != "primary" {
		t.Errorf("Expected provider name 'primary', got: %s", resp.ProviderName)
	}
	if primary.callCount != 1 {
		t.Errorf("Expected primary provider to be called once, got: %d", primary.callCount)
	}
	if len(logger.infoMessages) != 1 || len(logger.warnMessages) != 0 {
		t.Errorf("Expected 1 info and 0 warn logs, got: %d / %d", len(logger.infoMessages), len(logger.warnMessages))
	}
}

func TestGenerateContent_FallbackToSecondaryProvider(t *testing.T) {
	primary := &mockProvider{name: "primary", model: "primary-model", shouldFail: true}
	secondary := &mockProvider{name: "secondary", model: "secondary-model", response: okResponse("secondary")}
	logger := &mockLogger{}
	manager := NewManager([]Provider{primary, secondary}, &Config{FallbackEnabled: true, RetryAttempts: 2, RetryDelay: 10 * time.Millisecond}, logger)

	resp, err := manager.GenerateContent(context.Background(), helloRequest())
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if resp.ProviderName != "secondary" {
		t.Errorf("Expected provider name 'secondary', got: %s", resp.ProviderName)
	}
	// Primary should be called RetryAttempts times (2)
	if primary.callCount != 2 {
		t.Errorf("Expected primary provider to be called 2 times, got: %d", primary.callCount)
	}
	if secondary.callCount != 1 {
		t.Errorf("Expected secondary provider to be called once, got: %d", secondary.callCount)
	}
	if len(logger.infoMessages) != 1 || len(logger.warnMessages) != 1 {
		t.Errorf("Expected 1 info and 1 warn log, got: %d / %d", len(logger.infoMessages), len(logger.warnMessages))
	}
}

func TestGenerateContent_AllProvidersFail(t *testing.T) {
	primary := &mockProvider{name: "primary", shouldFail: true}
	secondary := &mockProvider{name: "secondary", shouldFail: true}
	logger := &mockLogger{}
	manager := NewManager([]Provider{primary, secondary}, &Config{FallbackEnabled: true, RetryAttempts: 2, RetryDelay: 10 * time.Millisecond}, logger)

	resp, err := manager.GenerateContent(context.Background(), helloRequest())
	if !errors.Is(err, ErrAllProvidersFailed) {
		t.Fatalf("Expected ErrAllProvidersFailed, got: %v", err)
	}
	var perr *ProviderError
	if !errors.As(err, &perr) || perr.Provider != "secondary" {
		t.Errorf("Expected last ProviderError from secondary, got: %v", err)
	}
	if resp != nil {
		t.Errorf("Expected nil response, got: %v", resp)
	}
	if primary.callCount != 2 || secondary.callCount != 2 {
		t.Errorf("Expected 2 calls each, got: %d / %d", primary.callCount, secondary.callCount)
	}
	if len(logger.warnMessages) != 2 {
		t.Errorf("Expected 2 warn log messages, got: %d", len(logger.warnMessages))
	}
}

func TestGenerateContent_NoFallbackWhenDisabled(t *testing.T) {
	primary := &mockProvider{name: "primary", shouldFail: true}
	secondary := &mockProvider{name: "secondary", response: okResponse("secondary")}
	manager := NewManager([]Provider{primary, secondary}, &Config{FallbackEnabled: false, RetryAttempts: 2, RetryDelay: 10 * time.Millisecond}, &mockLogger{})

	if _, err := manager.GenerateContent(context.Background(), helloRequest()); err == nil {
		t.Fatal("Expected error when primary fails and fallback is disabled, got nil")
	}
	if primary.callCount != 2 {
		t.Errorf("Expected primary provider to be called 2 times, got: %d", primary.callCount)
	}
	if secondary.callCount != 0 {
		t.Errorf("Expected secondary provider to NOT be called, got: %d calls", secondary.callCount)
	}
}

func TestGenerateContent_NoProvidersConfigured(t *testing.T) {
	manager := NewManager(nil, &Config{FallbackEnabled: true, RetryAttempts: 3}, &mockLogger{})

	_, err := manager.GenerateContent(context.Background(), helloRequest())
	if !errors.Is(err, ErrNoProvidersConfigured) {
		t.Errorf("Expected ErrNoProvidersConfigured, got: %v", err)
	}
}

func TestGenerateContent_RateLimitedIsNotRetried(t *testing.T) {
	primary := &mockProvider{name: "primary", err: ErrProviderRateLimited}
	secondary := &mockProvider{name: "secondary", response: okResponse("secondary")}
	manager := NewManager([]Provider{primary, secondary}, &Config{FallbackEnabled: true, RetryAttempts: 3, RetryDelay: 10 * time.Millisecond}, &mockLogger{})

	if _, err := manager.GenerateContent(context.Background(), helloRequest()); err != nil {
		t.Fatalf("Expected fallback success, got: %v", err)
	}
	if primary.callCount != 1 {
		t.Errorf("Expected rate limited provider to be called once, got: %d", primary.callCount)
	}
}

func TestWithLimits(t *testing.T) {
	t.Run("timeout", func(t *testing.T) {
		slow := &mockProvider{name: "slow", delay: time.Second, response: okResponse("slow")}
		p := WithLimits(slow, Limits{Timeout: 20 * time.Millisecond})
		manager := NewManager([]Provider{p}, &Config{RetryAttempts: 1}, &mockLogger{})

		_, err := manager.GenerateContent(context.Background(), helloRequest())
		if !errors.Is(err, ErrAllProvidersFailed) || !errors.Is(err, ErrProviderTimeout) {
			t.Errorf("Expected provider timeout inside all-failed, got: %v", err)
		}
	})

	t.Run("rate limit", func(t *testing.T) {
		inner := &mockProvider{name: "limited", response: okResponse("limited")}
		p := WithLimits(inner, Limits{PerMinute: 1})

		if _, err := p.GenerateContent(context.Background(), helloRequest()); err != nil {
			t.Fatalf("first call should pass: %v", err)
		}
		if _, err := p.GenerateContent(context.Background(), helloRequest()); !errors.Is(err, ErrProviderRateLimited) {
			t.Errorf("Expected ErrProviderRateLimited, got: %v", err)
		}
		if inner.callCount != 1 {
			t.Errorf("limited call should not reach provider, got %d calls", inner.callCount)
		}
	})
}

func TestComplete(t *testing.T) {
	primary := &mockProvider{name: "gemini", model: "flash", response: &Response{Text: "Hi!", ProviderName: "gemini", ModelName: "flash"}}
	manager := NewManager([]Provider{primary}, &Config{RetryAttempts: 1}, &mockLogger{})

	out, err := manager.Complete(context.Background(), "system prompt",
		[]Message{{Role: "user", Text: "earlier"}, {Role: "assistant", Text: "reply"}}, "now")
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if out.Text != "Hi!" || out.ModelID != "gemini/flash" {
		t.Errorf("unexpected completion %+v", out)
	}
	req := primary.lastReq
	if req.SystemInstruction != "system prompt" || len(req.Messages) != 3 || req.Messages[2].Text != "now" {
		t.Errorf("unexpected request %+v", req)
	}
}

func TestClassify(t *testing.T) {
	primary := &mockProvider{name: "p", response: &Response{Text: "facilities"}}
	manager := NewManager([]Provider{primary}, &Config{RetryAttempts: 1}, &mockLogger{})

	got, err := manager.Classify(context.Background(), "classify this")
	if err != nil || got != "facilities" {
		t.Errorf("Classify = %q, %v", got, err)
	}
	if primary.lastReq.Temperature != 0 {
		t.Error("classification should be deterministic")
	}
	if _, err := manager.Classify(context.Background(), ""); !errors.Is(err, ErrInvalidRequest) {
		t.Errorf("expected ErrInvalidRequest, got %v", err)
	}
}

type mockEmbedder struct {
	name  string
	vecs  [][]float32
	err   error
	calls int
}

func (m *mockEmbedder) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return m.vecs, nil
}

func (m *mockEmbedder) Name() string  { return m.name }
func (m *mockEmbedder) Model() string { return m.name + "-embed" }

func TestEmbeddingManager(t *testing.T) {
	cfg := &Config{FallbackEnabled: true, RetryAttempts: 1}

	t.Run("fails over", func(t *testing.T) {
		bad := &mockEmbedder{name: "bad", err: errors.New("down")}
		good := &mockEmbedder{name: "good", vecs: [][]float32{{1, 0}}}
		m := NewEmbeddingManager([]EmbeddingProvider{bad, good}, cfg, &mockLogger{})

		vecs, err := m.Embed(context.Background(), []string{"a"})
		if err != nil || len(vecs) != 1 {
			t.Fatalf("Embed = %v, %v", vecs, err)
		}
	})

	t.Run("count mismatch is a failure", func(t *testing.T) {
		short := &mockEmbedder{name: "short", vecs: [][]float32{{1}}}
		m := NewEmbeddingManager([]EmbeddingProvider{short}, cfg, &mockLogger{})

		_, err := m.Embed(context.Background(), []string{"a", "b"})
		if !errors.Is(err, ErrAllProvidersFailed) || !errors.Is(err, ErrInvalidResponse) {
			t.Errorf("expected invalid response, got %v", err)
		}
	})

	t.Run("none configured", func(t *testing.T) {
		m := NewEmbeddingManager(nil, cfg, &mockLogger{})
		if _, err := m.Embed(context.Background(), []string{"a"}); !errors.Is(err, ErrNoProvidersConfigured) {
			t.Errorf("expected ErrNoProvidersConfigured, got %v", err)
		}
	})
}

package openaicompat

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func newTestServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv
}

func TestGenerateContent(t *testing.T) {
	var captured map[string]any
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/chat/completions") {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("authorization header = %q", got)
		}
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &captured)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": "chatcmpl-1",
			"object": "chat.completion",
			"created": 1,
			"model": "deepseek-chat",
			"choices": [{"index": 0, "finish_reason": "stop", "message": {"role": "assistant", "content": "Check-in is at 3pm."}}],
			"usage": {"prompt_tokens": 12, "completion_tokens": 6, "total_tokens": 18}
		}`))
	})

	c, err := New(Config{Name: "deepseek", APIKey: "test-key", BaseURL: srv.URL})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	resp, err := c.GenerateContent(context.Background(), &Request{
		SystemInstruction: "be brief",
		Messages:          []Message{{Role: "user", Text: "when is check in"}},
		MaxTokens:         100,
	})
	if err != nil {
		t.Fatalf("GenerateContent: %v", err)
	}
	if resp.Text != "Check-in is at 3pm." || resp.Usage.TotalTokens != 18 {
		t.Errorf("unexpected response %+v", resp)
	}

	if captured["model"] != DefaultDeepSeekModel {
		t.Errorf("model = %v", captured["model"])
	}
	msgs, _ := captured["messages"].([]any)
	if len(msgs) != 2 {
		t.Fatalf("expected system and user messages, got %v", captured["messages"])
	}
	if first, _ := msgs[0].(map[string]any); first["role"] != "system" {
		t.Errorf("first message role = %v", first["role"])
	}
}

func TestGenerateContent_RateLimited(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error": {"message": "slow down", "type": "rate_limit"}}`))
	})

	c, _ := New(Config{APIKey: "k", BaseURL: srv.URL})
	_, err := c.GenerateContent(context.Background(), &Request{Messages: []Message{{Role: "user", Text: "hi"}}})
	if !errors.Is(err, ErrRateLimited) {
		t.Errorf("expected ErrRateLimited, got %v", err)
	}
}

func TestEmbed(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/embeddings") {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		// Out of order on purpose.
		_, _ = w.Write([]byte(`{
			"object": "list",
			"model": "text-embedding-3-small",
			"data": [
				{"object": "embedding", "index": 1, "embedding": [0, 1]},
				{"object": "embedding", "index": 0, "embedding": [1, 0]}
			],
			"usage": {"prompt_tokens": 4, "total_tokens": 4}
		}`))
	})

	c, _ := New(Config{APIKey: "k", BaseURL: srv.URL, EmbeddingModel: DefaultEmbeddingModel})
	vecs, err := c.Embed(context.Background(), []string{"a", "b"})
	if err != nil {
		t.Fatalf("Embed: %v", err)
	}
	if len(vecs) != 2 || vecs[0][0] != 1 || vecs[1][1] != 1 {
		t.Errorf("vectors not ordered by index: %v", vecs)
	}
}

func TestEmbed_NoModel(t *testing.T) {
	c, _ := New(Config{APIKey: "k"})
	if _, err := c.Embed(context.Background(), []string{"a"}); !errors.Is(err, ErrNoEmbeddingModel) {
		t.Errorf("expected ErrNoEmbeddingModel, got %v", err)
	}
}

func TestConfigDefaults(t *testing.T) {
	tests := []struct {
		name    string
		baseURL string
		model   string
	}{
		{"openai", OpenAIBaseURL, DefaultOpenAIModel},
		{"deepseek", DeepSeekBaseURL, DefaultDeepSeekModel},
		{"qwen", QwenBaseURL, DefaultQwenModel},
	}
	for _, tt := range tests {
		cfg := Config{Name: tt.name, APIKey: "k"}
		if err := cfg.Validate(); err != nil {
			t.Fatal(err)
		}
		if cfg.BaseURL != tt.baseURL || cfg.Model != tt.model {
			t.Errorf("%s: got %s %s", tt.name, cfg.BaseURL, cfg.Model)
		}
	}
	if err := (&Config{}).Validate(); err == nil {
		t.Error("expected error without API key")
	}
}

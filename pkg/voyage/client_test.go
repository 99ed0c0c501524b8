package voyage_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"pelangi-assistant/pkg/voyage"
)

func newServer(t *testing.T, calls *atomic.Int32) *httptest.Server {
	t.Helper()
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		if r.Header.Get("Authorization") != "Bearer test-voyage-key" {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"detail":"Provided API key is invalid."}`))
			return
		}
		if r.URL.Path != "/embeddings" {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		var req struct {
			Input     []string `json:"input"`
			Model     string   `json:"model"`
			InputType string   `json:"input_type"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		switch req.Input[0] {
		case "cause_429":
			w.WriteHeader(http.StatusTooManyRequests)
			w.Write([]byte(`{"detail":"slow down"}`))
			return
		case "cause_500":
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		type item struct {
			Embedding []float32 `json:"embedding"`
			Index     int       `json:"index"`
		}
		resp := struct {
			Data  []item `json:"data"`
			Model string `json:"model"`
		}{Model: req.Model}
		// Reverse order to check results are placed by index.
		for i := len(req.Input) - 1; i >= 0; i-- {
			resp.Data = append(resp.Data, item{Embedding: []float32{float32(len(req.Input[i])), 0.5}, Index: i})
		}
		json.NewEncoder(w).Encode(resp)
	}))
	t.Cleanup(ts.Close)
	return ts
}

func TestEmbed(t *testing.T) {
	var calls atomic.Int32
	ts := newServer(t, &calls)

	client, err := voyage.New(voyage.Config{APIKey: "test-voyage-key", BaseURL: ts.URL + "/", Model: "voyage-3-lite", InputType: voyage.InputTypeDocument})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if client.Model() != "voyage-3-lite" {
		t.Errorf("Model() = %q", client.Model())
	}

	t.Run("Vectors In Input Order", func(t *testing.T) {
		vecs, err := client.Embed(context.Background(), []string{"wifi", "check in please"})
		if err != nil {
			t.Fatalf("Embed: %v", err)
		}
		if len(vecs) != 2 || vecs[0][0] != 4 || vecs[1][0] != 15 {
			t.Errorf("unexpected vectors %v", vecs)
		}
	})

	t.Run("Batches Large Inputs", func(t *testing.T) {
		calls.Store(0)
		texts := make([]string, 130)
		for i := range texts {
			texts[i] = strings.Repeat("a", i+1)
		}
		vecs, err := client.Embed(context.Background(), texts)
		if err != nil {
			t.Fatalf("Embed: %v", err)
		}
		if len(vecs) != 130 || vecs[129][0] != 130 {
			t.Errorf("unexpected vectors, len=%d", len(vecs))
		}
		if calls.Load() != 2 {
			t.Errorf("expected 2 requests, got %d", calls.Load())
		}
	})

	t.Run("Empty Input", func(t *testing.T) {
		vecs, err := client.Embed(context.Background(), nil)
		if err != nil || vecs != nil {
			t.Errorf("expected nil, nil; got %v, %v", vecs, err)
		}
	})

	t.Run("Rate Limited", func(t *testing.T) {
		_, err := client.Embed(context.Background(), []string{"cause_429"})
		if !errors.Is(err, voyage.ErrRateLimited) {
			t.Fatalf("expected ErrRateLimited, got %v", err)
		}
	})

	t.Run("Server Error", func(t *testing.T) {
		if _, err := client.Embed(context.Background(), []string{"cause_500"}); err == nil {
			t.Fatal("expected error from 500 response")
		}
	})

	t.Run("Unauthorized", func(t *testing.T) {
		bad, _ := voyage.New(voyage.Config{APIKey: "bad-key", BaseURL: ts.URL})
		_, err := bad.Embed(context.Background(), []string{"hello"})
		if err == nil || !strings.Contains(err.Error(), "401") || !strings.Contains(err.Error(), "invalid") {
			t.Fatalf("expected 401 error with detail, got %v", err)
		}
	})
}

func TestNew_RequiresKey(t *testing.T) {
	if _, err := voyage.New(voyage.Config{}); !errors.Is(err, voyage.ErrNoAPIKey) {
		t.Errorf("expected ErrNoAPIKey, got %v", err)
	}
}

package gemini

import (
	"errors"
	"net/http"
)

// Config holds Gemini client configuration.
type Config struct {
	APIKey         string
	Model          string
	EmbeddingModel string
	// BaseURL overrides the API endpoint, mainly for tests.
	BaseURL    string
	HTTPClient *http.Client
}

// Validate checks required fields and fills defaults.
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return errors.New("gemini: API key is required")
	}
	if c.Model == "" {
		c.Model = DefaultModel
	}
	if c.EmbeddingModel == "" {
		c.EmbeddingModel = DefaultEmbeddingModel
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: DefaultTimeout}
	}
	return nil
}

// Message is one conversation turn. Role is "user" or "assistant".
type Message struct {
	Role string
	Text string
}

// Request is a text generation request.
type Request struct {
	SystemInstruction string
	Messages          []Message
	Temperature       float64
	MaxTokens         int
}

// Response is a text generation result.
type Response struct {
	Text  string
	Usage Usage
}

// Usage tracks token consumption.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

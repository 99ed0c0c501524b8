package openaicompat

import (
	"errors"
	"net/http"
	"strings"
)

// Config configures a client for any OpenAI-compatible endpoint.
type Config struct {
	// Name is the provider name: openai, deepseek or qwen.
	Name           string
	APIKey         string
	BaseURL        string
	Model          string
	EmbeddingModel string
	HTTPClient     *http.Client
}

// Validate checks required fields and fills per-provider defaults.
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return errors.New("openaicompat: API key is required")
	}
	c.Name = strings.ToLower(strings.TrimSpace(c.Name))
	if c.Name == "" {
		c.Name = "openai"
	}

	baseURL, model := OpenAIBaseURL, DefaultOpenAIModel
	switch c.Name {
	case "deepseek":
		baseURL, model = DeepSeekBaseURL, DefaultDeepSeekModel
	case "qwen", "alibaba":
		baseURL, model = QwenBaseURL, DefaultQwenModel
	}
	if c.BaseURL == "" {
		c.BaseURL = baseURL
	}
	if c.Model == "" {
		c.Model = model
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

// Request is a chat completion request.
type Request struct {
	SystemInstruction string
	Messages          []Message
	Temperature       float64
	MaxTokens         int
}

// Response is a chat completion result.
type Response struct {
	Text  string
	Model string
	Usage Usage
}

// Usage tracks token consumption.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

package llmprovider

import (
	"context"
	"errors"

	"pelangi-assistant/pkg/gemini"
	"pelangi-assistant/pkg/openaicompat"
	"pelangi-assistant/pkg/voyage"
)

// GeminiAdapter adapts pkg/gemini to the Provider and EmbeddingProvider interfaces
type GeminiAdapter struct {
	client gemini.IGemini
}

// NewGeminiAdapter creates a new Gemini adapter
func NewGeminiAdapter(client gemini.IGemini) *GeminiAdapter {
	return &GeminiAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *GeminiAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	messages := make([]gemini.Message, len(req.Messages))
	for i, m := range req.Messages {
		messages[i] = gemini.Message{Role: m.Role, Text: m.Text}
	}

	resp, err := a.client.GenerateContent(ctx, &gemini.Request{
		SystemInstruction: req.SystemInstruction,
		Messages:          messages,
		Temperature:       req.Temperature,
		MaxTokens:         req.MaxTokens,
	})
	if err != nil {
		return nil, err
	}

	return &Response{
		Text:         resp.Text,
		ProviderName: "gemini",
		ModelName:    a.client.Model(),
		Usage: &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

// Embed implements EmbeddingProvider interface
func (a *GeminiAdapter) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	return a.client.Embed(ctx, texts)
}

// Name returns provider name
func (a *GeminiAdapter) Name() string {
	return "gemini"
}

// Model returns model name
func (a *GeminiAdapter) Model() string {
	return a.client.Model()
}

// geminiEmbedder reports the embedding model as its model
type geminiEmbedder struct {
	*GeminiAdapter
}

func (e geminiEmbedder) Model() string {
	return e.client.EmbeddingModel()
}

// OpenAICompatAdapter adapts pkg/openaicompat (OpenAI, DeepSeek, Qwen) to the
// Provider and EmbeddingProvider interfaces
type OpenAICompatAdapter struct {
	client openaicompat.IClient
}

// NewOpenAICompatAdapter creates a new adapter
func NewOpenAICompatAdapter(client openaicompat.IClient) *OpenAICompatAdapter {
	return &OpenAICompatAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *OpenAICompatAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	messages := make([]openaicompat.Message, len(req.Messages))
	for i, m := range req.Messages {
		messages[i] = openaicompat.Message{Role: m.Role, Text: m.Text}
	}

	resp, err := a.client.GenerateContent(ctx, &openaicompat.Request{
		SystemInstruction: req.SystemInstruction,
		Messages:          messages,
		Temperature:       req.Temperature,
		MaxTokens:         req.MaxTokens,
	})
	if err != nil {
		return nil, mapOpenAICompatError(err)
	}

	model := resp.Model
	if model == "" {
		model = a.client.Model()
	}
	return &Response{
		Text:         resp.Text,
		ProviderName: a.client.Name(),
		ModelName:    model,
		Usage: &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

// Embed implements EmbeddingProvider interface
func (a *OpenAICompatAdapter) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	vecs, err := a.client.Embed(ctx, texts)
	if err != nil {
		return nil, mapOpenAICompatError(err)
	}
	return vecs, nil
}

// Name returns the provider name
func (a *OpenAICompatAdapter) Name() string {
	return a.client.Name()
}

// Model returns the model name
func (a *OpenAICompatAdapter) Model() string {
	return a.client.Model()
}

type openAICompatEmbedder struct {
	*OpenAICompatAdapter
}

func (e openAICompatEmbedder) Model() string {
	return e.client.EmbeddingModel()
}

func mapOpenAICompatError(err error) error {
	if errors.Is(err, openaicompat.ErrRateLimited) {
		return errors.Join(ErrProviderRateLimited, err)
	}
	return err
}

// VoyageAdapter adapts pkg/voyage to the EmbeddingProvider interface
type VoyageAdapter struct {
	client voyage.IClient
}

// NewVoyageAdapter creates a new adapter
func NewVoyageAdapter(client voyage.IClient) *VoyageAdapter {
	return &VoyageAdapter{client: client}
}

func (a *VoyageAdapter) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	vecs, err := a.client.Embed(ctx, texts)
	if errors.Is(err, voyage.ErrRateLimited) {
		return nil, errors.Join(ErrProviderRateLimited, err)
	}
	return vecs, err
}

func (a *VoyageAdapter) Name() string  { return "voyage" }
func (a *VoyageAdapter) Model() string { return a.client.Model() }

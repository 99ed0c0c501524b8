package gemini

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/genai"
)

type geminiImpl struct {
	client         *genai.Client
	model          string
	embeddingModel string
}

func newGeminiImpl(ctx context.Context, cfg Config) (*geminiImpl, error) {
	cc := &genai.ClientConfig{
		APIKey:     cfg.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: cfg.HTTPClient,
	}
	if cfg.BaseURL != "" {
		cc.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.BaseURL}
	}
	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("gemini: failed to create client: %w", err)
	}
	return &geminiImpl{client: client, model: cfg.Model, embeddingModel: cfg.EmbeddingModel}, nil
}

// GenerateContent sends a generation request to Gemini
func (g *geminiImpl) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	contents, config := transformRequest(req)

	resp, err := g.client.Models.GenerateContent(ctx, g.model, contents, config)
	if err != nil {
		return nil, fmt.Errorf("gemini: generate: %w", err)
	}
	return transformResponse(resp), nil
}

// Embed embeds texts in a single batch call
func (g *geminiImpl) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, nil
	}
	contents := make([]*genai.Content, len(texts))
	for i, text := range texts {
		contents[i] = genai.NewContentFromText(text, genai.RoleUser)
	}

	result, err := g.client.Models.EmbedContent(ctx, g.embeddingModel, contents, &genai.EmbedContentConfig{
		TaskType: embeddingTaskType,
	})
	if err != nil {
		return nil, fmt.Errorf("gemini: embed: %w", err)
	}
	if len(result.Embeddings) != len(texts) {
		return nil, errors.New("gemini: embedding count does not match input")
	}

	out := make([][]float32, len(result.Embeddings))
	for i, e := range result.Embeddings {
		out[i] = e.Values
	}
	return out, nil
}

// Model returns the chat model being used
func (g *geminiImpl) Model() string {
	return g.model
}

// EmbeddingModel returns the embedding model being used
func (g *geminiImpl) EmbeddingModel() string {
	return g.embeddingModel
}

// transformRequest converts a request to genai contents and config
func transformRequest(req *Request) ([]*genai.Content, *genai.GenerateContentConfig) {
	contents := make([]*genai.Content, 0, len(req.Messages))
	for _, msg := range req.Messages {
		role := genai.Role(genai.RoleUser)
		if msg.Role == "assistant" || msg.Role == "model" {
			role = genai.RoleModel
		}
		contents = append(contents, genai.NewContentFromText(msg.Text, role))
	}

	config := &genai.GenerateContentConfig{}
	if req.SystemInstruction != "" {
		config.SystemInstruction = genai.NewContentFromText(req.SystemInstruction, genai.RoleUser)
	}
	if req.Temperature > 0 {
		t := float32(req.Temperature)
		config.Temperature = &t
	}
	if req.MaxTokens > 0 {
		config.MaxOutputTokens = int32(req.MaxTokens)
	}
	return contents, config
}

// transformResponse converts a genai response to the package format
func transformResponse(resp *genai.GenerateContentResponse) *Response {
	out := &Response{Text: resp.Text()}
	if u := resp.UsageMetadata; u != nil {
		out.Usage = Usage{
			InputTokens:  int(u.PromptTokenCount),
			OutputTokens: int(u.CandidatesTokenCount),
			TotalTokens:  int(u.TotalTokenCount),
		}
	}
	return out
}

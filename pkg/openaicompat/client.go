package openaicompat

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/shared"
)

type clientImpl struct {
	client         openai.Client
	name           string
	model          string
	embeddingModel string
}

func newClientImpl(cfg Config) *clientImpl {
	client := openai.NewClient(
		option.WithAPIKey(cfg.APIKey),
		option.WithBaseURL(cfg.BaseURL),
		option.WithHTTPClient(cfg.HTTPClient),
		// Retries are owned by the provider manager.
		option.WithMaxRetries(0),
	)
	return &clientImpl{
		client:         client,
		name:           cfg.Name,
		model:          cfg.Model,
		embeddingModel: cfg.EmbeddingModel,
	}
}

// GenerateContent sends a chat completion request
func (c *clientImpl) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	completion, err := c.client.Chat.Completions.New(ctx, buildParams(c.model, req))
	if err != nil {
		return nil, c.wrap("chat", err)
	}
	if len(completion.Choices) == 0 {
		return nil, ErrEmptyResponse
	}
	return &Response{
		Text:  completion.Choices[0].Message.Content,
		Model: completion.Model,
		Usage: Usage{
			InputTokens:  int(completion.Usage.PromptTokens),
			OutputTokens: int(completion.Usage.CompletionTokens),
			TotalTokens:  int(completion.Usage.TotalTokens),
		},
	}, nil
}

// Embed returns one vector per text
func (c *clientImpl) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	if c.embeddingModel == "" {
		return nil, ErrNoEmbeddingModel
	}
	if len(texts) == 0 {
		return nil, nil
	}

	resp, err := c.client.Embeddings.New(ctx, openai.EmbeddingNewParams{
		Input: openai.EmbeddingNewParamsInputUnion{OfArrayOfStrings: texts},
		Model: openai.EmbeddingModel(c.embeddingModel),
	})
	if err != nil {
		return nil, c.wrap("embed", err)
	}

	out := make([][]float32, len(texts))
	for _, d := range resp.Data {
		if d.Index < 0 || int(d.Index) >= len(out) {
			continue
		}
		v := make([]float32, len(d.Embedding))
		for i, x := range d.Embedding {
			v[i] = float32(x)
		}
		out[d.Index] = v
	}
	for i, v := range out {
		if v == nil {
			return nil, fmt.Errorf("%s: embed: missing vector %d", c.name, i)
		}
	}
	return out, nil
}

func (c *clientImpl) Name() string           { return c.name }
func (c *clientImpl) Model() string          { return c.model }
func (c *clientImpl) EmbeddingModel() string { return c.embeddingModel }

// wrap tags rate limit responses so callers can back off.
func (c *clientImpl) wrap(op string, err error) error {
	var apiErr *openai.Error
	if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusTooManyRequests {
		return fmt.Errorf("%s: %s: %w: %v", c.name, op, ErrRateLimited, err)
	}
	return fmt.Errorf("%s: %s: %w", c.name, op, err)
}

func buildParams(model string, req *Request) openai.ChatCompletionNewParams {
	messages := make([]openai.ChatCompletionMessageParamUnion, 0, len(req.Messages)+1)
	if req.SystemInstruction != "" {
		messages = append(messages, openai.SystemMessage(req.SystemInstruction))
	}
	for _, m := range req.Messages {
		if m.Role == "assistant" {
			messages = append(messages, openai.AssistantMessage(m.Text))
			continue
		}
		messages = append(messages, openai.UserMessage(m.Text))
	}

	params := openai.ChatCompletionNewParams{
		Model:    shared.ChatModel(model),
		Messages: messages,
	}
	if req.Temperature > 0 {
		params.Temperature = openai.Float(req.Temperature)
	}
	if req.MaxTokens > 0 {
		params.MaxCompletionTokens = openai.Int(int64(req.MaxTokens))
	}
	return params
}

package voyage

import "net/http"

// Config configures the Voyage AI embeddings client.
type Config struct {
	APIKey  string
	BaseURL string
	Model   string
	// InputType is sent with every request when set: query or document.
	InputType  string
	HTTPClient *http.Client
}

type embedRequest struct {
	Input     []string `json:"input"`
	Model     string   `json:"model"`
	InputType string   `json:"input_type,omitempty"`
}

type embedResponse struct {
	Data []struct {
		Embedding []float32 `json:"embedding"`
		Index     int       `json:"index"`
	} `json:"data"`
	Model string `json:"model"`
	Usage struct {
		TotalTokens int `json:"total_tokens"`
	} `json:"usage"`
}

type errorResponse struct {
	Detail string `json:"detail"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (e errorResponse) message() string {
	if e.Error.Message != "" {
		return e.Error.Message
	}
	return e.Detail
}

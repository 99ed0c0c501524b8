package openaicompat

import "time"

// Default endpoints of the OpenAI-compatible providers.
const (
	OpenAIBaseURL   = "https://api.openai.com/v1"
	DeepSeekBaseURL = "https://api.deepseek.com/v1"
	QwenBaseURL     = "https://dashscope-intl.aliyuncs.com/compatible-mode/v1"
)

const (
	DefaultOpenAIModel   = "gpt-4o-mini"
	DefaultDeepSeekModel = "deepseek-chat"
	DefaultQwenModel     = "qwen-plus"

	DefaultEmbeddingModel = "text-embedding-3-small"

	DefaultTimeout = 30 * time.Second
)

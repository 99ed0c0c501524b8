package llmprovider

const (
	classifyMaxTokens   = 64
	completeMaxTokens   = 1024
	completeTemperature = 0.4
)

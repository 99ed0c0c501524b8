package classifier

import (
	"time"

	"pelangi-assistant/internal/matcher"
	pkgLog "pelangi-assistant/pkg/log"
)

// Config bounds the blocking stages.
type Config struct {
	SemanticTimeout time.Duration
	LLMTimeout      time.Duration
}

// Classifier runs the regex, fuzzy, semantic and LLM stages in order and
// returns the first opinion.
type Classifier struct {
	settings SnapshotSource
	engine   *matcher.Engine
	stages   []Stage
	l        pkgLog.Logger
}

// New builds the default cascade. A nil llm makes the last stage always degrade.
func New(settings SnapshotSource, engine *matcher.Engine, llm LLM, l pkgLog.Logger, cfg Config) *Classifier {
	if cfg.SemanticTimeout <= 0 {
		cfg.SemanticTimeout = DefaultSemanticTimeout
	}
	if cfg.LLMTimeout <= 0 {
		cfg.LLMTimeout = DefaultLLMTimeout
	}
	return &Classifier{
		settings: settings,
		engine:   engine,
		stages: []Stage{
			regexStage{},
			fuzzyStage{},
			semanticStage{engine: engine, timeout: cfg.SemanticTimeout, l: l},
			llmStage{llm: llm, timeout: cfg.LLMTimeout, l: l},
		},
		l: l,
	}
}

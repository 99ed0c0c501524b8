package classifier

import (
	"context"

	"pelangi-assistant/internal/matcher"
	"pelangi-assistant/internal/model"
	"pelangi-assistant/internal/settings"
)

// LLM answers a classification prompt with raw text.
type LLM interface {
	Classify(ctx context.Context, prompt string) (string, error)
}

// SnapshotSource provides the current settings.
type SnapshotSource interface {
	Current() *settings.Snapshot
}

// Input is what every stage sees for one message.
type Input struct {
	Message  string
	Language model.Language
	History  []model.Turn
	Snapshot *settings.Snapshot
}

// Stage is one step of the cascade. ok=false means no opinion and the next
// stage runs.
type Stage interface {
	Source() model.Source
	Run(ctx context.Context, in Input) (model.ClassificationResult, bool)
}

// Explanation is a classification plus the full score breakdown behind it.
type Explanation struct {
	Result model.ClassificationResult `json:"result"`
	Scores matcher.Scores             `json:"scores"`
}

package assistant

import (
	"pelangi-assistant/internal/classifier"
	"pelangi-assistant/internal/model"
)

// --- UseCase Inputs ---

// HandleMessageInput is one inbound guest message. A nil History is loaded
// from the conversation log.
type HandleMessageInput struct {
	ConversationID   string
	GuestDisplayName string
	MessageText      string
	History          []model.Turn
}

// AppendNoteInput is a manual memory entry. An empty Date means today.
type AppendNoteInput struct {
	Date    string
	Section string
	Text    string
}

// ExplainInput asks for a classification with its full score breakdown.
type ExplainInput struct {
	MessageText string
	History     []model.Turn
}

// --- UseCase Outputs ---

// HandleMessageOutput is the reply plus the reasoning behind it.
type HandleMessageOutput struct {
	ReplyText          string
	Category           string
	Source             model.Source
	Confidence         float64
	MatchedKeyword     string
	MatchedExample     string
	DetectedLanguage   model.Language
	KnowledgeFilesUsed []string
	RoutedAction       model.Action
	WorkflowID         string
	WorkflowStep       int
	WorkflowCompleted  bool
	Degraded           bool
	ModelID            string
	TraceID            string
}

// ExplainOutput is a classification with every stage's scores.
type ExplainOutput struct {
	Explanation classifier.Explanation
	Route       model.RoutingEntry
}

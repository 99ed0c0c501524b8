package usecase

import (
	"context"

	"pelangi-assistant/internal/classifier"
	"pelangi-assistant/internal/model"
	"pelangi-assistant/internal/prompt"
	"pelangi-assistant/internal/settings"
	"pelangi-assistant/internal/workflow"
	"pelangi-assistant/pkg/llmprovider"
)

// The collaborators below take the settings snapshot explicitly, so one
// message is handled against exactly one snapshot.

// Classifier picks a category for a message.
type Classifier interface {
	ClassifyWith(ctx context.Context, snap *settings.Snapshot, message string, history []model.Turn) model.ClassificationResult
	ExplainWith(ctx context.Context, snap *settings.Snapshot, message string, history []model.Turn) classifier.Explanation
}

// Router maps categories to actions.
type Router interface {
	RouteWith(snap *settings.Snapshot, category string) model.RoutingEntry
	StaticReplyWith(snap *settings.Snapshot, category string, lang model.Language) (string, bool)
}

// PromptAssembler builds the LLM system prompt.
type PromptAssembler interface {
	TopicGuessWith(snap *settings.Snapshot, message string) []model.KnowledgeFile
	BuildSystemPromptWith(snap *settings.Snapshot, basePersona string, topics []model.KnowledgeFile, history []model.Turn) prompt.Prompt
}

// Completer generates freeform replies.
type Completer interface {
	Complete(ctx context.Context, system string, history []llmprovider.Message, user string) (llmprovider.Completion, error)
}

// WorkflowEngine steps structured dialogues.
type WorkflowEngine interface {
	Advance(ctx context.Context, in workflow.AdvanceInput) (workflow.Outcome, error)
	Active(conversationID string) (workflow.Session, bool)
	Cancel(ctx context.Context, conversationID string) bool
}

// EventPublisher streams one event per handled message.
type EventPublisher interface {
	Publish(ctx context.Context, key string, event any) error
}

// SnapshotSource provides the current settings.
type SnapshotSource interface {
	Current() *settings.Snapshot
}

// reply is the outcome of one routed action.
type reply struct {
	text      string
	action    model.Action
	files     []string
	modelID   string
	degraded  bool
	cause     error
	workflow  string
	step      int
	completed bool
	summary   *workflow.Summary
}

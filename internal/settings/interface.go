package settings

import (
	"context"

	"pelangi-assistant/internal/model"
)

// UseCase is the operator surface of the settings store. Every write is
// validated on a candidate snapshot before it is persisted and swapped in.
type UseCase interface {
	Current() *Snapshot
	Reload(ctx context.Context) (*Snapshot, error)
	PutRoutingEntry(ctx context.Context, entry model.RoutingEntry) (*Snapshot, error)
	PutWorkflow(ctx context.Context, def model.WorkflowDefinition) (*Snapshot, error)
	DeleteWorkflow(ctx context.Context, id string) (*Snapshot, error)
	WriteKnowledgeFile(ctx context.Context, name, content string) (*Snapshot, error)
}

var _ UseCase = (*Store)(nil)

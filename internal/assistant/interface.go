package assistant

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// HandleMessage always returns a non-empty reply unless the input is invalid.
	HandleMessage(ctx context.Context, input HandleMessageInput) (HandleMessageOutput, error)
	AppendNote(ctx context.Context, input AppendNoteInput) error
	Explain(ctx context.Context, input ExplainInput) (ExplainOutput, error)
}

package usecase

import (
	"context"
	"strings"

	"pelangi-assistant/internal/assistant"
)

// Explain classifies without replying or writing anything.
func (uc *implUseCase) Explain(ctx context.Context, input assistant.ExplainInput) (assistant.ExplainOutput, error) {
	message := strings.TrimSpace(input.MessageText)
	if message == "" {
		return assistant.ExplainOutput{}, assistant.ErrEmptyMessage
	}
	snap := uc.Settings.Current()
	exp := uc.Classifier.ExplainWith(ctx, snap, message, input.History)
	return assistant.ExplainOutput{
		Explanation: exp,
		Route:       uc.Router.RouteWith(snap, exp.Result.Category),
	}, nil
}

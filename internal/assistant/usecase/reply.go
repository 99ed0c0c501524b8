package usecase

import (
	"context"
	"errors"
	"strings"

	"pelangi-assistant/internal/model"
	"pelangi-assistant/internal/settings"
	"pelangi-assistant/internal/workflow"
	"pelangi-assistant/pkg/llmprovider"
)

var errEmptyCompletion = errors.New("empty completion")

// reply runs the routed action for a classified message.
func (uc *implUseCase) reply(ctx context.Context, snap *settings.Snapshot, conversationID, message string, history []model.Turn, result model.ClassificationResult) reply {
	route := uc.Router.RouteWith(snap, result.Category)

	switch route.Action {
	case model.ActionStaticReply:
		if text, ok := uc.Router.StaticReplyWith(snap, result.Category, result.DetectedLanguage); ok {
			return reply{text: text, action: model.ActionStaticReply}
		}
		uc.l.Warnf(ctx, "%s: no static reply for %q, answering with the LLM", LogPrefixReply, result.Category)
	case model.ActionWorkflow:
		if def, ok := snap.Workflow(route.WorkflowID); ok {
			return uc.advanceWorkflow(ctx, conversationID, def, message, result)
		}
		uc.l.Warnf(ctx, "%s: workflow %q is gone, answering with the LLM", LogPrefixReply, route.WorkflowID)
	}
	return uc.llmReply(ctx, snap, message, history)
}

func (uc *implUseCase) advanceWorkflow(ctx context.Context, conversationID string, def model.WorkflowDefinition, message string, result model.ClassificationResult) reply {
	out, err := uc.Workflows.Advance(ctx, workflow.AdvanceInput{
		ConversationID: conversationID,
		Definition:     def,
		Message:        message,
		Language:       result.DetectedLanguage,
		Intent:         result.Category,
	})
	if err != nil {
		uc.l.Errorf(ctx, "%s: workflow %s: %v", LogPrefixReply, def.ID, err)
		return reply{action: model.ActionWorkflow, workflow: def.ID, degraded: true, cause: err}
	}
	return reply{
		text:      out.Reply,
		action:    model.ActionWorkflow,
		workflow:  def.ID,
		step:      out.StepIndex,
		completed: out.Completed,
		summary:   out.Summary,
	}
}

// llmReply answers with the knowledge the message needs. Recent turns travel
// inside the system prompt.
func (uc *implUseCase) llmReply(ctx context.Context, snap *settings.Snapshot, message string, history []model.Turn) reply {
	turns := history
	if n := snap.Classifier.HistoryTurns; n > 0 && len(turns) > n {
		turns = turns[len(turns)-n:]
	}
	p := uc.Prompt.BuildSystemPromptWith(snap, snap.Persona, uc.Prompt.TopicGuessWith(snap, message), turns)
	rep := reply{action: model.ActionLLMReply, files: p.FilesUsed}

	if uc.LLM == nil {
		rep.degraded, rep.cause = true, llmprovider.ErrNoProvidersConfigured
		return rep
	}

	replyCtx, cancel := context.WithTimeout(ctx, uc.replyTimeout)
	defer cancel()
	c, err := uc.LLM.Complete(replyCtx, p.Text, nil, message)
	if err == nil && strings.TrimSpace(c.Text) == "" {
		err = errEmptyCompletion
	}
	if err != nil {
		uc.l.Warnf(ctx, "%s: completion failed, sending apology: %v", LogPrefixReply, err)
		rep.degraded, rep.cause = true, err
		return rep
	}
	rep.text = strings.TrimSpace(c.Text)
	rep.modelID = c.ModelID
	return rep
}

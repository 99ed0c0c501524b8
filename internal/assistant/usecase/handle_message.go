package usecase

import (
	"context"
	"fmt"
	"strings"

	"pelangi-assistant/internal/assistant"
	"pelangi-assistant/internal/matcher"
	"pelangi-assistant/internal/model"
	"pelangi-assistant/internal/settings"
	pkgLog "pelangi-assistant/pkg/log"
)

// HandleMessage classifies, routes and answers one guest message. Messages of
// the same conversation are handled one at a time in arrival order. While a
// workflow session is active the message answers the current step and is not
// classified.
func (uc *implUseCase) HandleMessage(ctx context.Context, input assistant.HandleMessageInput) (assistant.HandleMessageOutput, error) {
	message := strings.TrimSpace(input.MessageText)
	if input.ConversationID == "" {
		return assistant.HandleMessageOutput{}, assistant.ErrEmptyConversationID
	}
	if message == "" {
		return assistant.HandleMessageOutput{}, assistant.ErrEmptyMessage
	}

	traceID := pkgLog.TraceID(ctx)
	if traceID == "" {
		traceID = uc.newTraceID()
		ctx = pkgLog.WithTraceID(ctx, traceID)
	}

	uc.locks.Lock(input.ConversationID)
	defer uc.locks.Unlock(input.ConversationID)

	history := input.History
	if history == nil {
		h, err := uc.Conversations.History(ctx, input.ConversationID, uc.historyLimit)
		if err != nil {
			uc.l.Warnf(ctx, "%s: load history: %v", LogPrefixHandleMessage, err)
		}
		history = h
	}

	snap := uc.Settings.Current()
	var (
		result model.ClassificationResult
		rep    reply
	)
	if sess, ok := uc.Workflows.Active(input.ConversationID); ok {
		if def, found := snap.Workflow(sess.WorkflowID); found {
			result = model.ClassificationResult{
				Category:         sess.Intent,
				DetectedLanguage: matcher.DetectLanguage(message),
			}
			rep = uc.advanceWorkflow(ctx, input.ConversationID, def, message, result)
		} else {
			uc.l.Warnf(ctx, "%s: workflow %q of conversation %s was removed, dropping session", LogPrefixHandleMessage, sess.WorkflowID, input.ConversationID)
			uc.Workflows.Cancel(ctx, input.ConversationID)
		}
	}
	if rep.action == "" {
		result = uc.Classifier.ClassifyWith(ctx, snap, message, history)
		rep = uc.reply(ctx, snap, input.ConversationID, message, history, result)
	}

	if strings.TrimSpace(rep.text) == "" {
		rep.text = apology(snap, result.DetectedLanguage)
		rep.degraded = true
	}

	out := assistant.HandleMessageOutput{
		ReplyText:          rep.text,
		Category:           result.Category,
		Source:             result.Source,
		Confidence:         result.Confidence,
		MatchedKeyword:     result.MatchedKeyword,
		MatchedExample:     result.MatchedExample,
		DetectedLanguage:   result.DetectedLanguage,
		KnowledgeFilesUsed: rep.files,
		RoutedAction:       rep.action,
		WorkflowID:         rep.workflow,
		WorkflowStep:       rep.step,
		WorkflowCompleted:  rep.completed,
		Degraded:           rep.degraded || result.Degraded,
		ModelID:            rep.modelID,
		TraceID:            traceID,
	}

	uc.sideEffects(ctx, snap, input, message, result, rep, out)

	uc.l.Infof(ctx, "%s: conversation=%s category=%s source=%s confidence=%.2f action=%s degraded=%t",
		LogPrefixHandleMessage, input.ConversationID, out.Category, out.Source, out.Confidence, out.RoutedAction, out.Degraded)
	return out, nil
}

func apology(snap *settings.Snapshot, lang model.Language) string {
	if text := snap.Apologies.Pick(lang); text != "" {
		return text
	}
	return DefaultApology
}

func guestLabel(input assistant.HandleMessageInput) string {
	if name := strings.TrimSpace(input.GuestDisplayName); name != "" {
		return fmt.Sprintf("%s (%s)", name, input.ConversationID)
	}
	return input.ConversationID
}

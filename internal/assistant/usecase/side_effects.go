package usecase

import (
	"context"
	"fmt"
	"strings"

	"pelangi-assistant/internal/assistant"
	"pelangi-assistant/internal/conversation"
	"pelangi-assistant/internal/memory"
	"pelangi-assistant/internal/model"
	"pelangi-assistant/internal/settings"
	"pelangi-assistant/internal/workflow"
)

// sideEffects logs both turns, writes memory notes and publishes the event.
// Failures are logged and never change the reply.
func (uc *implUseCase) sideEffects(ctx context.Context, snap *settings.Snapshot, input assistant.HandleMessageInput, message string, result model.ClassificationResult, rep reply, out assistant.HandleMessageOutput) {
	now := uc.now()

	if err := uc.Conversations.Append(ctx,
		conversation.Message{
			ConversationID: input.ConversationID,
			PushName:       input.GuestDisplayName,
			Role:           model.RoleUser,
			Content:        message,
			Timestamp:      now,
		},
		conversation.Message{
			ConversationID: input.ConversationID,
			Role:           model.RoleAssistant,
			Content:        out.ReplyText,
			Timestamp:      now,
			Flags: conversation.Flags{
				Category:   out.Category,
				Source:     out.Source,
				Confidence: out.Confidence,
				Action:     out.RoutedAction,
				Language:   out.DetectedLanguage,
				Degraded:   out.Degraded,
			},
		},
	); err != nil {
		uc.l.Errorf(ctx, "%s: conversation log: %v", LogPrefixSideEffects, err)
	}

	for _, note := range memoryNotes(snap, input, message, result, rep) {
		note.Date = uc.Memory.Today()
		if err := uc.Memory.AppendToDay(ctx, note); err != nil {
			uc.l.Errorf(ctx, "%s: memory %s: %v", LogPrefixSideEffects, note.Section, err)
		}
	}

	if uc.Publisher != nil {
		pubCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), DefaultPublishTimeout)
		defer cancel()
		event := model.AssistantEvent{
			TraceID:          out.TraceID,
			ConversationID:   input.ConversationID,
			GuestName:        input.GuestDisplayName,
			Message:          message,
			Category:         out.Category,
			Source:           out.Source,
			Confidence:       out.Confidence,
			DetectedLanguage: out.DetectedLanguage,
			RoutedAction:     out.RoutedAction,
			Degraded:         out.Degraded,
			At:               now,
		}
		if err := uc.Publisher.Publish(pubCtx, input.ConversationID, event); err != nil {
			uc.l.Warnf(ctx, "%s: publish event: %v", LogPrefixSideEffects, err)
		}
	}
}

// memoryNotes decides which day entries a handled message produces.
func memoryNotes(snap *settings.Snapshot, input assistant.HandleMessageInput, message string, result model.ClassificationResult, rep reply) []memory.AppendInput {
	var notes []memory.AppendInput
	guest := guestLabel(input)

	if rep.completed && rep.summary != nil {
		section := memory.SectionIssuesReported
		if def, ok := snap.Workflow(rep.workflow); ok && def.MemorySection != "" {
			section = def.MemorySection
		}
		notes = append(notes, memory.AppendInput{
			Section: section,
			Text:    fmt.Sprintf(workflowNoteTemplate, guest, rep.summary.WorkflowName, flattenSummary(rep.summary)),
		})
	}

	// Workflow answers are not classified and are recorded through the summary only.
	if def, ok := snap.Intent(result.Category); ok && def.MemorySection != "" && result.Source != "" {
		notes = append(notes, memory.AppendInput{
			Section: def.MemorySection,
			Text:    fmt.Sprintf(intentNoteTemplate, guest, message),
		})
	}

	if rep.degraded {
		cause := rep.cause
		if cause == nil {
			cause = fmt.Errorf("empty reply")
		}
		notes = append(notes, memory.AppendInput{
			Section: memory.SectionAINotes,
			Text:    fmt.Sprintf(degradedNoteTemplate, guest, result.Category, cause),
		})
	}
	return notes
}

func flattenSummary(s *workflow.Summary) string {
	parts := make([]string, 0, len(s.Items))
	for _, it := range s.Items {
		parts = append(parts, fmt.Sprintf("%s=%s", it.StepID, strings.Join(strings.Fields(it.Response), " ")))
	}
	return strings.Join(parts, "; ")
}

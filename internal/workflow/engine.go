package workflow

import (
	"context"
	"fmt"
	"strings"

	"pelangi-assistant/internal/model"
)

// Advance feeds one guest message into a workflow for a conversation.
//
// Without a session for the definition, a new one starts at step 0 and the
// step 0 prompt is returned; the message is kept as the trigger. Otherwise the
// message is recorded verbatim as the answer to the current step and the next
// prompt is returned, or, after the last step, the summary. A completed session
// is discarded so the next message routed to the workflow starts over.
func (e *Engine) Advance(ctx context.Context, in AdvanceInput) (Outcome, error) {
	conversationID, def, message, lang := in.ConversationID, in.Definition, in.Message, in.Language
	if conversationID == "" {
		return Outcome{}, fmt.Errorf("%s: %w", LogPrefixAdvance, ErrEmptyConversationID)
	}
	if len(def.Steps) == 0 {
		return Outcome{}, fmt.Errorf("%s: %s: %w", LogPrefixAdvance, def.ID, ErrNoSteps)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	sess, ok := e.sessions.Get(conversationID)
	if !ok || sess.WorkflowID != def.ID {
		if ok {
			e.l.Infof(ctx, "%s: conversation %s left workflow %s for %s", LogPrefixAdvance, conversationID, sess.WorkflowID, def.ID)
		}
		sess = Session{
			ConversationID: conversationID,
			WorkflowID:     def.ID,
			Intent:         in.Intent,
			Language:       lang,
			Trigger:        message,
			Responses:      make(map[string]string, len(def.Steps)),
			StartedAt:      e.now(),
		}
		e.sessions.Add(conversationID, sess)
		e.l.Debugf(ctx, "%s: started %s for %s", LogPrefixAdvance, def.ID, conversationID)
		return Outcome{Reply: def.Steps[0].Text(sess.Language), Started: true}, nil
	}

	// A definition edited mid-session may have fewer steps now.
	if sess.CurrentStep >= len(def.Steps) {
		e.sessions.Remove(conversationID)
		return e.complete(ctx, sess, def), nil
	}

	next := sess.clone()
	if lang != model.LanguageUnknown && next.Language == model.LanguageUnknown {
		next.Language = lang
	}
	next.Responses[def.Steps[next.CurrentStep].ID] = message
	next.CurrentStep++

	if next.CurrentStep < len(def.Steps) {
		e.sessions.Add(conversationID, next)
		return Outcome{Reply: def.Steps[next.CurrentStep].Text(next.Language), StepIndex: next.CurrentStep}, nil
	}

	e.sessions.Remove(conversationID)
	return e.complete(ctx, next, def), nil
}

func (e *Engine) complete(ctx context.Context, sess Session, def model.WorkflowDefinition) Outcome {
	sum := summarize(sess, def)
	e.l.Infof(ctx, "%s: completed %s for %s with %d answers", LogPrefixAdvance, def.ID, sess.ConversationID, len(sum.Items))
	return Outcome{
		Reply:     sum.Text,
		StepIndex: len(def.Steps),
		Completed: true,
		Summary:   &sum,
	}
}

// Active returns the conversation's in-progress session.
func (e *Engine) Active(conversationID string) (Session, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	sess, ok := e.sessions.Get(conversationID)
	if !ok {
		return Session{}, false
	}
	return sess.clone(), true
}

// Cancel drops the conversation's session and reports whether one existed.
func (e *Engine) Cancel(ctx context.Context, conversationID string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	ok := e.sessions.Remove(conversationID)
	if ok {
		e.l.Infof(ctx, "%s: cancelled session for %s", LogPrefixCancel, conversationID)
	}
	return ok
}

func summarize(sess Session, def model.WorkflowDefinition) Summary {
	name := def.Name
	if name == "" {
		name = def.ID
	}
	sum := Summary{WorkflowID: def.ID, WorkflowName: name, Trigger: sess.Trigger}

	var b strings.Builder
	fmt.Fprintf(&b, "%s summary:", name)
	for i, step := range def.Steps {
		resp, ok := sess.Responses[step.ID]
		if !ok {
			continue
		}
		item := SummaryItem{StepID: step.ID, Prompt: step.Text(sess.Language), Response: resp}
		sum.Items = append(sum.Items, item)
		fmt.Fprintf(&b, "\n%d. %s\n   %s", i+1, item.Prompt, item.Response)
	}
	sum.Text = b.String()
	return sum
}

package kafka

import (
	"context"
	"fmt"
	"strings"
	"time"

	kafkago "github.com/segmentio/kafka-go"

	"pelangi-assistant/internal/memory"
	"pelangi-assistant/internal/model"
	pkgKafka "pelangi-assistant/pkg/kafka"
	pkgLog "pelangi-assistant/pkg/log"
)

const (
	LogPrefixHandle = "internal.assistant.delivery.kafka.Handle"

	patternNoteTemplate = "Unmatched (%s) from %s: %q"
)

// MemoryWriter appends day entries.
type MemoryWriter interface {
	AppendToDay(ctx context.Context, in memory.AppendInput) error
}

// EventHandler records messages no intent matched so operators can tune
// intents.yaml from the Patterns Observed section.
type EventHandler struct {
	l   pkgLog.Logger
	mem MemoryWriter
	loc *time.Location
}

// NewEventHandler creates an EventHandler. Entries are dated in loc.
func NewEventHandler(l pkgLog.Logger, mem MemoryWriter, loc *time.Location) *EventHandler {
	if loc == nil {
		loc = time.UTC
	}
	return &EventHandler{l: l, mem: mem, loc: loc}
}

// Handle is a pkg/kafka.Handler. Undecodable messages are skipped; memory
// failures stop consumption so the message is redelivered.
func (h *EventHandler) Handle(ctx context.Context, msg kafkago.Message) error {
	var ev model.AssistantEvent
	if err := pkgKafka.Decode(msg, &ev); err != nil {
		h.l.Warnf(ctx, "%s: skipping: %v", LogPrefixHandle, err)
		return nil
	}
	if ev.TraceID != "" {
		ctx = pkgLog.WithTraceID(ctx, ev.TraceID)
	}
	if !ev.Unmatched() {
		return nil
	}

	at := ev.At
	if at.IsZero() {
		at = time.Now()
	}
	guest := ev.ConversationID
	if name := strings.TrimSpace(ev.GuestName); name != "" {
		guest = fmt.Sprintf("%s (%s)", name, ev.ConversationID)
	}
	lang := string(ev.DetectedLanguage)
	if lang == "" {
		lang = "unknown"
	}

	note := memory.AppendInput{
		Date:    at.In(h.loc).Format(memory.DateLayout),
		Section: memory.SectionPatternsObserved,
		Text:    fmt.Sprintf(patternNoteTemplate, lang, guest, ev.Message),
	}
	if err := h.mem.AppendToDay(ctx, note); err != nil {
		return fmt.Errorf("%s: %w", LogPrefixHandle, err)
	}
	h.l.Debugf(ctx, "%s: recorded unmatched message from %s", LogPrefixHandle, ev.ConversationID)
	return nil
}

package usecase

import "time"

const (
	LogPrefixHandleMessage = "internal.assistant.usecase.HandleMessage"
	LogPrefixReply         = "internal.assistant.usecase.reply"
	LogPrefixSideEffects   = "internal.assistant.usecase.sideEffects"
	LogPrefixAppendNote    = "internal.assistant.usecase.AppendNote"
)

const (
	DefaultReplyTimeout   = 20 * time.Second
	DefaultHistoryLimit   = 20
	DefaultPublishTimeout = 2 * time.Second

	// DefaultApology is used when routing.yaml has no apology for any language.
	DefaultApology = "Sorry, I'm having trouble answering right now. Our staff will get back to you shortly."

	degradedNoteTemplate = "Reply degraded for %s (%s): %v"
	intentNoteTemplate   = "%s: %s"
	workflowNoteTemplate = "%s via %s: %s"
)

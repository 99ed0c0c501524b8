package usecase

import (
	"time"

	"github.com/google/uuid"

	"pelangi-assistant/internal/assistant"
	"pelangi-assistant/internal/conversation"
	"pelangi-assistant/internal/memory"
	"pelangi-assistant/pkg/keymutex"
	pkgLog "pelangi-assistant/pkg/log"
)

// Deps are the collaborators of the assistant. Publisher is optional.
type Deps struct {
	Settings      SnapshotSource
	Classifier    Classifier
	Router        Router
	Prompt        PromptAssembler
	LLM           Completer
	Workflows     WorkflowEngine
	Memory        memory.UseCase
	Conversations conversation.Repository
	Publisher     EventPublisher
}

// Config tunes the assistant.
type Config struct {
	ReplyTimeout time.Duration
	HistoryLimit int
}

type implUseCase struct {
	Deps
	l            pkgLog.Logger
	locks        *keymutex.KeyMutex
	replyTimeout time.Duration
	historyLimit int
	newTraceID   func() string
	now          func() time.Time
}

var _ assistant.UseCase = (*implUseCase)(nil)

// New creates the assistant use case.
func New(deps Deps, l pkgLog.Logger, cfg Config) *implUseCase {
	if cfg.ReplyTimeout <= 0 {
		cfg.ReplyTimeout = DefaultReplyTimeout
	}
	if cfg.HistoryLimit <= 0 {
		cfg.HistoryLimit = DefaultHistoryLimit
	}
	return &implUseCase{
		Deps:         deps,
		l:            l,
		locks:        keymutex.New(),
		replyTimeout: cfg.ReplyTimeout,
		historyLimit: cfg.HistoryLimit,
		newTraceID:   uuid.NewString,
		now:          time.Now,
	}
}

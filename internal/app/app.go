package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"pelangi-assistant/config"
	"pelangi-assistant/internal/assistant"
	assistantUC "pelangi-assistant/internal/assistant/usecase"
	"pelangi-assistant/internal/classifier"
	"pelangi-assistant/internal/conversation"
	"pelangi-assistant/internal/conversation/repository/sqlite"
	"pelangi-assistant/internal/matcher"
	"pelangi-assistant/internal/memory"
	memoryRepo "pelangi-assistant/internal/memory/repository/file"
	memoryUC "pelangi-assistant/internal/memory/usecase"
	"pelangi-assistant/internal/prompt"
	"pelangi-assistant/internal/report"
	"pelangi-assistant/internal/routing"
	"pelangi-assistant/internal/settings"
	"pelangi-assistant/internal/workflow"
	"pelangi-assistant/pkg/kafka"
	"pelangi-assistant/pkg/llmprovider"
	"pelangi-assistant/pkg/log"
	"pelangi-assistant/pkg/telegram"
)

const webhookTimeout = 15 * time.Second

// App is the wired set of components shared by the binaries.
type App struct {
	Config        *config.Config
	Settings      *settings.Store
	Memory        memory.UseCase
	Conversations conversation.Repository
	Classifier    *classifier.Classifier
	Router        *routing.Router
	Workflows     *workflow.Engine
	Assistant     assistant.UseCase
	Publisher     *kafka.Producer
	Report        *report.Service

	closers []func() error
}

// New wires every component from cfg. Optional collaborators that fail to
// start are logged and left out: no LLM provider degrades replies, no
// embedding provider disables the semantic stage, no Kafka disables events.
func New(ctx context.Context, cfg *config.Config, l log.Logger) (*App, error) {
	a := &App{Config: cfg}

	// 1. Settings
	store, err := settings.New(ctx, cfg.Assistant.SettingsDir, l)
	if err != nil {
		return nil, fmt.Errorf("settings: %w", err)
	}
	a.Settings = store
	snap := store.Current()
	l.Infof(ctx, "Settings loaded: %d intents, %d routes, %d workflows", len(snap.Intents), len(snap.Routes), len(snap.Workflows))

	// 2. Memory
	memLoc := LoadLocation(ctx, l, cfg.Memory.Timezone)
	memRepo, err := memoryRepo.New(cfg.Memory.Dir, l)
	if err != nil {
		return nil, fmt.Errorf("memory: %w", err)
	}
	a.Memory = memoryUC.New(memRepo, l, memoryUC.Config{Location: memLoc, MaxWriteRetries: cfg.Memory.MaxWriteRetries})

	// 3. Conversation log
	convRepo, err := sqlite.New(ctx, cfg.Conversation.DSN, l)
	if err != nil {
		return nil, fmt.Errorf("conversation log: %w", err)
	}
	a.Conversations = convRepo
	a.closers = append(a.closers, convRepo.Close)

	// 4. LLM providers
	var (
		classifyLLM classifier.LLM
		completer   assistantUC.Completer
		embedder    matcher.Embedder
	)
	providers, err := llmprovider.InitializeProviders(ctx, &cfg.LLM, l)
	if err != nil {
		l.Warnf(ctx, "No LLM provider available, replies will degrade to apologies: %v", err)
	} else {
		manager := llmprovider.NewManager(providers, llmprovider.ManagerConfig(&cfg.LLM), l)
		classifyLLM, completer = manager, manager
		l.Infof(ctx, "LLM providers ready: %d", len(providers))
	}
	if eps := llmprovider.InitializeEmbeddingProviders(ctx, &cfg.LLM, l); len(eps) > 0 {
		embedder = llmprovider.NewEmbeddingManager(eps, llmprovider.ManagerConfig(&cfg.LLM), l)
		l.Infof(ctx, "Embedding providers ready: %d", len(eps))
	} else {
		l.Warn(ctx, "No embedding provider, semantic matching disabled")
	}

	// 5. Assistant core
	engine := matcher.NewEngine(embedder, l, matcher.EngineConfig{})
	a.Classifier = classifier.New(store, engine, classifyLLM, l, classifier.Config{
		SemanticTimeout: cfg.Assistant.SemanticTimeout,
		LLMTimeout:      cfg.Assistant.LLMTimeout,
	})
	a.Router = routing.New(store)
	a.Workflows = workflow.New(l, workflow.Config{SessionTTL: cfg.Assistant.SessionTTL})

	// 6. Event stream
	var publisher assistantUC.EventPublisher
	if cfg.Kafka.Enabled {
		p, err := kafka.NewProducer(kafka.Config{Brokers: cfg.Kafka.Brokers, Topic: cfg.Kafka.Topic})
		if err != nil {
			l.Warnf(ctx, "Kafka not available (optional): %v", err)
		} else {
			a.Publisher, publisher = p, p
			a.closers = append(a.closers, p.Close)
			l.Infof(ctx, "Publishing assistant events to %s", cfg.Kafka.Topic)
		}
	}

	a.Assistant = assistantUC.New(assistantUC.Deps{
		Settings:      store,
		Classifier:    a.Classifier,
		Router:        a.Router,
		Prompt:        prompt.New(store, memLoc),
		LLM:           completer,
		Workflows:     a.Workflows,
		Memory:        a.Memory,
		Conversations: a.Conversations,
		Publisher:     publisher,
	}, l, assistantUC.Config{
		ReplyTimeout: cfg.Assistant.ReplyTimeout,
		HistoryLimit: cfg.Assistant.HistoryLimit,
	})

	// 7. Daily report
	a.Report = newReportService(ctx, cfg.Report, a.Memory, a.Conversations, l)

	return a, nil
}

// ReportLocation is the timezone report dates are computed in.
func (a *App) ReportLocation(ctx context.Context, l log.Logger) *time.Location {
	return LoadLocation(ctx, l, a.Config.Report.Timezone)
}

// Close releases storage and brokers in reverse start order.
func (a *App) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func newReportService(ctx context.Context, cfg config.ReportConfig, mem memory.UseCase, stats report.StatsSource, l log.Logger) *report.Service {
	loc := LoadLocation(ctx, l, cfg.Timezone)
	gen := report.NewGenerator(mem, stats, loc, l)

	var senders, alerts []report.Sender
	if cfg.Telegram.BotToken != "" && len(cfg.Telegram.ChatIDs) > 0 {
		bot, err := telegram.NewBot(telegram.Config{BotToken: cfg.Telegram.BotToken, APIURL: cfg.Telegram.APIURL})
		if err != nil {
			l.Warnf(ctx, "Telegram not available (optional): %v", err)
		} else {
			tg := report.NewTelegramSender(bot, cfg.Telegram.ChatIDs)
			senders = append(senders, tg)
			alerts = append(alerts, tg)
			l.Infof(ctx, "Report delivery via Telegram as @%s", bot.Username())
		}
	}
	if cfg.WebhookURL != "" {
		senders = append(senders, report.NewWebhookSender(cfg.WebhookURL, &http.Client{Timeout: webhookTimeout}))
	}

	return report.NewService(gen, report.NewFileArchive(cfg.Dir), senders, alerts, l)
}

// LoadLocation resolves an IANA zone name, defaulting to the property zone.
func LoadLocation(ctx context.Context, l log.Logger, name string) *time.Location {
	if name == "" {
		name = prompt.DefaultZone
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		l.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", name, err)
		return time.UTC
	}
	return loc
}

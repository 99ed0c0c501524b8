package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	_ "time/tzdata"

	"golang.org/x/sync/errgroup"

	"pelangi-assistant/config"
	_ "pelangi-assistant/docs" // Swagger docs
	"pelangi-assistant/internal/app"
	assistantHTTP "pelangi-assistant/internal/assistant/delivery/http"
	"pelangi-assistant/internal/httpserver"
	memoryHTTP "pelangi-assistant/internal/memory/delivery/http"
	"pelangi-assistant/internal/middleware"
	"pelangi-assistant/internal/report"
	reportHTTP "pelangi-assistant/internal/report/delivery/http"
	"pelangi-assistant/internal/settings"
	settingsHTTP "pelangi-assistant/internal/settings/delivery/http"
	"pelangi-assistant/pkg/log"
)

// @title       Pelangi Guest Assistant API
// @description Guest messaging assistant: intent classification, workflows, knowledge-grounded replies and daily memory.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Pelangi assistant...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Components
	a, err := app.New(ctx, cfg, logger)
	if err != nil {
		logger.Error(ctx, "Failed to initialize: ", err)
		return
	}
	defer func() {
		if err := a.Close(); err != nil {
			logger.Warnf(ctx, "Close: %v", err)
		}
	}()

	g, gctx := errgroup.WithContext(ctx)

	// 4. Settings hot reload
	if cfg.Assistant.WatchSettings {
		g.Go(func() error {
			if err := a.Settings.Watch(gctx, settings.DefaultDebounce); err != nil {
				logger.Warnf(ctx, "Settings watch stopped, use POST /api/v1/settings/reload: %v", err)
			}
			return nil
		})
		logger.Infof(ctx, "Watching %s for changes", cfg.Assistant.SettingsDir)
	}

	// 5. Daily report
	if cfg.Report.Enabled {
		scheduler, err := report.NewScheduler(cfg.Report.Schedule, a.ReportLocation(ctx, logger), a.Report, logger)
		if err != nil {
			logger.Error(ctx, "Failed to schedule report: ", err)
			return
		}
		g.Go(func() error {
			scheduler.Start(gctx)
			return nil
		})
		logger.Infof(ctx, "Daily report scheduled %q, next run %s", cfg.Report.Schedule, scheduler.Next())
	}

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		Middleware: middleware.New(logger, middleware.Config{
			InternalKey:     cfg.Admin.InternalKey,
			RateLimitPerMin: cfg.Admin.RateLimitPerMin,
		}),
		ReadinessChecks: []httpserver.ReadinessCheck{
			{Name: "settings", Check: func(context.Context) error {
				if a.Settings.Current() == nil {
					return fmt.Errorf("settings not loaded")
				}
				return nil
			}},
			{Name: "memory", Check: func(ctx context.Context) error {
				_, err := a.Memory.ListDays(ctx)
				return err
			}},
			{Name: "conversation_log", Check: a.Conversations.Ping},
		},
		AssistantHandler: assistantHTTP.New(logger, a.Assistant),
		MemoryHandler:    memoryHTTP.New(logger, a.Memory),
		SettingsHandler:  settingsHTTP.New(logger, a.Settings),
		ReportHandler:    reportHTTP.New(logger, a.Report),
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}
	if cfg.Admin.InternalKey == "" {
		logger.Warn(ctx, "admin.internal_key is empty, API routes are unauthenticated")
	}

	// 7. Run
	g.Go(func() error {
		return httpServer.Run(gctx)
	})
	if err := g.Wait(); err != nil {
		logger.Error(ctx, "Server stopped with error: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

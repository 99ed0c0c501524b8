package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	_ "time/tzdata"

	"pelangi-assistant/config"
	"pelangi-assistant/internal/app"
	kafkaDelivery "pelangi-assistant/internal/assistant/delivery/kafka"
	"pelangi-assistant/internal/memory/repository/file"
	memoryUC "pelangi-assistant/internal/memory/usecase"
	"pelangi-assistant/pkg/kafka"
	"pelangi-assistant/pkg/log"
)

// main consumes assistant events from Kafka and records unmatched guest
// messages under Patterns Observed in the day's memory.
//
// Pattern:
//  1. Initialize infra (same as cmd/api/main.go)
//  2. Create UseCases
//  3. Create the Kafka consumer group, wire the handler
//  4. Run & graceful shutdown
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting consumer service...")

	if !cfg.Kafka.Enabled {
		logger.Warn(ctx, "kafka.enabled is false, nothing to consume")
		return
	}

	// Memory
	loc := app.LoadLocation(ctx, logger, cfg.Memory.Timezone)
	repo, err := file.New(cfg.Memory.Dir, logger)
	if err != nil {
		logger.Error(ctx, "Failed to open memory: ", err)
		return
	}
	mem := memoryUC.New(repo, logger, memoryUC.Config{Location: loc, MaxWriteRetries: cfg.Memory.MaxWriteRetries})

	// Kafka consumer group
	consumer, err := kafka.NewConsumer(kafka.Config{
		Brokers: cfg.Kafka.Brokers,
		Topic:   cfg.Kafka.Topic,
		GroupID: cfg.Kafka.GroupID,
	})
	if err != nil {
		logger.Error(ctx, "Failed to create Kafka consumer: ", err)
		return
	}
	defer consumer.Close()

	handler := kafkaDelivery.NewEventHandler(logger, mem, loc)

	logger.Infof(ctx, "Consuming %s as %s", cfg.Kafka.Topic, cfg.Kafka.GroupID)
	if err := consumer.Run(ctx, handler.Handle); err != nil {
		logger.Error(ctx, "Consumer stopped with error: ", err)
		return
	}
	logger.Info(ctx, "Consumer service stopped gracefully")
}

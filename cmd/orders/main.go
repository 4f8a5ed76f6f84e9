package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/TemirB/rsrvd-site/internal/application/handler"
	"github.com/TemirB/rsrvd-site/internal/cache"
	"github.com/TemirB/rsrvd-site/internal/config"
	"github.com/TemirB/rsrvd-site/internal/database"
	"github.com/TemirB/rsrvd-site/internal/kafka"
	"github.com/TemirB/rsrvd-site/internal/observability"
	"github.com/TemirB/rsrvd-site/internal/pkg/breaker"
)

const cacheSize = 1000

// orders consumes checkout events and stores them in Postgres.
func main() {
	cfg := config.Load()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	if !cfg.KafkaEnabled() {
		logger.Fatal("KAFKA_BROKERS is required")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := database.Connect(ctx, cfg.DSN(), cfg.Retry, logger)
	if err != nil {
		logger.Fatal("Postgres unavailable", zap.Error(err))
	}
	defer pool.Close()

	repo := database.New(pool, cfg.Pg.Schema)
	if err := repo.EnsureSchema(ctx); err != nil {
		logger.Fatal("Schema bootstrap failed", zap.Error(err))
	}

	metrics := observability.NewInmem(1000)
	orders, err := cache.New(cacheSize, repo, logger, metrics)
	if err != nil {
		logger.Fatal("Order cache", zap.Error(err))
	}
	if err := orders.Warm(ctx); err != nil {
		logger.Warn("Order cache not warmed", zap.Error(err))
	}

	if err := kafka.EnsureTopic(ctx, cfg.Kafka.Brokers, cfg.Kafka.Topic, 1, 1, logger); err != nil {
		logger.Fatal("Kafka topic bootstrap failed", zap.Error(err))
	}

	reader := kafka.NewReader(cfg.Kafka)
	defer reader.Close()

	h := handler.NewHandler(orders, breaker.New(cfg.Breaker), cfg.Retry, logger)
	kafka.NewConsumer(h, reader, cfg.Kafka.Workers, logger, metrics).Start(ctx)

	logger.Info("Orders consumer stopped")
}

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/TemirB/rsrvd-site/internal/application/service"
	"github.com/TemirB/rsrvd-site/internal/catalog"
	"github.com/TemirB/rsrvd-site/internal/chat"
	"github.com/TemirB/rsrvd-site/internal/config"
	"github.com/TemirB/rsrvd-site/internal/contact"
	"github.com/TemirB/rsrvd-site/internal/httpapi"
	"github.com/TemirB/rsrvd-site/internal/i18n"
	"github.com/TemirB/rsrvd-site/internal/kafka"
	"github.com/TemirB/rsrvd-site/internal/observability"
	"github.com/TemirB/rsrvd-site/internal/pkg/retry"
	"github.com/TemirB/rsrvd-site/internal/preload"
	"github.com/TemirB/rsrvd-site/internal/prefs"
	"github.com/TemirB/rsrvd-site/internal/session"
	"github.com/TemirB/rsrvd-site/internal/storage"
)

func main() {
	cfg := config.Load()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("Site stopped with error", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config.Config, logger *zap.Logger) error {
	store, release, err := storage.Open(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer release()

	metrics := observability.NewInmem(1000)

	sessions, err := session.New(cfg.Session.Capacity, cfg.Session.Inbox, logger)
	if err != nil {
		return fmt.Errorf("session registry: %w", err)
	}
	cat, err := catalog.New()
	if err != nil {
		return err
	}
	tr, err := i18n.NewTranslator()
	if err != nil {
		return err
	}
	hours, err := chat.LoadHours(cfg.Chat.Location, cfg.Chat.OpenHour, cfg.Chat.CloseHour)
	if err != nil {
		logger.Warn("Unknown chat time zone, using local time", zap.String("zone", cfg.Chat.Location), zap.Error(err))
		hours = chat.Hours{Open: cfg.Chat.OpenHour, Close: cfg.Chat.CloseHour}
	}

	gate, err := preload.New(store, &http.Client{Timeout: cfg.Preload.Timeout}, cfg.Preload.BaseURL, logger,
		preload.WithWorkers(cfg.Preload.Workers),
		preload.WithStep(cfg.Preload.Step),
		preload.WithMetrics(metrics),
	)
	if err != nil {
		return err
	}

	var publisher service.Publisher
	if cfg.KafkaEnabled() {
		pub := kafka.NewPublisher(kafka.NewWriter(cfg.Kafka), logger)
		defer func() {
			if err := pub.Close(); err != nil {
				logger.Warn("Kafka writer close failed", zap.Error(err))
			}
		}()
		publisher = pub
		logger.Info("Publishing orders", zap.Strings("brokers", cfg.Kafka.Brokers), zap.String("topic", cfg.Kafka.Topic))
	}

	srv := httpapi.New(httpapi.Deps{
		Sessions:   sessions,
		Catalog:    cat,
		Checkout:   service.NewService(publisher, cfg.Checkout.Delay, logger, metrics),
		Chat:       chat.New(tr, hours, cfg.Chat.ReplyDelay, logger, chat.WithCapacity(cfg.Chat.Capacity)),
		Prefs:      prefs.New(store, logger),
		Contact:    contact.New(cfg.Contact.Delay, logger),
		Gate:       gate,
		Translator: tr,
		WebDir:     cfg.HTTP.WebDir,
	}, logger, metrics)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return srv.ListenAndServe(ctx, cfg.HTTP.Addr)
	})
	g.Go(func() error {
		warm(ctx, cfg, gate, logger)
		return nil
	})
	return g.Wait()
}

// warm runs the preload gate once the server answers its health check.
func warm(ctx context.Context, cfg config.Config, gate *preload.Gate, logger *zap.Logger) {
	client := &http.Client{Timeout: cfg.Preload.Timeout}
	health := cfg.Preload.BaseURL + "/healthz"

	err := retry.Do(ctx, cfg.Retry, func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, health, nil)
		if err != nil {
			return err
		}
		resp, err := client.Do(req)
		if err != nil {
			return err
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("health status %d", resp.StatusCode)
		}
		return nil
	})
	if err != nil {
		if !errors.Is(err, context.Canceled) {
			logger.Warn("Site not reachable for preload", zap.String("url", health), zap.Error(err))
		}
		return
	}

	rep, preloaded, err := gate.Run(ctx, nil)
	if errors.Is(err, context.Canceled) {
		return
	}
	if err != nil {
		logger.Warn("Preload finished with error", zap.Error(err))
		return
	}
	logger.Info("Preload gate done",
		zap.Bool("preloaded", preloaded),
		zap.Int("assets", rep.Total),
		zap.Int("failed", rep.Failed),
	)
}

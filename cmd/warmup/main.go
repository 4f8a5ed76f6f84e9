package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/TemirB/rsrvd-site/internal/config"
	"github.com/TemirB/rsrvd-site/internal/observability"
	"github.com/TemirB/rsrvd-site/internal/preload"
	"github.com/TemirB/rsrvd-site/internal/storage"
)

func main() {
	cfg := config.Load()

	base := flag.String("base", cfg.Preload.BaseURL, "site base URL")
	force := flag.Bool("force", false, "preload even when the cache is still valid")
	state := flag.String("state", "", "storage file; overrides STORAGE_BACKEND with a file store")
	flag.Parse()

	if *state != "" {
		cfg.Storage.Backend = "file"
		cfg.Storage.Path = *state
	}

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, cfg, *base, *force, logger)
	stop()
	_ = logger.Sync()
	os.Exit(code)
}

// run exits non-zero only when storage cannot be opened or written.
func run(ctx context.Context, cfg config.Config, base string, force bool, logger *zap.Logger) int {
	store, release, err := storage.Open(ctx, cfg, logger)
	if err != nil {
		logger.Error("Can't open storage", zap.Error(err))
		return 1
	}
	defer release()

	gate, err := preload.New(store, &http.Client{Timeout: cfg.Preload.Timeout}, base, logger,
		preload.WithWorkers(cfg.Preload.Workers),
		preload.WithStep(cfg.Preload.Step),
		preload.WithMetrics(observability.NewNoop()),
	)
	if err != nil {
		logger.Error("Bad base URL", zap.Error(err))
		return 0
	}

	progress := func(p float64) { fmt.Printf("\rpreloading %3.0f%%", p) }

	var (
		rep       preload.Report
		preloaded bool
	)
	if force {
		rep, err = gate.PreloadAssets(ctx, progress)
		gate.WarmupRoutes(ctx)
		preloaded = true
	} else {
		rep, preloaded, err = gate.Run(ctx, progress)
	}
	fmt.Println()

	if ctx.Err() != nil {
		logger.Info("Preload interrupted, cache left stale")
		return 0
	}
	if err != nil {
		logger.Error("Preload failed", zap.Error(err))
		return 1
	}
	if !preloaded {
		logger.Info("Cache still valid, nothing to preload")
		return 0
	}
	logger.Info("Preload complete",
		zap.String("base", base),
		zap.Int("assets", rep.Total),
		zap.Int("failed", rep.Failed),
		zap.Float64("ms", rep.Ms),
	)
	return 0
}

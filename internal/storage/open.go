package storage

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/TemirB/rsrvd-site/internal/config"
	"github.com/TemirB/rsrvd-site/internal/database"
	"github.com/TemirB/rsrvd-site/internal/domain"
)

// Open builds the configured backend. The returned func releases it.
func Open(ctx context.Context, cfg config.Config, logger *zap.Logger) (domain.Store, func(), error) {
	switch cfg.Storage.Backend {
	case "file":
		f, err := OpenFile(cfg.Storage.Path)
		if err != nil {
			return nil, nil, err
		}
		logger.Info("Using file storage", zap.String("path", cfg.Storage.Path))
		return f, func() {}, nil
	case "postgres":
		pool, err := database.Connect(ctx, cfg.DSN(), cfg.Retry, logger)
		if err != nil {
			return nil, nil, err
		}
		repo := database.New(pool, cfg.Pg.Schema)
		if err := repo.EnsureSchema(ctx); err != nil {
			pool.Close()
			return nil, nil, err
		}
		logger.Info("Using postgres storage", zap.String("schema", cfg.Pg.Schema))
		return repo, pool.Close, nil
	case "memory", "":
		logger.Info("Using in-memory storage")
		return NewMemory(), func() {}, nil
	}
	return nil, nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
}

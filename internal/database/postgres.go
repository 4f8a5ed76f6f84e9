package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/tracelog"
	"go.uber.org/zap"

	"github.com/TemirB/rsrvd-site/internal/config"
	"github.com/TemirB/rsrvd-site/internal/domain"
	"github.com/TemirB/rsrvd-site/internal/pkg/retry"
)

const (
	kvTable     = "kv"
	ordersTable = "orders"
)

// Repo is the Postgres backend: a key/value table for site storage and an
// orders table fed by the checkout consumer.
type Repo struct {
	pool   *pgxpool.Pool
	schema string
}

func New(pool *pgxpool.Pool, schema string) *Repo {
	if schema == "" {
		schema = "public"
	}
	return &Repo{pool: pool, schema: schema}
}

// Connect builds a traced pool and pings it under the retry policy.
func Connect(ctx context.Context, dsn string, policy config.Retry, logger *zap.Logger) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}
	cfg.ConnConfig.Tracer = &tracelog.TraceLog{
		Logger:   NewZapTracer(logger),
		LogLevel: tracelog.LogLevelWarn,
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}

	err = retry.Do(ctx, policy, func() error {
		if err := pool.Ping(ctx); err != nil {
			logger.Warn("Postgres not ready", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return pool, nil
}

func (r *Repo) qt(tbl string) string { return fmt.Sprintf(`"%s"."%s"`, r.schema, tbl) }

func (r *Repo) schemaStatements() []string {
	return []string{
		fmt.Sprintf(`CREATE SCHEMA IF NOT EXISTS "%s"`, r.schema),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
			key        text PRIMARY KEY,
			value      text NOT NULL,
			updated_at timestamptz NOT NULL DEFAULT now()
		)`, r.qt(kvTable)),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
			order_id   text PRIMARY KEY,
			session_id text NOT NULL,
			items      jsonb NOT NULL,
			total      numeric(12,2) NOT NULL,
			placed_at  timestamptz NOT NULL
		)`, r.qt(ordersTable)),
	}
}

func (r *Repo) EnsureSchema(ctx context.Context) error {
	for _, stmt := range r.schemaStatements() {
		if _, err := r.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}

func (r *Repo) Get(ctx context.Context, key string) (string, bool, error) {
	var v string
	err := r.pool.QueryRow(ctx, fmt.Sprintf(`SELECT value FROM %s WHERE key=$1`, r.qt(kvTable)), key).Scan(&v)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return v, true, nil
}

func (r *Repo) Set(ctx context.Context, key, value string) error {
	_, err := r.pool.Exec(ctx, fmt.Sprintf(`
		INSERT INTO %s (key, value, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET
		  value=EXCLUDED.value,
		  updated_at=EXCLUDED.updated_at
	`, r.qt(kvTable)), key, value)
	return err
}

func (r *Repo) Delete(ctx context.Context, key string) error {
	_, err := r.pool.Exec(ctx, fmt.Sprintf(`DELETE FROM %s WHERE key=$1`, r.qt(kvTable)), key)
	return err
}

// SaveOrder is idempotent on order id so redelivered messages are harmless.
func (r *Repo) SaveOrder(ctx context.Context, o *domain.Order) error {
	if o.PlacedAt.IsZero() {
		o.PlacedAt = time.Now().UTC()
	}
	_, err := r.pool.Exec(ctx, fmt.Sprintf(`
		INSERT INTO %s (order_id, session_id, items, total, placed_at)
		VALUES ($1,$2,$3,$4,$5)
		ON CONFLICT (order_id) DO UPDATE SET
		  session_id=EXCLUDED.session_id,
		  items=EXCLUDED.items,
		  total=EXCLUDED.total,
		  placed_at=EXCLUDED.placed_at
	`, r.qt(ordersTable)),
		o.OrderID, o.SessionID, o.Items, o.Total, o.PlacedAt,
	)
	return err
}

func (r *Repo) RecentOrders(ctx context.Context, limit int) ([]domain.Order, error) {
	rows, err := r.pool.Query(ctx, fmt.Sprintf(`
		SELECT order_id, session_id, items, total::float8, placed_at
		FROM %s
		ORDER BY placed_at DESC
		LIMIT $1
	`, r.qt(ordersTable)), limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Order
	for rows.Next() {
		var o domain.Order
		if err := rows.Scan(&o.OrderID, &o.SessionID, &o.Items, &o.Total, &o.PlacedAt); err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

package cache

import (
	"context"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"

	"github.com/TemirB/rsrvd-site/internal/domain"
	"github.com/TemirB/rsrvd-site/internal/observability"
)

//go:generate mockgen -destination=repo_mock_test.go -package=cache github.com/TemirB/rsrvd-site/internal/domain OrderRepository

// Orders sits in front of the order repository and remembers the most
// recently stored orders. Placed orders never change, so saving a known id
// is a redelivery and skips the database.
type Orders struct {
	size    int
	lru     *lru.Cache[string, domain.Order]
	repo    domain.OrderRepository
	logger  *zap.Logger
	metrics observability.Metrics
}

func New(size int, repo domain.OrderRepository, logger *zap.Logger, metrics observability.Metrics) (*Orders, error) {
	c, err := lru.New[string, domain.Order](size)
	if err != nil {
		return nil, err
	}
	if metrics == nil {
		metrics = observability.NewNoop()
	}
	return &Orders{
		size:    size,
		lru:     c,
		repo:    repo,
		logger:  logger,
		metrics: metrics,
	}, nil
}

// Warm loads the latest stored orders.
func (c *Orders) Warm(ctx context.Context) error {
	orders, err := c.repo.RecentOrders(ctx, c.size)
	if err != nil {
		return fmt.Errorf("warm order cache: %w", err)
	}
	for _, o := range orders {
		c.lru.Add(o.OrderID, o)
	}
	c.logger.Info("Order cache warmed", zap.Int("orders", len(orders)))
	return nil
}

func (c *Orders) SaveOrder(ctx context.Context, order *domain.Order) error {
	if c.lru.Contains(order.OrderID) {
		c.metrics.IncCacheHit()
		c.logger.Debug("Order already stored", zap.String("order_id", order.OrderID))
		return nil
	}
	c.metrics.IncCacheMiss()

	if err := c.repo.SaveOrder(ctx, order); err != nil {
		return err
	}
	c.lru.Add(order.OrderID, *order)
	return nil
}

func (c *Orders) RecentOrders(ctx context.Context, limit int) ([]domain.Order, error) {
	return c.repo.RecentOrders(ctx, limit)
}

func (c *Orders) Get(id string) (domain.Order, bool) {
	return c.lru.Get(id)
}

func (c *Orders) Len() int {
	return c.lru.Len()
}

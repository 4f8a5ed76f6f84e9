package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/TemirB/rsrvd-site/internal/domain"
	"github.com/TemirB/rsrvd-site/internal/notify"
	"github.com/TemirB/rsrvd-site/internal/observability"
)

//go:generate mockgen -source=service.go -destination=service_mock_test.go -package=service

const thankYou = "Thank you for your order! We'll be in touch soon."

type Cart interface {
	Items() []domain.CartItem
	Settle(ordered []domain.CartItem)
}

type Publisher interface {
	Publish(ctx context.Context, order *domain.Order) error
}

// Service runs the simulated checkout of a visitor's cart.
type Service struct {
	publisher Publisher
	delay     time.Duration
	logger    *zap.Logger
	metrics   observability.Metrics
	now       func() time.Time
}

// NewService accepts a nil publisher when order events are disabled.
func NewService(publisher Publisher, delay time.Duration, logger *zap.Logger, metrics observability.Metrics) *Service {
	return &Service{
		publisher: publisher,
		delay:     delay,
		logger:    logger,
		metrics:   metrics,
		now:       time.Now,
	}
}

func (s *Service) Checkout(ctx context.Context, sessionID string, cart Cart, notifier domain.Notifier) (*domain.Order, error) {
	o, _, err := s.CheckoutWithStats(ctx, sessionID, cart, notifier)
	return o, err
}

// CheckoutWithStats snapshots the cart, waits out the processing delay, emits
// the order and settles exactly the ordered quantities. Items added during
// the delay stay in the cart. Publish failures are logged and do not fail
// checkout.
func (s *Service) CheckoutWithStats(ctx context.Context, sessionID string, cart Cart, notifier domain.Notifier) (*domain.Order, CheckoutStats, error) {
	var st CheckoutStats
	if notifier == nil {
		notifier = notify.Discard{}
	}

	items := cart.Items()
	if len(items) == 0 {
		return nil, st, domain.ErrEmptyCart
	}

	tStart := time.Now()
	if err := wait(ctx, s.delay); err != nil {
		st.TotalMs = convertToMs(tStart)
		s.metrics.ObserveCheckout(st.TotalMs, false)
		s.logger.Warn("Checkout aborted",
			zap.String("session", sessionID),
			zap.Error(err),
		)
		return nil, st, err
	}
	st.WaitMs = convertToMs(tStart)

	order := &domain.Order{
		OrderID:   uuid.NewString(),
		SessionID: sessionID,
		Items:     items,
		Total:     totalOf(items),
		PlacedAt:  s.now().UTC(),
	}

	if s.publisher != nil {
		tPub := time.Now()
		if err := s.publisher.Publish(ctx, order); err != nil {
			s.logger.Error("Failed to publish order",
				zap.String("order_id", order.OrderID),
				zap.Error(err),
			)
		} else {
			st.Published = true
		}
		st.PublishMs = convertToMs(tPub)
	}

	notifier.Notify(notify.Success(thankYou))
	cart.Settle(items)

	st.TotalMs = convertToMs(tStart)
	s.metrics.ObserveCheckout(st.TotalMs, true)
	s.logger.Info("Order placed",
		zap.String("order_id", order.OrderID),
		zap.String("session", sessionID),
		zap.Int("items", len(order.Items)),
		zap.Float64("total", order.Total),
		zap.Bool("published", st.Published),
		zap.Float64("total_ms", st.TotalMs),
	)
	return order, st, nil
}

func totalOf(items []domain.CartItem) float64 {
	var total float64
	for _, it := range items {
		total += it.Subtotal()
	}
	return total
}

func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

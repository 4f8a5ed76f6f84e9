package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/TemirB/rsrvd-site/internal/config"
	"github.com/TemirB/rsrvd-site/internal/domain"
	"github.com/TemirB/rsrvd-site/internal/pkg/retry"
)

//go:generate mockgen -source=handler.go -destination=handler_mock_test.go -package=handler

var (
	ErrBadJSON     = errors.New("bad json")
	ErrSave        = errors.New("save failed")
	ErrCircuitOpen = errors.New("circuit breaker open")
)

type Service interface {
	SaveOrder(ctx context.Context, order *domain.Order) error
}

type brk interface {
	Allow() error
	Success()
	Failure()
}

// Handler stores checkout orders read from Kafka.
type Handler struct {
	service     Service
	breaker     brk
	logger      *zap.Logger
	retryPolicy config.Retry
}

func NewHandler(service Service, breaker brk, retryPolicy config.Retry, logger *zap.Logger) *Handler {
	return &Handler{
		service:     service,
		breaker:     breaker,
		logger:      logger,
		retryPolicy: retryPolicy,
	}
}

// Handle processes one message. A nil return lets the consumer commit it.
func (h *Handler) Handle(ctx context.Context, message kafkago.Message) error {
	if err := h.breaker.Allow(); err != nil {
		h.logger.Warn("Circuit breaker is open",
			zap.Error(err),
			zap.Int("partition", message.Partition),
			zap.Int64("offset", message.Offset),
		)
		return fmt.Errorf("%w: %v", ErrCircuitOpen, err)
	}

	var order domain.Order
	if err := json.Unmarshal(message.Value, &order); err != nil {
		h.logger.Error("Bad json format",
			zap.Error(err),
			zap.Int("partition", message.Partition),
			zap.Int64("offset", message.Offset),
		)
		h.breaker.Failure()
		return fmt.Errorf("%w: %v", ErrBadJSON, err)
	}
	if order.OrderID == "" {
		h.logger.Error("Missing order_id",
			zap.Int("partition", message.Partition),
			zap.Int64("offset", message.Offset),
		)
		h.breaker.Failure()
		return fmt.Errorf("%w: missing order_id", ErrBadJSON)
	}

	if err := retry.Do(ctx, h.retryPolicy, func() error {
		return h.service.SaveOrder(ctx, &order)
	}); err != nil {
		h.logger.Error("Save failed after retries",
			zap.String("order_id", order.OrderID),
			zap.Error(err),
			zap.Int("partition", message.Partition),
			zap.Int64("offset", message.Offset),
		)
		h.breaker.Failure()
		return fmt.Errorf("%w: %v", ErrSave, err)
	}

	h.breaker.Success()
	h.logger.Info("Order stored",
		zap.String("order_id", order.OrderID),
		zap.Int("items", len(order.Items)),
		zap.Float64("total", order.Total),
		zap.Int("partition", message.Partition),
		zap.Int64("offset", message.Offset),
	)
	return nil
}

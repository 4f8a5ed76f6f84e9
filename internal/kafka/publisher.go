package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/TemirB/rsrvd-site/internal/config"
	"github.com/TemirB/rsrvd-site/internal/domain"
)

//go:generate mockgen -source=publisher.go -destination=publisher_mock_test.go -package=kafka

type Writer interface {
	WriteMessages(ctx context.Context, msgs ...kafkago.Message) error
	Close() error
}

// NewWriter hashes on the key so every order id lands on one partition.
func NewWriter(cfg config.Kafka) *kafkago.Writer {
	return &kafkago.Writer{
		Addr:                   kafkago.TCP(cfg.Brokers...),
		Topic:                  cfg.Topic,
		Balancer:               &kafkago.Hash{},
		RequiredAcks:           kafkago.RequireOne,
		BatchTimeout:           10 * time.Millisecond,
		AllowAutoTopicCreation: true,
	}
}

// Publisher sends placed orders to the checkout topic as JSON.
type Publisher struct {
	writer Writer
	logger *zap.Logger
}

func NewPublisher(w Writer, logger *zap.Logger) *Publisher {
	return &Publisher{writer: w, logger: logger}
}

func (p *Publisher) Publish(ctx context.Context, order *domain.Order) error {
	value, err := json.Marshal(order)
	if err != nil {
		return fmt.Errorf("encode order: %w", err)
	}
	err = p.writer.WriteMessages(ctx, kafkago.Message{
		Key:   []byte(order.OrderID),
		Value: value,
		Time:  order.PlacedAt,
	})
	if err != nil {
		return fmt.Errorf("write order %s: %w", order.OrderID, err)
	}
	p.logger.Debug("Order published", zap.String("order_id", order.OrderID), zap.Int("bytes", len(value)))
	return nil
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}

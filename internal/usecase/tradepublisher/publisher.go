package tradepublisher

import (
	"context"
	"encoding/json"

	"github.com/segmentio/kafka-go"

	tradepublisherv1 "github.com/dainhan2k4/HDC-Mobile-sub005/internal/domain/tradepublisher/v1"
	"github.com/dainhan2k4/HDC-Mobile-sub005/pkg/errors"
	"github.com/dainhan2k4/HDC-Mobile-sub005/pkg/logger"
)

// Config holds the Kafka settings for the trade publisher.
type Config struct {
	Brokers []string `env:"KAFKA_BROKERS" envSeparator:"," envDefault:"localhost:9092"`
	Topic   string   `env:"KAFKA_TRADES_TOPIC" envDefault:"fund.trades"`
}

// Publisher emits executed trades to the trades topic. Messages are
// keyed by fund so one fund's trades stay ordered within a partition.
type Publisher struct {
	kafkaWriter *kafka.Writer
	logger      logger.Interface
}

var _ tradepublisherv1.TradePublisher = (*Publisher)(nil)

// NewPublisher creates a new Kafka publisher for trade events.
func NewPublisher(config Config, logger logger.Interface) *Publisher {
	kafkaWriter := kafka.NewWriter(kafka.WriterConfig{
		Brokers: config.Brokers,
		Topic:   config.Topic,
	})

	return &Publisher{
		kafkaWriter: kafkaWriter,
		logger:      logger,
	}
}

// PublishTradeEvent publishes a trade event to the trades topic.
func (p *Publisher) PublishTradeEvent(ctx context.Context, payload *tradepublisherv1.TradeEventPayload) error {
	value, err := json.Marshal(payload)
	if err != nil {
		return errors.TracerFromError(err)
	}

	msg := kafka.Message{
		Key:   []byte(payload.FundID),
		Value: value,
	}

	if err := p.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		p.logger.ErrorContext(ctx, err,
			logger.Field{Key: "tradeID", Value: payload.TradeID},
			logger.Field{Key: "fundID", Value: payload.FundID},
		)
		return errors.NewErrorDetails("failed to publish trade event", errors.TradePublishError, "")
	}
	return nil
}

// Close flushes and closes the underlying writer.
func (p *Publisher) Close() error {
	return p.kafkaWriter.Close()
}

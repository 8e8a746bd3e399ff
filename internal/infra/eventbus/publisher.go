package eventbus

import (
	"context"
	"log/slog"

	"rentx-api/internal/pkg/breaker"
	"rentx-api/internal/pkg/config"
	"rentx-api/internal/pkg/errs"
	"rentx-api/internal/usecase/jobs"

	"github.com/segmentio/kafka-go"
	"github.com/sony/gobreaker/v2"
)

// NewPublisher returns a breaker-guarded kafka publisher, or a log publisher
// when no brokers are configured.
func NewPublisher(cfg config.KafkaConfig, breakerCfg config.BreakerConfig) jobs.EventPublisher {
	if len(cfg.Brokers) == 0 {
		return NewLogPublisher(cfg.Topic)
	}
	return NewBreakerPublisher(NewKafkaPublisher(cfg), breaker.New[struct{}]("kafka-"+cfg.Topic, breakerCfg))
}

type KafkaPublisher struct {
	writer *kafka.Writer
}

func NewKafkaPublisher(cfg config.KafkaConfig) *KafkaPublisher {
	return &KafkaPublisher{
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(cfg.Brokers...),
			Topic:                  cfg.Topic,
			Balancer:               &kafka.Hash{},
			RequiredAcks:           kafka.RequireAll,
			AllowAutoTopicCreation: true,
		},
	}
}

// Publish keys messages by rent request id so one request's events stay ordered
// on a single partition.
func (p *KafkaPublisher) Publish(ctx context.Context, key string, payload []byte) error {
	err := p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(key),
		Value: payload,
		Headers: []kafka.Header{
			{Key: "content-type", Value: []byte("application/json")},
		},
	})
	if err != nil {
		return errs.Wrap(err, "kafka write")
	}
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

type LogPublisher struct {
	logger *slog.Logger
}

func NewLogPublisher(topic string) *LogPublisher {
	return &LogPublisher{logger: slog.Default().With(
		slog.String("component", "log_publisher"),
		slog.String("topic", topic))}
}

func (p *LogPublisher) Publish(_ context.Context, key string, payload []byte) error {
	p.logger.Info("event", slog.String("key", key), slog.String("payload", string(payload)))
	return nil
}

type BreakerPublisher struct {
	next jobs.EventPublisher
	cb   *gobreaker.CircuitBreaker[struct{}]
}

func NewBreakerPublisher(next jobs.EventPublisher, cb *gobreaker.CircuitBreaker[struct{}]) *BreakerPublisher {
	return &BreakerPublisher{next: next, cb: cb}
}

func (b *BreakerPublisher) Publish(ctx context.Context, key string, payload []byte) error {
	_, err := b.cb.Execute(func() (struct{}, error) {
		return struct{}{}, b.next.Publish(ctx, key, payload)
	})
	return err
}

// Close releases the underlying writer when there is one.
func (b *BreakerPublisher) Close() error {
	if c, ok := b.next.(interface{ Close() error }); ok {
		return c.Close()
	}
	return nil
}

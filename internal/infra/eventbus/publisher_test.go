//go:build unit

package eventbus_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"rentx-api/internal/infra/eventbus"
	"rentx-api/internal/pkg/breaker"
	"rentx-api/internal/pkg/config"

	"github.com/sony/gobreaker/v2"
	"github.com/stretchr/testify/assert"
)

type fakePublisher struct {
	keys []string
	err  error
}

func (f *fakePublisher) Publish(_ context.Context, key string, _ []byte) error {
	f.keys = append(f.keys, key)
	return f.err
}

func TestNewPublisher(t *testing.T) {
	breakerCfg := config.NewTestConfig().Breaker

	t.Run("success: no brokers falls back to log publisher", func(t *testing.T) {
		p := eventbus.NewPublisher(config.KafkaConfig{Topic: "rent-request-events"}, breakerCfg)
		assert.IsType(t, &eventbus.LogPublisher{}, p)
		assert.NoError(t, p.Publish(context.Background(), "k", []byte(`{"type":"rent_request.created"}`)))
	})

	t.Run("brokers configured", func(t *testing.T) {
		p := eventbus.NewPublisher(config.KafkaConfig{Brokers: []string{"localhost:9092"}, Topic: "rent-request-events"}, breakerCfg)
		assert.IsType(t, &eventbus.BreakerPublisher{}, p)
		assert.NoError(t, p.(*eventbus.BreakerPublisher).Close())
	})
}

func TestBreakerPublisher(t *testing.T) {
	next := &fakePublisher{err: errors.New("broker unreachable")}
	p := eventbus.NewBreakerPublisher(next, breaker.New[struct{}]("kafka-test", config.BreakerConfig{
		MaxRequests:      1,
		Interval:         time.Minute,
		Timeout:          time.Minute,
		FailureThreshold: 1,
	}))
	ctx := context.Background()

	assert.EqualError(t, p.Publish(ctx, "a", nil), "broker unreachable")
	assert.ErrorIs(t, p.Publish(ctx, "b", nil), gobreaker.ErrOpenState)
	assert.Equal(t, []string{"a"}, next.keys)
}

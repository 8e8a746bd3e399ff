package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"rentx-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// RedisEarningsCache stores seller earnings per seller and UTC month.
type RedisEarningsCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisEarningsCache(client *redis.Client, ttl time.Duration) *RedisEarningsCache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &RedisEarningsCache{client: client, ttl: ttl}
}

func (c *RedisEarningsCache) Get(ctx context.Context, sellerID uuid.UUID, period string) (*queries.SellerEarnings, error) {
	data, err := c.client.Get(ctx, earningsKey(sellerID, period)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("redis get failed: %w", err)
	}

	var e queries.SellerEarnings
	if err := json.Unmarshal(data, &e); err != nil {
		return nil, fmt.Errorf("unmarshal earnings failed: %w", err)
	}
	return &e, nil
}

func (c *RedisEarningsCache) Set(ctx context.Context, e *queries.SellerEarnings) error {
	data, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("marshal earnings failed: %w", err)
	}
	if err := c.client.Set(ctx, earningsKey(e.SellerID, e.Period), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

// InvalidateSeller drops the cached earnings for the month containing at.
// Failures are logged; the entry then expires with its TTL.
func (c *RedisEarningsCache) InvalidateSeller(ctx context.Context, sellerID uuid.UUID, at time.Time) {
	period := queries.NewEarningsPeriod(at).Key()
	if err := c.client.Del(ctx, earningsKey(sellerID, period)).Err(); err != nil {
		slog.Warn("earnings cache invalidation failed",
			slog.String("seller_id", sellerID.String()),
			slog.String("period", period),
			slog.Any("error", err))
	}
}

func earningsKey(sellerID uuid.UUID, period string) string {
	return fmt.Sprintf("earnings:%s:%s", sellerID, period)
}

// NopEarningsCache is used when no redis address is configured.
type NopEarningsCache struct{}

func (NopEarningsCache) Get(context.Context, uuid.UUID, string) (*queries.SellerEarnings, error) {
	return nil, nil
}

func (NopEarningsCache) Set(context.Context, *queries.SellerEarnings) error { return nil }

func (NopEarningsCache) InvalidateSeller(context.Context, uuid.UUID, time.Time) {}

//go:build unit

package cache_test

import (
	"context"
	"testing"
	"time"

	"rentx-api/internal/infra/cache"
	"rentx-api/internal/usecase/queries"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) (*miniredis.Miniredis, *cache.RedisEarningsCache) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, cache.NewRedisEarningsCache(client, time.Minute)
}

func TestRedisEarningsCache(t *testing.T) {
	ctx := context.Background()
	sellerID := uuid.MustParse("7d3e1c6a-1b2f-4e8a-9c3d-5f6a7b8c9d0e")
	earnings := &queries.SellerEarnings{
		SellerID:      sellerID,
		TotalIncome:   18000,
		MonthlyIncome: 9000,
		YearlyIncome:  18000,
		TotalRentals:  2,
		Period:        "2030-03",
	}

	t.Run("success: missing key is a miss", func(t *testing.T) {
		_, c := setup(t)
		got, err := c.Get(ctx, sellerID, "2030-03")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("set then get round trips with TTL", func(t *testing.T) {
		mr, c := setup(t)
		require.NoError(t, c.Set(ctx, earnings))

		got, err := c.Get(ctx, sellerID, "2030-03")
		require.NoError(t, err)
		if diff := cmp.Diff(earnings, got); diff != "" {
			t.Errorf("earnings mismatch (-want +got):\n%s", diff)
		}

		key := "earnings:" + sellerID.String() + ":2030-03"
		assert.True(t, mr.Exists(key))
		assert.Equal(t, time.Minute, mr.TTL(key))

		mr.FastForward(2 * time.Minute)
		got, err = c.Get(ctx, sellerID, "2030-03")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("invalidate removes only the month of completion", func(t *testing.T) {
		_, c := setup(t)
		require.NoError(t, c.Set(ctx, earnings))
		other := *earnings
		other.Period = "2030-02"
		require.NoError(t, c.Set(ctx, &other))

		c.InvalidateSeller(ctx, sellerID, time.Date(2030, 3, 15, 10, 0, 0, 0, time.UTC))

		got, err := c.Get(ctx, sellerID, "2030-03")
		require.NoError(t, err)
		assert.Nil(t, got)

		got, err = c.Get(ctx, sellerID, "2030-02")
		require.NoError(t, err)
		assert.NotNil(t, got)
	})

	t.Run("error: corrupt value", func(t *testing.T) {
		mr, c := setup(t)
		require.NoError(t, mr.Set("earnings:"+sellerID.String()+":2030-03", "{not json"))
		_, err := c.Get(ctx, sellerID, "2030-03")
		assert.Error(t, err)
	})

	t.Run("redis down", func(t *testing.T) {
		mr, c := setup(t)
		mr.Close()
		_, err := c.Get(ctx, sellerID, "2030-03")
		assert.Error(t, err)
		assert.Error(t, c.Set(ctx, earnings))
		c.InvalidateSeller(ctx, sellerID, time.Now())
	})
}

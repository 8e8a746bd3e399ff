//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"rentx-api/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

func CreateTestUser(t *testing.T, db db.DBTX, email string, roles ...string) uuid.UUID {
	t.Helper()

	if len(roles) == 0 {
		roles = []string{"BUYER"}
	}

	userID := uuid.New()
	ctx := context.Background()
	tag, err := db.Exec(ctx, "INSERT INTO users (id, email, roles, status) VALUES ($1, $2, $3, 'ACTIVE') ON CONFLICT (email) DO NOTHING",
		userID, email, roles)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		err = db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID)
		require.NoError(t, err)
	}

	return userID
}

func CreateTestProduct(t *testing.T, db db.DBTX, sellerID uuid.UUID, name string, pricePerDay int64, quantity int) uuid.UUID {
	t.Helper()

	productID := uuid.New()
	_, err := db.Exec(context.Background(), `
		INSERT INTO products (id, seller_id, name, price_per_day, quantity, remaining_quantity, is_available)
		VALUES ($1, $2, $3, $4, $5, $5, true)`,
		productID, sellerID, name, pricePerDay, quantity)
	require.NoError(t, err)

	return productID
}

func SetProductAvailability(t *testing.T, db db.DBTX, productID uuid.UUID, available bool) {
	t.Helper()

	_, err := db.Exec(context.Background(), "UPDATE products SET is_available = $2 WHERE id = $1", productID, available)
	require.NoError(t, err)
}

func RemainingQuantity(t *testing.T, db db.DBTX, productID uuid.UUID) int {
	t.Helper()

	var remaining int
	err := db.QueryRow(context.Background(), "SELECT remaining_quantity FROM products WHERE id = $1", productID).Scan(&remaining)
	require.NoError(t, err)
	return remaining
}

// SetRemainingQuantity overwrites the counter directly, to simulate drift.
func SetRemainingQuantity(t *testing.T, db db.DBTX, productID uuid.UUID, remaining int) {
	t.Helper()

	_, err := db.Exec(context.Background(), "UPDATE products SET remaining_quantity = $2 WHERE id = $1", productID, remaining)
	require.NoError(t, err)
}

// ReservedQuantity sums the quantities of active requests on a product.
func ReservedQuantity(t *testing.T, db db.DBTX, productID uuid.UUID) int {
	t.Helper()

	var reserved int
	err := db.QueryRow(context.Background(), `
		SELECT COALESCE(SUM(quantity), 0)::int FROM rent_requests
		WHERE product_id = $1 AND status IN ('PENDING', 'ACCEPTED', 'COLLECTED')`, productID).Scan(&reserved)
	require.NoError(t, err)
	return reserved
}

// OutboxCount counts messages on topic in the given delivery status.
func OutboxCount(t *testing.T, db db.DBTX, topic, status string) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(),
		"SELECT COUNT(*) FROM outbox_messages WHERE topic = $1 AND status = $2", topic, status).Scan(&n)
	require.NoError(t, err)
	return n
}

// SetRequestDates moves a stored request window so collection and
// completion can be staged without waiting.
func SetRequestDates(t *testing.T, db db.DBTX, requestID uuid.UUID, start, end time.Time) {
	t.Helper()

	_, err := db.Exec(context.Background(),
		"UPDATE rent_requests SET start_date = $2, end_date = $3 WHERE id = $1",
		requestID, start, end)
	require.NoError(t, err)
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return nil
}

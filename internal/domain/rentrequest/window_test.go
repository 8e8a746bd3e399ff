//go:build unit

package rentrequest_test

import (
	"testing"
	"time"

	"rentx-api/internal/domain/rentrequest"
	"rentx-api/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var base = time.Date(2030, 3, 1, 0, 0, 0, 0, time.UTC)

func dayN(n int) time.Time {
	return base.AddDate(0, 0, n-1)
}

func mustWindow(t *testing.T, from, to int) rentrequest.Window {
	t.Helper()
	w, err := rentrequest.NewWindow(dayN(from), dayN(to))
	require.NoError(t, err)
	return w
}

func TestWindow(t *testing.T) {
	t.Run("success: compares dates only", func(t *testing.T) {
		start := time.Date(2030, 3, 5, 23, 59, 0, 0, time.UTC)
		end := time.Date(2030, 3, 5, 0, 1, 0, 0, time.UTC)

		w, err := rentrequest.NewWindow(start, end)

		require.NoError(t, err)
		assert.Equal(t, dayN(5), w.Start())
		assert.Equal(t, dayN(5), w.End())
		assert.Equal(t, 1, w.Days())
	})

	t.Run("end before start is rejected", func(t *testing.T) {
		_, err := rentrequest.NewWindow(dayN(5), dayN(4))

		require.ErrorIs(t, err, errs.ErrInvalidDateRange)
		assert.Equal(t, "End date must not be before start date", err.Error())
	})

	t.Run("start must be strictly in the future", func(t *testing.T) {
		now := dayN(5).Add(10 * time.Hour)

		_, err := rentrequest.NewFutureWindow(dayN(5), dayN(6), now)
		require.ErrorIs(t, err, errs.ErrInvalidDateRange)
		assert.Equal(t, "Start date must be in the future", err.Error())

		// a timestamp later today still starts today
		_, err = rentrequest.NewFutureWindow(dayN(5).Add(20*time.Hour), dayN(6), now)
		require.ErrorIs(t, err, errs.ErrInvalidDateRange)

		w, err := rentrequest.NewFutureWindow(dayN(6), dayN(6), now)
		require.NoError(t, err)
		assert.Equal(t, dayN(6), w.Start())
	})

	t.Run("inclusive overlap", func(t *testing.T) {
		cases := []struct {
			name       string
			a, b       [2]int
			overlapped bool
		}{
			{name: "success: shared boundary day overlaps", a: [2]int{1, 5}, b: [2]int{5, 10}, overlapped: true},
			{name: "single day inside", a: [2]int{1, 5}, b: [2]int{3, 3}, overlapped: true},
			{name: "contains", a: [2]int{1, 10}, b: [2]int{3, 4}, overlapped: true},
			{name: "adjacent days", a: [2]int{1, 5}, b: [2]int{6, 10}, overlapped: false},
			{name: "before", a: [2]int{7, 8}, b: [2]int{1, 2}, overlapped: false},
		}
		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				a := mustWindow(t, c.a[0], c.a[1])
				b := mustWindow(t, c.b[0], c.b[1])

				assert.Equal(t, c.overlapped, a.Overlaps(b))
				assert.Equal(t, c.overlapped, b.Overlaps(a))
			})
		}
	})
}

func TestSumReserved(t *testing.T) {
	productID := uuid.New()
	other := uuid.New()
	reservations := []rentrequest.Reservation{
		{ProductID: productID, Window: mustWindow(t, 10, 12), Quantity: 6, Status: rentrequest.StatusPending},
		{ProductID: productID, Window: mustWindow(t, 1, 5), Quantity: 2, Status: rentrequest.StatusAccepted},
		{ProductID: productID, Window: mustWindow(t, 11, 11), Quantity: 1, Status: rentrequest.StatusRejected},
		{ProductID: productID, Window: mustWindow(t, 13, 20), Quantity: 3, Status: rentrequest.StatusCollected},
		{ProductID: other, Window: mustWindow(t, 10, 12), Quantity: 9, Status: rentrequest.StatusPending},
	}

	sum := rentrequest.SumReserved(reservations, productID, mustWindow(t, 11, 13), rentrequest.ActiveStatuses)

	assert.Equal(t, 9, sum)
	assert.Equal(t, 2, rentrequest.SumReserved(reservations, productID, mustWindow(t, 5, 5), rentrequest.ActiveStatuses))
	assert.Zero(t, rentrequest.SumReserved(nil, productID, mustWindow(t, 1, 30), rentrequest.ActiveStatuses))
}

func TestTotals(t *testing.T) {
	w := mustWindow(t, 10, 12)

	assert.Equal(t, 3, rentrequest.TotalDays(w))
	assert.Equal(t, int64(3*1500*2), rentrequest.TotalAmount(rentrequest.TotalDays(w), 1500, 2))
}

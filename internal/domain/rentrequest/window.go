package rentrequest

import (
	"slices"
	"time"

	"rentx-api/internal/pkg/errs"

	"github.com/google/uuid"
)

const (
	DateLayout    = "2006-01-02"
	displayLayout = "Mon Jan 02 2006"
	day           = 24 * time.Hour
)

// Window is an inclusive range of UTC calendar dates.
type Window struct {
	start time.Time
	end   time.Time
}

func NewWindow(start, end time.Time) (Window, error) {
	s, e := DateOf(start), DateOf(end)
	if e.Before(s) {
		return Window{}, errs.Newf(errs.KindInvalidDateRange, "End date must not be before start date")
	}
	return Window{start: s, end: e}, nil
}

// NewFutureWindow additionally requires the window to start after now.
func NewFutureWindow(start, end, now time.Time) (Window, error) {
	w, err := NewWindow(start, end)
	if err != nil {
		return Window{}, err
	}
	if !w.start.After(now) {
		return Window{}, errs.Newf(errs.KindInvalidDateRange, "Start date must be in the future")
	}
	return w, nil
}

// DateOf truncates t to midnight of its UTC calendar date.
func DateOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func (w Window) Start() time.Time { return w.start }
func (w Window) End() time.Time   { return w.end }

// Overlaps uses inclusive bounds: [a,b] and [c,d] overlap iff a <= d and c <= b.
func (w Window) Overlaps(other Window) bool {
	return !w.start.After(other.end) && !other.start.After(w.end)
}

// Days counts both boundary days.
func (w Window) Days() int {
	return int(w.end.Sub(w.start)/day) + 1
}

func (w Window) String() string {
	return w.start.Format(displayLayout) + " to " + w.end.Format(displayLayout)
}

// Reservation is the stock-holding view of an existing request.
type Reservation struct {
	RequestID uuid.UUID
	ProductID uuid.UUID
	BuyerID   uuid.UUID
	Window    Window
	Quantity  int
	Status    Status
}

// SumReserved totals the quantity of reservations on productID whose status is
// in statuses and whose window overlaps w.
func SumReserved(reservations []Reservation, productID uuid.UUID, w Window, statuses []Status) int {
	total := 0
	for _, r := range reservations {
		if r.ProductID != productID || !slices.Contains(statuses, r.Status) {
			continue
		}
		if r.Window.Overlaps(w) {
			total += r.Quantity
		}
	}
	return total
}

// FindBuyerOverlap returns the first active reservation of buyerID on
// productID that overlaps w.
func FindBuyerOverlap(reservations []Reservation, productID, buyerID uuid.UUID, w Window) (Reservation, bool) {
	for _, r := range reservations {
		if r.ProductID == productID && r.BuyerID == buyerID && r.Status.IsActive() && r.Window.Overlaps(w) {
			return r, true
		}
	}
	return Reservation{}, false
}

//go:build unit

package jobs_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"rentx-api/internal/domain/product"
	"rentx-api/internal/domain/rentrequest"
	"rentx-api/internal/pkg/clock"
	"rentx-api/internal/usecase/jobs"
	"rentx-api/internal/usecase/shared"
	"rentx-api/tests/common/builder"
	"rentx-api/tests/common/memstore"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type outboxCall struct {
	op   string
	id   uuid.UUID
	next time.Time
}

type fakeOutbox struct {
	due   []shared.OutboxMessage
	calls []outboxCall
}

func (f *fakeOutbox) ClaimDue(_ context.Context, _ time.Time, limit int, _ time.Duration) ([]shared.OutboxMessage, error) {
	if len(f.due) > limit {
		return f.due[:limit], nil
	}
	return f.due, nil
}

func (f *fakeOutbox) MarkDelivered(_ context.Context, id uuid.UUID, _ time.Time) error {
	f.calls = append(f.calls, outboxCall{op: "delivered", id: id})
	return nil
}

func (f *fakeOutbox) MarkRetry(_ context.Context, id uuid.UUID, next time.Time, _ string) error {
	f.calls = append(f.calls, outboxCall{op: "retry", id: id, next: next})
	return nil
}

func (f *fakeOutbox) MarkFailed(_ context.Context, id uuid.UUID, _ string) error {
	f.calls = append(f.calls, outboxCall{op: "failed", id: id})
	return nil
}

type fakeMailer struct {
	sent []jobs.Email
	err  error
}

func (m *fakeMailer) Send(_ context.Context, e jobs.Email) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, e)
	return nil
}

type fakeRenderer struct{}

func (fakeRenderer) Render(kind shared.TemplateKind, data map[string]any) (jobs.Email, error) {
	if kind == "unknown" {
		return jobs.Email{}, errors.New("no template")
	}
	return jobs.Email{Subject: string(kind), TextBody: data["productName"].(string)}, nil
}

type fakePublisher struct {
	keys []string
	err  error
}

func (p *fakePublisher) Publish(_ context.Context, key string, _ []byte) error {
	if p.err != nil {
		return p.err
	}
	p.keys = append(p.keys, key)
	return nil
}

func emailMessage(t *testing.T, template shared.TemplateKind, attempts int) shared.OutboxMessage {
	t.Helper()
	payload, err := json.Marshal(shared.EmailJob{
		To:       "buyer@example.com",
		Template: template,
		Data:     map[string]any{"productName": "Tent"},
	})
	require.NoError(t, err)
	return shared.OutboxMessage{ID: uuid.New(), Topic: shared.TopicEmail, Payload: payload, Attempts: attempts}
}

func TestOutboxDispatcher_RunOnce(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2030, 3, 1, 8, 0, 0, 0, time.UTC)
	cfg := jobs.DispatcherConfig{BatchSize: 10, MaxAttempts: 3, SendTimeout: time.Second, RetryBase: time.Minute}

	t.Run("success: delivers email and event", func(t *testing.T) {
		mail := emailMessage(t, shared.TemplateRentRequestAccepted, 1)
		event := shared.OutboxMessage{ID: uuid.New(), Topic: shared.TopicRentRequestEvents, Key: "rr-1", Payload: []byte(`{}`), Attempts: 1}
		store := &fakeOutbox{due: []shared.OutboxMessage{mail, event}}
		mailer := &fakeMailer{}
		pub := &fakePublisher{}

		stats, err := jobs.NewOutboxDispatcher(store, mailer, fakeRenderer{}, pub, clock.NewMockClock(now), cfg).RunOnce(ctx)
		require.NoError(t, err)

		assert.Equal(t, jobs.DispatchStats{Claimed: 2, Delivered: 2}, stats)
		want := []jobs.Email{{To: "buyer@example.com", Subject: string(shared.TemplateRentRequestAccepted), TextBody: "Tent"}}
		if diff := cmp.Diff(want, mailer.sent); diff != "" {
			t.Errorf("sent mismatch (-want +got):\n%s", diff)
		}
		assert.Equal(t, []string{"rr-1"}, pub.keys)
	})

	t.Run("transient failure is retried with backoff", func(t *testing.T) {
		msg := emailMessage(t, shared.TemplateRentRequestCreated, 2)
		store := &fakeOutbox{due: []shared.OutboxMessage{msg}}

		stats, err := jobs.NewOutboxDispatcher(store, &fakeMailer{err: errors.New("smtp timeout")}, fakeRenderer{}, &fakePublisher{}, clock.NewMockClock(now), cfg).RunOnce(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, stats.Retried)
		require.Len(t, store.calls, 1)
		assert.Equal(t, "retry", store.calls[0].op)
		assert.Equal(t, now.Add(2*time.Minute), store.calls[0].next)
	})

	t.Run("error: marks failed after max attempts", func(t *testing.T) {
		event := shared.OutboxMessage{ID: uuid.New(), Topic: shared.TopicRentRequestEvents, Payload: []byte(`{}`), Attempts: 3}
		store := &fakeOutbox{due: []shared.OutboxMessage{event}}

		stats, err := jobs.NewOutboxDispatcher(store, &fakeMailer{}, fakeRenderer{}, &fakePublisher{err: errors.New("broker down")}, clock.NewMockClock(now), cfg).RunOnce(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, stats.Failed)
		assert.Equal(t, "failed", store.calls[0].op)
	})

	t.Run("unknown template and topic fail without retry", func(t *testing.T) {
		store := &fakeOutbox{due: []shared.OutboxMessage{
			emailMessage(t, "unknown", 1),
			{ID: uuid.New(), Topic: "sms", Payload: []byte(`{}`), Attempts: 1},
		}}

		stats, err := jobs.NewOutboxDispatcher(store, &fakeMailer{}, fakeRenderer{}, &fakePublisher{}, clock.NewMockClock(now), cfg).RunOnce(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, stats.Failed)
		assert.Zero(t, stats.Retried)
	})
}

type fakeStockStore struct {
	drifts []jobs.StockDrift
}

func (f *fakeStockStore) ListStockDrift(context.Context) ([]jobs.StockDrift, error) {
	return f.drifts, nil
}

// lockingCatalog records the order of catalog calls made inside a transaction.
type lockingCatalog struct {
	shared.CatalogAccessor
	calls *[]string
}

func (c lockingCatalog) GetForUpdate(_ context.Context, id uuid.UUID) (*product.Product, error) {
	*c.calls = append(*c.calls, "lock")
	return product.Reconstruct(id, uuid.New(), "Camping Tent", 1500, 10, 3, true, time.Time{}, time.Time{}), nil
}

func (c lockingCatalog) RecountRemaining(context.Context, uuid.UUID) (int, error) {
	*c.calls = append(*c.calls, "recount")
	return 4, nil
}

type recordingTx struct {
	shared.Tx
	catalog lockingCatalog
}

func (t recordingTx) Products() shared.CatalogAccessor { return t.catalog }

type recordingUoW struct {
	calls  []string
	within int
}

func (u *recordingUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	u.within++
	return fn(ctx, recordingTx{catalog: lockingCatalog{calls: &u.calls}})
}

func TestStockReconciler_RunOnce(t *testing.T) {
	ctx := context.Background()
	drift := jobs.StockDrift{ProductID: uuid.New(), Quantity: 10, RemainingQuantity: 3, ExpectedRemaining: 4}

	t.Run("success: report only leaves counters alone", func(t *testing.T) {
		uow := &recordingUoW{}
		report, err := jobs.NewStockReconciler(&fakeStockStore{drifts: []jobs.StockDrift{drift}}, uow, false).RunOnce(ctx)
		require.NoError(t, err)
		assert.Len(t, report.Drifted, 1)
		assert.Zero(t, report.Repaired)
		assert.Zero(t, uow.within)
	})

	t.Run("success: repair locks the product row before recounting", func(t *testing.T) {
		uow := &recordingUoW{}
		report, err := jobs.NewStockReconciler(&fakeStockStore{drifts: []jobs.StockDrift{drift}}, uow, true).RunOnce(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, report.Repaired)
		assert.Equal(t, 1, uow.within)
		assert.Equal(t, []string{"lock", "recount"}, uow.calls)
	})

	t.Run("success: drifted counter is rewritten from active requests", func(t *testing.T) {
		store := memstore.New()
		productID := store.AddProduct(uuid.New(), "Camping Tent", 1500, 10)
		b := builder.NewRentRequestBuilder().With(func(b *builder.RentRequestBuilder) {
			b.ProductID = productID
			b.Quantity = 6
		})
		store.AddRentRequest(b.BuildDomain())
		store.AddRentRequest(builder.NewRentRequestBuilder().With(func(rb *builder.RentRequestBuilder) {
			rb.ProductID = productID
			rb.Quantity = 3
		}).WithStatus(rentrequest.StatusRejected).BuildDomain())
		store.SetRemaining(productID, 1)

		report, err := jobs.NewStockReconciler(store, store, true).RunOnce(ctx)
		require.NoError(t, err)
		require.Len(t, report.Drifted, 1)
		assert.Equal(t, 4, report.Drifted[0].ExpectedRemaining)
		assert.Equal(t, 1, report.Repaired)
		assert.Equal(t, 4, store.Product(productID).RemainingQuantity())

		again, err := jobs.NewStockReconciler(store, store, true).RunOnce(ctx)
		require.NoError(t, err)
		assert.Empty(t, again.Drifted)
	})

	t.Run("success: a reservation committed before the repair is kept", func(t *testing.T) {
		store := memstore.New()
		productID := store.AddProduct(uuid.New(), "Camping Tent", 1500, 10)
		stale := []jobs.StockDrift{{ProductID: productID, Quantity: 10, RemainingQuantity: 10, ExpectedRemaining: 10}}

		// A create lands between the drift scan and the repair.
		store.AddRentRequest(builder.NewRentRequestBuilder().With(func(b *builder.RentRequestBuilder) {
			b.ProductID = productID
			b.Quantity = 5
		}).BuildDomain())
		store.SetRemaining(productID, 5)

		_, err := jobs.NewStockReconciler(&fakeStockStore{drifts: stale}, store, true).RunOnce(ctx)
		require.NoError(t, err)
		assert.Equal(t, 5, store.Product(productID).RemainingQuantity())
	})
}

//go:build unit || e2e

// Package memstore is an in-memory UnitOfWork with the same locking and
// counter semantics as the postgres implementation.
package memstore

import (
	"context"
	"slices"
	"sync"
	"time"

	"rentx-api/internal/domain/product"
	"rentx-api/internal/domain/rentrequest"
	"rentx-api/internal/domain/user"
	"rentx-api/internal/infra"
	"rentx-api/internal/usecase/jobs"
	"rentx-api/internal/usecase/shared"

	"github.com/google/uuid"
)

type productRow struct {
	id, sellerID      uuid.UUID
	name              string
	pricePerDay       int64
	quantity          int
	remainingQuantity int
	isAvailable       bool
	createdAt         time.Time
}

func (r productRow) toDomain() *product.Product {
	return product.Reconstruct(r.id, r.sellerID, r.name, r.pricePerDay, r.quantity, r.remainingQuantity,
		r.isAvailable, r.createdAt, r.createdAt)
}

type state struct {
	products map[uuid.UUID]productRow
	requests map[uuid.UUID]*rentrequest.RentRequest
	order    []uuid.UUID
	outbox   []shared.OutboxMessage
}

func (s state) clone() state {
	c := state{
		products: make(map[uuid.UUID]productRow, len(s.products)),
		requests: make(map[uuid.UUID]*rentrequest.RentRequest, len(s.requests)),
		order:    slices.Clone(s.order),
		outbox:   slices.Clone(s.outbox),
	}
	for k, v := range s.products {
		c.products[k] = v
	}
	for k, v := range s.requests {
		c.requests[k] = cloneRequest(v)
	}
	return c
}

// Store serialises every Within call, which is at least as strict as the
// per-product row lock.
type Store struct {
	mu    sync.Mutex
	state state
	users map[uuid.UUID]*user.User

	// FailOutbox makes Enqueue fail, to exercise rollback.
	FailOutbox bool
}

func New() *Store {
	return &Store{
		state: state{
			products: map[uuid.UUID]productRow{},
			requests: map[uuid.UUID]*rentrequest.RentRequest{},
		},
		users: map[uuid.UUID]*user.User{},
	}
}

func (s *Store) AddProduct(sellerID uuid.UUID, name string, pricePerDay int64, quantity int) uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := uuid.New()
	s.state.products[id] = productRow{
		id: id, sellerID: sellerID, name: name, pricePerDay: pricePerDay,
		quantity: quantity, remainingQuantity: quantity, isAvailable: true,
		createdAt: time.Now().UTC(),
	}
	return id
}

func (s *Store) SetAvailable(productID uuid.UUID, available bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	row := s.state.products[productID]
	row.isAvailable = available
	s.state.products[productID] = row
}

// SetRemaining overwrites the counter without touching requests, to simulate drift.
func (s *Store) SetRemaining(productID uuid.UUID, remaining int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	row := s.state.products[productID]
	row.remainingQuantity = remaining
	s.state.products[productID] = row
}

func (s *Store) AddRentRequest(rr *rentrequest.RentRequest) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.requests[rr.ID()] = cloneRequest(rr)
	s.state.order = append(s.state.order, rr.ID())
}

func (s *Store) ListStockDrift(_ context.Context) ([]jobs.StockDrift, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var drifts []jobs.StockDrift
	for id, row := range s.state.products {
		expected := max(0, row.quantity-activeQuantity(&s.state, id))
		if expected != row.remainingQuantity {
			drifts = append(drifts, jobs.StockDrift{
				ProductID:         id,
				Quantity:          row.quantity,
				RemainingQuantity: row.remainingQuantity,
				ExpectedRemaining: expected,
			})
		}
	}
	return drifts, nil
}

func (s *Store) AddUser(u *user.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[u.ID()] = u
}

func (s *Store) Product(id uuid.UUID) *product.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	row, ok := s.state.products[id]
	if !ok {
		return nil
	}
	return row.toDomain()
}

func (s *Store) RentRequest(id uuid.UUID) *rentrequest.RentRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	rr, ok := s.state.requests[id]
	if !ok {
		return nil
	}
	return cloneRequest(rr)
}

func (s *Store) RequestCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.state.requests)
}

func (s *Store) Outbox() []shared.OutboxMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.state.outbox)
}

// Within runs fn against a copy of the state and publishes the copy only when
// fn succeeds.
func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	work := s.state.clone()
	tx := &memTx{store: s, state: &work}
	if err := fn(ctx, tx); err != nil {
		return err
	}
	s.state = work
	return nil
}

func (s *Store) GetUser(_ context.Context, id uuid.UUID) (*user.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return nil, infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return u, nil
}

type memTx struct {
	store *Store
	state *state
}

func (t *memTx) Products() shared.CatalogAccessor           { return (*memProducts)(t) }
func (t *memTx) RentRequests() shared.RentRequestRepository { return (*memRequests)(t) }
func (t *memTx) Outbox() shared.OutboxRepository            { return (*memOutbox)(t) }

type memProducts memTx

func (p *memProducts) Get(_ context.Context, id uuid.UUID) (*product.Product, error) {
	row, ok := p.state.products[id]
	if !ok {
		return nil, infra.WrapRepoErr("product not found", nil, infra.KindNotFound)
	}
	return row.toDomain(), nil
}

func (p *memProducts) GetForUpdate(ctx context.Context, id uuid.UUID) (*product.Product, error) {
	return p.Get(ctx, id)
}

func (p *memProducts) AdjustRemaining(_ context.Context, id uuid.UUID, delta int) (int, error) {
	row, ok := p.state.products[id]
	if !ok {
		return 0, infra.WrapRepoErr("product not found", nil, infra.KindNotFound)
	}
	if row.remainingQuantity+delta < 0 {
		return 0, infra.WrapRepoErr("remaining quantity would go negative", nil, infra.KindConflict)
	}
	row.remainingQuantity = min(row.quantity, row.remainingQuantity+delta)
	p.state.products[id] = row
	return row.remainingQuantity, nil
}

func (p *memProducts) UpdateStock(_ context.Context, prod *product.Product) error {
	row, ok := p.state.products[prod.ID()]
	if !ok {
		return infra.WrapRepoErr("product not found", nil, infra.KindNotFound)
	}
	row.quantity = prod.Quantity()
	row.remainingQuantity = prod.RemainingQuantity()
	row.isAvailable = prod.IsAvailable()
	p.state.products[prod.ID()] = row
	return nil
}

func (p *memProducts) RecountRemaining(_ context.Context, id uuid.UUID) (int, error) {
	row, ok := p.state.products[id]
	if !ok {
		return 0, infra.WrapRepoErr("product not found", nil, infra.KindNotFound)
	}
	row.remainingQuantity = max(0, row.quantity-activeQuantity(p.state, id))
	p.state.products[id] = row
	return row.remainingQuantity, nil
}

func activeQuantity(st *state, productID uuid.UUID) int {
	total := 0
	for _, rr := range st.requests {
		if rr.ProductID() == productID && rr.Status().IsActive() {
			total += rr.Quantity()
		}
	}
	return total
}

type memRequests memTx

func (r *memRequests) Create(_ context.Context, rr *rentrequest.RentRequest) error {
	if _, ok := r.state.requests[rr.ID()]; ok {
		return infra.WrapRepoErr("duplicate rent request", nil, infra.KindDuplicateKey)
	}
	r.state.requests[rr.ID()] = cloneRequest(rr)
	r.state.order = append(r.state.order, rr.ID())
	return nil
}

func (r *memRequests) GetForUpdate(_ context.Context, id uuid.UUID) (*rentrequest.RentRequest, error) {
	rr, ok := r.state.requests[id]
	if !ok {
		return nil, infra.WrapRepoErr("rent request not found", nil, infra.KindNotFound)
	}
	return cloneRequest(rr), nil
}

func (r *memRequests) UpdateStatus(_ context.Context, rr *rentrequest.RentRequest) error {
	if _, ok := r.state.requests[rr.ID()]; !ok {
		return infra.WrapRepoErr("rent request not found", nil, infra.KindNotFound)
	}
	r.state.requests[rr.ID()] = cloneRequest(rr)
	return nil
}

func (r *memRequests) ActiveOverlapping(_ context.Context, productID uuid.UUID, w rentrequest.Window) ([]rentrequest.Reservation, error) {
	var out []rentrequest.Reservation
	for _, id := range r.state.order {
		rr := r.state.requests[id]
		if rr.ProductID() == productID && rr.Status().IsActive() && rr.Window().Overlaps(w) {
			out = append(out, rr.Reservation())
		}
	}
	return out, nil
}

type memOutbox memTx

func (o *memOutbox) Enqueue(_ context.Context, msg shared.OutboxMessage) error {
	if o.store.FailOutbox {
		return infra.WrapRepoErr("outbox unavailable", nil, infra.KindDBFailure)
	}
	if msg.ID == uuid.Nil {
		msg.ID = uuid.New()
	}
	o.state.outbox = append(o.state.outbox, msg)
	return nil
}

func cloneRequest(rr *rentrequest.RentRequest) *rentrequest.RentRequest {
	return rentrequest.Reconstruct(
		rr.ID(), rr.ProductID(), rr.BuyerID(), rr.SellerID(),
		rr.Quantity(), rr.Window(), rr.TotalDays(), rr.PricePerDay(), rr.TotalAmount(),
		rr.Status(), rr.RejectionReason(), rr.AcceptedAt(), rr.CollectedAt(), rr.CompletedAt(),
		rr.CreatedAt(), rr.UpdatedAt(),
	)
}

package commands

//go:generate mockgen -source=rent_request.go -destination=../../../tests/mock/commands/rent_request.go -package=mock_commands

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"rentx-api/internal/domain/rentrequest"
	"rentx-api/internal/infra"
	"rentx-api/internal/pkg/clock"
	"rentx-api/internal/pkg/errs"
	"rentx-api/internal/usecase/shared"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "rentx-api/usecase/commands"

var (
	ErrProductNotFound     = errs.Newf(errs.KindNotFound, "Product not found")
	ErrRentRequestNotFound = errs.Newf(errs.KindNotFound, "Rent request not found")
	ErrNotRequestSeller    = errs.Newf(errs.KindForbidden, "Not authorized")
	ErrOnlySellerUpdates   = errs.Newf(errs.KindForbidden, "Only seller can update status")
)

type CreateRentRequestInput struct {
	ProductID uuid.UUID
	Quantity  int
	StartDate time.Time
	EndDate   time.Time
}

type RentRequestResult struct {
	RentRequestID uuid.UUID
	Status        rentrequest.Status
}

type RentRequestCommands interface {
	Create(ctx context.Context, in CreateRentRequestInput, buyerID uuid.UUID) (*RentRequestResult, error)
	ApproveOrReject(ctx context.Context, requestID, sellerID uuid.UUID, action, rejectionReason string) (*RentRequestResult, error)
	UpdateStatus(ctx context.Context, requestID, userID uuid.UUID, newStatus string) (*RentRequestResult, error)
}

type rentRequestUseCaseImpl struct {
	uow         shared.UnitOfWork
	identity    shared.IdentityAccessor
	notifier    shared.NotificationSink
	earnings    shared.EarningsInvalidator
	clock       clock.Clock
	tracer      trace.Tracer
	transitions metric.Int64Counter
}

func NewRentRequestUseCase(
	uow shared.UnitOfWork,
	identity shared.IdentityAccessor,
	notifier shared.NotificationSink,
	earnings shared.EarningsInvalidator,
	clk clock.Clock,
) RentRequestCommands {
	transitions, err := otel.Meter(instrumentationName).Int64Counter("rent_request.transitions",
		metric.WithDescription("Rent request status changes by resulting status"))
	if err != nil {
		slog.Warn("rent request transition counter unavailable", slog.Any("error", err))
	}
	return &rentRequestUseCaseImpl{
		uow:         uow,
		identity:    identity,
		notifier:    notifier,
		earnings:    earnings,
		clock:       clk,
		tracer:      otel.Tracer(instrumentationName),
		transitions: transitions,
	}
}

// transitionOutcome carries what the post-commit side effects need.
type transitionOutcome struct {
	request     *rentrequest.RentRequest
	productName string
}

func (uc *rentRequestUseCaseImpl) Create(ctx context.Context, in CreateRentRequestInput, buyerID uuid.UUID) (res *RentRequestResult, err error) {
	ctx, span := uc.tracer.Start(ctx, "RentRequest.Create", trace.WithAttributes(
		attribute.String("rent_request.product_id", in.ProductID.String()),
		attribute.String("rent_request.buyer_id", buyerID.String()),
		attribute.Int("rent_request.quantity", in.Quantity),
	))
	defer func() { endSpan(span, err) }()

	if err := rentrequest.ValidateQuantity(in.Quantity); err != nil {
		return nil, err
	}
	now := uc.clock.Now()
	window, err := rentrequest.NewFutureWindow(in.StartDate, in.EndDate, now)
	if err != nil {
		return nil, err
	}

	var out transitionOutcome
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		p, err := tx.Products().GetForUpdate(ctx, in.ProductID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrProductNotFound
			}
			return err
		}

		active, err := tx.RentRequests().ActiveOverlapping(ctx, p.ID(), window)
		if err != nil {
			return err
		}

		rr, err := rentrequest.NewRentRequest(p.Spec(), buyerID, in.Quantity, window, active, now)
		if err != nil {
			return err
		}
		if err := tx.RentRequests().Create(ctx, rr); err != nil {
			return err
		}
		if _, err := tx.Products().AdjustRemaining(ctx, p.ID(), -rr.Quantity()); err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return errs.Newf(errs.KindInsufficientStock, "Only %d items available", p.RemainingQuantity())
			}
			return err
		}
		if err := enqueueEvent(ctx, tx, shared.EventRentRequestCreated, rr, now); err != nil {
			return err
		}

		out = transitionOutcome{request: rr, productName: p.Name()}
		return nil
	})
	if err != nil {
		return nil, errs.Internal(err)
	}

	uc.record(ctx, out.request)
	uc.notify(ctx, out.request.SellerID(), shared.TemplateRentRequestCreated, out)
	return &RentRequestResult{RentRequestID: out.request.ID(), Status: out.request.Status()}, nil
}

func (uc *rentRequestUseCaseImpl) ApproveOrReject(ctx context.Context, requestID, sellerID uuid.UUID, action, rejectionReason string) (res *RentRequestResult, err error) {
	ctx, span := uc.tracer.Start(ctx, "RentRequest.ApproveOrReject", trace.WithAttributes(
		attribute.String("rent_request.id", requestID.String()),
		attribute.String("rent_request.action", action),
	))
	defer func() { endSpan(span, err) }()

	// Decide rejects unknown actions after the status check.
	decision := rentrequest.Decision(action)

	out, err := uc.transition(ctx, requestID, func(rr *rentrequest.RentRequest, now time.Time) error {
		if !rr.IsSeller(sellerID) {
			return ErrNotRequestSeller
		}
		return rr.Decide(decision, rejectionReason, now)
	})
	if err != nil {
		return nil, err
	}

	template := shared.TemplateRentRequestAccepted
	if out.request.Status() == rentrequest.StatusRejected {
		template = shared.TemplateRentRequestRejected
	}
	uc.notify(ctx, out.request.BuyerID(), template, out)
	return &RentRequestResult{RentRequestID: out.request.ID(), Status: out.request.Status()}, nil
}

func (uc *rentRequestUseCaseImpl) UpdateStatus(ctx context.Context, requestID, userID uuid.UUID, newStatus string) (res *RentRequestResult, err error) {
	ctx, span := uc.tracer.Start(ctx, "RentRequest.UpdateStatus", trace.WithAttributes(
		attribute.String("rent_request.id", requestID.String()),
		attribute.String("rent_request.new_status", newStatus),
	))
	defer func() { endSpan(span, err) }()

	to := rentrequest.Status(newStatus)

	out, err := uc.transition(ctx, requestID, func(rr *rentrequest.RentRequest, now time.Time) error {
		if !rr.IsSeller(userID) {
			return ErrOnlySellerUpdates
		}
		return rr.Advance(to, now)
	})
	if err != nil {
		return nil, err
	}

	switch out.request.Status() {
	case rentrequest.StatusCollected:
		uc.notify(ctx, out.request.BuyerID(), shared.TemplateRentRequestCollected, out)
	case rentrequest.StatusCompleted:
		uc.earnings.InvalidateSeller(ctx, out.request.SellerID(), *out.request.CompletedAt())
		uc.notify(ctx, out.request.BuyerID(), shared.TemplateRentRequestCompleted, out)
	}
	return &RentRequestResult{RentRequestID: out.request.ID(), Status: out.request.Status()}, nil
}

// transition locks the request, applies change and persists the new status
// together with any stock release and the lifecycle event.
func (uc *rentRequestUseCaseImpl) transition(
	ctx context.Context,
	requestID uuid.UUID,
	change func(rr *rentrequest.RentRequest, now time.Time) error,
) (transitionOutcome, error) {
	var out transitionOutcome
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := uc.clock.Now()

		rr, err := tx.RentRequests().GetForUpdate(ctx, requestID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrRentRequestNotFound
			}
			return err
		}
		if err := change(rr, now); err != nil {
			return err
		}
		if err := tx.RentRequests().UpdateStatus(ctx, rr); err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return errs.Newf(errs.KindInvalidTransition, "Request status changed concurrently")
			}
			return err
		}
		if released := rr.ReleasedQuantity(); released > 0 {
			if _, err := tx.Products().AdjustRemaining(ctx, rr.ProductID(), released); err != nil {
				return err
			}
		}
		if err := enqueueEvent(ctx, tx, eventFor(rr.Status()), rr, now); err != nil {
			return err
		}

		p, err := tx.Products().Get(ctx, rr.ProductID())
		if err != nil {
			return err
		}
		out = transitionOutcome{request: rr, productName: p.Name()}
		return nil
	})
	if err != nil {
		return out, errs.Internal(err)
	}
	uc.record(ctx, out.request)
	return out, nil
}

func (uc *rentRequestUseCaseImpl) record(ctx context.Context, rr *rentrequest.RentRequest) {
	if uc.transitions == nil {
		return
	}
	uc.transitions.Add(ctx, 1, metric.WithAttributes(attribute.String("status", rr.Status().String())))
}

// notify looks up the recipient and queues a templated email. Failures are
// logged and dropped.
func (uc *rentRequestUseCaseImpl) notify(ctx context.Context, recipientID uuid.UUID, kind shared.TemplateKind, out transitionOutcome) {
	recipient, err := uc.identity.GetUser(ctx, recipientID)
	if err != nil {
		slog.Warn("notification recipient lookup failed",
			slog.String("user_id", recipientID.String()),
			slog.String("template", string(kind)),
			slog.Any("error", err))
		return
	}
	uc.notifier.Notify(ctx, recipient.Email().Value(), kind, notificationPayload(out))
}

func notificationPayload(out transitionOutcome) map[string]any {
	rr := out.request
	payload := map[string]any{
		"rentRequestId": rr.ID().String(),
		"productName":   out.productName,
		"quantity":      rr.Quantity(),
		"startDate":     rr.StartDate().Format(rentrequest.DateLayout),
		"endDate":       rr.EndDate().Format(rentrequest.DateLayout),
		"totalDays":     rr.TotalDays(),
		"totalAmount":   rr.TotalAmount(),
		"status":        rr.Status().String(),
	}
	if reason := rr.RejectionReason(); reason != nil {
		payload["rejectionReason"] = *reason
	}
	return payload
}

func enqueueEvent(ctx context.Context, tx shared.Tx, typ shared.EventType, rr *rentrequest.RentRequest, now time.Time) error {
	payload, err := json.Marshal(shared.RentRequestEvent{
		Type:          typ,
		RentRequestID: rr.ID(),
		ProductID:     rr.ProductID(),
		BuyerID:       rr.BuyerID(),
		SellerID:      rr.SellerID(),
		Quantity:      rr.Quantity(),
		StartDate:     rr.StartDate().Format(rentrequest.DateLayout),
		EndDate:       rr.EndDate().Format(rentrequest.DateLayout),
		TotalAmount:   rr.TotalAmount(),
		Status:        rr.Status().String(),
		OccurredAt:    now,
	})
	if err != nil {
		return errs.Wrap(err, "marshal rent request event")
	}
	return tx.Outbox().Enqueue(ctx, shared.OutboxMessage{
		Topic:     shared.TopicRentRequestEvents,
		Key:       rr.ID().String(),
		Payload:   payload,
		CreatedAt: now,
	})
}

func eventFor(s rentrequest.Status) shared.EventType {
	switch s {
	case rentrequest.StatusAccepted:
		return shared.EventRentRequestAccepted
	case rentrequest.StatusRejected:
		return shared.EventRentRequestRejected
	case rentrequest.StatusCollected:
		return shared.EventRentRequestCollected
	case rentrequest.StatusCompleted:
		return shared.EventRentRequestCompleted
	default:
		return shared.EventRentRequestCreated
	}
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, string(errs.KindOf(err)))
	}
	span.End()
}

package shared

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

const (
	TopicEmail             = "email"
	TopicRentRequestEvents = "rent-request-events"
)

type OutboxStatus string

const (
	OutboxPending    OutboxStatus = "pending"
	OutboxProcessing OutboxStatus = "processing"
	OutboxDelivered  OutboxStatus = "delivered"
	OutboxFailed     OutboxStatus = "failed"
)

type OutboxMessage struct {
	ID        uuid.UUID
	Topic     string
	Key       string
	Payload   json.RawMessage
	Attempts  int
	CreatedAt time.Time
}

type TemplateKind string

const (
	TemplateRentRequestCreated   TemplateKind = "rent_request_created"
	TemplateRentRequestAccepted  TemplateKind = "rent_request_accepted"
	TemplateRentRequestRejected  TemplateKind = "rent_request_rejected"
	TemplateRentRequestCollected TemplateKind = "rent_request_collected"
	TemplateRentRequestCompleted TemplateKind = "rent_request_completed"
)

// EmailJob is the payload of an outbox message on TopicEmail.
type EmailJob struct {
	To       string         `json:"to"`
	Template TemplateKind   `json:"template"`
	Data     map[string]any `json:"data"`
}

type EventType string

const (
	EventRentRequestCreated   EventType = "rent_request.created"
	EventRentRequestAccepted  EventType = "rent_request.accepted"
	EventRentRequestRejected  EventType = "rent_request.rejected"
	EventRentRequestCollected EventType = "rent_request.collected"
	EventRentRequestCompleted EventType = "rent_request.completed"
)

// RentRequestEvent is the payload of an outbox message on TopicRentRequestEvents.
type RentRequestEvent struct {
	Type          EventType `json:"type"`
	RentRequestID uuid.UUID `json:"rentRequestId"`
	ProductID     uuid.UUID `json:"productId"`
	BuyerID       uuid.UUID `json:"buyerId"`
	SellerID      uuid.UUID `json:"sellerId"`
	Quantity      int       `json:"quantity"`
	StartDate     string    `json:"startDate"`
	EndDate       string    `json:"endDate"`
	TotalAmount   int64     `json:"totalAmount"`
	Status        string    `json:"status"`
	OccurredAt    time.Time `json:"occurredAt"`
}

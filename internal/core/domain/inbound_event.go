package domain

import (
	"time"

	"github.com/google/uuid"
)

// InboundKind separates payment callbacks from courier webhooks.
type InboundKind string

const (
	InboundKindPaymentCallback InboundKind = "PAYMENT_CALLBACK"
	InboundKindShipmentWebhook InboundKind = "SHIPMENT_WEBHOOK"
)

// InboundOutcome records what happened to a delivered notification. The
// sender always gets 200, so this row is where failures stay visible.
type InboundOutcome string

const (
	InboundOutcomeProcessed InboundOutcome = "PROCESSED"
	InboundOutcomeDuplicate InboundOutcome = "DUPLICATE"
	InboundOutcomeRejected  InboundOutcome = "REJECTED"
	InboundOutcomeUnmatched InboundOutcome = "UNMATCHED"
	InboundOutcomeFailed    InboundOutcome = "FAILED"
)

// InboundEvent is one received callback or webhook.
type InboundEvent struct {
	ID         uuid.UUID      `json:"id"`
	Provider   string         `json:"provider"`
	Kind       InboundKind    `json:"kind"`
	Reference  string         `json:"reference,omitempty"` // merchant txn id or AWB
	Payload    string         `json:"payload"`
	Outcome    InboundOutcome `json:"outcome"`
	Error      *string        `json:"error,omitempty"`
	ReceivedAt time.Time      `json:"received_at"`
}

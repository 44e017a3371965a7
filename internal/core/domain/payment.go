package domain

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentStatus is the lifecycle state of a payment transaction.
// INITIATED -> PENDING -> COMPLETED | FAILED.
type PaymentStatus string

const (
	PaymentStatusInitiated PaymentStatus = "INITIATED"
	PaymentStatusPending   PaymentStatus = "PENDING"
	PaymentStatusCompleted PaymentStatus = "COMPLETED"
	PaymentStatusFailed    PaymentStatus = "FAILED"
)

// IsTerminal reports whether no further transition is allowed.
func (s PaymentStatus) IsTerminal() bool {
	return s == PaymentStatusCompleted || s == PaymentStatusFailed
}

// PaymentTransaction is one attempt to collect money for an order through an
// external gateway. Rows are never deleted.
type PaymentTransaction struct {
	ID                    uuid.UUID       `json:"id"`
	MerchantTransactionID string          `json:"merchant_transaction_id"`
	OrderID               uuid.UUID       `json:"order_id"`
	Provider              string          `json:"provider"`
	Amount                decimal.Decimal `json:"amount"` // major units, e.g. 149.50
	Currency              string          `json:"currency"`
	PaymentMethod         string          `json:"payment_method"`
	GatewayOrderID        *string         `json:"gateway_order_id,omitempty"`
	GatewayTransactionID  *string         `json:"gateway_transaction_id,omitempty"`
	Status                PaymentStatus   `json:"status"`
	InitiationResponse    json.RawMessage `json:"-"`
	CallbackResponse      json.RawMessage `json:"-"`
	StatusResponse        json.RawMessage `json:"-"`
	ErrorCode             *string         `json:"error_code,omitempty"`
	ErrorMessage          *string         `json:"error_message,omitempty"`
	RefundID              *string         `json:"refund_id,omitempty"`
	RefundedAt            *time.Time      `json:"refunded_at,omitempty"`
	InitiatedAt           time.Time       `json:"initiated_at"`
	UpdatedAt             time.Time       `json:"updated_at"`
	CompletedAt           *time.Time      `json:"completed_at,omitempty"`
}

// IsTerminal returns true if the transaction is in a final state.
func (p *PaymentTransaction) IsTerminal() bool {
	return p.Status.IsTerminal()
}

// IsRefundable returns true if a completed payment has not been refunded yet.
func (p *PaymentTransaction) IsRefundable() bool {
	return p.Status == PaymentStatusCompleted && p.RefundID == nil
}

// NewMerchantTransactionID returns a fresh correlation id for the gateway.
func NewMerchantTransactionID() string {
	return "MT" + strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
}

// NewMerchantRefundID returns a fresh id for a refund request.
func NewMerchantRefundID() string {
	return "RF" + strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
}

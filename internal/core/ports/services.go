package ports

import (
	"context"
	"net/http"
	"time"

	"commerce-reconciler/internal/core/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SignatureService signs and verifies raw webhook bodies with a shared secret.
type SignatureService interface {
	Sign(secret string, body []byte) string
	Verify(secret string, body []byte, signature string) bool
}

// WaybillPool holds surplus courier waybills shared by all instances.
type WaybillPool interface {
	Push(ctx context.Context, provider string, waybills ...string) error
	// Pop removes up to n waybills in FIFO order.
	Pop(ctx context.Context, provider string, n int) ([]string, error)
}

// Notifier sends customer-facing payment notifications.
type Notifier interface {
	PaymentSucceeded(ctx context.Context, order *domain.Order, txn *domain.PaymentTransaction) error
	PaymentFailed(ctx context.Context, order *domain.Order, txn *domain.PaymentTransaction) error
}

// Alerter escalates failures that need an operator.
type Alerter interface {
	Alert(ctx context.Context, subject, message string) error
}

// AuditService records admin actions.
type AuditService interface {
	Log(ctx context.Context, entry *domain.AuditLog)
}

// --- Service Ports (Business Logic) ---

// PaymentOrchestrator resolves a gateway by provider name and delegates.
type PaymentOrchestrator interface {
	Providers() []string
	Initiate(ctx context.Context, provider string, req InitiatePaymentRequest) (*InitiatePaymentResult, error)
	VerifyCallback(ctx context.Context, provider string, body []byte, headers http.Header) (*PaymentCallback, error)
	CheckStatus(ctx context.Context, provider string, q PaymentStatusQuery) (*PaymentStatusResult, error)
	Refund(ctx context.Context, provider string, req RefundRequest) (*RefundResult, error)
}

// PaymentReconciler owns the payment transaction lifecycle.
type PaymentReconciler interface {
	Initiate(ctx context.Context, req CheckoutRequest) (*CheckoutResult, error)
	HandleCallback(ctx context.Context, provider string, body []byte, headers http.Header) (*domain.PaymentTransaction, error)
	CheckStatus(ctx context.Context, merchantTxnID string) (*domain.PaymentTransaction, error)
	Refund(ctx context.Context, merchantTxnID string) (*domain.PaymentTransaction, error)
}

// CheckoutRequest starts a payment. PrincipalID is the authenticated customer;
// uuid.Nil skips the ownership check (internal callers).
type CheckoutRequest struct {
	OrderID     uuid.UUID
	Amount      decimal.Decimal
	Provider    string
	Method      string
	PrincipalID uuid.UUID
	Customer    CustomerInfo
}

type CheckoutResult struct {
	MerchantTransactionID string
	RedirectURL           string
	Status                domain.PaymentStatus
	ExpiresAt             *time.Time
}

// ShipmentReconciler owns the shipment lifecycle.
type ShipmentReconciler interface {
	CheckServiceability(ctx context.Context, pincode string) (*ServiceabilityResult, error)
	CreateShipment(ctx context.Context, orderID uuid.UUID) (*domain.Shipment, error)
	IngestWebhook(ctx context.Context, body []byte, headers http.Header) (*WebhookOutcome, error)
	TrackShipment(ctx context.Context, awb string) (*ShipmentTracking, error)
	CancelShipment(ctx context.Context, awb string) (*domain.Shipment, error)
	EditShipment(ctx context.Context, req EditShipmentRequest) (*domain.Shipment, error)
	SchedulePickup(ctx context.Context, req PickupInput) (*domain.PickupRequest, error)
}

// WebhookOutcome tells the caller what ingestion did. Errors that must not be
// retried by the courier (unknown AWB) come back here, not as an error.
type WebhookOutcome struct {
	AWB     string
	Outcome domain.InboundOutcome
	Status  domain.ShipmentStatus
	Detail  string
}

type ShipmentTracking struct {
	Shipment *domain.Shipment
	Events   []domain.ShipmentTrackingEvent
}

// PickupBatcher requests one courier pickup for the day's pending parcels.
type PickupBatcher interface {
	SelectAndSchedule(ctx context.Context) (*PickupBatchResult, error)
}

type PickupBatchResult struct {
	Scheduled bool
	Count     int
	Pickup    *domain.PickupRequest
}

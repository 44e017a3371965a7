package ports

import (
	"context"
	"encoding/json"
	"time"

	"commerce-reconciler/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// PaymentTransactionRepository persists payment transactions.
// Every state-changing method is conditional on the current status and
// reports whether the row actually moved, so concurrent callbacks for the
// same transaction settle it exactly once.
type PaymentTransactionRepository interface {
	Create(ctx context.Context, txn *domain.PaymentTransaction) error
	GetByMerchantTxnID(ctx context.Context, merchantTxnID string) (*domain.PaymentTransaction, error)
	MarkPending(ctx context.Context, merchantTxnID, gatewayOrderID string, raw json.RawMessage) (bool, error)
	MarkInitiationFailed(ctx context.Context, merchantTxnID, code, message string, raw json.RawMessage) (bool, error)
	Settle(ctx context.Context, s PaymentSettlement) (bool, error)
	SaveStatusResponse(ctx context.Context, merchantTxnID string, raw json.RawMessage) error
	MarkRefunded(ctx context.Context, merchantTxnID, refundID string, at time.Time) (bool, error)
}

// SettlementSource says which raw-response column a settlement is stored in.
type SettlementSource string

const (
	SettlementFromCallback    SettlementSource = "callback"
	SettlementFromStatusCheck SettlementSource = "status_check"
)

// PaymentSettlement moves a non-terminal transaction to COMPLETED or FAILED.
type PaymentSettlement struct {
	MerchantTransactionID string
	Status                domain.PaymentStatus
	GatewayTransactionID  *string
	ErrorCode             *string
	ErrorMessage          *string
	SettledAt             time.Time
	Source                SettlementSource
	Raw                   json.RawMessage
}

// OrderRepository reads orders and writes the fields this service owns.
type OrderRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Order, error)
	// UpdatePaymentStatus also promotes a pending order to processing on PAID.
	UpdatePaymentStatus(ctx context.Context, id uuid.UUID, status domain.OrderPaymentStatus) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.OrderStatus) error
	SetTracking(ctx context.Context, id uuid.UUID, trackingNumber, trackingURL string) error
}

// ShipmentRepository persists shipments.
type ShipmentRepository interface {
	Create(ctx context.Context, s *domain.Shipment) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Shipment, error)
	GetByAWB(ctx context.Context, awb string) (*domain.Shipment, error)
	// GetActiveByOrderID returns the order's non-cancelled shipment, if any.
	GetActiveByOrderID(ctx context.Context, orderID uuid.UUID) (*domain.Shipment, error)
	// ApplyScan updates status and last-scan fields unless the shipment is
	// terminal or already holds a newer scan.
	ApplyScan(ctx context.Context, tx pgx.Tx, scan ShipmentScan) (bool, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ShipmentStatus) (bool, error)
	UpdateWeight(ctx context.Context, id uuid.UUID, weightGrams int) error
	// ListPickupCandidates returns PENDING shipments created in [from, to)
	// with no pickup date.
	ListPickupCandidates(ctx context.Context, from, to time.Time) ([]domain.Shipment, error)
	MarkPickupScheduled(ctx context.Context, tx pgx.Tx, ids []uuid.UUID, pickupRequestID uuid.UUID, date time.Time, at string) (int64, error)
}

// ShipmentScan is the shipment-side effect of one tracking event.
type ShipmentScan struct {
	ShipmentID uuid.UUID
	Status     domain.ShipmentStatus
	ScanStatus string
	Location   string
	ScannedAt  time.Time
}

// TrackingEventRepository is append-only.
type TrackingEventRepository interface {
	Exists(ctx context.Context, shipmentID uuid.UUID, scannedAt time.Time) (bool, error)
	// Insert returns false when (shipment, scan time) is already stored.
	Insert(ctx context.Context, tx pgx.Tx, e *domain.ShipmentTrackingEvent) (bool, error)
	ListByShipment(ctx context.Context, shipmentID uuid.UUID) ([]domain.ShipmentTrackingEvent, error)
}

// PickupRepository persists courier pickup requests. A nil tx writes through the pool.
type PickupRepository interface {
	Create(ctx context.Context, tx pgx.Tx, req *domain.PickupRequest) error
}

// InboundEventRepository records every callback and webhook received.
type InboundEventRepository interface {
	Create(ctx context.Context, e *domain.InboundEvent) error
}

// AuditRepository persists admin audit entries.
type AuditRepository interface {
	Create(ctx context.Context, log *domain.AuditLog) error
}

// DBTransactor provides database transaction management.
type DBTransactor interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

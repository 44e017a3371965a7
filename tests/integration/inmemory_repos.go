package integration

import (
	"context"
	"encoding/json"
	"sort"
	"sync"
	"time"

	"commerce-reconciler/internal/core/domain"
	"commerce-reconciler/internal/core/ports"
	"commerce-reconciler/pkg/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// The in-memory repos keep the conditional-update semantics of the SQL
// ones: every state change checks the current row under the lock.

// --- Payments ---

type inMemoryPaymentRepo struct {
	mu   sync.Mutex
	txns map[string]*domain.PaymentTransaction
}

func newInMemoryPaymentRepo() *inMemoryPaymentRepo {
	return &inMemoryPaymentRepo{txns: make(map[string]*domain.PaymentTransaction)}
}

func (r *inMemoryPaymentRepo) Create(_ context.Context, txn *domain.PaymentTransaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.txns[txn.MerchantTransactionID]; ok {
		return apperror.ErrConflict("Payment transaction")
	}
	cp := *txn
	r.txns[txn.MerchantTransactionID] = &cp
	return nil
}

func (r *inMemoryPaymentRepo) GetByMerchantTxnID(_ context.Context, id string) (*domain.PaymentTransaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.txns[id]
	if !ok {
		return nil, nil
	}
	cp := *t
	return &cp, nil
}

func (r *inMemoryPaymentRepo) open(id string) (*domain.PaymentTransaction, bool) {
	t, ok := r.txns[id]
	if !ok || t.Status.IsTerminal() {
		return nil, false
	}
	return t, true
}

func (r *inMemoryPaymentRepo) MarkPending(_ context.Context, id, gatewayOrderID string, raw json.RawMessage) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.txns[id]
	if !ok || t.Status != domain.PaymentStatusInitiated {
		return false, nil
	}
	t.Status = domain.PaymentStatusPending
	t.GatewayOrderID = &gatewayOrderID
	t.InitiationResponse = raw
	return true, nil
}

func (r *inMemoryPaymentRepo) MarkInitiationFailed(_ context.Context, id, code, message string, raw json.RawMessage) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.txns[id]
	if !ok || t.Status != domain.PaymentStatusInitiated {
		return false, nil
	}
	t.Status = domain.PaymentStatusFailed
	t.ErrorCode = &code
	t.ErrorMessage = &message
	t.InitiationResponse = raw
	return true, nil
}

func (r *inMemoryPaymentRepo) Settle(_ context.Context, s ports.PaymentSettlement) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.open(s.MerchantTransactionID)
	if !ok {
		return false, nil
	}
	t.Status = s.Status
	if s.GatewayTransactionID != nil {
		t.GatewayTransactionID = s.GatewayTransactionID
	}
	t.ErrorCode = s.ErrorCode
	t.ErrorMessage = s.ErrorMessage
	at := s.SettledAt
	t.CompletedAt = &at
	if s.Source == ports.SettlementFromStatusCheck {
		t.StatusResponse = s.Raw
	} else {
		t.CallbackResponse = s.Raw
	}
	return true, nil
}

func (r *inMemoryPaymentRepo) SaveStatusResponse(_ context.Context, id string, raw json.RawMessage) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if t, ok := r.txns[id]; ok {
		t.StatusResponse = raw
	}
	return nil
}

func (r *inMemoryPaymentRepo) MarkRefunded(_ context.Context, id, refundID string, at time.Time) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.txns[id]
	if !ok || t.Status != domain.PaymentStatusCompleted || t.RefundID != nil {
		return false, nil
	}
	t.RefundID = &refundID
	t.RefundedAt = &at
	return true, nil
}

// --- Orders ---

type inMemoryOrderRepo struct {
	mu     sync.Mutex
	orders map[uuid.UUID]*domain.Order
}

func newInMemoryOrderRepo(orders ...*domain.Order) *inMemoryOrderRepo {
	r := &inMemoryOrderRepo{orders: make(map[uuid.UUID]*domain.Order)}
	for _, o := range orders {
		r.orders[o.ID] = o
	}
	return r
}

func (r *inMemoryOrderRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.orders[id]
	if !ok {
		return nil, nil
	}
	cp := *o
	return &cp, nil
}

func (r *inMemoryOrderRepo) UpdatePaymentStatus(_ context.Context, id uuid.UUID, status domain.OrderPaymentStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if o, ok := r.orders[id]; ok {
		o.PaymentStatus = status
		if status == domain.OrderPaymentPaid && o.Status == domain.OrderStatusPending {
			o.Status = domain.OrderStatusProcessing
		}
	}
	return nil
}

func (r *inMemoryOrderRepo) UpdateStatus(_ context.Context, id uuid.UUID, status domain.OrderStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if o, ok := r.orders[id]; ok {
		o.Status = status
	}
	return nil
}

func (r *inMemoryOrderRepo) SetTracking(_ context.Context, id uuid.UUID, trackingNumber, trackingURL string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if o, ok := r.orders[id]; ok {
		o.TrackingNumber = &trackingNumber
		o.TrackingURL = &trackingURL
	}
	return nil
}

// --- Shipments ---

type inMemoryShipmentRepo struct {
	mu        sync.Mutex
	shipments map[uuid.UUID]*domain.Shipment
}

func newInMemoryShipmentRepo() *inMemoryShipmentRepo {
	return &inMemoryShipmentRepo{shipments: make(map[uuid.UUID]*domain.Shipment)}
}

func (r *inMemoryShipmentRepo) Create(_ context.Context, s *domain.Shipment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.shipments {
		if existing.AWB == s.AWB || (existing.OrderID == s.OrderID && existing.Status != domain.ShipmentStatusCancelled) {
			return apperror.ErrConflict("Shipment")
		}
	}
	cp := *s
	r.shipments[s.ID] = &cp
	return nil
}

func (r *inMemoryShipmentRepo) find(match func(*domain.Shipment) bool) *domain.Shipment {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range r.shipments {
		if match(s) {
			cp := *s
			return &cp
		}
	}
	return nil
}

func (r *inMemoryShipmentRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Shipment, error) {
	return r.find(func(s *domain.Shipment) bool { return s.ID == id }), nil
}

func (r *inMemoryShipmentRepo) GetByAWB(_ context.Context, awb string) (*domain.Shipment, error) {
	return r.find(func(s *domain.Shipment) bool { return s.AWB == awb }), nil
}

func (r *inMemoryShipmentRepo) GetActiveByOrderID(_ context.Context, orderID uuid.UUID) (*domain.Shipment, error) {
	return r.find(func(s *domain.Shipment) bool {
		return s.OrderID == orderID && s.Status != domain.ShipmentStatusCancelled
	}), nil
}

func (r *inMemoryShipmentRepo) ApplyScan(_ context.Context, _ pgx.Tx, scan ports.ShipmentScan) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.shipments[scan.ShipmentID]
	if !ok || s.Status.IsTerminal() || (s.LastScanAt != nil && s.LastScanAt.After(scan.ScannedAt)) {
		return false, nil
	}
	s.Status = scan.Status
	s.LastScanStatus = &scan.ScanStatus
	s.CurrentLocation = &scan.Location
	at := scan.ScannedAt
	s.LastScanAt = &at
	return true, nil
}

func (r *inMemoryShipmentRepo) UpdateStatus(_ context.Context, id uuid.UUID, status domain.ShipmentStatus) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.shipments[id]
	if !ok || s.Status.IsTerminal() {
		return false, nil
	}
	s.Status = status
	return true, nil
}

func (r *inMemoryShipmentRepo) UpdateWeight(_ context.Context, id uuid.UUID, weightGrams int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok := r.shipments[id]; ok {
		s.WeightGrams = weightGrams
	}
	return nil
}

func (r *inMemoryShipmentRepo) ListPickupCandidates(_ context.Context, from, to time.Time) ([]domain.Shipment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.Shipment
	for _, s := range r.shipments {
		if (s.Status == domain.ShipmentStatusPending || s.Status == domain.ShipmentStatusManifested) &&
			s.PickupDate == nil && !s.CreatedAt.Before(from) && s.CreatedAt.Before(to) {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (r *inMemoryShipmentRepo) MarkPickupScheduled(_ context.Context, _ pgx.Tx, ids []uuid.UUID, pickupRequestID uuid.UUID, date time.Time, at string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, id := range ids {
		s, ok := r.shipments[id]
		if !ok || s.PickupDate != nil {
			continue
		}
		d, t, pid := date, at, pickupRequestID
		s.PickupDate, s.PickupTime, s.PickupRequestID = &d, &t, &pid
		s.Status = domain.ShipmentStatusPickupScheduled
		n++
	}
	return n, nil
}

// --- Tracking events ---

type inMemoryTrackingRepo struct {
	mu     sync.Mutex
	events []domain.ShipmentTrackingEvent
}

func (r *inMemoryTrackingRepo) Exists(_ context.Context, shipmentID uuid.UUID, scannedAt time.Time) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.events {
		if e.ShipmentID == shipmentID && e.ScannedAt.Equal(scannedAt) {
			return true, nil
		}
	}
	return false, nil
}

func (r *inMemoryTrackingRepo) Insert(_ context.Context, _ pgx.Tx, e *domain.ShipmentTrackingEvent) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.events {
		if existing.ShipmentID == e.ShipmentID && existing.ScannedAt.Equal(e.ScannedAt) {
			return false, nil
		}
	}
	r.events = append(r.events, *e)
	return true, nil
}

func (r *inMemoryTrackingRepo) ListByShipment(_ context.Context, shipmentID uuid.UUID) ([]domain.ShipmentTrackingEvent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.ShipmentTrackingEvent
	for _, e := range r.events {
		if e.ShipmentID == shipmentID {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ScannedAt.Before(out[j].ScannedAt) })
	return out, nil
}

// --- Pickups, inbound events, audit ---

type inMemoryPickupRepo struct {
	mu      sync.Mutex
	pickups []domain.PickupRequest
}

func (r *inMemoryPickupRepo) Create(_ context.Context, _ pgx.Tx, req *domain.PickupRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pickups = append(r.pickups, *req)
	return nil
}

type inMemoryInboundRepo struct {
	mu     sync.Mutex
	events []domain.InboundEvent
}

func (r *inMemoryInboundRepo) Create(_ context.Context, e *domain.InboundEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, *e)
	return nil
}

func (r *inMemoryInboundRepo) outcomes() map[domain.InboundOutcome]int {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make(map[domain.InboundOutcome]int)
	for _, e := range r.events {
		out[e.Outcome]++
	}
	return out
}

// --- In-Memory Transactor (no-op tx) ---

type inMemoryTransactor struct{}

func (t *inMemoryTransactor) Begin(ctx context.Context) (pgx.Tx, error) {
	return &noopTx{}, nil
}

// noopTx is a no-op pgx.Tx implementation for in-memory testing.
type noopTx struct{}

func (t *noopTx) Begin(ctx context.Context) (pgx.Tx, error) { return t, nil }
func (t *noopTx) Commit(ctx context.Context) error          { return nil }
func (t *noopTx) Rollback(ctx context.Context) error        { return nil }
func (t *noopTx) CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error) {
	return 0, nil
}
func (t *noopTx) SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults { return nil }
func (t *noopTx) LargeObjects() pgx.LargeObjects                               { return pgx.LargeObjects{} }
func (t *noopTx) Prepare(ctx context.Context, name, sql string) (*pgconn.StatementDescription, error) {
	return nil, nil
}
func (t *noopTx) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.NewCommandTag(""), nil
}
func (t *noopTx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}
func (t *noopTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return nil
}
func (t *noopTx) Conn() *pgx.Conn { return nil }

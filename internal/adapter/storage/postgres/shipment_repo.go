package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"commerce-reconciler/internal/core/domain"
	"commerce-reconciler/internal/core/ports"
	"commerce-reconciler/pkg/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const shipmentColumns = `id, order_id, provider, awb, payment_mode, cod_amount, weight_grams, length_cm, breadth_cm, height_cm,
		status, current_location, last_scan_status, last_scan_at, pickup_date, pickup_time, pickup_request_id,
		tracking_url, gateway_response, created_at, updated_at`

// ShipmentRepo implements ports.ShipmentRepository.
type ShipmentRepo struct {
	pool Pool
}

func NewShipmentRepo(pool Pool) *ShipmentRepo {
	return &ShipmentRepo{pool: pool}
}

// Create inserts a shipment. The partial unique index on order_id (for
// non-cancelled rows) and the unique awb turn a racing duplicate into a
// ConflictError.
func (r *ShipmentRepo) Create(ctx context.Context, s *domain.Shipment) error {
	query := `INSERT INTO shipments (` + shipmentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21)`

	_, err := r.pool.Exec(ctx, query,
		s.ID, s.OrderID, s.Provider, s.AWB, s.PaymentMode, s.CODAmount, s.WeightGrams, s.LengthCM, s.BreadthCM, s.HeightCM,
		s.Status, s.CurrentLocation, s.LastScanStatus, s.LastScanAt, s.PickupDate, s.PickupTime, s.PickupRequestID,
		s.TrackingURL, s.GatewayResponse, s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperror.ErrConflict("Shipment")
		}
		return fmt.Errorf("insert shipment: %w", err)
	}
	return nil
}

func (r *ShipmentRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Shipment, error) {
	query := `SELECT ` + shipmentColumns + ` FROM shipments WHERE id = $1`
	return scanShipment(r.pool.QueryRow(ctx, query, id))
}

func (r *ShipmentRepo) GetByAWB(ctx context.Context, awb string) (*domain.Shipment, error) {
	query := `SELECT ` + shipmentColumns + ` FROM shipments WHERE awb = $1`
	return scanShipment(r.pool.QueryRow(ctx, query, awb))
}

func (r *ShipmentRepo) GetActiveByOrderID(ctx context.Context, orderID uuid.UUID) (*domain.Shipment, error) {
	query := `SELECT ` + shipmentColumns + ` FROM shipments
		WHERE order_id = $1 AND status <> 'CANCELLED'
		ORDER BY created_at DESC LIMIT 1`
	return scanShipment(r.pool.QueryRow(ctx, query, orderID))
}

// ApplyScan moves the shipment to the scan's status. Terminal shipments
// and scans older than the last applied one are ignored.
func (r *ShipmentRepo) ApplyScan(ctx context.Context, tx pgx.Tx, scan ports.ShipmentScan) (bool, error) {
	query := `UPDATE shipments
		SET status = $2, last_scan_status = $3, current_location = $4, last_scan_at = $5, updated_at = NOW()
		WHERE id = $1
			AND status NOT IN ('DELIVERED', 'RTO', 'CANCELLED')
			AND (last_scan_at IS NULL OR last_scan_at <= $5)`

	tag, err := tx.Exec(ctx, query, scan.ShipmentID, scan.Status, scan.ScanStatus, scan.Location, scan.ScannedAt)
	if err != nil {
		return false, fmt.Errorf("apply shipment scan: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// UpdateStatus sets a status on a non-terminal shipment.
func (r *ShipmentRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ShipmentStatus) (bool, error) {
	query := `UPDATE shipments SET status = $2, updated_at = NOW()
		WHERE id = $1 AND status NOT IN ('DELIVERED', 'RTO', 'CANCELLED')`

	tag, err := r.pool.Exec(ctx, query, id, status)
	if err != nil {
		return false, fmt.Errorf("update shipment status: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *ShipmentRepo) UpdateWeight(ctx context.Context, id uuid.UUID, weightGrams int) error {
	query := `UPDATE shipments SET weight_grams = $2, updated_at = NOW() WHERE id = $1`
	if _, err := r.pool.Exec(ctx, query, id, weightGrams); err != nil {
		return fmt.Errorf("update shipment weight: %w", err)
	}
	return nil
}

// ListPickupCandidates returns shipments awaiting collection that were
// created in [from, to) and have no pickup date yet.
func (r *ShipmentRepo) ListPickupCandidates(ctx context.Context, from, to time.Time) ([]domain.Shipment, error) {
	query := `SELECT ` + shipmentColumns + ` FROM shipments
		WHERE status IN ('PENDING', 'MANIFESTED') AND pickup_date IS NULL
			AND created_at >= $1 AND created_at < $2
		ORDER BY created_at`

	rows, err := r.pool.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("list pickup candidates: %w", err)
	}
	defer rows.Close()

	var out []domain.Shipment
	for rows.Next() {
		s, err := scanShipment(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate pickup candidates: %w", err)
	}
	return out, nil
}

// MarkPickupScheduled stamps the batch onto the selected shipments. Rows
// that picked up a date in the meantime are skipped.
func (r *ShipmentRepo) MarkPickupScheduled(ctx context.Context, tx pgx.Tx, ids []uuid.UUID, pickupRequestID uuid.UUID, date time.Time, at string) (int64, error) {
	query := `UPDATE shipments
		SET status = 'PICKUP_SCHEDULED', pickup_date = $2, pickup_time = $3, pickup_request_id = $4, updated_at = NOW()
		WHERE id = ANY($1) AND pickup_date IS NULL`

	tag, err := tx.Exec(ctx, query, ids, date, at, pickupRequestID)
	if err != nil {
		return 0, fmt.Errorf("mark pickup scheduled: %w", err)
	}
	return tag.RowsAffected(), nil
}

func scanShipment(row pgx.Row) (*domain.Shipment, error) {
	s := &domain.Shipment{}
	err := row.Scan(
		&s.ID, &s.OrderID, &s.Provider, &s.AWB, &s.PaymentMode, &s.CODAmount, &s.WeightGrams, &s.LengthCM, &s.BreadthCM, &s.HeightCM,
		&s.Status, &s.CurrentLocation, &s.LastScanStatus, &s.LastScanAt, &s.PickupDate, &s.PickupTime, &s.PickupRequestID,
		&s.TrackingURL, &s.GatewayResponse, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan shipment: %w", err)
	}
	return s, nil
}

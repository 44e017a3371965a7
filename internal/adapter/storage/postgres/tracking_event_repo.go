package postgres

import (
	"context"
	"fmt"
	"time"

	"commerce-reconciler/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// TrackingEventRepo implements ports.TrackingEventRepository. Rows are
// unique on (shipment_id, scanned_at).
type TrackingEventRepo struct {
	pool Pool
}

func NewTrackingEventRepo(pool Pool) *TrackingEventRepo {
	return &TrackingEventRepo{pool: pool}
}

func (r *TrackingEventRepo) Exists(ctx context.Context, shipmentID uuid.UUID, scannedAt time.Time) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM shipment_tracking_events WHERE shipment_id = $1 AND scanned_at = $2)`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, shipmentID, scannedAt).Scan(&exists); err != nil {
		return false, fmt.Errorf("check tracking event exists: %w", err)
	}
	return exists, nil
}

// Insert appends an event. It returns false when a concurrent delivery of
// the same scan got there first.
func (r *TrackingEventRepo) Insert(ctx context.Context, tx pgx.Tx, e *domain.ShipmentTrackingEvent) (bool, error) {
	query := `INSERT INTO shipment_tracking_events
		(id, shipment_id, status, status_type, location, scanned_at, instructions, raw_payload, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (shipment_id, scanned_at) DO NOTHING`

	tag, err := tx.Exec(ctx, query,
		e.ID, e.ShipmentID, e.Status, e.StatusType, e.Location, e.ScannedAt, e.Instructions, e.RawPayload, e.CreatedAt,
	)
	if err != nil {
		return false, fmt.Errorf("insert tracking event: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *TrackingEventRepo) ListByShipment(ctx context.Context, shipmentID uuid.UUID) ([]domain.ShipmentTrackingEvent, error) {
	query := `SELECT id, shipment_id, status, status_type, location, scanned_at, instructions, created_at
		FROM shipment_tracking_events WHERE shipment_id = $1 ORDER BY scanned_at DESC`

	rows, err := r.pool.Query(ctx, query, shipmentID)
	if err != nil {
		return nil, fmt.Errorf("list tracking events: %w", err)
	}
	defer rows.Close()

	var events []domain.ShipmentTrackingEvent
	for rows.Next() {
		var e domain.ShipmentTrackingEvent
		if err := rows.Scan(&e.ID, &e.ShipmentID, &e.Status, &e.StatusType, &e.Location, &e.ScannedAt, &e.Instructions, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan tracking event: %w", err)
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

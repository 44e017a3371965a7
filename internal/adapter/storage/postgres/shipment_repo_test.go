package postgres

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"commerce-reconciler/internal/core/domain"
	"commerce-reconciler/internal/core/ports"
	"commerce-reconciler/pkg/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestShipment() *domain.Shipment {
	now := time.Now().UTC().Truncate(time.Microsecond)
	return &domain.Shipment{
		ID:              uuid.New(),
		OrderID:         uuid.New(),
		Provider:        "DELHIVERY",
		AWB:             "1234567890123",
		PaymentMode:     domain.PaymentModeCOD,
		CODAmount:       decimal.RequireFromString("499"),
		WeightGrams:     500,
		Status:          domain.ShipmentStatusManifested,
		TrackingURL:     "https://www.delhivery.com/track/package/1234567890123",
		GatewayResponse: json.RawMessage(`{"success":true}`),
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

func shipmentArgs(s *domain.Shipment) []any {
	return []any{
		s.ID, s.OrderID, s.Provider, s.AWB, s.PaymentMode, s.CODAmount, s.WeightGrams, s.LengthCM, s.BreadthCM, s.HeightCM,
		s.Status, s.CurrentLocation, s.LastScanStatus, s.LastScanAt, s.PickupDate, s.PickupTime, s.PickupRequestID,
		s.TrackingURL, s.GatewayResponse, s.CreatedAt, s.UpdatedAt,
	}
}

func shipmentRows(ss ...*domain.Shipment) *pgxmock.Rows {
	rows := pgxmock.NewRows([]string{"id", "order_id", "provider", "awb", "payment_mode", "cod_amount", "weight_grams",
		"length_cm", "breadth_cm", "height_cm", "status", "current_location", "last_scan_status", "last_scan_at",
		"pickup_date", "pickup_time", "pickup_request_id", "tracking_url", "gateway_response", "created_at", "updated_at"})
	for _, s := range ss {
		rows.AddRow(shipmentArgs(s)...)
	}
	return rows
}

func TestShipmentRepo_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	s := newTestShipment()
	mock.ExpectExec("INSERT INTO shipments").
		WithArgs(shipmentArgs(s)...).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	assert.NoError(t, NewShipmentRepo(mock).Create(context.Background(), s))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestShipmentRepo_Create_SecondActiveShipmentIsConflict(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec("INSERT INTO shipments").
		WithArgs(anyArgs(21)...).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "uq_shipments_active_order"})

	err = NewShipmentRepo(mock).Create(context.Background(), newTestShipment())
	assert.Equal(t, apperror.CodeConflict, apperror.CodeOf(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestShipmentRepo_Lookups(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	s := newTestShipment()
	repo := NewShipmentRepo(mock)

	mock.ExpectQuery("FROM shipments WHERE awb").WithArgs(s.AWB).WillReturnRows(shipmentRows(s))
	mock.ExpectQuery("WHERE order_id = \\$1 AND status <> 'CANCELLED'").WithArgs(s.OrderID).WillReturnRows(shipmentRows(s))
	mock.ExpectQuery("FROM shipments WHERE id").WithArgs(s.ID).WillReturnRows(shipmentRows(s))

	got, err := repo.GetByAWB(context.Background(), s.AWB)
	require.NoError(t, err)
	assert.Equal(t, s.ID, got.ID)
	assert.True(t, s.CODAmount.Equal(got.CODAmount))

	got, err = repo.GetActiveByOrderID(context.Background(), s.OrderID)
	require.NoError(t, err)
	assert.Equal(t, s.AWB, got.AWB)

	got, err = repo.GetByID(context.Background(), s.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ShipmentStatusManifested, got.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestShipmentRepo_ApplyScan(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	scan := ports.ShipmentScan{
		ShipmentID: uuid.New(),
		Status:     domain.ShipmentStatusDelivered,
		ScanStatus: "Delivered",
		Location:   "Bengaluru",
		ScannedAt:  time.Date(2024, 1, 17, 11, 15, 0, 0, time.UTC),
	}

	mock.ExpectBegin()
	mock.ExpectExec("NOT IN \\('DELIVERED', 'RTO', 'CANCELLED'\\)").
		WithArgs(scan.ShipmentID, scan.Status, scan.ScanStatus, scan.Location, scan.ScannedAt).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectExec("last_scan_at <= \\$5").
		WithArgs(scan.ShipmentID, scan.Status, scan.ScanStatus, scan.Location, scan.ScannedAt).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	mock.ExpectCommit()

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	repo := NewShipmentRepo(mock)
	applied, err := repo.ApplyScan(context.Background(), tx, scan)
	require.NoError(t, err)
	assert.True(t, applied)

	applied, err = repo.ApplyScan(context.Background(), tx, scan)
	require.NoError(t, err)
	assert.False(t, applied, "terminal or newer scan already stored")

	require.NoError(t, tx.Commit(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestShipmentRepo_UpdateStatus(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	id := uuid.New()
	mock.ExpectExec("UPDATE shipments SET status").
		WithArgs(id, domain.ShipmentStatusCancelled).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectExec("UPDATE shipments SET weight_grams").
		WithArgs(id, 750).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	repo := NewShipmentRepo(mock)
	moved, err := repo.UpdateStatus(context.Background(), id, domain.ShipmentStatusCancelled)
	require.NoError(t, err)
	assert.True(t, moved)
	assert.NoError(t, repo.UpdateWeight(context.Background(), id, 750))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestShipmentRepo_Pickup(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	a, b := newTestShipment(), newTestShipment()
	from := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	to := from.Add(24 * time.Hour)
	pickupID := uuid.New()
	date := to

	mock.ExpectQuery("status IN \\('PENDING', 'MANIFESTED'\\) AND pickup_date IS NULL").
		WithArgs(from, to).
		WillReturnRows(shipmentRows(a, b))
	mock.ExpectBegin()
	mock.ExpectExec("SET status = 'PICKUP_SCHEDULED'").
		WithArgs([]uuid.UUID{a.ID, b.ID}, date, "11:00:00", pickupID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 2))
	mock.ExpectCommit()

	repo := NewShipmentRepo(mock)
	got, err := repo.ListPickupCandidates(context.Background(), from, to)
	require.NoError(t, err)
	require.Len(t, got, 2)

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)
	n, err := repo.MarkPickupScheduled(context.Background(), tx, []uuid.UUID{a.ID, b.ID}, pickupID, date, "11:00:00")
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
	require.NoError(t, tx.Commit(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

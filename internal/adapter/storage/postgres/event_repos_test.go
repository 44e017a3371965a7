package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"commerce-reconciler/internal/core/domain"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrackingEventRepo_InsertAndExists(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	now := time.Now().UTC().Truncate(time.Microsecond)
	e := &domain.ShipmentTrackingEvent{
		ID:         uuid.New(),
		ShipmentID: uuid.New(),
		Status:     "In Transit",
		StatusType: "UD",
		Location:   "Bengaluru_Hub",
		ScannedAt:  now.Add(-time.Hour),
		RawPayload: json.RawMessage(`{"Shipment":{}}`),
		CreatedAt:  now,
	}

	mock.ExpectQuery("SELECT EXISTS").
		WithArgs(e.ShipmentID, e.ScannedAt).
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectBegin()
	mock.ExpectExec("ON CONFLICT \\(shipment_id, scanned_at\\) DO NOTHING").
		WithArgs(e.ID, e.ShipmentID, e.Status, e.StatusType, e.Location, e.ScannedAt, e.Instructions, e.RawPayload, e.CreatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectExec("INSERT INTO shipment_tracking_events").
		WithArgs(anyArgs(9)...).
		WillReturnResult(pgxmock.NewResult("INSERT", 0))
	mock.ExpectRollback()

	repo := NewTrackingEventRepo(mock)
	exists, err := repo.Exists(context.Background(), e.ShipmentID, e.ScannedAt)
	require.NoError(t, err)
	assert.False(t, exists)

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	inserted, err := repo.Insert(context.Background(), tx, e)
	require.NoError(t, err)
	assert.True(t, inserted)

	inserted, err = repo.Insert(context.Background(), tx, e)
	require.NoError(t, err)
	assert.False(t, inserted)

	require.NoError(t, tx.Rollback(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTrackingEventRepo_ListByShipment(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	shipmentID := uuid.New()
	now := time.Now().UTC().Truncate(time.Microsecond)
	mock.ExpectQuery("FROM shipment_tracking_events WHERE shipment_id").
		WithArgs(shipmentID).
		WillReturnRows(pgxmock.NewRows([]string{"id", "shipment_id", "status", "status_type", "location", "scanned_at", "instructions", "created_at"}).
			AddRow(uuid.New(), shipmentID, "Delivered", "DL", "Bengaluru", now, "", now).
			AddRow(uuid.New(), shipmentID, "In Transit", "UD", "Hub", now.Add(-time.Hour), "", now))

	events, err := NewTrackingEventRepo(mock).ListByShipment(context.Background(), shipmentID)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "Delivered", events[0].Status)
}

func TestPickupRepo_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	p := &domain.PickupRequest{
		ID:                   uuid.New(),
		Provider:             "DELHIVERY",
		Location:             "WAREHOUSE-1",
		PickupDate:           time.Date(2024, 1, 16, 0, 0, 0, 0, time.UTC),
		PickupTime:           "11:00:00",
		ExpectedPackageCount: 3,
		Status:               domain.PickupStatusFailed,
		ErrorMessage:         strPtr("DELHIVERY: pickup not accepted"),
		CreatedAt:            time.Now().UTC().Truncate(time.Microsecond),
	}
	args := []any{p.ID, p.Provider, p.Location, p.PickupDate, p.PickupTime, p.ExpectedPackageCount,
		p.ExternalPickupID, p.Status, p.ErrorMessage, p.CreatedAt}

	mock.ExpectExec("INSERT INTO pickup_requests").WithArgs(args...).WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO pickup_requests").WithArgs(args...).WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectCommit()

	repo := NewPickupRepo(mock)
	require.NoError(t, repo.Create(context.Background(), nil, p))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), tx, p))
	require.NoError(t, tx.Commit(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInboundEventRepo_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	e := &domain.InboundEvent{
		ID:         uuid.New(),
		Provider:   "DELHIVERY",
		Kind:       domain.InboundKindShipmentWebhook,
		Reference:  "W9",
		Payload:    `{"Shipment":{"AWB":"W9"}}`,
		Outcome:    domain.InboundOutcomeUnmatched,
		ReceivedAt: time.Now().UTC().Truncate(time.Microsecond),
	}
	mock.ExpectExec("INSERT INTO inbound_events").
		WithArgs(e.ID, e.Provider, e.Kind, e.Reference, e.Payload, e.Outcome, e.Error, e.ReceivedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	assert.NoError(t, NewInboundEventRepo(mock).Create(context.Background(), e))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAuditRepo_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	l := &domain.AuditLog{
		ID:           uuid.New(),
		Actor:        "ops@shop.example",
		Action:       domain.AuditActionCancelShipment,
		ResourceType: "shipment",
		ResourceID:   "W9",
		IPAddress:    "10.0.0.4",
		CreatedAt:    time.Now().UTC().Truncate(time.Microsecond),
	}
	mock.ExpectExec("INSERT INTO audit_logs").
		WithArgs(l.ID, l.Actor, "CANCEL_SHIPMENT", l.ResourceType, l.ResourceID, l.Details, l.IPAddress, l.CreatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	assert.NoError(t, NewAuditRepo(mock).Create(context.Background(), l))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHealthCheck(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectPing()
	mock.ExpectPing().WillReturnError(errors.New("connection refused"))

	h := NewHealthCheck(mock)
	assert.Equal(t, "postgresql", h.Name())
	assert.NoError(t, h.Ping(context.Background()))
	assert.Error(t, h.Ping(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactor_Begin(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectBegin()
	mock.ExpectRollback()

	tx, err := NewTransactor(mock).Begin(context.Background())
	require.NoError(t, err)
	require.NoError(t, tx.Rollback(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"commerce-reconciler/config"
	"commerce-reconciler/internal/core/domain"
	"commerce-reconciler/internal/core/ports"
	"commerce-reconciler/internal/core/ports/mocks"
	"commerce-reconciler/pkg/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type batcherTestDeps struct {
	svc        *PickupBatcherImpl
	shipments  *mocks.MockShipmentRepository
	pickups    *mocks.MockPickupRepository
	transactor *mocks.MockDBTransactor
	courier    *mocks.MockLogisticsGateway
	alerter    *mocks.MockAlerter
	loc        *time.Location
}

func setupPickupBatcher(t *testing.T) *batcherTestDeps {
	ctrl := gomock.NewController(t)
	d := &batcherTestDeps{
		shipments:  mocks.NewMockShipmentRepository(ctrl),
		pickups:    mocks.NewMockPickupRepository(ctrl),
		transactor: mocks.NewMockDBTransactor(ctrl),
		courier:    mocks.NewMockLogisticsGateway(ctrl),
		alerter:    mocks.NewMockAlerter(ctrl),
		loc:        time.FixedZone("IST", 5*3600+1800),
	}
	d.courier.EXPECT().Name().Return("DELHIVERY").AnyTimes()

	svc, err := NewPickupBatcher(d.shipments, d.pickups, d.transactor, d.courier, d.alerter,
		"Main Warehouse", config.PickupConfig{Time: "11:00:00", Timezone: "UTC"}, newTestLogger())
	require.NoError(t, err)
	svc.loc = d.loc
	// 18:00 IST on 14 March
	svc.now = func() time.Time { return time.Date(2026, 3, 14, 12, 30, 0, 0, time.UTC) }
	d.svc = svc
	return d
}

func TestNewPickupBatcher_BadTimezone(t *testing.T) {
	_, err := NewPickupBatcher(nil, nil, nil, nil, nil, "", config.PickupConfig{Timezone: "Nowhere/Land"}, newTestLogger())
	assert.Error(t, err)
}

func TestPickupBatcher_NothingToSchedule(t *testing.T) {
	d := setupPickupBatcher(t)
	ctx := context.Background()

	d.shipments.EXPECT().ListPickupCandidates(ctx, gomock.Any(), gomock.Any()).Return(nil, nil)

	res, err := d.svc.SelectAndSchedule(ctx)
	require.NoError(t, err)
	assert.False(t, res.Scheduled)
	assert.Zero(t, res.Count)
}

func TestPickupBatcher_SchedulesOnePickupForAll(t *testing.T) {
	d := setupPickupBatcher(t)
	ctx := context.Background()
	tx := &mockTx{}

	today := time.Date(2026, 3, 14, 0, 0, 0, 0, d.loc)
	tomorrow := time.Date(2026, 3, 15, 0, 0, 0, 0, d.loc)
	candidates := []domain.Shipment{{ID: uuid.New()}, {ID: uuid.New()}, {ID: uuid.New()}}

	d.shipments.EXPECT().ListPickupCandidates(ctx, today, tomorrow).Return(candidates, nil)
	d.courier.EXPECT().SchedulePickup(ctx, ports.PickupInput{
		Location:             "Main Warehouse",
		Date:                 tomorrow,
		Time:                 "11:00:00",
		ExpectedPackageCount: 3,
	}).Return(&ports.PickupResult{PickupID: "PK77"}, nil)
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)

	var pickupID uuid.UUID
	d.pickups.EXPECT().Create(ctx, tx, gomock.Any()).DoAndReturn(func(_ context.Context, _ pgx.Tx, p *domain.PickupRequest) error {
		assert.Equal(t, domain.PickupStatusRequested, p.Status)
		assert.Equal(t, 3, p.ExpectedPackageCount)
		pickupID = p.ID
		return nil
	})
	d.shipments.EXPECT().MarkPickupScheduled(ctx, tx, gomock.Any(), gomock.Any(), tomorrow, "11:00:00").DoAndReturn(
		func(_ context.Context, _ pgx.Tx, ids []uuid.UUID, reqID uuid.UUID, _ time.Time, _ string) (int64, error) {
			assert.Equal(t, []uuid.UUID{candidates[0].ID, candidates[1].ID, candidates[2].ID}, ids)
			assert.Equal(t, pickupID, reqID)
			return 3, nil
		})

	res, err := d.svc.SelectAndSchedule(ctx)
	require.NoError(t, err)
	assert.True(t, res.Scheduled)
	assert.Equal(t, 3, res.Count)
	assert.Equal(t, "PK77", *res.Pickup.ExternalPickupID)
	assert.True(t, tx.committed)
}

func TestPickupBatcher_CourierFailureMarksNothingAndAlerts(t *testing.T) {
	d := setupPickupBatcher(t)
	ctx := context.Background()

	d.shipments.EXPECT().ListPickupCandidates(ctx, gomock.Any(), gomock.Any()).Return([]domain.Shipment{{ID: uuid.New()}}, nil)
	d.courier.EXPECT().SchedulePickup(ctx, gomock.Any()).Return(nil, apperror.ErrUpstream("DELHIVERY", "ClientWarehouse matching query does not exist"))
	d.pickups.EXPECT().Create(ctx, nil, gomock.Any()).DoAndReturn(func(_ context.Context, _ pgx.Tx, p *domain.PickupRequest) error {
		assert.Equal(t, domain.PickupStatusFailed, p.Status)
		return nil
	})
	d.alerter.EXPECT().Alert(ctx, "Courier pickup not scheduled", gomock.Any()).DoAndReturn(func(_ context.Context, _ string, msg string) error {
		assert.Contains(t, msg, "1 parcels on 2026-03-15")
		assert.Contains(t, msg, "ClientWarehouse")
		return nil
	})
	// no Begin / MarkPickupScheduled

	_, err := d.svc.SelectAndSchedule(ctx)
	assert.True(t, apperror.Is(err, apperror.CodeUpstream))
}

func TestPickupBatcher_LocalFailureAfterBookingAlerts(t *testing.T) {
	d := setupPickupBatcher(t)
	ctx := context.Background()
	tx := &mockTx{}

	d.shipments.EXPECT().ListPickupCandidates(ctx, gomock.Any(), gomock.Any()).Return([]domain.Shipment{{ID: uuid.New()}}, nil)
	d.courier.EXPECT().SchedulePickup(ctx, gomock.Any()).Return(&ports.PickupResult{PickupID: "PK1"}, nil)
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.pickups.EXPECT().Create(ctx, tx, gomock.Any()).Return(nil)
	d.shipments.EXPECT().MarkPickupScheduled(ctx, tx, gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), errors.New("conn closed"))
	d.alerter.EXPECT().Alert(ctx, "Courier pickup booked but not recorded", gomock.Any()).Return(errors.New("sns throttled"))

	_, err := d.svc.SelectAndSchedule(ctx)
	assert.True(t, apperror.Is(err, apperror.CodeInternal))
	assert.True(t, tx.rolledBack)
}

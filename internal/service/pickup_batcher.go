package service

import (
	"context"
	"fmt"
	"time"

	"commerce-reconciler/config"
	"commerce-reconciler/internal/core/domain"
	"commerce-reconciler/internal/core/ports"
	"commerce-reconciler/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// PickupBatcherImpl asks the courier to collect every parcel manifested
// today in one pickup tomorrow.
type PickupBatcherImpl struct {
	shipments  ports.ShipmentRepository
	pickups    ports.PickupRepository
	transactor ports.DBTransactor
	courier    ports.LogisticsGateway
	alerter    ports.Alerter
	location   string
	cfg        config.PickupConfig
	loc        *time.Location
	log        zerolog.Logger
	now        func() time.Time
}

// NewPickupBatcher creates a new PickupBatcherImpl. "Today" is the calendar
// day in cfg.Timezone.
func NewPickupBatcher(
	shipments ports.ShipmentRepository,
	pickups ports.PickupRepository,
	transactor ports.DBTransactor,
	courier ports.LogisticsGateway,
	alerter ports.Alerter,
	location string,
	cfg config.PickupConfig,
	log zerolog.Logger,
) (*PickupBatcherImpl, error) {
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("loading pickup timezone: %w", err)
	}
	return &PickupBatcherImpl{
		shipments:  shipments,
		pickups:    pickups,
		transactor: transactor,
		courier:    courier,
		alerter:    alerter,
		location:   location,
		cfg:        cfg,
		loc:        loc,
		log:        log.With().Str("component", "pickup_batcher").Logger(),
		now:        time.Now,
	}, nil
}

// SelectAndSchedule books one pickup for today's unscheduled parcels. When
// the booking fails no shipment is touched and an operator is alerted.
func (b *PickupBatcherImpl) SelectAndSchedule(ctx context.Context) (*ports.PickupBatchResult, error) {
	now := b.now().In(b.loc)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, b.loc)
	tomorrow := today.AddDate(0, 0, 1)

	candidates, err := b.shipments.ListPickupCandidates(ctx, today, tomorrow)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("list pickup candidates: %w", err))
	}
	if len(candidates) == 0 {
		b.log.Info().Time("day", today).Msg("no parcels awaiting pickup")
		return &ports.PickupBatchResult{}, nil
	}

	ids := make([]uuid.UUID, 0, len(candidates))
	for _, c := range candidates {
		ids = append(ids, c.ID)
	}

	in := ports.PickupInput{
		Location:             b.location,
		Date:                 tomorrow,
		Time:                 b.cfg.Time,
		ExpectedPackageCount: len(candidates),
	}
	req, err := bookPickup(ctx, b.courier, in, b.now().UTC())
	if err != nil {
		if perr := b.pickups.Create(ctx, nil, req); perr != nil {
			b.log.Error().Err(perr).Msg("failed to store failed pickup request")
		}
		b.alert(ctx, "Courier pickup not scheduled",
			fmt.Sprintf("Pickup for %d parcels on %s at %s could not be booked: %s", len(ids), tomorrow.Format(time.DateOnly), in.Location, errorMessage(err)))
		return nil, err
	}

	if err := b.commit(ctx, req, ids); err != nil {
		b.alert(ctx, "Courier pickup booked but not recorded",
			fmt.Sprintf("Pickup %s for %d parcels on %s was booked with the courier but shipments were not updated: %v",
				*req.ExternalPickupID, len(ids), tomorrow.Format(time.DateOnly), err))
		return nil, err
	}

	b.log.Info().
		Str("pickup_id", *req.ExternalPickupID).
		Time("date", tomorrow).
		Int("count", len(ids)).
		Msg("pickup batch scheduled")
	return &ports.PickupBatchResult{Scheduled: true, Count: len(ids), Pickup: req}, nil
}

func (b *PickupBatcherImpl) commit(ctx context.Context, req *domain.PickupRequest, ids []uuid.UUID) error {
	tx, err := b.transactor.Begin(ctx)
	if err != nil {
		return apperror.ErrDatabaseError(fmt.Errorf("begin tx: %w", err))
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	if err := b.pickups.Create(ctx, tx, req); err != nil {
		return apperror.ErrDatabaseError(err)
	}
	marked, err := b.shipments.MarkPickupScheduled(ctx, tx, ids, req.ID, req.PickupDate, req.PickupTime)
	if err != nil {
		return apperror.ErrDatabaseError(err)
	}
	if err := tx.Commit(ctx); err != nil {
		return apperror.ErrDatabaseError(fmt.Errorf("commit pickup batch: %w", err))
	}
	if marked != int64(len(ids)) {
		b.log.Warn().Int64("marked", marked).Int("selected", len(ids)).Msg("some parcels were scheduled concurrently")
	}
	return nil
}

func (b *PickupBatcherImpl) alert(ctx context.Context, subject, message string) {
	if err := b.alerter.Alert(ctx, subject, message); err != nil {
		b.log.Error().Err(err).Str("subject", subject).Msg("operator alert failed")
	}
}

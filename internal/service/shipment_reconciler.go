package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"time"

	"commerce-reconciler/config"
	"commerce-reconciler/internal/core/domain"
	"commerce-reconciler/internal/core/ports"
	"commerce-reconciler/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// Parcel dimensions sent with every manifest; the catalog carries no sizes.
const (
	defaultLengthCM  = 10
	defaultBreadthCM = 10
	defaultHeightCM  = 10
)

// ShipmentReconcilerImpl implements ports.ShipmentReconciler.
type ShipmentReconcilerImpl struct {
	shipments  ports.ShipmentRepository
	events     ports.TrackingEventRepository
	orders     ports.OrderRepository
	pickups    ports.PickupRepository
	inbound    ports.InboundEventRepository
	transactor ports.DBTransactor
	courier    ports.LogisticsGateway
	cfg        config.DelhiveryConfig
	pickup     config.PickupConfig
	log        zerolog.Logger
	now        func() time.Time
}

// NewShipmentReconciler creates a new ShipmentReconcilerImpl.
func NewShipmentReconciler(
	shipments ports.ShipmentRepository,
	events ports.TrackingEventRepository,
	orders ports.OrderRepository,
	pickups ports.PickupRepository,
	inbound ports.InboundEventRepository,
	transactor ports.DBTransactor,
	courier ports.LogisticsGateway,
	cfg config.DelhiveryConfig,
	pickup config.PickupConfig,
	log zerolog.Logger,
) *ShipmentReconcilerImpl {
	return &ShipmentReconcilerImpl{
		shipments:  shipments,
		events:     events,
		orders:     orders,
		pickups:    pickups,
		inbound:    inbound,
		transactor: transactor,
		courier:    courier,
		cfg:        cfg,
		pickup:     pickup,
		log:        log.With().Str("component", "shipment_reconciler").Str("courier", courier.Name()).Logger(),
		now:        func() time.Time { return time.Now().UTC() },
	}
}

func (s *ShipmentReconcilerImpl) CheckServiceability(ctx context.Context, pincode string) (*ports.ServiceabilityResult, error) {
	pincode = strings.TrimSpace(pincode)
	if pincode == "" {
		return nil, apperror.Validation("pincode is required")
	}
	return s.courier.CheckServiceability(ctx, pincode)
}

// CreateShipment manifests the order with the courier. An order that already
// has an active shipment gets that shipment back without a courier call.
func (s *ShipmentReconcilerImpl) CreateShipment(ctx context.Context, orderID uuid.UUID) (*domain.Shipment, error) {
	if existing, err := s.shipments.GetActiveByOrderID(ctx, orderID); err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("load shipment: %w", err))
	} else if existing != nil {
		return existing, nil
	}

	order, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("load order: %w", err))
	}
	if order == nil {
		return nil, apperror.ErrNotFound("Order")
	}
	if order.Status == domain.OrderStatusCancelled {
		return nil, apperror.Validation(fmt.Sprintf("order %s is cancelled", order.OrderNumber))
	}
	addr := order.ShippingAddress
	if strings.TrimSpace(addr.PostalCode) == "" {
		return nil, apperror.Validation("shipping address has no postal code")
	}

	svc, err := s.courier.CheckServiceability(ctx, addr.PostalCode)
	if err != nil {
		return nil, err
	}
	if !svc.Serviceable {
		return nil, apperror.Validation(fmt.Sprintf("pincode %s is not serviceable", addr.PostalCode))
	}

	mode := domain.PaymentModePrepaid
	codAmount := decimal.Zero
	if order.IsCOD() {
		if !svc.COD {
			return nil, apperror.Validation(fmt.Sprintf("cash on delivery is not available for pincode %s", addr.PostalCode))
		}
		mode = domain.PaymentModeCOD
		codAmount = order.TotalAmount
	}
	weight := order.TotalWeightGrams(s.cfg.DefaultItemWeight)

	waybills, err := s.courier.AllocateWaybills(ctx, 1)
	if err != nil {
		return nil, err
	}

	res, err := s.courier.CreateShipment(ctx, ports.CreateShipmentRequest{
		Waybill:             waybills[0],
		OrderNumber:         order.OrderNumber,
		Consignee:           addr,
		PaymentMode:         mode,
		CODAmount:           codAmount,
		TotalAmount:         order.TotalAmount,
		ProductsDescription: order.ProductsDescription(),
		Quantity:            order.TotalQuantity(),
		WeightGrams:         weight,
		LengthCM:            defaultLengthCM,
		BreadthCM:           defaultBreadthCM,
		HeightCM:            defaultHeightCM,
	})
	if err != nil {
		return nil, err
	}

	log := s.log.With().Str("order_id", orderID.String()).Str("awb", res.Waybill).Logger()
	if res.Waybill != waybills[0] {
		log.Info().Str("requested", waybills[0]).Msg("courier assigned a different waybill")
	}

	now := s.now()
	shipment := &domain.Shipment{
		ID:              uuid.New(),
		OrderID:         orderID,
		Provider:        s.courier.Name(),
		AWB:             res.Waybill,
		PaymentMode:     mode,
		CODAmount:       codAmount,
		WeightGrams:     weight,
		LengthCM:        defaultLengthCM,
		BreadthCM:       defaultBreadthCM,
		HeightCM:        defaultHeightCM,
		Status:          domain.ShipmentStatusManifested,
		TrackingURL:     s.trackingURL(res.Waybill),
		GatewayResponse: res.Raw,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := s.shipments.Create(ctx, shipment); err != nil {
		if apperror.Is(err, apperror.CodeConflict) {
			existing, gerr := s.shipments.GetActiveByOrderID(ctx, orderID)
			if gerr == nil && existing != nil {
				log.Warn().Str("existing_awb", existing.AWB).Msg("concurrent shipment creation, keeping the stored one")
				return existing, nil
			}
		}
		// The parcel exists at the courier; operators need the AWB to reconcile.
		log.Error().Err(err).RawJSON("gateway_response", rawOrNull(res.Raw)).Msg("shipment manifested but not stored")
		return nil, apperror.ErrDatabaseError(fmt.Errorf("store shipment %s: %w", res.Waybill, err))
	}
	log.Info().Str("to", string(domain.ShipmentStatusManifested)).Int("weight_grams", weight).Str("payment_mode", string(mode)).Msg("shipment created")

	if err := s.orders.SetTracking(ctx, orderID, shipment.AWB, shipment.TrackingURL); err != nil {
		log.Error().Err(err).Msg("failed to denormalize tracking onto order")
	}
	return shipment, nil
}

func (s *ShipmentReconcilerImpl) trackingURL(awb string) string {
	if s.cfg.TrackingURLTemplate == "" {
		return ""
	}
	return fmt.Sprintf(s.cfg.TrackingURLTemplate, awb)
}

// IngestWebhook applies one courier notification. Failures that a courier
// retry cannot fix come back in the outcome; only rejection is an error.
func (s *ShipmentReconcilerImpl) IngestWebhook(ctx context.Context, body []byte, headers http.Header) (*ports.WebhookOutcome, error) {
	event := &domain.InboundEvent{
		Provider: s.courier.Name(),
		Kind:     domain.InboundKindShipmentWebhook,
		Payload:  string(body),
	}

	wh, err := s.courier.VerifyWebhook(ctx, body, headers)
	if err != nil {
		s.log.Warn().Err(err).Msg("webhook rejected")
		recordInbound(ctx, s.inbound, s.log, event, domain.InboundOutcomeRejected, err)
		return nil, err
	}
	event.Reference = wh.AWB

	out := &ports.WebhookOutcome{AWB: wh.AWB}
	shipment, err := s.shipments.GetByAWB(ctx, wh.AWB)
	switch {
	case err != nil:
		out.Outcome = domain.InboundOutcomeFailed
		out.Detail = err.Error()
	case shipment == nil:
		s.log.Warn().Str("awb", wh.AWB).Msg("webhook for unknown waybill")
		out.Outcome = domain.InboundOutcomeUnmatched
		out.Detail = "unknown waybill"
	default:
		out.Outcome, out.Status, out.Detail = s.applyScan(ctx, shipment, wh.Scan, wh.Raw)
	}

	var cause error
	if out.Detail != "" {
		cause = fmt.Errorf("%s", out.Detail)
	}
	recordInbound(ctx, s.inbound, s.log, event, out.Outcome, cause)
	return out, nil
}

// applyScan appends the tracking event and moves the shipment in one
// transaction, then propagates to the order. Order failures never undo the
// tracking write.
func (s *ShipmentReconcilerImpl) applyScan(ctx context.Context, shipment *domain.Shipment, scan ports.TrackingScan, raw json.RawMessage) (domain.InboundOutcome, domain.ShipmentStatus, string) {
	status := domain.MapCourierStatus(scan.Status)
	log := s.log.With().Str("awb", shipment.AWB).Time("scanned_at", scan.ScannedAt).Logger()

	exists, err := s.events.Exists(ctx, shipment.ID, scan.ScannedAt)
	if err != nil {
		log.Error().Err(err).Msg("tracking event lookup failed")
		return domain.InboundOutcomeFailed, status, err.Error()
	}
	if exists {
		log.Debug().Msg("duplicate scan ignored")
		return domain.InboundOutcomeDuplicate, status, ""
	}

	tx, err := s.transactor.Begin(ctx)
	if err != nil {
		return domain.InboundOutcomeFailed, status, fmt.Sprintf("begin tx: %v", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	inserted, err := s.events.Insert(ctx, tx, &domain.ShipmentTrackingEvent{
		ID:           uuid.New(),
		ShipmentID:   shipment.ID,
		Status:       scan.Status,
		StatusType:   scan.StatusType,
		Location:     scan.Location,
		ScannedAt:    scan.ScannedAt,
		Instructions: scan.Instructions,
		RawPayload:   raw,
		CreatedAt:    s.now(),
	})
	if err != nil {
		log.Error().Err(err).Msg("tracking event insert failed")
		return domain.InboundOutcomeFailed, status, err.Error()
	}
	if !inserted {
		return domain.InboundOutcomeDuplicate, status, ""
	}

	moved, err := s.shipments.ApplyScan(ctx, tx, ports.ShipmentScan{
		ShipmentID: shipment.ID,
		Status:     status,
		ScanStatus: scan.Status,
		Location:   scan.Location,
		ScannedAt:  scan.ScannedAt,
	})
	if err != nil {
		log.Error().Err(err).Msg("shipment scan update failed")
		return domain.InboundOutcomeFailed, status, err.Error()
	}
	if err := tx.Commit(ctx); err != nil {
		log.Error().Err(err).Msg("tracking commit failed")
		return domain.InboundOutcomeFailed, status, fmt.Sprintf("commit: %v", err)
	}

	if !moved {
		log.Info().Str("status", string(shipment.Status)).Str("scan", scan.Status).Msg("scan recorded, shipment terminal or scan stale")
		return domain.InboundOutcomeProcessed, status, ""
	}
	log.Info().Str("from", string(shipment.Status)).Str("to", string(status)).Msg("shipment status applied")
	shipment.Status = status

	if orderStatus, ok := domain.OrderStatusFor(status); ok {
		if err := s.orders.UpdateStatus(ctx, shipment.OrderID, orderStatus); err != nil {
			log.Error().Err(err).Str("order_status", string(orderStatus)).Msg("failed to propagate shipment status to order")
			return domain.InboundOutcomeProcessed, status, "order update failed: " + err.Error()
		}
	}
	return domain.InboundOutcomeProcessed, status, ""
}

// TrackShipment polls the courier for a live shipment and applies any scans
// not seen yet through the webhook path, then returns local history. A
// courier failure degrades to the stored state.
func (s *ShipmentReconcilerImpl) TrackShipment(ctx context.Context, awb string) (*ports.ShipmentTracking, error) {
	shipment, err := s.getByAWB(ctx, awb)
	if err != nil {
		return nil, err
	}

	if !shipment.IsTerminal() {
		if res, terr := s.courier.Track(ctx, awb); terr != nil {
			s.log.Warn().Err(terr).Str("awb", awb).Msg("courier tracking failed, using stored state")
		} else {
			scans := res.Scans
			if len(scans) == 0 && res.Latest != nil {
				scans = []ports.TrackingScan{*res.Latest}
			}
			sort.SliceStable(scans, func(i, j int) bool { return scans[i].ScannedAt.Before(scans[j].ScannedAt) })
			for _, scan := range scans {
				if scan.ScannedAt.IsZero() {
					s.log.Warn().Str("awb", awb).Str("status", scan.Status).Msg("polled scan has no scan time, skipping")
					continue
				}
				if outcome, _, detail := s.applyScan(ctx, shipment, scan, res.Raw); outcome == domain.InboundOutcomeFailed {
					s.log.Warn().Str("awb", awb).Str("detail", detail).Msg("polled scan not applied")
					break
				}
			}
			if fresh, gerr := s.shipments.GetByID(ctx, shipment.ID); gerr == nil && fresh != nil {
				shipment = fresh
			}
		}
	}

	events, err := s.events.ListByShipment(ctx, shipment.ID)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("list tracking events: %w", err))
	}
	return &ports.ShipmentTracking{Shipment: shipment, Events: events}, nil
}

// CancelShipment cancels at the courier first; a courier failure leaves the
// local shipment untouched.
func (s *ShipmentReconcilerImpl) CancelShipment(ctx context.Context, awb string) (*domain.Shipment, error) {
	shipment, err := s.getByAWB(ctx, awb)
	if err != nil {
		return nil, err
	}
	if shipment.Status == domain.ShipmentStatusCancelled {
		return shipment, nil
	}
	if shipment.IsTerminal() {
		return nil, apperror.Validation(fmt.Sprintf("shipment %s is %s and cannot be cancelled", awb, shipment.Status))
	}

	if err := s.courier.Cancel(ctx, awb); err != nil {
		s.log.Warn().Err(err).Str("awb", awb).Msg("courier refused cancellation")
		return nil, err
	}

	applied, err := s.shipments.UpdateStatus(ctx, shipment.ID, domain.ShipmentStatusCancelled)
	if err != nil {
		s.log.Error().Err(err).Str("awb", awb).Msg("cancelled at courier but local update failed")
		return nil, apperror.ErrDatabaseError(fmt.Errorf("cancel shipment: %w", err))
	}
	if applied {
		s.log.Info().Str("awb", awb).Str("from", string(shipment.Status)).Str("to", string(domain.ShipmentStatusCancelled)).Msg("shipment cancelled")
		shipment.Status = domain.ShipmentStatusCancelled
		shipment.UpdatedAt = s.now()
	}
	return shipment, nil
}

// EditShipment forwards consignee or weight changes to the courier.
func (s *ShipmentReconcilerImpl) EditShipment(ctx context.Context, req ports.EditShipmentRequest) (*domain.Shipment, error) {
	shipment, err := s.getByAWB(ctx, req.AWB)
	if err != nil {
		return nil, err
	}
	if shipment.IsTerminal() {
		return nil, apperror.Validation(fmt.Sprintf("shipment %s is %s and cannot be edited", req.AWB, shipment.Status))
	}
	if req.WeightGrams < 0 {
		return nil, apperror.Validation("weight must not be negative")
	}

	if err := s.courier.Edit(ctx, req); err != nil {
		return nil, err
	}

	if req.WeightGrams > 0 && req.WeightGrams != shipment.WeightGrams {
		if err := s.shipments.UpdateWeight(ctx, shipment.ID, req.WeightGrams); err != nil {
			s.log.Error().Err(err).Str("awb", req.AWB).Msg("edited at courier but local weight update failed")
		} else {
			shipment.WeightGrams = req.WeightGrams
		}
	}
	s.log.Info().Str("awb", req.AWB).Msg("shipment edited")
	return shipment, nil
}

// SchedulePickup books a courier pickup outside the daily batch. The request
// is stored either way so failed bookings stay visible.
func (s *ShipmentReconcilerImpl) SchedulePickup(ctx context.Context, in ports.PickupInput) (*domain.PickupRequest, error) {
	if in.Location == "" {
		in.Location = s.cfg.PickupLocation
	}
	if in.Time == "" {
		in.Time = s.pickup.Time
	}
	if in.Location == "" {
		return nil, apperror.Validation("pickup location is required")
	}
	if in.Date.IsZero() {
		return nil, apperror.Validation("pickup date is required")
	}
	if in.ExpectedPackageCount < 1 {
		return nil, apperror.Validation("expected package count must be at least 1")
	}

	req, err := bookPickup(ctx, s.courier, in, s.now())
	if perr := s.pickups.Create(ctx, nil, req); perr != nil {
		s.log.Error().Err(perr).Str("status", string(req.Status)).Msg("failed to store pickup request")
	}
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("pickup_id", *req.ExternalPickupID).Time("date", in.Date).Int("packages", in.ExpectedPackageCount).Msg("pickup scheduled")
	return req, nil
}

// bookPickup calls the courier and returns the request row to persist,
// REQUESTED or FAILED.
func bookPickup(ctx context.Context, courier ports.LogisticsGateway, in ports.PickupInput, now time.Time) (*domain.PickupRequest, error) {
	req := &domain.PickupRequest{
		ID:                   uuid.New(),
		Provider:             courier.Name(),
		Location:             in.Location,
		PickupDate:           in.Date,
		PickupTime:           in.Time,
		ExpectedPackageCount: in.ExpectedPackageCount,
		Status:               domain.PickupStatusRequested,
		CreatedAt:            now,
	}
	res, err := courier.SchedulePickup(ctx, in)
	if err != nil {
		req.Status = domain.PickupStatusFailed
		req.ErrorMessage = optional(errorMessage(err))
		return req, err
	}
	req.ExternalPickupID = &res.PickupID
	return req, nil
}

func (s *ShipmentReconcilerImpl) getByAWB(ctx context.Context, awb string) (*domain.Shipment, error) {
	shipment, err := s.shipments.GetByAWB(ctx, strings.TrimSpace(awb))
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("load shipment: %w", err))
	}
	if shipment == nil {
		return nil, apperror.ErrNotFound("Shipment")
	}
	return shipment, nil
}

func rawOrNull(raw json.RawMessage) []byte {
	if len(raw) == 0 || !json.Valid(raw) {
		return []byte("null")
	}
	return raw
}

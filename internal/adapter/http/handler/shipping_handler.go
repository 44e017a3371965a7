package handler

import (
	"time"

	"commerce-reconciler/internal/adapter/http/dto"
	"commerce-reconciler/internal/adapter/http/middleware"
	"commerce-reconciler/internal/core/ports"
	"commerce-reconciler/pkg/apperror"
	"commerce-reconciler/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// ShippingHandler serves the public shipping endpoints, the courier webhook,
// and the admin shipment actions.
type ShippingHandler struct {
	shipments ports.ShipmentReconciler
	batcher   ports.PickupBatcher
	log       zerolog.Logger
}

func NewShippingHandler(shipments ports.ShipmentReconciler, batcher ports.PickupBatcher, log zerolog.Logger) *ShippingHandler {
	return &ShippingHandler{shipments: shipments, batcher: batcher, log: log}
}

// Serviceability handles GET /api/v1/shipping/serviceability/:pincode.
// Courier failures read as not serviceable.
func (h *ShippingHandler) Serviceability(c *gin.Context) {
	var uri dto.PincodeURI
	if err := c.ShouldBindUri(&uri); err != nil {
		response.Error(c, apperror.Validation("pincode must be 6 digits"))
		return
	}

	res, err := h.shipments.CheckServiceability(c.Request.Context(), uri.Pincode)
	if err != nil || res == nil {
		h.log.Warn().Err(err).Str("pincode", uri.Pincode).Msg("serviceability check degraded")
		response.OK(c, ports.ServiceabilityResult{Pincode: uri.Pincode, Serviceable: false})
		return
	}
	response.OK(c, res)
}

// Track handles GET /api/v1/shipping/track/:awb.
func (h *ShippingHandler) Track(c *gin.Context) {
	var uri dto.AWBURI
	if err := c.ShouldBindUri(&uri); err != nil {
		response.Error(c, apperror.ErrNotFound("Shipment"))
		return
	}

	tracking, err := h.shipments.TrackShipment(c.Request.Context(), uri.AWB)
	if err != nil {
		if !apperror.Is(err, apperror.CodeNotFound) {
			h.log.Error().Err(err).Str("awb", uri.AWB).Msg("tracking failed")
		}
		response.Error(c, apperror.ErrNotFound("Shipment"))
		return
	}
	response.OK(c, dto.NewTrackingResponse(tracking.Shipment, tracking.Events))
}

// Webhook handles POST /api/v1/shipping/webhook. Always acknowledged.
func (h *ShippingHandler) Webhook(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		h.log.Warn().Err(err).Msg("webhook body unreadable")
		response.Ack(c)
		return
	}

	out, err := h.shipments.IngestWebhook(c.Request.Context(), body, c.Request.Header)
	switch {
	case err != nil:
		h.log.Warn().Err(err).Str("request_id", c.GetString(middleware.CtxRequestID)).Msg("webhook rejected")
	case out != nil:
		h.log.Info().
			Str("awb", out.AWB).
			Str("outcome", string(out.Outcome)).
			Str("status", string(out.Status)).
			Str("detail", out.Detail).
			Msg("webhook ingested")
	}
	response.Ack(c)
}

// CreateShipment handles POST /api/v1/admin/orders/:order_id/shipment.
func (h *ShippingHandler) CreateShipment(c *gin.Context) {
	var uri dto.OrderURI
	if err := c.ShouldBindUri(&uri); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	shipment, err := h.shipments.CreateShipment(c.Request.Context(), uuid.MustParse(uri.OrderID))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, dto.NewShipmentResponse(shipment))
}

// CancelShipment handles POST /api/v1/admin/shipments/:awb/cancel.
func (h *ShippingHandler) CancelShipment(c *gin.Context) {
	var uri dto.AWBURI
	if err := c.ShouldBindUri(&uri); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	shipment, err := h.shipments.CancelShipment(c.Request.Context(), uri.AWB)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.NewShipmentResponse(shipment))
}

// EditShipment handles PUT /api/v1/admin/shipments/:awb.
func (h *ShippingHandler) EditShipment(c *gin.Context) {
	var uri dto.AWBURI
	if err := c.ShouldBindUri(&uri); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	var req dto.EditShipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	if req == (dto.EditShipmentRequest{}) {
		response.Error(c, apperror.Validation("nothing to update"))
		return
	}

	shipment, err := h.shipments.EditShipment(c.Request.Context(), ports.EditShipmentRequest{
		AWB:         uri.AWB,
		Name:        req.Name,
		Address:     req.Address,
		Phone:       req.Phone,
		WeightGrams: req.WeightGrams,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.NewShipmentResponse(shipment))
}

// SchedulePickup handles POST /api/v1/admin/pickups.
func (h *ShippingHandler) SchedulePickup(c *gin.Context) {
	var req dto.SchedulePickupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	date, err := time.Parse(time.DateOnly, req.PickupDate)
	if err != nil {
		response.Error(c, apperror.Validation("pickup_date must be YYYY-MM-DD"))
		return
	}

	pickup, err := h.shipments.SchedulePickup(c.Request.Context(), ports.PickupInput{
		Location:             req.Location,
		Date:                 date,
		Time:                 req.PickupTime,
		ExpectedPackageCount: req.ExpectedPackageCount,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, dto.NewPickupResponse(pickup))
}

// RunPickupBatch handles POST /api/v1/admin/pickups/batch.
func (h *ShippingHandler) RunPickupBatch(c *gin.Context) {
	res, err := h.batcher.SelectAndSchedule(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	out := dto.PickupBatchResponse{Scheduled: res.Scheduled, Count: res.Count}
	if res.Pickup != nil {
		p := dto.NewPickupResponse(res.Pickup)
		out.Pickup = &p
	}
	response.OK(c, out)
}

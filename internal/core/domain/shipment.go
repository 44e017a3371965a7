package domain

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ShipmentStatus is the internal shipment lifecycle.
type ShipmentStatus string

const (
	ShipmentStatusPending         ShipmentStatus = "PENDING"
	ShipmentStatusManifested      ShipmentStatus = "MANIFESTED"
	ShipmentStatusPickupScheduled ShipmentStatus = "PICKUP_SCHEDULED"
	ShipmentStatusInTransit       ShipmentStatus = "IN_TRANSIT"
	ShipmentStatusOutForDelivery  ShipmentStatus = "OUT_FOR_DELIVERY"
	ShipmentStatusDelivered       ShipmentStatus = "DELIVERED"
	ShipmentStatusRTO             ShipmentStatus = "RTO"
	ShipmentStatusCancelled       ShipmentStatus = "CANCELLED"
)

// IsTerminal reports DELIVERED, RTO and CANCELLED.
func (s ShipmentStatus) IsTerminal() bool {
	return s == ShipmentStatusDelivered || s == ShipmentStatusRTO || s == ShipmentStatusCancelled
}

// PaymentMode tells the courier whether to collect cash.
type PaymentMode string

const (
	PaymentModePrepaid PaymentMode = "Prepaid"
	PaymentModeCOD     PaymentMode = "COD"
)

// Shipment is a parcel handed to a courier for one order.
// AWB never changes once set.
type Shipment struct {
	ID              uuid.UUID       `json:"id"`
	OrderID         uuid.UUID       `json:"order_id"`
	Provider        string          `json:"provider"`
	AWB             string          `json:"awb"`
	PaymentMode     PaymentMode     `json:"payment_mode"`
	CODAmount       decimal.Decimal `json:"cod_amount"`
	WeightGrams     int             `json:"weight_grams"`
	LengthCM        int             `json:"length_cm"`
	BreadthCM       int             `json:"breadth_cm"`
	HeightCM        int             `json:"height_cm"`
	Status          ShipmentStatus  `json:"status"`
	CurrentLocation *string         `json:"current_location,omitempty"`
	LastScanStatus  *string         `json:"last_scan_status,omitempty"`
	LastScanAt      *time.Time      `json:"last_scan_at,omitempty"`
	PickupDate      *time.Time      `json:"pickup_date,omitempty"`
	PickupTime      *string         `json:"pickup_time,omitempty"`
	PickupRequestID *uuid.UUID      `json:"pickup_request_id,omitempty"`
	TrackingURL     string          `json:"tracking_url"`
	GatewayResponse json.RawMessage `json:"-"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// IsTerminal returns true once the parcel can no longer move.
func (s *Shipment) IsTerminal() bool {
	return s.Status.IsTerminal()
}

// ShipmentTrackingEvent is one courier scan. (ShipmentID, ScannedAt) is unique.
type ShipmentTrackingEvent struct {
	ID           uuid.UUID       `json:"id"`
	ShipmentID   uuid.UUID       `json:"shipment_id"`
	Status       string          `json:"status"`
	StatusType   string          `json:"status_type"`
	Location     string          `json:"location"`
	ScannedAt    time.Time       `json:"scanned_at"`
	Instructions string          `json:"instructions"`
	RawPayload   json.RawMessage `json:"-"`
	CreatedAt    time.Time       `json:"created_at"`
}

var externalShipmentStatus = map[string]ShipmentStatus{
	"Pending":          ShipmentStatusPending,
	"Manifested":       ShipmentStatusManifested,
	"Dispatched":       ShipmentStatusInTransit,
	"In Transit":       ShipmentStatusInTransit,
	"Out for Delivery": ShipmentStatusOutForDelivery,
	"Delivered":        ShipmentStatusDelivered,
	"RTO":              ShipmentStatusRTO,
	"Cancelled":        ShipmentStatusCancelled,
}

// MapCourierStatus translates a courier status string. Unknown values map to
// IN_TRANSIT.
func MapCourierStatus(external string) ShipmentStatus {
	if s, ok := externalShipmentStatus[strings.TrimSpace(external)]; ok {
		return s
	}
	return ShipmentStatusInTransit
}

// OrderStatusFor returns the order status implied by a shipment status, and
// false when the order should be left alone.
func OrderStatusFor(s ShipmentStatus) (OrderStatus, bool) {
	switch s {
	case ShipmentStatusDelivered:
		return OrderStatusCompleted, true
	case ShipmentStatusOutForDelivery, ShipmentStatusInTransit:
		return OrderStatusShipped, true
	case ShipmentStatusRTO, ShipmentStatusCancelled:
		return OrderStatusCancelled, true
	}
	return "", false
}

package dto

import (
	"time"

	"commerce-reconciler/internal/core/domain"

	"github.com/shopspring/decimal"
)

// CheckoutRequest is the request body for starting a payment.
type CheckoutRequest struct {
	OrderID       string          `json:"order_id" binding:"required,uuid"`
	Amount        decimal.Decimal `json:"amount"`
	Provider      string          `json:"provider" binding:"required,alphanum,max=20"`
	Method        string          `json:"payment_method" binding:"omitempty,max=32"`
	CustomerName  string          `json:"customer_name" binding:"omitempty,max=100"`
	CustomerEmail string          `json:"customer_email" binding:"omitempty,email"`
	CustomerPhone string          `json:"customer_phone" binding:"omitempty,numeric,min=10,max=15"`
}

type CheckoutResponse struct {
	MerchantTransactionID string     `json:"merchant_transaction_id"`
	RedirectURL           string     `json:"redirect_url"`
	Status                string     `json:"status"`
	ExpiresAt             *time.Time `json:"expires_at,omitempty"`
}

// TransactionURI binds the merchant transaction id path parameter.
type TransactionURI struct {
	MerchantTxnID string `uri:"merchant_txn_id" binding:"required,safe_id,max=64"`
}

type PaymentResponse struct {
	MerchantTransactionID string     `json:"merchant_transaction_id"`
	OrderID               string     `json:"order_id"`
	Provider              string     `json:"provider"`
	Amount                string     `json:"amount"`
	Currency              string     `json:"currency"`
	Status                string     `json:"status"`
	GatewayTransactionID  *string    `json:"gateway_transaction_id,omitempty"`
	ErrorCode             *string    `json:"error_code,omitempty"`
	ErrorMessage          *string    `json:"error_message,omitempty"`
	RefundID              *string    `json:"refund_id,omitempty"`
	InitiatedAt           time.Time  `json:"initiated_at"`
	CompletedAt           *time.Time `json:"completed_at,omitempty"`
	RefundedAt            *time.Time `json:"refunded_at,omitempty"`
}

// NewPaymentResponse renders a transaction with its amount in major units.
func NewPaymentResponse(t *domain.PaymentTransaction) PaymentResponse {
	return PaymentResponse{
		MerchantTransactionID: t.MerchantTransactionID,
		OrderID:               t.OrderID.String(),
		Provider:              t.Provider,
		Amount:                t.Amount.StringFixed(2),
		Currency:              t.Currency,
		Status:                string(t.Status),
		GatewayTransactionID:  t.GatewayTransactionID,
		ErrorCode:             t.ErrorCode,
		ErrorMessage:          t.ErrorMessage,
		RefundID:              t.RefundID,
		InitiatedAt:           t.InitiatedAt,
		CompletedAt:           t.CompletedAt,
		RefundedAt:            t.RefundedAt,
	}
}

// PincodeURI binds the serviceability path parameter.
type PincodeURI struct {
	Pincode string `uri:"pincode" binding:"required,pincode"`
}

// AWBURI binds a waybill path parameter.
type AWBURI struct {
	AWB string `uri:"awb" binding:"required,safe_id,max=32"`
}

// OrderURI binds an order id path parameter.
type OrderURI struct {
	OrderID string `uri:"order_id" binding:"required,uuid"`
}

// EditShipmentRequest changes consignee details. Omitted fields stay as they are.
type EditShipmentRequest struct {
	Name        string `json:"name" binding:"omitempty,max=100"`
	Address     string `json:"address" binding:"omitempty,max=300"`
	Phone       string `json:"phone" binding:"omitempty,numeric,min=10,max=15"`
	WeightGrams int    `json:"weight_grams" binding:"omitempty,min=1,max=100000"`
}

// SchedulePickupRequest books a manual pickup. Location and time default to
// the configured warehouse and slot.
type SchedulePickupRequest struct {
	PickupDate           string `json:"pickup_date" binding:"required,datetime=2006-01-02"`
	PickupTime           string `json:"pickup_time" binding:"omitempty,datetime=15:04:05"`
	Location             string `json:"pickup_location" binding:"omitempty,max=100"`
	ExpectedPackageCount int    `json:"expected_package_count" binding:"required,min=1,max=500"`
}

type ShipmentResponse struct {
	ID              string     `json:"id"`
	OrderID         string     `json:"order_id"`
	Provider        string     `json:"provider"`
	AWB             string     `json:"awb"`
	Status          string     `json:"status"`
	PaymentMode     string     `json:"payment_mode"`
	CODAmount       string     `json:"cod_amount"`
	WeightGrams     int        `json:"weight_grams"`
	CurrentLocation *string    `json:"current_location,omitempty"`
	LastScanStatus  *string    `json:"last_scan_status,omitempty"`
	LastScanAt      *time.Time `json:"last_scan_at,omitempty"`
	PickupDate      *string    `json:"pickup_date,omitempty"`
	PickupTime      *string    `json:"pickup_time,omitempty"`
	TrackingURL     string     `json:"tracking_url,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}

func NewShipmentResponse(s *domain.Shipment) ShipmentResponse {
	resp := ShipmentResponse{
		ID:              s.ID.String(),
		OrderID:         s.OrderID.String(),
		Provider:        s.Provider,
		AWB:             s.AWB,
		Status:          string(s.Status),
		PaymentMode:     string(s.PaymentMode),
		CODAmount:       s.CODAmount.StringFixed(2),
		WeightGrams:     s.WeightGrams,
		CurrentLocation: s.CurrentLocation,
		LastScanStatus:  s.LastScanStatus,
		LastScanAt:      s.LastScanAt,
		PickupTime:      s.PickupTime,
		TrackingURL:     s.TrackingURL,
		CreatedAt:       s.CreatedAt,
	}
	if s.PickupDate != nil {
		d := s.PickupDate.Format(time.DateOnly)
		resp.PickupDate = &d
	}
	return resp
}

type TrackingEventResponse struct {
	Status       string    `json:"status"`
	StatusType   string    `json:"status_type,omitempty"`
	Location     string    `json:"location,omitempty"`
	Instructions string    `json:"instructions,omitempty"`
	ScannedAt    time.Time `json:"scanned_at"`
}

// TrackingResponse is the customer-facing tracking view.
type TrackingResponse struct {
	AWB         string                  `json:"awb"`
	Status      string                  `json:"status"`
	Location    *string                 `json:"current_location,omitempty"`
	TrackingURL string                  `json:"tracking_url,omitempty"`
	Events      []TrackingEventResponse `json:"events"`
}

func NewTrackingResponse(s *domain.Shipment, events []domain.ShipmentTrackingEvent) TrackingResponse {
	resp := TrackingResponse{
		AWB:         s.AWB,
		Status:      string(s.Status),
		Location:    s.CurrentLocation,
		TrackingURL: s.TrackingURL,
		Events:      make([]TrackingEventResponse, 0, len(events)),
	}
	for _, e := range events {
		resp.Events = append(resp.Events, TrackingEventResponse{
			Status:       e.Status,
			StatusType:   e.StatusType,
			Location:     e.Location,
			Instructions: e.Instructions,
			ScannedAt:    e.ScannedAt,
		})
	}
	return resp
}

type PickupResponse struct {
	ID                   string  `json:"id"`
	Provider             string  `json:"provider"`
	Location             string  `json:"pickup_location"`
	PickupDate           string  `json:"pickup_date"`
	PickupTime           string  `json:"pickup_time"`
	ExpectedPackageCount int     `json:"expected_package_count"`
	ExternalPickupID     *string `json:"external_pickup_id,omitempty"`
	Status               string  `json:"status"`
}

func NewPickupResponse(p *domain.PickupRequest) PickupResponse {
	return PickupResponse{
		ID:                   p.ID.String(),
		Provider:             p.Provider,
		Location:             p.Location,
		PickupDate:           p.PickupDate.Format(time.DateOnly),
		PickupTime:           p.PickupTime,
		ExpectedPackageCount: p.ExpectedPackageCount,
		ExternalPickupID:     p.ExternalPickupID,
		Status:               string(p.Status),
	}
}

type PickupBatchResponse struct {
	Scheduled bool            `json:"scheduled"`
	Count     int             `json:"count"`
	Pickup    *PickupResponse `json:"pickup,omitempty"`
}

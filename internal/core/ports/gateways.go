package ports

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"commerce-reconciler/internal/core/domain"

	"github.com/shopspring/decimal"
)

// PaymentGateway is one external payment provider. Amounts cross this
// boundary in major units; each implementation converts to its wire format.
type PaymentGateway interface {
	Name() string
	Initiate(ctx context.Context, req InitiatePaymentRequest) (*InitiatePaymentResult, error)
	VerifyCallback(ctx context.Context, body []byte, headers http.Header) (*PaymentCallback, error)
	CheckStatus(ctx context.Context, q PaymentStatusQuery) (*PaymentStatusResult, error)
	Refund(ctx context.Context, req RefundRequest) (*RefundResult, error)
}

type CustomerInfo struct {
	Name  string
	Email string
	Phone string
}

type InitiatePaymentRequest struct {
	MerchantTransactionID string
	OrderNumber           string
	Amount                decimal.Decimal
	Currency              string
	RedirectURL           string
	CallbackURL           string
	Customer              CustomerInfo
}

type InitiatePaymentResult struct {
	GatewayOrderID string
	RedirectURL    string
	State          string
	ExpiresAt      *time.Time
	Raw            json.RawMessage
}

// PaymentCallback is a verified, decoded provider notification. Pending is set
// for notifications that do not settle the payment yet.
type PaymentCallback struct {
	MerchantTransactionID string
	GatewayTransactionID  string
	Success               bool
	Pending               bool
	Code                  string
	Message               string
	Raw                   json.RawMessage
}

type PaymentStatusQuery struct {
	MerchantTransactionID string
	GatewayOrderID        string
}

// PaymentStatusResult.Status is PENDING, COMPLETED or FAILED.
type PaymentStatusResult struct {
	Status               domain.PaymentStatus
	GatewayTransactionID string
	Code                 string
	Message              string
	Raw                  json.RawMessage
}

type RefundRequest struct {
	MerchantTransactionID string
	MerchantRefundID      string
	GatewayOrderID        string
	GatewayTransactionID  string
	Amount                decimal.Decimal
	Currency              string
}

type RefundResult struct {
	RefundID string
	State    string
	Raw      json.RawMessage
}

// LogisticsGateway is one courier provider.
type LogisticsGateway interface {
	Name() string
	CheckServiceability(ctx context.Context, pincode string) (*ServiceabilityResult, error)
	// AllocateWaybills reserves count waybills, reusing cached surplus first.
	AllocateWaybills(ctx context.Context, count int) ([]string, error)
	CreateShipment(ctx context.Context, req CreateShipmentRequest) (*CreateShipmentResult, error)
	Track(ctx context.Context, awb string) (*TrackResult, error)
	SchedulePickup(ctx context.Context, req PickupInput) (*PickupResult, error)
	Cancel(ctx context.Context, awb string) error
	Edit(ctx context.Context, req EditShipmentRequest) error
	VerifyWebhook(ctx context.Context, body []byte, headers http.Header) (*CourierWebhook, error)
}

type ServiceabilityResult struct {
	Pincode     string `json:"pincode"`
	Serviceable bool   `json:"serviceable"`
	COD         bool   `json:"cod"`
	Prepaid     bool   `json:"prepaid"`
	City        string `json:"city,omitempty"`
	State       string `json:"state,omitempty"`
}

type CreateShipmentRequest struct {
	Waybill             string
	OrderNumber         string
	Consignee           domain.Address
	PaymentMode         domain.PaymentMode
	CODAmount           decimal.Decimal
	TotalAmount         decimal.Decimal
	ProductsDescription string
	Quantity            int
	WeightGrams         int
	LengthCM            int
	BreadthCM           int
	HeightCM            int
}

// CreateShipmentResult.Waybill is the number the courier confirmed, which
// may differ from the one requested.
type CreateShipmentResult struct {
	Waybill string
	Status  string
	Remarks string
	Raw     json.RawMessage
}

type TrackingScan struct {
	Status       string    `json:"status"`
	StatusType   string    `json:"status_type"`
	Location     string    `json:"location"`
	Instructions string    `json:"instructions"`
	ScannedAt    time.Time `json:"scanned_at"`
}

type TrackResult struct {
	AWB    string
	Status string
	Latest *TrackingScan
	Scans  []TrackingScan
	Raw    json.RawMessage
}

type PickupInput struct {
	Location             string
	Date                 time.Time
	Time                 string // HH:MM:SS
	ExpectedPackageCount int
}

type PickupResult struct {
	PickupID string
	Raw      json.RawMessage
}

// EditShipmentRequest changes consignee details; empty fields are left as is.
type EditShipmentRequest struct {
	AWB         string
	Name        string
	Address     string
	Phone       string
	WeightGrams int
}

// CourierWebhook is a structurally valid, authenticated courier notification.
type CourierWebhook struct {
	AWB  string
	Scan TrackingScan
	Raw  json.RawMessage
}

package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderStatus is the coarse order lifecycle shared by both reconcilers.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusCompleted  OrderStatus = "completed"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// OrderPaymentStatus is the payment view of an order.
type OrderPaymentStatus string

const (
	OrderPaymentPending  OrderPaymentStatus = "PENDING"
	OrderPaymentPaid     OrderPaymentStatus = "PAID"
	OrderPaymentFailed   OrderPaymentStatus = "FAILED"
	OrderPaymentRefunded OrderPaymentStatus = "REFUNDED"
)

const PaymentMethodCOD = "cod"

// Address is a shipping destination.
type Address struct {
	Name       string `json:"name"`
	Line1      string `json:"line1"`
	Line2      string `json:"line2,omitempty"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
	Phone      string `json:"phone"`
}

// FullAddress joins the street lines.
func (a Address) FullAddress() string {
	if a.Line2 == "" {
		return a.Line1
	}
	return a.Line1 + ", " + a.Line2
}

// OrderItem is a line item. UnitWeightGrams is nil when the product has no weight.
type OrderItem struct {
	ProductName     string          `json:"product_name"`
	SKU             string          `json:"sku,omitempty"`
	Quantity        int             `json:"quantity"`
	UnitPrice       decimal.Decimal `json:"unit_price"`
	UnitWeightGrams *int            `json:"unit_weight_grams,omitempty"`
}

// Order is owned by the storefront; this service only writes its payment
// status, lifecycle status and tracking reference.
type Order struct {
	ID              uuid.UUID          `json:"id"`
	OrderNumber     string             `json:"order_number"`
	UserID          uuid.UUID          `json:"user_id"`
	CustomerName    string             `json:"customer_name"`
	CustomerEmail   string             `json:"customer_email"`
	Status          OrderStatus        `json:"status"`
	PaymentStatus   OrderPaymentStatus `json:"payment_status"`
	PaymentMethod   string             `json:"payment_method"`
	TotalAmount     decimal.Decimal    `json:"total_amount"`
	Currency        string             `json:"currency"`
	ShippingAddress Address            `json:"shipping_address"`
	Items           []OrderItem        `json:"items"`
	TrackingNumber  *string            `json:"tracking_number,omitempty"`
	TrackingURL     *string            `json:"tracking_url,omitempty"`
	CreatedAt       time.Time          `json:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at"`
}

// IsCOD reports whether the courier collects payment on delivery.
func (o *Order) IsCOD() bool {
	return strings.EqualFold(o.PaymentMethod, PaymentMethodCOD)
}

// TotalWeightGrams sums quantity x unit weight, using defaultUnitGrams for
// items without a known weight.
func (o *Order) TotalWeightGrams(defaultUnitGrams int) int {
	total := 0
	for _, it := range o.Items {
		w := defaultUnitGrams
		if it.UnitWeightGrams != nil && *it.UnitWeightGrams > 0 {
			w = *it.UnitWeightGrams
		}
		total += w * it.Quantity
	}
	return total
}

// TotalQuantity sums item quantities.
func (o *Order) TotalQuantity() int {
	n := 0
	for _, it := range o.Items {
		n += it.Quantity
	}
	return n
}

// ProductsDescription renders "Name xQty, Name xQty".
func (o *Order) ProductsDescription() string {
	parts := make([]string, 0, len(o.Items))
	for _, it := range o.Items {
		parts = append(parts, fmt.Sprintf("%s x%d", it.ProductName, it.Quantity))
	}
	return strings.Join(parts, ", ")
}

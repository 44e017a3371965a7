package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"commerce-reconciler/internal/core/domain"
	"commerce-reconciler/pkg/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// OrderRepo implements ports.OrderRepository over the storefront's orders
// and order_items tables.
type OrderRepo struct {
	pool Pool
}

func NewOrderRepo(pool Pool) *OrderRepo {
	return &OrderRepo{pool: pool}
}

// GetByID loads an order with its line items. Returns nil, nil if absent.
func (r *OrderRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Order, error) {
	query := `SELECT id, order_number, user_id, customer_name, customer_email, status, payment_status,
		payment_method, total_amount, currency, shipping_address, tracking_number, tracking_url, created_at, updated_at
		FROM orders WHERE id = $1`

	o := &domain.Order{}
	var address []byte
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&o.ID, &o.OrderNumber, &o.UserID, &o.CustomerName, &o.CustomerEmail, &o.Status, &o.PaymentStatus,
		&o.PaymentMethod, &o.TotalAmount, &o.Currency, &address, &o.TrackingNumber, &o.TrackingURL, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan order: %w", err)
	}
	if len(address) > 0 {
		if err := json.Unmarshal(address, &o.ShippingAddress); err != nil {
			return nil, fmt.Errorf("decode shipping address of order %s: %w", id, err)
		}
	}

	items, err := r.listItems(ctx, id)
	if err != nil {
		return nil, err
	}
	o.Items = items
	return o, nil
}

func (r *OrderRepo) listItems(ctx context.Context, orderID uuid.UUID) ([]domain.OrderItem, error) {
	query := `SELECT product_name, sku, quantity, unit_price, unit_weight_grams
		FROM order_items WHERE order_id = $1 ORDER BY position`

	rows, err := r.pool.Query(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("list order items: %w", err)
	}
	defer rows.Close()

	var items []domain.OrderItem
	for rows.Next() {
		var it domain.OrderItem
		if err := rows.Scan(&it.ProductName, &it.SKU, &it.Quantity, &it.UnitPrice, &it.UnitWeightGrams); err != nil {
			return nil, fmt.Errorf("scan order item: %w", err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate order items: %w", err)
	}
	return items, nil
}

// UpdatePaymentStatus sets payment_status; a PAID order still pending moves
// to processing in the same statement.
func (r *OrderRepo) UpdatePaymentStatus(ctx context.Context, id uuid.UUID, status domain.OrderPaymentStatus) error {
	query := `UPDATE orders
		SET payment_status = $2,
			status = CASE WHEN $2 = 'PAID' AND status = 'pending' THEN 'processing' ELSE status END,
			updated_at = NOW()
		WHERE id = $1`

	return r.exec(ctx, "update order payment status", query, id, string(status))
}

func (r *OrderRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.OrderStatus) error {
	query := `UPDATE orders SET status = $2, updated_at = NOW() WHERE id = $1`
	return r.exec(ctx, "update order status", query, id, string(status))
}

func (r *OrderRepo) SetTracking(ctx context.Context, id uuid.UUID, trackingNumber, trackingURL string) error {
	query := `UPDATE orders SET tracking_number = $2, tracking_url = $3, updated_at = NOW() WHERE id = $1`
	return r.exec(ctx, "set order tracking", query, id, trackingNumber, trackingURL)
}

func (r *OrderRepo) exec(ctx context.Context, op, query string, args ...any) error {
	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if tag.RowsAffected() == 0 {
		return apperror.ErrNotFound("Order")
	}
	return nil
}

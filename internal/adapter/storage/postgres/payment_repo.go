package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"commerce-reconciler/internal/core/domain"
	"commerce-reconciler/internal/core/ports"
	"commerce-reconciler/pkg/apperror"

	"github.com/jackc/pgx/v5"
)

const paymentColumns = `id, merchant_transaction_id, order_id, provider, amount, currency, payment_method,
		gateway_order_id, gateway_transaction_id, status, initiation_response, callback_response, status_response,
		error_code, error_message, refund_id, refunded_at, initiated_at, updated_at, completed_at`

// PaymentRepo implements ports.PaymentTransactionRepository.
type PaymentRepo struct {
	pool Pool
}

func NewPaymentRepo(pool Pool) *PaymentRepo {
	return &PaymentRepo{pool: pool}
}

func (r *PaymentRepo) Create(ctx context.Context, p *domain.PaymentTransaction) error {
	query := `INSERT INTO payment_transactions (id, merchant_transaction_id, order_id, provider, amount, currency,
		payment_method, status, initiated_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := r.pool.Exec(ctx, query,
		p.ID, p.MerchantTransactionID, p.OrderID, p.Provider, p.Amount, p.Currency,
		p.PaymentMethod, p.Status, p.InitiatedAt, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperror.ErrConflict("Payment transaction")
		}
		return fmt.Errorf("insert payment transaction: %w", err)
	}
	return nil
}

func (r *PaymentRepo) GetByMerchantTxnID(ctx context.Context, merchantTxnID string) (*domain.PaymentTransaction, error) {
	query := `SELECT ` + paymentColumns + ` FROM payment_transactions WHERE merchant_transaction_id = $1`
	return scanPayment(r.pool.QueryRow(ctx, query, merchantTxnID))
}

// MarkPending records the gateway order after a successful initiate call.
func (r *PaymentRepo) MarkPending(ctx context.Context, merchantTxnID, gatewayOrderID string, raw json.RawMessage) (bool, error) {
	query := `UPDATE payment_transactions
		SET status = 'PENDING', gateway_order_id = $2, initiation_response = $3, updated_at = NOW()
		WHERE merchant_transaction_id = $1 AND status = 'INITIATED'`

	tag, err := r.pool.Exec(ctx, query, merchantTxnID, gatewayOrderID, raw)
	if err != nil {
		return false, fmt.Errorf("mark payment pending: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// MarkInitiationFailed fails a transaction the gateway refused to start.
func (r *PaymentRepo) MarkInitiationFailed(ctx context.Context, merchantTxnID, code, message string, raw json.RawMessage) (bool, error) {
	query := `UPDATE payment_transactions
		SET status = 'FAILED', error_code = $2, error_message = $3, initiation_response = $4, updated_at = NOW()
		WHERE merchant_transaction_id = $1 AND status = 'INITIATED'`

	tag, err := r.pool.Exec(ctx, query, merchantTxnID, code, message, raw)
	if err != nil {
		return false, fmt.Errorf("mark payment initiation failed: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// Settle applies a terminal status. Rows already COMPLETED or FAILED are
// left alone and false is returned.
func (r *PaymentRepo) Settle(ctx context.Context, s ports.PaymentSettlement) (bool, error) {
	rawColumn := "callback_response"
	if s.Source == ports.SettlementFromStatusCheck {
		rawColumn = "status_response"
	}

	query := fmt.Sprintf(`UPDATE payment_transactions
		SET status = $2, gateway_transaction_id = COALESCE($3, gateway_transaction_id),
			error_code = $4, error_message = $5, completed_at = $6, %s = $7, updated_at = NOW()
		WHERE merchant_transaction_id = $1 AND status IN ('INITIATED', 'PENDING')`, rawColumn)

	tag, err := r.pool.Exec(ctx, query,
		s.MerchantTransactionID, s.Status, s.GatewayTransactionID,
		s.ErrorCode, s.ErrorMessage, s.SettledAt, s.Raw,
	)
	if err != nil {
		return false, fmt.Errorf("settle payment: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// SaveStatusResponse keeps the latest poll result of a still-open transaction.
func (r *PaymentRepo) SaveStatusResponse(ctx context.Context, merchantTxnID string, raw json.RawMessage) error {
	query := `UPDATE payment_transactions SET status_response = $2, updated_at = NOW()
		WHERE merchant_transaction_id = $1`

	if _, err := r.pool.Exec(ctx, query, merchantTxnID, raw); err != nil {
		return fmt.Errorf("save status response: %w", err)
	}
	return nil
}

func (r *PaymentRepo) MarkRefunded(ctx context.Context, merchantTxnID, refundID string, at time.Time) (bool, error) {
	query := `UPDATE payment_transactions SET refund_id = $2, refunded_at = $3, updated_at = NOW()
		WHERE merchant_transaction_id = $1 AND status = 'COMPLETED' AND refund_id IS NULL`

	tag, err := r.pool.Exec(ctx, query, merchantTxnID, refundID, at)
	if err != nil {
		return false, fmt.Errorf("mark payment refunded: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func scanPayment(row pgx.Row) (*domain.PaymentTransaction, error) {
	p := &domain.PaymentTransaction{}
	err := row.Scan(
		&p.ID, &p.MerchantTransactionID, &p.OrderID, &p.Provider, &p.Amount, &p.Currency, &p.PaymentMethod,
		&p.GatewayOrderID, &p.GatewayTransactionID, &p.Status, &p.InitiationResponse, &p.CallbackResponse, &p.StatusResponse,
		&p.ErrorCode, &p.ErrorMessage, &p.RefundID, &p.RefundedAt, &p.InitiatedAt, &p.UpdatedAt, &p.CompletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan payment transaction: %w", err)
	}
	return p, nil
}

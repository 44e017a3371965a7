package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"slices"
	"strings"
	"time"

	"commerce-reconciler/config"
	"commerce-reconciler/internal/core/domain"
	"commerce-reconciler/internal/core/ports"
	"commerce-reconciler/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// PaymentReconcilerImpl implements ports.PaymentReconciler.
// Every transition goes through a conditional repository update, so two
// instances handling the same callback settle the transaction once and only
// the winner runs side effects.
type PaymentReconcilerImpl struct {
	payments     ports.PaymentTransactionRepository
	orders       ports.OrderRepository
	inbound      ports.InboundEventRepository
	orchestrator ports.PaymentOrchestrator
	notifier     ports.Notifier
	app          config.AppConfig
	log          zerolog.Logger
	now          func() time.Time
}

// NewPaymentReconciler creates a new PaymentReconcilerImpl.
func NewPaymentReconciler(
	payments ports.PaymentTransactionRepository,
	orders ports.OrderRepository,
	inbound ports.InboundEventRepository,
	orchestrator ports.PaymentOrchestrator,
	notifier ports.Notifier,
	app config.AppConfig,
	log zerolog.Logger,
) *PaymentReconcilerImpl {
	return &PaymentReconcilerImpl{
		payments:     payments,
		orders:       orders,
		inbound:      inbound,
		orchestrator: orchestrator,
		notifier:     notifier,
		app:          app,
		log:          log.With().Str("component", "payment_reconciler").Logger(),
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// Initiate records an INITIATED transaction, asks the gateway for a checkout
// session and moves the record according to the answer.
func (s *PaymentReconcilerImpl) Initiate(ctx context.Context, req ports.CheckoutRequest) (*ports.CheckoutResult, error) {
	if !req.Amount.IsPositive() {
		return nil, apperror.ErrInvalidAmount()
	}
	provider := strings.ToUpper(strings.TrimSpace(req.Provider))
	if available := s.orchestrator.Providers(); !slices.Contains(available, provider) {
		return nil, apperror.ErrGatewayNotConfigured(provider, available)
	}

	order, err := s.orders.GetByID(ctx, req.OrderID)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("load order: %w", err))
	}
	if order == nil {
		return nil, apperror.ErrNotFound("Order")
	}
	if req.PrincipalID != uuid.Nil && order.UserID != req.PrincipalID {
		return nil, apperror.ErrForbidden("Order does not belong to the requester")
	}

	currency := order.Currency
	if currency == "" {
		currency = s.app.Currency
	}
	now := s.now()
	txn := &domain.PaymentTransaction{
		ID:                    uuid.New(),
		MerchantTransactionID: domain.NewMerchantTransactionID(),
		OrderID:               order.ID,
		Provider:              provider,
		Amount:                req.Amount,
		Currency:              currency,
		PaymentMethod:         req.Method,
		Status:                domain.PaymentStatusInitiated,
		InitiatedAt:           now,
		UpdatedAt:             now,
	}
	if err := s.payments.Create(ctx, txn); err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("create payment transaction: %w", err))
	}

	log := s.log.With().Str("merchant_txn_id", txn.MerchantTransactionID).Str("provider", provider).Logger()

	res, err := s.orchestrator.Initiate(ctx, provider, ports.InitiatePaymentRequest{
		MerchantTransactionID: txn.MerchantTransactionID,
		OrderNumber:           order.OrderNumber,
		Amount:                txn.Amount,
		Currency:              currency,
		RedirectURL:           s.app.RedirectURL(txn.MerchantTransactionID),
		CallbackURL:           s.app.CallbackURL(provider),
		Customer:              req.Customer,
	})
	if err != nil {
		// A timeout says nothing about the gateway's side; CheckStatus settles it later.
		if apperror.Is(err, apperror.CodeTransport) {
			log.Warn().Err(err).Msg("initiate timed out, transaction left INITIATED")
			return nil, err
		}
		code := apperror.CodeOf(err)
		if code == "" {
			code = apperror.CodeInternal
		}
		if _, merr := s.payments.MarkInitiationFailed(ctx, txn.MerchantTransactionID, code, errorMessage(err), nil); merr != nil {
			log.Error().Err(merr).Msg("failed to record initiation failure")
		}
		log.Warn().Err(err).Str("from", string(domain.PaymentStatusInitiated)).Str("to", string(domain.PaymentStatusFailed)).Msg("initiate rejected")
		return nil, err
	}

	applied, err := s.payments.MarkPending(ctx, txn.MerchantTransactionID, res.GatewayOrderID, res.Raw)
	if err != nil {
		log.Error().Err(err).Str("gateway_order_id", res.GatewayOrderID).Msg("gateway accepted checkout but local update failed")
		return nil, apperror.ErrDatabaseError(fmt.Errorf("mark payment pending: %w", err))
	}
	status := domain.PaymentStatusPending
	if applied {
		log.Info().Str("from", string(domain.PaymentStatusInitiated)).Str("to", string(status)).Msg("payment initiated")
	} else {
		// A callback or status check settled the row before the initiate response landed.
		current, gerr := s.payments.GetByMerchantTxnID(ctx, txn.MerchantTransactionID)
		if gerr != nil {
			return nil, apperror.ErrDatabaseError(fmt.Errorf("reload payment: %w", gerr))
		}
		if current == nil {
			return nil, apperror.ErrDatabaseError(fmt.Errorf("payment %s vanished after initiate", txn.MerchantTransactionID))
		}
		status = current.Status
		log.Info().Str("status", string(status)).Msg("payment already advanced past INITIATED, keeping stored status")
	}

	return &ports.CheckoutResult{
		MerchantTransactionID: txn.MerchantTransactionID,
		RedirectURL:           res.RedirectURL,
		Status:                status,
		ExpiresAt:             res.ExpiresAt,
	}, nil
}

// HandleCallback verifies and applies an asynchronous gateway notification.
// Redelivery of a settled transaction is a no-op.
func (s *PaymentReconcilerImpl) HandleCallback(ctx context.Context, provider string, body []byte, headers http.Header) (*domain.PaymentTransaction, error) {
	provider = strings.ToUpper(strings.TrimSpace(provider))
	event := &domain.InboundEvent{
		Provider: provider,
		Kind:     domain.InboundKindPaymentCallback,
		Payload:  string(body),
	}

	cb, err := s.orchestrator.VerifyCallback(ctx, provider, body, headers)
	if err != nil {
		s.log.Warn().Err(err).Str("provider", provider).Msg("callback rejected")
		s.record(ctx, event, domain.InboundOutcomeRejected, err)
		return nil, err
	}
	event.Reference = cb.MerchantTransactionID

	txn, outcome, err := s.applyCallback(ctx, provider, cb)
	if err != nil {
		s.record(ctx, event, outcome, err)
		return nil, err
	}
	s.record(ctx, event, outcome, nil)
	return txn, nil
}

func (s *PaymentReconcilerImpl) applyCallback(ctx context.Context, provider string, cb *ports.PaymentCallback) (*domain.PaymentTransaction, domain.InboundOutcome, error) {
	txn, err := s.payments.GetByMerchantTxnID(ctx, cb.MerchantTransactionID)
	if err != nil {
		return nil, domain.InboundOutcomeFailed, apperror.ErrDatabaseError(fmt.Errorf("load payment transaction: %w", err))
	}
	if txn == nil {
		return nil, domain.InboundOutcomeUnmatched, apperror.ErrNotFound("Payment transaction")
	}
	if txn.Provider != provider {
		return nil, domain.InboundOutcomeRejected, apperror.Validation(fmt.Sprintf("transaction belongs to %s, not %s", txn.Provider, provider))
	}

	log := s.log.With().Str("merchant_txn_id", txn.MerchantTransactionID).Str("provider", provider).Logger()

	if txn.IsTerminal() {
		log.Info().Str("status", string(txn.Status)).Msg("duplicate callback ignored")
		return txn, domain.InboundOutcomeDuplicate, nil
	}
	if cb.Pending {
		log.Info().Str("code", cb.Code).Msg("pending callback, nothing to settle")
		return txn, domain.InboundOutcomeProcessed, nil
	}

	status := domain.PaymentStatusFailed
	if cb.Success {
		status = domain.PaymentStatusCompleted
	}
	settled, err := s.settle(ctx, txn, status, cb.GatewayTransactionID, cb.Code, cb.Message, ports.SettlementFromCallback, cb.Raw)
	if err != nil {
		return nil, domain.InboundOutcomeFailed, err
	}
	if !settled {
		return txn, domain.InboundOutcomeDuplicate, nil
	}
	return txn, domain.InboundOutcomeProcessed, nil
}

// settle moves txn to a terminal status and, if this call made the move,
// updates the order and notifies the customer. txn is refreshed in place.
func (s *PaymentReconcilerImpl) settle(
	ctx context.Context,
	txn *domain.PaymentTransaction,
	status domain.PaymentStatus,
	gatewayTxnID, code, message string,
	source ports.SettlementSource,
	raw []byte,
) (bool, error) {
	now := s.now()
	settlement := ports.PaymentSettlement{
		MerchantTransactionID: txn.MerchantTransactionID,
		Status:                status,
		GatewayTransactionID:  optional(gatewayTxnID),
		SettledAt:             now,
		Source:                source,
		Raw:                   raw,
	}
	if status == domain.PaymentStatusFailed {
		settlement.ErrorCode = optional(code)
		settlement.ErrorMessage = optional(message)
	}

	applied, err := s.payments.Settle(ctx, settlement)
	if err != nil {
		return false, apperror.ErrDatabaseError(fmt.Errorf("settle payment transaction: %w", err))
	}

	log := s.log.With().Str("merchant_txn_id", txn.MerchantTransactionID).Logger()
	if !applied {
		// Another delivery got there first.
		if latest, lerr := s.payments.GetByMerchantTxnID(ctx, txn.MerchantTransactionID); lerr == nil && latest != nil {
			*txn = *latest
		}
		log.Info().Str("status", string(txn.Status)).Msg("settlement already applied")
		return false, nil
	}

	log.Info().Str("from", string(txn.Status)).Str("to", string(status)).Str("source", string(source)).Msg("payment settled")
	txn.Status = status
	txn.UpdatedAt = now
	txn.CompletedAt = &now
	if settlement.GatewayTransactionID != nil {
		txn.GatewayTransactionID = settlement.GatewayTransactionID
	}
	txn.ErrorCode = settlement.ErrorCode
	txn.ErrorMessage = settlement.ErrorMessage

	s.afterSettlement(ctx, txn)
	return true, nil
}

// afterSettlement is best-effort: the transaction is already terminal.
func (s *PaymentReconcilerImpl) afterSettlement(ctx context.Context, txn *domain.PaymentTransaction) {
	log := s.log.With().Str("merchant_txn_id", txn.MerchantTransactionID).Str("order_id", txn.OrderID.String()).Logger()

	orderStatus := domain.OrderPaymentFailed
	if txn.Status == domain.PaymentStatusCompleted {
		orderStatus = domain.OrderPaymentPaid
	}
	if err := s.orders.UpdatePaymentStatus(ctx, txn.OrderID, orderStatus); err != nil {
		log.Error().Err(err).Str("payment_status", string(orderStatus)).Msg("failed to update order payment status")
	}

	order, err := s.orders.GetByID(ctx, txn.OrderID)
	if err != nil || order == nil {
		log.Error().Err(err).Msg("order unavailable, payment notification skipped")
		return
	}
	if txn.Status == domain.PaymentStatusCompleted {
		err = s.notifier.PaymentSucceeded(ctx, order, txn)
	} else {
		err = s.notifier.PaymentFailed(ctx, order, txn)
	}
	if err != nil {
		log.Error().Err(err).Msg("payment notification failed")
	}
}

// CheckStatus returns the local record, polling the gateway first while the
// transaction is unsettled. Gateway failures fall back to the local status.
func (s *PaymentReconcilerImpl) CheckStatus(ctx context.Context, merchantTxnID string) (*domain.PaymentTransaction, error) {
	txn, err := s.payments.GetByMerchantTxnID(ctx, merchantTxnID)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("load payment transaction: %w", err))
	}
	if txn == nil {
		return nil, apperror.ErrNotFound("Payment transaction")
	}
	if txn.IsTerminal() {
		return txn, nil
	}

	log := s.log.With().Str("merchant_txn_id", merchantTxnID).Str("provider", txn.Provider).Logger()

	q := ports.PaymentStatusQuery{MerchantTransactionID: merchantTxnID}
	if txn.GatewayOrderID != nil {
		q.GatewayOrderID = *txn.GatewayOrderID
	}
	res, err := s.orchestrator.CheckStatus(ctx, txn.Provider, q)
	if err != nil {
		log.Warn().Err(err).Msg("status check failed, returning local status")
		return txn, nil
	}

	if err := s.payments.SaveStatusResponse(ctx, merchantTxnID, res.Raw); err != nil {
		log.Warn().Err(err).Msg("failed to store status response")
	}
	if !res.Status.IsTerminal() {
		return txn, nil
	}

	if _, err := s.settle(ctx, txn, res.Status, res.GatewayTransactionID, res.Code, res.Message, ports.SettlementFromStatusCheck, res.Raw); err != nil {
		log.Warn().Err(err).Msg("failed to apply polled status, returning local status")
	}
	return txn, nil
}

// Refund returns the full amount of a completed payment.
func (s *PaymentReconcilerImpl) Refund(ctx context.Context, merchantTxnID string) (*domain.PaymentTransaction, error) {
	txn, err := s.payments.GetByMerchantTxnID(ctx, merchantTxnID)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("load payment transaction: %w", err))
	}
	if txn == nil {
		return nil, apperror.ErrNotFound("Payment transaction")
	}
	if !txn.IsRefundable() {
		return nil, apperror.Validation(fmt.Sprintf("payment %s is %s and cannot be refunded", merchantTxnID, txn.Status))
	}

	req := ports.RefundRequest{
		MerchantTransactionID: merchantTxnID,
		MerchantRefundID:      domain.NewMerchantRefundID(),
		Amount:                txn.Amount,
		Currency:              txn.Currency,
	}
	if txn.GatewayOrderID != nil {
		req.GatewayOrderID = *txn.GatewayOrderID
	}
	if txn.GatewayTransactionID != nil {
		req.GatewayTransactionID = *txn.GatewayTransactionID
	}

	res, err := s.orchestrator.Refund(ctx, txn.Provider, req)
	if err != nil {
		return nil, err
	}

	log := s.log.With().Str("merchant_txn_id", merchantTxnID).Str("refund_id", res.RefundID).Logger()
	now := s.now()
	applied, err := s.payments.MarkRefunded(ctx, merchantTxnID, res.RefundID, now)
	if err != nil {
		log.Error().Err(err).Msg("refund accepted by gateway but local update failed")
		return nil, apperror.ErrDatabaseError(fmt.Errorf("mark refunded: %w", err))
	}
	if !applied {
		log.Warn().Msg("transaction was refunded concurrently")
		return nil, apperror.ErrConflict("Refund")
	}
	txn.RefundID = &res.RefundID
	txn.RefundedAt = &now

	if err := s.orders.UpdatePaymentStatus(ctx, txn.OrderID, domain.OrderPaymentRefunded); err != nil {
		log.Error().Err(err).Msg("failed to update order payment status")
	}
	log.Info().Str("state", res.State).Msg("payment refunded")
	return txn, nil
}

func (s *PaymentReconcilerImpl) record(ctx context.Context, e *domain.InboundEvent, outcome domain.InboundOutcome, cause error) {
	recordInbound(ctx, s.inbound, s.log, e, outcome, cause)
}

// recordInbound writes the inbound-event row. Failures are logged only.
func recordInbound(ctx context.Context, repo ports.InboundEventRepository, log zerolog.Logger, e *domain.InboundEvent, outcome domain.InboundOutcome, cause error) {
	e.ID = uuid.New()
	e.Outcome = outcome
	e.ReceivedAt = time.Now().UTC()
	if cause != nil {
		e.Error = optional(errorMessage(cause))
	}
	if err := repo.Create(ctx, e); err != nil {
		log.Error().Err(err).
			Str("kind", string(e.Kind)).
			Str("reference", e.Reference).
			Str("outcome", string(outcome)).
			Msg("failed to record inbound event")
	}
}

// errorMessage prefers the client-facing message of an AppError.
func errorMessage(err error) string {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return err.Error()
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

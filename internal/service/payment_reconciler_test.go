package service

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"commerce-reconciler/config"
	"commerce-reconciler/internal/core/domain"
	"commerce-reconciler/internal/core/ports"
	"commerce-reconciler/internal/core/ports/mocks"
	"commerce-reconciler/pkg/apperror"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type reconcilerTestDeps struct {
	svc          *PaymentReconcilerImpl
	payments     *mocks.MockPaymentTransactionRepository
	orders       *mocks.MockOrderRepository
	inbound      *mocks.MockInboundEventRepository
	orchestrator *mocks.MockPaymentOrchestrator
	notifier     *mocks.MockNotifier
	ctrl         *gomock.Controller
}

var fixedNow = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

func setupPaymentReconciler(t *testing.T) *reconcilerTestDeps {
	ctrl := gomock.NewController(t)
	d := &reconcilerTestDeps{
		payments:     mocks.NewMockPaymentTransactionRepository(ctrl),
		orders:       mocks.NewMockOrderRepository(ctrl),
		inbound:      mocks.NewMockInboundEventRepository(ctrl),
		orchestrator: mocks.NewMockPaymentOrchestrator(ctrl),
		notifier:     mocks.NewMockNotifier(ctrl),
		ctrl:         ctrl,
	}
	d.svc = NewPaymentReconciler(
		d.payments, d.orders, d.inbound, d.orchestrator, d.notifier,
		config.AppConfig{
			PublicBaseURL:   "https://api.shop.example",
			FrontendBaseURL: "https://shop.example",
			Currency:        "INR",
		},
		newTestLogger(),
	)
	d.svc.now = func() time.Time { return fixedNow }
	return d
}

func testOrder() *domain.Order {
	return &domain.Order{
		ID:            uuid.New(),
		OrderNumber:   "ORD-1001",
		UserID:        uuid.New(),
		CustomerEmail: "asha@example.com",
		Status:        domain.OrderStatusPending,
		PaymentStatus: domain.OrderPaymentPending,
		TotalAmount:   decimal.RequireFromString("149.50"),
		Currency:      "INR",
	}
}

func pendingTxn(orderID uuid.UUID) *domain.PaymentTransaction {
	gwOrder := "OMO123"
	return &domain.PaymentTransaction{
		ID:                    uuid.New(),
		MerchantTransactionID: "MT1",
		OrderID:               orderID,
		Provider:              "PHONEPE",
		Amount:                decimal.RequireFromString("149.50"),
		Currency:              "INR",
		GatewayOrderID:        &gwOrder,
		Status:                domain.PaymentStatusPending,
	}
}

// ==================== Initiate ====================

func TestPaymentReconciler_Initiate_Success(t *testing.T) {
	d := setupPaymentReconciler(t)
	ctx := context.Background()
	order := testOrder()
	expires := fixedNow.Add(15 * time.Minute)

	var created *domain.PaymentTransaction
	d.orchestrator.EXPECT().Providers().Return([]string{"PAYPAL", "PHONEPE"})
	d.orders.EXPECT().GetByID(ctx, order.ID).Return(order, nil)
	d.payments.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, txn *domain.PaymentTransaction) error {
		assert.Equal(t, domain.PaymentStatusInitiated, txn.Status)
		assert.Equal(t, "149.5", txn.Amount.String())
		assert.Equal(t, "PHONEPE", txn.Provider)
		created = txn
		return nil
	})
	d.orchestrator.EXPECT().Initiate(ctx, "PHONEPE", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, req ports.InitiatePaymentRequest) (*ports.InitiatePaymentResult, error) {
			assert.Equal(t, created.MerchantTransactionID, req.MerchantTransactionID)
			assert.True(t, req.Amount.Equal(decimal.RequireFromString("149.50")))
			assert.Equal(t, "ORD-1001", req.OrderNumber)
			assert.Equal(t, "https://shop.example/payment/status/"+created.MerchantTransactionID, req.RedirectURL)
			assert.Equal(t, "https://api.shop.example/api/v1/payments/callback/phonepe", req.CallbackURL)
			return &ports.InitiatePaymentResult{GatewayOrderID: "OMO123", RedirectURL: "https://pay.example/x", ExpiresAt: &expires, Raw: []byte(`{}`)}, nil
		})
	d.payments.EXPECT().MarkPending(ctx, gomock.Any(), "OMO123", gomock.Any()).Return(true, nil)

	res, err := d.svc.Initiate(ctx, ports.CheckoutRequest{
		OrderID:     order.ID,
		Amount:      decimal.RequireFromString("149.50"),
		Provider:    "phonepe",
		Method:      "UPI",
		PrincipalID: order.UserID,
	})
	require.NoError(t, err)
	assert.Equal(t, created.MerchantTransactionID, res.MerchantTransactionID)
	assert.Equal(t, "https://pay.example/x", res.RedirectURL)
	assert.Equal(t, domain.PaymentStatusPending, res.Status)
	assert.Equal(t, &expires, res.ExpiresAt)
}

func TestPaymentReconciler_Initiate_AlreadySettledReturnsStoredStatus(t *testing.T) {
	d := setupPaymentReconciler(t)
	ctx := context.Background()
	order := testOrder()

	var created *domain.PaymentTransaction
	d.orchestrator.EXPECT().Providers().Return([]string{"PHONEPE"})
	d.orders.EXPECT().GetByID(ctx, order.ID).Return(order, nil)
	d.payments.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, txn *domain.PaymentTransaction) error {
		created = txn
		return nil
	})
	d.orchestrator.EXPECT().Initiate(ctx, "PHONEPE", gomock.Any()).
		Return(&ports.InitiatePaymentResult{GatewayOrderID: "OMO123", RedirectURL: "https://pay.example/x", Raw: []byte(`{}`)}, nil)
	d.payments.EXPECT().MarkPending(ctx, gomock.Any(), "OMO123", gomock.Any()).Return(false, nil)
	d.payments.EXPECT().GetByMerchantTxnID(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, id string) (*domain.PaymentTransaction, error) {
		settled := pendingTxn(order.ID)
		settled.MerchantTransactionID = id
		settled.Status = domain.PaymentStatusCompleted
		return settled, nil
	})

	res, err := d.svc.Initiate(ctx, ports.CheckoutRequest{OrderID: order.ID, Amount: decimal.RequireFromString("149.50"), Provider: "PHONEPE"})
	require.NoError(t, err)
	assert.Equal(t, created.MerchantTransactionID, res.MerchantTransactionID)
	assert.Equal(t, domain.PaymentStatusCompleted, res.Status)
	assert.Equal(t, "https://pay.example/x", res.RedirectURL)
}

func TestPaymentReconciler_Initiate_AlreadySettledReloadFails(t *testing.T) {
	d := setupPaymentReconciler(t)
	ctx := context.Background()
	order := testOrder()

	d.orchestrator.EXPECT().Providers().Return([]string{"PHONEPE"})
	d.orders.EXPECT().GetByID(ctx, order.ID).Return(order, nil)
	d.payments.EXPECT().Create(ctx, gomock.Any()).Return(nil)
	d.orchestrator.EXPECT().Initiate(ctx, "PHONEPE", gomock.Any()).
		Return(&ports.InitiatePaymentResult{GatewayOrderID: "OMO123", Raw: []byte(`{}`)}, nil)
	d.payments.EXPECT().MarkPending(ctx, gomock.Any(), "OMO123", gomock.Any()).Return(false, nil)
	d.payments.EXPECT().GetByMerchantTxnID(ctx, gomock.Any()).Return(nil, errors.New("conn reset"))

	_, err := d.svc.Initiate(ctx, ports.CheckoutRequest{OrderID: order.ID, Amount: decimal.NewFromInt(10), Provider: "PHONEPE"})
	assert.True(t, apperror.Is(err, apperror.CodeInternal))
}

func TestPaymentReconciler_Initiate_RejectsNonPositiveAmount(t *testing.T) {
	d := setupPaymentReconciler(t)

	for _, amt := range []string{"0", "-5"} {
		_, err := d.svc.Initiate(context.Background(), ports.CheckoutRequest{
			OrderID:  uuid.New(),
			Amount:   decimal.RequireFromString(amt),
			Provider: "PHONEPE",
		})
		assert.True(t, apperror.Is(err, apperror.CodeInvalidAmount), amt)
	}
}

func TestPaymentReconciler_Initiate_UnconfiguredProvider(t *testing.T) {
	d := setupPaymentReconciler(t)
	d.orchestrator.EXPECT().Providers().Return([]string{"PHONEPE"})

	_, err := d.svc.Initiate(context.Background(), ports.CheckoutRequest{
		OrderID:  uuid.New(),
		Amount:   decimal.NewFromInt(10),
		Provider: "stripe",
	})
	assert.True(t, apperror.Is(err, apperror.CodeNotConfigured))
}

func TestPaymentReconciler_Initiate_OrderChecks(t *testing.T) {
	d := setupPaymentReconciler(t)
	ctx := context.Background()
	order := testOrder()

	d.orchestrator.EXPECT().Providers().Return([]string{"PHONEPE"}).Times(2)
	d.orders.EXPECT().GetByID(ctx, gomock.Any()).Return(nil, nil)
	_, err := d.svc.Initiate(ctx, ports.CheckoutRequest{OrderID: uuid.New(), Amount: decimal.NewFromInt(1), Provider: "PHONEPE"})
	assert.True(t, apperror.Is(err, apperror.CodeNotFound))

	d.orders.EXPECT().GetByID(ctx, order.ID).Return(order, nil)
	_, err = d.svc.Initiate(ctx, ports.CheckoutRequest{OrderID: order.ID, Amount: decimal.NewFromInt(1), Provider: "PHONEPE", PrincipalID: uuid.New()})
	assert.True(t, apperror.Is(err, apperror.CodeForbidden))
}

func TestPaymentReconciler_Initiate_GatewayRejectsMarksFailed(t *testing.T) {
	d := setupPaymentReconciler(t)
	ctx := context.Background()
	order := testOrder()

	d.orchestrator.EXPECT().Providers().Return([]string{"PHONEPE"})
	d.orders.EXPECT().GetByID(ctx, order.ID).Return(order, nil)
	d.payments.EXPECT().Create(ctx, gomock.Any()).Return(nil)
	d.orchestrator.EXPECT().Initiate(ctx, "PHONEPE", gomock.Any()).Return(nil, apperror.ErrUpstream("PHONEPE", "merchant inactive"))
	d.payments.EXPECT().MarkInitiationFailed(ctx, gomock.Any(), apperror.CodeUpstream, "PHONEPE: merchant inactive", gomock.Nil()).Return(true, nil)

	_, err := d.svc.Initiate(ctx, ports.CheckoutRequest{OrderID: order.ID, Amount: decimal.NewFromInt(10), Provider: "PHONEPE"})
	assert.True(t, apperror.Is(err, apperror.CodeUpstream))
}

func TestPaymentReconciler_Initiate_TimeoutLeavesInitiated(t *testing.T) {
	d := setupPaymentReconciler(t)
	ctx := context.Background()
	order := testOrder()

	d.orchestrator.EXPECT().Providers().Return([]string{"PHONEPE"})
	d.orders.EXPECT().GetByID(ctx, order.ID).Return(order, nil)
	d.payments.EXPECT().Create(ctx, gomock.Any()).Return(nil)
	d.orchestrator.EXPECT().Initiate(ctx, "PHONEPE", gomock.Any()).Return(nil, apperror.ErrTransport("PHONEPE", context.DeadlineExceeded))
	// no MarkInitiationFailed / MarkPending expected

	_, err := d.svc.Initiate(ctx, ports.CheckoutRequest{OrderID: order.ID, Amount: decimal.NewFromInt(10), Provider: "PHONEPE"})
	assert.True(t, apperror.Is(err, apperror.CodeTransport))
}

// ==================== HandleCallback ====================

func TestPaymentReconciler_HandleCallback_CompletesOnce(t *testing.T) {
	d := setupPaymentReconciler(t)
	ctx := context.Background()
	order := testOrder()
	body := []byte(`{"response":"eyJ9"}`)
	hdr := http.Header{}
	cb := &ports.PaymentCallback{MerchantTransactionID: "MT1", GatewayTransactionID: "T2401", Success: true, Code: "PAYMENT_SUCCESS", Raw: []byte(`{"success":true}`)}

	// first delivery settles
	d.orchestrator.EXPECT().VerifyCallback(ctx, "PHONEPE", body, hdr).Return(cb, nil).Times(2)
	d.payments.EXPECT().GetByMerchantTxnID(ctx, "MT1").Return(pendingTxn(order.ID), nil)
	d.payments.EXPECT().Settle(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, s ports.PaymentSettlement) (bool, error) {
		assert.Equal(t, domain.PaymentStatusCompleted, s.Status)
		assert.Equal(t, ports.SettlementFromCallback, s.Source)
		require.NotNil(t, s.GatewayTransactionID)
		assert.Equal(t, "T2401", *s.GatewayTransactionID)
		assert.Nil(t, s.ErrorCode)
		return true, nil
	})
	d.orders.EXPECT().UpdatePaymentStatus(ctx, order.ID, domain.OrderPaymentPaid).Return(nil)
	d.orders.EXPECT().GetByID(ctx, order.ID).Return(order, nil)
	d.notifier.EXPECT().PaymentSucceeded(ctx, order, gomock.Any()).Return(nil).Times(1)

	var outcomes []domain.InboundOutcome
	d.inbound.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, e *domain.InboundEvent) error {
		assert.Equal(t, domain.InboundKindPaymentCallback, e.Kind)
		assert.Equal(t, "MT1", e.Reference)
		outcomes = append(outcomes, e.Outcome)
		return nil
	}).Times(2)

	txn, err := d.svc.HandleCallback(ctx, "phonepe", body, hdr)
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusCompleted, txn.Status)
	assert.True(t, txn.Amount.Equal(decimal.RequireFromString("149.50")))

	// redelivery: already COMPLETED, no settle, no second notification
	completed := pendingTxn(order.ID)
	completed.Status = domain.PaymentStatusCompleted
	d.payments.EXPECT().GetByMerchantTxnID(ctx, "MT1").Return(completed, nil)

	txn, err = d.svc.HandleCallback(ctx, "PHONEPE", body, hdr)
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusCompleted, txn.Status)
	assert.Equal(t, []domain.InboundOutcome{domain.InboundOutcomeProcessed, domain.InboundOutcomeDuplicate}, outcomes)
}

func TestPaymentReconciler_HandleCallback_Failure(t *testing.T) {
	d := setupPaymentReconciler(t)
	ctx := context.Background()
	order := testOrder()
	cb := &ports.PaymentCallback{MerchantTransactionID: "MT1", Success: false, Code: "PAYMENT_DECLINED", Message: "Card declined"}

	d.orchestrator.EXPECT().VerifyCallback(ctx, "PHONEPE", gomock.Any(), gomock.Any()).Return(cb, nil)
	d.payments.EXPECT().GetByMerchantTxnID(ctx, "MT1").Return(pendingTxn(order.ID), nil)
	d.payments.EXPECT().Settle(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, s ports.PaymentSettlement) (bool, error) {
		assert.Equal(t, domain.PaymentStatusFailed, s.Status)
		assert.Equal(t, "PAYMENT_DECLINED", *s.ErrorCode)
		assert.Equal(t, "Card declined", *s.ErrorMessage)
		assert.Nil(t, s.GatewayTransactionID)
		return true, nil
	})
	d.orders.EXPECT().UpdatePaymentStatus(ctx, order.ID, domain.OrderPaymentFailed).Return(errors.New("db down"))
	d.orders.EXPECT().GetByID(ctx, order.ID).Return(order, nil)
	d.notifier.EXPECT().PaymentFailed(ctx, order, gomock.Any()).Return(nil)
	d.inbound.EXPECT().Create(ctx, gomock.Any()).Return(nil)

	txn, err := d.svc.HandleCallback(ctx, "PHONEPE", []byte(`{}`), http.Header{})
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusFailed, txn.Status)
	require.NotNil(t, txn.ErrorCode)
	assert.Equal(t, "PAYMENT_DECLINED", *txn.ErrorCode)
}

func TestPaymentReconciler_HandleCallback_LostRace(t *testing.T) {
	d := setupPaymentReconciler(t)
	ctx := context.Background()
	order := testOrder()
	cb := &ports.PaymentCallback{MerchantTransactionID: "MT1", Success: true}

	completed := pendingTxn(order.ID)
	completed.Status = domain.PaymentStatusCompleted

	d.orchestrator.EXPECT().VerifyCallback(ctx, "PHONEPE", gomock.Any(), gomock.Any()).Return(cb, nil)
	gomock.InOrder(
		d.payments.EXPECT().GetByMerchantTxnID(ctx, "MT1").Return(pendingTxn(order.ID), nil),
		d.payments.EXPECT().Settle(ctx, gomock.Any()).Return(false, nil),
		d.payments.EXPECT().GetByMerchantTxnID(ctx, "MT1").Return(completed, nil),
	)
	d.inbound.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, e *domain.InboundEvent) error {
		assert.Equal(t, domain.InboundOutcomeDuplicate, e.Outcome)
		return nil
	})
	// no order update, no notification

	txn, err := d.svc.HandleCallback(ctx, "PHONEPE", []byte(`{}`), http.Header{})
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusCompleted, txn.Status)
}

func TestPaymentReconciler_HandleCallback_Pending(t *testing.T) {
	d := setupPaymentReconciler(t)
	ctx := context.Background()
	cb := &ports.PaymentCallback{MerchantTransactionID: "MT1", Pending: true, Code: "PAYMENT_PENDING"}

	d.orchestrator.EXPECT().VerifyCallback(ctx, "PHONEPE", gomock.Any(), gomock.Any()).Return(cb, nil)
	d.payments.EXPECT().GetByMerchantTxnID(ctx, "MT1").Return(pendingTxn(uuid.New()), nil)
	d.inbound.EXPECT().Create(ctx, gomock.Any()).Return(nil)

	txn, err := d.svc.HandleCallback(ctx, "PHONEPE", []byte(`{}`), http.Header{})
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusPending, txn.Status)
}

func TestPaymentReconciler_HandleCallback_Rejections(t *testing.T) {
	ctx := context.Background()

	t.Run("bad signature", func(t *testing.T) {
		d := setupPaymentReconciler(t)
		d.orchestrator.EXPECT().VerifyCallback(ctx, "PHONEPE", gomock.Any(), gomock.Any()).Return(nil, apperror.ErrInvalidSignature())
		d.inbound.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, e *domain.InboundEvent) error {
			assert.Equal(t, domain.InboundOutcomeRejected, e.Outcome)
			require.NotNil(t, e.Error)
			assert.Equal(t, "Invalid signature", *e.Error)
			return nil
		})

		_, err := d.svc.HandleCallback(ctx, "PHONEPE", []byte(`{}`), http.Header{})
		assert.True(t, apperror.Is(err, apperror.CodeSignature))
	})

	t.Run("unknown transaction", func(t *testing.T) {
		d := setupPaymentReconciler(t)
		d.orchestrator.EXPECT().VerifyCallback(ctx, "PHONEPE", gomock.Any(), gomock.Any()).
			Return(&ports.PaymentCallback{MerchantTransactionID: "MT404", Success: true}, nil)
		d.payments.EXPECT().GetByMerchantTxnID(ctx, "MT404").Return(nil, nil)
		d.inbound.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, e *domain.InboundEvent) error {
			assert.Equal(t, domain.InboundOutcomeUnmatched, e.Outcome)
			return nil
		})

		_, err := d.svc.HandleCallback(ctx, "PHONEPE", []byte(`{}`), http.Header{})
		assert.True(t, apperror.Is(err, apperror.CodeNotFound))
	})

	t.Run("wrong provider", func(t *testing.T) {
		d := setupPaymentReconciler(t)
		d.orchestrator.EXPECT().VerifyCallback(ctx, "PAYPAL", gomock.Any(), gomock.Any()).
			Return(&ports.PaymentCallback{MerchantTransactionID: "MT1", Success: true}, nil)
		d.payments.EXPECT().GetByMerchantTxnID(ctx, "MT1").Return(pendingTxn(uuid.New()), nil)
		d.inbound.EXPECT().Create(ctx, gomock.Any()).Return(errors.New("insert failed"))

		_, err := d.svc.HandleCallback(ctx, "paypal", []byte(`{}`), http.Header{})
		assert.True(t, apperror.Is(err, apperror.CodeValidation))
	})
}

// ==================== CheckStatus ====================

func TestPaymentReconciler_CheckStatus_TerminalSkipsGateway(t *testing.T) {
	d := setupPaymentReconciler(t)
	txn := pendingTxn(uuid.New())
	txn.Status = domain.PaymentStatusFailed
	d.payments.EXPECT().GetByMerchantTxnID(gomock.Any(), "MT1").Return(txn, nil)

	got, err := d.svc.CheckStatus(context.Background(), "MT1")
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusFailed, got.Status)
}

func TestPaymentReconciler_CheckStatus_AppliesCompletion(t *testing.T) {
	d := setupPaymentReconciler(t)
	ctx := context.Background()
	order := testOrder()

	d.payments.EXPECT().GetByMerchantTxnID(ctx, "MT1").Return(pendingTxn(order.ID), nil)
	d.orchestrator.EXPECT().CheckStatus(ctx, "PHONEPE", ports.PaymentStatusQuery{MerchantTransactionID: "MT1", GatewayOrderID: "OMO123"}).
		Return(&ports.PaymentStatusResult{Status: domain.PaymentStatusCompleted, GatewayTransactionID: "T9", Raw: []byte(`{"state":"COMPLETED"}`)}, nil)
	d.payments.EXPECT().SaveStatusResponse(ctx, "MT1", gomock.Any()).Return(nil)
	d.payments.EXPECT().Settle(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, s ports.PaymentSettlement) (bool, error) {
		assert.Equal(t, ports.SettlementFromStatusCheck, s.Source)
		return true, nil
	})
	d.orders.EXPECT().UpdatePaymentStatus(ctx, order.ID, domain.OrderPaymentPaid).Return(nil)
	d.orders.EXPECT().GetByID(ctx, order.ID).Return(order, nil)
	d.notifier.EXPECT().PaymentSucceeded(ctx, order, gomock.Any()).Return(errors.New("smtp down"))

	got, err := d.svc.CheckStatus(ctx, "MT1")
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusCompleted, got.Status)
	assert.Equal(t, "T9", *got.GatewayTransactionID)
	assert.Equal(t, fixedNow, *got.CompletedAt)
}

func TestPaymentReconciler_CheckStatus_GatewayFailureFallsBack(t *testing.T) {
	d := setupPaymentReconciler(t)
	ctx := context.Background()

	d.payments.EXPECT().GetByMerchantTxnID(ctx, "MT1").Return(pendingTxn(uuid.New()), nil)
	d.orchestrator.EXPECT().CheckStatus(ctx, "PHONEPE", gomock.Any()).Return(nil, apperror.ErrTransport("PHONEPE", context.DeadlineExceeded))

	got, err := d.svc.CheckStatus(ctx, "MT1")
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusPending, got.Status)
}

func TestPaymentReconciler_CheckStatus_StillPending(t *testing.T) {
	d := setupPaymentReconciler(t)
	ctx := context.Background()

	d.payments.EXPECT().GetByMerchantTxnID(ctx, "MT1").Return(pendingTxn(uuid.New()), nil)
	d.orchestrator.EXPECT().CheckStatus(ctx, "PHONEPE", gomock.Any()).Return(&ports.PaymentStatusResult{Status: domain.PaymentStatusPending}, nil)
	d.payments.EXPECT().SaveStatusResponse(ctx, "MT1", gomock.Any()).Return(errors.New("ignored"))

	got, err := d.svc.CheckStatus(ctx, "MT1")
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusPending, got.Status)
}

func TestPaymentReconciler_CheckStatus_NotFound(t *testing.T) {
	d := setupPaymentReconciler(t)
	d.payments.EXPECT().GetByMerchantTxnID(gomock.Any(), "nope").Return(nil, nil)

	_, err := d.svc.CheckStatus(context.Background(), "nope")
	assert.True(t, apperror.Is(err, apperror.CodeNotFound))
}

// ==================== Refund ====================

func TestPaymentReconciler_Refund_Success(t *testing.T) {
	d := setupPaymentReconciler(t)
	ctx := context.Background()
	txn := pendingTxn(uuid.New())
	txn.Status = domain.PaymentStatusCompleted
	capture := "CAPTURE-9"
	txn.GatewayTransactionID = &capture

	d.payments.EXPECT().GetByMerchantTxnID(ctx, "MT1").Return(txn, nil)
	d.orchestrator.EXPECT().Refund(ctx, "PHONEPE", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, req ports.RefundRequest) (*ports.RefundResult, error) {
			assert.Equal(t, "MT1", req.MerchantTransactionID)
			assert.Equal(t, "CAPTURE-9", req.GatewayTransactionID)
			assert.Equal(t, "OMO123", req.GatewayOrderID)
			assert.Regexp(t, `^RF[0-9A-F]{32}$`, req.MerchantRefundID)
			assert.True(t, req.Amount.Equal(decimal.RequireFromString("149.50")))
			return &ports.RefundResult{RefundID: "OMR1", State: "PENDING"}, nil
		})
	d.payments.EXPECT().MarkRefunded(ctx, "MT1", "OMR1", fixedNow).Return(true, nil)
	d.orders.EXPECT().UpdatePaymentStatus(ctx, txn.OrderID, domain.OrderPaymentRefunded).Return(nil)

	got, err := d.svc.Refund(ctx, "MT1")
	require.NoError(t, err)
	assert.Equal(t, "OMR1", *got.RefundID)
	assert.False(t, got.IsRefundable())
}

func TestPaymentReconciler_Refund_NotRefundable(t *testing.T) {
	d := setupPaymentReconciler(t)
	d.payments.EXPECT().GetByMerchantTxnID(gomock.Any(), "MT1").Return(pendingTxn(uuid.New()), nil)

	_, err := d.svc.Refund(context.Background(), "MT1")
	assert.True(t, apperror.Is(err, apperror.CodeValidation))
}

func TestPaymentReconciler_Refund_ConcurrentRefund(t *testing.T) {
	d := setupPaymentReconciler(t)
	ctx := context.Background()
	txn := pendingTxn(uuid.New())
	txn.Status = domain.PaymentStatusCompleted

	d.payments.EXPECT().GetByMerchantTxnID(ctx, "MT1").Return(txn, nil)
	d.orchestrator.EXPECT().Refund(ctx, "PHONEPE", gomock.Any()).Return(&ports.RefundResult{RefundID: "OMR2"}, nil)
	d.payments.EXPECT().MarkRefunded(ctx, "MT1", "OMR2", fixedNow).Return(false, nil)

	_, err := d.svc.Refund(ctx, "MT1")
	assert.True(t, apperror.Is(err, apperror.CodeConflict))
}

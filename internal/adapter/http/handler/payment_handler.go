package handler

import (
	"strings"

	"commerce-reconciler/internal/adapter/http/dto"
	"commerce-reconciler/internal/adapter/http/middleware"
	"commerce-reconciler/internal/core/ports"
	"commerce-reconciler/pkg/apperror"
	"commerce-reconciler/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// PaymentHandler handles checkout, gateway callbacks, and refunds.
type PaymentHandler struct {
	payments ports.PaymentReconciler
	log      zerolog.Logger
}

// NewPaymentHandler creates a new PaymentHandler.
func NewPaymentHandler(payments ports.PaymentReconciler, log zerolog.Logger) *PaymentHandler {
	return &PaymentHandler{payments: payments, log: log}
}

// Checkout handles POST /api/v1/checkout.
func (h *PaymentHandler) Checkout(c *gin.Context) {
	var req dto.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	orderID, err := uuid.Parse(req.OrderID)
	if err != nil {
		response.Error(c, apperror.Validation("order_id must be a UUID"))
		return
	}

	result, err := h.payments.Initiate(c.Request.Context(), ports.CheckoutRequest{
		OrderID:     orderID,
		Amount:      req.Amount,
		Provider:    strings.ToUpper(req.Provider),
		Method:      req.Method,
		PrincipalID: middleware.UserID(c),
		Customer: ports.CustomerInfo{
			Name:  req.CustomerName,
			Email: req.CustomerEmail,
			Phone: req.CustomerPhone,
		},
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.CheckoutResponse{
		MerchantTransactionID: result.MerchantTransactionID,
		RedirectURL:           result.RedirectURL,
		Status:                string(result.Status),
		ExpiresAt:             result.ExpiresAt,
	})
}

// GetStatus handles GET /api/v1/payments/:merchant_txn_id.
func (h *PaymentHandler) GetStatus(c *gin.Context) {
	var uri dto.TransactionURI
	if err := c.ShouldBindUri(&uri); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	txn, err := h.payments.CheckStatus(c.Request.Context(), uri.MerchantTxnID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.NewPaymentResponse(txn))
}

// Callback handles POST /api/v1/payments/callback/:provider. The gateway
// always gets 200; the outcome is kept in the inbound event log.
func (h *PaymentHandler) Callback(c *gin.Context) {
	provider := strings.ToUpper(c.Param("provider"))

	body, err := c.GetRawData()
	if err != nil {
		h.log.Warn().Err(err).Str("provider", provider).Msg("callback body unreadable")
		response.Ack(c)
		return
	}

	txn, err := h.payments.HandleCallback(c.Request.Context(), provider, body, c.Request.Header)
	if err != nil {
		h.log.Warn().Err(err).
			Str("provider", provider).
			Str("request_id", c.GetString(middleware.CtxRequestID)).
			Msg("callback not applied")
	} else if txn != nil {
		h.log.Info().
			Str("provider", provider).
			Str("merchant_txn_id", txn.MerchantTransactionID).
			Str("status", string(txn.Status)).
			Msg("callback processed")
	}
	response.Ack(c)
}

// Refund handles POST /api/v1/admin/payments/:merchant_txn_id/refund.
func (h *PaymentHandler) Refund(c *gin.Context) {
	var uri dto.TransactionURI
	if err := c.ShouldBindUri(&uri); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	txn, err := h.payments.Refund(c.Request.Context(), uri.MerchantTxnID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.NewPaymentResponse(txn))
}

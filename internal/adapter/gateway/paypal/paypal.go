// Package paypal implements ports.PaymentGateway on PayPal Orders v2.
package paypal

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"commerce-reconciler/config"
	"commerce-reconciler/internal/adapter/gateway"
	"commerce-reconciler/internal/core/domain"
	"commerce-reconciler/internal/core/ports"
	"commerce-reconciler/pkg/apperror"

	pp "github.com/plutov/paypal/v4"
	"github.com/rs/zerolog"
	"github.com/tidwall/gjson"
)

const (
	Name          = "PAYPAL"
	intentCapture = "CAPTURE"
)

// Gateway wraps the PayPal SDK client. The SDK manages its own OAuth token.
type Gateway struct {
	client    *pp.Client
	webhookID string
	log       zerolog.Logger
}

// New creates a gateway against the sandbox or live API.
func New(cfg config.PayPalConfig, log zerolog.Logger) (*Gateway, error) {
	base := pp.APIBaseLive
	if cfg.Sandbox {
		base = pp.APIBaseSandBox
	}
	return NewWithBaseURL(cfg, base, log)
}

// NewWithBaseURL creates a gateway against an explicit API base.
func NewWithBaseURL(cfg config.PayPalConfig, apiBase string, log zerolog.Logger) (*Gateway, error) {
	client, err := pp.NewClient(cfg.ClientID, cfg.ClientSecret, apiBase)
	if err != nil {
		return nil, fmt.Errorf("creating paypal client: %w", err)
	}
	client.SetHTTPClient(&http.Client{Timeout: cfg.Timeout})

	return &Gateway{
		client:    client,
		webhookID: cfg.WebhookID,
		log:       log.With().Str("gateway", Name).Logger(),
	}, nil
}

func (g *Gateway) Name() string { return Name }

func (g *Gateway) Initiate(ctx context.Context, req ports.InitiatePaymentRequest) (*ports.InitiatePaymentResult, error) {
	ref := req.OrderNumber
	if ref == "" {
		ref = req.MerchantTransactionID
	}

	order, err := g.client.CreateOrder(ctx, intentCapture, []pp.PurchaseUnitRequest{{
		ReferenceID: ref,
		CustomID:    req.MerchantTransactionID,
		InvoiceID:   req.MerchantTransactionID,
		Amount: &pp.PurchaseUnitAmount{
			Currency: req.Currency,
			Value:    req.Amount.StringFixed(2),
		},
	}}, nil, &pp.ApplicationContext{
		ReturnURL: req.RedirectURL,
		CancelURL: req.RedirectURL,
	})
	if err != nil {
		return nil, g.mapError(err)
	}

	approve := approvalURL(order)
	if approve == "" {
		return nil, apperror.ErrUpstream(Name, "order has no approval link")
	}

	raw, _ := json.Marshal(order)
	g.log.Info().Str("merchant_txn_id", req.MerchantTransactionID).Str("paypal_order_id", order.ID).Msg("order created")
	return &ports.InitiatePaymentResult{
		GatewayOrderID: order.ID,
		RedirectURL:    approve,
		State:          order.Status,
		Raw:            raw,
	}, nil
}

func approvalURL(order *pp.Order) string {
	for _, link := range order.Links {
		if link.Rel == "approve" || link.Rel == "payer-action" {
			return link.Href
		}
	}
	return ""
}

// CheckStatus reads the PayPal order. An APPROVED order is captured here,
// since PayPal only moves money on capture.
func (g *Gateway) CheckStatus(ctx context.Context, q ports.PaymentStatusQuery) (*ports.PaymentStatusResult, error) {
	if q.GatewayOrderID == "" {
		return nil, apperror.Validation("PAYPAL: order id required for status check")
	}

	order, err := g.client.GetOrder(ctx, q.GatewayOrderID)
	if err != nil {
		return nil, g.mapError(err)
	}

	switch order.Status {
	case "APPROVED":
		capture, err := g.client.CaptureOrder(ctx, q.GatewayOrderID, pp.CaptureOrderRequest{})
		if err != nil {
			return nil, g.mapError(err)
		}
		raw, _ := json.Marshal(capture)
		return captureResult(raw), nil
	case "COMPLETED":
		raw, _ := json.Marshal(order)
		return captureResult(raw), nil
	case "VOIDED":
		raw, _ := json.Marshal(order)
		return &ports.PaymentStatusResult{Status: domain.PaymentStatusFailed, Code: "VOIDED", Message: "order voided", Raw: raw}, nil
	default:
		raw, _ := json.Marshal(order)
		return &ports.PaymentStatusResult{Status: domain.PaymentStatusPending, Code: order.Status, Raw: raw}, nil
	}
}

// captureResult reads the first capture of a captured order.
func captureResult(raw []byte) *ports.PaymentStatusResult {
	capture := gjson.GetBytes(raw, "purchase_units.0.payments.captures.0")
	res := &ports.PaymentStatusResult{
		GatewayTransactionID: capture.Get("id").String(),
		Code:                 capture.Get("status").String(),
		Raw:                  raw,
	}
	switch res.Code {
	case "COMPLETED":
		res.Status = domain.PaymentStatusCompleted
	case "DECLINED", "FAILED":
		res.Status = domain.PaymentStatusFailed
		res.Message = capture.Get("status_details.reason").String()
	default:
		res.Status = domain.PaymentStatusPending
	}
	return res
}

// Refund refunds a capture. GatewayTransactionID must hold the capture id.
func (g *Gateway) Refund(ctx context.Context, req ports.RefundRequest) (*ports.RefundResult, error) {
	if req.GatewayTransactionID == "" {
		return nil, apperror.Validation("PAYPAL: capture id required for refund")
	}

	resp, err := g.client.RefundCapture(ctx, req.GatewayTransactionID, pp.RefundCaptureRequest{
		Amount: &pp.Money{
			Currency: req.Currency,
			Value:    req.Amount.StringFixed(2),
		},
	})
	if err != nil {
		return nil, g.mapError(err)
	}

	raw, _ := json.Marshal(resp)
	return &ports.RefundResult{RefundID: resp.ID, State: resp.Status, Raw: raw}, nil
}

// VerifyCallback asks PayPal to verify the webhook signature headers, then
// decodes the event. Our merchant transaction id travels as custom_id.
func (g *Gateway) VerifyCallback(ctx context.Context, body []byte, headers http.Header) (*ports.PaymentCallback, error) {
	if !gjson.ValidBytes(body) {
		return nil, apperror.Validation("PAYPAL webhook: body is not JSON")
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, "/", bytes.NewReader(body))
	if err != nil {
		return nil, apperror.InternalError(err)
	}
	httpReq.Header = headers.Clone()

	verdict, err := g.client.VerifyWebhookSignature(ctx, httpReq, g.webhookID)
	if err != nil {
		return nil, g.mapError(err)
	}
	if verdict.VerificationStatus != "SUCCESS" {
		g.log.Warn().Str("verification_status", verdict.VerificationStatus).Msg("webhook signature rejected")
		return nil, apperror.ErrInvalidSignature()
	}

	event := gjson.ParseBytes(body)
	eventType := event.Get("event_type").String()
	resource := event.Get("resource")

	cb := &ports.PaymentCallback{
		Code:    eventType,
		Message: event.Get("summary").String(),
		Raw:     body,
	}

	switch eventType {
	case "PAYMENT.CAPTURE.COMPLETED":
		cb.Success = true
		cb.MerchantTransactionID = resource.Get("custom_id").String()
		cb.GatewayTransactionID = resource.Get("id").String()
	case "PAYMENT.CAPTURE.DENIED", "PAYMENT.CAPTURE.DECLINED":
		cb.MerchantTransactionID = resource.Get("custom_id").String()
		cb.GatewayTransactionID = resource.Get("id").String()
	case "PAYMENT.CAPTURE.PENDING":
		cb.Pending = true
		cb.MerchantTransactionID = resource.Get("custom_id").String()
	case "CHECKOUT.ORDER.APPROVED", "CHECKOUT.ORDER.COMPLETED":
		cb.Pending = true
		cb.MerchantTransactionID = resource.Get("purchase_units.0.custom_id").String()
	default:
		return nil, apperror.Validation(fmt.Sprintf("PAYPAL webhook: unsupported event %q", eventType))
	}

	if cb.MerchantTransactionID == "" {
		return nil, apperror.Validation("PAYPAL webhook: missing custom_id")
	}
	return cb, nil
}

func (g *Gateway) mapError(err error) error {
	var apiErr *pp.ErrorResponse
	if errors.As(err, &apiErr) && apiErr.Response != nil {
		return gateway.ClassifyStatus(Name, apiErr.Response.StatusCode, apiErr.Message)
	}
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return apperror.ErrTransport(Name, err)
	}
	return apperror.ErrUpstream(Name, err.Error())
}

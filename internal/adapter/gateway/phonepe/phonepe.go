// Package phonepe implements ports.PaymentGateway for PhonePe PG checkout.
package phonepe

import (
	"context"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"commerce-reconciler/config"
	"commerce-reconciler/internal/adapter/gateway"
	"commerce-reconciler/internal/adapter/gateway/credential"
	"commerce-reconciler/internal/core/domain"
	"commerce-reconciler/internal/core/ports"
	"commerce-reconciler/pkg/apperror"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/spf13/cast"
	"github.com/tidwall/gjson"
)

// Name is the registry key of this gateway.
const Name = "PHONEPE"

const (
	HeaderVerify  = "X-Verify"
	checksumSplit = "###"
)

// Gateway talks to the PhonePe v2 checkout API.
type Gateway struct {
	cfg    config.PhonePeConfig
	client *gateway.Client
	cred   *credential.Cache
	log    zerolog.Logger
}

// New creates a PhonePe gateway. Access tokens are cached per process.
func New(cfg config.PhonePeConfig, log zerolog.Logger) *Gateway {
	g := &Gateway{
		cfg:    cfg,
		client: gateway.NewClient(Name, cfg.Timeout, log),
		log:    log.With().Str("gateway", Name).Logger(),
	}
	g.cred = credential.New(Name, g.exchange, log)
	return g
}

func (g *Gateway) Name() string { return Name }

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresAt   int64  `json:"expires_at"`
	TokenType   string `json:"token_type"`
}

func (g *Gateway) exchange(ctx context.Context) (*credential.Token, error) {
	form := url.Values{}
	form.Set("client_id", g.cfg.ClientID)
	form.Set("client_version", g.cfg.ClientVersion)
	form.Set("client_secret", g.cfg.ClientSecret)
	form.Set("grant_type", "client_credentials")

	req, err := g.client.NewRequest(ctx, http.MethodPost, g.cfg.AuthURL, []byte(form.Encode()), "application/x-www-form-urlencoded")
	if err != nil {
		return nil, err
	}
	body, err := g.client.Do(req)
	if err != nil {
		switch apperror.CodeOf(err) {
		case apperror.CodeTransport, apperror.CodeCredential:
			return nil, err
		}
		msg := gateway.Message(body)
		if msg == "" {
			msg = "token endpoint error"
		}
		return nil, apperror.ErrCredential(Name, msg, err)
	}

	var tr tokenResponse
	if err := json.Unmarshal(body, &tr); err != nil {
		return nil, apperror.ErrCredential(Name, "malformed token response", err)
	}
	return &credential.Token{AccessToken: tr.AccessToken, ExpiresAt: tr.ExpiresAt}, nil
}

// authorized sends an O-Bearer request. A rejected token is dropped so the
// next call performs a fresh exchange.
func (g *Gateway) authorized(ctx context.Context, method, path string, payload any) ([]byte, error) {
	token, err := g.cred.Acquire(ctx)
	if err != nil {
		return nil, err
	}

	var raw []byte
	contentType := ""
	if payload != nil {
		if raw, err = json.Marshal(payload); err != nil {
			return nil, apperror.InternalError(fmt.Errorf("encoding %s payload: %w", Name, err))
		}
		contentType = "application/json"
	}

	req, err := g.client.NewRequest(ctx, method, strings.TrimRight(g.cfg.BaseURL, "/")+path, raw, contentType)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "O-Bearer "+token)

	body, err := g.client.Do(req)
	if apperror.Is(err, apperror.CodeCredential) {
		g.cred.Invalidate()
	}
	return body, err
}

// ToMinorUnits converts a major-unit amount to paise. Fractions of a paisa
// are rejected.
func ToMinorUnits(amount decimal.Decimal) (int64, error) {
	minor := amount.Shift(2)
	if !minor.IsInteger() {
		return 0, apperror.Validation(fmt.Sprintf("amount %s has more than two decimal places", amount.String()))
	}
	return minor.IntPart(), nil
}

type payRequest struct {
	MerchantOrderID string      `json:"merchantOrderId"`
	Amount          int64       `json:"amount"`
	MetaInfo        *metaInfo   `json:"metaInfo,omitempty"`
	PaymentFlow     paymentFlow `json:"paymentFlow"`
}

type metaInfo struct {
	UDF1 string `json:"udf1,omitempty"`
}

type paymentFlow struct {
	Type         string       `json:"type"`
	Message      string       `json:"message,omitempty"`
	MerchantURLs merchantURLs `json:"merchantUrls"`
}

type merchantURLs struct {
	RedirectURL string `json:"redirectUrl"`
}

type payResponse struct {
	OrderID     string `json:"orderId"`
	State       string `json:"state"`
	ExpireAt    int64  `json:"expireAt"` // epoch millis
	RedirectURL string `json:"redirectUrl"`
}

func (g *Gateway) Initiate(ctx context.Context, req ports.InitiatePaymentRequest) (*ports.InitiatePaymentResult, error) {
	amount, err := ToMinorUnits(req.Amount)
	if err != nil {
		return nil, err
	}

	body, err := g.authorized(ctx, http.MethodPost, "/checkout/v2/pay", payRequest{
		MerchantOrderID: req.MerchantTransactionID,
		Amount:          amount,
		MetaInfo:        &metaInfo{UDF1: req.OrderNumber},
		PaymentFlow: paymentFlow{
			Type:         "PG_CHECKOUT",
			Message:      "Payment for order " + req.OrderNumber,
			MerchantURLs: merchantURLs{RedirectURL: req.RedirectURL},
		},
	})
	if err != nil {
		return nil, err
	}

	var pr payResponse
	if err := json.Unmarshal(body, &pr); err != nil {
		return nil, apperror.ErrUpstream(Name, "malformed pay response")
	}
	if pr.RedirectURL == "" || pr.OrderID == "" {
		return nil, apperror.ErrUpstream(Name, "pay response missing redirectUrl or orderId")
	}

	res := &ports.InitiatePaymentResult{
		GatewayOrderID: pr.OrderID,
		RedirectURL:    pr.RedirectURL,
		State:          pr.State,
		Raw:            body,
	}
	if pr.ExpireAt > 0 {
		exp := time.UnixMilli(pr.ExpireAt).UTC()
		res.ExpiresAt = &exp
	}
	return res, nil
}

// CheckStatus queries /checkout/v2/order/{merchantOrderId}/status.
func (g *Gateway) CheckStatus(ctx context.Context, q ports.PaymentStatusQuery) (*ports.PaymentStatusResult, error) {
	body, err := g.authorized(ctx, http.MethodGet, "/checkout/v2/order/"+url.PathEscape(q.MerchantTransactionID)+"/status", nil)
	if err != nil {
		return nil, err
	}

	res := &ports.PaymentStatusResult{
		Status:  mapState(gjson.GetBytes(body, "state").String()),
		Code:    gjson.GetBytes(body, "errorCode").String(),
		Message: gjson.GetBytes(body, "detailedErrorCode").String(),
		Raw:     body,
	}
	if attempts := gjson.GetBytes(body, "paymentDetails").Array(); len(attempts) > 0 {
		last := attempts[len(attempts)-1]
		res.GatewayTransactionID = last.Get("transactionId").String()
		if res.Code == "" {
			res.Code = last.Get("errorCode").String()
		}
	}
	return res, nil
}

func mapState(state string) domain.PaymentStatus {
	switch strings.ToUpper(state) {
	case "COMPLETED":
		return domain.PaymentStatusCompleted
	case "FAILED":
		return domain.PaymentStatusFailed
	default:
		return domain.PaymentStatusPending
	}
}

type refundRequest struct {
	MerchantRefundID        string `json:"merchantRefundId"`
	OriginalMerchantOrderID string `json:"originalMerchantOrderId"`
	Amount                  int64  `json:"amount"`
}

func (g *Gateway) Refund(ctx context.Context, req ports.RefundRequest) (*ports.RefundResult, error) {
	amount, err := ToMinorUnits(req.Amount)
	if err != nil {
		return nil, err
	}

	body, err := g.authorized(ctx, http.MethodPost, "/payments/v2/refund", refundRequest{
		MerchantRefundID:        req.MerchantRefundID,
		OriginalMerchantOrderID: req.MerchantTransactionID,
		Amount:                  amount,
	})
	if err != nil {
		return nil, err
	}

	refundID := gjson.GetBytes(body, "refundId").String()
	if refundID == "" {
		return nil, apperror.ErrUpstream(Name, "refund response missing refundId")
	}
	return &ports.RefundResult{
		RefundID: refundID,
		State:    gjson.GetBytes(body, "state").String(),
		Raw:      body,
	}, nil
}

// Checksum computes the X-Verify value for a base64 payload.
func Checksum(base64Payload, saltKey, saltIndex string) string {
	sum := sha256.Sum256([]byte(base64Payload + saltKey))
	return hex.EncodeToString(sum[:]) + checksumSplit + saltIndex
}

type callbackEnvelope struct {
	Response string `json:"response"`
}

type callbackPayload struct {
	Success bool   `json:"success"`
	Code    any    `json:"code"`
	Message string `json:"message"`
	Data    struct {
		MerchantTransactionID string `json:"merchantTransactionId"`
		TransactionID         string `json:"transactionId"`
		State                 string `json:"state"`
	} `json:"data"`
}

// VerifyCallback checks X-Verify over the base64 payload and decodes it.
func (g *Gateway) VerifyCallback(ctx context.Context, body []byte, headers http.Header) (*ports.PaymentCallback, error) {
	var env callbackEnvelope
	if err := json.Unmarshal(body, &env); err != nil || env.Response == "" {
		return nil, apperror.Validation("PHONEPE callback: missing response payload")
	}

	if !g.verifyChecksum(env.Response, headers.Get(HeaderVerify)) {
		g.log.Warn().Msg("callback checksum mismatch")
		return nil, apperror.ErrInvalidSignature()
	}

	decoded, err := base64.StdEncoding.DecodeString(env.Response)
	if err != nil {
		return nil, apperror.Validation("PHONEPE callback: payload is not base64")
	}
	var p callbackPayload
	if err := json.Unmarshal(decoded, &p); err != nil {
		return nil, apperror.Validation("PHONEPE callback: payload is not JSON")
	}
	if p.Data.MerchantTransactionID == "" {
		return nil, apperror.Validation("PHONEPE callback: missing merchantTransactionId")
	}

	code := cast.ToString(p.Code)
	return &ports.PaymentCallback{
		MerchantTransactionID: p.Data.MerchantTransactionID,
		GatewayTransactionID:  p.Data.TransactionID,
		Success:               p.Success,
		Pending:               code == "PAYMENT_PENDING" || strings.EqualFold(p.Data.State, "PENDING"),
		Code:                  code,
		Message:               p.Message,
		Raw:                   decoded,
	}, nil
}

func (g *Gateway) verifyChecksum(base64Payload, header string) bool {
	parts := strings.SplitN(strings.TrimSpace(header), checksumSplit, 2)
	if len(parts) != 2 || parts[1] != g.cfg.SaltIndex {
		return false
	}
	expected := Checksum(base64Payload, g.cfg.SaltKey, g.cfg.SaltIndex)
	return subtle.ConstantTimeCompare([]byte(expected), []byte(strings.ToLower(parts[0])+checksumSplit+parts[1])) == 1
}

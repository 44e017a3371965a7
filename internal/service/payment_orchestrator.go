package service

import (
	"context"
	"net/http"
	"sort"
	"strings"

	"commerce-reconciler/internal/core/ports"
	"commerce-reconciler/pkg/apperror"

	"github.com/rs/zerolog"
)

// PaymentOrchestratorImpl is a provider-keyed registry of payment gateways.
// It is built once at startup and read-only afterwards.
type PaymentOrchestratorImpl struct {
	gateways map[string]ports.PaymentGateway
	log      zerolog.Logger
}

// NewPaymentOrchestrator registers gateways under their upper-cased names.
// Providers without credentials are simply not passed in.
func NewPaymentOrchestrator(log zerolog.Logger, gateways ...ports.PaymentGateway) *PaymentOrchestratorImpl {
	o := &PaymentOrchestratorImpl{
		gateways: make(map[string]ports.PaymentGateway, len(gateways)),
		log:      log,
	}
	for _, g := range gateways {
		o.gateways[strings.ToUpper(g.Name())] = g
	}
	o.log.Info().Strs("providers", o.Providers()).Msg("payment gateways registered")
	return o
}

// Providers lists the configured provider names in sorted order.
func (o *PaymentOrchestratorImpl) Providers() []string {
	names := make([]string, 0, len(o.gateways))
	for name := range o.gateways {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (o *PaymentOrchestratorImpl) resolve(provider string) (ports.PaymentGateway, error) {
	name := strings.ToUpper(strings.TrimSpace(provider))
	if g, ok := o.gateways[name]; ok {
		return g, nil
	}
	return nil, apperror.ErrGatewayNotConfigured(name, o.Providers())
}

func (o *PaymentOrchestratorImpl) Initiate(ctx context.Context, provider string, req ports.InitiatePaymentRequest) (*ports.InitiatePaymentResult, error) {
	g, err := o.resolve(provider)
	if err != nil {
		return nil, err
	}
	return g.Initiate(ctx, req)
}

func (o *PaymentOrchestratorImpl) VerifyCallback(ctx context.Context, provider string, body []byte, headers http.Header) (*ports.PaymentCallback, error) {
	g, err := o.resolve(provider)
	if err != nil {
		return nil, err
	}
	return g.VerifyCallback(ctx, body, headers)
}

func (o *PaymentOrchestratorImpl) CheckStatus(ctx context.Context, provider string, q ports.PaymentStatusQuery) (*ports.PaymentStatusResult, error) {
	g, err := o.resolve(provider)
	if err != nil {
		return nil, err
	}
	return g.CheckStatus(ctx, q)
}

func (o *PaymentOrchestratorImpl) Refund(ctx context.Context, provider string, req ports.RefundRequest) (*ports.RefundResult, error) {
	g, err := o.resolve(provider)
	if err != nil {
		return nil, err
	}
	return g.Refund(ctx, req)
}

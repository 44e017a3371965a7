// Package delhivery implements ports.LogisticsGateway for Delhivery express.
package delhivery

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strings"

	"commerce-reconciler/config"
	"commerce-reconciler/internal/adapter/gateway"
	"commerce-reconciler/internal/core/ports"
	"commerce-reconciler/pkg/apperror"

	"github.com/rs/zerolog"
	"github.com/tidwall/gjson"
)

// Name is the provider tag stored on shipments.
const Name = "DELHIVERY"

const HeaderSignature = "X-Delhivery-Signature"

// Gateway talks to the Delhivery express API with a static API token.
type Gateway struct {
	cfg    config.DelhiveryConfig
	client *gateway.Client
	pool   ports.WaybillPool
	signer ports.SignatureService
	log    zerolog.Logger
}

// New creates a Delhivery gateway. pool may be nil, in which case surplus
// waybills are discarded.
func New(cfg config.DelhiveryConfig, pool ports.WaybillPool, signer ports.SignatureService, log zerolog.Logger) *Gateway {
	return &Gateway{
		cfg:    cfg,
		client: gateway.NewClient(Name, cfg.Timeout, log),
		pool:   pool,
		signer: signer,
		log:    log.With().Str("gateway", Name).Logger(),
	}
}

func (g *Gateway) Name() string { return Name }

func (g *Gateway) url(path string, query url.Values) string {
	u := strings.TrimRight(g.cfg.BaseURL, "/") + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

func (g *Gateway) send(ctx context.Context, method, u string, body []byte, contentType string) ([]byte, error) {
	req, err := g.client.NewRequest(ctx, method, u, body, contentType)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Token "+g.cfg.Token)
	return g.client.Do(req)
}

func (g *Gateway) sendJSON(ctx context.Context, path string, payload any) ([]byte, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("encoding %s payload: %w", Name, err))
	}
	return g.send(ctx, http.MethodPost, g.url(path, nil), raw, "application/json")
}

// CheckServiceability reports whether pincode is in the courier's
// delivery network. An empty delivery_codes list means not serviceable.
func (g *Gateway) CheckServiceability(ctx context.Context, pincode string) (*ports.ServiceabilityResult, error) {
	body, err := g.send(ctx, http.MethodGet, g.url("/c/api/pin-codes/json/", url.Values{"filter_codes": {pincode}}), nil, "")
	if err != nil {
		return nil, err
	}

	res := &ports.ServiceabilityResult{Pincode: pincode}
	pc := gjson.GetBytes(body, "delivery_codes.0.postal_code")
	if !pc.Exists() {
		return res, nil
	}
	res.COD = strings.EqualFold(pc.Get("cod").String(), "Y")
	res.Prepaid = strings.EqualFold(pc.Get("pre_paid").String(), "Y")
	res.Serviceable = res.COD || res.Prepaid
	res.City = pc.Get("city").String()
	res.State = pc.Get("state_code").String()
	return res, nil
}

type shipmentPayload struct {
	Waybill       string `json:"waybill"`
	Name          string `json:"name"`
	Add           string `json:"add"`
	Pin           string `json:"pin"`
	City          string `json:"city"`
	State         string `json:"state"`
	Country       string `json:"country"`
	Phone         string `json:"phone"`
	Order         string `json:"order"`
	PaymentMode   string `json:"payment_mode"`
	CODAmount     string `json:"cod_amount"`
	TotalAmount   string `json:"total_amount"`
	ProductsDesc  string `json:"products_desc"`
	Quantity      string `json:"quantity"`
	Weight        string `json:"weight"`
	ShipmentLen   string `json:"shipment_length,omitempty"`
	ShipmentWidth string `json:"shipment_width,omitempty"`
	ShipmentHgt   string `json:"shipment_height,omitempty"`
	ShippingMode  string `json:"shipping_mode"`
}

type manifest struct {
	Shipments      []shipmentPayload `json:"shipments"`
	PickupLocation struct {
		Name string `json:"name"`
	} `json:"pickup_location"`
}

// WeightKG rounds grams up to whole kilograms, with a floor of one.
func WeightKG(grams int) int {
	kg := int(math.Ceil(float64(grams) / 1000))
	if kg < 1 {
		kg = 1
	}
	return kg
}

func dimension(cm int) string {
	if cm <= 0 {
		return ""
	}
	return fmt.Sprint(cm)
}

// CreateShipment manifests one package. Both the outer success flag and
// the package status must report success; the package waybill in the
// response wins over the requested one.
func (g *Gateway) CreateShipment(ctx context.Context, req ports.CreateShipmentRequest) (*ports.CreateShipmentResult, error) {
	country := req.Consignee.Country
	if country == "" {
		country = "India"
	}

	m := manifest{Shipments: []shipmentPayload{{
		Waybill:       req.Waybill,
		Name:          req.Consignee.Name,
		Add:           req.Consignee.FullAddress(),
		Pin:           req.Consignee.PostalCode,
		City:          req.Consignee.City,
		State:         req.Consignee.State,
		Country:       country,
		Phone:         req.Consignee.Phone,
		Order:         req.OrderNumber,
		PaymentMode:   string(req.PaymentMode),
		CODAmount:     req.CODAmount.StringFixed(2),
		TotalAmount:   req.TotalAmount.StringFixed(2),
		ProductsDesc:  req.ProductsDescription,
		Quantity:      fmt.Sprint(req.Quantity),
		Weight:        fmt.Sprint(WeightKG(req.WeightGrams)),
		ShipmentLen:   dimension(req.LengthCM),
		ShipmentWidth: dimension(req.BreadthCM),
		ShipmentHgt:   dimension(req.HeightCM),
		ShippingMode:  g.cfg.ShippingMode,
	}}}
	m.PickupLocation.Name = g.cfg.PickupLocation

	data, err := json.Marshal(m)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("encoding manifest: %w", err))
	}
	form := url.Values{"format": {"json"}, "data": {string(data)}}

	body, err := g.send(ctx, http.MethodPost, g.url("/api/cmu/create.json", nil), []byte(form.Encode()), "application/x-www-form-urlencoded")
	if err != nil {
		return nil, err
	}

	pkg := gjson.GetBytes(body, "packages.0")
	res := &ports.CreateShipmentResult{
		Waybill: pkg.Get("waybill").String(),
		Status:  pkg.Get("status").String(),
		Remarks: joinRemarks(pkg.Get("remarks")),
		Raw:     body,
	}

	if !gjson.GetBytes(body, "success").Bool() || !strings.EqualFold(res.Status, "Success") {
		msg := res.Remarks
		if msg == "" {
			msg = gateway.Message(body)
		}
		if msg == "" {
			msg = "shipment not accepted"
		}
		g.log.Warn().Str("order", req.OrderNumber).Str("package_status", res.Status).Str("remarks", msg).Msg("manifest rejected")
		return nil, apperror.ErrUpstream(Name, msg)
	}
	if res.Waybill == "" {
		return nil, apperror.ErrUpstream(Name, "manifest response carries no waybill")
	}
	if req.Waybill != "" && res.Waybill != req.Waybill {
		g.log.Info().Str("requested", req.Waybill).Str("confirmed", res.Waybill).Msg("courier reassigned waybill")
	}
	return res, nil
}

func joinRemarks(v gjson.Result) string {
	if !v.IsArray() {
		return v.String()
	}
	parts := make([]string, 0, len(v.Array()))
	for _, r := range v.Array() {
		if s := strings.TrimSpace(r.String()); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, "; ")
}

type pickupPayload struct {
	PickupTime           string `json:"pickup_time"`
	PickupDate           string `json:"pickup_date"`
	PickupLocation       string `json:"pickup_location"`
	ExpectedPackageCount int    `json:"expected_package_count"`
}

// SchedulePickup requests one courier visit at the given location.
func (g *Gateway) SchedulePickup(ctx context.Context, in ports.PickupInput) (*ports.PickupResult, error) {
	location := in.Location
	if location == "" {
		location = g.cfg.PickupLocation
	}

	body, err := g.sendJSON(ctx, "/fm/request/new/", pickupPayload{
		PickupTime:           in.Time,
		PickupDate:           in.Date.Format("2006-01-02"),
		PickupLocation:       location,
		ExpectedPackageCount: in.ExpectedPackageCount,
	})
	if err != nil {
		return nil, err
	}

	id := gjson.GetBytes(body, "pickup_id")
	if !id.Exists() || id.String() == "" {
		msg := gateway.Message(body)
		if msg == "" {
			msg = "pickup not accepted"
		}
		return nil, apperror.ErrUpstream(Name, msg)
	}
	return &ports.PickupResult{PickupID: id.String(), Raw: body}, nil
}

// Cancel asks the courier to cancel a manifested package.
func (g *Gateway) Cancel(ctx context.Context, awb string) error {
	body, err := g.sendJSON(ctx, "/api/p/edit", map[string]string{
		"waybill":      awb,
		"cancellation": "true",
	})
	if err != nil {
		return err
	}
	return editOutcome(body)
}

// Edit updates consignee details on a manifested package.
func (g *Gateway) Edit(ctx context.Context, req ports.EditShipmentRequest) error {
	payload := map[string]string{"waybill": req.AWB}
	if req.Name != "" {
		payload["name"] = req.Name
	}
	if req.Address != "" {
		payload["add"] = req.Address
	}
	if req.Phone != "" {
		payload["phone"] = req.Phone
	}
	if req.WeightGrams > 0 {
		payload["gm"] = fmt.Sprint(req.WeightGrams)
	}
	if len(payload) == 1 {
		return apperror.Validation("nothing to edit")
	}

	body, err := g.sendJSON(ctx, "/api/p/edit", payload)
	if err != nil {
		return err
	}
	return editOutcome(body)
}

// editOutcome applies the same two-level check as manifests: a 200 reply
// can still carry status false.
func editOutcome(body []byte) error {
	status := gjson.GetBytes(body, "status")
	if status.Exists() && !status.Bool() {
		msg := gateway.Message(body)
		if msg == "" {
			msg = "edit rejected"
		}
		return apperror.ErrUpstream(Name, msg)
	}
	return nil
}

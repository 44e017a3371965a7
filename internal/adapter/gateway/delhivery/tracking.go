package delhivery

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	"commerce-reconciler/internal/core/ports"
	"commerce-reconciler/pkg/apperror"

	"github.com/tidwall/gjson"
)

// Timestamps without an offset are local to the courier.
var courierZone = time.FixedZone("IST", 5*3600+30*60)

var scanLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.000",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// ParseScanTime parses a courier scan timestamp.
func ParseScanTime(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range scanLayouts {
		if t, err := time.ParseInLocation(layout, s, courierZone); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

func scanFromStatus(v gjson.Result) ports.TrackingScan {
	scan := ports.TrackingScan{
		Status:       strings.TrimSpace(v.Get("Status").String()),
		StatusType:   v.Get("StatusType").String(),
		Location:     v.Get("StatusLocation").String(),
		Instructions: v.Get("Instructions").String(),
	}
	scan.ScannedAt, _ = ParseScanTime(v.Get("StatusDateTime").String())
	return scan
}

// Track fetches the package and its scan history.
func (g *Gateway) Track(ctx context.Context, awb string) (*ports.TrackResult, error) {
	body, err := g.send(ctx, http.MethodGet, g.url("/api/v1/packages/json/", url.Values{"waybill": {awb}}), nil, "")
	if err != nil {
		return nil, err
	}

	shipment := gjson.GetBytes(body, "ShipmentData.0.Shipment")
	if !shipment.Exists() {
		return nil, apperror.ErrNotFound("Shipment " + awb)
	}

	res := &ports.TrackResult{
		AWB:    shipment.Get("AWB").String(),
		Status: strings.TrimSpace(shipment.Get("Status.Status").String()),
		Raw:    body,
	}
	if res.AWB == "" {
		res.AWB = awb
	}
	if st := shipment.Get("Status"); st.Exists() {
		latest := scanFromStatus(st)
		res.Latest = &latest
	}

	for _, s := range shipment.Get("Scans").Array() {
		d := s.Get("ScanDetail")
		scan := ports.TrackingScan{
			Status:       d.Get("Scan").String(),
			StatusType:   d.Get("ScanType").String(),
			Location:     d.Get("ScannedLocation").String(),
			Instructions: d.Get("Instructions").String(),
		}
		scan.ScannedAt, _ = ParseScanTime(d.Get("ScanDateTime").String())
		res.Scans = append(res.Scans, scan)
	}
	return res, nil
}

// VerifyWebhook authenticates and structurally validates a courier push.
// The HMAC check only applies when a webhook secret is configured.
func (g *Gateway) VerifyWebhook(_ context.Context, body []byte, headers http.Header) (*ports.CourierWebhook, error) {
	if g.cfg.WebhookSecret != "" {
		sig := headers.Get(HeaderSignature)
		if sig == "" || !g.signer.Verify(g.cfg.WebhookSecret, body, sig) {
			return nil, apperror.ErrInvalidSignature()
		}
	}

	if !gjson.ValidBytes(body) {
		return nil, apperror.Validation("webhook body is not JSON")
	}
	shipment := gjson.GetBytes(body, "Shipment")
	if !shipment.Exists() || !shipment.IsObject() {
		return nil, apperror.Validation("webhook payload has no Shipment")
	}

	awb := strings.TrimSpace(shipment.Get("AWB").String())
	if awb == "" {
		return nil, apperror.Validation("webhook payload has no AWB")
	}

	scan := scanFromStatus(shipment.Get("Status"))
	if scan.Status == "" {
		return nil, apperror.Validation("webhook payload has no status")
	}
	if scan.ScannedAt.IsZero() {
		return nil, apperror.Validation("webhook payload has no parsable StatusDateTime")
	}

	return &ports.CourierWebhook{AWB: awb, Scan: scan, Raw: body}, nil
}

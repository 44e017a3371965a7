package delhivery

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"commerce-reconciler/config"
	"commerce-reconciler/internal/core/domain"
	"commerce-reconciler/internal/core/ports"
	"commerce-reconciler/internal/service"
	"commerce-reconciler/pkg/apperror"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memPool struct {
	mu   sync.Mutex
	list map[string][]string
}

func newMemPool() *memPool { return &memPool{list: map[string][]string{}} }

func (p *memPool) Push(_ context.Context, provider string, waybills ...string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.list[provider] = append(p.list[provider], waybills...)
	return nil
}

func (p *memPool) Pop(_ context.Context, provider string, n int) ([]string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	l := p.list[provider]
	if n > len(l) {
		n = len(l)
	}
	out := append([]string(nil), l[:n]...)
	p.list[provider] = l[n:]
	return out, nil
}

var _ ports.WaybillPool = (*memPool)(nil)

func newTestGateway(t *testing.T, h http.Handler, pool ports.WaybillPool, secret string) *Gateway {
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return New(config.DelhiveryConfig{
		BaseURL:          srv.URL,
		Token:            "dl-token",
		PickupLocation:   "WAREHOUSE-1",
		ShippingMode:     "Surface",
		WebhookSecret:    secret,
		WaybillBatchSize: 5,
		Timeout:          5 * time.Second,
	}, pool, service.NewHMACSignatureService(), zerolog.Nop())
}

func TestParseWaybills_Shapes(t *testing.T) {
	tests := []struct {
		name string
		body string
		want []string
	}{
		{"plain comma string", `A,B,C`, []string{"A", "B", "C"}},
		{"json string", `"A,B,C"`, []string{"A", "B", "C"}},
		{"array", `["A","B"]`, []string{"A", "B"}},
		{"object wrapping array", `{"data":["A","B"]}`, []string{"A", "B"}},
		{"object wrapping string", `{"data":"A, B"}`, []string{"A", "B"}},
		{"numeric array", `[1234500001,1234500002]`, []string{"1234500001", "1234500002"}},
		{"bare number", `1234567890123`, []string{"1234567890123"}},
		{"object wrapping number", `{"data":1234567890123}`, []string{"1234567890123"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseWaybills([]byte(tt.body))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseWaybills_Unrecognised(t *testing.T) {
	for _, body := range []string{``, `{"waybills":["A"]}`, `{"data":{"x":1}}`, `true`, `{"data":null}`} {
		_, err := ParseWaybills([]byte(body))
		assert.Error(t, err, body)
	}
}

func TestAllocateWaybills_PoolsSurplus(t *testing.T) {
	var fetches int32
	mux := http.NewServeMux()
	mux.HandleFunc("/waybill/api/bulk/json/", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&fetches, 1)
		assert.Equal(t, "Token dl-token", r.Header.Get("Authorization"))
		assert.Equal(t, "5", r.URL.Query().Get("count"))
		w.Write([]byte(`"W1,W2,W3,W4,W5"`))
	})
	pool := newMemPool()
	g := newTestGateway(t, mux, pool, "")
	ctx := context.Background()

	got, err := g.AllocateWaybills(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"W1", "W2"}, got)
	assert.Equal(t, []string{"W3", "W4", "W5"}, pool.list[Name])

	got, err = g.AllocateWaybills(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, []string{"W3", "W4", "W5"}, got)
	assert.Equal(t, int32(1), atomic.LoadInt32(&fetches))
}

func TestAllocateWaybills_UnknownShapeFailsLoudly(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/waybill/api/bulk/json/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"unexpected":true}`))
	})
	g := newTestGateway(t, mux, nil, "")

	_, err := g.AllocateWaybills(context.Background(), 1)
	assert.Equal(t, apperror.CodeUpstream, apperror.CodeOf(err))
}

func TestCheckServiceability(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/c/api/pin-codes/json/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("filter_codes") == "110001" {
			w.Write([]byte(`{"delivery_codes":[{"postal_code":{"pin":110001,"cod":"Y","pre_paid":"Y","city":"New Delhi","state_code":"DL"}}]}`))
			return
		}
		w.Write([]byte(`{"delivery_codes":[]}`))
	})
	g := newTestGateway(t, mux, nil, "")

	res, err := g.CheckServiceability(context.Background(), "110001")
	require.NoError(t, err)
	assert.True(t, res.Serviceable)
	assert.True(t, res.COD)
	assert.Equal(t, "New Delhi", res.City)

	res, err = g.CheckServiceability(context.Background(), "999999")
	require.NoError(t, err)
	assert.False(t, res.Serviceable)
}

func TestWeightKG(t *testing.T) {
	assert.Equal(t, 1, WeightKG(0))
	assert.Equal(t, 1, WeightKG(500))
	assert.Equal(t, 1, WeightKG(1000))
	assert.Equal(t, 2, WeightKG(1001))
}

func createRequest() ports.CreateShipmentRequest {
	return ports.CreateShipmentRequest{
		Waybill:     "W1",
		OrderNumber: "ORD-1",
		Consignee: domain.Address{
			Name: "Asha Rao", Line1: "12 MG Road", City: "Bengaluru", State: "KA",
			PostalCode: "560001", Phone: "9800000000",
		},
		PaymentMode:         domain.PaymentModeCOD,
		CODAmount:           decimal.RequireFromString("499"),
		TotalAmount:         decimal.RequireFromString("499"),
		ProductsDescription: "Tea Tin x1",
		Quantity:            1,
		WeightGrams:         500,
	}
}

func TestCreateShipment_UsesConfirmedWaybill(t *testing.T) {
	var manifest map[string]any
	mux := http.NewServeMux()
	mux.HandleFunc("/api/cmu/create.json", func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, r.ParseForm())
		assert.Equal(t, "json", r.PostForm.Get("format"))
		assert.NoError(t, json.Unmarshal([]byte(r.PostForm.Get("data")), &manifest))
		w.Write([]byte(`{"success":true,"packages":[{"status":"Success","waybill":"W9","remarks":[]}]}`))
	})
	g := newTestGateway(t, mux, nil, "")

	res, err := g.CreateShipment(context.Background(), createRequest())
	require.NoError(t, err)
	assert.Equal(t, "W9", res.Waybill)

	ship := manifest["shipments"].([]any)[0].(map[string]any)
	assert.Equal(t, "1", ship["weight"])
	assert.Equal(t, "COD", ship["payment_mode"])
	assert.Equal(t, "499.00", ship["cod_amount"])
	assert.Equal(t, "560001", ship["pin"])
	assert.Equal(t, "WAREHOUSE-1", manifest["pickup_location"].(map[string]any)["name"])
}

func TestCreateShipment_PackageFailureIsUpstreamError(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/cmu/create.json", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":true,"packages":[{"status":"Fail","waybill":"","remarks":["Crashing while saving package due to exception 'pincode not serviceable'"]}]}`))
	})
	g := newTestGateway(t, mux, nil, "")

	_, err := g.CreateShipment(context.Background(), createRequest())
	require.Error(t, err)
	assert.Equal(t, apperror.CodeUpstream, apperror.CodeOf(err))
	assert.Contains(t, err.Error(), "pincode not serviceable")
}

func TestCreateShipment_HTTPErrors(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/cmu/create.json", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"detail":"Invalid token"}`))
	})
	g := newTestGateway(t, mux, nil, "")

	_, err := g.CreateShipment(context.Background(), createRequest())
	assert.Equal(t, apperror.CodeCredential, apperror.CodeOf(err))
}

func TestTrack(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/packages/json/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("waybill") != "W9" {
			w.Write([]byte(`{"ShipmentData":[]}`))
			return
		}
		w.Write([]byte(`{"ShipmentData":[{"Shipment":{"AWB":"W9",
			"Status":{"Status":"In Transit","StatusType":"UD","StatusLocation":"Bengaluru_Hub","StatusDateTime":"2024-01-15T14:30:00.000","Instructions":"Shipment picked up"},
			"Scans":[{"ScanDetail":{"Scan":"Manifested","ScanType":"UD","ScannedLocation":"Delhi","ScanDateTime":"2024-01-14T10:00:00"}}]}}]}`))
	})
	g := newTestGateway(t, mux, nil, "")

	res, err := g.Track(context.Background(), "W9")
	require.NoError(t, err)
	assert.Equal(t, "In Transit", res.Status)
	require.NotNil(t, res.Latest)
	assert.Equal(t, "Bengaluru_Hub", res.Latest.Location)
	assert.Equal(t, time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC), res.Latest.ScannedAt)
	require.Len(t, res.Scans, 1)
	assert.Equal(t, "Manifested", res.Scans[0].Status)

	_, err = g.Track(context.Background(), "NOPE")
	assert.Equal(t, apperror.CodeNotFound, apperror.CodeOf(err))
}

func TestSchedulePickup(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/fm/request/new/", func(w http.ResponseWriter, r *http.Request) {
		var p pickupPayload
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&p))
		assert.Equal(t, "2024-01-16", p.PickupDate)
		assert.Equal(t, "11:00:00", p.PickupTime)
		assert.Equal(t, "WAREHOUSE-1", p.PickupLocation)
		assert.Equal(t, 3, p.ExpectedPackageCount)
		w.Write([]byte(`{"pickup_id":12345678,"pickup_date":"2024-01-16","pickup_time":"11:00:00"}`))
	})
	g := newTestGateway(t, mux, nil, "")

	res, err := g.SchedulePickup(context.Background(), ports.PickupInput{
		Date:                 time.Date(2024, 1, 16, 0, 0, 0, 0, time.UTC),
		Time:                 "11:00:00",
		ExpectedPackageCount: 3,
	})
	require.NoError(t, err)
	assert.Equal(t, "12345678", res.PickupID)
}

func TestSchedulePickup_Rejected(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/fm/request/new/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"pr_exist":true,"error":"Pickup request already exists for this date"}`))
	})
	g := newTestGateway(t, mux, nil, "")

	_, err := g.SchedulePickup(context.Background(), ports.PickupInput{Date: time.Now(), Time: "11:00:00", ExpectedPackageCount: 1})
	assert.Equal(t, apperror.CodeUpstream, apperror.CodeOf(err))
}

func TestCancelAndEdit(t *testing.T) {
	var last map[string]string
	mux := http.NewServeMux()
	mux.HandleFunc("/api/p/edit", func(w http.ResponseWriter, r *http.Request) {
		last = nil
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&last))
		if last["waybill"] == "DONE" {
			w.Write([]byte(`{"status":false,"error":"Shipment already delivered"}`))
			return
		}
		w.Write([]byte(`{"status":true,"waybill":"` + last["waybill"] + `"}`))
	})
	g := newTestGateway(t, mux, nil, "")
	ctx := context.Background()

	require.NoError(t, g.Cancel(ctx, "W9"))
	assert.Equal(t, "true", last["cancellation"])

	err := g.Cancel(ctx, "DONE")
	assert.Equal(t, apperror.CodeUpstream, apperror.CodeOf(err))
	assert.Contains(t, err.Error(), "already delivered")

	require.NoError(t, g.Edit(ctx, ports.EditShipmentRequest{AWB: "W9", Phone: "9811111111", WeightGrams: 750}))
	assert.Equal(t, "9811111111", last["phone"])
	assert.Equal(t, "750", last["gm"])

	assert.Equal(t, apperror.CodeValidation, apperror.CodeOf(g.Edit(ctx, ports.EditShipmentRequest{AWB: "W9"})))
}

const webhookBody = `{"Shipment":{"AWB":"W9","Status":{"Status":"Delivered","StatusType":"DL","StatusLocation":"Bengaluru","StatusDateTime":"2024-01-17T16:45:00+05:30","Instructions":"Delivered to consignee"}}}`

func TestVerifyWebhook(t *testing.T) {
	g := newTestGateway(t, http.NotFoundHandler(), nil, "")

	wh, err := g.VerifyWebhook(context.Background(), []byte(webhookBody), http.Header{})
	require.NoError(t, err)
	assert.Equal(t, "W9", wh.AWB)
	assert.Equal(t, "Delivered", wh.Scan.Status)
	assert.Equal(t, time.Date(2024, 1, 17, 11, 15, 0, 0, time.UTC), wh.Scan.ScannedAt)
}

func TestVerifyWebhook_Structural(t *testing.T) {
	g := newTestGateway(t, http.NotFoundHandler(), nil, "")

	for _, body := range []string{
		`not json`,
		`{"Packages":[]}`,
		`{"Shipment":{"Status":{"Status":"Delivered","StatusDateTime":"2024-01-17T16:45:00"}}}`,
		`{"Shipment":{"AWB":"W9","Status":{"StatusDateTime":"2024-01-17T16:45:00"}}}`,
		`{"Shipment":{"AWB":"W9","Status":{"Status":"Delivered","StatusDateTime":"yesterday"}}}`,
	} {
		_, err := g.VerifyWebhook(context.Background(), []byte(body), http.Header{})
		assert.Equal(t, apperror.CodeValidation, apperror.CodeOf(err), body)
	}
}

func TestVerifyWebhook_Signature(t *testing.T) {
	g := newTestGateway(t, http.NotFoundHandler(), nil, "whsec")
	sig := service.NewHMACSignatureService().Sign("whsec", []byte(webhookBody))

	h := http.Header{}
	h.Set(HeaderSignature, "sha256="+sig)
	_, err := g.VerifyWebhook(context.Background(), []byte(webhookBody), h)
	require.NoError(t, err)

	h.Set(HeaderSignature, "deadbeef")
	_, err = g.VerifyWebhook(context.Background(), []byte(webhookBody), h)
	assert.Equal(t, apperror.CodeSignature, apperror.CodeOf(err))

	_, err = g.VerifyWebhook(context.Background(), []byte(webhookBody), http.Header{})
	assert.Equal(t, apperror.CodeSignature, apperror.CodeOf(err))
}

func TestURLBuilding(t *testing.T) {
	g := &Gateway{cfg: config.DelhiveryConfig{BaseURL: "https://track.example/"}}
	assert.Equal(t, "https://track.example/waybill/api/bulk/json/?count=3", g.url("/waybill/api/bulk/json/", url.Values{"count": {"3"}}))
}

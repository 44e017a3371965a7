package delhivery

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"commerce-reconciler/pkg/apperror"

	"github.com/tidwall/gjson"
)

// ParseWaybills decodes a bulk waybill response. The API has been seen to
// return a comma separated string, a bare number for a single waybill, a JSON
// array, or an object whose data field holds one of those. Anything else is
// an error.
func ParseWaybills(body []byte) ([]string, error) {
	trimmed := strings.TrimSpace(string(body))
	if trimmed == "" {
		return nil, fmt.Errorf("empty waybill response")
	}
	if !gjson.Valid(trimmed) {
		return splitWaybills(trimmed), nil
	}
	return waybillsFrom(gjson.Parse(trimmed), true)
}

func waybillsFrom(v gjson.Result, allowObject bool) ([]string, error) {
	switch {
	case v.Type == gjson.String:
		return splitWaybills(v.String()), nil
	case v.Type == gjson.Number:
		return []string{v.Raw}, nil
	case v.IsArray():
		var out []string
		for _, item := range v.Array() {
			out = append(out, splitWaybills(item.String())...)
		}
		return out, nil
	case v.IsObject() && allowObject:
		data := v.Get("data")
		if !data.Exists() {
			return nil, fmt.Errorf("waybill object has no data field: %s", truncate(v.Raw))
		}
		return waybillsFrom(data, false)
	default:
		return nil, fmt.Errorf("unrecognised waybill response: %s", truncate(v.Raw))
	}
}

func splitWaybills(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func truncate(s string) string {
	if len(s) > 120 {
		return s[:120] + "..."
	}
	return s
}

// AllocateWaybills returns count waybills. Pooled surplus from earlier
// fetches is used first; a fetch asks for at least the configured batch
// and returns the extra to the pool.
func (g *Gateway) AllocateWaybills(ctx context.Context, count int) ([]string, error) {
	if count <= 0 {
		return nil, apperror.Validation("waybill count must be positive")
	}

	var out []string
	if g.pool != nil {
		pooled, err := g.pool.Pop(ctx, Name, count)
		if err != nil {
			g.log.Warn().Err(err).Msg("waybill pool unavailable, fetching from courier")
		}
		out = append(out, pooled...)
	}
	if len(out) >= count {
		return out[:count], nil
	}

	need := count - len(out)
	fetch := need
	if g.pool != nil && g.cfg.WaybillBatchSize > fetch {
		fetch = g.cfg.WaybillBatchSize
	}

	body, err := g.send(ctx, http.MethodGet, g.url("/waybill/api/bulk/json/", url.Values{"count": {fmt.Sprint(fetch)}}), nil, "")
	if err != nil {
		g.returnToPool(ctx, out)
		return nil, err
	}

	fetched, err := ParseWaybills(body)
	if err != nil {
		g.log.Error().Err(err).Msg("waybill response not understood")
		g.returnToPool(ctx, out)
		return nil, apperror.ErrUpstream(Name, err.Error())
	}
	if len(fetched) < need {
		g.returnToPool(ctx, append(out, fetched...))
		return nil, apperror.ErrUpstream(Name, fmt.Sprintf("asked for %d waybills, got %d", need, len(fetched)))
	}

	out = append(out, fetched[:need]...)
	g.returnToPool(ctx, fetched[need:])
	return out, nil
}

func (g *Gateway) returnToPool(ctx context.Context, waybills []string) {
	if g.pool == nil || len(waybills) == 0 {
		return
	}
	if err := g.pool.Push(ctx, Name, waybills...); err != nil {
		g.log.Warn().Err(err).Int("count", len(waybills)).Msg("dropping surplus waybills")
	}
}

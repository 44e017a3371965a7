package redis

import (
	"context"
	"errors"
	"fmt"

	goredis "github.com/redis/go-redis/v9"
)

// WaybillPool implements ports.WaybillPool as one Redis list per courier,
// so surplus waybills fetched by one instance are used by all of them.
type WaybillPool struct {
	client goredis.UniversalClient
	prefix string
}

func NewWaybillPool(client goredis.UniversalClient) *WaybillPool {
	return &WaybillPool{
		client: client,
		prefix: keyPrefix + "waybills:",
	}
}

func (p *WaybillPool) key(provider string) string {
	return p.prefix + provider
}

// Push appends waybills to the provider's pool.
func (p *WaybillPool) Push(ctx context.Context, provider string, waybills ...string) error {
	if len(waybills) == 0 {
		return nil
	}
	args := make([]any, len(waybills))
	for i, w := range waybills {
		args[i] = w
	}
	if err := p.client.RPush(ctx, p.key(provider), args...).Err(); err != nil {
		return fmt.Errorf("push waybills: %w", err)
	}
	return nil
}

// Pop removes up to n waybills in FIFO order. An empty pool is not an error.
func (p *WaybillPool) Pop(ctx context.Context, provider string, n int) ([]string, error) {
	if n <= 0 {
		return nil, nil
	}
	out, err := p.client.LPopCount(ctx, p.key(provider), n).Result()
	if errors.Is(err, goredis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("pop waybills: %w", err)
	}
	return out, nil
}

// Size reports how many waybills are pooled for provider.
func (p *WaybillPool) Size(ctx context.Context, provider string) (int64, error) {
	return p.client.LLen(ctx, p.key(provider)).Result()
}

// Package credential caches short-lived bearer tokens obtained through an
// OAuth client-credential exchange.
package credential

import (
	"context"
	"sync"
	"time"

	"commerce-reconciler/pkg/apperror"

	"github.com/rs/zerolog"
)

// Token is the result of one exchange. ExpiresAt is gateway-supplied epoch seconds.
type Token struct {
	AccessToken string
	ExpiresAt   int64
}

// ExchangeFunc performs the network exchange.
type ExchangeFunc func(ctx context.Context) (*Token, error)

// DefaultSkew is how long before the gateway's expiry a token is refreshed.
const DefaultSkew = 30 * time.Second

// Cache hands out the cached token while it is more than the skew away from
// expiry and refreshes it otherwise. Safe for concurrent use; concurrent refreshes are serialized so
// only one exchange is in flight per process.
type Cache struct {
	gateway  string
	exchange ExchangeFunc
	now      func() time.Time
	skew     time.Duration
	log      zerolog.Logger

	mu    sync.Mutex
	token *Token
}

type Option func(*Cache)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(c *Cache) { c.now = now }
}

// WithSkew replaces DefaultSkew. Negative values are treated as zero.
func WithSkew(d time.Duration) Option {
	return func(c *Cache) {
		if d < 0 {
			d = 0
		}
		c.skew = d
	}
}

func New(gateway string, exchange ExchangeFunc, log zerolog.Logger, opts ...Option) *Cache {
	c := &Cache{
		gateway:  gateway,
		exchange: exchange,
		now:      time.Now,
		skew:     DefaultSkew,
		log:      log,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Acquire returns a valid access token. No retry is attempted on failure.
func (c *Cache) Acquire(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.token != nil && c.token.ExpiresAt > c.now().Add(c.skew).Unix() {
		return c.token.AccessToken, nil
	}

	tok, err := c.exchange(ctx)
	if err != nil {
		c.log.Error().Err(err).Str("gateway", c.gateway).Msg("credential exchange failed")
		switch apperror.CodeOf(err) {
		case apperror.CodeCredential, apperror.CodeTransport:
			return "", err
		}
		return "", apperror.ErrCredential(c.gateway, err.Error(), err)
	}
	if tok == nil || tok.AccessToken == "" {
		return "", apperror.ErrCredential(c.gateway, "empty access token", nil)
	}

	c.token = tok
	c.log.Debug().
		Str("gateway", c.gateway).
		Time("expires_at", time.Unix(tok.ExpiresAt, 0)).
		Msg("access token refreshed")
	return tok.AccessToken, nil
}

// Invalidate drops the cached token, e.g. after the gateway rejected it.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	c.token = nil
	c.mu.Unlock()
}

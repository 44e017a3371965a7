package credential

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"commerce-reconciler/pkg/apperror"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct{ t time.Time }

func (f *fakeClock) now() time.Time { return f.t }

func TestCache_Acquire_CachesUntilExpiry(t *testing.T) {
	clock := &fakeClock{t: time.Unix(1_700_000_000, 0)}
	var calls int32

	c := New("PHONEPE", func(ctx context.Context) (*Token, error) {
		n := atomic.AddInt32(&calls, 1)
		return &Token{
			AccessToken: []string{"", "tok-1", "tok-2"}[n],
			ExpiresAt:   clock.t.Unix() + 3600,
		}, nil
	}, zerolog.Nop(), WithClock(clock.now))

	tok, err := c.Acquire(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "tok-1", tok)

	clock.t = clock.t.Add(59 * time.Minute)
	tok, err = c.Acquire(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "tok-1", tok)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls), "cached token must not trigger an exchange")

	clock.t = clock.t.Add(31 * time.Second) // 29s left, inside the refresh skew
	tok, err = c.Acquire(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "tok-2", tok)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestCache_Acquire_SkewBoundary(t *testing.T) {
	clock := &fakeClock{t: time.Unix(1_700_000_000, 0)}
	var calls int32

	c := New("PHONEPE", func(ctx context.Context) (*Token, error) {
		atomic.AddInt32(&calls, 1)
		return &Token{AccessToken: "tok", ExpiresAt: clock.t.Unix() + 600}, nil
	}, zerolog.Nop(), WithClock(clock.now), WithSkew(2*time.Minute))

	_, err := c.Acquire(context.Background())
	require.NoError(t, err)

	clock.t = clock.t.Add(7*time.Minute + 59*time.Second)
	_, err = c.Acquire(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))

	clock.t = clock.t.Add(time.Second) // exactly skew before expiry
	_, err = c.Acquire(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestCache_Acquire_ZeroSkewUsesGatewayExpiry(t *testing.T) {
	clock := &fakeClock{t: time.Unix(1_700_000_000, 0)}
	var calls int32

	c := New("PHONEPE", func(ctx context.Context) (*Token, error) {
		atomic.AddInt32(&calls, 1)
		return &Token{AccessToken: "tok", ExpiresAt: clock.t.Unix() + 60}, nil
	}, zerolog.Nop(), WithClock(clock.now), WithSkew(-time.Second))

	_, err := c.Acquire(context.Background())
	require.NoError(t, err)

	clock.t = clock.t.Add(59 * time.Second)
	_, err = c.Acquire(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestCache_Acquire_FailureIsCredentialError(t *testing.T) {
	var calls int
	c := New("PHONEPE", func(ctx context.Context) (*Token, error) {
		calls++
		return nil, errors.New("invalid client secret")
	}, zerolog.Nop())

	_, err := c.Acquire(context.Background())
	require.Error(t, err)
	assert.Equal(t, apperror.CodeCredential, apperror.CodeOf(err))
	assert.Contains(t, err.Error(), "invalid client secret")
	assert.Equal(t, 1, calls, "no retry inside the cache")
}

func TestCache_Acquire_KeepsTypedErrors(t *testing.T) {
	c := New("PHONEPE", func(ctx context.Context) (*Token, error) {
		return nil, apperror.ErrTransport("PHONEPE", context.DeadlineExceeded)
	}, zerolog.Nop())

	_, err := c.Acquire(context.Background())
	assert.Equal(t, apperror.CodeTransport, apperror.CodeOf(err))
}

func TestCache_Acquire_EmptyToken(t *testing.T) {
	c := New("PHONEPE", func(ctx context.Context) (*Token, error) {
		return &Token{ExpiresAt: time.Now().Unix() + 60}, nil
	}, zerolog.Nop())

	_, err := c.Acquire(context.Background())
	assert.Equal(t, apperror.CodeCredential, apperror.CodeOf(err))
}

func TestCache_Invalidate(t *testing.T) {
	var calls int32
	c := New("PHONEPE", func(ctx context.Context) (*Token, error) {
		atomic.AddInt32(&calls, 1)
		return &Token{AccessToken: "tok", ExpiresAt: time.Now().Unix() + 3600}, nil
	}, zerolog.Nop())

	_, err := c.Acquire(context.Background())
	require.NoError(t, err)
	c.Invalidate()
	_, err = c.Acquire(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestCache_Acquire_ConcurrentCallersShareOneExchange(t *testing.T) {
	var calls int32
	c := New("PHONEPE", func(ctx context.Context) (*Token, error) {
		atomic.AddInt32(&calls, 1)
		time.Sleep(10 * time.Millisecond)
		return &Token{AccessToken: "tok", ExpiresAt: time.Now().Unix() + 3600}, nil
	}, zerolog.Nop())

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tok, err := c.Acquire(context.Background())
			assert.NoError(t, err)
			assert.Equal(t, "tok", tok)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

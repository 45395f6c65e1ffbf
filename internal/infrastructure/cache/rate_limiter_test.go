package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimiter_Allow_BlocksAfterLimit(t *testing.T) {
	ctx := context.Background()
	_, client := newTestRedis(t)
	limiter := NewRateLimiter(client)
	base := time.Now()
	tick := 0
	limiter.now = func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Millisecond)
	}
	cfg := RateLimitConfig{Type: "test", Requests: 3, Window: time.Minute}

	for i := 0; i < 3; i++ {
		res, err := limiter.Allow(ctx, "1.2.3.4", cfg)
		require.NoError(t, err)
		assert.True(t, res.Allowed, "request %d should pass", i)
		assert.Equal(t, 2-i, res.Remaining)
	}

	res, err := limiter.Allow(ctx, "1.2.3.4", cfg)
	require.NoError(t, err)
	assert.False(t, res.Allowed)
	assert.Zero(t, res.Remaining)
	assert.True(t, res.RetryAt.After(base))

	other, err := limiter.Allow(ctx, "5.6.7.8", cfg)
	require.NoError(t, err)
	assert.True(t, other.Allowed)
}

func TestRateLimiter_Allow_WindowSlides(t *testing.T) {
	ctx := context.Background()
	_, client := newTestRedis(t)
	limiter := NewRateLimiter(client)
	now := time.Now()
	limiter.now = func() time.Time { return now }
	cfg := RateLimitConfig{Type: "slide", Requests: 1, Window: time.Second}

	res, err := limiter.Allow(ctx, "ip", cfg)
	require.NoError(t, err)
	require.True(t, res.Allowed)

	now = now.Add(10 * time.Millisecond)
	res, err = limiter.Allow(ctx, "ip", cfg)
	require.NoError(t, err)
	require.False(t, res.Allowed)

	now = now.Add(2 * time.Second)
	res, err = limiter.Allow(ctx, "ip", cfg)
	require.NoError(t, err)
	assert.True(t, res.Allowed)
}

func TestRateLimiter_Reset(t *testing.T) {
	ctx := context.Background()
	_, client := newTestRedis(t)
	limiter := NewRateLimiter(client)
	cfg := RateLimitConfig{Type: "reset", Requests: 1, Window: time.Minute}

	_, err := limiter.Allow(ctx, "ip", cfg)
	require.NoError(t, err)
	require.NoError(t, limiter.Reset(ctx, "ip", cfg))

	res, err := limiter.Allow(ctx, "ip", cfg)
	require.NoError(t, err)
	assert.True(t, res.Allowed)
}

package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTBlacklist_AddAndExpire(t *testing.T) {
	ctx := context.Background()
	mr, client := newTestRedis(t)
	bl := NewJWTBlacklist(client)

	require.NoError(t, bl.Add(ctx, "jti-1", time.Now().Add(time.Minute)))

	listed, err := bl.IsBlacklisted(ctx, "jti-1")
	require.NoError(t, err)
	assert.True(t, listed)

	mr.FastForward(2 * time.Minute)

	listed, err = bl.IsBlacklisted(ctx, "jti-1")
	require.NoError(t, err)
	assert.False(t, listed)
}

func TestJWTBlacklist_Add_ExpiredToken_IsNoop(t *testing.T) {
	ctx := context.Background()
	mr, client := newTestRedis(t)
	bl := NewJWTBlacklist(client)

	require.NoError(t, bl.Add(ctx, "old", time.Now().Add(-time.Second)))

	assert.False(t, mr.Exists(JWTBlacklistKey("old")))
}

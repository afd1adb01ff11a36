package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"paperstash/internal/redis"
)

func TestLocal_AllowUpload_ExhaustsBurst(t *testing.T) {
	l := NewLocal(redis.RateLimitConfig{UploadLimit: 3, UploadWindow: time.Hour})
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		res, err := l.AllowUpload(ctx, "user-a")
		require.NoError(t, err)
		assert.True(t, res.Allowed, "request %d should pass", i)
		assert.Equal(t, 3, res.Limit)
	}

	res, err := l.AllowUpload(ctx, "user-a")
	require.NoError(t, err)
	assert.False(t, res.Allowed)
	assert.Equal(t, 0, res.Remaining)
}

func TestLocal_AllowUpload_PerUser(t *testing.T) {
	l := NewLocal(redis.RateLimitConfig{UploadLimit: 1, UploadWindow: time.Hour})
	ctx := context.Background()

	res, err := l.AllowUpload(ctx, "user-a")
	require.NoError(t, err)
	assert.True(t, res.Allowed)

	res, err = l.AllowUpload(ctx, "user-b")
	require.NoError(t, err)
	assert.True(t, res.Allowed)

	res, err = l.AllowUpload(ctx, "user-a")
	require.NoError(t, err)
	assert.False(t, res.Allowed)
}

func TestNewLocal_Defaults(t *testing.T) {
	l := NewLocal(redis.RateLimitConfig{})
	assert.Equal(t, redis.DefaultRateLimitConfig().UploadLimit, l.limit)
	assert.Equal(t, redis.DefaultRateLimitConfig().UploadWindow, l.window)
}

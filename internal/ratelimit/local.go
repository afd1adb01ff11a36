package ratelimit

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"paperstash/internal/redis"
)

// Local is a per-process token bucket limiter used when redis is not
// reachable. Limits are per instance, not global.
type Local struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	limit    int
	window   time.Duration
}

func NewLocal(cfg redis.RateLimitConfig) *Local {
	if cfg.UploadLimit <= 0 {
		cfg.UploadLimit = redis.DefaultRateLimitConfig().UploadLimit
	}
	if cfg.UploadWindow <= 0 {
		cfg.UploadWindow = redis.DefaultRateLimitConfig().UploadWindow
	}
	return &Local{
		limiters: make(map[string]*rate.Limiter),
		limit:    cfg.UploadLimit,
		window:   cfg.UploadWindow,
	}
}

func (l *Local) limiterFor(userID string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()
	lim, ok := l.limiters[userID]
	if !ok {
		lim = rate.NewLimiter(rate.Every(l.window/time.Duration(l.limit)), l.limit)
		l.limiters[userID] = lim
	}
	return lim
}

func (l *Local) AllowUpload(ctx context.Context, userID string) (*redis.RateLimitResult, error) {
	lim := l.limiterFor(userID)
	now := time.Now()
	allowed := lim.AllowN(now, 1)

	remaining := int(lim.TokensAt(now))
	if remaining < 0 {
		remaining = 0
	}
	return &redis.RateLimitResult{
		Allowed:   allowed,
		Remaining: remaining,
		ResetIn:   l.window / time.Duration(l.limit),
		Limit:     l.limit,
	}, nil
}

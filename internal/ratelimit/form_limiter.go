package ratelimit

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/amanahworks/folio/internal/config"
	redis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const keyForm = "form:%s:ip:%s"

// maxLocalBuckets caps the in-process limiter map so an address scan
// cannot grow it without bound.
const maxLocalBuckets = 100_000

// FormLimiter throttles public form submissions per (form, client IP).
type FormLimiter struct {
	enabled bool
	rate    float64
	burst   int

	bucket *TokenBucket

	mu    sync.Mutex
	local map[string]*rate.Limiter

	log *zap.Logger
}

func NewFormLimiter(cfg config.Config, log *zap.Logger) (*FormLimiter, error) {
	limitCfg := cfg.RateLimit
	if !limitCfg.Enabled {
		return &FormLimiter{}, nil
	}
	if limitCfg.FormRate <= 0 || limitCfg.FormBurst <= 0 {
		return nil, fmt.Errorf("form rate limit must be positive, got rate=%v burst=%d", limitCfg.FormRate, limitCfg.FormBurst)
	}

	limiter := &FormLimiter{
		enabled: true,
		rate:    limitCfg.FormRate,
		burst:   limitCfg.FormBurst,
		log:     log.Named("ratelimit"),
	}

	if addr := strings.TrimSpace(limitCfg.RedisAddr); addr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: strings.TrimSpace(limitCfg.RedisPassword),
			DB:       limitCfg.RedisDB,
		})
		limiter.bucket = NewTokenBucket(client)
	} else {
		limiter.local = make(map[string]*rate.Limiter)
	}

	return limiter, nil
}

func (l *FormLimiter) Enabled() bool {
	return l != nil && l.enabled
}

// Allow reports whether one more submission from ip to form may proceed.
// A redis failure fails open: losing throttling briefly beats dropping
// legitimate submissions.
func (l *FormLimiter) Allow(ctx context.Context, form, ip string) bool {
	if !l.Enabled() {
		return true
	}

	key := fmt.Sprintf(keyForm, strings.TrimSpace(form), strings.TrimSpace(ip))
	if l.bucket != nil {
		res, err := l.bucket.Allow(ctx, key, l.rate, l.burst)
		if err != nil {
			l.log.Warn("rate limit check failed, allowing", zap.Error(err))
			return true
		}
		return res.Allowed
	}

	return l.localLimiter(key).Allow()
}

func (l *FormLimiter) localLimiter(key string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	if limiter, ok := l.local[key]; ok {
		return limiter
	}
	if len(l.local) >= maxLocalBuckets {
		l.local = make(map[string]*rate.Limiter)
	}
	limiter := rate.NewLimiter(rate.Limit(l.rate), l.burst)
	l.local[key] = limiter
	return limiter
}

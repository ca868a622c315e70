package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	apperrors "studio/pkg/errors"
	httputil "studio/pkg/http"
	"studio/pkg/logger"

	"github.com/redis/go-redis/v9"
)

// RateLimiter decides whether one more request for key fits its window.
type RateLimiter interface {
	Allow(ctx context.Context, key string) (bool, error)
	Limit() int
	Stop()
}

// SlidingWindowLimiter keeps request timestamps per key in memory.
type SlidingWindowLimiter struct {
	mu       sync.Mutex
	requests map[string][]time.Time
	limit    int
	window   time.Duration
	now      func() time.Time
	stopCh   chan struct{}
}

func NewSlidingWindowLimiter(limit int, window time.Duration) *SlidingWindowLimiter {
	limiter := &SlidingWindowLimiter{
		requests: make(map[string][]time.Time),
		limit:    limit,
		window:   window,
		now:      time.Now,
		stopCh:   make(chan struct{}),
	}

	go limiter.cleanup()

	return limiter
}

func (rl *SlidingWindowLimiter) cleanup() {
	ticker := time.NewTicker(rl.window)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.mu.Lock()
			for key, timestamps := range rl.requests {
				if len(timestamps) == 0 || rl.now().Sub(timestamps[len(timestamps)-1]) > rl.window {
					delete(rl.requests, key)
				}
			}
			rl.mu.Unlock()
		case <-rl.stopCh:
			return
		}
	}
}

func (rl *SlidingWindowLimiter) Stop() {
	close(rl.stopCh)
}

func (rl *SlidingWindowLimiter) Limit() int {
	return rl.limit
}

func (rl *SlidingWindowLimiter) Allow(_ context.Context, key string) (bool, error) {
	now := rl.now()

	rl.mu.Lock()
	defer rl.mu.Unlock()

	valid := rl.requests[key][:0]
	for _, ts := range rl.requests[key] {
		if now.Sub(ts) < rl.window {
			valid = append(valid, ts)
		}
	}

	if len(valid) >= rl.limit {
		rl.requests[key] = valid
		return false, nil
	}

	rl.requests[key] = append(valid, now)
	return true, nil
}

// RedisLimiter counts requests in fixed windows shared by every instance.
type RedisLimiter struct {
	client *redis.Client
	limit  int
	window time.Duration
	prefix string
	now    func() time.Time
}

func NewRedisLimiter(client *redis.Client, limit int, window time.Duration) *RedisLimiter {
	return &RedisLimiter{
		client: client,
		limit:  limit,
		window: window,
		prefix: "studio:ratelimit",
		now:    time.Now,
	}
}

func (rl *RedisLimiter) Limit() int {
	return rl.limit
}

func (rl *RedisLimiter) Stop() {}

func (rl *RedisLimiter) windowKey(key string) string {
	bucket := rl.now().UnixNano() / int64(rl.window)
	return fmt.Sprintf("%s:%s:%d", rl.prefix, key, bucket)
}

func (rl *RedisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	windowKey := rl.windowKey(key)

	pipe := rl.client.TxPipeline()
	incr := pipe.Incr(ctx, windowKey)
	pipe.Expire(ctx, windowKey, rl.window)
	if _, err := pipe.Exec(ctx); err != nil {
		return true, fmt.Errorf("rate limit counter: %w", err)
	}

	return incr.Val() <= int64(rl.limit), nil
}

// RateLimit limits requests per client IP. A limiter error lets the request
// through rather than turning a Redis outage into an API outage.
func RateLimit(limiter RateLimiter, log *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := httputil.ClientIP(r)

			allowed, err := limiter.Allow(r.Context(), ip)
			if err != nil {
				log.Warn("Rate limiter unavailable, allowing request",
					"request_id", RequestID(r.Context()),
					"error", err,
				)
				allowed = true
			}

			if !allowed {
				rejectRateLimited(w, log, r, ip, limiter.Limit())
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func rejectRateLimited(w http.ResponseWriter, log *logger.Logger, r *http.Request, ip string, limit int) {
	log.Warn("Rate limit exceeded",
		"request_id", RequestID(r.Context()),
		"client_ip", ip,
		"path", r.URL.Path,
	)

	w.Header().Set("X-RateLimit-Limit", strconv.Itoa(limit))
	_ = httputil.WriteError(w, apperrors.New("RATE_LIMITED", "Rate limit exceeded", http.StatusTooManyRequests))
}

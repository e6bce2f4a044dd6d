package httpx

import (
	"context"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

type rateLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

type RateLimitMiddleware struct {
	limiters map[string]*rateLimiter
	mu       sync.Mutex
	rate     rate.Limit
	burst    int
	idle     time.Duration
}

func NewRateLimitMiddleware(rps float64, burst int) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		limiters: make(map[string]*rateLimiter),
		rate:     rate.Limit(rps),
		burst:    burst,
		idle:     5 * time.Minute,
	}
}

// RunCleanup evicts idle limiters until ctx is done.
func (rl *RateLimitMiddleware) RunCleanup(ctx context.Context) {
	ticker := time.NewTicker(rl.idle)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			rl.evictIdle(time.Now())
		}
	}
}

func (rl *RateLimitMiddleware) evictIdle(now time.Time) {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	for key, l := range rl.limiters {
		if now.Sub(l.lastSeen) > rl.idle {
			delete(rl.limiters, key)
		}
	}
}

func (rl *RateLimitMiddleware) getLimiter(key string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	l, exists := rl.limiters[key]
	if !exists {
		l = &rateLimiter{limiter: rate.NewLimiter(rl.rate, rl.burst)}
		rl.limiters[key] = l
	}
	l.lastSeen = time.Now()
	return l.limiter
}

func (rl *RateLimitMiddleware) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !rl.getLimiter(clientKey(r)).Allow() {
			JSONError(w, r, http.StatusTooManyRequests, "RATE_LIMIT_EXCEEDED", "Too many requests", nil)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func clientKey(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		return strings.TrimSpace(strings.Split(forwarded, ",")[0])
	}
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}

package api

import (
	"context"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/SimoKiihamaki/marketprompt/internal/config"
)

const (
	DefaultRatePerMinute   = config.DefaultRatePerMinute
	DefaultBurst           = config.DefaultBurst
	DefaultCleanupInterval = 5 * time.Minute
)

// RateLimiter implements a per-client token bucket.
type RateLimiter struct {
	clients map[string]*clientBucket
	mu      sync.Mutex
	rate    int           // tokens per minute
	burst   int           // bucket capacity
	idle    time.Duration // buckets unused this long are dropped
	now     func() time.Time
}

type clientBucket struct {
	tokens     float64
	lastRefill time.Time
}

// NewRateLimiter creates a limiter allowing requestsPerMinute with the given burst.
func NewRateLimiter(requestsPerMinute, burst int) *RateLimiter {
	if requestsPerMinute <= 0 {
		requestsPerMinute = DefaultRatePerMinute
	}
	if burst <= 0 {
		burst = DefaultBurst
	}
	return &RateLimiter{
		clients: make(map[string]*clientBucket),
		rate:    requestsPerMinute,
		burst:   burst,
		idle:    5 * time.Minute,
		now:     time.Now,
	}
}

// clientKey expects chi's RealIP middleware to have resolved RemoteAddr.
func clientKey(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// RateLimit rejects requests over budget with 429 and a Retry-After hint.
func (rl *RateLimiter) RateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !rl.allow(clientKey(r)) {
			retry := int(time.Minute.Seconds()) / rl.rate
			if retry < 1 {
				retry = 1
			}
			w.Header().Set("Retry-After", strconv.Itoa(retry))
			writeError(w, http.StatusTooManyRequests, "rate limit exceeded")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (rl *RateLimiter) allow(key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	b, ok := rl.clients[key]
	if !ok {
		b = &clientBucket{tokens: float64(rl.burst), lastRefill: now}
		rl.clients[key] = b
	}

	elapsed := now.Sub(b.lastRefill).Minutes()
	if elapsed > 0 {
		b.tokens += elapsed * float64(rl.rate)
		if b.tokens > float64(rl.burst) {
			b.tokens = float64(rl.burst)
		}
		b.lastRefill = now
	}

	if b.tokens < 1 {
		return false
	}
	b.tokens--
	return true
}

// Cleanup removes buckets that have been idle for a while.
func (rl *RateLimiter) Cleanup() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	for key, b := range rl.clients {
		if now.Sub(b.lastRefill) > rl.idle {
			delete(rl.clients, key)
		}
	}
}

// CleanupRoutine runs Cleanup every interval until ctx is done. The returned
// channel is closed once the goroutine has exited.
func (rl *RateLimiter) CleanupRoutine(ctx context.Context, interval time.Duration) <-chan struct{} {
	ticker := time.NewTicker(interval)
	done := make(chan struct{})
	go func() {
		defer close(done)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				rl.Cleanup()
			case <-ctx.Done():
				return
			}
		}
	}()
	return done
}

package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/labstack/echo/v4"

	"burgerqueen/config"
	"burgerqueen/internal/delivery/http/response"
)

// bucket tracks a fixed-window request count for one client address.
type bucket struct {
	mu      sync.Mutex
	count   int
	resetAt time.Time
}

func (b *bucket) allow(max int, window time.Duration) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := time.Now()
	if now.After(b.resetAt) {
		b.count = 0
		b.resetAt = now.Add(window)
	}

	b.count++
	return b.count <= max
}

// RateLimitMiddleware limits each client IP to a fixed number of requests
// per window across the whole API.
type RateLimitMiddleware struct {
	window time.Duration
	max    int

	mu      sync.Mutex
	buckets map[string]*bucket
}

// NewRateLimitMiddleware creates a limiter from the service configuration
// and starts the background eviction of expired windows.
func NewRateLimitMiddleware(cfg *config.Config) *RateLimitMiddleware {
	m := &RateLimitMiddleware{
		window:  cfg.RateLimit.Window,
		max:     cfg.RateLimit.Max,
		buckets: make(map[string]*bucket),
	}

	// Evict buckets whose window has expired so long-running servers do
	// not accumulate one entry per client address forever.
	go func() {
		ticker := time.NewTicker(time.Minute)
		defer ticker.Stop()
		for range ticker.C {
			m.evictExpired(time.Now())
		}
	}()

	return m
}

// Limit is the echo middleware entry point.
func (m *RateLimitMiddleware) Limit(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !m.bucketFor(c.RealIP()).allow(m.max, m.window) {
			return response.Error(c, http.StatusTooManyRequests,
				"Too many requests, please try again later.")
		}

		return next(c)
	}
}

func (m *RateLimitMiddleware) bucketFor(ip string) *bucket {
	m.mu.Lock()
	defer m.mu.Unlock()

	if b, ok := m.buckets[ip]; ok {
		return b
	}

	b := &bucket{resetAt: time.Now().Add(m.window)}
	m.buckets[ip] = b
	return b
}

func (m *RateLimitMiddleware) evictExpired(now time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for ip, b := range m.buckets {
		b.mu.Lock()
		expired := now.After(b.resetAt)
		b.mu.Unlock()
		if expired {
			delete(m.buckets, ip)
		}
	}
}

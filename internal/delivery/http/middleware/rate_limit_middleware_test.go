package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"burgerqueen/config"
)

func createTestLimiter(t *testing.T, max int, window time.Duration) *RateLimitMiddleware {
	t.Helper()

	cfg := &config.Config{}
	cfg.RateLimit.Max = max
	cfg.RateLimit.Window = window

	return NewRateLimitMiddleware(cfg)
}

func performRequest(e *echo.Echo, ip string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = ip + ":12345"
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestRateLimit_BlocksAboveMax(t *testing.T) {
	limiter := createTestLimiter(t, 2, time.Minute)

	e := echo.New()
	e.Use(limiter.Limit)
	e.GET("/", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	assert.Equal(t, http.StatusOK, performRequest(e, "10.0.0.1").Code)
	assert.Equal(t, http.StatusOK, performRequest(e, "10.0.0.1").Code)

	rec := performRequest(e, "10.0.0.1")
	require.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.JSONEq(t, `{"message":"Too many requests, please try again later."}`, rec.Body.String())
}

func TestRateLimit_TracksAddressesIndependently(t *testing.T) {
	limiter := createTestLimiter(t, 1, time.Minute)

	e := echo.New()
	e.Use(limiter.Limit)
	e.GET("/", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	assert.Equal(t, http.StatusOK, performRequest(e, "10.0.0.1").Code)
	assert.Equal(t, http.StatusTooManyRequests, performRequest(e, "10.0.0.1").Code)

	// A different client still has its full budget.
	assert.Equal(t, http.StatusOK, performRequest(e, "10.0.0.2").Code)
}

func TestRateLimit_WindowResets(t *testing.T) {
	limiter := createTestLimiter(t, 1, 10*time.Millisecond)

	e := echo.New()
	e.Use(limiter.Limit)
	e.GET("/", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	assert.Equal(t, http.StatusOK, performRequest(e, "10.0.0.1").Code)
	assert.Equal(t, http.StatusTooManyRequests, performRequest(e, "10.0.0.1").Code)

	time.Sleep(15 * time.Millisecond)

	assert.Equal(t, http.StatusOK, performRequest(e, "10.0.0.1").Code)
}

func TestRateLimit_EvictsExpiredBuckets(t *testing.T) {
	limiter := createTestLimiter(t, 5, 10*time.Millisecond)

	limiter.bucketFor("10.0.0.1")
	limiter.bucketFor("10.0.0.2")

	limiter.evictExpired(time.Now().Add(time.Second))

	limiter.mu.Lock()
	defer limiter.mu.Unlock()
	assert.Empty(t, limiter.buckets)
}

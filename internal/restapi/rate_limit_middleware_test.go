package restapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"launchdash.dev/internal/models"
)

func newLimitedHandler(t *testing.T, ratePerSecond int, interval time.Duration) http.Handler {
	t.Helper()
	middleware := NewRateLimitMiddleware(ratePerSecond, interval)
	t.Cleanup(middleware.Stop)

	return middleware.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
}

func requestFrom(remoteAddr string) *http.Request {
	req := httptest.NewRequest("GET", "/api/launches/charts/success-pie.json", nil)
	req.RemoteAddr = remoteAddr
	return req
}

func TestRateLimitMiddleware_AllowsRequestsWithinLimit(t *testing.T) {
	handler := newLimitedHandler(t, 5, time.Second)

	for i := 0; i < 5; i++ {
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, requestFrom("10.0.0.1:5000"))
		assert.Equal(t, http.StatusOK, w.Code, "Request %d should be allowed", i+1)
	}
}

func TestRateLimitMiddleware_BlocksRequestsOverLimit(t *testing.T) {
	handler := newLimitedHandler(t, 3, time.Second)

	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, requestFrom("10.0.0.1:5000"))
		require.Equal(t, http.StatusOK, w.Code)
	}

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, requestFrom("10.0.0.1:5000"))

	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.Equal(t, "3", w.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))
	assert.NotEmpty(t, w.Header().Get("Retry-After"))

	var body models.ResponseModel
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, http.StatusTooManyRequests, body.Code)
}

func TestRateLimitMiddleware_PerClientLimiting(t *testing.T) {
	handler := newLimitedHandler(t, 2, time.Second)

	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, requestFrom("10.0.0.1:5000"))
		require.Equal(t, http.StatusOK, w.Code)
	}

	// Another port on the same host is the same client.
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, requestFrom("10.0.0.1:6000"))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)

	w = httptest.NewRecorder()
	handler.ServeHTTP(w, requestFrom("10.0.0.2:5000"))
	assert.Equal(t, http.StatusOK, w.Code, "a different client has its own limit")
}

func TestRateLimitMiddleware_NegativeRateDisablesLimiting(t *testing.T) {
	handler := newLimitedHandler(t, -1, time.Second)

	for i := 0; i < 50; i++ {
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, requestFrom("10.0.0.1:5000"))
		require.Equal(t, http.StatusOK, w.Code)
	}
}

func TestRateLimitMiddleware_ZeroRateBlocksEverything(t *testing.T) {
	handler := newLimitedHandler(t, 0, time.Second)

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, requestFrom("10.0.0.1:5000"))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "3600", w.Header().Get("Retry-After"))
}

func TestRateLimitMiddleware_RefillsOverTime(t *testing.T) {
	handler := newLimitedHandler(t, 1, 100*time.Millisecond)

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, requestFrom("10.0.0.1:5000"))
	assert.Equal(t, http.StatusOK, w.Code, "First request should succeed")

	w = httptest.NewRecorder()
	handler.ServeHTTP(w, requestFrom("10.0.0.1:5000"))
	assert.Equal(t, http.StatusTooManyRequests, w.Code, "Second request should be rate limited")

	time.Sleep(150 * time.Millisecond)

	w = httptest.NewRecorder()
	handler.ServeHTTP(w, requestFrom("10.0.0.1:5000"))
	assert.Equal(t, http.StatusOK, w.Code, "Request after refill should succeed")
}

func TestRateLimitMiddleware_ConcurrentRequests(t *testing.T) {
	handler := newLimitedHandler(t, 5, time.Second)

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		allowed int
		blocked int
	)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, requestFrom("10.0.0.9:5000"))

			mu.Lock()
			defer mu.Unlock()
			if w.Code == http.StatusOK {
				allowed++
			} else {
				blocked++
			}
		}()
	}
	wg.Wait()

	assert.GreaterOrEqual(t, allowed, 5)
	assert.LessOrEqual(t, allowed, 6)
	assert.Equal(t, 20, allowed+blocked)
}

func TestRateLimitMiddleware_EvictsIdleClients(t *testing.T) {
	middleware := NewRateLimitMiddleware(5, time.Second)
	defer middleware.Stop()

	middleware.getLimiter("10.0.0.1")
	middleware.getLimiter("10.0.0.2")
	require.Equal(t, 2, middleware.trackedClients())

	middleware.evictIdle(time.Now())
	assert.Equal(t, 2, middleware.trackedClients(), "recently seen clients are kept")

	middleware.evictIdle(time.Now().Add(idleLimiterTTL + time.Second))
	assert.Equal(t, 0, middleware.trackedClients())
}

func TestRateLimitMiddleware_StopEndsCleanupGoroutine(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	middleware := NewRateLimitMiddleware(10, time.Second)
	middleware.Stop()
	middleware.Stop()
}

package restapi

import (
	"encoding/json"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"
	"launchdash.dev/internal/models"
	"launchdash.dev/internal/utils"
)

// idleLimiterTTL is how long a client's limiter survives without requests.
const idleLimiterTTL = 10 * time.Minute

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimitMiddleware provides per-client rate limiting, keyed by remote IP
type RateLimitMiddleware struct {
	limiters    map[string]*clientLimiter
	mu          sync.Mutex
	rateLimit   rate.Limit
	burstSize   int
	cleanupTick *time.Ticker
	done        chan struct{}
	stopOnce    sync.Once
}

// NewRateLimitMiddleware creates a new rate limiting middleware
// ratePerSecond: number of requests allowed per interval per client
// interval: the window ratePerSecond applies to, normally one second
func NewRateLimitMiddleware(ratePerSecond int, interval time.Duration) *RateLimitMiddleware {
	var rateLimit rate.Limit
	switch {
	case ratePerSecond < 0:
		rateLimit = rate.Inf
	case ratePerSecond == 0:
		rateLimit = 0
	default:
		rateLimit = rate.Every(interval / time.Duration(ratePerSecond))
	}

	middleware := &RateLimitMiddleware{
		limiters:    make(map[string]*clientLimiter),
		rateLimit:   rateLimit,
		burstSize:   ratePerSecond,
		cleanupTick: time.NewTicker(time.Minute),
		done:        make(chan struct{}),
	}

	go middleware.cleanup()

	return middleware
}

// getLimiter gets or creates a rate limiter for the given client
func (rl *RateLimitMiddleware) getLimiter(client string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	entry, exists := rl.limiters[client]
	if !exists {
		entry = &clientLimiter{limiter: rate.NewLimiter(rl.rateLimit, rl.burstSize)}
		rl.limiters[client] = entry
	}
	entry.lastSeen = time.Now()

	return entry.limiter
}

// Handler wraps next so that each client is limited independently.
func (rl *RateLimitMiddleware) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if rl.rateLimit == rate.Inf {
			next.ServeHTTP(w, r)
			return
		}

		if !rl.getLimiter(utils.ClientIP(r)).Allow() {
			rl.sendRateLimitExceeded(w)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// sendRateLimitExceeded sends a 429 Too Many Requests response
func (rl *RateLimitMiddleware) sendRateLimitExceeded(w http.ResponseWriter) {
	retryAfter := time.Hour
	if rl.rateLimit > 0 {
		retryAfter = time.Duration(float64(time.Second) / float64(rl.rateLimit))
	}
	retrySeconds := int(retryAfter.Seconds())
	if retrySeconds < 1 {
		retrySeconds = 1
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Retry-After", strconv.Itoa(retrySeconds))
	w.Header().Set("X-RateLimit-Limit", strconv.Itoa(rl.burstSize))
	w.Header().Set("X-RateLimit-Remaining", "0")
	w.WriteHeader(http.StatusTooManyRequests)

	_ = json.NewEncoder(w).Encode(models.NewResponse(http.StatusTooManyRequests, nil,
		"Rate limit exceeded. Please try again later."))
}

// cleanup periodically removes limiters of clients that went quiet
func (rl *RateLimitMiddleware) cleanup() {
	for {
		select {
		case <-rl.done:
			return
		case now := <-rl.cleanupTick.C:
			rl.evictIdle(now)
		}
	}
}

func (rl *RateLimitMiddleware) evictIdle(now time.Time) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	for client, entry := range rl.limiters {
		if now.Sub(entry.lastSeen) > idleLimiterTTL {
			delete(rl.limiters, client)
		}
	}
}

func (rl *RateLimitMiddleware) trackedClients() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	return len(rl.limiters)
}

// Stop stops the cleanup goroutine. It is safe to call more than once.
func (rl *RateLimitMiddleware) Stop() {
	rl.stopOnce.Do(func() {
		rl.cleanupTick.Stop()
		close(rl.done)
	})
}

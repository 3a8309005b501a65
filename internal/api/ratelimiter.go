package api

import (
	"net"
	"net/http"
	"strconv"
	"sync"

	"golang.org/x/time/rate"
)

// maxTrackedClients bounds the per-client limiter table; when exceeded the
// table is reset and buckets are recreated on demand.
const maxTrackedClients = 10_000

type rateLimiter interface {
	Allow(client string) bool
}

// clientLimiter keeps one token bucket per client address.
type clientLimiter struct {
	limit rate.Limit
	burst int

	mu       sync.Mutex
	limiters map[string]*rate.Limiter
}

func newTokenBucketLimiter(ratePerSecond float64, burst int) rateLimiter {
	if ratePerSecond <= 0 {
		ratePerSecond = 1
	}
	if burst <= 0 {
		burst = 1
	}

	return &clientLimiter{
		limit:    rate.Limit(ratePerSecond),
		burst:    burst,
		limiters: make(map[string]*rate.Limiter),
	}
}

func (l *clientLimiter) Allow(client string) bool {
	if l == nil {
		return true
	}
	return l.limiterFor(client).Allow()
}

func (l *clientLimiter) limiterFor(client string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	if limiter, ok := l.limiters[client]; ok {
		return limiter
	}
	if len(l.limiters) >= maxTrackedClients {
		l.limiters = make(map[string]*rate.Limiter)
	}
	limiter := rate.NewLimiter(l.limit, l.burst)
	l.limiters[client] = limiter
	return limiter
}

func rateLimitMiddleware(limiter rateLimiter, next http.Handler) http.Handler {
	if limiter == nil {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if limiter.Allow(clientKey(r)) {
			next.ServeHTTP(w, r)
			return
		}
		w.Header().Set("Retry-After", strconv.Itoa(1))
		writeError(w, http.StatusTooManyRequests, "Too many requests", "rate limit exceeded, please retry shortly")
	})
}

// clientKey identifies the caller by remote host, ignoring the port.
func clientKey(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

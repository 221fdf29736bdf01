package middleware

import (
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"latina/shared/constant"
	"latina/transport/http/response"
)

const (
	cacheKeyRateLimit = "limiter"

	localLimiterIdleTTL = 10 * time.Minute
)

// RateLimit caps requests per client within a fixed window. With Redis the
// window is shared across replicas; without it each process keeps its own
// token buckets.
func (a *appMiddleware) RateLimit() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !a.config.App.RateLimiter.Enable {
				next.ServeHTTP(w, r)

				return
			}

			maxReqs := a.config.App.RateLimiter.MaxRequests
			windowSecs := a.config.App.RateLimiter.WindowSeconds
			ip := clientIP(r)

			remaining, allowed := a.allow(r, ip, maxReqs, windowSecs)

			w.Header().Set(constant.RequestHeaderRateLimit, strconv.Itoa(maxReqs))
			w.Header().Set(constant.RequestHeaderRateLimitRemaining, strconv.Itoa(remaining))
			w.Header().Set(constant.RequestHeaderRateLimitWindow, strconv.Itoa(windowSecs))

			if !allowed {
				log.Warn().Str("ip", ip).Str("path", r.URL.Path).Msg("rate limit exceeded")
				response.WithRequestLimitExceeded(w)

				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func (a *appMiddleware) allow(r *http.Request, ip string, maxReqs, windowSecs int) (int, bool) {
	if a.counter == nil {
		return a.local.allow(ip)
	}

	count, err := a.counter.Increment(r.Context(), cacheKeyRateLimit+":"+ip, windowSecs)
	if err != nil {
		// The shared counter is down; fall back to this process's buckets.
		return a.local.allow(ip)
	}

	return max(0, maxReqs-int(count)), int(count) <= maxReqs
}

type localLimiter struct {
	mu       sync.Mutex
	limiters map[string]*visitor
	limit    rate.Limit
	burst    int
	now      func() time.Time
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// newLocalLimiter refills maxReqs tokens evenly over window.
func newLocalLimiter(maxReqs int, window time.Duration) *localLimiter {
	maxReqs = max(1, maxReqs)
	if window <= 0 {
		window = time.Minute
	}

	return &localLimiter{
		limiters: make(map[string]*visitor),
		limit:    rate.Every(window / time.Duration(maxReqs)),
		burst:    maxReqs,
		now:      time.Now,
	}
}

func (l *localLimiter) allow(ip string) (int, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	l.evict(now)

	v, ok := l.limiters[ip]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.limiters[ip] = v
	}

	v.lastSeen = now
	allowed := v.limiter.AllowN(now, 1)

	return max(0, int(v.limiter.TokensAt(now))), allowed
}

func (l *localLimiter) evict(now time.Time) {
	for ip, v := range l.limiters {
		if now.Sub(v.lastSeen) > localLimiterIdleTTL {
			delete(l.limiters, ip)
		}
	}
}

func clientIP(r *http.Request) string {
	// X-Forwarded-For can contain multiple IPs, take the first one
	if xff := r.Header.Get(constant.RequestHeaderForwardedFor); xff != "" {
		first, _, _ := strings.Cut(xff, ",")

		return strings.TrimSpace(first)
	}

	if xri := r.Header.Get(constant.RequestHeaderRealIP); xri != "" {
		return strings.TrimSpace(xri)
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}

	return host
}

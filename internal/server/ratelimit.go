package server

import (
	"net/http"
	"strconv"
	"sync"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"github.com/osse101/FruitClicker_Go/internal/handler"
	"github.com/osse101/FruitClicker_Go/internal/logger"
)

// ClickLimiter throttles click-like endpoints per acting player.
// Limiters for idle players expire so the table stays bounded.
type ClickLimiter struct {
	mu       sync.Mutex
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

// NewClickLimiter allows perSecond requests per player with the given burst.
// A non-positive rate disables limiting.
func NewClickLimiter(perSecond float64, burst int) *ClickLimiter {
	if burst < 1 {
		burst = 1
	}
	return &ClickLimiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](ClickLimiterCacheSize, nil, ClickLimiterIdleTTL),
		rate:     rate.Limit(perSecond),
		burst:    burst,
	}
}

func (l *ClickLimiter) limiter(key string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	lim, ok := l.limiters.Get(key)
	if !ok {
		lim = rate.NewLimiter(l.rate, l.burst)
		l.limiters.Add(key, lim)
	}
	return lim
}

// Allow reports whether one more request for key fits in the budget
func (l *ClickLimiter) Allow(key string) bool {
	if l.rate <= 0 {
		return true
	}
	return l.limiter(key).Allow()
}

// Middleware rejects requests over budget with 429.
// Requests without a player id fall back to the remote address.
func (l *ClickLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := r.Header.Get(handler.HeaderPlayerID)
		if key == "" {
			key = remoteIP(r)
		}

		if !l.Allow(key) {
			logger.FromContext(r.Context()).Warn(SecurityAlertClickFlood, "key", key, "path", r.URL.Path)
			w.Header().Set(HeaderRetryAfter, strconv.Itoa(1))
			http.Error(w, ErrMsgTooManyRequests, http.StatusTooManyRequests)
			return
		}

		next.ServeHTTP(w, r)
	})
}

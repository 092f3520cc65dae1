package server

import (
	"crypto/subtle"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/osse101/FruitClicker_Go/internal/logger"
)

// AuthMiddleware requires the shared API key on every non public path
func AuthMiddleware(apiKey string, detector *FailedAuthDetector) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isPublic(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			providedKey := r.Header.Get(HeaderAPIKey)
			if subtle.ConstantTimeCompare([]byte(providedKey), []byte(apiKey)) != 1 {
				ip := remoteIP(r)
				if detector != nil {
					detector.Record(ip)
				}

				logger.FromContext(r.Context()).Warn(LogMsgAuthFailed,
					"path", r.URL.Path,
					"has_key", providedKey != "",
					"ip", ip)

				http.Error(w, ErrMsgUnauthorized, http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func isPublic(path string) bool {
	for _, p := range PublicPaths {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}

// RequestSizeLimitMiddleware limits request body size
func RequestSizeLimitMiddleware(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			next.ServeHTTP(w, r)
		})
	}
}

// FailedAuthDetector counts failed authentications per IP within a window
// and raises an alert once an IP crosses the threshold.
type FailedAuthDetector struct {
	mu          sync.Mutex
	failedByIP  map[string]int
	windowStart time.Time
	now         func() time.Time
}

func NewFailedAuthDetector() *FailedAuthDetector {
	return &FailedAuthDetector{
		failedByIP:  make(map[string]int),
		windowStart: time.Now(),
		now:         time.Now,
	}
}

// Record registers one failure and returns the count in the current window
func (d *FailedAuthDetector) Record(ip string) int {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.now().Sub(d.windowStart) > FailedAuthWindow {
		d.failedByIP = make(map[string]int)
		d.windowStart = d.now()
	}
	d.failedByIP[ip]++
	count := d.failedByIP[ip]

	if count >= FailedAuthAlertAfter {
		slog.Warn(SecurityAlertFailedAuth, "ip", ip, "count", count)
	}
	return count
}

func remoteIP(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

// SecurityHeadersMiddleware adds security headers to responses
func SecurityHeadersMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set(HeaderContentType, HeaderValueNoSniff)
			w.Header().Set(HeaderFrameOptions, HeaderValueDeny)
			w.Header().Set(HeaderReferrerPolicy, HeaderValueReferrerStrictOrigin)
			next.ServeHTTP(w, r)
		})
	}
}

package middleware

import (
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/Daikoman-palanarame2/Pokedex/internal/api/respond"
	"golang.org/x/time/rate"
)

const (
	visitorIdleTimeout = 10 * time.Minute
	visitorSweepEvery  = 5 * time.Minute
)

type limiterEntry struct {
	limiter *rate.Limiter
	last    time.Time
}

// visitorLimiter hands out one token bucket per client IP. Idle entries are
// swept inline under the same lock during request handling, so the limiter
// needs no background goroutine and no shutdown hook.
type visitorLimiter struct {
	mu        sync.Mutex
	visitors  map[string]*limiterEntry
	rps       rate.Limit
	burst     int
	nextSweep time.Time
}

func newVisitorLimiter(rps float64, burst int) *visitorLimiter {
	return &visitorLimiter{
		visitors:  map[string]*limiterEntry{},
		rps:       rate.Limit(rps),
		burst:     burst,
		nextSweep: time.Now().Add(visitorSweepEvery),
	}
}

func (l *visitorLimiter) allow(ip string, now time.Time) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if now.After(l.nextSweep) {
		l.sweepLocked(now)
		l.nextSweep = now.Add(visitorSweepEvery)
	}

	entry, ok := l.visitors[ip]
	if !ok {
		entry = &limiterEntry{limiter: rate.NewLimiter(l.rps, l.burst)}
		l.visitors[ip] = entry
	}
	entry.last = now
	return entry.limiter.Allow()
}

func (l *visitorLimiter) sweepLocked(now time.Time) {
	for ip, v := range l.visitors {
		if now.Sub(v.last) > visitorIdleTimeout {
			delete(l.visitors, ip)
		}
	}
}

// RateLimit applies a per-IP token bucket.
func RateLimit(rps float64, burst int) func(http.Handler) http.Handler {
	limiter := newVisitorLimiter(rps, burst)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.allow(clientIP(r), time.Now()) {
				respond.Error(w, http.StatusTooManyRequests, "Too many requests, please try again later")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// clientIP resolves the originating client address. X-Forwarded-For carries
// one entry per proxy hop; the first is the client.
func clientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		return strings.TrimSpace(strings.SplitN(xff, ",", 2)[0])
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

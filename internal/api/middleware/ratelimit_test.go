package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestVisitorLimiter_EnforcesPerIPBudget(t *testing.T) {
	l := newVisitorLimiter(1, 2)
	now := time.Now()

	assert.True(t, l.allow("203.0.113.9", now))
	assert.True(t, l.allow("203.0.113.9", now))
	assert.False(t, l.allow("203.0.113.9", now), "third request in the same instant exceeds the burst")

	// A different client has its own bucket.
	assert.True(t, l.allow("198.51.100.7", now))
}

func TestVisitorLimiter_SweepsIdleEntries(t *testing.T) {
	l := newVisitorLimiter(1, 1)
	start := time.Now()

	l.allow("203.0.113.9", start)
	l.allow("198.51.100.7", start.Add(visitorIdleTimeout))

	// The next request past the sweep horizon collects the first client,
	// whose entry has been idle longer than the timeout.
	l.allow("198.51.100.7", start.Add(visitorIdleTimeout+visitorSweepEvery+time.Second))

	l.mu.Lock()
	defer l.mu.Unlock()
	assert.NotContains(t, l.visitors, "203.0.113.9")
	assert.Contains(t, l.visitors, "198.51.100.7")
}

func TestRateLimit_RejectsWithTooManyRequests(t *testing.T) {
	handler := RateLimit(1, 1)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/pokemon", nil)
	req.RemoteAddr = "203.0.113.9:51234"

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusTooManyRequests, rr.Code)
}

func TestClientIP(t *testing.T) {
	tests := []struct {
		name       string
		xff        string
		remoteAddr string
		want       string
	}{
		{
			name:       "no proxy header uses the socket address",
			remoteAddr: "203.0.113.9:51234",
			want:       "203.0.113.9",
		},
		{
			name:       "single forwarded address",
			xff:        "203.0.113.9",
			remoteAddr: "10.0.0.1:443",
			want:       "203.0.113.9",
		},
		{
			name:       "proxy chain keeps the first hop",
			xff:        "203.0.113.9, 10.0.0.1, 10.0.0.2",
			remoteAddr: "10.0.0.2:443",
			want:       "203.0.113.9",
		},
		{
			name:       "unparseable socket address returned as-is",
			remoteAddr: "bogus",
			want:       "bogus",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remoteAddr
			if tt.xff != "" {
				req.Header.Set("X-Forwarded-For", tt.xff)
			}
			assert.Equal(t, tt.want, clientIP(req))
		})
	}
}

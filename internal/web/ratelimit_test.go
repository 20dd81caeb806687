package web

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestClientLimiterBurstThenReject(t *testing.T) {
	t.Parallel()
	now := time.Unix(1700000000, 0)
	l := newClientLimiter(1, 2, func() time.Time { return now })
	if !l.Allow("a") || !l.Allow("a") {
		t.Fatalf("burst should be allowed")
	}
	if l.Allow("a") {
		t.Fatalf("third request within the same instant should be rejected")
	}
	if !l.Allow("b") {
		t.Fatalf("other clients have their own bucket")
	}
	now = now.Add(time.Second)
	if !l.Allow("a") {
		t.Fatalf("token should refill after one second")
	}
}

func TestClientLimiterDisabled(t *testing.T) {
	t.Parallel()
	l := newClientLimiter(0, 1, nil)
	for i := 0; i < 100; i++ {
		if !l.Allow("a") {
			t.Fatalf("limiter with zero rate rejected request %d", i)
		}
	}
}

func TestClientLimiterSweepsIdle(t *testing.T) {
	t.Parallel()
	now := time.Unix(1700000000, 0)
	l := newClientLimiter(1, 1, func() time.Time { return now })
	l.Allow("old")
	now = now.Add(limiterIdle + time.Minute)
	l.Allow("new")
	if _, ok := l.clients["old"]; ok {
		t.Fatalf("idle client not swept")
	}
	if _, ok := l.clients["new"]; !ok {
		t.Fatalf("active client missing")
	}
}

func TestClientKey(t *testing.T) {
	t.Parallel()
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.RemoteAddr = "10.0.0.1:5555"
	if got := clientKey(r); got != "10.0.0.1" {
		t.Fatalf("clientKey = %q", got)
	}
	r.Header.Set("X-Forwarded-For", " 203.0.113.9 , 10.0.0.1")
	if got := clientKey(r); got != "203.0.113.9" {
		t.Fatalf("clientKey with XFF = %q", got)
	}
}

func TestAPIRateLimited(t *testing.T) {
	t.Parallel()
	now := time.Unix(1700000000, 0)
	s := newTestServer(t, func(c *Config) {
		c.RateLimit = 1
		c.RateBurst = 1
		c.Clock = func() time.Time { return now }
	})
	if rec := do(t, s, http.MethodPost, "/api/encode", `{"text":"a"}`); rec.Code != http.StatusOK {
		t.Fatalf("first request = %d", rec.Code)
	}
	rec := do(t, s, http.MethodPost, "/api/encode", `{"text":"a"}`)
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("second request = %d", rec.Code)
	}
	if rec.Header().Get("Retry-After") == "" {
		t.Fatalf("missing Retry-After")
	}
	if rec := do(t, s, http.MethodGet, "/ping", ""); rec.Code != http.StatusOK {
		t.Fatalf("ping is not rate limited, got %d", rec.Code)
	}
}

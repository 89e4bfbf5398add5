package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestRateLimiterBlocksOverBudget(t *testing.T) {
	limiter := NewRateLimiter(2)
	defer limiter.Stop()

	next := limiter.Limit(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	do := func(addr string) int {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/habits/list", nil)
		req.RemoteAddr = addr
		rec := httptest.NewRecorder()
		next.ServeHTTP(rec, req)
		return rec.Code
	}

	for i := 0; i < 2; i++ {
		if code := do("10.0.0.1:1234"); code != http.StatusOK {
			t.Fatalf("request %d: status = %d, want 200", i+1, code)
		}
	}
	if code := do("10.0.0.1:1234"); code != http.StatusTooManyRequests {
		t.Errorf("over-budget request: status = %d, want 429", code)
	}

	// Budgets are per IP.
	if code := do("10.0.0.2:1234"); code != http.StatusOK {
		t.Errorf("other client: status = %d, want 200", code)
	}
}

func TestRateLimiterWindowResets(t *testing.T) {
	limiter := NewRateLimiter(1)
	defer limiter.Stop()

	now := time.Now()
	if !limiter.allow("10.0.0.1", now) {
		t.Fatal("first request denied")
	}
	if limiter.allow("10.0.0.1", now.Add(30*time.Second)) {
		t.Error("second request within the window allowed")
	}
	if !limiter.allow("10.0.0.1", now.Add(61*time.Second)) {
		t.Error("request after the window expired was denied")
	}
}

func TestClientIPPrefersForwardedHeader(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.1:1234"
	req.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.9")

	if ip := clientIP(req); ip != "203.0.113.7" {
		t.Errorf("clientIP = %q, want first forwarded address", ip)
	}

	req.Header.Del("X-Forwarded-For")
	if ip := clientIP(req); ip != "10.0.0.1" {
		t.Errorf("clientIP = %q, want remote address host", ip)
	}
}

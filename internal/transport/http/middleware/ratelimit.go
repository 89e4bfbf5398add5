package middleware

import (
	"net"
	"net/http"
	"strings"
	"sync"
	"time"
)

const visitorIdleTimeout = 5 * time.Minute

type visitor struct {
	windowStart time.Time
	count       int
}

// RateLimiter caps requests per client IP in a rolling one-minute
// window. Idle entries are evicted by a janitor goroutine that runs
// until Stop is called.
type RateLimiter struct {
	limit int

	mu       sync.Mutex
	visitors map[string]*visitor

	stop chan struct{}
	done chan struct{}
}

// NewRateLimiter creates the limiter and starts its janitor.
func NewRateLimiter(requestsPerMinute int) *RateLimiter {
	l := &RateLimiter{
		limit:    requestsPerMinute,
		visitors: make(map[string]*visitor),
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
	go l.janitor()
	return l
}

// Limit rejects requests beyond the per-IP budget with 429.
func (l *RateLimiter) Limit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !l.allow(clientIP(r), time.Now()) {
			http.Error(w, "Rate limit exceeded", http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (l *RateLimiter) allow(ip string, now time.Time) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	v, exists := l.visitors[ip]
	if !exists || now.Sub(v.windowStart) > time.Minute {
		l.visitors[ip] = &visitor{windowStart: now, count: 1}
		return true
	}

	if v.count >= l.limit {
		return false
	}

	v.count++
	return true
}

// Stop terminates the janitor goroutine.
func (l *RateLimiter) Stop() {
	close(l.stop)
	<-l.done
}

func (l *RateLimiter) janitor() {
	defer close(l.done)

	ticker := time.NewTicker(visitorIdleTimeout)
	defer ticker.Stop()

	for {
		select {
		case <-l.stop:
			return
		case <-ticker.C:
			l.mu.Lock()
			for ip, v := range l.visitors {
				if time.Since(v.windowStart) > visitorIdleTimeout {
					delete(l.visitors, ip)
				}
			}
			l.mu.Unlock()
		}
	}
}

// clientIP resolves the caller's address, preferring proxy headers.
func clientIP(r *http.Request) string {
	forwarded := r.Header.Get("X-Forwarded-For")
	if forwarded != "" {
		ips := strings.Split(forwarded, ",")
		return strings.TrimSpace(ips[0])
	}

	realIP := r.Header.Get("X-Real-IP")
	if realIP != "" {
		return realIP
	}

	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ecoscanhq/ecoscan-api/internal/utils"
)

// ScanRateLimiter throttles the endpoints that hit the external product
// lookup, per client IP. The Open Food Facts API is a shared public
// resource; this keeps one misbehaving client from hammering it.
type ScanRateLimiter struct {
	mu       sync.Mutex
	attempts map[string]*attemptInfo
	limit    int
	window   time.Duration
	stop     chan struct{}
}

type attemptInfo struct {
	count   int
	firstAt time.Time
}

// NewScanRateLimiter creates a limiter allowing `limit` lookups per IP per
// `window`.
func NewScanRateLimiter(limit int, window time.Duration) *ScanRateLimiter {
	rl := &ScanRateLimiter{
		attempts: make(map[string]*attemptInfo),
		limit:    limit,
		window:   window,
		stop:     make(chan struct{}),
	}
	go rl.cleanup()
	return rl
}

// Stop terminates the background cleanup loop.
func (r *ScanRateLimiter) Stop() {
	close(r.stop)
}

// Handle rejects requests over the per-IP budget with 429.
func (r *ScanRateLimiter) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !r.allow(c.ClientIP()) {
			utils.Error(c, http.StatusTooManyRequests, "RATE_LIMITED", "Too many scan requests; slow down")
			c.Abort()
			return
		}
		c.Next()
	}
}

// allow checks if the IP can make another lookup within the window.
func (r *ScanRateLimiter) allow(ip string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	info, exists := r.attempts[ip]
	if !exists {
		r.attempts[ip] = &attemptInfo{count: 1, firstAt: now}
		return true
	}

	// Reset if window expired
	if now.Sub(info.firstAt) > r.window {
		r.attempts[ip] = &attemptInfo{count: 1, firstAt: now}
		return true
	}

	if info.count >= r.limit {
		return false
	}
	info.count++
	return true
}

func (r *ScanRateLimiter) cleanup() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			r.prune(time.Now())
		case <-r.stop:
			return
		}
	}
}

// prune drops entries whose window has expired.
func (r *ScanRateLimiter) prune(now time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for ip, info := range r.attempts {
		if now.Sub(info.firstAt) > r.window {
			delete(r.attempts, ip)
		}
	}
}

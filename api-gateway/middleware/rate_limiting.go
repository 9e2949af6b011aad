package middleware

import (
	"net/http"
	"sync"
	"time"

	"gamestore-backend/shared/config"

	"github.com/gin-gonic/gin"
)

// clientWindow tracks request counts for a single client IP.
type clientWindow struct {
	count      int
	resetAt    time.Time
	lastAccess time.Time
	blockUntil time.Time
}

// RateLimiter throttles requests per client IP across the whole gateway.
type RateLimiter struct {
	mu      sync.Mutex
	clients map[string]*clientWindow

	maxRequests   int
	timeWindow    time.Duration
	blockDuration time.Duration
}

// NewRateLimiter builds a limiter from environment configuration and starts
// a background sweep that drops clients idle for more than 24 hours.
func NewRateLimiter(cleanupInterval time.Duration) *RateLimiter {
	cfg := config.GetConfig()

	rl := &RateLimiter{
		clients:       make(map[string]*clientWindow),
		maxRequests:   cfg.GetRateLimitMaxRequests(),
		timeWindow:    time.Duration(cfg.GetRateLimitTimeWindowSeconds()) * time.Second,
		blockDuration: time.Duration(cfg.GetRateLimitBlockDurationMinutes()) * time.Minute,
	}

	go rl.sweep(cleanupInterval)

	return rl
}

func (rl *RateLimiter) sweep(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for range ticker.C {
		rl.mu.Lock()
		now := time.Now()
		for ip, window := range rl.clients {
			if now.Sub(window.lastAccess) > 24*time.Hour {
				delete(rl.clients, ip)
			}
		}
		rl.mu.Unlock()
	}
}

func (rl *RateLimiter) allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	window, exists := rl.clients[ip]
	if !exists {
		rl.clients[ip] = &clientWindow{
			count:      1,
			resetAt:    now.Add(rl.timeWindow),
			lastAccess: now,
		}
		return true
	}

	window.lastAccess = now

	// Still serving a block penalty
	if now.Before(window.blockUntil) {
		return false
	}

	if now.After(window.resetAt) {
		window.count = 1
		window.resetAt = now.Add(rl.timeWindow)
		return true
	}

	if window.count >= rl.maxRequests {
		window.blockUntil = now.Add(rl.blockDuration)
		return false
	}

	window.count++
	return true
}

// Middleware rejects requests from clients that exceed the configured rate.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rl.allow(c.ClientIP()) {
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error":       "Rate limit exceeded",
				"message":     "Too many requests from this IP. Please try again later.",
				"retry_after": rl.blockDuration.Seconds(),
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"log/slog"
	"net/http"
	"sync"

	"golang.org/x/time/rate"
)

// maxLimiters bounds the number of tracked clients. Past it the map is
// reset and every client starts again with a full bucket.
const maxLimiters = 10000

// RateLimiter keeps one token bucket per client IP.
type RateLimiter struct {
	// TrustProxy keys clients by forwarding headers instead of the socket
	// peer. Only set it behind a proxy that overwrites those headers.
	TrustProxy bool

	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	rate     rate.Limit
	burst    int
}

func NewRateLimiter(r rate.Limit, burst int) *RateLimiter {
	return &RateLimiter{
		limiters: make(map[string]*rate.Limiter),
		rate:     r,
		burst:    burst,
	}
}

func (rl *RateLimiter) getLimiter(ip string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	limiter, ok := rl.limiters[ip]
	if !ok {
		if len(rl.limiters) >= maxLimiters {
			slog.Warn("rate limiter table full, resetting", "clients", len(rl.limiters))
			rl.limiters = make(map[string]*rate.Limiter)
		}
		limiter = rate.NewLimiter(rl.rate, rl.burst)
		rl.limiters[ip] = limiter
	}
	return limiter
}

// Limit rejects requests over the client's budget. onLimit writes the
// rejection; nil writes a plain 429.
func (rl *RateLimiter) Limit(next http.HandlerFunc, onLimit http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ip := GetClientIP(r, rl.TrustProxy)
		if !rl.getLimiter(ip).Allow() {
			slog.Warn("rate limit exceeded", "ip", ip, "path", r.URL.Path)
			if onLimit != nil {
				onLimit(w, r)
				return
			}
			http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
			return
		}
		next(w, r)
	}
}

// Package ratelimiter throttles calls to quota-bound upstream APIs.
package ratelimiter

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Limiter blocks until another call is allowed or ctx ends.
type Limiter interface {
	Wait(ctx context.Context) error
}

// RateLimiter is a fixed-window limiter: at most limit calls per interval.
// Safe for concurrent use.
type RateLimiter struct {
	name      string
	limit     int
	interval  time.Duration
	mu        sync.Mutex
	count     int
	lastReset time.Time
	now       func() time.Time
}

// NewRateLimiter returns a limiter allowing limit calls per interval.
// name shows up in the log line emitted when the limit is hit.
func NewRateLimiter(name string, limit int, interval time.Duration) *RateLimiter {
	return &RateLimiter{
		name:      name,
		limit:     limit,
		interval:  interval,
		lastReset: time.Now(),
		now:       time.Now,
	}
}

// Wait reserves a slot in the current window, sleeping until the next window
// when the limit is reached.
func (rl *RateLimiter) Wait(ctx context.Context) error {
	for {
		sleep := rl.reserve()
		if sleep <= 0 {
			return nil
		}
		slog.Info("rate limit reached, waiting", "limiter", rl.name, "limit", rl.limit, "sleep", sleep)
		t := time.NewTimer(sleep)
		select {
		case <-ctx.Done():
			t.Stop()
			return ctx.Err()
		case <-t.C:
		}
	}
}

// reserve takes a slot and returns 0, or returns how long until the window resets.
func (rl *RateLimiter) reserve() time.Duration {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	if now.Sub(rl.lastReset) >= rl.interval {
		rl.count = 0
		rl.lastReset = now
	}
	if rl.count < rl.limit {
		rl.count++
		return 0
	}
	return rl.interval - now.Sub(rl.lastReset)
}

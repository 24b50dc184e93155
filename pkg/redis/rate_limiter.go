package redis

import (
	"context"
	"fmt"
	"time"
)

// RateLimiterOptions represents options for rate limiting
type RateLimiterOptions struct {
	// MaxRequests is the maximum number of requests allowed per window
	MaxRequests int
	// Window is the fixed window duration
	Window time.Duration
	// Namespace is the namespace for organizing rate limiter keys
	Namespace string
}

// NewRateLimiterOptions creates a new rate limiter options with default values
func NewRateLimiterOptions() *RateLimiterOptions {
	return &RateLimiterOptions{
		MaxRequests: 100,
		Window:      1 * time.Minute,
		Namespace:   "",
	}
}

// WithMaxRequests sets the maximum number of requests allowed per window
func (rlo *RateLimiterOptions) WithMaxRequests(max int) *RateLimiterOptions {
	if max < 1 {
		panic(fmt.Sprintf("invalid max requests: %d, must be greater than 0", max))
	}
	rlo.MaxRequests = max
	return rlo
}

// WithWindow sets the fixed window duration
func (rlo *RateLimiterOptions) WithWindow(window time.Duration) *RateLimiterOptions {
	if window <= 0 {
		panic(fmt.Sprintf("invalid window: %v, must be positive", window))
	}
	rlo.Window = window
	return rlo
}

// WithNamespace sets the namespace for organizing rate limiter keys
func (rlo *RateLimiterOptions) WithNamespace(namespace string) *RateLimiterOptions {
	rlo.Namespace = namespace
	return rlo
}

// RateLimiter implements a fixed-window rate limiter backed by Redis
type RateLimiter struct {
	client *Client
	opts   *RateLimiterOptions
}

// NewRateLimiter creates a new rate limiter
func NewRateLimiter(client *Client, opts *RateLimiterOptions) *RateLimiter {
	if opts == nil {
		opts = NewRateLimiterOptions()
	}
	return &RateLimiter{
		client: client,
		opts:   opts,
	}
}

// buildKey constructs the counter key for the current window
func (rl *RateLimiter) buildKey(key string) string {
	window := time.Now().Unix() / int64(rl.opts.Window.Seconds())
	if rl.opts.Namespace != "" {
		return fmt.Sprintf("%s::%s::%d", rl.opts.Namespace, key, window)
	}
	return fmt.Sprintf("%s::%d", key, window)
}

// Allow reports whether the request identified by key is within the limit.
// The counter key expires with the window, so stale windows clean themselves up.
func (rl *RateLimiter) Allow(ctx context.Context, key string) (bool, error) {
	fullKey := rl.buildKey(key)

	count, err := rl.client.GetClient().Incr(ctx, fullKey).Result()
	if err != nil {
		return false, fmt.Errorf("failed to increment rate limiter counter: %w", err)
	}

	if count == 1 {
		if err := rl.client.Expire(ctx, fullKey, rl.opts.Window); err != nil {
			return false, fmt.Errorf("failed to set rate limiter expiration: %w", err)
		}
	}

	return count <= int64(rl.opts.MaxRequests), nil
}

// Remaining returns how many requests are left in the current window
func (rl *RateLimiter) Remaining(ctx context.Context, key string) (int, error) {
	value, err := rl.client.Get(ctx, rl.buildKey(key))
	if err != nil {
		return 0, err
	}
	if value == "" {
		return rl.opts.MaxRequests, nil
	}

	var count int
	if _, err := fmt.Sscanf(value, "%d", &count); err != nil {
		return 0, fmt.Errorf("failed to parse rate limiter counter: %w", err)
	}

	remaining := rl.opts.MaxRequests - count
	if remaining < 0 {
		remaining = 0
	}
	return remaining, nil
}

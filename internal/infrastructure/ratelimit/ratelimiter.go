// Package ratelimit implements sliding-window request limiting on Redis.
package ratelimit

import (
	"context"
	"time"
)

// Policy bounds a key to Limit requests per Window. A non-positive
// Limit disables the check.
type Policy struct {
	Limit  int
	Window time.Duration
}

type RateLimiter interface {
	Allow(ctx context.Context, key string, policy Policy) (bool, error)
	GetRemaining(ctx context.Context, key string, policy Policy) (int64, error)
	Reset(ctx context.Context, key string) error
}

package core

import (
	"context"
	"time"
)

// TimeProvider abstracts time operations for the domain. Every place that
// needs "today" (default transaction date, month-filter fallback, session
// expiry) goes through this port so tests can pin the clock.
type TimeProvider interface {
	Now() time.Time
	Since(t time.Time) time.Duration
	WithTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc)
}

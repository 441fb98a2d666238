package batch

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// Pacer throttles consecutive ticket updates. Wait blocks for the
// configured interval or until the context is cancelled.
type Pacer interface {
	Wait(ctx context.Context) error
}

// NewPacer returns a Pacer that enforces a fixed interval between waits.
func NewPacer(interval time.Duration) Pacer {
	limiter := rate.NewLimiter(rate.Every(interval), 1)
	// Spend the initial token so the first Wait already blocks for the
	// full interval.
	limiter.Allow()
	return limiter
}

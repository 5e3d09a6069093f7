package service

import (
	"context"
	"time"
)

// Latency simulates the wait of a remote call. It returns ctx.Err() when the
// wait is cut short.
type Latency func(ctx context.Context) error

// NoLatency completes immediately unless ctx is already done.
func NoLatency(ctx context.Context) error {
	return ctx.Err()
}

// Delay returns a Latency that waits d.
func Delay(d time.Duration) Latency {
	if d <= 0 {
		return NoLatency
	}
	return func(ctx context.Context) error {
		timer := time.NewTimer(d)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
			return nil
		}
	}
}

package service

import (
	"context"
	"sync"
	"time"
)

// Cooldown counts down a fixed number of ticks before allowing an action again.
// With a positive interval Restart drives the ticks from a ticker goroutine;
// with a zero interval ticks are delivered manually through Tick.
type Cooldown struct {
	seconds  int
	interval time.Duration

	mu        sync.Mutex
	remaining int
	ready     bool
	cancel    context.CancelFunc
	done      chan struct{}
}

// NewCooldown returns an idle cooldown. It is ready until the first Restart.
func NewCooldown(seconds int, interval time.Duration) *Cooldown {
	if seconds < 0 {
		seconds = 0
	}
	return &Cooldown{seconds: seconds, interval: interval, ready: true}
}

// Restart rewinds the countdown to its full length and, when ticking on a
// ticker, starts a fresh goroutine bound to ctx. Any previous run is stopped first.
func (c *Cooldown) Restart(ctx context.Context) {
	c.Stop()

	c.mu.Lock()
	defer c.mu.Unlock()
	c.remaining = c.seconds
	c.ready = c.seconds == 0
	if c.ready || c.interval <= 0 {
		return
	}

	runCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	c.cancel = cancel
	c.done = done
	go c.run(runCtx, done)
}

func (c *Cooldown) run(ctx context.Context, done chan struct{}) {
	defer close(done)
	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, ready := c.Tick(); ready {
				return
			}
		}
	}
}

// Tick advances the countdown by one step. Reaching zero enables the action.
func (c *Cooldown) Tick() (remaining int, ready bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.ready {
		return c.remaining, true
	}
	if c.remaining <= 1 {
		c.remaining = 0
		c.ready = true
	} else {
		c.remaining--
	}
	return c.remaining, c.ready
}

// Ready reports whether the countdown has finished.
func (c *Cooldown) Ready() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ready
}

// Remaining returns the ticks left before the action is enabled.
func (c *Cooldown) Remaining() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.remaining
}

// Running reports whether a ticker goroutine is active.
func (c *Cooldown) Running() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.done == nil {
		return false
	}
	select {
	case <-c.done:
		return false
	default:
		return true
	}
}

// Stop cancels the ticker goroutine, if any, and waits for it to exit. The
// countdown keeps its current value.
func (c *Cooldown) Stop() {
	c.mu.Lock()
	cancel, done := c.cancel, c.done
	c.cancel, c.done = nil, nil
	c.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}

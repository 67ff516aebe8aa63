// Package timing provides the wall-clock primitives that drive the simulated
// delays.
package timing

import (
	"context"
	"time"
)

// TimeTeller can be used to get the current time, in seconds.
type TimeTeller interface {
	Now() float64
}

// A Sleeper blocks for a duration. Sleep must return early with the context
// error when the context is done.
type Sleeper interface {
	Sleep(ctx context.Context, d time.Duration) error
}

// WallClock tells the number of seconds elapsed since it was created.
type WallClock struct {
	start time.Time
}

// NewWallClock creates a WallClock that starts counting now.
func NewWallClock() *WallClock {
	return &WallClock{start: time.Now()}
}

// Now returns the seconds elapsed since the clock was created.
func (c *WallClock) Now() float64 {
	return time.Since(c.start).Seconds()
}

// RealSleeper sleeps on the wall clock.
type RealSleeper struct{}

// Sleep blocks for d or until ctx is done.
func (RealSleeper) Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// NoDelay never blocks. It still reports context cancellation.
type NoDelay struct{}

// Sleep returns immediately.
func (NoDelay) Sleep(ctx context.Context, _ time.Duration) error {
	return ctx.Err()
}

package engine

import (
	"context"
	"fmt"

	"github.com/sarchlab/ramsim/sim/timing"
)

// MemoryBus is the simulated bus that every module flip is synchronized on.
type MemoryBus struct {
	owner   *Engine
	sleeper timing.Sleeper
	latency timing.DelayRange
	jitter  *timing.Jitter
}

// Sync waits for the bus latency and publishes the sync.
func (b *MemoryBus) Sync(ctx context.Context) error {
	d := b.jitter.Duration(b.latency)

	err := b.sleeper.Sleep(ctx, d)
	if err != nil {
		return fmt.Errorf("bus sync: %w", err)
	}

	b.owner.invokeHook(HookPosBusSync, d, nil)

	return nil
}

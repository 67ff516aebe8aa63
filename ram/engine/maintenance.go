package engine

import (
	"context"
	"fmt"
	"time"
)

// minMaintenanceInterval keeps the loop from spinning when delays are scaled
// down to zero.
const minMaintenanceInterval = time.Millisecond

// StartBackgroundTasks launches the maintenance loop. The loop degrades the
// modules at random intervals until ctx is done or Shutdown is called.
// Calling it while the loop is running does nothing.
func (e *Engine) StartBackgroundTasks(ctx context.Context) {
	e.bgLock.Lock()
	defer e.bgLock.Unlock()

	if e.bgDone != nil {
		return
	}

	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})

	e.bgCancel = cancel
	e.bgDone = done

	go e.maintain(ctx, done)
}

// BackgroundTasksRunning tells if the maintenance loop has been started and
// not shut down.
func (e *Engine) BackgroundTasksRunning() bool {
	e.bgLock.Lock()
	defer e.bgLock.Unlock()

	return e.bgDone != nil
}

func (e *Engine) maintain(ctx context.Context, done chan<- struct{}) {
	defer close(done)

	for tick := uint64(1); ; tick++ {
		interval := max(
			e.maintenanceJitter.Duration(e.timings.Maintenance),
			minMaintenanceInterval)

		err := e.sleeper.Sleep(ctx, interval)
		if err != nil {
			return
		}

		modules := e.degradeAll(e.maintenanceJitter)

		e.invokeHook(HookPosMaintenanceTick, MaintenanceTick{
			Tick:    tick,
			Modules: len(modules),
		}, nil)
	}
}

// Shutdown stops the maintenance loop and waits for it to exit. Once it
// returns nil, the loop invokes no more hooks. If ctx is done first,
// ErrShutdownTimeout is returned.
//
// The shutdown hook is only invoked when a running loop is stopped, so
// calling Shutdown again is silent.
func (e *Engine) Shutdown(ctx context.Context) error {
	e.bgLock.Lock()
	cancel, done := e.bgCancel, e.bgDone
	e.bgCancel, e.bgDone = nil, nil
	e.bgLock.Unlock()

	if cancel == nil {
		return nil
	}

	cancel()

	select {
	case <-done:
	case <-ctx.Done():
		return fmt.Errorf("%w: %w", ErrShutdownTimeout, ctx.Err())
	}

	e.invokeHook(HookPosShutdown, e.name, nil)

	return nil
}

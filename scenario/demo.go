// Package scenario runs the fixed demonstration sequence on an engine.
package scenario

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"
	"github.com/sarchlab/ramsim/ram/engine"
	"github.com/sarchlab/ramsim/sim/timing"
)

// DefaultPause is how long the demo waits between diagnostics and uninstall.
const DefaultPause = 500 * time.Millisecond

// Demo is the reference scenario: scan, allocate, install, diagnose,
// uninstall and shut down.
type Demo struct {
	Engine *engine.Engine
	Logger zerolog.Logger

	// Modules lists the capacities, in GB, of the modules to allocate with
	// the detected technology. RandomModules, if positive, replaces them
	// with that many modules of random standard capacities.
	Modules       []int
	RandomModules int

	SelfTest bool
	Report   bool
	Snapshot bool
	Out      io.Writer

	Sleeper       timing.Sleeper
	Pause         time.Duration
	ShutdownGrace time.Duration
}

// Run executes the scenario. The background tasks are always shut down,
// also when a step fails or ctx is canceled.
func (d Demo) Run(ctx context.Context) error {
	e := d.Engine

	e.Bootstrap()

	if _, err := e.Scan(ctx); err != nil {
		return err
	}

	e.StartBackgroundTasks(ctx)

	err := d.runSteps(ctx)
	err = errors.Join(err, d.shutdown())

	if err != nil {
		return err
	}

	if d.Snapshot {
		if err := e.WriteSnapshot(d.Out); err != nil {
			return err
		}
	}

	d.logResources()
	d.Logger.Info().Msg("Engine exited cleanly")

	return nil
}

func (d Demo) runSteps(ctx context.Context) error {
	e := d.Engine

	d.allocate()

	if d.SelfTest {
		if err := e.DumpRegions(ctx); err != nil {
			return err
		}

		if err := e.SelfTest(ctx); err != nil {
			return err
		}
	}

	if err := e.Install(ctx); err != nil {
		return err
	}

	if err := d.report(); err != nil {
		return err
	}

	e.Diagnostics()

	if err := d.sleeper().Sleep(ctx, d.Pause); err != nil {
		return fmt.Errorf("pause: %w", err)
	}

	if err := e.Uninstall(ctx); err != nil {
		return err
	}

	return d.report()
}

func (d Demo) allocate() {
	if d.RandomModules > 0 {
		d.Engine.AllocateRandom(d.RandomModules)
		return
	}

	tech := d.Engine.Technology()
	for _, capacity := range d.Modules {
		d.Engine.Allocate(capacity, tech)
	}
}

func (d Demo) report() error {
	if !d.Report {
		return nil
	}

	return d.Engine.WriteReport(d.Out)
}

func (d Demo) shutdown() error {
	grace := d.ShutdownGrace
	if grace <= 0 {
		grace = 5 * time.Second
	}

	ctx, cancel := context.WithTimeout(context.Background(), grace)
	defer cancel()

	return d.Engine.Shutdown(ctx)
}

func (d Demo) sleeper() timing.Sleeper {
	if d.Sleeper == nil {
		return timing.RealSleeper{}
	}

	return d.Sleeper
}

func (d Demo) logResources() {
	usage, err := d.Engine.Monitor().Resources()
	if err != nil {
		d.Logger.Debug().Err(err).Msg("Resource usage unavailable")
		return
	}

	d.Logger.Debug().Stringer("usage", usage).Msg("Resource usage")
}

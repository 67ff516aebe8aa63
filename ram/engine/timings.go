package engine

import (
	"time"

	"github.com/sarchlab/ramsim/sim/timing"
)

// Timings holds the delay ranges of every simulated step.
type Timings struct {
	Scan        timing.DelayRange
	Install     timing.DelayRange
	Uninstall   timing.DelayRange
	Maintenance timing.DelayRange
	BusSync     timing.DelayRange
	SelfTest    timing.DelayRange
	RegionDump  timing.DelayRange
}

// DefaultTimings returns the delays of the reference scenario.
func DefaultTimings() Timings {
	return Timings{
		Scan:        timing.Between(200*time.Millisecond, 600*time.Millisecond),
		Install:     timing.Between(100*time.Millisecond, 400*time.Millisecond),
		Uninstall:   timing.Between(100*time.Millisecond, 300*time.Millisecond),
		Maintenance: timing.Between(1*time.Second, 3*time.Second),
		BusSync:     timing.Fixed(50 * time.Millisecond),
		SelfTest:    timing.Fixed(200 * time.Millisecond),
		RegionDump:  timing.Fixed(20 * time.Millisecond),
	}
}

// Scale multiplies every delay by factor.
func (t Timings) Scale(factor float64) Timings {
	return Timings{
		Scan:        t.Scan.Scale(factor),
		Install:     t.Install.Scale(factor),
		Uninstall:   t.Uninstall.Scale(factor),
		Maintenance: t.Maintenance.Scale(factor),
		BusSync:     t.BusSync.Scale(factor),
		SelfTest:    t.SelfTest.Scale(factor),
		RegionDump:  t.RegionDump.Scale(factor),
	}
}

package engine

import (
	"time"

	"github.com/sarchlab/ramsim/monitoring"
	"github.com/sarchlab/ramsim/ram"
	"github.com/sarchlab/ramsim/sim/id"
	"github.com/sarchlab/ramsim/sim/timing"
)

// Builder can build engines.
type Builder struct {
	detector    ram.TechnologyDetector
	technology  ram.Technology
	sleeper     timing.Sleeper
	jitter      *timing.Jitter
	degrader    Degrader
	idGenerator id.IDGenerator
	monitor     *monitoring.Monitor
	timings     Timings
	delayScale  float64
}

// MakeBuilder returns a new Builder with the reference scenario timings.
func MakeBuilder() Builder {
	return Builder{
		sleeper:    timing.RealSleeper{},
		degrader:   NoDegradation{},
		timings:    DefaultTimings(),
		delayScale: 1,
	}
}

// WithDetector sets the detector that picks the memory technology.
func (b Builder) WithDetector(detector ram.TechnologyDetector) Builder {
	b.detector = detector
	return b
}

// WithTechnology forces the memory technology and skips detection.
func (b Builder) WithTechnology(tech ram.Technology) Builder {
	b.technology = tech
	return b
}

// WithSleeper sets how the engine waits for simulated delays.
func (b Builder) WithSleeper(sleeper timing.Sleeper) Builder {
	b.sleeper = sleeper
	return b
}

// WithJitter sets the random source of the delays and choices.
func (b Builder) WithJitter(jitter *timing.Jitter) Builder {
	b.jitter = jitter
	return b
}

// WithSeed seeds a new random source for the delays and choices.
func (b Builder) WithSeed(seed uint64) Builder {
	b.jitter = timing.NewJitter(seed)
	return b
}

// WithDegrader sets the degradation policy.
func (b Builder) WithDegrader(degrader Degrader) Builder {
	b.degrader = degrader
	return b
}

// WithIDGenerator sets the generator of module and task IDs.
func (b Builder) WithIDGenerator(idGenerator id.IDGenerator) Builder {
	b.idGenerator = idGenerator
	return b
}

// WithMonitor sets the monitor that tracks pass progress.
func (b Builder) WithMonitor(monitor *monitoring.Monitor) Builder {
	b.monitor = monitor
	return b
}

// WithTimings sets the delay ranges of the simulated steps.
func (b Builder) WithTimings(timings Timings) Builder {
	b.timings = timings
	return b
}

// WithDelayScale multiplies every delay by scale. Zero removes all delays.
func (b Builder) WithDelayScale(scale float64) Builder {
	b.delayScale = scale
	return b
}

// Build builds a new Engine.
func (b Builder) Build(name string) *Engine {
	if b.sleeper == nil {
		panic("engine sleeper is not set")
	}

	e := &Engine{
		name:        name,
		state:       StateIdle,
		sleeper:     b.sleeper,
		jitter:      b.jitter,
		degrader:    b.degrader,
		idGenerator: b.idGenerator,
		monitor:     b.monitor,
		timings:     b.timings.Scale(b.delayScale),
	}

	if e.jitter == nil {
		e.jitter = timing.NewJitter(uint64(time.Now().UnixNano()))
	}

	e.maintenanceJitter = e.jitter.Fork()

	if e.degrader == nil {
		e.degrader = NoDegradation{}
	}

	if e.idGenerator == nil {
		e.idGenerator = id.NewIDGenerator()
	}

	if e.monitor == nil {
		e.monitor = monitoring.NewMonitor(e.idGenerator)
	}

	switch {
	case b.technology != "":
		e.detector = ram.FixedDetector{Technology: b.technology}
	case b.detector != nil:
		e.detector = b.detector
	default:
		e.detector = ram.NewArchDetector(e.jitter)
	}

	e.bus = &MemoryBus{
		owner:   e,
		sleeper: e.sleeper,
		latency: e.timings.BusSync,
		jitter:  e.jitter,
	}

	return e
}

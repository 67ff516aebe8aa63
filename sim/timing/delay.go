package timing

import (
	"math/rand/v2"
	"sync"
	"time"
)

// DelayRange is a closed interval of durations that a delay is drawn from.
type DelayRange struct {
	Min time.Duration
	Max time.Duration
}

// Fixed creates a DelayRange that always yields d.
func Fixed(d time.Duration) DelayRange {
	return DelayRange{Min: d, Max: d}
}

// Between creates a DelayRange from min to max. The bounds are swapped if
// given in the wrong order.
func Between(min, max time.Duration) DelayRange {
	if min > max {
		min, max = max, min
	}

	return DelayRange{Min: min, Max: max}
}

// Scale multiplies both bounds by factor. A non-positive factor collapses the
// range to zero.
func (r DelayRange) Scale(factor float64) DelayRange {
	if factor <= 0 {
		return DelayRange{}
	}

	return DelayRange{
		Min: time.Duration(float64(r.Min) * factor),
		Max: time.Duration(float64(r.Max) * factor),
	}
}

// Jitter is a seeded random source. It is safe for concurrent use, but draws
// from several goroutines interleave in scheduling order; give each goroutine
// its own Jitter with Fork to keep runs reproducible.
type Jitter struct {
	lock sync.Mutex
	rng  *rand.Rand
}

// NewJitter creates a Jitter seeded with seed. The same seed gives the same
// sequence of draws.
func NewJitter(seed uint64) *Jitter {
	return &Jitter{
		rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

// Duration draws a uniformly distributed duration from r.
func (j *Jitter) Duration(r DelayRange) time.Duration {
	if r.Max <= r.Min {
		return r.Min
	}

	j.lock.Lock()
	defer j.lock.Unlock()

	return r.Min + time.Duration(j.rng.Int64N(int64(r.Max-r.Min)+1))
}

// IntN returns a random integer in [0, n). It returns 0 if n <= 0.
func (j *Jitter) IntN(n int) int {
	if n <= 0 {
		return 0
	}

	j.lock.Lock()
	defer j.lock.Unlock()

	return j.rng.IntN(n)
}

// Fork creates an independent Jitter seeded from the next draw of j. Forking
// at the same point of the sequence gives the same child.
func (j *Jitter) Fork() *Jitter {
	j.lock.Lock()
	seed := j.rng.Uint64()
	j.lock.Unlock()

	return NewJitter(seed)
}

package timing

import (
	"context"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("DelayRange", func() {
	It("should swap reversed bounds", func() {
		r := Between(3*time.Second, time.Second)

		Expect(r.Min).To(Equal(time.Second))
		Expect(r.Max).To(Equal(3 * time.Second))
	})

	It("should scale both bounds", func() {
		r := Between(100*time.Millisecond, 400*time.Millisecond).Scale(0.5)

		Expect(r).To(Equal(DelayRange{
			Min: 50 * time.Millisecond,
			Max: 200 * time.Millisecond,
		}))
	})

	It("should collapse on a zero scale", func() {
		Expect(Fixed(time.Second).Scale(0)).To(Equal(DelayRange{}))
	})
})

var _ = Describe("Jitter", func() {
	It("should stay within the range", func() {
		j := NewJitter(1)
		r := Between(100*time.Millisecond, 400*time.Millisecond)

		for i := 0; i < 1000; i++ {
			d := j.Duration(r)
			Expect(d).To(BeNumerically(">=", r.Min))
			Expect(d).To(BeNumerically("<=", r.Max))
		}
	})

	It("should return the fixed value", func() {
		Expect(NewJitter(1).Duration(Fixed(time.Second))).To(Equal(time.Second))
	})

	It("should be deterministic for a seed", func() {
		a := NewJitter(42)
		b := NewJitter(42)

		for i := 0; i < 10; i++ {
			Expect(a.IntN(100)).To(Equal(b.IntN(100)))
		}
	})

	It("should fork the same child at the same point", func() {
		a := NewJitter(42).Fork()
		b := NewJitter(42).Fork()

		for i := 0; i < 10; i++ {
			Expect(a.IntN(100)).To(Equal(b.IntN(100)))
		}
	})

	It("should not disturb the parent when the child is drawn from", func() {
		parent := NewJitter(42)
		reference := NewJitter(42)
		child := parent.Fork()
		reference.Fork()

		for i := 0; i < 10; i++ {
			child.IntN(100)
		}

		for i := 0; i < 10; i++ {
			Expect(parent.IntN(100)).To(Equal(reference.IntN(100)))
		}
	})

	It("should return zero for an empty choice", func() {
		Expect(NewJitter(1).IntN(0)).To(BeZero())
	})
})

var _ = Describe("Sleepers", func() {
	It("should wake up after the duration", func() {
		start := time.Now()

		err := RealSleeper{}.Sleep(context.Background(), 5*time.Millisecond)

		Expect(err).NotTo(HaveOccurred())
		Expect(time.Since(start)).To(BeNumerically(">=", 5*time.Millisecond))
	})

	It("should stop on cancellation", func() {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := RealSleeper{}.Sleep(ctx, time.Hour)

		Expect(err).To(MatchError(context.Canceled))
	})

	It("should not block when there is no delay", func() {
		Expect(NoDelay{}.Sleep(context.Background(), time.Hour)).To(Succeed())
	})

	It("should tell the elapsed time", func() {
		c := NewWallClock()

		Expect(c.Now()).To(BeNumerically(">=", 0))
	})
})

package monitoring

import (
	"github.com/sarchlab/ramsim/sim/id"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Monitor", func() {
	var m *Monitor

	BeforeEach(func() {
		m = NewMonitor(id.NewIDGenerator())
	})

	It("should create and complete progress bars", func() {
		install := m.CreateProgressBar("install", 2)
		diag := m.CreateProgressBar("diagnostics", 2)

		Expect(install.ID).To(Equal("1"))
		Expect(m.ProgressBars()).To(Equal([]*ProgressBar{install, diag}))

		m.CompleteProgressBar(install)

		Expect(m.ProgressBars()).To(Equal([]*ProgressBar{diag}))
	})

	It("should sample the process resources", func() {
		usage, err := m.Resources()

		Expect(err).NotTo(HaveOccurred())
		Expect(usage.MemorySize).To(BeNumerically(">", 0))
	})
})

var _ = Describe("ProgressBar", func() {
	It("should track progress", func() {
		b := &ProgressBar{Total: 4}

		b.IncrementInProgress(2)
		b.MoveInProgressToFinished(1)

		Expect(b.InProgress).To(Equal(uint64(1)))
		Expect(b.Finished).To(Equal(uint64(1)))
		Expect(b.Percent()).To(Equal(25))
		Expect(b.Done()).To(BeFalse())

		b.MoveInProgressToFinished(5)

		Expect(b.InProgress).To(BeZero())
		Expect(b.Percent()).To(Equal(50))

		b.IncrementInProgress(2)
		b.MoveInProgressToFinished(2)
		Expect(b.Percent()).To(Equal(100))
		Expect(b.Done()).To(BeTrue())
	})

	It("should treat an empty bar as complete", func() {
		b := &ProgressBar{}

		Expect(b.Percent()).To(Equal(100))
		Expect(b.Done()).To(BeTrue())
	})
})

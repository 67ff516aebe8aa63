package ram

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
)

var _ = Describe("ArchDetector", func() {
	var (
		mockCtrl *gomock.Controller
		chooser  *MockChooser
		detector *ArchDetector
	)

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
		chooser = NewMockChooser(mockCtrl)
		detector = NewArchDetector(chooser)
	})

	AfterEach(func() {
		mockCtrl.Finish()
	})

	It("should pick LPDDR4 on arm", func() {
		detector.arch = func() (string, error) { return "armv7l", nil }

		Expect(detector.Detect()).To(Equal(LPDDR4))
	})

	It("should pick LPDDR4 on aarch64", func() {
		detector.arch = func() (string, error) { return "aarch64", nil }

		Expect(detector.Detect()).To(Equal(LPDDR4))
	})

	It("should pick a desktop technology on x86_64", func() {
		detector.arch = func() (string, error) { return "x86_64", nil }
		chooser.EXPECT().IntN(3).Return(2)

		Expect(detector.Detect()).To(Equal(DDR5))
	})

	It("should fall back to the build architecture", func() {
		detector.arch = func() (string, error) { return "", errors.New("no uname") }
		chooser.EXPECT().IntN(3).Return(0).AnyTimes()

		Expect(detector.Detect()).To(BeElementOf(DDR3, LPDDR4))
	})
})

var _ = Describe("RandomCapacity", func() {
	It("should pick a standard capacity", func() {
		mockCtrl := gomock.NewController(GinkgoT())
		chooser := NewMockChooser(mockCtrl)
		chooser.EXPECT().IntN(len(StandardCapacities)).Return(4)

		Expect(RandomCapacity(chooser)).To(Equal(64))
	})
})

var _ = Describe("FixedDetector", func() {
	It("should return its technology", func() {
		Expect(FixedDetector{Technology: DDR4}.Detect()).To(Equal(DDR4))
	})
})

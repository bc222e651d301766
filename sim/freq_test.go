package sim

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Freq", func() {
	It("should get period", func() {
		var f = 1 * GHz
		Expect(f.Period()).To(BeNumerically("==", 1e-9))
	})

	It("should get this tick", func() {
		var f = 1 * Hz
		Expect(f.ThisTick(1)).To(BeNumerically("~", 1, 1e-12))
	})

	It("should get this tick, if current time is not on a tick", func() {
		var f = 1 * KHz
		Expect(f.ThisTick(0.0015)).To(BeNumerically("~", 0.002, 1e-12))
	})

	It("should get the next tick", func() {
		var f = 1 * GHz
		Expect(f.NextTick(102.000000001)).
			To(BeNumerically("~", 102.000000002, 1e-12))
	})

	It("should get the next tick, if current time is not on a tick", func() {
		var f = 1 * KHz
		Expect(f.NextTick(0.0015)).To(BeNumerically("~", 0.002, 1e-12))
	})

	It("should get the time n cycles later", func() {
		var f = 1 * KHz
		Expect(f.NCyclesLater(10, 0.0005)).
			To(BeNumerically("~", 0.011, 1e-12))
	})

	It("should get the cycle number of a time", func() {
		var f = 100 * Hz
		Expect(f.Cycle(0.25)).To(Equal(uint64(25)))
	})

	It("should return the same time, if the time is on a tick", func() {
		var f = 1 * GHz
		Expect(f.NoEarlierThan(102.00)).
			To(BeNumerically("~", 102.00, 1e-12))
	})

	It("should return the next tick time, if the time is not on a tick",
		func() {
			var f = 1 * KHz
			Expect(f.NoEarlierThan(0.0015)).
				To(BeNumerically("~", 0.002, 1e-12))
		})

	It("should panic on zero frequency", func() {
		var f Freq
		Expect(func() { f.Period() }).To(Panic())
	})
})

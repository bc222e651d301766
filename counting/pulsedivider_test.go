package counting

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("PulseDivider", func() {
	It("should pulse first at tick limit, then every limit ticks", func() {
		divider := MakeDividerBuilder().WithLimit(10).Build("Divider")

		for tick := 1; tick <= 100; tick++ {
			pulse := divider.Tick()
			Expect(pulse).To(Equal(tick%10 == 0),
				"tick %d", tick)
		}
	})

	It("should pulse exactly once per limit consecutive ticks", func() {
		divider := MakeDividerBuilder().WithLimit(7).Build("Divider")

		for window := 0; window < 20; window++ {
			pulses := 0
			for i := 0; i < 7; i++ {
				if divider.Tick() {
					pulses++
				}
			}
			Expect(pulses).To(Equal(1))
		}
	})

	It("should pulse on every tick with limit 1", func() {
		divider := MakeDividerBuilder().WithLimit(1).Build("Divider")

		for i := 0; i < 5; i++ {
			Expect(divider.Tick()).To(BeTrue())
		}
	})

	It("should restart the cycle after a reset", func() {
		divider := MakeDividerBuilder().WithLimit(4).Build("Divider")

		divider.Tick()
		divider.Tick()
		divider.Reset()

		for tick := 1; tick <= 8; tick++ {
			Expect(divider.Tick()).To(Equal(tick%4 == 0))
		}
	})

	It("should panic on a non-positive limit", func() {
		Expect(func() {
			MakeDividerBuilder().WithLimit(0).Build("Bad")
		}).To(Panic())
	})
})

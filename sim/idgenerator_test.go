package sim

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("IDGenerator", func() {
	It("should default to sequential IDs", func() {
		generator := GetIDGenerator()

		first := generator.Generate()
		second := generator.Generate()

		Expect(first).NotTo(Equal(second))
		Expect(first).To(MatchRegexp(`^\d+$`))
	})

	It("should allow reselecting the generator type in use", func() {
		GetIDGenerator().Generate()

		Expect(UseSequentialIDGenerator).NotTo(Panic())
	})

	It("should refuse to switch the generator type after use", func() {
		GetIDGenerator().Generate()

		Expect(UseXIDGenerator).To(Panic())
	})
})

package ethereum_test

import (
	"crowdledger/internal/ethereum"
	"math/big"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Units", func() {
	DescribeTable("ParseUnits",
		func(value string, decimals int, expected string) {
			v, err := ethereum.ParseUnits(value, decimals)
			Expect(err).NotTo(HaveOccurred())
			Expect(v.String()).To(Equal(expected))
		},
		Entry("whole ether", "1", 18, "1000000000000000000"),
		Entry("fractional ether", "0.1", 18, "100000000000000000"),
		Entry("gwei", "20", 9, "20000000000"),
		Entry("fractional gwei", "1.5", 9, "1500000000"),
	)

	DescribeTable("ParseUnits rejects",
		func(value string) {
			_, err := ethereum.ParseUnits(value, 9)
			Expect(err).To(HaveOccurred())
		},
		Entry("garbage", "abc"),
		Entry("negative amounts", "-1"),
		Entry("sub-unit precision", "0.0000000001"),
	)

	DescribeTable("FormatUnits",
		func(value string, decimals int, expected string) {
			v, _ := new(big.Int).SetString(value, 10)
			Expect(ethereum.FormatUnits(v, decimals)).To(Equal(expected))
		},
		Entry("whole", "1000000000000000000", 18, "1.0"),
		Entry("fraction", "2500000000000000000", 18, "2.5"),
		Entry("small", "1", 18, "0.000000000000000001"),
		Entry("zero", "0", 18, "0.0"),
		Entry("gwei", "20000000000", 9, "20.0"),
	)

	Describe("FixedRate", func() {
		var rate ethereum.FixedRate

		BeforeEach(func() {
			var err error
			rate, err = ethereum.NewFixedRate("2000")
			Expect(err).NotTo(HaveOccurred())
		})

		It("should convert usd to wei at the configured rate", func() {
			wei, err := rate.USDToWei(5000)
			Expect(err).NotTo(HaveOccurred())
			Expect(wei.String()).To(Equal("2500000000000000000"))
		})

		It("should not carry float artifacts", func() {
			wei, err := rate.USDToWei(0.1)
			Expect(err).NotTo(HaveOccurred())
			Expect(wei.String()).To(Equal("50000000000000"))
		})

		It("should reject non-positive amounts", func() {
			_, err := rate.USDToWei(-5)
			Expect(err).To(HaveOccurred())
		})

		It("should reject a zero rate", func() {
			_, err := ethereum.NewFixedRate("0")
			Expect(err).To(HaveOccurred())
		})
	})
})

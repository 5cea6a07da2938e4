package curve_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/isbosykh/typist/internal/curve"
)

var _ = Describe("Multiplier", func() {
	nonLinear := []curve.Curvature{curve.Bezier, curve.Exponential, curve.Sine}

	It("stays within [0,1] for progress in [0,1)", func() {
		for _, c := range nonLinear {
			for p := 0.0; p < 1.0; p += 0.01 {
				m := curve.Multiplier(c, p)
				Expect(m).To(BeNumerically(">=", 0), "%v at p=%v", c, p)
				Expect(m).To(BeNumerically("<=", 1), "%v at p=%v", c, p)
			}
		}
	})

	It("is constant 1 for linear", func() {
		for p := 0.0; p < 1.0; p += 0.1 {
			Expect(curve.Multiplier(curve.Linear, p)).To(Equal(1.0))
		}
	})

	It("starts slow for every non-linear curvature", func() {
		for _, c := range nonLinear {
			Expect(curve.Multiplier(c, 0)).To(BeNumerically("~", 0, 1e-9), "%v", c)
		}
	})

	It("reaches baseline speed mid-string for bezier and sine", func() {
		Expect(curve.Multiplier(curve.Bezier, 0.5)).To(BeNumerically("~", 0.5, 1e-9))
		Expect(curve.Multiplier(curve.Sine, 0.5)).To(BeNumerically("~", 0.5, 1e-9))
	})
})

var _ = Describe("Delay", func() {
	speed := 50 * time.Millisecond

	It("returns typeSpeed unmodified for linear", func() {
		for p := 0.0; p < 1.0; p += 0.05 {
			Expect(curve.Delay(curve.Linear, speed, p)).To(Equal(speed))
		}
	})

	It("ranges from typeSpeed to 3x typeSpeed for non-linear curvatures", func() {
		for _, c := range []curve.Curvature{curve.Bezier, curve.Exponential, curve.Sine} {
			for p := 0.0; p < 1.0; p += 0.01 {
				d := curve.Delay(c, speed, p)
				Expect(d).To(BeNumerically(">=", speed), "%v at p=%v", c, p)
				Expect(d).To(BeNumerically("<=", 3*speed), "%v at p=%v", c, p)
			}
		}
	})

	It("is slowest at the start of a string", func() {
		Expect(curve.Delay(curve.Sine, speed, 0)).To(Equal(3 * speed))
		Expect(curve.Delay(curve.Exponential, speed, 0)).To(Equal(3 * speed))
	})
})

var _ = Describe("Parse", func() {
	It("round-trips every curvature name", func() {
		for _, c := range []curve.Curvature{curve.Linear, curve.Bezier, curve.Exponential, curve.Sine} {
			got, err := curve.Parse(c.String())
			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(Equal(c))
		}
	})

	It("rejects unknown names", func() {
		_, err := curve.Parse("quadratic")
		Expect(err).To(HaveOccurred())
	})
})

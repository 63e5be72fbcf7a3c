package integrators

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/odelab/internal/ivp"
)

// Contract shared by every stepping rule: the step must consume only the
// current state, the grid must come back the same length, and the initial
// value must survive untouched.
var _ = Describe("Stepper contract", func() {
	var (
		sys ivp.System
		ts  []float64
	)

	BeforeEach(func() {
		sys = ivp.Func(1, func(x ivp.State, t float64) ivp.State {
			return ivp.State{x[0] * math.Sin(t)}
		})
		ts = ivp.UniformGrid(0, 10, 32)
	})

	steppers := map[string]func() ivp.Stepper{
		"euler":     func() ivp.Stepper { return NewEuler() },
		"heun":      func() ivp.Stepper { return NewHeun() },
		"trapezoid": func() ivp.Stepper { return NewTrapezoid() },
		"midpoint":  func() ivp.Stepper { return NewMidpoint() },
		"rk4":       func() ivp.Stepper { return NewRK4() },
	}

	for name, build := range steppers {
		When("using "+name, func() {
			var st ivp.Stepper

			BeforeEach(func() {
				st = build()
			})

			It("preserves the initial value exactly", func() {
				xs, err := ivp.SolveGrid(st, sys, ivp.Scalar(-1.0), ts)
				Expect(err).ToNot(HaveOccurred())
				Expect(xs[0][0]).To(Equal(-1.0))
			})

			It("returns one state per grid point", func() {
				xs, err := ivp.SolveGrid(st, sys, ivp.Scalar(-1.0), ts)
				Expect(err).ToNot(HaveOccurred())
				Expect(xs).To(HaveLen(len(ts)))
			})

			It("does not mutate the input state", func() {
				x0 := ivp.Scalar(-1.0)
				_, err := ivp.SolveGrid(st, sys, x0, ts)
				Expect(err).ToNot(HaveOccurred())
				Expect(x0[0]).To(Equal(-1.0))
			})

			It("rejects a grid with fewer than two points", func() {
				_, err := ivp.SolveGrid(st, sys, ivp.Scalar(-1.0), []float64{0})
				Expect(err).To(MatchError(ivp.ErrGridTooShort))
			})

			It("is deterministic across repeated runs", func() {
				a, err := ivp.SolveGrid(st, sys, ivp.Scalar(-1.0), ts)
				Expect(err).ToNot(HaveOccurred())
				b, err := ivp.SolveGrid(build(), sys, ivp.Scalar(-1.0), ts)
				Expect(err).ToNot(HaveOccurred())
				for i := range a {
					Expect(a[i][0]).To(Equal(b[i][0]))
				}
			})
		})
	}
})

package integrators

import "github.com/san-kum/odelab/internal/ivp"

// Heun is the improved Euler rule: predict with a full Euler step, then
// average the slopes at both ends of the interval. Second-order accurate,
// two derivative evaluations per step.
type Heun struct {
	predicted ivp.State
}

func NewHeun() *Heun {
	return &Heun{}
}

func (r *Heun) Step(sys ivp.System, x ivp.State, t, h float64) ivp.State {
	n := len(x)
	if len(r.predicted) != n {
		r.predicted = make(ivp.State, n)
	}

	k1 := sys.Derive(x, t)
	for i := 0; i < n; i++ {
		r.predicted[i] = x[i] + h*k1[i]
	}
	k2 := sys.Derive(r.predicted, t+h)

	result := make(ivp.State, n)
	for i := 0; i < n; i++ {
		result[i] = x[i] + h*0.5*(k1[i]+k2[i])
	}
	return result
}

// Trapezoid is the explicit trapezoidal predictor-corrector. The update
// formula is identical to Heun's rule; the two names survive in textbooks
// and both steppers must produce bit-identical trajectories.
type Trapezoid struct {
	predicted ivp.State
}

func NewTrapezoid() *Trapezoid {
	return &Trapezoid{}
}

func (r *Trapezoid) Step(sys ivp.System, x ivp.State, t, h float64) ivp.State {
	n := len(x)
	if len(r.predicted) != n {
		r.predicted = make(ivp.State, n)
	}

	k1 := sys.Derive(x, t)
	for i := 0; i < n; i++ {
		r.predicted[i] = x[i] + h*k1[i]
	}
	k2 := sys.Derive(r.predicted, t+h)

	result := make(ivp.State, n)
	for i := 0; i < n; i++ {
		result[i] = x[i] + h*0.5*(k1[i]+k2[i])
	}
	return result
}

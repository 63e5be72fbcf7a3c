package integrators

import "github.com/san-kum/odelab/internal/ivp"

// Midpoint is the midpoint-form second-order Runge-Kutta rule: take half
// an Euler step, then use the slope at the estimated midpoint for the full
// step. Same asymptotic order as Heun, algebraically distinct.
type Midpoint struct {
	half ivp.State
}

func NewMidpoint() *Midpoint {
	return &Midpoint{}
}

func (r *Midpoint) Step(sys ivp.System, x ivp.State, t, h float64) ivp.State {
	n := len(x)
	if len(r.half) != n {
		r.half = make(ivp.State, n)
	}

	k1 := sys.Derive(x, t)
	for i := 0; i < n; i++ {
		r.half[i] = x[i] + h*0.5*k1[i]
	}
	k2 := sys.Derive(r.half, t+h*0.5)

	result := make(ivp.State, n)
	for i := 0; i < n; i++ {
		result[i] = x[i] + h*k2[i]
	}
	return result
}

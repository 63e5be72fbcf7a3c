package integrators

import "github.com/san-kum/odelab/internal/ivp"

// RK4 is the classic fourth-order Runge-Kutta rule, four derivative
// evaluations per step.
type RK4 struct {
	k1, k2, k3, k4 ivp.State
	scratch        ivp.State
}

func NewRK4() *RK4 {
	return &RK4{}
}

func (r *RK4) ensureScratch(n int) {
	if len(r.k1) != n {
		r.k1 = make(ivp.State, n)
		r.k2 = make(ivp.State, n)
		r.k3 = make(ivp.State, n)
		r.k4 = make(ivp.State, n)
		r.scratch = make(ivp.State, n)
	}
}

func (r *RK4) Step(sys ivp.System, x ivp.State, t, h float64) ivp.State {
	n := len(x)
	r.ensureScratch(n)

	k1 := sys.Derive(x, t)
	copy(r.k1, k1)

	for i := 0; i < n; i++ {
		r.scratch[i] = x[i] + h*0.5*r.k1[i]
	}
	k2 := sys.Derive(r.scratch, t+h*0.5)
	copy(r.k2, k2)

	for i := 0; i < n; i++ {
		r.scratch[i] = x[i] + h*0.5*r.k2[i]
	}
	k3 := sys.Derive(r.scratch, t+h*0.5)
	copy(r.k3, k3)

	for i := 0; i < n; i++ {
		r.scratch[i] = x[i] + h*r.k3[i]
	}
	k4 := sys.Derive(r.scratch, t+h)
	copy(r.k4, k4)

	result := make(ivp.State, n)
	h6 := h / 6.0
	for i := 0; i < n; i++ {
		result[i] = x[i] + h6*(r.k1[i]+2*r.k2[i]+2*r.k3[i]+r.k4[i])
	}

	return result
}

package integrators

import "github.com/san-kum/odelab/internal/ivp"

// Euler is the forward Euler rule, first-order accurate with one
// derivative evaluation per step.
type Euler struct{}

func NewEuler() *Euler {
	return &Euler{}
}

func (e *Euler) Step(sys ivp.System, x ivp.State, t, h float64) ivp.State {
	dx := sys.Derive(x, t)
	result := make(ivp.State, len(x))
	for i := range x {
		result[i] = x[i] + h*dx[i]
	}
	return result
}

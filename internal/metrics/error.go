// Package metrics provides per-step solver observations, primarily error
// measures against an analytic reference solution.
package metrics

import (
	"math"

	"github.com/san-kum/odelab/internal/ivp"
)

// MaxError tracks the worst pointwise deviation from the analytic solution.
type MaxError struct {
	name  string
	ref   ivp.Analytic
	worst float64
}

func NewMaxError(ref ivp.Analytic) *MaxError {
	return &MaxError{
		name: "max_error",
		ref:  ref,
	}
}

func (m *MaxError) Name() string { return m.name }

func (m *MaxError) Observe(x ivp.State, t float64) {
	exact := m.ref.Exact(t)
	err := x.Sub(exact).Norm()
	if err > m.worst {
		m.worst = err
	}
}

func (m *MaxError) Value() float64 {
	return m.worst
}

func (m *MaxError) Reset() {
	m.worst = 0
}

// RMSE tracks the root mean square deviation from the analytic solution.
type RMSE struct {
	name    string
	ref     ivp.Analytic
	sumSq   float64
	samples int
}

func NewRMSE(ref ivp.Analytic) *RMSE {
	return &RMSE{
		name: "rmse",
		ref:  ref,
	}
}

func (m *RMSE) Name() string { return m.name }

func (m *RMSE) Observe(x ivp.State, t float64) {
	err := x.Sub(m.ref.Exact(t)).Norm()
	m.sumSq += err * err
	m.samples++
}

func (m *RMSE) Value() float64 {
	if m.samples == 0 {
		return 0
	}
	return math.Sqrt(m.sumSq / float64(m.samples))
}

func (m *RMSE) Reset() {
	m.sumSq = 0
	m.samples = 0
}

// FinalError records the deviation at the last observed grid point.
type FinalError struct {
	name string
	ref  ivp.Analytic
	last float64
}

func NewFinalError(ref ivp.Analytic) *FinalError {
	return &FinalError{
		name: "final_error",
		ref:  ref,
	}
}

func (m *FinalError) Name() string { return m.name }

func (m *FinalError) Observe(x ivp.State, t float64) {
	m.last = x.Sub(m.ref.Exact(t)).Norm()
}

func (m *FinalError) Value() float64 {
	return m.last
}

func (m *FinalError) Reset() {
	m.last = 0
}

package experiment

import (
	"fmt"
	"sort"

	"github.com/san-kum/odelab/internal/integrators"
	"github.com/san-kum/odelab/internal/ivp"
	"github.com/san-kum/odelab/internal/metrics"
	"github.com/san-kum/odelab/internal/problems"
)

// Problem is a registered system with its canonical initial state.
type Problem interface {
	ivp.System
	InitialState() ivp.State
}

type Registry struct {
	problems map[string]func() Problem
	steppers map[string]func() ivp.Stepper
}

func NewRegistry() *Registry {
	r := &Registry{
		problems: make(map[string]func() Problem),
		steppers: make(map[string]func() ivp.Stepper),
	}

	r.problems["sine_growth"] = func() Problem { return problems.NewSineGrowth() }
	r.problems["decay"] = func() Problem { return problems.NewDecay() }
	r.problems["logistic"] = func() Problem { return problems.NewLogistic() }
	r.problems["oscillator"] = func() Problem { return problems.NewOscillator() }

	r.steppers["euler"] = func() ivp.Stepper { return integrators.NewEuler() }
	r.steppers["heun"] = func() ivp.Stepper { return integrators.NewHeun() }
	r.steppers["trapezoid"] = func() ivp.Stepper { return integrators.NewTrapezoid() }
	r.steppers["midpoint"] = func() ivp.Stepper { return integrators.NewMidpoint() }
	r.steppers["rk4"] = func() ivp.Stepper { return integrators.NewRK4() }

	return r
}

func (r *Registry) GetProblem(name string) (Problem, error) {
	fn, ok := r.problems[name]
	if !ok {
		return nil, fmt.Errorf("unknown problem: %s", name)
	}
	return fn(), nil
}

func (r *Registry) GetStepper(name string) (ivp.Stepper, error) {
	fn, ok := r.steppers[name]
	if !ok {
		return nil, fmt.Errorf("unknown method: %s", name)
	}
	return fn(), nil
}

func (r *Registry) ListProblems() []string {
	names := make([]string, 0, len(r.problems))
	for name := range r.problems {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (r *Registry) ListSteppers() []string {
	names := make([]string, 0, len(r.steppers))
	for name := range r.steppers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DefaultMetrics builds the error metrics applicable to the problem:
// analytic comparisons when a closed form exists, energy drift for
// Hamiltonian systems.
func (r *Registry) DefaultMetrics(p Problem) []ivp.Metric {
	ms := make([]ivp.Metric, 0, 4)
	if ref, ok := p.(ivp.Analytic); ok {
		ms = append(ms,
			metrics.NewMaxError(ref),
			metrics.NewRMSE(ref),
			metrics.NewFinalError(ref),
		)
	}
	if h, ok := p.(ivp.Hamiltonian); ok {
		ms = append(ms, metrics.NewEnergyDrift(h))
	}
	return ms
}

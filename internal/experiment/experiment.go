package experiment

import (
	"context"
	"fmt"

	"github.com/san-kum/odelab/internal/ivp"
)

type Config struct {
	Problem string
	Method  string
	T0      float64
	T1      float64
	Samples int
	Params  map[string]float64

	// X0 overrides the problem's initial state when non-nil.
	X0 ivp.State
}

type Experiment struct {
	cfg     Config
	problem Problem
	solver  *ivp.Solver
}

func New(cfg Config) *Experiment {
	return &Experiment{cfg: cfg}
}

// Setup applies parameter overrides and wires the solver with metrics.
func (e *Experiment) Setup(p Problem, st ivp.Stepper, ms []ivp.Metric) error {
	for name, value := range e.cfg.Params {
		cfg, ok := p.(ivp.Configurable)
		if !ok {
			return fmt.Errorf("problem %s does not accept params", e.cfg.Problem)
		}
		if err := cfg.SetParam(name, value); err != nil {
			return err
		}
	}

	e.problem = p
	e.solver = ivp.New(p, st)
	for _, m := range ms {
		e.solver.AddMetric(m)
	}
	return nil
}

func (e *Experiment) Run(ctx context.Context) (*ivp.Result, error) {
	if e.solver == nil {
		return nil, fmt.Errorf("experiment not set up")
	}

	x0 := e.cfg.X0
	if x0 == nil {
		x0 = e.problem.InitialState()
	}
	return e.solver.Run(ctx, x0, ivp.Config{
		T0:            e.cfg.T0,
		T1:            e.cfg.T1,
		Samples:       e.cfg.Samples,
		ValidateState: true,
	})
}

// Solver exposes the underlying solver for adding observers.
func (e *Experiment) Solver() *ivp.Solver {
	return e.solver
}

// Exact returns the analytic trajectory over the experiment grid, or nil
// when the problem has no closed form.
func (e *Experiment) Exact() []ivp.State {
	ref, ok := e.problem.(ivp.Analytic)
	if !ok {
		return nil
	}
	ts := ivp.UniformGrid(e.cfg.T0, e.cfg.T1, e.cfg.Samples)
	out := make([]ivp.State, len(ts))
	for i, t := range ts {
		out[i] = ref.Exact(t)
	}
	return out
}

package ivp

import (
	"context"
	"math"
)

// UniformGrid returns n equally spaced time points from t0 to t1 inclusive.
func UniformGrid(t0, t1 float64, n int) []float64 {
	if n < 2 {
		return nil
	}
	ts := make([]float64, n)
	h := (t1 - t0) / float64(n-1)
	for i := range ts {
		ts[i] = t0 + float64(i)*h
	}
	ts[n-1] = t1
	return ts
}

// SolveGrid advances sys from x0 across the time grid ts and returns the
// trajectory aligned with ts. The grid may be non-uniform; each step uses
// h = ts[i+1]-ts[i]. The first entry of the result is a copy of x0.
func SolveGrid(st Stepper, sys System, x0 State, ts []float64) ([]State, error) {
	if len(ts) < 2 {
		return nil, ErrGridTooShort
	}
	if sys.Dim() != len(x0) {
		return nil, ErrDimensionMismatch
	}

	xs := make([]State, len(ts))
	xs[0] = x0.Clone()
	for i := 0; i < len(ts)-1; i++ {
		xs[i+1] = st.Step(sys, xs[i], ts[i], ts[i+1]-ts[i])
	}
	return xs, nil
}

// Solver runs a stepper over a uniform grid with per-step instrumentation.
type Solver struct {
	sys       System
	stepper   Stepper
	metrics   []Metric
	observers []Observer
}

func New(sys System, stepper Stepper) *Solver {
	return &Solver{
		sys:       sys,
		stepper:   stepper,
		metrics:   make([]Metric, 0),
		observers: make([]Observer, 0),
	}
}

func (s *Solver) AddMetric(m Metric)     { s.metrics = append(s.metrics, m) }
func (s *Solver) AddObserver(o Observer) { s.observers = append(s.observers, o) }

func (s *Solver) Run(ctx context.Context, x0 State, cfg Config) (*Result, error) {
	if err := s.validateConfig(cfg); err != nil {
		return nil, err
	}
	if s.sys.Dim() != len(x0) {
		return nil, ErrDimensionMismatch
	}

	ts := UniformGrid(cfg.T0, cfg.T1, cfg.Samples)
	result := &Result{
		Times:   make([]float64, 0, len(ts)),
		States:  make([]State, 0, len(ts)),
		Metrics: make(map[string]float64),
		Errors:  make([]error, 0),
	}

	for _, m := range s.metrics {
		m.Reset()
	}

	x := x0.Clone()
	result.States = append(result.States, x.Clone())
	result.Times = append(result.Times, ts[0])

	initialEnergy := s.computeEnergy(x)

	s.observe(x, ts[0])

	for i := 0; i < len(ts)-1; i++ {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		newX := s.stepper.Step(s.sys, x, ts[i], ts[i+1]-ts[i])

		if cfg.ValidateState && !newX.IsValid() {
			err := &SolveError{Step: i, Time: ts[i], Wrapped: ErrInvalidState}
			result.Errors = append(result.Errors, err)
			break
		}

		x = newX
		result.StepsTaken++

		result.States = append(result.States, x.Clone())
		result.Times = append(result.Times, ts[i+1])

		s.observe(x, ts[i+1])
	}

	finalEnergy := s.computeEnergy(x)
	if initialEnergy != 0 {
		result.EnergyDrift = math.Abs(finalEnergy-initialEnergy) / math.Abs(initialEnergy)
	}

	for _, m := range s.metrics {
		result.Metrics[m.Name()] = m.Value()
	}

	return result, nil
}

func (s *Solver) observe(x State, t float64) {
	for _, m := range s.metrics {
		m.Observe(x, t)
	}
	for _, obs := range s.observers {
		obs.OnStep(x, t)
	}
}

func (s *Solver) validateConfig(cfg Config) error {
	if cfg.Samples < 2 {
		return ErrGridTooShort
	}
	if cfg.T1 <= cfg.T0 {
		return ErrInvalidConfig
	}
	return nil
}

func (s *Solver) computeEnergy(x State) float64 {
	if h, ok := s.sys.(Hamiltonian); ok {
		return h.Energy(x)
	}
	return 0
}

package ivp

import (
	"context"
	"errors"
	"math"
	"testing"
)

// eulerStep is a minimal stepper for driver tests; the real rules live in
// the integrators package.
type eulerStep struct{}

func (eulerStep) Step(sys System, x State, t, h float64) State {
	dx := sys.Derive(x, t)
	result := make(State, len(x))
	for i := range x {
		result[i] = x[i] + h*dx[i]
	}
	return result
}

var decay = Func(1, func(x State, t float64) State {
	return State{-x[0]}
})

func TestUniformGrid(t *testing.T) {
	ts := UniformGrid(0, 10, 32)
	if len(ts) != 32 {
		t.Fatalf("expected 32 points, got %d", len(ts))
	}
	if ts[0] != 0 || ts[31] != 10 {
		t.Errorf("endpoints wrong: %f, %f", ts[0], ts[31])
	}

	h := ts[1] - ts[0]
	for i := 0; i < len(ts)-1; i++ {
		if math.Abs((ts[i+1]-ts[i])-h) > 1e-12 {
			t.Errorf("non-uniform spacing at %d", i)
		}
	}
}

func TestUniformGridTooShort(t *testing.T) {
	if UniformGrid(0, 1, 1) != nil {
		t.Error("expected nil grid for n=1")
	}
	if UniformGrid(0, 1, 0) != nil {
		t.Error("expected nil grid for n=0")
	}
}

func TestSolveGridShortGrid(t *testing.T) {
	_, err := SolveGrid(eulerStep{}, decay, Scalar(1.0), []float64{0})
	if !errors.Is(err, ErrGridTooShort) {
		t.Errorf("expected ErrGridTooShort, got %v", err)
	}
}

func TestSolveGridDimensionMismatch(t *testing.T) {
	_, err := SolveGrid(eulerStep{}, decay, State{1.0, 2.0}, []float64{0, 1})
	if !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("expected ErrDimensionMismatch, got %v", err)
	}
}

func TestSolveGridDoesNotAliasInitialState(t *testing.T) {
	x0 := Scalar(1.0)
	xs, err := SolveGrid(eulerStep{}, decay, x0, UniformGrid(0, 1, 11))
	if err != nil {
		t.Fatalf("solve failed: %v", err)
	}

	xs[0][0] = 42.0
	if x0[0] != 1.0 {
		t.Error("trajectory aliases the caller's initial state")
	}
}

func TestSolverRun(t *testing.T) {
	s := New(decay, eulerStep{})
	result, err := s.Run(context.Background(), Scalar(1.0), Config{
		T0: 0, T1: 1, Samples: 101, ValidateState: true,
	})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if len(result.States) != 101 {
		t.Errorf("expected 101 states, got %d", len(result.States))
	}
	if len(result.Times) != len(result.States) {
		t.Error("times and states have different lengths")
	}
	if result.StepsTaken != 100 {
		t.Errorf("expected 100 steps, got %d", result.StepsTaken)
	}

	// Euler on dx/dt = -x over [0, 1] with h = 0.01 lands near 1/e.
	final := result.States[len(result.States)-1][0]
	if math.Abs(final-math.Exp(-1)) > 0.01 {
		t.Errorf("final state %f too far from %f", final, math.Exp(-1))
	}
}

func TestSolverRunBadConfig(t *testing.T) {
	s := New(decay, eulerStep{})

	if _, err := s.Run(context.Background(), Scalar(1.0), Config{T0: 0, T1: 1, Samples: 1}); !errors.Is(err, ErrGridTooShort) {
		t.Errorf("expected ErrGridTooShort, got %v", err)
	}
	if _, err := s.Run(context.Background(), Scalar(1.0), Config{T0: 1, T1: 0, Samples: 10}); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestSolverRunCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := New(decay, eulerStep{})
	_, err := s.Run(ctx, Scalar(1.0), DefaultConfig())
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestSolverStopsOnInvalidState(t *testing.T) {
	blowup := Func(1, func(x State, tm float64) State {
		return State{math.NaN()}
	})

	s := New(blowup, eulerStep{})
	result, err := s.Run(context.Background(), Scalar(1.0), Config{
		T0: 0, T1: 1, Samples: 11, ValidateState: true,
	})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if len(result.Errors) == 0 {
		t.Fatal("expected a recorded error for NaN state")
	}
	if !errors.Is(result.Errors[0], ErrInvalidState) {
		t.Errorf("expected ErrInvalidState, got %v", result.Errors[0])
	}
	if len(result.States) >= 11 {
		t.Error("solver should have stopped early")
	}

	var solveErr *SolveError
	if !errors.As(result.Errors[0], &solveErr) {
		t.Fatal("expected a SolveError")
	}
	if solveErr.Step != 0 {
		t.Errorf("expected failure at step 0, got %d", solveErr.Step)
	}
}

type countingMetric struct {
	calls int
}

func (m *countingMetric) Name() string              { return "calls" }
func (m *countingMetric) Observe(x State, t float64) { m.calls++ }
func (m *countingMetric) Value() float64            { return float64(m.calls) }
func (m *countingMetric) Reset()                    { m.calls = 0 }

func TestSolverMetrics(t *testing.T) {
	s := New(decay, eulerStep{})
	m := &countingMetric{}
	s.AddMetric(m)

	result, err := s.Run(context.Background(), Scalar(1.0), Config{
		T0: 0, T1: 1, Samples: 11,
	})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	// One observation per grid point.
	if result.Metrics["calls"] != 11 {
		t.Errorf("expected 11 observations, got %f", result.Metrics["calls"])
	}
}

type oscillator struct{}

func (oscillator) Dim() int { return 2 }
func (oscillator) Derive(x State, t float64) State {
	return State{x[1], -x[0]}
}
func (oscillator) Energy(x State) float64 {
	return 0.5 * (x[0]*x[0] + x[1]*x[1])
}

func TestSolverEnergyDrift(t *testing.T) {
	s := New(oscillator{}, eulerStep{})
	result, err := s.Run(context.Background(), State{1, 0}, Config{
		T0: 0, T1: 1, Samples: 101,
	})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	// Forward Euler gains energy on the oscillator, so drift is nonzero.
	if result.EnergyDrift <= 0 {
		t.Error("expected positive energy drift for Euler on the oscillator")
	}
}

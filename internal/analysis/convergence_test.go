package analysis

import (
	"errors"
	"math"
	"testing"

	"github.com/san-kum/odelab/internal/integrators"
	"github.com/san-kum/odelab/internal/ivp"
	"github.com/san-kum/odelab/internal/problems"
)

func TestConvergenceOrders(t *testing.T) {
	tests := []struct {
		name  string
		build func() ivp.Stepper
		want  float64
		tol   float64
	}{
		{"euler", func() ivp.Stepper { return integrators.NewEuler() }, 1.0, 0.25},
		{"heun", func() ivp.Stepper { return integrators.NewHeun() }, 2.0, 0.25},
		{"midpoint", func() ivp.Stepper { return integrators.NewMidpoint() }, 2.0, 0.25},
		{"rk4", func() ivp.Stepper { return integrators.NewRK4() }, 4.0, 0.35},
	}

	p := problems.NewSineGrowth()
	for _, tt := range tests {
		levels, err := Convergence(tt.build, p, p.InitialState(), 0, 10, 201, 4)
		if err != nil {
			t.Fatalf("%s: study failed: %v", tt.name, err)
		}
		if len(levels) != 4 {
			t.Fatalf("%s: expected 4 levels, got %d", tt.name, len(levels))
		}

		order := ObservedOrder(levels)
		if math.Abs(order-tt.want) > tt.tol {
			t.Errorf("%s: observed order %.3f, want %.1f ± %.2f", tt.name, order, tt.want, tt.tol)
		}
	}
}

func TestConvergenceErrorsShrink(t *testing.T) {
	p := problems.NewSineGrowth()
	levels, err := Convergence(
		func() ivp.Stepper { return integrators.NewHeun() },
		p, p.InitialState(), 0, 10, 33, 5,
	)
	if err != nil {
		t.Fatalf("study failed: %v", err)
	}

	for i := 1; i < len(levels); i++ {
		if levels[i].MaxError >= levels[i-1].MaxError {
			t.Errorf("error did not shrink at level %d: %e >= %e",
				i, levels[i].MaxError, levels[i-1].MaxError)
		}
		if math.Abs(levels[i].StepSize-levels[i-1].StepSize/2) > 1e-12 {
			t.Errorf("step size not halved at level %d", i)
		}
	}
}

func TestConvergenceRequiresAnalytic(t *testing.T) {
	noExact := ivp.Func(1, func(x ivp.State, tm float64) ivp.State {
		return ivp.State{-x[0]}
	})

	_, err := Convergence(
		func() ivp.Stepper { return integrators.NewHeun() },
		noExact, ivp.Scalar(1.0), 0, 1, 11, 2,
	)
	if !errors.Is(err, ivp.ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestObservedOrderEmpty(t *testing.T) {
	if ObservedOrder(nil) != 0 {
		t.Error("expected zero order for empty study")
	}
	if ObservedOrder([]ConvergenceLevel{{Samples: 10}}) != 0 {
		t.Error("expected zero order for single level")
	}
}

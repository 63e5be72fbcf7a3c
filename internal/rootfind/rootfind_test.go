package rootfind

import (
	"errors"
	"math"
	"testing"
)

func quadratic(x float64) float64  { return x*x - 2.0 }
func dQuadratic(x float64) float64 { return 2.0 * x }

func TestBisection(t *testing.T) {
	tests := []struct {
		name string
		a, b float64
		want float64
	}{
		{"right root", 1.0, 2.0, math.Sqrt2},
		{"left root", -2.0, 0.0, -math.Sqrt2},
	}

	for _, tt := range tests {
		root, err := Bisection(quadratic, tt.a, tt.b, Config{})
		if err != nil {
			t.Fatalf("%s: bisection failed: %v", tt.name, err)
		}
		if math.Abs(root-tt.want) > 1e-13 {
			t.Errorf("%s: got %.15f, want %.15f", tt.name, root, tt.want)
		}
	}
}

func TestBisectionNoBracket(t *testing.T) {
	// f(3) > 0 and f(4) > 0: no sign change.
	if _, err := Bisection(quadratic, 3.0, 4.0, Config{}); !errors.Is(err, ErrNoBracket) {
		t.Errorf("expected ErrNoBracket, got %v", err)
	}
	// f(-1) < 0 and f(1) < 0.
	if _, err := Bisection(quadratic, -1.0, 1.0, Config{}); !errors.Is(err, ErrNoBracket) {
		t.Errorf("expected ErrNoBracket, got %v", err)
	}
}

func TestBisectionInvalidInterval(t *testing.T) {
	if _, err := Bisection(quadratic, 2.0, 1.0, Config{}); !errors.Is(err, ErrInvalidInterval) {
		t.Errorf("expected ErrInvalidInterval, got %v", err)
	}
}

func TestBisectionEndpointRoot(t *testing.T) {
	root, err := Bisection(quadratic, math.Sqrt2, 3.0, Config{})
	if err != nil {
		t.Fatalf("bisection failed: %v", err)
	}
	if root != math.Sqrt2 {
		t.Errorf("expected endpoint root, got %.15f", root)
	}
}

func TestNewton(t *testing.T) {
	tests := []struct {
		name string
		x0   float64
		want float64
	}{
		{"above right root", 3.0, math.Sqrt2},
		{"below right root", 0.1, math.Sqrt2},
		{"above left root", -0.1, -math.Sqrt2},
		{"below left root", -3.0, -math.Sqrt2},
	}

	for _, tt := range tests {
		root, err := Newton(quadratic, dQuadratic, tt.x0, Config{})
		if err != nil {
			t.Fatalf("%s: newton failed: %v", tt.name, err)
		}
		if math.Abs(root-tt.want) > 1e-13 {
			t.Errorf("%s: got %.15f, want %.15f", tt.name, root, tt.want)
		}
	}
}

func TestNewtonFlatDerivative(t *testing.T) {
	// The derivative vanishes at x = 0.
	if _, err := Newton(quadratic, dQuadratic, 0.0, Config{}); !errors.Is(err, ErrFlatDerivative) {
		t.Errorf("expected ErrFlatDerivative, got %v", err)
	}
}

func TestSecant(t *testing.T) {
	tests := []struct {
		name   string
		x0, x1 float64
		want   float64
	}{
		{"above right root", 2.0, 4.0, math.Sqrt2},
		{"straddling right root", 0.5, 3.0, math.Sqrt2},
		{"left root", 0.0, -1.0, -math.Sqrt2},
		{"below left root", -2.0, -0.4, -math.Sqrt2},
	}

	for _, tt := range tests {
		root, err := Secant(quadratic, tt.x0, tt.x1, Config{})
		if err != nil {
			t.Fatalf("%s: secant failed: %v", tt.name, err)
		}
		if math.Abs(root-tt.want) > 1e-13 {
			t.Errorf("%s: got %.15f, want %.15f", tt.name, root, tt.want)
		}
	}
}

func TestSecantSymmetricGuesses(t *testing.T) {
	// Guesses symmetric around x = 0 give a flat secant.
	if _, err := Secant(quadratic, -0.5, 0.5, Config{}); !errors.Is(err, ErrFlatDerivative) {
		t.Errorf("expected ErrFlatDerivative, got %v", err)
	}
}

func TestSecantBadGuesses(t *testing.T) {
	if _, err := Secant(quadratic, 1.0, 1.0, Config{}); !errors.Is(err, ErrBadGuesses) {
		t.Errorf("expected ErrBadGuesses, got %v", err)
	}
}

func TestSteffensen(t *testing.T) {
	tests := []struct {
		name string
		x0   float64
		want float64
	}{
		{"above right root", 3.0, math.Sqrt2},
		{"below right root", 0.5, -math.Sqrt2},
		{"above left root", -0.5, -math.Sqrt2},
		{"between roots", 0.0, -math.Sqrt2},
		{"left of left root", -1.45, -math.Sqrt2},
	}

	for _, tt := range tests {
		root, err := Steffensen(quadratic, tt.x0, Config{})
		if err != nil {
			t.Fatalf("%s: steffensen failed: %v", tt.name, err)
		}
		if math.Abs(root-tt.want) > 1e-13 {
			t.Errorf("%s: got %.15f, want %.15f", tt.name, root, tt.want)
		}
	}
}

func TestSteffensenDiverges(t *testing.T) {
	// Starting too far left of the left root the divided-difference
	// slope points away from it and the iteration never settles.
	if _, err := Steffensen(quadratic, -3.0, Config{}); err == nil {
		t.Error("expected an error for a diverging start")
	}
}

func TestConfigBudget(t *testing.T) {
	// A starved iteration budget must not loop forever; bisection reports
	// its best midpoint, secant reports exhaustion.
	cfg := Config{Tolerance: 1e-15, MaxIterations: 2}

	if _, err := Bisection(quadratic, 1.0, 2.0, cfg); err != nil {
		t.Errorf("bisection with small budget: %v", err)
	}

	if _, err := Secant(quadratic, 20.0, 40.0, cfg); !errors.Is(err, ErrMaxIterations) {
		t.Errorf("expected ErrMaxIterations, got %v", err)
	}
}

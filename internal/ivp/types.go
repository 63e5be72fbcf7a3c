package ivp

import "math"

type State []float64

func (s State) Clone() State {
	c := make(State, len(s))
	copy(c, s)
	return c
}

func (s State) IsValid() bool {
	for _, v := range s {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func (s State) Norm() float64 {
	sum := 0.0
	for _, v := range s {
		sum += v * v
	}
	return math.Sqrt(sum)
}

func (s State) Add(other State) State {
	result := make(State, len(s))
	for i := range s {
		if i < len(other) {
			result[i] = s[i] + other[i]
		} else {
			result[i] = s[i]
		}
	}
	return result
}

func (s State) Sub(other State) State {
	result := make(State, len(s))
	for i := range s {
		if i < len(other) {
			result[i] = s[i] - other[i]
		} else {
			result[i] = s[i]
		}
	}
	return result
}

func (s State) Scale(factor float64) State {
	result := make(State, len(s))
	for i := range s {
		result[i] = s[i] * factor
	}
	return result
}

// Scalar returns a one-element state, the common case for textbook problems.
func Scalar(v float64) State {
	return State{v}
}

// System is the right-hand side of dx/dt = f(x, t). Derive must be pure:
// steppers may call it several times per step.
type System interface {
	Derive(x State, t float64) State
	Dim() int
}

// DerivFunc adapts a plain derivative closure.
type DerivFunc func(x State, t float64) State

type funcSystem struct {
	dim int
	f   DerivFunc
}

func (s funcSystem) Derive(x State, t float64) State { return s.f(x, t) }
func (s funcSystem) Dim() int                        { return s.dim }

// Func wraps a derivative closure as a System of the given dimension.
func Func(dim int, f DerivFunc) System {
	return funcSystem{dim: dim, f: f}
}

// Analytic is implemented by systems with a known closed-form solution.
type Analytic interface {
	Exact(t float64) State
}

// Hamiltonian is implemented by systems with a conserved energy.
type Hamiltonian interface {
	Energy(x State) float64
}

// Stepper advances a state by one explicit step of size h.
type Stepper interface {
	Step(sys System, x State, t, h float64) State
}

type Metric interface {
	Name() string
	Observe(x State, t float64)
	Value() float64
	Reset()
}

type Observer interface {
	OnStep(x State, t float64)
}

type Configurable interface {
	GetParams() map[string]float64
	SetParam(name string, value float64) error
}

type Config struct {
	T0            float64
	T1            float64
	Samples       int
	ValidateState bool
}

func DefaultConfig() Config {
	return Config{
		T0:            0.0,
		T1:            10.0,
		Samples:       32,
		ValidateState: true,
	}
}

type Result struct {
	Times       []float64
	States      []State
	Metrics     map[string]float64
	EnergyDrift float64
	StepsTaken  int
	Errors      []error
}

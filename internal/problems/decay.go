package problems

import (
	"fmt"
	"math"

	"github.com/san-kum/odelab/internal/ivp"
)

// Decay is dx/dt = -λx with x(T0) = X0, exact solution X0·exp(-λ(t-T0)).
type Decay struct {
	Lambda float64
	X0     float64
	T0     float64
}

func NewDecay() *Decay {
	return &Decay{
		Lambda: 1.0,
		X0:     1.0,
		T0:     0.0,
	}
}

func (p *Decay) Dim() int {
	return 1
}

func (p *Decay) InitialState() ivp.State {
	return ivp.Scalar(p.X0)
}

func (p *Decay) Derive(x ivp.State, t float64) ivp.State {
	return ivp.State{-p.Lambda * x[0]}
}

func (p *Decay) Exact(t float64) ivp.State {
	return ivp.Scalar(p.X0 * math.Exp(-p.Lambda*(t-p.T0)))
}

func (p *Decay) GetParams() map[string]float64 {
	return map[string]float64{
		"lambda": p.Lambda,
		"x0":     p.X0,
		"t0":     p.T0,
	}
}

func (p *Decay) SetParam(name string, value float64) error {
	switch name {
	case "lambda":
		p.Lambda = value
	case "x0":
		p.X0 = value
	case "t0":
		p.T0 = value
	default:
		return fmt.Errorf("unknown param: %s", name)
	}
	return nil
}

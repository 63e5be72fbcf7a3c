package problems

import (
	"fmt"
	"math"

	"github.com/san-kum/odelab/internal/ivp"
)

// Logistic is dx/dt = r·x(1 - x/K) with x(T0) = X0.
type Logistic struct {
	R  float64
	K  float64
	X0 float64
	T0 float64
}

func NewLogistic() *Logistic {
	return &Logistic{
		R:  1.0,
		K:  10.0,
		X0: 0.5,
		T0: 0.0,
	}
}

func (p *Logistic) Dim() int {
	return 1
}

func (p *Logistic) InitialState() ivp.State {
	return ivp.Scalar(p.X0)
}

func (p *Logistic) Derive(x ivp.State, t float64) ivp.State {
	return ivp.State{p.R * x[0] * (1.0 - x[0]/p.K)}
}

func (p *Logistic) Exact(t float64) ivp.State {
	e := math.Exp(p.R * (t - p.T0))
	return ivp.Scalar(p.K * p.X0 * e / (p.K + p.X0*(e-1.0)))
}

func (p *Logistic) GetParams() map[string]float64 {
	return map[string]float64{
		"r":  p.R,
		"k":  p.K,
		"x0": p.X0,
		"t0": p.T0,
	}
}

func (p *Logistic) SetParam(name string, value float64) error {
	switch name {
	case "r":
		p.R = value
	case "k":
		p.K = value
	case "x0":
		p.X0 = value
	case "t0":
		p.T0 = value
	default:
		return fmt.Errorf("unknown param: %s", name)
	}
	return nil
}

package problems

import (
	"fmt"
	"math"

	"github.com/san-kum/odelab/internal/ivp"
)

// SineGrowth is dx/dt = x·sin t with x(T0) = X0. The exact solution is
// x(t) = X0·exp(cos T0 - cos t); with the default X0 = -1, T0 = 0 this is
// -exp(1 - cos t).
type SineGrowth struct {
	X0 float64
	T0 float64
}

func NewSineGrowth() *SineGrowth {
	return &SineGrowth{
		X0: -1.0,
		T0: 0.0,
	}
}

func (p *SineGrowth) Dim() int {
	return 1
}

func (p *SineGrowth) InitialState() ivp.State {
	return ivp.Scalar(p.X0)
}

func (p *SineGrowth) Derive(x ivp.State, t float64) ivp.State {
	return ivp.State{x[0] * math.Sin(t)}
}

func (p *SineGrowth) Exact(t float64) ivp.State {
	return ivp.Scalar(p.X0 * math.Exp(math.Cos(p.T0)-math.Cos(t)))
}

func (p *SineGrowth) GetParams() map[string]float64 {
	return map[string]float64{
		"x0": p.X0,
		"t0": p.T0,
	}
}

func (p *SineGrowth) SetParam(name string, value float64) error {
	switch name {
	case "x0":
		p.X0 = value
	case "t0":
		p.T0 = value
	default:
		return fmt.Errorf("unknown param: %s", name)
	}
	return nil
}

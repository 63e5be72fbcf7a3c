package problems

import (
	"fmt"
	"math"

	"github.com/san-kum/odelab/internal/ivp"
)

// Oscillator is the undamped harmonic oscillator x'' = -ω²x written as a
// two-dimensional first-order system {position, velocity}. Released from
// rest at amplitude X0, the exact solution is x(t) = X0·cos(ω(t-T0)).
type Oscillator struct {
	Omega float64
	X0    float64
	T0    float64
}

func NewOscillator() *Oscillator {
	return &Oscillator{
		Omega: 1.0,
		X0:    1.0,
		T0:    0.0,
	}
}

func (p *Oscillator) Dim() int {
	return 2
}

func (p *Oscillator) InitialState() ivp.State {
	return ivp.State{p.X0, 0.0}
}

func (p *Oscillator) Derive(x ivp.State, t float64) ivp.State {
	return ivp.State{x[1], -p.Omega * p.Omega * x[0]}
}

func (p *Oscillator) Exact(t float64) ivp.State {
	phase := p.Omega * (t - p.T0)
	return ivp.State{
		p.X0 * math.Cos(phase),
		-p.X0 * p.Omega * math.Sin(phase),
	}
}

func (p *Oscillator) Energy(x ivp.State) float64 {
	return 0.5*x[1]*x[1] + 0.5*p.Omega*p.Omega*x[0]*x[0]
}

func (p *Oscillator) GetParams() map[string]float64 {
	return map[string]float64{
		"omega": p.Omega,
		"x0":    p.X0,
		"t0":    p.T0,
	}
}

func (p *Oscillator) SetParam(name string, value float64) error {
	switch name {
	case "omega":
		p.Omega = value
	case "x0":
		p.X0 = value
	case "t0":
		p.T0 = value
	default:
		return fmt.Errorf("unknown param: %s", name)
	}
	return nil
}

// Package analysis provides numerical experiments over solver runs.
package analysis

import (
	"math"

	"github.com/san-kum/odelab/internal/ivp"
)

// ConvergenceLevel is one resolution of a convergence study.
type ConvergenceLevel struct {
	Samples  int
	StepSize float64
	MaxError float64

	// Order is the observed convergence order relative to the previous
	// level, log2(e_prev / e_this); zero for the first level.
	Order float64
}

// Convergence solves the same problem on successively halved step sizes
// and measures the max pointwise error against the analytic solution.
// For a rule of order p the observed order should approach p.
//
// The system must implement ivp.Analytic. levels counts the refinements;
// baseN is the sample count of the coarsest grid.
func Convergence(
	st func() ivp.Stepper,
	sys ivp.System,
	x0 ivp.State,
	t0, t1 float64,
	baseN, levels int,
) ([]ConvergenceLevel, error) {
	ref, ok := sys.(ivp.Analytic)
	if !ok {
		return nil, ivp.ErrInvalidConfig
	}

	out := make([]ConvergenceLevel, 0, levels)

	n := baseN
	prevErr := 0.0
	for level := 0; level < levels; level++ {
		ts := ivp.UniformGrid(t0, t1, n)
		xs, err := ivp.SolveGrid(st(), sys, x0, ts)
		if err != nil {
			return nil, err
		}

		worst := 0.0
		for i := range xs {
			e := xs[i].Sub(ref.Exact(ts[i])).Norm()
			if e > worst {
				worst = e
			}
		}

		lvl := ConvergenceLevel{
			Samples:  n,
			StepSize: ts[1] - ts[0],
			MaxError: worst,
		}
		if level > 0 && worst > 0 {
			lvl.Order = math.Log2(prevErr / worst)
		}
		out = append(out, lvl)

		prevErr = worst
		// Halve the step size: double the step count, keep endpoints.
		n = (n-1)*2 + 1
	}

	return out, nil
}

// ObservedOrder is the mean observed order across the refined levels of a
// completed study.
func ObservedOrder(levels []ConvergenceLevel) float64 {
	if len(levels) < 2 {
		return 0
	}
	sum := 0.0
	for _, lvl := range levels[1:] {
		sum += lvl.Order
	}
	return sum / float64(len(levels)-1)
}

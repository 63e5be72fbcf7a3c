// Package problems provides canonical initial value problems for the
// solver laboratory.
//
// Each problem implements the [ivp.System] interface and, where a closed
// form exists, [ivp.Analytic], so solver output can be checked pointwise
// against the true solution:
//
//   - [SineGrowth]: dx/dt = x·sin t, the canonical demo problem
//   - [Decay]: dx/dt = -λx
//   - [Logistic]: dx/dt = r·x(1 - x/K)
//   - [Oscillator]: undamped harmonic oscillator (vector state)
//
// All problems implement [ivp.Configurable] for runtime parameter
// adjustment.
package problems

// Package ivp provides core primitives for initial value problems.
//
// The package defines the fundamental interfaces and types for numerical
// solution of ordinary differential equations dx/dt = f(x, t):
//
//   - [State]: vector representing the solution state
//   - [System]: interface for the right-hand side f(x, t)
//   - [Stepper]: one-step explicit integration rule
//   - [SolveGrid]: advance a system across a caller-supplied time grid
//   - [Solver]: orchestrates instrumented solver runs
//
// All steppers are one-step methods: the next state depends only on the
// current state, the current time, and the step size, never on earlier
// trajectory history.
//
// # Example
//
//	sys := problems.NewSineGrowth()
//	xs, err := ivp.SolveGrid(integrators.NewHeun(), sys, sys.InitialState(),
//		ivp.UniformGrid(0, 10, 32))
//
// # Thread Safety
//
// Solver instances are NOT thread-safe. Steppers that keep scratch buffers
// must not be shared across goroutines.
package ivp

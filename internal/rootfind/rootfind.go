// Package rootfind provides scalar root-finding routines.
//
// Every routine searches for x with f(x) = 0 under a shared [Config]
// budget and reports failure through sentinel errors instead of
// converging silently to garbage:
//
//   - [Bisection]: bracketing, always converges given a sign change
//   - [Newton]: quadratic convergence, needs the derivative
//   - [Secant]: derivative-free Newton variant
//   - [Steffensen]: Newton variant using a divided-difference slope
package rootfind

import "errors"

var (
	// ErrNoBracket indicates f(a) and f(b) do not straddle zero.
	ErrNoBracket = errors.New("rootfind: f(a) and f(b) must have opposite signs")

	// ErrFlatDerivative indicates a vanishing derivative or secant slope.
	ErrFlatDerivative = errors.New("rootfind: derivative too close to zero")

	// ErrBadGuesses indicates initial guesses too close to distinguish.
	ErrBadGuesses = errors.New("rootfind: initial guesses too close together")

	// ErrMaxIterations indicates the iteration budget ran out.
	ErrMaxIterations = errors.New("rootfind: maximum iterations exceeded")

	// ErrInvalidInterval indicates a search interval with b < a.
	ErrInvalidInterval = errors.New("rootfind: invalid interval")
)

type Config struct {
	Tolerance     float64
	MaxIterations int
}

func DefaultConfig() Config {
	return Config{
		Tolerance:     1e-15,
		MaxIterations: 100,
	}
}

func (c Config) withDefaults() Config {
	if c.Tolerance <= 0 {
		c.Tolerance = 1e-15
	}
	if c.MaxIterations <= 0 {
		c.MaxIterations = 100
	}
	return c
}

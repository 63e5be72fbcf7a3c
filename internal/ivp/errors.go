package ivp

import "errors"

// Domain errors for solver operations.
var (
	// ErrGridTooShort indicates a time grid with fewer than two points.
	ErrGridTooShort = errors.New("ivp: time grid needs at least two points")

	// ErrDimensionMismatch indicates mismatched state/system dimensions.
	ErrDimensionMismatch = errors.New("ivp: dimension mismatch between state and system")

	// ErrInvalidState indicates a state vector containing NaN or Inf.
	ErrInvalidState = errors.New("ivp: invalid state (NaN or Inf detected)")

	// ErrInvalidConfig indicates a non-positive interval or sample count.
	ErrInvalidConfig = errors.New("ivp: invalid solver configuration")
)

// SolveError wraps an error with the step at which it occurred.
type SolveError struct {
	Step    int
	Time    float64
	Wrapped error
}

func (e *SolveError) Error() string {
	return e.Wrapped.Error()
}

func (e *SolveError) Unwrap() error {
	return e.Wrapped
}

package rootfind

import "math"

// Secant finds a root of f from two initial guesses, replacing Newton's
// derivative with the slope of the secant through the last two iterates.
func Secant(f func(float64) float64, x0, x1 float64, cfg Config) (float64, error) {
	cfg = cfg.withDefaults()

	if math.Abs(x0-x1) < cfg.Tolerance {
		return 0, ErrBadGuesses
	}

	for i := 0; i < cfg.MaxIterations; i++ {
		f1 := f(x1)
		xDiff := x1 - x0

		if math.Abs(f1) < cfg.Tolerance || math.Abs(xDiff) < cfg.Tolerance {
			return x1, nil
		}

		fDiff := f1 - f(x0)
		if math.Abs(fDiff) < cfg.Tolerance {
			return 0, ErrFlatDerivative
		}

		x0, x1 = x1, x1-f1*xDiff/fDiff
	}

	return 0, ErrMaxIterations
}

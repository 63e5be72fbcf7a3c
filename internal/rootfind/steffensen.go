package rootfind

import "math"

// Steffensen finds a root of f from the initial guess x0. It iterates
// like Newton's method but approximates the derivative with the
// first-order divided difference g(x) = f(x+f(x))/f(x) - 1, so no
// derivative is supplied. Convergence needs a starting point reasonably
// close to the root; a flat divided difference aborts the search.
func Steffensen(f func(float64) float64, x0 float64, cfg Config) (float64, error) {
	cfg = cfg.withDefaults()

	x := x0
	for i := 0; i < cfg.MaxIterations; i++ {
		fx := f(x)
		if math.Abs(fx) < cfg.Tolerance {
			return x, nil
		}

		dfx := f(x+fx)/fx - 1.0
		if math.Abs(dfx) < cfg.Tolerance {
			return 0, ErrFlatDerivative
		}

		delta := -fx / dfx
		x += delta

		if math.Abs(delta) < cfg.Tolerance {
			return x, nil
		}
	}

	return 0, ErrMaxIterations
}

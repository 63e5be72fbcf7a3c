package rootfind

import "math"

// Newton finds a root of f from the initial guess x0 using the
// Newton-Raphson iteration x ← x − f(x)/f'(x). The caller supplies the
// derivative df; iteration aborts where the derivative vanishes.
func Newton(f, df func(float64) float64, x0 float64, cfg Config) (float64, error) {
	cfg = cfg.withDefaults()

	flat := math.Min(1e-15, cfg.Tolerance)

	x := x0
	dfx := df(x)
	if math.Abs(dfx) < flat {
		return 0, ErrFlatDerivative
	}

	fx := f(x)
	delta := -fx / dfx

	for i := 0; i < cfg.MaxIterations; i++ {
		if math.Abs(delta) <= cfg.Tolerance || math.Abs(fx) <= cfg.Tolerance {
			return x, nil
		}

		x += delta
		fx = f(x)
		dfx = df(x)

		if math.Abs(dfx) < flat {
			return 0, ErrFlatDerivative
		}
		delta = -fx / dfx
	}

	return x, nil
}

package rootfind

import "math"

// Bisection finds a root of f in [a, b] by interval halving. f(a) and
// f(b) must have opposite signs.
func Bisection(f func(float64) float64, a, b float64, cfg Config) (float64, error) {
	cfg = cfg.withDefaults()

	if b < a {
		return 0, ErrInvalidInterval
	}

	fa := f(a)
	fb := f(b)

	if math.Abs(fa) < cfg.Tolerance {
		return a, nil
	}
	if math.Abs(fb) < cfg.Tolerance {
		return b, nil
	}
	if fa*fb > 0 {
		return 0, ErrNoBracket
	}

	mid := (a + b) / 2.0
	fMid := f(mid)

	for i := 0; i < cfg.MaxIterations; i++ {
		if b-a <= cfg.Tolerance || math.Abs(fMid) <= cfg.Tolerance {
			return mid, nil
		}

		if fa*fMid < 0 {
			b = mid
			fb = fMid
		} else {
			a = mid
			fa = fMid
		}
		mid = (a + b) / 2.0
		fMid = f(mid)
	}

	return mid, nil
}

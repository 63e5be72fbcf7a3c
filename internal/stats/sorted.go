package stats

import (
	"math"
	"sort"
)

// Percentile is the empirical percentile of samples sorted ascending.
// When the percentile index n·level is integral, the result is the
// midpoint of the two neighboring order statistics.
func Percentile(sorted []float64, level float64) (float64, error) {
	if level < 0 || level > 1 {
		return 0, ErrInvalidLevel
	}
	if len(sorted) == 0 {
		return 0, ErrEmptySamples
	}

	n := len(sorted)
	candidate := float64(n) * level
	floored := math.Floor(candidate)

	if candidate == floored {
		k := int(floored)
		lo := k - 1
		if lo < 0 {
			lo = 0
		}
		hi := k
		if hi > n-1 {
			hi = n - 1
		}
		return (sorted[lo] + sorted[hi]) / 2.0, nil
	}

	idx := int(math.Min(math.Floor(candidate+1), float64(n))) - 1
	if idx < 0 {
		idx = 0
	}
	return sorted[idx], nil
}

func Median(sorted []float64) (float64, error) {
	return Percentile(sorted, 0.5)
}

func Quartiles(sorted []float64) (q1, q2, q3 float64, err error) {
	if q1, err = Percentile(sorted, 0.25); err != nil {
		return
	}
	if q2, err = Percentile(sorted, 0.5); err != nil {
		return
	}
	q3, err = Percentile(sorted, 0.75)
	return
}

// SortedCopy returns the samples sorted ascending without mutating the
// input, for feeding the order statistics above.
func SortedCopy(xs []float64) []float64 {
	c := make([]float64, len(xs))
	copy(c, xs)
	sort.Float64s(c)
	return c
}

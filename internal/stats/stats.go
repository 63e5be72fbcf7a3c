// Package stats provides descriptive statistics over float64 samples.
package stats

import (
	"errors"
	"math"
)

var (
	// ErrEmptySamples indicates a statistic was requested over no data.
	ErrEmptySamples = errors.New("stats: empty samples")

	// ErrInvalidLevel indicates a percentile level outside [0, 1].
	ErrInvalidLevel = errors.New("stats: percentile level outside [0, 1]")

	// ErrSampleMismatch indicates paired samples of unequal or
	// insufficient length.
	ErrSampleMismatch = errors.New("stats: paired samples need equal length of at least 2")
)

func Sum(xs []float64) (float64, error) {
	if len(xs) == 0 {
		return 0, ErrEmptySamples
	}
	sum := 0.0
	for _, x := range xs {
		sum += x
	}
	return sum, nil
}

// Mean is the arithmetic mean of the samples. It estimates the expected
// value of the distribution but is affected by outliers; use Median for a
// more robust center.
func Mean(xs []float64) (float64, error) {
	sum, err := Sum(xs)
	if err != nil {
		return 0, err
	}
	return sum / float64(len(xs)), nil
}

// Variance is the biased sample variance (division by n).
func Variance(xs []float64) (float64, error) {
	mean, err := Mean(xs)
	if err != nil {
		return 0, err
	}
	sumSq := 0.0
	for _, x := range xs {
		d := x - mean
		sumSq += d * d
	}
	return sumSq / float64(len(xs)), nil
}

// Covariance is the unbiased sample covariance of two paired samples,
// the mean error product divided by n-1. Both slices must have the same
// length and at least two elements.
func Covariance(xs, ys []float64) (float64, error) {
	if len(xs) != len(ys) || len(xs) <= 1 {
		return 0, ErrSampleMismatch
	}
	xMean, err := Mean(xs)
	if err != nil {
		return 0, err
	}
	yMean, err := Mean(ys)
	if err != nil {
		return 0, err
	}
	dot := 0.0
	for i := range xs {
		dot += (xs[i] - xMean) * (ys[i] - yMean)
	}
	return dot / float64(len(xs)-1), nil
}

func StdDev(xs []float64) (float64, error) {
	v, err := Variance(xs)
	if err != nil {
		return 0, err
	}
	return math.Sqrt(v), nil
}

func Min(xs []float64) (float64, error) {
	if len(xs) == 0 {
		return 0, ErrEmptySamples
	}
	m := xs[0]
	for _, x := range xs[1:] {
		if x < m {
			m = x
		}
	}
	return m, nil
}

func Max(xs []float64) (float64, error) {
	if len(xs) == 0 {
		return 0, ErrEmptySamples
	}
	m := xs[0]
	for _, x := range xs[1:] {
		if x > m {
			m = x
		}
	}
	return m, nil
}

// Package interp provides the small set of numerical helpers shared by the
// calculation packages: piecewise-linear table lookup in linear and log-log
// space, and evenly spaced node generation.
package interp

import (
	"fmt"
	"math"
)

// Linear evaluates a piecewise-linear curve defined by the sample points
// (xs[i], ys[i]) at x. The xs must be strictly increasing. Values of x outside
// the sampled range are clamped to the first or last y, matching the usual
// chart-reading convention.
func Linear(x float64, xs, ys []float64) (float64, error) {
	if len(xs) != len(ys) {
		return math.NaN(), fmt.Errorf("interp: %d x-values against %d y-values", len(xs), len(ys))
	}
	if len(xs) == 0 {
		return math.NaN(), fmt.Errorf("interp: empty table")
	}
	if math.IsNaN(x) {
		return math.NaN(), nil
	}
	if x <= xs[0] {
		return ys[0], nil
	}
	if x >= xs[len(xs)-1] {
		return ys[len(ys)-1], nil
	}
	for i := 1; i < len(xs); i++ {
		if x <= xs[i] {
			t := (x - xs[i-1]) / (xs[i] - xs[i-1])
			return ys[i-1] + t*(ys[i]-ys[i-1]), nil
		}
	}
	return ys[len(ys)-1], nil
}

// LogLog evaluates a curve that is linear in log10-log10 space at x. Both the
// xs and ys must be positive.
func LogLog(x float64, xs, ys []float64) (float64, error) {
	lxs := make([]float64, len(xs))
	for i, v := range xs {
		lxs[i] = math.Log10(v)
	}
	lys := make([]float64, len(ys))
	for i, v := range ys {
		lys[i] = math.Log10(v)
	}
	ly, err := Linear(math.Log10(x), lxs, lys)
	if err != nil {
		return math.NaN(), err
	}
	return math.Pow(10.0, ly), nil
}

// Linspace returns n evenly spaced values from start to stop inclusive.
// n must be at least 1; for n == 1 the single value is start.
func Linspace(start, stop float64, n int) []float64 {
	if n < 1 {
		return nil
	}
	out := make([]float64, n)
	if n == 1 {
		out[0] = start
		return out
	}
	step := (stop - start) / float64(n-1)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	out[n-1] = stop
	return out
}

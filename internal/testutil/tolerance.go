// Package testutil holds float assertions shared by the package tests.
package testutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

// RequireSliceNearlyEqual fails t if got and want differ in length or if
// any element pair exceeds eps (absolute tolerance). Matching infinities are
// treated as equal.
func RequireSliceNearlyEqual(t testing.TB, got, want []float64, eps float64) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range got {
		if got[i] == want[i] {
			continue
		}
		diff := math.Abs(got[i] - want[i])
		require.Truef(t, diff <= eps, "index %d: got %v, want %v (diff %v > eps %v)", i, got[i], want[i], diff, eps)
	}
}

// RequireRelNearlyEqual fails t if got differs from want by more than rel
// relative to |want|. A zero want falls back to an absolute comparison.
func RequireRelNearlyEqual(t testing.TB, got, want, rel float64) {
	t.Helper()
	if got == want {
		return
	}
	scale := math.Abs(want)
	if scale == 0 {
		scale = 1
	}
	d := math.Abs(got-want) / scale
	require.Truef(t, d <= rel, "got %v, want %v (relative diff %v > %v)", got, want, d, rel)
}

// RequireNonDecreasing fails t if data decreases anywhere.
func RequireNonDecreasing(t testing.TB, data []float64) {
	t.Helper()
	for i := 1; i < len(data); i++ {
		require.GreaterOrEqualf(t, data[i], data[i-1], "index %d decreases", i)
	}
}

// RequireFinite fails t if any element is NaN or Inf.
func RequireFinite(t testing.TB, data []float64) {
	t.Helper()
	for i, v := range data {
		require.Falsef(t, math.IsNaN(v) || math.IsInf(v, 0), "index %d: non-finite value %v", i, v)
	}
}

// LogSpaced returns n values spaced evenly in log10 between lo and hi.
func LogSpaced(lo, hi float64, n int) []float64 {
	out := make([]float64, n)
	if n == 1 {
		out[0] = lo
		return out
	}
	a, b := math.Log10(lo), math.Log10(hi)
	for i := range out {
		out[i] = math.Pow(10, a+(b-a)*float64(i)/float64(n-1))
	}
	return out
}

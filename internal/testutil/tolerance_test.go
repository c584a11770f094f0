package testutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequireSliceNearlyEqualInfinities(t *testing.T) {
	inf := math.Inf(1)
	RequireSliceNearlyEqual(t, []float64{1, inf}, []float64{1 + 1e-13, inf}, 1e-12)
}

func TestRequireRelNearlyEqual(t *testing.T) {
	RequireRelNearlyEqual(t, 1e6+1e-4, 1e6, 1e-9)
	RequireRelNearlyEqual(t, 0, 0, 1e-9)
}

func TestLogSpaced(t *testing.T) {
	got := LogSpaced(0.1, 10, 3)
	RequireSliceNearlyEqual(t, got, []float64{0.1, 1, 10}, 1e-12)
	RequireNonDecreasing(t, got)
	RequireFinite(t, got)

	assert.Equal(t, []float64{5}, LogSpaced(5, 50, 1))
}

package interp

import (
	"fmt"
	"sort"
)

// Bracket returns the index i of the first grid value strictly greater than
// x, clamped to [1, len(grid)-1] so that grid[i-1] and grid[i] always form an
// interval. Values below grid[1] map to the first interval and values at or
// above the last grid point map to the last one.
//
// grid must be strictly increasing with at least two points.
func Bracket(grid []float64, x float64) int {
	n := len(grid)
	i := sort.Search(n, func(k int) bool { return grid[k] > x })
	if i < 1 {
		i = 1
	}
	if i > n-1 {
		i = n - 1
	}
	return i
}

// Linear interpolates between (x0, y0) and (x1, y1) at x.
//
// The knots themselves are returned exactly, and equal ordinates return that
// ordinate unchanged, so infinite table entries do not turn into NaN.
func Linear(x0, x1, y0, y1, x float64) float64 {
	switch {
	case x == x0:
		return y0
	case x == x1:
		return y1
	case y0 == y1:
		return y0
	}
	return y0 + (y1-y0)/(x1-x0)*(x-x0)
}

// AcrossRows interpolates every row of table at column coordinate x, where
// grid holds the coordinate of each column. The result has one value per row.
func AcrossRows(table [][]float64, grid []float64, x float64) []float64 {
	out := make([]float64, len(table))
	if len(grid) < 2 {
		return out
	}

	i := Bracket(grid, x)
	for j, row := range table {
		out[j] = Linear(grid[i-1], grid[i], row[i-1], row[i], x)
	}
	return out
}

// StrictlyIncreasing reports whether xs is strictly increasing. It returns the
// index of the first offending element, or -1.
func StrictlyIncreasing(xs []float64) (int, bool) {
	for i := 1; i < len(xs); i++ {
		if !(xs[i] > xs[i-1]) {
			return i, false
		}
	}
	return -1, true
}

// Curve is a tabulated function y(x) evaluated by piecewise-linear
// interpolation. A Curve is immutable and safe for concurrent use.
type Curve struct {
	x []float64
	y []float64
}

// NewCurve builds a Curve from knots. The slices are copied.
func NewCurve(x, y []float64) (*Curve, error) {
	if len(x) != len(y) {
		return nil, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(x), len(y))
	}
	if len(x) < 2 {
		return nil, ErrTooFewPoints
	}
	if i, ok := StrictlyIncreasing(x); !ok {
		return nil, fmt.Errorf("%w: x[%d]=%v after %v", ErrNotIncreasing, i, x[i], x[i-1])
	}

	return &Curve{
		x: append([]float64(nil), x...),
		y: append([]float64(nil), y...),
	}, nil
}

// Len returns the number of knots.
func (c *Curve) Len() int { return len(c.x) }

// X returns the abscissa of knot i.
func (c *Curve) X(i int) float64 { return c.x[i] }

// Y returns the ordinate of knot i.
func (c *Curve) Y(i int) float64 { return c.y[i] }

// Min returns the first abscissa.
func (c *Curve) Min() float64 { return c.x[0] }

// Max returns the last abscissa.
func (c *Curve) Max() float64 { return c.x[len(c.x)-1] }

// Eval evaluates the curve at x, extrapolating outside [Min, Max].
func (c *Curve) Eval(x float64) float64 {
	i := Bracket(c.x, x)
	return Linear(c.x[i-1], c.x[i], c.y[i-1], c.y[i], x)
}

// EvalAll evaluates the curve at every element of xs, preserving order. An
// optional output slice can be supplied to avoid an allocation; it is used
// when its length matches xs.
func (c *Curve) EvalAll(xs []float64, out ...[]float64) []float64 {
	var dst []float64
	if len(out) > 0 && len(out[0]) == len(xs) {
		dst = out[0]
	} else {
		dst = make([]float64, len(xs))
	}
	for i, x := range xs {
		dst[i] = c.Eval(x)
	}
	return dst
}

// Xs returns a copy of the abscissae.
func (c *Curve) Xs() []float64 { return append([]float64(nil), c.x...) }

// Ys returns a copy of the ordinates.
func (c *Curve) Ys() []float64 { return append([]float64(nil), c.y...) }

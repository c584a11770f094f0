package spectrum

import (
	"fmt"
	"math"
	"strings"
)

// Shape selects the spectral model.
type Shape int

const (
	// PowerLaw is N * (E/E0)^a with parameters [N, a].
	PowerLaw Shape = iota

	// LogParabola is N * (E/E0)^(a - b*ln(E/E0)) with parameters [N, a, b].
	// The curvature term assumes a negative index a.
	LogParabola
)

// NumParams returns the number of parameters of the shape.
func (s Shape) NumParams() int {
	switch s {
	case PowerLaw:
		return 2
	case LogParabola:
		return 3
	default:
		return 0
	}
}

func (s Shape) String() string {
	switch s {
	case PowerLaw:
		return "PowerLaw"
	case LogParabola:
		return "LogParabola"
	default:
		return fmt.Sprintf("Shape(%d)", int(s))
	}
}

// ParseShape accepts "pl"/"powerlaw" and "logp"/"logparabola".
func ParseShape(s string) (Shape, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pl", "powerlaw", "power-law":
		return PowerLaw, nil
	case "logp", "lp", "logparabola", "log-parabola":
		return LogParabola, nil
	}
	return 0, fmt.Errorf("spectrum: unknown shape %q", s)
}

// eval returns the model flux at e.
func (s Shape) eval(p []float64, scale, e float64) float64 {
	x := e / scale
	switch s {
	case LogParabola:
		return p[0] * math.Pow(x, p[1]-p[2]*math.Log(x))
	default:
		return p[0] * math.Pow(x, p[1])
	}
}

// gradient writes d flux / d params at e into g.
//
// The index derivative carries sign(a), matching covariances reported for
// the photon index magnitude.
func (s Shape) gradient(g, p []float64, scale, e float64) {
	x := e / scale
	lx := math.Log(x)
	f := s.eval(p, scale, e)
	switch s {
	case LogParabola:
		g[0] = f / p[0]
		g[1] = f * lx * sign(p[1])
		g[2] = -f * lx * lx
	default:
		g[0] = math.Pow(x, p[1])
		g[1] = f * lx * sign(p[1])
	}
}

func sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

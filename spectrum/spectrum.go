package spectrum

import (
	"fmt"
	"math"
	"strings"

	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// TeVToErg converts an E^2 dN/dE in TeV units to erg.
const TeVToErg = 1.602

// DefaultPoints is the number of energies a Spectrum is evaluated at.
const DefaultPoints = 50

// Attenuator scales a flux at each energy. *ebl.Model satisfies it.
type Attenuator interface {
	AbsorbAll(flux, energies []float64) ([]float64, error)
}

// Option configures a Spectrum.
type Option func(*config)

type config struct {
	points      int
	shift       float64
	attenuation Attenuator
}

func defaultConfig() config {
	return config{
		points: DefaultPoints,
		shift:  1,
	}
}

// WithPoints sets the number of log-spaced energies. Values below 2 are
// ignored.
func WithPoints(n int) Option {
	return func(cfg *config) {
		if n >= 2 {
			cfg.points = n
		}
	}
}

// WithShift multiplies the plotted energies by factor, for checking the
// effect of an energy-scale offset. Non-positive values are ignored.
func WithShift(factor float64) Option {
	return func(cfg *config) {
		if factor > 0 {
			cfg.shift = factor
		}
	}
}

// WithAttenuation multiplies the best fit and its band by the attenuation of
// a at each evaluation energy.
func WithAttenuation(a Attenuator) Option {
	return func(cfg *config) {
		cfg.attenuation = a
	}
}

// Band is a curve with its one-sigma envelope, ready for plotting.
type Band struct {
	Energy []float64
	Value  []float64
	Upper  []float64
	Lower  []float64
}

// Spectrum holds a best-fit spectral model evaluated over an energy range.
// It is immutable after New.
type Spectrum struct {
	shape  Shape
	params []float64
	scale  float64
	cov    *mat.SymDense
	label  string
	shift  float64

	energy  []float64
	bestFit []float64
	delta   []float64
	upper   []float64
	lower   []float64
}

// New evaluates shape with params, normalized at scale, between emin and
// emax. cov is the parameter covariance matrix, len(params) x len(params).
func New(shape Shape, params []float64, scale float64, cov [][]float64, emin, emax float64, label string, opts ...Option) (*Spectrum, error) {
	n := shape.NumParams()
	if n == 0 {
		return nil, fmt.Errorf("spectrum: unknown shape %v", shape)
	}
	if len(params) != n {
		return nil, fmt.Errorf("%w: %s takes %d, got %d", ErrParameters, shape, n, len(params))
	}
	if !(scale > 0) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidScale, scale)
	}
	if !(emin > 0) || !(emax > emin) || math.IsInf(emax, 0) {
		return nil, fmt.Errorf("%w: [%v, %v]", ErrEnergyRange, emin, emax)
	}
	c, err := covariance(cov, n)
	if err != nil {
		return nil, err
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	s := &Spectrum{
		shape:  shape,
		params: append([]float64(nil), params...),
		scale:  scale,
		cov:    c,
		label:  label,
		shift:  cfg.shift,
		energy: floats.LogSpan(make([]float64, cfg.points), emin, emax),
	}
	s.evaluate()

	if cfg.attenuation != nil {
		if err := s.attenuate(cfg.attenuation); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func covariance(cov [][]float64, n int) (*mat.SymDense, error) {
	if len(cov) != n {
		return nil, fmt.Errorf("%w: %d rows, want %d", ErrCovariance, len(cov), n)
	}
	data := make([]float64, 0, n*n)
	for i, row := range cov {
		if len(row) != n {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrCovariance, i, len(row), n)
		}
		data = append(data, row...)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			a, b := cov[i][j], cov[j][i]
			if math.Abs(a-b) > 1e-9*math.Max(math.Abs(a), math.Abs(b)) {
				return nil, fmt.Errorf("%w: cov[%d][%d]=%v but cov[%d][%d]=%v", ErrCovariance, i, j, a, j, i, b)
			}
		}
	}
	return mat.NewSymDense(n, data), nil
}

func (s *Spectrum) evaluate() {
	n := len(s.energy)
	s.bestFit = make([]float64, n)
	s.delta = make([]float64, n)
	s.upper = make([]float64, n)
	s.lower = make([]float64, n)

	grad := make([]float64, len(s.params))
	g := mat.NewVecDense(len(grad), grad)
	for i, e := range s.energy {
		s.bestFit[i] = s.shape.eval(s.params, s.scale, e)
		s.shape.gradient(grad, s.params, s.scale, e)
		s.delta[i] = math.Sqrt(math.Max(mat.Inner(g, s.cov, g), 0))
	}
	floats.AddTo(s.upper, s.bestFit, s.delta)
	floats.SubTo(s.lower, s.bestFit, s.delta)
}

func (s *Spectrum) attenuate(a Attenuator) error {
	factors, err := a.AbsorbAll([]float64{1}, s.energy)
	if err != nil {
		return fmt.Errorf("spectrum: attenuation: %w", err)
	}
	if len(factors) != len(s.energy) {
		return fmt.Errorf("spectrum: attenuation returned %d values for %d energies", len(factors), len(s.energy))
	}
	for _, c := range [][]float64{s.bestFit, s.delta, s.upper, s.lower} {
		vecmath.MulBlockInPlace(c, factors)
	}
	return nil
}

// Shape returns the spectral shape.
func (s *Spectrum) Shape() Shape { return s.shape }

// Label returns the legend label.
func (s *Spectrum) Label() string { return s.label }

// Scale returns the normalization energy.
func (s *Spectrum) Scale() float64 { return s.scale }

// Energies returns a copy of the evaluation energies (unshifted).
func (s *Spectrum) Energies() []float64 { return clone(s.energy) }

// Delta returns a copy of the propagated one-sigma uncertainty.
func (s *Spectrum) Delta() []float64 { return clone(s.delta) }

// Eval returns the model flux at energy, without attenuation.
func (s *Spectrum) Eval(energy float64) float64 {
	return s.shape.eval(s.params, s.scale, energy)
}

// DNDE returns the differential spectrum and its band against the shifted
// energies.
func (s *Spectrum) DNDE() Band {
	e := clone(s.energy)
	floats.Scale(s.shift, e)
	return Band{
		Energy: e,
		Value:  clone(s.bestFit),
		Upper:  clone(s.upper),
		Lower:  clone(s.lower),
	}
}

// SED returns E^2 dN/dE in erg units, TeVToErg * (shift*E)^2 times each
// curve of DNDE.
func (s *Spectrum) SED() Band {
	b := s.DNDE()
	factor := make([]float64, len(b.Energy))
	for i, e := range b.Energy {
		factor[i] = TeVToErg * e * e
	}
	for _, c := range [][]float64{b.Value, b.Upper, b.Lower} {
		vecmath.MulBlockInPlace(c, factor)
	}
	return b
}

// ParameterValue is a best-fit parameter and its one-sigma error.
type ParameterValue struct {
	Value float64
	Sigma float64
}

// Parameters returns every parameter with the square root of its variance.
func (s *Spectrum) Parameters() []ParameterValue {
	out := make([]ParameterValue, len(s.params))
	for i, p := range s.params {
		out[i] = ParameterValue{Value: p, Sigma: math.Sqrt(s.cov.At(i, i))}
	}
	return out
}

// Parameter returns parameter index and its one-sigma error.
func (s *Spectrum) Parameter(index int) (value, sigma float64, err error) {
	if index < 0 || index >= len(s.params) {
		return 0, 0, fmt.Errorf("%w: %d (have %d)", ErrParameterIndex, index, len(s.params))
	}
	return s.params[index], math.Sqrt(s.cov.At(index, index)), nil
}

// Index returns the spectral index (parameter 1) and its error.
func (s *Spectrum) Index() (value, sigma float64) {
	return s.params[1], math.Sqrt(s.cov.At(1, 1))
}

// String lists the parameters as "value +/- sigma" lines.
func (s *Spectrum) String() string {
	var b strings.Builder
	for i, p := range s.Parameters() {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%.2e +/- %.2e", p.Value, p.Sigma)
	}
	return b.String()
}

func clone(x []float64) []float64 { return append([]float64(nil), x...) }

package ebl

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/cwbudde/algo-ebl/interp"
)

// Model is an EBL optical-depth model evaluated at a fixed source redshift.
type Model struct {
	meta     Metadata
	redshift float64
	tau      *interp.Curve // optical depth vs. energy at redshift

	logger          *slog.Logger
	maxHorizonSteps int
}

// New loads the table for id and interpolates it to redshift.
//
// The redshift is bracketed by the first grid point strictly above it and the
// one before; every energy row is interpolated linearly inside that bracket.
// Redshifts above the grid are extrapolated from the last interval and
// reported as a warning.
func New(redshift float64, id ModelID, opts ...Option) (*Model, error) {
	if !id.Valid() {
		return nil, fmt.Errorf("%w: %w: %d", ErrInvalidModel, ErrUnknownModel, int(id))
	}
	if math.IsNaN(redshift) || redshift < 0 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRedshift, redshift)
	}

	cfg := applyOptions(opts)

	meta, err := Lookup(id)
	if err != nil {
		return nil, err
	}
	table, err := LoadTable(cfg.tables, id)
	if err != nil {
		return nil, err
	}
	cfg.logger.Debug("ebl table loaded",
		"model", meta.Name, "file", meta.File,
		"energies", len(table.Energy), "redshifts", len(table.Redshift))

	return newModel(meta, table, redshift, cfg)
}

// NewFromTable builds a Model from an already loaded table. The table is
// validated; meta supplies the name and horizon seed.
func NewFromTable(meta Metadata, table Table, redshift float64, opts ...Option) (*Model, error) {
	if math.IsNaN(redshift) || redshift < 0 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRedshift, redshift)
	}
	if err := table.Validate(); err != nil {
		return nil, err
	}
	meta.Redshift = append([]float64(nil), table.Redshift...)
	return newModel(meta, table, redshift, applyOptions(opts))
}

func newModel(meta Metadata, table Table, redshift float64, cfg config) (*Model, error) {
	zmax := table.Redshift[len(table.Redshift)-1]
	if redshift > zmax {
		cfg.logger.Warn("redshift above model range, optical depths are an unreliable extrapolation",
			"model", meta.Name, "redshift", redshift,
			"min", table.Redshift[0], "max", zmax)
	}

	curve, err := interp.NewCurve(table.Energy, interp.AcrossRows(table.Tau, table.Redshift, redshift))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDataFormat, err)
	}

	return &Model{
		meta:            meta,
		redshift:        redshift,
		tau:             curve,
		logger:          cfg.logger,
		maxHorizonSteps: cfg.maxHorizonSteps,
	}, nil
}

// ID returns the model identifier.
func (m *Model) ID() ModelID { return m.meta.ID }

// Name returns the model's short name.
func (m *Model) Name() string { return m.meta.Name }

// Redshift returns the source redshift the model was built for.
func (m *Model) Redshift() float64 { return m.redshift }

// EnergyGrid returns a copy of the tabulated energies in TeV.
func (m *Model) EnergyGrid() []float64 { return m.tau.Xs() }

// RedshiftGrid returns a copy of the tabulated redshifts.
func (m *Model) RedshiftGrid() []float64 { return append([]float64(nil), m.meta.Redshift...) }

// TauCurve returns a copy of the optical depth at each energy grid point,
// interpolated to the model's redshift.
func (m *Model) TauCurve() []float64 { return m.tau.Ys() }

// Tau returns the optical depth for a photon of energy TeV.
//
// Energies above the table return +Inf and energies below it return 0; both
// are reported as warnings.
func (m *Model) Tau(energy float64) float64 {
	return m.tauAt(energy, true)
}

// TauAll evaluates Tau for every energy, preserving order.
func (m *Model) TauAll(energies []float64) []float64 {
	out := make([]float64, len(energies))
	for i, e := range energies {
		out[i] = m.tauAt(e, true)
	}
	return out
}

func (m *Model) tauAt(energy float64, warn bool) float64 {
	switch {
	case math.IsNaN(energy):
		return math.NaN()
	case energy > m.tau.Max():
		if warn {
			m.logger.Warn("energy above model range, optical depth set to +Inf",
				"model", m.meta.Name, "energy", energy, "max", m.tau.Max())
		}
		return math.Inf(1)
	case energy < m.tau.Min():
		if warn {
			m.logger.Warn("energy below model range, optical depth set to 0",
				"model", m.meta.Name, "energy", energy, "min", m.tau.Min())
		}
		return 0
	}
	return m.tau.Eval(energy)
}

// TauValue builds a model for id at redshift and returns its optical depth at
// energy. Use New when querying more than one energy.
func TauValue(id ModelID, energy, redshift float64, opts ...Option) (float64, error) {
	m, err := New(redshift, id, opts...)
	if err != nil {
		return 0, err
	}
	return m.Tau(energy), nil
}

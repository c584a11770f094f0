package ebl

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// Absorb returns the flux observed after EBL absorption of an intrinsic flux
// at energy TeV: flux * exp(-tau).
func (m *Model) Absorb(flux, energy float64) float64 {
	return flux * math.Exp(-m.Tau(energy))
}

// Deabsorb returns the intrinsic flux for an observed flux at energy TeV:
// flux * exp(+tau). It inverts Absorb.
func (m *Model) Deabsorb(flux, energy float64) float64 {
	return flux * math.Exp(m.Tau(energy))
}

// AbsorbAll applies Absorb elementwise. flux must have the same length as
// energies, or length one to apply a single flux to every energy.
func (m *Model) AbsorbAll(flux, energies []float64) ([]float64, error) {
	return m.attenuateAll(flux, energies, -1)
}

// DeabsorbAll applies Deabsorb elementwise, with the same shape rules as
// AbsorbAll.
func (m *Model) DeabsorbAll(flux, energies []float64) ([]float64, error) {
	return m.attenuateAll(flux, energies, 1)
}

// Transmission returns exp(-tau) at every energy.
func (m *Model) Transmission(energies []float64) []float64 {
	return m.factors(energies, -1)
}

func (m *Model) attenuateAll(flux, energies []float64, sign float64) ([]float64, error) {
	f, err := broadcast(flux, len(energies))
	if err != nil {
		return nil, err
	}

	out := make([]float64, len(energies))
	vecmath.MulBlock(out, f, m.factors(energies, sign))
	return out, nil
}

func (m *Model) factors(energies []float64, sign float64) []float64 {
	out := make([]float64, len(energies))
	for i, e := range energies {
		out[i] = math.Exp(sign * m.Tau(e))
	}
	return out
}

func broadcast(flux []float64, n int) ([]float64, error) {
	switch {
	case len(flux) == n:
		return flux, nil
	case len(flux) == 1:
		f := make([]float64, n)
		for i := range f {
			f[i] = flux[0]
		}
		return f, nil
	}
	return nil, fmt.Errorf("%w: %d flux values for %d energies", ErrShapeMismatch, len(flux), n)
}

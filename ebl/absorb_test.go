package ebl

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-ebl/internal/testutil"
)

func TestAbsorbDeabsorbRoundTrip(t *testing.T) {
	for _, z := range []float64{0.01, 0.05, 0.3, 1, 2} {
		m := mustNew(t, z, Franceschini2008)
		for _, e := range testutil.LogSpaced(0.02, 150, 120) {
			if m.Tau(e) > 300 {
				// exp(-tau) underflows long before float64 runs out.
				continue
			}
			for _, flux := range []float64{1e-12, 1, 3.7e4} {
				got := m.Deabsorb(m.Absorb(flux, e), e)
				testutil.RequireRelNearlyEqual(t, got, flux, 1e-9)
			}
		}
	}
}

func TestAbsorbMatchesExp(t *testing.T) {
	m := mustNew(t, 0.05, Franceschini2008)
	tau := m.Tau(1)
	assert.Equal(t, 2*math.Exp(-tau), m.Absorb(2, 1))
	assert.Equal(t, 2*math.Exp(tau), m.Deabsorb(2, 1))
	assert.Equal(t, 5.0, m.Absorb(5, 0.001), "below range")
}

func TestAbsorbAllElementwise(t *testing.T) {
	m := mustNew(t, 0.1, Franceschini2008)
	energies := []float64{0.5, 0.05, 5, 200}
	flux := []float64{1, 2, 3, 4}

	got, err := m.AbsorbAll(flux, energies)
	require.NoError(t, err)
	want := make([]float64, len(energies))
	for i := range energies {
		want[i] = m.Absorb(flux[i], energies[i])
	}
	testutil.RequireSliceNearlyEqual(t, got, want, 1e-15)
	assert.Zero(t, got[3], "flux above range")

	back, err := m.DeabsorbAll(got[:3], energies[:3])
	require.NoError(t, err)
	testutil.RequireSliceNearlyEqual(t, back, flux[:3], 1e-12)
}

func TestAbsorbAllBroadcastsScalarFlux(t *testing.T) {
	m := mustNew(t, 0.1, Franceschini2008)
	energies := []float64{0.1, 1, 10}
	got, err := m.AbsorbAll([]float64{2}, energies)
	require.NoError(t, err)
	for i, e := range energies {
		assert.Equal(t, m.Absorb(2, e), got[i], "index %d", i)
	}

	got, err = m.DeabsorbAll([]float64{2}, nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestAbsorbAllShapeMismatch(t *testing.T) {
	m := mustNew(t, 0.1, Franceschini2008)
	_, err := m.AbsorbAll([]float64{1, 2}, []float64{1, 2, 3})
	assert.ErrorIs(t, err, ErrShapeMismatch)
	_, err = m.DeabsorbAll(nil, []float64{1})
	assert.ErrorIs(t, err, ErrShapeMismatch)
}

func TestTransmission(t *testing.T) {
	m := mustNew(t, 0.2, Franceschini2008)
	tr := m.Transmission([]float64{0.001, 1, 1000})
	assert.Equal(t, 1.0, tr[0])
	assert.Zero(t, tr[2])
	assert.Greater(t, tr[1], 0.0)
	assert.Less(t, tr[1], 1.0)
}

package ebl

import (
	"fmt"
	"math"
)

// DefaultHorizonTolerance is the tolerance on tau=1 used by the reference
// horizon calculation.
const DefaultHorizonTolerance = 0.01

const (
	horizonStep    = 1.01
	horizonBackoff = 0.99
)

// HorizonEnergy returns the energy in TeV at which the optical depth reaches
// one for the model's redshift.
//
// The search starts at the model's seed energy and grows it by 1% while
// tau <= 1+tol, then returns the last candidate times 0.99, slightly below the
// crossing. It assumes tau is non-decreasing in energy. A candidate past the
// top of the grid counts as a crossing when tau at the last grid energy
// already exceeds 1+tol. ErrConvergence is returned when the table never
// crosses, when tau is undefined along the search, or when the step cap set
// with WithMaxHorizonSteps is reached.
func (m *Model) HorizonEnergy(tol float64) (float64, error) {
	if math.IsNaN(tol) || tol < 0 {
		return 0, fmt.Errorf("%w: %v", ErrInvalidTolerance, tol)
	}

	limit := 1 + tol
	emax := m.tau.Max()
	e := m.meta.HorizonSeed
	if e <= 0 {
		e = m.tau.Min()
	}

	for steps := 0; ; steps++ {
		tau := m.tauAt(e, false)
		if math.IsNaN(tau) {
			return 0, fmt.Errorf("%w: %s at z=%g: tau undefined at %.4g TeV",
				ErrConvergence, m.meta.Name, m.redshift, e)
		}
		if tau > limit {
			break
		}
		if steps >= m.maxHorizonSteps {
			return 0, fmt.Errorf("%w: %s at z=%g: no tau=%g crossing after %d steps (at %.4g TeV)",
				ErrConvergence, m.meta.Name, m.redshift, limit, steps, e)
		}
		e *= horizonStep
		if e > emax && m.tauAt(emax, false) <= limit {
			return 0, fmt.Errorf("%w: %s at z=%g: tau stays below %g up to %.4g TeV",
				ErrConvergence, m.meta.Name, m.redshift, limit, emax)
		}
	}
	return e * horizonBackoff, nil
}

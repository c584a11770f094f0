// Package ebl computes the attenuation of very-high-energy gamma-ray flux by
// pair production on the Extragalactic Background Light.
//
// Optical depths come from tabulated models published by several groups. Each
// table gives tau on a grid of photon energy (TeV) and source redshift. A
// [Model] interpolates its table linearly across redshift once, at
// construction, and then linearly across energy for every query:
//
//	m, err := ebl.New(0.05, ebl.Franceschini2008)
//	if err != nil {
//		return err
//	}
//	tau := m.Tau(1.0)                // optical depth at 1 TeV
//	observed := m.Absorb(phi0, 1.0)  // phi0 * exp(-tau)
//	horizon, err := m.HorizonEnergy(ebl.DefaultHorizonTolerance)
//
// # Tables
//
// The Franceschini 2008 table is embedded in the package. The other models
// are read from a caller-supplied [fs.FS] passed with [WithTables], using the
// file names reported by [Lookup]. Files are whitespace-separated columns:
// photon energy first, then one optical-depth column per redshift grid point.
//
// # Out-of-range queries
//
// Energies above the table map to +Inf, energies below it map to 0, and
// redshifts above the table are extrapolated from the last interval. None of
// these are errors; each is reported as a warning on the configured
// [log/slog] logger.
//
// # Concurrency
//
// A [Model] is immutable after [New] returns and can be queried from multiple
// goroutines without synchronization.
package ebl

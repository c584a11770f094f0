// Package spectrum overplots best-fit gamma-ray spectral models with their
// one-sigma uncertainty bands.
//
// A [Spectrum] is built from fit results supplied by the caller: the shape
// ([PowerLaw] or [LogParabola]), the best-fit parameters, the normalization
// energy and the parameter covariance matrix. It evaluates the model on a
// log-spaced energy grid and propagates the covariance to the flux,
//
//	delta(E) = sqrt(g(E)^T C g(E)),  g = d f / d params,
//
// giving upper and lower curves f+delta and f-delta. The curves can be
// attenuated by an [Attenuator] such as an *ebl.Model, converted to an SED,
// and drawn on a gonum [plot.Plot] with log-log axes.
//
// No fitting is performed here.
package spectrum

// Package interp provides the linear interpolation primitives used to evaluate
// tabulated optical-depth models.
//
// Available helpers:
//
//   - [Bracket]:    insertion-point search returning a valid interval index
//   - [Linear]:     2-point linear interpolation with exact knot values
//   - [AcrossRows]: interpolate every row of a 2-D table at one column coordinate
//   - [Curve]:      a tabulated 1-D function evaluated by linear interpolation
//
// None of the helpers apply a range policy: coordinates outside the grid are
// extrapolated from the first or last interval. Callers that need clamping or
// cutoffs implement them on top.
package interp

package spectrum

import "errors"

var (
	// ErrParameters indicates a parameter count that does not match the shape.
	ErrParameters = errors.New("spectrum: wrong number of parameters")

	// ErrCovariance indicates a covariance that is not a symmetric n x n matrix.
	ErrCovariance = errors.New("spectrum: covariance must be symmetric n x n")

	// ErrEnergyRange indicates a non-positive or inverted energy range.
	ErrEnergyRange = errors.New("spectrum: energy range must satisfy 0 < emin < emax")

	// ErrInvalidScale indicates a non-positive normalization energy.
	ErrInvalidScale = errors.New("spectrum: normalization energy must be > 0")

	// ErrParameterIndex indicates a parameter index outside the parameter list.
	ErrParameterIndex = errors.New("spectrum: parameter index out of range")
)

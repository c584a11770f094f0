package interp

import "errors"

var (
	// ErrTooFewPoints is returned when a grid has fewer than two points.
	ErrTooFewPoints = errors.New("interp: grid needs at least two points")

	// ErrNotIncreasing is returned when a grid is not strictly increasing.
	ErrNotIncreasing = errors.New("interp: grid must be strictly increasing")

	// ErrLengthMismatch is returned when abscissa and ordinate lengths differ.
	ErrLengthMismatch = errors.New("interp: x and y must have same length")
)

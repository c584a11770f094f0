package ebl

import "errors"

// Sentinel errors. Use errors.Is to check for them; returned errors add
// context by wrapping.
var (
	// ErrUnknownModel indicates a model identifier outside the registry.
	ErrUnknownModel = errors.New("ebl: unknown model")

	// ErrInvalidModel is returned by New for an unsupported model.
	// It always wraps ErrUnknownModel.
	ErrInvalidModel = errors.New("ebl: invalid model")

	// ErrInvalidRedshift indicates a negative or NaN source redshift.
	ErrInvalidRedshift = errors.New("ebl: invalid redshift")

	// ErrDataFormat indicates a table resource that does not match the
	// model's grid or does not parse.
	ErrDataFormat = errors.New("ebl: malformed table")

	// ErrShapeMismatch indicates flux and energy inputs of different length.
	ErrShapeMismatch = errors.New("ebl: flux and energy shapes differ")

	// ErrConvergence indicates the horizon search found no crossing of tau=1.
	ErrConvergence = errors.New("ebl: horizon search did not converge")

	// ErrInvalidTolerance indicates a negative or NaN horizon tolerance.
	ErrInvalidTolerance = errors.New("ebl: invalid tolerance")
)

package ecc

import "errors"

// Curve and point errors
var (
	// ErrInvalidCurve indicates a curve parameter set that is malformed or
	// outside the shape the engine supports
	ErrInvalidCurve = errors.New("ecc: invalid curve parameters")

	// ErrPointFormat indicates a point encoding with a bad length or prefix
	ErrPointFormat = errors.New("ecc: invalid point encoding")

	// ErrPointNotOnCurve indicates coordinates that fail the curve equation
	ErrPointNotOnCurve = errors.New("ecc: point not on curve")

	// ErrInvalidScalar indicates a scalar outside the usable range
	ErrInvalidScalar = errors.New("ecc: scalar out of range")
)

// Randomness errors
var (
	// ErrRandomUnavailable indicates that no random source was supplied
	ErrRandomUnavailable = errors.New("ecc: random source unavailable")

	// ErrRetryLimit indicates that scalar generation kept producing values
	// rejected by the signing equations, which points at a broken source
	ErrRetryLimit = errors.New("ecc: retry limit exceeded")
)

package csc

import "errors"

// Sentinel errors returned by the engine. Callers match them with errors.Is;
// context such as the offending coordinate is attached with %w wrapping.
var (
	// ErrOutOfBounds is returned when a coordinate lies outside the declared
	// dimensions of a Triplet or Matrix.
	ErrOutOfBounds = errors.New("csc: index out of bounds")

	// ErrDimensionMismatch is returned when operand shapes are incompatible.
	// It is detected before any allocation.
	ErrDimensionMismatch = errors.New("csc: dimension mismatch")

	// ErrInvalidStructure is returned by Validate, and by read operations when
	// debug checking is enabled, for arrays that break the CSC invariants.
	ErrInvalidStructure = errors.New("csc: invalid structure")

	// ErrScalarPromotion is returned when a complex matrix is applied to real
	// vectors; the imaginary part would be lost.
	ErrScalarPromotion = errors.New("csc: complex matrix cannot act on real vectors")
)

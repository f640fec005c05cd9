package generators

import "errors"

var (
	// ErrInvalidSize is returned for a non-positive matrix size.
	ErrInvalidSize = errors.New("generators: size must be > 0")

	// ErrInvalidDensity is returned for a density outside (0, 1].
	ErrInvalidDensity = errors.New("generators: density must be in (0, 1]")
)

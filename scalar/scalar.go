// Package scalar defines the element types the sparse engine is generic over,
// real and complex, along with the few operations the engine needs on them.
package scalar

import (
	"math"
	"math/cmplx"
)

// Scalar is the element type of a matrix or vector. The set is closed (no ~)
// so that type switches over any(v) are exhaustive.
type Scalar interface {
	float32 | float64 | complex64 | complex128
}

// IsComplex reports whether T is a complex kind.
func IsComplex[T Scalar]() bool {
	var z T
	switch any(z).(type) {
	case complex64, complex128:
		return true
	}
	return false
}

// Conj returns the complex conjugate of v, or v unchanged for real kinds.
func Conj[T Scalar](v T) T {
	switch p := any(&v).(type) {
	case *complex128:
		*p = cmplx.Conj(*p)
	case *complex64:
		*p = complex64(cmplx.Conj(complex128(*p)))
	}
	return v
}

// Abs returns the magnitude of v.
func Abs[T Scalar](v T) float64 {
	switch x := any(v).(type) {
	case float64:
		return math.Abs(x)
	case float32:
		return math.Abs(float64(x))
	case complex128:
		return cmplx.Abs(x)
	case complex64:
		return cmplx.Abs(complex128(x))
	}
	return 0
}

// Real returns the real part of v.
func Real[T Scalar](v T) float64 {
	return real(ToComplex128(v))
}

// Imag returns the imaginary part of v, zero for real kinds.
func Imag[T Scalar](v T) float64 {
	return imag(ToComplex128(v))
}

// ToComplex128 widens any scalar to complex128.
func ToComplex128[T Scalar](v T) complex128 {
	switch x := any(v).(type) {
	case float64:
		return complex(x, 0)
	case float32:
		return complex(float64(x), 0)
	case complex128:
		return x
	case complex64:
		return complex128(x)
	}
	return 0
}

// FromFloat converts a real value to T.
func FromFloat[T Scalar](f float64) T {
	return FromComplex[T](complex(f, 0))
}

// FromComplex converts c to T, discarding the imaginary part for real kinds.
func FromComplex[T Scalar](c complex128) (v T) {
	switch p := any(&v).(type) {
	case *float64:
		*p = real(c)
	case *float32:
		*p = float32(real(c))
	case *complex128:
		*p = c
	case *complex64:
		*p = complex64(c)
	}
	return
}

// CanPromote reports whether every value of T is representable in V without
// losing an imaginary part. Real to complex is allowed, complex to real is not.
func CanPromote[T, V Scalar]() bool {
	return !IsComplex[T]() || IsComplex[V]()
}

// Promote converts a T into a V. Callers must check CanPromote first; a complex
// value promoted into a real kind keeps only its real part.
func Promote[V, T Scalar](v T) V {
	if same, ok := any(v).(V); ok {
		return same
	}
	return FromComplex[V](ToComplex128(v))
}

// PromoteSlice converts src into a []V. When T and V are the same type the
// source slice is returned without copying.
func PromoteSlice[V, T Scalar](src []T) []V {
	if same, ok := any(src).([]V); ok {
		return same
	}
	dst := make([]V, len(src))
	for i, v := range src {
		dst[i] = FromComplex[V](ToComplex128(v))
	}
	return dst
}

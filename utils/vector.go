package utils

import (
	"math"

	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/floats"

	"github.com/notargets/gocsc/scalar"
)

// Dense vector kernels used by the sparse engine and its callers. Slices of
// float64 are routed through blas64 so a netlib backend, when linked, accelerates them.

func asBlas(x []float64) blas64.Vector {
	return blas64.Vector{N: len(x), Data: x, Inc: 1}
}

func ConstArray[T scalar.Scalar](N int, val T) (v []T) {
	v = make([]T, N)
	for i := range v {
		v[i] = val
	}
	return
}

func Clone[T scalar.Scalar](x []T) (y []T) {
	if x == nil {
		return
	}
	y = make([]T, len(x))
	copy(y, x)
	return
}

// Norm2 returns the Euclidean norm of x.
func Norm2[T scalar.Scalar](x []T) float64 {
	if len(x) == 0 {
		return 0
	}
	if xf, ok := any(x).([]float64); ok {
		return blas64.Nrm2(asBlas(xf))
	}
	// scaled sum of squares to avoid overflow, as in dnrm2
	var scale, ssq float64 = 0, 1
	for _, v := range x {
		for _, part := range [2]float64{scalar.Real(v), scalar.Imag(v)} {
			if part == 0 {
				continue
			}
			a := math.Abs(part)
			if scale < a {
				ssq = 1 + ssq*(scale/a)*(scale/a)
				scale = a
			} else {
				ssq += (a / scale) * (a / scale)
			}
		}
	}
	return scale * math.Sqrt(ssq)
}

// NormInf returns the largest element magnitude of x.
func NormInf[T scalar.Scalar](x []T) (norm float64) {
	for _, v := range x {
		norm = math.Max(norm, scalar.Abs(v))
	}
	return
}

// Axpy computes y += alpha*x in place.
func Axpy[T scalar.Scalar](alpha T, x, y []T) {
	if len(x) != len(y) {
		panic("Axpy: dimension mismatch")
	}
	if xf, ok := any(x).([]float64); ok {
		if len(xf) > 0 {
			blas64.Axpy(any(alpha).(float64), asBlas(xf), asBlas(any(y).([]float64)))
		}
		return
	}
	for i, v := range x {
		y[i] += alpha * v
	}
}

// ScaleVec computes x *= alpha in place. alpha == 0 clears x, so that NaN or
// Inf already in x does not survive a clear.
func ScaleVec[T scalar.Scalar](alpha T, x []T) {
	var zero, one T
	one = scalar.FromFloat[T](1)
	switch alpha {
	case one:
		return
	case zero:
		clear(x)
		return
	}
	if xf, ok := any(x).([]float64); ok {
		if len(xf) > 0 {
			blas64.Scal(any(alpha).(float64), asBlas(xf))
		}
		return
	}
	for i := range x {
		x[i] *= alpha
	}
}

// Dot returns sum(conj(x[i]) * y[i]).
func Dot[T scalar.Scalar](x, y []T) (d T) {
	if len(x) != len(y) {
		panic("Dot: dimension mismatch")
	}
	if xf, ok := any(x).([]float64); ok {
		return any(floats.Dot(xf, any(y).([]float64))).(T)
	}
	for i, v := range x {
		d += scalar.Conj(v) * y[i]
	}
	return
}

// MaxAbsDiff returns max|x[i]-y[i]|, used to compare vectors within a tolerance.
func MaxAbsDiff[T scalar.Scalar](x, y []T) (diff float64) {
	if len(x) != len(y) {
		return math.Inf(1)
	}
	for i := range x {
		diff = math.Max(diff, scalar.Abs(x[i]-y[i]))
	}
	return
}

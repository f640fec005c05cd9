// Package generators builds structured test matrices directly in CSC form:
// discrete Laplacians with known spectra, Kronecker sums of 1-D operators and
// seeded random sparse and Hermitian matrices.
package generators

import (
	"fmt"
	"math"
	"sort"

	"github.com/notargets/gocsc/csc"
	"github.com/notargets/gocsc/scalar"
	"github.com/notargets/gocsc/utils"
)

// Identity returns the n x n identity.
func Identity[T scalar.Scalar](n int) *csc.Matrix[T] {
	return Diagonal(utils.ConstArray[T](n, 1))
}

// Diagonal returns the square matrix with d on its diagonal. Zero entries of
// d are stored explicitly.
func Diagonal[T scalar.Scalar](d []T) *csc.Matrix[T] {
	var (
		n      = len(d)
		colPtr = make([]int, n+1)
		rowInd = make([]int, n)
		values = make([]T, n)
	)
	for j := 0; j < n; j++ {
		colPtr[j+1] = j + 1
		rowInd[j] = j
		values[j] = d[j]
	}
	m, err := csc.NewMatrix(n, n, colPtr, rowInd, values)
	if err != nil {
		panic(err)
	}
	return m
}

// Laplacian1D returns the n x n second difference matrix, 2 on the diagonal
// and -1 on both off-diagonals. The pattern is known, so the arrays are
// written directly.
func Laplacian1D[T scalar.Scalar](n int) (*csc.Matrix[T], error) {
	if n < 1 {
		return nil, fmt.Errorf("laplacian of size %d: %w", n, ErrInvalidSize)
	}
	if n == 1 {
		return csc.NewMatrix(1, 1, []int{0, 1}, []int{0}, []T{2})
	}
	var (
		nnz    = 3*n - 2
		colPtr = make([]int, n+1)
		rowInd = make([]int, 0, nnz)
		values = make([]T, 0, nnz)
	)
	for j := 0; j < n; j++ {
		if j > 0 {
			rowInd = append(rowInd, j-1)
			values = append(values, -1)
		}
		rowInd = append(rowInd, j)
		values = append(values, 2)
		if j < n-1 {
			rowInd = append(rowInd, j+1)
			values = append(values, -1)
		}
		colPtr[j+1] = len(rowInd)
	}
	return csc.NewMatrix(n, n, colPtr, rowInd, values)
}

// Laplacian1DEigenvalues returns the eigenvalues of Laplacian1D(n) in
// ascending order: 4·sin²((k+1)π / (2(n+1))) for k = 0..n-1.
func Laplacian1DEigenvalues(n int) (ev []float64) {
	ev = make([]float64, n)
	for k := range ev {
		s := math.Sin(float64(k+1) * math.Pi / float64(2*(n+1)))
		ev[k] = 4 * s * s
	}
	return
}

// Laplacian2D returns the five point Laplacian on an nx by ny grid with x
// varying fastest, assembled as kron(I_ny, Dx) + kron(Dy, I_nx).
func Laplacian2D[T scalar.Scalar](nx, ny int) (*csc.Matrix[T], error) {
	dx, err := Laplacian1D[T](nx)
	if err != nil {
		return nil, err
	}
	dy, err := Laplacian1D[T](ny)
	if err != nil {
		return nil, err
	}
	return KroneckerSum(dx, dy)
}

// Laplacian2DEigenvalues returns the sorted pairwise sums of the nx and ny
// one dimensional spectra.
func Laplacian2DEigenvalues(nx, ny int) (ev []float64) {
	var (
		ex = Laplacian1DEigenvalues(nx)
		ey = Laplacian1DEigenvalues(ny)
	)
	ev = make([]float64, 0, nx*ny)
	for _, y := range ey {
		for _, x := range ex {
			ev = append(ev, x+y)
		}
	}
	sort.Float64s(ev)
	return
}

// KroneckerSum returns kron(I_nb, a) + kron(b, I_na) for square a (na x na)
// and b (nb x nb): a acts along the fast index and b along the slow one.
// This assembles separable operators without forming dense intermediates.
func KroneckerSum[T scalar.Scalar](a, b *csc.Matrix[T]) (*csc.Matrix[T], error) {
	na, ca := a.Dims()
	nb, cb := b.Dims()
	if na != ca || nb != cb {
		return nil, fmt.Errorf("kronecker sum of %dx%d and %dx%d: %w", na, ca, nb, cb, csc.ErrDimensionMismatch)
	}
	return csc.Kronecker(Identity[T](nb), a).Add(csc.Kronecker(b, Identity[T](na)))
}

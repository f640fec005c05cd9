package csc

import (
	"fmt"

	"github.com/notargets/gocsc/scalar"
	"github.com/notargets/gocsc/utils"
)

// MulVec computes y = alpha*A*x + beta*y.
//
// The vector element type V may differ from the matrix element type T as long
// as T promotes into V, e.g. a real matrix acting on complex vectors; the
// matrix values are promoted once per call, the storage is never converted.
// beta == 0 clears y before accumulation and beta == 1 accumulates into it.
func MulVec[T, V scalar.Scalar](a *Matrix[T], alpha V, x []V, beta V, y []V) error {
	if err := checkMulVec[T, V](a, false, len(x), len(y)); err != nil {
		return err
	}
	utils.ScaleVec(beta, y)
	vals := scalar.PromoteSlice[V](a.values[:a.NNZ()])
	mulVecCols(a, vals, alpha, x, y, 0, a.cols)
	return nil
}

// MulTransVec computes y = alpha*Aᵗ*x + beta*y without forming Aᵗ. Element
// types follow the rules of MulVec.
func MulTransVec[T, V scalar.Scalar](a *Matrix[T], alpha V, x []V, beta V, y []V) error {
	if err := checkMulVec[T, V](a, true, len(x), len(y)); err != nil {
		return err
	}
	vals := scalar.PromoteSlice[V](a.values[:a.NNZ()])
	mulTransVecCols(a, vals, alpha, x, beta, y, 0, a.cols)
	return nil
}

// MulVec is the same-type form of the package function MulVec.
func (m *Matrix[T]) MulVec(alpha T, x []T, beta T, y []T) error {
	return MulVec(m, alpha, x, beta, y)
}

// MulTransVec is the same-type form of the package function MulTransVec.
func (m *Matrix[T]) MulTransVec(alpha T, x []T, beta T, y []T) error {
	return MulTransVec(m, alpha, x, beta, y)
}

// MulVecParallel computes y = alpha*op(A)*x + beta*y, op(A) = Aᵗ when trans is
// set, splitting the columns of A across nWorkers goroutines (nWorkers < 1
// selects GOMAXPROCS). In the transposed case each worker owns a disjoint
// range of y; otherwise each worker accumulates into a private buffer and the
// buffers are summed into y in worker order, so results agree with MulVec to
// rounding.
func MulVecParallel[T, V scalar.Scalar](a *Matrix[T], trans bool, alpha V, x []V, beta V, y []V, nWorkers int) error {
	if err := checkMulVec[T, V](a, trans, len(x), len(y)); err != nil {
		return err
	}
	var (
		vals = scalar.PromoteSlice[V](a.values[:a.NNZ()])
		pm   = utils.NewPartitionMap(nWorkers, a.cols)
	)
	if trans {
		pm.Run(func(_, jMin, jMax int) {
			mulTransVecCols(a, vals, alpha, x, beta, y, jMin, jMax)
		})
		return nil
	}
	partial := make([][]V, pm.ParallelDegree)
	pm.Run(func(bn, jMin, jMax int) {
		partial[bn] = make([]V, a.rows)
		mulVecCols(a, vals, alpha, x, partial[bn], jMin, jMax)
	})
	utils.ScaleVec(beta, y)
	var one V = 1
	for _, buf := range partial {
		if buf != nil {
			utils.Axpy(one, buf, y)
		}
	}
	return nil
}

func checkMulVec[T, V scalar.Scalar](a *Matrix[T], trans bool, nx, ny int) error {
	if !scalar.CanPromote[T, V]() {
		return ErrScalarPromotion
	}
	wantX, wantY := a.cols, a.rows
	if trans {
		wantX, wantY = a.rows, a.cols
	}
	if nx != wantX || ny != wantY {
		return fmt.Errorf("multiply %dx%d (trans = %v) with len(x) = %d, len(y) = %d: %w",
			a.rows, a.cols, trans, nx, ny, ErrDimensionMismatch)
	}
	return checkDebug(a)
}

// mulVecCols accumulates alpha*A[:, jMin:jMax]*x[jMin:jMax] into y.
func mulVecCols[T, V scalar.Scalar](a *Matrix[T], vals []V, alpha V, x, y []V, jMin, jMax int) {
	for j := jMin; j < jMax; j++ {
		ax := alpha * x[j]
		for p := a.colPtr[j]; p < a.colPtr[j+1]; p++ {
			y[a.rowInd[p]] += vals[p] * ax
		}
	}
}

// mulTransVecCols sets y[j] = alpha*dot(A[:, j], x) + beta*y[j] for j in [jMin, jMax).
func mulTransVecCols[T, V scalar.Scalar](a *Matrix[T], vals []V, alpha V, x []V, beta V, y []V, jMin, jMax int) {
	var zero V
	for j := jMin; j < jMax; j++ {
		var sum V
		for p := a.colPtr[j]; p < a.colPtr[j+1]; p++ {
			sum += vals[p] * x[a.rowInd[p]]
		}
		if beta == zero {
			y[j] = alpha * sum
		} else {
			y[j] = alpha*sum + beta*y[j]
		}
	}
}

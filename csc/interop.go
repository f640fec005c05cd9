package csc

import (
	"fmt"
	"slices"

	"github.com/notargets/gocsc/scalar"
)

// WithOffset returns copies of the pointer and index arrays with offset added
// to every element. offset 1 gives the Fortran-style arrays expected by some
// native solvers.
func (m *Matrix[T]) WithOffset(offset int) (colPtr, rowInd []int) {
	colPtr = shift(m.colPtr, offset)
	rowInd = shift(m.rowInd[:m.NNZ()], offset)
	return
}

// FromOffset builds a matrix from arrays whose pointers and indices start at
// offset. The input arrays are copied; values are adopted.
func FromOffset[T scalar.Scalar](rows, cols, offset int, colPtr, rowInd []int, values []T) (*Matrix[T], error) {
	return NewMatrix(rows, cols, shift(colPtr, -offset), shift(rowInd, -offset), values)
}

func shift(in []int, offset int) (out []int) {
	out = make([]int, len(in))
	for i, v := range in {
		out[i] = v + offset
	}
	return
}

// CSRMatrix is the compressed sparse row form of a matrix: row i occupies
// colInd[rowPtr[i]:rowPtr[i+1]] with strictly ascending column indices.
type CSRMatrix[T scalar.Scalar] struct {
	rows, cols int
	rowPtr     []int
	colInd     []int
	values     []T
}

// CSR returns the row-compressed form of m. The CSR arrays of m are the CSC
// arrays of mᵗ, so this is a transpose with the dimensions relabelled.
func (m *Matrix[T]) CSR() *CSRMatrix[T] {
	t := m.Transpose()
	return &CSRMatrix[T]{
		rows:   m.rows,
		cols:   m.cols,
		rowPtr: t.colPtr,
		colInd: t.rowInd,
		values: t.values,
	}
}

// NewCSRMatrix adopts row-compressed arrays without copying.
func NewCSRMatrix[T scalar.Scalar](rows, cols int, rowPtr, colInd []int, values []T) (*CSRMatrix[T], error) {
	// the arrays are the CSC arrays of the cols x rows transpose
	t, err := NewMatrix(cols, rows, rowPtr, colInd, values)
	if err != nil {
		return nil, err
	}
	return &CSRMatrix[T]{rows: rows, cols: cols, rowPtr: t.colPtr, colInd: t.rowInd, values: t.values}, nil
}

func (r *CSRMatrix[T]) Dims() (rows, cols int) { return r.rows, r.cols }
func (r *CSRMatrix[T]) NNZ() int               { return r.rowPtr[r.rows] }
func (r *CSRMatrix[T]) RowPtr() []int          { return r.rowPtr }
func (r *CSRMatrix[T]) ColInd() []int          { return r.colInd }
func (r *CSRMatrix[T]) Values() []T            { return r.values }

// Row returns views of the column indices and values stored in row i.
func (r *CSRMatrix[T]) Row(i int) (cols []int, values []T) {
	if i < 0 || i >= r.rows {
		panic(fmt.Errorf("row %d of %d: %w", i, r.rows, ErrOutOfBounds))
	}
	lo, hi := r.rowPtr[i], r.rowPtr[i+1]
	return r.colInd[lo:hi], r.values[lo:hi]
}

// WithOffset is the CSR counterpart of Matrix.WithOffset.
func (r *CSRMatrix[T]) WithOffset(offset int) (rowPtr, colInd []int) {
	return shift(r.rowPtr, offset), shift(r.colInd[:r.NNZ()], offset)
}

// ToCSC converts back to column-compressed form.
func (r *CSRMatrix[T]) ToCSC() *Matrix[T] {
	t := &Matrix[T]{
		rows:   r.cols,
		cols:   r.rows,
		colPtr: r.rowPtr,
		rowInd: r.colInd,
		values: r.values,
	}
	return t.Transpose()
}

// Clone returns a deep copy of r.
func (r *CSRMatrix[T]) Clone() *CSRMatrix[T] {
	return &CSRMatrix[T]{
		rows:   r.rows,
		cols:   r.cols,
		rowPtr: slices.Clone(r.rowPtr),
		colInd: slices.Clone(r.colInd[:r.NNZ()]),
		values: slices.Clone(r.values[:r.NNZ()]),
	}
}

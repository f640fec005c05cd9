package csc

import (
	"slices"

	"github.com/notargets/gocsc/scalar"
)

// Transpose returns a new matrix holding mᵗ.
func (m *Matrix[T]) Transpose() *Matrix[T] {
	mustDebug(m)
	return m.transposeMap(nil)
}

// ConjTranspose returns a new matrix holding the conjugate transpose mᴴ.
// For real element types it equals Transpose.
func (m *Matrix[T]) ConjTranspose() *Matrix[T] {
	mustDebug(m)
	if !scalar.IsComplex[T]() {
		return m.transposeMap(nil)
	}
	return m.transposeMap(scalar.Conj[T])
}

// transposeMap counts row occurrences into the column pointers of the result,
// then scatters (col, value) pairs with a per-target-column cursor. Columns of
// m are visited in ascending order, so every output column receives its row
// indices already sorted.
func (m *Matrix[T]) transposeMap(fn func(T) T) *Matrix[T] {
	var (
		nnz    = m.NNZ()
		colPtr = make([]int, m.rows+1)
	)
	for _, i := range m.rowInd[:nnz] {
		colPtr[i+1]++
	}
	CumulativeSum(colPtr)
	var (
		rowInd = make([]int, nnz)
		values = make([]T, nnz)
		cursor = slices.Clone(colPtr[:m.rows])
	)
	for j := 0; j < m.cols; j++ {
		for p := m.colPtr[j]; p < m.colPtr[j+1]; p++ {
			i := m.rowInd[p]
			q := cursor[i]
			rowInd[q] = j
			if fn != nil {
				values[q] = fn(m.values[p])
			} else {
				values[q] = m.values[p]
			}
			cursor[i]++
		}
	}
	return &Matrix[T]{
		rows:   m.cols,
		cols:   m.rows,
		colPtr: colPtr,
		rowInd: rowInd,
		values: values,
	}
}

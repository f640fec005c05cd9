package csc

import "github.com/notargets/gocsc/scalar"

// Keep returns a new matrix holding only the entries for which pred is true.
// Filtering a sorted column leaves it sorted.
func (m *Matrix[T]) Keep(pred func(i, j int, v T) bool) *Matrix[T] {
	colPtr, rowInd, values := m.filter(pred)
	return &Matrix[T]{rows: m.rows, cols: m.cols, colPtr: colPtr, rowInd: rowInd, values: values}
}

// KeepInPlace filters m itself. New arrays are built first and then swapped
// in together, so slices previously obtained from m are left untouched.
func (m *Matrix[T]) KeepInPlace(pred func(i, j int, v T) bool) {
	m.colPtr, m.rowInd, m.values = m.filter(pred)
}

func (m *Matrix[T]) filter(pred func(i, j int, v T) bool) (colPtr, rowInd []int, values []T) {
	colPtr = make([]int, m.cols+1)
	rowInd = make([]int, 0, m.NNZ())
	values = make([]T, 0, m.NNZ())
	for j := 0; j < m.cols; j++ {
		for p := m.colPtr[j]; p < m.colPtr[j+1]; p++ {
			if i, v := m.rowInd[p], m.values[p]; pred(i, j, v) {
				rowInd = append(rowInd, i)
				values = append(values, v)
			}
		}
		colPtr[j+1] = len(rowInd)
	}
	return
}

// Lower returns the lower triangle of m, the diagonal included when
// includeDiag is set. Symmetric solvers commonly store only one triangle.
func (m *Matrix[T]) Lower(includeDiag bool) *Matrix[T] {
	return m.Keep(func(i, j int, _ T) bool { return i > j || (includeDiag && i == j) })
}

// Upper returns the upper triangle of m, the diagonal included when
// includeDiag is set.
func (m *Matrix[T]) Upper(includeDiag bool) *Matrix[T] {
	return m.Keep(func(i, j int, _ T) bool { return i < j || (includeDiag && i == j) })
}

// keepNonZero is the predicate behind DropZeros.
func keepNonZero[T scalar.Scalar](_, _ int, v T) bool {
	var zero T
	return v != zero
}

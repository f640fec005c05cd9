// Package csc implements a compressed sparse column matrix engine generic over
// real and complex element types.
//
// A Matrix stores three flat arrays: colPtr (length cols+1), rowInd and values
// (length nnz). Column j occupies rowInd[colPtr[j]:colPtr[j+1]] with strictly
// ascending row indices. Matrices are assembled through a Triplet and Convert,
// or adopted directly from arrays with NewMatrix. Every operation that returns
// a matrix allocates fresh arrays; only KeepInPlace replaces a receiver's
// arrays, and it does so by swapping in new slices.
package csc

import (
	"fmt"
	"slices"
	"sort"

	"github.com/notargets/gocsc/scalar"
)

type Matrix[T scalar.Scalar] struct {
	rows, cols int
	colPtr     []int
	rowInd     []int
	values     []T
}

// NewMatrix adopts the given arrays without copying. Array lengths are always
// checked; the ordering invariants are checked only in debug mode (see
// SetDebug) or by an explicit call to Validate.
func NewMatrix[T scalar.Scalar](rows, cols int, colPtr, rowInd []int, values []T) (*Matrix[T], error) {
	if rows < 0 || cols < 0 {
		panic(fmt.Sprintf("csc: negative dimension %dx%d", rows, cols))
	}
	m := &Matrix[T]{rows: rows, cols: cols, colPtr: colPtr, rowInd: rowInd, values: values}
	if err := m.checkLengths(); err != nil {
		return nil, err
	}
	if Debug() {
		if err := m.Validate(); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Zeros returns a rows x cols matrix with no stored entries.
func Zeros[T scalar.Scalar](rows, cols int) *Matrix[T] {
	if rows < 0 || cols < 0 {
		panic(fmt.Sprintf("csc: negative dimension %dx%d", rows, cols))
	}
	return &Matrix[T]{
		rows:   rows,
		cols:   cols,
		colPtr: make([]int, cols+1),
		rowInd: []int{},
		values: []T{},
	}
}

func (m *Matrix[T]) Dims() (r, c int) { return m.rows, m.cols }

// NNZ returns the number of stored entries, explicit zeros included.
func (m *Matrix[T]) NNZ() int { return m.colPtr[m.cols] }

// ColPtr, RowInd and Values expose the backing arrays. They are shared with
// the matrix and must not be modified. RowInd and Values are cut to exactly
// nnz elements, capacity included, even when the adopted arrays were longer.
func (m *Matrix[T]) ColPtr() []int { return m.colPtr }
func (m *Matrix[T]) RowInd() []int { nnz := m.NNZ(); return m.rowInd[:nnz:nnz] }
func (m *Matrix[T]) Values() []T   { nnz := m.NNZ(); return m.values[:nnz:nnz] }

// RawArrays hands the backing arrays to a collaborator that consumes the
// zero-based (colPtr, rowInd, values, rows, cols) calling convention.
func (m *Matrix[T]) RawArrays() (colPtr, rowInd []int, values []T, rows, cols int) {
	return m.colPtr, m.RowInd(), m.Values(), m.rows, m.cols
}

// Column returns views of the row indices and values stored in column j.
func (m *Matrix[T]) Column(j int) (rows []int, values []T) {
	if j < 0 || j >= m.cols {
		panic(fmt.Errorf("column %d of %d: %w", j, m.cols, ErrOutOfBounds))
	}
	lo, hi := m.colPtr[j], m.colPtr[j+1]
	return m.rowInd[lo:hi], m.values[lo:hi]
}

// At returns element (i, j), zero when no entry is stored. It uses a binary
// search of the column and so relies on sorted row indices.
func (m *Matrix[T]) At(i, j int) T {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		panic(fmt.Errorf("at (%d, %d) of %dx%d: %w", i, j, m.rows, m.cols, ErrOutOfBounds))
	}
	rows, vals := m.Column(j)
	if p := sort.SearchInts(rows, i); p < len(rows) && rows[p] == i {
		return vals[p]
	}
	var zero T
	return zero
}

// Do calls fn for every stored entry, columns ascending and rows ascending
// within a column.
func (m *Matrix[T]) Do(fn func(i, j int, v T)) {
	for j := 0; j < m.cols; j++ {
		for p := m.colPtr[j]; p < m.colPtr[j+1]; p++ {
			fn(m.rowInd[p], j, m.values[p])
		}
	}
}

// Triplet returns the stored entries as a coordinate accumulator.
func (m *Matrix[T]) Triplet() *Triplet[T] {
	t := NewTriplet[T](m.rows, m.cols, m.NNZ())
	m.Do(func(i, j int, v T) {
		t.entries = append(t.entries, Entry[T]{Row: i, Col: j, Value: v})
	})
	return t
}

func (m *Matrix[T]) Clone() *Matrix[T] {
	return &Matrix[T]{
		rows:   m.rows,
		cols:   m.cols,
		colPtr: slices.Clone(m.colPtr),
		rowInd: slices.Clone(m.rowInd[:m.NNZ()]),
		values: slices.Clone(m.values[:m.NNZ()]),
	}
}

// Equal reports whether m and b have the same dimensions, the same stored
// pattern and identical values. An explicit zero is not equal to an absent
// entry; use DropZeros first to compare numerically.
func (m *Matrix[T]) Equal(b *Matrix[T]) bool {
	if m.rows != b.rows || m.cols != b.cols {
		return false
	}
	nnz := m.NNZ()
	return slices.Equal(m.colPtr, b.colPtr) &&
		slices.Equal(m.rowInd[:nnz], b.rowInd[:nnz]) &&
		slices.Equal(m.values[:nnz], b.values[:nnz])
}

// Diagonal returns the main diagonal, length min(rows, cols).
func (m *Matrix[T]) Diagonal() (d []T) {
	d = make([]T, min(m.rows, m.cols))
	for j := range d {
		d[j] = m.At(j, j)
	}
	return
}

// Scale returns alpha*m.
func (m *Matrix[T]) Scale(alpha T) *Matrix[T] {
	return m.mapValues(func(v T) T { return alpha * v })
}

// Conj returns the element-wise complex conjugate of m.
func (m *Matrix[T]) Conj() *Matrix[T] {
	return m.mapValues(scalar.Conj[T])
}

func (m *Matrix[T]) mapValues(fn func(T) T) *Matrix[T] {
	r := m.Clone()
	for p, v := range r.values {
		r.values[p] = fn(v)
	}
	return r
}

// DropZeros returns a copy of m without explicitly stored zeros.
func (m *Matrix[T]) DropZeros() *Matrix[T] {
	return m.Keep(keepNonZero[T])
}

// IsHermitian reports whether m equals its conjugate transpose exactly. For
// real element types this is symmetry.
func (m *Matrix[T]) IsHermitian() bool {
	if m.rows != m.cols {
		return false
	}
	return m.Equal(m.ConjTranspose())
}

func (m *Matrix[T]) String() string {
	return fmt.Sprintf("CSC %dx%d, nnz = %d", m.rows, m.cols, m.NNZ())
}

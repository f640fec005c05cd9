package csc

import (
	"fmt"
	"sync/atomic"
)

var debug atomic.Bool

// SetDebug turns structural validation of operands on or off. With debug on,
// NewMatrix and the read operations (Transpose, Add, Kronecker, MulVec,
// MulTransVec) check the sorted-row invariant on entry; with it off such
// matrices give undefined results.
func SetDebug(on bool) { debug.Store(on) }

func Debug() bool { return debug.Load() }

func (m *Matrix[T]) checkLengths() error {
	switch {
	case len(m.colPtr) != m.cols+1:
		return fmt.Errorf("len(colPtr) = %d, want %d: %w", len(m.colPtr), m.cols+1, ErrInvalidStructure)
	case m.colPtr[0] != 0:
		return fmt.Errorf("colPtr[0] = %d, want 0: %w", m.colPtr[0], ErrInvalidStructure)
	case m.colPtr[m.cols] > len(m.rowInd) || m.colPtr[m.cols] > len(m.values):
		return fmt.Errorf("nnz = %d exceeds len(rowInd) = %d or len(values) = %d: %w",
			m.colPtr[m.cols], len(m.rowInd), len(m.values), ErrInvalidStructure)
	}
	return nil
}

// Validate checks every CSC invariant: pointer array shape and monotonicity,
// row indices in range and strictly ascending within each column.
func (m *Matrix[T]) Validate() error {
	if err := m.checkLengths(); err != nil {
		return err
	}
	for j := 0; j < m.cols; j++ {
		lo, hi := m.colPtr[j], m.colPtr[j+1]
		if hi < lo || hi > m.colPtr[m.cols] {
			return fmt.Errorf("colPtr not monotone at column %d (%d, %d): %w", j, lo, hi, ErrInvalidStructure)
		}
		for p := lo; p < hi; p++ {
			i := m.rowInd[p]
			if i < 0 || i >= m.rows {
				return fmt.Errorf("column %d: row index %d outside [0, %d): %w", j, i, m.rows, ErrInvalidStructure)
			}
			if p > lo && m.rowInd[p-1] >= i {
				return fmt.Errorf("column %d: row indices not strictly ascending (%d then %d): %w",
					j, m.rowInd[p-1], i, ErrInvalidStructure)
			}
		}
	}
	return nil
}

// checkDebug validates operands when debug mode is on.
func checkDebug[T interface{ Validate() error }](ms ...T) error {
	if !Debug() {
		return nil
	}
	for _, m := range ms {
		if err := m.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// mustDebug is checkDebug for operations without an error return.
func mustDebug[T interface{ Validate() error }](ms ...T) {
	if err := checkDebug(ms...); err != nil {
		panic(err)
	}
}

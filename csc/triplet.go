package csc

import (
	"fmt"

	"github.com/notargets/gocsc/scalar"
)

// Entry is one coordinate (row, col, value) of a Triplet.
type Entry[T scalar.Scalar] struct {
	Row, Col int
	Value    T
}

// Triplet accumulates coordinate entries in arbitrary order. Several entries
// may share a (row, col); Convert sums them.
type Triplet[T scalar.Scalar] struct {
	rows, cols int
	entries    []Entry[T]
}

// NewTriplet returns an empty accumulator for a rows x cols matrix. capacity
// is a hint for the number of entries to be inserted.
func NewTriplet[T scalar.Scalar](rows, cols, capacity int) *Triplet[T] {
	if rows < 0 || cols < 0 {
		panic(fmt.Sprintf("csc: negative dimension %dx%d", rows, cols))
	}
	if capacity < 0 {
		capacity = 0
	}
	return &Triplet[T]{
		rows:    rows,
		cols:    cols,
		entries: make([]Entry[T], 0, capacity),
	}
}

func (t *Triplet[T]) Dims() (r, c int) { return t.rows, t.cols }

// Len returns the number of inserted entries, duplicates included.
func (t *Triplet[T]) Len() int { return len(t.entries) }

// Insert appends (row, col, value). The coordinate is checked against the
// declared dimensions here, never later at conversion.
func (t *Triplet[T]) Insert(row, col int, value T) error {
	if row < 0 || row >= t.rows || col < 0 || col >= t.cols {
		return fmt.Errorf("insert (%d, %d) into %dx%d: %w", row, col, t.rows, t.cols, ErrOutOfBounds)
	}
	t.entries = append(t.entries, Entry[T]{Row: row, Col: col, Value: value})
	return nil
}

// MustInsert is Insert for callers whose indices are valid by construction.
func (t *Triplet[T]) MustInsert(row, col int, value T) {
	if err := t.Insert(row, col, value); err != nil {
		panic(err)
	}
}

// Entries exposes the accumulated entries. The slice is shared with the
// Triplet and must be treated as read-only.
func (t *Triplet[T]) Entries() []Entry[T] {
	return t.entries
}

package csc

import (
	"slices"
	"sort"

	"github.com/notargets/gocsc/scalar"
)

// CumulativeSum turns per-slot counts into start offsets in place:
// counts[j] += counts[j-1] for j = 1..len-1. With counts[0] == 0 and the count
// for slot j stored at counts[j+1], the result is a pointer array whose last
// element, also returned, is the total.
func CumulativeSum(counts []int) (total int) {
	if len(counts) == 0 {
		return 0
	}
	for j := 1; j < len(counts); j++ {
		counts[j] += counts[j-1]
	}
	return counts[len(counts)-1]
}

// Convert builds the canonical CSC form of the accumulated entries: columns in
// ascending order, rows strictly ascending within each column and duplicate
// coordinates summed.
func Convert[T scalar.Scalar](t *Triplet[T]) *Matrix[T] {
	var (
		entries = t.entries
		colPtr  = make([]int, t.cols+1)
	)
	// Count entries per column, shifted by one
	for _, e := range entries {
		colPtr[e.Col+1]++
	}
	nnz := CumulativeSum(colPtr)

	// Scatter using a copy of the offsets as per-column write cursor
	var (
		rowInd = make([]int, nnz)
		values = make([]T, nnz)
		cursor = slices.Clone(colPtr[:t.cols])
	)
	for _, e := range entries {
		p := cursor[e.Col]
		rowInd[p] = e.Row
		values[p] = e.Value
		cursor[e.Col]++
	}

	nz := sortAndSumColumns(colPtr, rowInd, values)
	return &Matrix[T]{
		rows:   t.rows,
		cols:   t.cols,
		colPtr: colPtr,
		rowInd: slices.Clip(rowInd[:nz]),
		values: slices.Clip(values[:nz]),
	}
}

// sortAndSumColumns sorts every column slice by row, sums duplicate rows and
// compacts the arrays, rewriting colPtr to the compacted offsets. It returns
// the new number of stored entries.
func sortAndSumColumns[T scalar.Scalar](colPtr, rowInd []int, values []T) (nz int) {
	var (
		cols  = len(colPtr) - 1
		start = 0
	)
	for j := 0; j < cols; j++ {
		end := colPtr[j+1]
		if !slices.IsSorted(rowInd[start:end]) {
			sort.Stable(columnSorter[T]{rowInd[start:end], values[start:end]})
		}
		colStart := nz
		for p := start; p < end; p++ {
			if nz > colStart && rowInd[nz-1] == rowInd[p] {
				values[nz-1] += values[p]
				continue
			}
			rowInd[nz] = rowInd[p]
			values[nz] = values[p]
			nz++
		}
		colPtr[j] = colStart
		start = end
	}
	colPtr[cols] = nz
	return
}

// columnSorter orders one column's entries by row, moving values alongside.
type columnSorter[T scalar.Scalar] struct {
	rows   []int
	values []T
}

func (s columnSorter[T]) Len() int           { return len(s.rows) }
func (s columnSorter[T]) Less(i, j int) bool { return s.rows[i] < s.rows[j] }
func (s columnSorter[T]) Swap(i, j int) {
	s.rows[i], s.rows[j] = s.rows[j], s.rows[i]
	s.values[i], s.values[j] = s.values[j], s.values[i]
}

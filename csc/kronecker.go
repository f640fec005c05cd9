package csc

import (
	"slices"

	"github.com/notargets/gocsc/scalar"
)

// Kronecker returns the Kronecker product a ⊗ b, of size
// (rowsA*rowsB) x (colsA*colsB). Element (ia*rowsB+ib, ja*colsB+jb) is
// a[ia,ja]*b[ib,jb], so row blocks follow A's rows and B's rows vary fastest
// within a block.
//
// Output column ja*colsB+jb holds nnz(a[:,ja])*nnz(b[:,jb]) entries; those
// counts seed CumulativeSum for the column pointers, and a second pass
// scatters the products. Visiting A's rows outer and B's rows inner yields
// ascending output rows without sorting.
func Kronecker[T scalar.Scalar](a, b *Matrix[T]) *Matrix[T] {
	mustDebug(a, b)
	var (
		rows   = a.rows * b.rows
		cols   = a.cols * b.cols
		colPtr = make([]int, cols+1)
	)
	for ja := 0; ja < a.cols; ja++ {
		na := a.colPtr[ja+1] - a.colPtr[ja]
		for jb := 0; jb < b.cols; jb++ {
			colPtr[ja*b.cols+jb+1] = na * (b.colPtr[jb+1] - b.colPtr[jb])
		}
	}
	nnz := CumulativeSum(colPtr)
	var (
		rowInd = make([]int, nnz)
		values = make([]T, nnz)
		cursor = slices.Clone(colPtr[:cols])
	)
	for ja := 0; ja < a.cols; ja++ {
		for pa := a.colPtr[ja]; pa < a.colPtr[ja+1]; pa++ {
			ia, va := a.rowInd[pa], a.values[pa]
			for jb := 0; jb < b.cols; jb++ {
				c := ja*b.cols + jb
				q := cursor[c]
				for pb := b.colPtr[jb]; pb < b.colPtr[jb+1]; pb++ {
					rowInd[q] = ia*b.rows + b.rowInd[pb]
					values[q] = va * b.values[pb]
					q++
				}
				cursor[c] = q
			}
		}
	}
	return &Matrix[T]{
		rows:   rows,
		cols:   cols,
		colPtr: colPtr,
		rowInd: rowInd,
		values: values,
	}
}

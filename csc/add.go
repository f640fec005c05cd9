package csc

import (
	"fmt"
	"slices"
)

// Add returns m + b. Each output column is a two-pointer merge of the sorted
// row runs of the operands, summing values where rows coincide.
func (m *Matrix[T]) Add(b *Matrix[T]) (*Matrix[T], error) {
	if m.rows != b.rows || m.cols != b.cols {
		return nil, fmt.Errorf("add %dx%d + %dx%d: %w", m.rows, m.cols, b.rows, b.cols, ErrDimensionMismatch)
	}
	if err := checkDebug(m, b); err != nil {
		return nil, err
	}
	var (
		colPtr = make([]int, m.cols+1)
		rowInd = make([]int, 0, m.NNZ()+b.NNZ())
		values = make([]T, 0, m.NNZ()+b.NNZ())
	)
	for j := 0; j < m.cols; j++ {
		pa, ea := m.colPtr[j], m.colPtr[j+1]
		pb, eb := b.colPtr[j], b.colPtr[j+1]
		for pa < ea && pb < eb {
			ia, ib := m.rowInd[pa], b.rowInd[pb]
			switch {
			case ia < ib:
				rowInd = append(rowInd, ia)
				values = append(values, m.values[pa])
				pa++
			case ib < ia:
				rowInd = append(rowInd, ib)
				values = append(values, b.values[pb])
				pb++
			default:
				rowInd = append(rowInd, ia)
				values = append(values, m.values[pa]+b.values[pb])
				pa++
				pb++
			}
		}
		rowInd = append(rowInd, m.rowInd[pa:ea]...)
		values = append(values, m.values[pa:ea]...)
		rowInd = append(rowInd, b.rowInd[pb:eb]...)
		values = append(values, b.values[pb:eb]...)
		colPtr[j+1] = len(rowInd)
	}
	return &Matrix[T]{
		rows:   m.rows,
		cols:   m.cols,
		colPtr: colPtr,
		rowInd: slices.Clip(rowInd),
		values: slices.Clip(values),
	}, nil
}

// Sub returns m - b.
func (m *Matrix[T]) Sub(b *Matrix[T]) (*Matrix[T], error) {
	if m.rows != b.rows || m.cols != b.cols {
		return nil, fmt.Errorf("sub %dx%d - %dx%d: %w", m.rows, m.cols, b.rows, b.cols, ErrDimensionMismatch)
	}
	var minusOne T = -1
	return m.Add(b.Scale(minusOne))
}

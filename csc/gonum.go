package csc

import (
	"fmt"
	"slices"

	"github.com/james-bowman/sparse"
	"gonum.org/v1/gonum/mat"
)

// Float64View lets a real CSC matrix be used wherever gonum expects a
// mat.Matrix.
type Float64View struct {
	*Matrix[float64]
}

// Dims, At and T minimally satisfy the mat.Matrix interface.
func (v Float64View) Dims() (r, c int)     { return v.Matrix.Dims() }
func (v Float64View) At(i, j int) float64 { return v.Matrix.At(i, j) }
func (v Float64View) T() mat.Matrix        { return mat.Transpose{Matrix: v} }

var _ mat.Matrix = Float64View{}

// ToDense expands m into a gonum dense matrix.
func ToDense(m *Matrix[float64]) *mat.Dense {
	if m.rows == 0 || m.cols == 0 {
		return &mat.Dense{}
	}
	d := mat.NewDense(m.rows, m.cols, nil)
	m.Do(func(i, j int, v float64) { d.Set(i, j, v) })
	return d
}

// ToCDense expands a complex m into a gonum complex dense matrix.
func ToCDense(m *Matrix[complex128]) *mat.CDense {
	if m.rows == 0 || m.cols == 0 {
		return &mat.CDense{}
	}
	d := mat.NewCDense(m.rows, m.cols, nil)
	m.Do(func(i, j int, v complex128) { d.Set(i, j, v) })
	return d
}

// FromDense collects the non-zero elements of a into a CSC matrix.
func FromDense(a mat.Matrix) *Matrix[float64] {
	var (
		nr, nc = a.Dims()
		t      = NewTriplet[float64](nr, nc, 0)
	)
	for j := 0; j < nc; j++ {
		for i := 0; i < nr; i++ {
			if v := a.At(i, j); v != 0 {
				t.MustInsert(i, j, v)
			}
		}
	}
	return Convert(t)
}

// ToBowmanCSC copies m into a github.com/james-bowman/sparse CSC matrix.
func ToBowmanCSC(m *Matrix[float64]) *sparse.CSC {
	nnz := m.NNZ()
	return sparse.NewCSC(m.rows, m.cols,
		slices.Clone(m.colPtr), slices.Clone(m.rowInd[:nnz]), slices.Clone(m.values[:nnz]))
}

// FromBowmanCSC converts a james-bowman/sparse CSC matrix. Its row indices are
// not assumed sorted or unique, so the entries are re-assembled through a
// Triplet.
func FromBowmanCSC(b *sparse.CSC) (*Matrix[float64], error) {
	var (
		nr, nc = b.Dims()
		raw    = b.RawMatrix()
	)
	if len(raw.Indptr) != nc+1 {
		return nil, fmt.Errorf("bowman CSC with len(Indptr) = %d, want %d: %w", len(raw.Indptr), nc+1, ErrInvalidStructure)
	}
	t := NewTriplet[float64](nr, nc, len(raw.Data))
	for j := 0; j < nc; j++ {
		for p := raw.Indptr[j]; p < raw.Indptr[j+1]; p++ {
			if err := t.Insert(raw.Ind[p], j, raw.Data[p]); err != nil {
				return nil, err
			}
		}
	}
	return Convert(t), nil
}

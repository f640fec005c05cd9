package csc

import (
	"math/rand/v2"

	"github.com/notargets/gocsc/scalar"
)

// randomTriplet fills an accumulator with n entries at random coordinates,
// duplicates likely for small shapes.
func randomTriplet[T scalar.Scalar](rows, cols, n int, seed uint64) *Triplet[T] {
	var (
		rng = rand.New(rand.NewPCG(seed, 17))
		t   = NewTriplet[T](rows, cols, n)
	)
	for k := 0; k < n; k++ {
		re, im := float64(rng.IntN(19)-9), float64(rng.IntN(19)-9)
		t.MustInsert(rng.IntN(rows), rng.IntN(cols), scalar.FromComplex[T](complex(re, im)))
	}
	return t
}

// denseSum is the reference for Convert: all entries summed into a dense array.
func denseSum[T scalar.Scalar](t *Triplet[T]) [][]T {
	nr, nc := t.Dims()
	d := denseZeros[T](nr, nc)
	for _, e := range t.Entries() {
		d[e.Row][e.Col] += e.Value
	}
	return d
}

func denseOf[T scalar.Scalar](m *Matrix[T]) [][]T {
	nr, nc := m.Dims()
	d := denseZeros[T](nr, nc)
	m.Do(func(i, j int, v T) { d[i][j] = v })
	return d
}

func denseZeros[T scalar.Scalar](nr, nc int) [][]T {
	d := make([][]T, nr)
	for i := range d {
		d[i] = make([]T, nc)
	}
	return d
}

func mustMatrix[T scalar.Scalar](rows, cols int, colPtr, rowInd []int, values []T) *Matrix[T] {
	m, err := NewMatrix(rows, cols, colPtr, rowInd, values)
	if err != nil {
		panic(err)
	}
	return m
}

// example3x4 is
//
//	⎡1  0  0  2⎤
//	⎢0  3  0  0⎥
//	⎣4  0  5  6⎦
func example3x4() *Matrix[float64] {
	return mustMatrix(3, 4,
		[]int{0, 2, 3, 4, 6},
		[]int{0, 2, 1, 2, 0, 2},
		[]float64{1, 4, 3, 5, 2, 6})
}

func randomVec[T scalar.Scalar](n int, seed uint64) []T {
	rng := rand.New(rand.NewPCG(seed, 5))
	x := make([]T, n)
	for i := range x {
		x[i] = scalar.FromComplex[T](complex(rng.Float64()*2-1, rng.Float64()*2-1))
	}
	return x
}

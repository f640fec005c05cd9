package generators

import (
	"fmt"
	"math"
	"math/rand/v2"
	"slices"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/notargets/gocsc/csc"
	"github.com/notargets/gocsc/scalar"
)

// sampler draws reproducible positions and values from one seeded stream.
type sampler struct {
	rng  *rand.Rand
	dist distuv.Uniform
}

func newSampler(seed uint64) *sampler {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	return &sampler{
		rng:  rng,
		dist: distuv.Uniform{Min: -1, Max: 1, Src: rng},
	}
}

// value draws from U[-1, 1); complex kinds get independent real and
// imaginary parts.
func value[T scalar.Scalar](s *sampler) T {
	if scalar.IsComplex[T]() {
		re := s.dist.Rand()
		return scalar.FromComplex[T](complex(re, s.dist.Rand()))
	}
	return scalar.FromFloat[T](s.dist.Rand())
}

// distinct returns k distinct values from [0, n) in ascending order, using
// Floyd's sampling so the cost is O(k log k) regardless of n.
func (s *sampler) distinct(n, k int) []int {
	chosen := make(map[int]struct{}, k)
	for j := n - k; j < n; j++ {
		t := s.rng.IntN(j + 1)
		if _, dup := chosen[t]; dup {
			t = j
		}
		chosen[t] = struct{}{}
	}
	out := make([]int, 0, k)
	for i := range chosen {
		out = append(out, i)
	}
	slices.Sort(out)
	return out
}

func checkDensity(density float64) error {
	if !(density > 0 && density <= 1) {
		return fmt.Errorf("density %g: %w", density, ErrInvalidDensity)
	}
	return nil
}

// RandomSparse returns a rows x cols matrix holding round(density*rows*cols)
// entries, at least one, at distinct random positions, values uniform in
// [-1, 1). The same seed always yields the same matrix.
//
// Positions are drawn as column-major linear indices p = j*rows + i, so the
// sorted sample is already in CSC order.
func RandomSparse[T scalar.Scalar](rows, cols int, density float64, seed uint64) (*csc.Matrix[T], error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("random matrix %dx%d: %w", rows, cols, ErrInvalidSize)
	}
	if err := checkDensity(density); err != nil {
		return nil, err
	}
	var (
		s      = newSampler(seed)
		size   = rows * cols
		nnz    = min(size, max(1, int(math.Round(density*float64(size)))))
		colPtr = make([]int, cols+1)
		rowInd = make([]int, nnz)
		values = make([]T, nnz)
	)
	for q, p := range s.distinct(size, nnz) {
		rowInd[q] = p % rows
		colPtr[p/rows+1]++
		values[q] = value[T](s)
	}
	csc.CumulativeSum(colPtr)
	return csc.NewMatrix(rows, cols, colPtr, rowInd, values)
}

// RandomHermitian returns a size x size Hermitian (symmetric for real kinds)
// matrix. Each strictly lower entry is present with probability density. The
// diagonal holds the sum of off-diagonal magnitudes of its row, so the matrix
// is diagonally dominant; with definite set one is added to every diagonal
// entry, making the dominance strict and the matrix positive definite.
//
// The lower triangle L is accumulated in a Triplet and symmetrized as
// L + Lᴴ + D, so H equals its conjugate transpose exactly.
func RandomHermitian[T scalar.Scalar](size int, density float64, definite bool, seed uint64) (*csc.Matrix[T], error) {
	if size < 1 {
		return nil, fmt.Errorf("random hermitian of size %d: %w", size, ErrInvalidSize)
	}
	if err := checkDensity(density); err != nil {
		return nil, err
	}
	var (
		s = newSampler(seed)
		t = csc.NewTriplet[T](size, size, int(density*float64(size*(size-1)/2))+1)
	)
	for j := 0; j < size; j++ {
		for i := j + 1; i < size; i++ {
			if s.rng.Float64() < density {
				t.MustInsert(i, j, value[T](s))
			}
		}
	}
	lower := csc.Convert(t)
	offDiag, err := lower.Add(lower.ConjTranspose())
	if err != nil {
		return nil, err
	}
	// Column magnitude sums equal row sums for a Hermitian matrix
	d := make([]T, size)
	for j := 0; j < size; j++ {
		_, vals := offDiag.Column(j)
		var sum float64
		for _, v := range vals {
			sum += scalar.Abs(v)
		}
		if definite {
			sum += 1
		}
		d[j] = scalar.FromFloat[T](sum)
	}
	return offDiag.Add(Diagonal(d))
}

package generators

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/notargets/gocsc/csc"
	"github.com/notargets/gocsc/scalar"
)

func TestRandomSparse(t *testing.T) {
	m, err := RandomSparse[float64](40, 25, 0.1, 7)
	require.NoError(t, err)
	require.NoError(t, m.Validate())
	r, c := m.Dims()
	assert.Equal(t, [2]int{40, 25}, [2]int{r, c})
	assert.Equal(t, 4*25, m.NNZ())
	for _, v := range m.Values() {
		assert.True(t, v >= -1 && v < 1)
	}

	again, err := RandomSparse[float64](40, 25, 0.1, 7)
	require.NoError(t, err)
	assert.True(t, m.Equal(again), "same seed must reproduce the matrix")
	other, err := RandomSparse[float64](40, 25, 0.1, 8)
	require.NoError(t, err)
	assert.False(t, m.Equal(other))

	full, err := RandomSparse[float64](6, 3, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, 18, full.NNZ())

	cm, err := RandomSparse[complex128](10, 10, 0.5, 3)
	require.NoError(t, err)
	var imagSeen bool
	for _, v := range cm.Values() {
		imagSeen = imagSeen || imag(v) != 0
	}
	assert.True(t, imagSeen)

	{ // Thin matrices keep the target fill even when rows*density < 0.5
		for _, tc := range []struct {
			rows, cols int
			density    float64
			nnz        int
		}{
			{100, 100, 0.004, 40},
			{10, 10, 0.04, 4},
			{3, 50, 0.1, 15},
			{10, 10, 0.001, 1},
		} {
			thin, err := RandomSparse[float64](tc.rows, tc.cols, tc.density, 1)
			require.NoError(t, err)
			require.NoError(t, thin.Validate())
			assert.Equal(t, tc.nnz, thin.NNZ(), "%dx%d at %g", tc.rows, tc.cols, tc.density)
		}
	}

	for _, density := range []float64{0, -0.5, 1.5} {
		_, err = RandomSparse[float64](10, 10, density, 1)
		assert.ErrorIs(t, err, ErrInvalidDensity, "density %g", density)
	}
	_, err = RandomSparse[float64](0, 10, 0.5, 1)
	assert.ErrorIs(t, err, ErrInvalidSize)
}

// checkDominance verifies that every diagonal entry is real and at least the
// sum of the off-diagonal magnitudes of its row, strictly when strict is set.
func checkDominance[T scalar.Scalar](t *testing.T, h *csc.Matrix[T], strict bool) {
	n, _ := h.Dims()
	rowSums := make([]float64, n)
	h.Do(func(i, j int, v T) {
		if i != j {
			rowSums[i] += scalar.Abs(v)
		}
	})
	for i, d := range h.Diagonal() {
		assert.Equal(t, 0., scalar.Imag(d))
		if strict {
			assert.Greater(t, scalar.Real(d), rowSums[i])
		} else {
			assert.GreaterOrEqual(t, scalar.Real(d), rowSums[i]*(1-1e-6))
		}
	}
}

func TestRandomHermitian(t *testing.T) {
	{ // Complex, definite
		h, err := RandomHermitian[complex128](50, 0.1, true, 42)
		require.NoError(t, err)
		require.NoError(t, h.Validate())
		assert.True(t, h.Equal(h.Conj().Transpose()), "H must equal its conjugate transpose exactly")
		for _, d := range h.Diagonal() {
			assert.Greater(t, real(d), 0.)
		}
		checkDominance(t, h, true)
		assert.Greater(t, h.NNZ(), 50)
	}
	{ // Real, definite, checked with a dense Cholesky factorization
		h, err := RandomHermitian[float64](50, 0.1, true, 3)
		require.NoError(t, err)
		assert.True(t, h.IsHermitian())
		checkDominance(t, h, true)
		var chol mat.Cholesky
		assert.True(t, chol.Factorize(mat.NewSymDense(50, csc.ToDense(h).RawMatrix().Data)))
	}
	{ // Not definite: weakly dominant only
		h, err := RandomHermitian[complex64](30, 0.2, false, 5)
		require.NoError(t, err)
		assert.True(t, h.IsHermitian())
		checkDominance(t, h, false)
	}
	{ // Reproducible
		a, _ := RandomHermitian[float64](20, 0.3, true, 9)
		b, _ := RandomHermitian[float64](20, 0.3, true, 9)
		assert.True(t, a.Equal(b))
	}
	{ // Single element
		h, err := RandomHermitian[float64](1, 1, true, 1)
		require.NoError(t, err)
		assert.Equal(t, []float64{1}, h.Values())
	}
	_, err := RandomHermitian[float64](0, 0.1, true, 1)
	assert.ErrorIs(t, err, ErrInvalidSize)
	_, err = RandomHermitian[float64](5, 2, true, 1)
	assert.ErrorIs(t, err, ErrInvalidDensity)
}

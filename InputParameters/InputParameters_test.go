package InputParameters

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	var (
		err error
	)
	fileInput := []byte(`
Title: Hermitian test case
Kind: hermitian # case is normalized
Complex: true
Rows: 50
Density: 0.1
Definite: true
Seed: 42
Offset: 1
Check: true
`)
	var input GeneratorParameters
	require.NoError(t, input.Parse(fileInput))
	assert.Equal(t, Hermitian, input.Kind)
	assert.Equal(t, 50, input.Rows)
	assert.Equal(t, 0.1, input.Density)
	assert.Equal(t, uint64(42), input.Seed)
	assert.True(t, input.Definite)
	assert.True(t, input.Complex)
	assert.Equal(t, 1, input.Offset)
	input.Print()

	{ // Laplacian sizes
		var lp GeneratorParameters
		require.NoError(t, lp.Parse([]byte("Kind: Laplacian2D\nNx: 4\nNy: 3\n")))
		assert.Equal(t, Laplacian2D, lp.Kind)
		assert.Equal(t, [2]int{4, 3}, [2]int{lp.Nx, lp.Ny})
		lp.Print()
	}
	{ // Rejected inputs
		for _, bad := range []string{
			"Kind: Laplacian1D\n",
			"Kind: Laplacian2D\nNx: 3\n",
			"Kind: Random\nRows: 3\n",
			"Kind: Hermitian\n",
			"Kind: Banded\nRows: 3\n",
			"Kind: Laplacian1D\nNx: 3\nOffset: 2\n",
			"Kind: [unterminated\n",
		} {
			var ip GeneratorParameters
			err = ip.Parse([]byte(bad))
			assert.Error(t, err, bad)
		}
	}
}

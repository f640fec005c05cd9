package scalar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScalarKinds(t *testing.T) {
	assert.False(t, IsComplex[float64]())
	assert.False(t, IsComplex[float32]())
	assert.True(t, IsComplex[complex128]())
	assert.True(t, IsComplex[complex64]())

	assert.True(t, CanPromote[float64, complex128]())
	assert.True(t, CanPromote[float64, float64]())
	assert.True(t, CanPromote[complex64, complex128]())
	assert.False(t, CanPromote[complex128, float64]())
}

func TestConjAbs(t *testing.T) {
	assert.Equal(t, 3., Conj(3.))
	assert.Equal(t, complex(1, -2), Conj(complex(1, 2)))
	assert.Equal(t, complex64(complex(1, -2)), Conj(complex64(complex(1, 2))))

	assert.Equal(t, 2., Abs(-2.))
	assert.Equal(t, 2., Abs(float32(-2)))
	assert.InDelta(t, 5., Abs(complex(3, 4)), 1e-15)
	assert.InDelta(t, 5., Abs(complex64(complex(-3, 4))), 1e-6)
}

func TestPromote(t *testing.T) {
	assert.Equal(t, complex(2.5, 0), Promote[complex128](2.5))
	assert.Equal(t, 2.5, Promote[float64](2.5))
	assert.Equal(t, float32(2.5), Promote[float32](2.5))
	assert.Equal(t, 1., Promote[float64](complex(1, 7)))

	src := []float64{1, 2, 3}
	same := PromoteSlice[float64](src)
	same[0] = 10
	assert.Equal(t, 10., src[0], "same-type promotion must not copy")

	c := PromoteSlice[complex128](src)
	assert.Equal(t, []complex128{10, 2, 3}, c)

	assert.Equal(t, 4., Real(complex(4, 5)))
	assert.Equal(t, 5., Imag(complex(4, 5)))
	assert.Equal(t, 0., Imag(4.))
	assert.Equal(t, complex64(complex(7, 0)), FromFloat[complex64](7))
}

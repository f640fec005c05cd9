package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVectorKernels(t *testing.T) {
	{ // float64 path through blas64
		x := []float64{3, 4}
		assert.InDelta(t, 5., Norm2(x), 1e-15)
		assert.Equal(t, 4., NormInf(x))
		y := ConstArray(2, 1.)
		Axpy(2., x, y)
		assert.Equal(t, []float64{7, 9}, y)
		ScaleVec(0.5, y)
		assert.Equal(t, []float64{3.5, 4.5}, y)
		assert.Equal(t, 3*3.5+4*4.5, Dot(x, y))
		c := Clone(x)
		c[0] = 100
		assert.Equal(t, 3., x[0])
		ScaleVec(0, c)
		assert.Equal(t, []float64{0, 0}, c)
		assert.Equal(t, 0., Norm2([]float64{}))
	}
	{ // complex path
		x := []complex128{complex(3, 4), 0}
		assert.InDelta(t, 5., Norm2(x), 1e-15)
		assert.InDelta(t, 5., NormInf(x), 1e-15)
		y := []complex128{1, 1}
		Axpy(complex(0, 1), x, y)
		assert.Equal(t, []complex128{complex(-3, 3), 1}, y)
		// conj(3+4i)*(3+4i) = 25
		assert.Equal(t, complex(25, 0), Dot(x, x))
		ScaleVec(complex(2, 0), x)
		assert.Equal(t, complex(6, 8), x[0])
	}
	{ // scale by zero clears non-finite values
		x := []float64{math.NaN(), math.Inf(1)}
		ScaleVec(0., x)
		assert.Equal(t, []float64{0, 0}, x)
		f := []float32{1, 2}
		ScaleVec(float32(1), f)
		assert.Equal(t, []float32{1, 2}, f)
	}
	{ // overflow safe norm for non-float64 kinds
		big := float32(3e38)
		x := []complex64{complex(big, big)}
		require.False(t, math.IsInf(Norm2(x), 0))
	}
	assert.Equal(t, 0.5, MaxAbsDiff([]float64{1, 2}, []float64{1.5, 2}))
	assert.True(t, math.IsInf(MaxAbsDiff([]float64{1}, []float64{}), 1))
	assert.Panics(t, func() { Axpy(1., []float64{1}, []float64{}) })
}

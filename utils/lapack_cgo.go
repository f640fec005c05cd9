//go:build cgo && netlib

package utils

/*
#cgo CFLAGS: -march=native -mavx -mavx2
#cgo LDFLAGS: -lopenblas -lgfortran -lm -lpthread
#include <cblas.h>
*/
import "C"

import (
	"gonum.org/v1/gonum/blas/blas64"
	netblas "gonum.org/v1/netlib/blas/netlib"
)

// Building with -tags netlib routes the float64 vector kernels through OpenBLAS.
func init() {
	blas64.Use(netblas.Implementation{})
}

// BLASBackend names the BLAS implementation behind blas64.
const BLASBackend = "netlib"

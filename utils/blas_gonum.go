//go:build !(cgo && netlib)

package utils

// BLASBackend names the BLAS implementation behind blas64.
const BLASBackend = "gonum"

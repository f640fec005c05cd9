package utils

import (
	"fmt"
	"math"
	"runtime"

	"github.com/notargets/gocsc/scalar"
)

// MemStats reports the current heap in MiB, for attaching to log lines.
type MemStats struct {
	AllocMiB, TotalAllocMiB, SysMiB uint64
	NumGC                           uint32
}

func GetMemStats() (s MemStats) {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	// For info on each, see: https://golang.org/pkg/runtime/#MemStats
	bToMb := func(b uint64) uint64 {
		return b / 1024 / 1024
	}
	return MemStats{bToMb(m.Alloc), bToMb(m.TotalAlloc), bToMb(m.Sys), m.NumGC}
}

func GetMemUsage() string {
	s := GetMemStats()
	return fmt.Sprintf("Alloc = %v MiB TotalAlloc = %v MiB Sys = %v MiB NumGC = %v",
		s.AllocMiB, s.TotalAllocMiB, s.SysMiB, s.NumGC)
}

// IsNan reports whether any element has a NaN real or imaginary part.
func IsNan[T scalar.Scalar](x []T) bool {
	for _, v := range x {
		if math.IsNaN(scalar.Real(v)) || math.IsNaN(scalar.Imag(v)) {
			return true
		}
	}
	return false
}

/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"math"
	"time"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/notargets/gocsc/InputParameters"
	"github.com/notargets/gocsc/csc"
	"github.com/notargets/gocsc/generators"
	"github.com/notargets/gocsc/scalar"
	"github.com/notargets/gocsc/utils"
)

const checkTolerance = 1e-9

// Report collects the outcome of generating and checking one matrix. Error
// fields are max-norm differences, negative when the check did not run.
type Report struct {
	Title            string
	Kind             InputParameters.MatrixKind
	Rows, Cols, NNZ  int
	Elapsed          time.Duration
	Hermitian        bool
	PositiveDefinite bool
	MulVecError      float64 // parallel against serial product
	MulTransVecError float64 // transposed product against product with the transpose
	AdjointError     float64 // |<y, Ax> - <Aᴴy, x>| relative to |<y, Ax>|
	DenseError       float64 // serial product against a dense gonum product
	EigenError       float64 // dense spectrum against the closed form
	Failures         []string
}

func (r *Report) fail(format string, args ...interface{}) {
	r.Failures = append(r.Failures, fmt.Sprintf(format, args...))
}

func (r *Report) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", r.Title)
	fmt.Printf("[%s]\t\t= Kind\n", r.Kind)
	fmt.Printf("[%d, %d]\t\t= Rows, Cols\n", r.Rows, r.Cols)
	fmt.Printf("%d\t\t\t= NNZ\n", r.NNZ)
	fmt.Printf("%v\t\t= Elapsed\n", r.Elapsed)
	fmt.Printf("%v\t\t\t= Hermitian\n", r.Hermitian)
	fmt.Printf("%v\t\t\t= Positive Definite\n", r.PositiveDefinite)
	for _, e := range []struct {
		name string
		val  float64
	}{
		{"MulVec", r.MulVecError},
		{"MulTransVec", r.MulTransVecError},
		{"Adjoint", r.AdjointError},
		{"Dense", r.DenseError},
		{"Eigenvalue", r.EigenError},
	} {
		if e.val >= 0 {
			fmt.Printf("%8.3e\t\t= %s error\n", e.val, e.name)
		}
	}
	for _, f := range r.Failures {
		fmt.Printf("FAILED: %s\n", f)
	}
}

// Generate builds the matrix described by ip and runs every check that
// applies to it.
func Generate(ip *InputParameters.GeneratorParameters) (*Report, error) {
	if err := ip.Validate(); err != nil {
		return nil, err
	}
	if ip.Complex {
		return generate[complex128](ip)
	}
	return generate[float64](ip)
}

func build[T scalar.Scalar](ip *InputParameters.GeneratorParameters) (m *csc.Matrix[T], exact []float64, err error) {
	switch ip.Kind {
	case InputParameters.Laplacian1D:
		m, err = generators.Laplacian1D[T](ip.Nx)
		exact = generators.Laplacian1DEigenvalues(ip.Nx)
	case InputParameters.Laplacian2D:
		m, err = generators.Laplacian2D[T](ip.Nx, ip.Ny)
		exact = generators.Laplacian2DEigenvalues(ip.Nx, ip.Ny)
	case InputParameters.Random:
		m, err = generators.RandomSparse[T](ip.Rows, ip.Cols, ip.Density, ip.Seed)
	case InputParameters.Hermitian:
		m, err = generators.RandomHermitian[T](ip.Rows, ip.Density, ip.Definite, ip.Seed)
	default:
		err = fmt.Errorf("unknown matrix kind %q", ip.Kind)
	}
	return
}

func generate[T scalar.Scalar](ip *InputParameters.GeneratorParameters) (r *Report, err error) {
	var (
		m     *csc.Matrix[T]
		exact []float64
		start = time.Now()
	)
	if m, exact, err = build[T](ip); err != nil {
		return
	}
	r = &Report{
		Title:            ip.Title,
		Kind:             ip.Kind,
		Elapsed:          time.Since(start),
		MulVecError:      -1,
		MulTransVecError: -1,
		AdjointError:     -1,
		DenseError:       -1,
		EigenError:       -1,
	}
	r.Rows, r.Cols = m.Dims()
	r.NNZ = m.NNZ()
	logger.Info().Str("kind", string(ip.Kind)).Stringer("matrix", m).Dur("elapsed", r.Elapsed).
		Str("mem", utils.GetMemUsage()).Msg("generated")

	if err = m.Validate(); err != nil {
		return
	}
	checkLayouts(r, m, ip.Offset)
	r.Hermitian = m.IsHermitian()
	if (ip.Kind != InputParameters.Random) && !r.Hermitian {
		r.fail("%s matrix is not Hermitian", ip.Kind)
	}

	// A dense column of the generator's own output doubles as the test vector
	xm, err := generators.RandomSparse[T](r.Cols, 1, 1, ip.Seed+1)
	if err != nil {
		return
	}
	x := xm.Values()
	y := make([]T, r.Rows)
	if err = m.MulVec(1, x, 0, y); err != nil {
		return
	}
	if utils.IsNan(y) {
		r.fail("product contains NaN")
	}
	if err = checkProducts(r, m, x, y, ip.Workers); err != nil {
		return
	}
	if ip.Check {
		if rm, ok := any(m).(*csc.Matrix[float64]); ok {
			checkDense(r, rm, exact, any(x).([]float64), any(y).([]float64))
		} else {
			logger.Warn().Msg("dense checks need real elements, skipped")
		}
	}
	for _, f := range r.Failures {
		logger.Error().Str("check", f).Msg("failed")
	}
	return
}

// checkLayouts round trips the matrix through CSR and through a shifted
// index base.
func checkLayouts[T scalar.Scalar](r *Report, m *csc.Matrix[T], offset int) {
	if !m.CSR().ToCSC().Equal(m) {
		r.fail("CSR round trip changed the matrix")
	}
	colPtr, rowInd := m.WithOffset(offset)
	back, err := csc.FromOffset(r.Rows, r.Cols, offset, colPtr, rowInd, m.Values())
	if err != nil {
		r.fail("offset %d import: %v", offset, err)
		return
	}
	if !back.Equal(m) {
		r.fail("offset %d round trip changed the matrix", offset)
	}
}

func checkProducts[T scalar.Scalar](r *Report, m *csc.Matrix[T], x, y []T, workers int) (err error) {
	yp := make([]T, r.Rows)
	if err = csc.MulVecParallel(m, false, 1, x, 0, yp, workers); err != nil {
		return
	}
	scale := 1 + utils.NormInf(y)
	if r.MulVecError = utils.MaxAbsDiff(y, yp); r.MulVecError > checkTolerance*scale {
		r.fail("parallel product differs by %g", r.MulVecError)
	}

	// Aᵀy computed directly and through the explicit transpose
	var (
		z  = make([]T, r.Cols)
		zt = make([]T, r.Cols)
	)
	if err = m.MulTransVec(1, y, 0, z); err != nil {
		return
	}
	if err = m.Transpose().MulVec(1, y, 0, zt); err != nil {
		return
	}
	scale = 1 + utils.NormInf(z)
	if r.MulTransVecError = utils.MaxAbsDiff(z, zt); r.MulTransVecError > checkTolerance*scale {
		r.fail("transposed product differs by %g", r.MulTransVecError)
	}

	// With y = Ax, <y, y> must equal <Aᴴy, x>
	w := make([]T, r.Cols)
	if err = m.ConjTranspose().MulVec(1, y, 0, w); err != nil {
		return
	}
	yy := utils.Dot(y, y)
	if r.AdjointError = scalar.Abs(yy-utils.Dot(w, x)) / (1 + scalar.Abs(yy)); r.AdjointError > checkTolerance {
		r.fail("adjoint identity off by %g", r.AdjointError)
	}
	return
}

func checkDense(r *Report, m *csc.Matrix[float64], exact, x, y []float64) {
	var (
		a  = csc.ToDense(m)
		yd = mat.NewVecDense(r.Rows, nil)
	)
	yd.MulVec(a, mat.NewVecDense(r.Cols, x))
	scale := 1 + floats.Norm(y, math.Inf(1))
	if r.DenseError = floats.Distance(y, yd.RawVector().Data, math.Inf(1)); r.DenseError > checkTolerance*scale {
		r.fail("dense product differs by %g", r.DenseError)
	}
	if !r.Hermitian {
		return
	}
	sym := mat.NewSymDense(r.Rows, a.RawMatrix().Data)
	var chol mat.Cholesky
	r.PositiveDefinite = chol.Factorize(sym)
	if exact == nil {
		return
	}
	var es mat.EigenSym
	if !es.Factorize(sym, false) {
		r.fail("dense eigensolver did not converge")
		return
	}
	if r.EigenError = floats.Distance(exact, es.Values(nil), math.Inf(1)); r.EigenError > checkTolerance*(1+exact[len(exact)-1]) {
		r.fail("spectrum differs from the closed form by %g", r.EigenError)
	}
}

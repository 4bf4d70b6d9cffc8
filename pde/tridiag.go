// SPDX-License-Identifier: MIT

package pde

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// LinearSolver is the linear-system collaborator: each time update (or
// ADI sweep) reduces to one tridiagonal solve per line. Implementations
// must be safe for repeated calls with varying sizes.
type LinearSolver interface {
	// SolveTridiag solves A·x = rhs for the n×n tridiagonal A with
	// subdiagonal sub (n-1), main diagonal diag (n) and superdiagonal
	// sup (n-1), writing x into dst (len n). dst may alias rhs.
	SolveTridiag(sub, diag, sup, rhs, dst []float64) error
}

// gonumTridiag is the default LinearSolver, backed by gonum's
// mat.Tridiag (LAPACK dgtsv-style factorization).
type gonumTridiag struct{}

func (gonumTridiag) SolveTridiag(sub, diag, sup, rhs, dst []float64) error {
	n := len(diag)
	a := mat.NewTridiag(n,
		append([]float64(nil), sub...),
		append([]float64(nil), diag...),
		append([]float64(nil), sup...))

	b := mat.NewVecDense(n, append([]float64(nil), rhs...))
	var x mat.VecDense
	if err := a.SolveVecTo(&x, false, b); err != nil {
		return fmt.Errorf("%v: %w", err, ErrLinearSolve)
	}
	copy(dst, x.RawVector().Data)
	return nil
}

// SPDX-License-Identifier: MIT
// Package noise: sentinel error set. Matched via errors.Is; wrapped with
// fmt.Errorf("ctx: %w", ErrX) only at outer boundaries.

package noise

import "errors"

var (
	// ErrNonPositiveDefinite is returned when a correlation matrix admits
	// no Cholesky factorization.
	ErrNonPositiveDefinite = errors.New("noise: correlation matrix is not positive definite")

	// ErrBadCorrelation is returned when a correlation matrix has an
	// off-unit diagonal or entries outside [-1, 1].
	ErrBadCorrelation = errors.New("noise: invalid correlation entries")

	// ErrDimensionMismatch is returned when sample width does not match
	// the transform's dimension.
	ErrDimensionMismatch = errors.New("noise: dimension mismatch")

	// ErrBadTimeGrid is returned when a time grid is not strictly
	// increasing or has fewer than two points.
	ErrBadTimeGrid = errors.New("noise: time grid must be strictly increasing with >= 2 points")

	// ErrBadMethod is returned for an unrecognized Gaussian method.
	ErrBadMethod = errors.New("noise: unknown gaussian method")
)

// SPDX-License-Identifier: MIT
// Package copula: sentinel error set, matched via errors.Is.

package copula

import "errors"

var (
	// ErrInvalidParameters is returned when family parameters fall
	// outside the admissible domain (non-PD correlation, ν <= 0, θ <= 0).
	ErrInvalidParameters = errors.New("copula: parameters outside admissible domain")

	// ErrDimensionMismatch is returned when the supplied stream's
	// dimension does not equal the sampler's Uniforms() requirement.
	ErrDimensionMismatch = errors.New("copula: stream dimension mismatch")

	// ErrBadCount is returned when Sample is called with a negative count.
	ErrBadCount = errors.New("copula: count must be >= 0")

	// ErrUnknownFamily is returned by the family-dispatch constructor for
	// an unrecognized family tag.
	ErrUnknownFamily = errors.New("copula: unknown family")
)

// SPDX-License-Identifier: MIT
// Package process: sentinel error set, matched via errors.Is.

package process

import "errors"

var (
	// ErrBadParams is returned by constructors for parameters outside the
	// model's admissible domain (e.g. sigma <= 0). Detected at
	// construction, never mid-run.
	ErrBadParams = errors.New("process: invalid model parameters")

	// ErrStateDomain is returned when a coefficient is evaluated at a
	// state outside the model's admissible domain (e.g. negative
	// variance for a square-root process).
	ErrStateDomain = errors.New("process: state outside admissible domain")

	// ErrDimensionMismatch is returned when state or destination slices
	// do not match the model's dimensions.
	ErrDimensionMismatch = errors.New("process: dimension mismatch")
)

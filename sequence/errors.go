// SPDX-License-Identifier: MIT
// Package sequence: sentinel error set. All constructors and Stream methods
// return these sentinels (possibly wrapped with fmt.Errorf("ctx: %w", ...));
// tests match them via errors.Is. No method panics on user input.

package sequence

import "errors"

var (
	// ErrBadDimension is returned when a requested dimension is < 1.
	ErrBadDimension = errors.New("sequence: dimension must be >= 1")

	// ErrDimensionUnsupported is returned when a quasi-random generator is
	// asked for more dimensions than its direction-number table supports.
	ErrDimensionUnsupported = errors.New("sequence: dimension exceeds direction-number table")

	// ErrBadCount is returned when Next is called with a negative count.
	ErrBadCount = errors.New("sequence: count must be >= 0")

	// ErrBadSplit is returned when Split is called with k < 1.
	ErrBadSplit = errors.New("sequence: split count must be >= 1")

	// ErrExhausted is returned when a quasi-random cursor moves past the
	// last representable point of its sequence (index 2^32 for Sobol).
	ErrExhausted = errors.New("sequence: quasi-random sequence exhausted")
)

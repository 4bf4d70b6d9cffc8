// SPDX-License-Identifier: MIT
// Package bs: sentinel error set, matched via errors.Is.

package bs

import "errors"

var (
	// ErrBatchLength is returned when the contract and spot slices of a
	// batch call differ in length.
	ErrBatchLength = errors.New("bs: contracts and spots differ in length")

	// ErrBadGreek is returned when the batch evaluator is asked for an
	// unknown sensitivity.
	ErrBadGreek = errors.New("bs: unknown greek")
)

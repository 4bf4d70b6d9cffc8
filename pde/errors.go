// SPDX-License-Identifier: MIT
// Package pde: sentinel error set, matched via errors.Is.

package pde

import "errors"

var (
	// ErrBadGrid is returned when an axis is empty, not strictly
	// increasing, or has fewer than three points.
	ErrBadGrid = errors.New("pde: grid axes must be strictly increasing with >= 3 points")

	// ErrBadTimes is returned when the time levels are not strictly
	// increasing or fewer than two.
	ErrBadTimes = errors.New("pde: time levels must be strictly increasing with >= 2 points")

	// ErrBadBoundary is returned for a malformed boundary condition set
	// (wrong pair count, nil value function, zero Robin derivative weight).
	ErrBadBoundary = errors.New("pde: invalid boundary conditions")

	// ErrBadTerminal is returned when the terminal condition is nil.
	ErrBadTerminal = errors.New("pde: terminal condition must not be nil")

	// ErrBadConfig is returned for unrecognized scheme or option values.
	ErrBadConfig = errors.New("pde: invalid options")

	// ErrDimensionMismatch is returned when the model dimension does not
	// match the grid dimension.
	ErrDimensionMismatch = errors.New("pde: model and grid dimensions differ")

	// ErrUnstableStep is returned when the explicit scheme violates its
	// CFL bound and auto-adjustment is off (or exhausted). The check runs
	// before any time-stepping.
	ErrUnstableStep = errors.New("pde: explicit step size violates stability bound")

	// ErrLinearSolve wraps a failure of the linear-system collaborator.
	ErrLinearSolve = errors.New("pde: linear solve failed")

	// ErrBadQuery is returned by Surface queries outside the covered
	// time-space domain.
	ErrBadQuery = errors.New("pde: query outside surface domain")
)

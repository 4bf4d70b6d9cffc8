// SPDX-License-Identifier: MIT
// Package simulate: sentinel error set, matched via errors.Is.

package simulate

import "errors"

var (
	// ErrBadTimes is returned when the time grid is not strictly
	// increasing or has fewer than two points.
	ErrBadTimes = errors.New("simulate: time grid must be strictly increasing with >= 2 points")

	// ErrBadInitial is returned when the initial state length does not
	// match the model dimension.
	ErrBadInitial = errors.New("simulate: initial state does not match model dimension")

	// ErrBadPaths is returned when the path count is < 1.
	ErrBadPaths = errors.New("simulate: path count must be >= 1")

	// ErrBadOptions is returned for unrecognized scheme/policy values.
	ErrBadOptions = errors.New("simulate: invalid options")

	// ErrSchemeUnsupported is returned at validation time when the Exact
	// scheme is requested for a model without an ExactStepper.
	ErrSchemeUnsupported = errors.New("simulate: scheme unsupported by process model")

	// ErrStreamDim is returned when the stream dimension matches neither
	// the per-step draw budget of the model nor the whole-path budget
	// (steps × per-step budget, one point per path).
	ErrStreamDim = errors.New("simulate: stream dimension does not match draw budget")

	// ErrDomainViolation is returned under DomainFail when a state leaves
	// the model's admissible domain mid-run. It wraps
	// process.ErrStateDomain together with path and step context.
	ErrDomainViolation = errors.New("simulate: state left admissible domain")
)

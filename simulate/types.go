// SPDX-License-Identifier: MIT

package simulate

import "github.com/katalvlaran/quantcore/noise"

// Scheme selects the discretization update rule.
type Scheme int

const (
	// EulerMaruyama is the first-order universal scheme.
	EulerMaruyama Scheme = iota
	// Milstein adds the diagonal second-order correction; requires the
	// model's DiffusionDeriver capability (observable downgrade otherwise).
	Milstein
	// Exact uses the model's closed-form transition (ExactStepper).
	Exact
)

// String implements fmt.Stringer for diagnostics.
func (s Scheme) String() string {
	switch s {
	case EulerMaruyama:
		return "euler-maruyama"
	case Milstein:
		return "milstein"
	case Exact:
		return "exact"
	default:
		return "unknown"
	}
}

// DomainPolicy decides how a mid-run domain violation is handled.
type DomainPolicy int

const (
	// DomainFail aborts the simulation (default, conservative).
	DomainFail DomainPolicy = iota
	// DomainClip floors offending state components at zero and retries.
	DomainClip
	// DomainReflect mirrors offending components to their absolute value.
	DomainReflect
)

// Options configures a simulation run. The zero value is NOT valid;
// start from DefaultOptions.
//   - Scheme: update rule (default EulerMaruyama).
//   - Policy: domain-violation handling (default DomainFail).
//   - Transform: uniform→Gaussian method (default noise.InverseCDF,
//     quasi-random safe).
//   - Bridge: Brownian-bridge reordering of each factor's increments —
//     pair with Sobol streams so low dimensions carry coarse path shape.
//   - Parallel: worker count for the path fan-out; <= 1 runs serial.
//     The result is bit-identical for every value.
type Options struct {
	Scheme    Scheme
	Policy    DomainPolicy
	Transform noise.Method
	Bridge    bool
	Parallel  int
}

// DefaultOptions returns production-safe defaults.
func DefaultOptions() Options {
	return Options{
		Scheme:    EulerMaruyama,
		Policy:    DomainFail,
		Transform: noise.InverseCDF,
		Bridge:    false,
		Parallel:  0,
	}
}

// PathBatch holds simulated trajectories: for each path p and time index
// i, a state vector of dimension Dim. Storage is one flat slice; At
// returns in-place views, so treat them as read-only or copy.
type PathBatch struct {
	Times []float64
	Paths int
	Dim   int

	data []float64
}

// newPathBatch allocates a zeroed batch.
func newPathBatch(times []float64, paths, dim int) *PathBatch {
	return &PathBatch{
		Times: append([]float64(nil), times...),
		Paths: paths,
		Dim:   dim,
		data:  make([]float64, paths*len(times)*dim),
	}
}

// At returns the state of path p at time index i as a slice view.
func (b *PathBatch) At(p, i int) []float64 {
	off := (p*len(b.Times) + i) * b.Dim
	return b.data[off : off+b.Dim : off+b.Dim]
}

// Terminal returns the state of path p at the last time index.
func (b *PathBatch) Terminal(p int) []float64 {
	return b.At(p, len(b.Times)-1)
}

// Steps reports the number of time steps (len(Times)-1).
func (b *PathBatch) Steps() int { return len(b.Times) - 1 }

// Report carries run diagnostics next to the result — warnings are
// returned, never logged or swallowed.
type Report struct {
	// Requested and Used schemes; Downgraded marks a Milstein→Euler
	// capability downgrade.
	Requested  Scheme
	Used       Scheme
	Downgraded bool

	// DomainFixes counts clip/reflect interventions across all paths.
	DomainFixes int

	// Jumps counts applied jump events across all paths.
	Jumps int
}

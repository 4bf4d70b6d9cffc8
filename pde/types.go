// SPDX-License-Identifier: MIT

package pde

// Scheme selects the time-stepping rule, parameterized as a θ-scheme:
// the implicit operator carries weight θ, the explicit remainder 1-θ.
type Scheme int

const (
	// Explicit (θ=0) is first-order and conditionally stable; the solver
	// computes its CFL bound up front and rejects unstable steps.
	Explicit Scheme = iota
	// Implicit (θ=1) is first-order and unconditionally stable.
	Implicit
	// CrankNicolson (θ=½) is second-order in time and unconditionally
	// stable.
	CrankNicolson
)

// theta returns the implicit weight of the scheme.
func (s Scheme) theta() float64 {
	switch s {
	case Implicit:
		return 1
	case CrankNicolson:
		return 0.5
	default:
		return 0
	}
}

// String implements fmt.Stringer for diagnostics.
func (s Scheme) String() string {
	switch s {
	case Explicit:
		return "explicit"
	case Implicit:
		return "implicit"
	case CrankNicolson:
		return "crank-nicolson"
	default:
		return "unknown"
	}
}

// BoundaryKind classifies a boundary condition.
type BoundaryKind int

const (
	// Dirichlet pins the boundary value: V = Value(t, x).
	Dirichlet BoundaryKind = iota
	// Neumann pins the outward-axis derivative: ∂V/∂x_k = Value(t, x),
	// approximated with a one-sided first-order stencil in the boundary
	// row.
	Neumann
	// Robin pins a linear combination: Alpha·V + Beta·∂V/∂x_k = Value(t, x).
	Robin
)

// Boundary is one face's condition. Value receives the time level and the
// full node coordinate; it must not be nil. Alpha and Beta are used by
// Robin only, and Beta must be nonzero there.
type Boundary struct {
	Kind  BoundaryKind
	Alpha float64
	Beta  float64
	Value func(t float64, x []float64) float64
}

// BoundaryPair carries the two faces of one axis.
type BoundaryPair struct {
	Lower Boundary
	Upper Boundary
}

// DirichletConst is a convenience constructor for a fixed-value face.
func DirichletConst(v float64) Boundary {
	return Boundary{Kind: Dirichlet, Value: func(float64, []float64) float64 { return v }}
}

// NeumannConst is a convenience constructor for a fixed-slope face.
func NeumannConst(q float64) Boundary {
	return Boundary{Kind: Neumann, Value: func(float64, []float64) float64 { return q }}
}

// Options configures a solve. Start from DefaultOptions.
//   - Scheme: time-stepping rule (default CrankNicolson).
//   - Rate: flat discount rate r in the reaction term -r·V.
//   - AutoAdjust + MaxRetries: on explicit CFL violation, halve the step
//     (substepping the level) up to MaxRetries times instead of failing.
//   - Obstacle: early-exercise floor applied after each step as
//     V = max(V, Obstacle(t, x)); nil means no constraint.
//   - SweepOrder: ADI dimension order for multi-dimensional grids; empty
//     means ascending 0..d-1.
//   - Solver: tridiagonal-system collaborator; nil selects the gonum
//     LAPACK-backed default.
type Options struct {
	Scheme     Scheme
	Rate       float64
	AutoAdjust bool
	MaxRetries int
	Obstacle   func(t float64, x []float64) float64
	SweepOrder []int
	Solver     LinearSolver
}

// DefaultOptions returns production-safe defaults.
func DefaultOptions() Options {
	return Options{
		Scheme:     CrankNicolson,
		Rate:       0,
		AutoAdjust: false,
		MaxRetries: 8,
	}
}

// Report carries solve diagnostics next to the result.
type Report struct {
	// Steps counts time updates actually performed, substeps included.
	Steps int

	// Refined counts CFL-driven step halvings across all levels.
	Refined int

	// Upwinded counts node evaluations where the drift stencil switched
	// to one-sided because the cell Péclet number exceeded 2.
	Upwinded int

	// GridTooCoarse warns that at least one cell ran upwinded, dropping
	// the spatial order to one locally. Non-fatal; refine the grid near
	// the flagged regions to restore second-order accuracy.
	GridTooCoarse bool
}

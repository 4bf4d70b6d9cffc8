// SPDX-License-Identifier: MIT

// Package pde solves backward Feynman-Kac equations
//
//	∂V/∂t + b·∇V + ½ tr(σσᵀ·∇²V) - r·V = 0
//
// on tensor-product grids: the lattice counterpart of the Monte-Carlo
// engine, sharing the same process models for drift and diffusion.
//
// # 🚀 What you get
//
//   - Grid — strictly increasing, possibly non-uniform axes; one per
//     state dimension.
//   - Boundary / BoundaryPair — Dirichlet, Neumann and Robin faces with
//     time-dependent values.
//   - Solve — the backward time-stepper, from a terminal condition to
//     the first time level, returning a full Surface plus a Report.
//   - Surface — values per (time level, node) with interpolated
//     off-grid queries.
//   - LinearSolver — the tridiagonal-system collaborator; the default
//     is gonum's mat.Tridiag factorization.
//
// # ✨ Numerics
//
//   - Space: second-order central stencils on non-uniform spacing;
//     drift switches per node to one-sided upwind when the cell Péclet
//     number exceeds 2, flagged in the Report as GridTooCoarse.
//   - Time: θ-scheme — Explicit, Implicit or CrankNicolson. The
//     explicit scheme computes its CFL bound for every level before any
//     stepping and fails with ErrUnstableStep, or halves the step up to
//     MaxRetries times when AutoAdjust is on.
//   - Dimension ≥ 2: Douglas splitting; every sweep is one tridiagonal
//     solve per grid line, mixed derivatives handled explicitly.
//   - American constraints: post-step projection V = max(V, Obstacle).
//
// # ⚙️ Example: Black-Scholes call, Crank-Nicolson
//
//	gbm, _ := process.NewGBM(0.05, 0.2)
//	grid, _ := pde.NewGrid(spots)           // e.g. 0 … 4·strike
//	bcs := []pde.BoundaryPair{{
//		Lower: pde.DirichletConst(0),
//		Upper: pde.Boundary{Kind: pde.Dirichlet, Value: callUpper},
//	}}
//	opts := pde.DefaultOptions()
//	opts.Rate = 0.05
//	surf, rep, err := pde.Solve(gbm, payoff, grid, bcs, times, &opts)
//
// # 🧯 Errors
//
// Construction problems (grid, times, boundaries, options) surface as
// package sentinels before any stepping; mid-solve failures are limited
// to ErrLinearSolve and coefficient-domain errors, both wrapped with
// the level index.
package pde

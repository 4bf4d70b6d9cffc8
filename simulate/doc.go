// SPDX-License-Identifier: MIT

// Package simulate time-steps Itô process models along a time grid,
// producing batched state trajectories (a PathBatch).
//
// 🚀 Discretization schemes
//
//   - EulerMaruyama — x' = x + μ·dt + σ·dW. First order, universal.
//   - Milstein — adds ½·σ·∂σ/∂x·(dW²-dt) per diagonal factor. Requires
//     the model's DiffusionDeriver capability and diagonal noise
//     (Dim == Factors); otherwise the simulator downgrades to
//     Euler–Maruyama and records the downgrade in the Report — never
//     silently.
//   - Exact — delegates to the model's ExactStepper (closed-form
//     transition; zero discretization error). Unsupported models fail
//     with ErrSchemeUnsupported at validation time.
//
// ⚙️ Mechanics per step, from t_i to t_{i+1} (grids may be non-uniform;
// coefficients are re-evaluated every step):
//
//	draw uniforms → Gaussian increments (inverse CDF or Box–Muller,
//	optionally Brownian-bridge reordered) → evaluate μ, σ at (t_i, x_i)
//	→ scheme update → optional jump thinning (JumpDiffuser) → x_{i+1}
//
// Domain policy: when coefficient evaluation reports ErrStateDomain the
// configured policy decides — DomainFail aborts (default, conservative),
// DomainClip floors offending components at zero, DomainReflect mirrors
// them; interventions are counted in the Report.
//
// 🔀 Parallelism & reproducibility
//
//	The per-step draw budget is Factors(), plus 2 for jump-capable
//	models (thinning uniform + jump-size normal). A stream of exactly
//	that dimension is split once into one sub-stream per path
//	(sequence.Stream.Split is deterministic). A stream of dimension
//	steps × budget instead contributes one whole point per path,
//	addressed by absolute index — the quasi-random allocation, which
//	keeps a Sobol stream's full low-discrepancy structure across the
//	trajectory. Paths are fanned out over an errgroup either way, and
//	per-path trajectories are bit-identical for any worker count,
//	including serial runs.
//
// Example — the classic sanity check:
//
//	gbm, _ := process.NewGBM(0.05, 0.2)
//	st, _ := sequence.NewSplitMix(42, 1)
//	batch, rep, err := simulate.Simulate(gbm, st, times, 10000, nil)
//
// See example_test.go and the package tests for martingale and
// reproducibility properties.
package simulate

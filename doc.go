// SPDX-License-Identifier: MIT

// Package quantcore is an in-process numerical core for quantitative
// finance — from low-discrepancy sequences and copula sampling up to
// Itô-process path simulation and Feynman–Kac PDE pricing.
//
// 🚀 What is quantcore?
//
//	A deterministic, reproducible library that brings together:
//		• Sequence generation: splittable pseudo-random streams & Sobol points
//		• Noise shaping: Gaussian transforms, Cholesky correlation, Brownian bridge
//		• Copulas: Gaussian, Student-t, Clayton dependent uniforms
//		• Process models: GBM, Ornstein–Uhlenbeck, CIR, Heston, Hull–White, Merton
//		• Path simulation: Euler–Maruyama, Milstein, exact stepping
//		• PDE pricing: θ-schemes, Péclet-aware upwinding, ADI splitting
//		• Closed forms: Black–Scholes vanilla prices & greeks
//
// ✨ Why choose quantcore?
//
//   - Reproducible by construction – every random draw flows through an
//     explicit, splittable Stream; same seed, same bits, always
//   - No hidden state – models and schemes are immutable configuration,
//     grids and streams are exclusively owned by one run
//   - Rock-solid numerics – gonum-backed linear algebra and distributions
//   - Extensible – new process variants implement small capability
//     interfaces, never subclass a base
//
// Under the hood, everything is organized by package:
//
//	sequence/ — uniform [0,1)^d streams: SplitMix64 pseudo & Sobol quasi-random
//	noise/    — uniforms → Gaussian increments, correlation, Brownian bridge
//	copula/   — dependency-structured uniform marginals
//	process/  — drift/diffusion/jump coefficient models (capability interfaces)
//	simulate/ — batched path simulation across discretization schemes
//	pde/      — finite-difference Feynman–Kac solver on tensor-product grids
//	bs/       — Black–Scholes closed-form references
//
// Data flows one way:
//
//	sequence ──► noise ──► simulate ──► PathBatch
//	      └──► copula ──┘        │
//	process ─────────────────────┘
//	process ──► pde ──► Surface
//
// Dive into each package's doc.go for tutorials, complexity notes and
// worked examples.
//
//	go get github.com/katalvlaran/quantcore
package quantcore

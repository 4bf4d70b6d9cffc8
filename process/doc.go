// SPDX-License-Identifier: MIT

// Package process defines Itô process models: pure, immutable coefficient
// evaluators of the form
//
//	dX_t = μ(t, X_t) dt + σ(t, X_t) dW_t  (+ jumps)
//
// 🚀 Capability model
//
//	Every model implements the small Process interface (Dim, Factors,
//	Drift, Diffusion). Optional abilities are separate interfaces the
//	consumer queries explicitly — never runtime type inspection of a
//	concrete hierarchy:
//
//	  • DiffusionDeriver — ∂σ/∂x for the Milstein correction. A simulator
//	    asked for Milstein on a model without it downgrades to
//	    Euler–Maruyama and reports the downgrade.
//	  • ExactStepper — closed-form transition sampling (GBM, OU), letting
//	    the simulator bypass discretization error entirely.
//	  • JumpDiffuser — jump intensity and jump application for
//	    jump-diffusion variants (Merton).
//
// Variants provided:
//
//	GBM                — geometric Brownian motion (exact step, deriv)
//	OrnsteinUhlenbeck  — Gaussian mean reversion / Vasicek (exact step)
//	CIR                — square-root mean reversion, positivity domain
//	Heston             — stochastic variance, 2 states / 2 factors with
//	                     internal spot–variance correlation
//	HullWhite          — one-factor short rate with time-dependent level
//	Merton             — GBM with lognormal jumps
//	Func               — arbitrary user-supplied coefficients
//
// Contracts: coefficient evaluation has no side effects and no internal
// mutable state; a model may be shared by any number of concurrent
// simulations and PDE solves. Evaluation outside the admissible domain
// (e.g. negative variance for CIR/Heston) fails with ErrStateDomain —
// handling the violation (fail/clip/reflect) is the simulator's policy.
package process

// SPDX-License-Identifier: MIT

// Package noise turns uniform samples from package sequence into the
// driving noise a stochastic process consumes.
//
// 🚀 What does it do?
//
//	Three independent transforms, composable in a pipeline:
//
//	  • Gaussian — maps uniforms in [0,1) to standard normal variates.
//	    InverseCDF (default) preserves the low-discrepancy structure of
//	    quasi-random points; BoxMuller is available for pseudo-random use.
//
//	  • Correlator — imposes a correlation matrix on iid normals via the
//	    Cholesky factor L (z ← L·z). Construction fails with
//	    ErrNonPositiveDefinite when the matrix admits no factorization.
//
//	  • Bridge — Brownian-bridge construction: fills a Wiener path over an
//	    arbitrary time grid in variance-ordered fashion (terminal point
//	    first, then recursive midpoints with the exact conditional
//	    mean/variance). Pairing Bridge with Sobol points concentrates the
//	    most important path features in the lowest, best-distributed
//	    dimensions, decoupling dimension allocation from step count.
//
// ⚙️ Usage:
//
//	u, _ := stream.Next(paths)            // uniforms, dim = steps
//	z, _ := noise.Gaussian(u, noise.InverseCDF)
//	br, _ := noise.NewBridge(times)
//	w := make([]float64, br.Steps())
//	br.Transform(z[p], w)                 // Wiener values at times[1:]
//
// Determinism: every transform is a pure function of its inputs; all
// randomness stays in the caller's Stream.
package noise

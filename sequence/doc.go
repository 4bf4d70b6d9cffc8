// SPDX-License-Identifier: MIT

// Package sequence produces uniform samples in [0,1)^d — the single source
// of randomness for every stochastic component in quantcore.
//
// 🚀 What is a Stream?
//
//	A Stream is an opaque, exclusively-owned cursor over a deterministic
//	sequence of d-dimensional points. Two families are provided:
//
//	  • SplitMix — pseudo-random, counter-based (Steele–Lea–Flood
//	    splittable generator). O(1) Skip, O(1) deterministic Split into
//	    statistically independent sub-streams. Sub-streams are derived
//	    through the documented mix/mixGamma functions, never by re-seeding
//	    with arithmetically related integers.
//
//	  • Sobol — quasi-random (low-discrepancy) digital sequence built on
//	    an embedded direction-number table. Consecutive blocks of 2^m
//	    points are equidistributed per coordinate: each interval of width
//	    2^-m holds exactly one point. Dimension support is bounded by the
//	    table (MaxDim); beyond it construction fails with
//	    ErrDimensionUnsupported.
//
// ✨ Guarantees:
//
//   - Reproducibility — same seed/dimension/skip always yields the same
//     output, independent of how draws are batched across Next calls.
//   - Ordered draws — within one Stream, draws are strictly ordered.
//     A Stream must never be shared across goroutines; Split first.
//   - Deterministic splitting — Split(k) depends only on stream state and
//     the split index, so any worker partition reproduces the same draws.
//
// ⚙️ Usage:
//
//	st := sequence.NewSplitMix(42, 3)   // 3-dimensional pseudo stream
//	pts, err := st.Next(1024)           // 1024 × 3 uniforms in [0,1)
//
//	sub, err := st.Split(8)             // 8 independent sub-streams
//
//	qs, err := sequence.NewSobol(5, nil) // 5-dimensional Sobol points
//
// Complexity:
//
//   - SplitMix: O(1) per value, O(1) Skip and Split.
//   - Sobol: O(log n) XORs per coordinate (direct Gray-code assembly),
//     O(1) Skip.
//
// See example_test.go for worked examples.
package sequence

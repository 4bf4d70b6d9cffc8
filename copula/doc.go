// SPDX-License-Identifier: MIT

// Package copula generates dependency-structured uniform marginals —
// vectors in [0,1)^d whose components are each uniform but jointly carry
// a chosen dependence structure.
//
// 🚀 Families:
//
//   - Gaussian — correlated normals pushed through Φ. Dependence fully
//     described by a correlation matrix; no tail dependence.
//
//   - Student-t — correlated normals with chi-square variance mixing,
//     pushed through the t CDF. Same correlation shape as Gaussian plus
//     symmetric tail dependence controlled by ν.
//
//   - Clayton (Archimedean) — Marshall–Olkin frontier construction with a
//     Gamma(1/θ) mixing variable and generator ψ(t) = (1+t)^(-1/θ).
//     Lower-tail dependence grows with θ.
//
// ⚙️ Usage:
//
//	cop, err := copula.NewStudentT(corr, 4)   // corr 3×3 ⇒ needs 4 uniforms
//	st, _ := sequence.NewSobol(cop.Uniforms(), nil)
//	u, err := cop.Sample(st, 10000)           // 10000 × 3 dependent uniforms
//
// Every sampler consumes exactly Uniforms() stream coordinates per output
// vector, so quasi-random dimension budgeting stays explicit. Parameter
// domains are validated at construction (ErrInvalidParameters); sampling
// itself is a pure transform of the stream's output and inherits the
// stream's reproducibility contract.
package copula

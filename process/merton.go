// SPDX-License-Identifier: MIT

package process

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Merton is geometric Brownian motion with lognormal jumps: between
// jumps dS = μS dt + σS dW; jumps arrive at rate λ and multiply the
// state by exp(μJ + δJ·Z). The continuous part carries every GBM
// capability; the jump part is exposed through JumpDiffuser and applied
// by the simulator via per-step thinning.
type Merton struct {
	gbm         GBM
	lambda      float64
	muJ, deltaJ float64
}

// NewMerton validates σ > 0, λ >= 0, δJ >= 0.
func NewMerton(mu, sigma, lambda, muJ, deltaJ float64) (*Merton, error) {
	g, err := NewGBM(mu, sigma)
	if err != nil {
		return nil, err
	}
	if lambda < 0 || deltaJ < 0 || math.IsNaN(muJ) {
		return nil, ErrBadParams
	}
	return &Merton{gbm: *g, lambda: lambda, muJ: muJ, deltaJ: deltaJ}, nil
}

// Dim reports the state dimension (1).
func (m *Merton) Dim() int { return 1 }

// Factors reports the driving factor count (1).
func (m *Merton) Factors() int { return 1 }

// Drift writes μ·S.
func (m *Merton) Drift(t float64, x, dst []float64) error {
	return m.gbm.Drift(t, x, dst)
}

// Diffusion writes σ·S.
func (m *Merton) Diffusion(t float64, x []float64, dst *mat.Dense) error {
	return m.gbm.Diffusion(t, x, dst)
}

// DiffusionDeriv writes σ.
func (m *Merton) DiffusionDeriv(t float64, x, dst []float64) error {
	return m.gbm.DiffusionDeriv(t, x, dst)
}

// JumpIntensity reports the constant arrival rate λ.
func (m *Merton) JumpIntensity(_ float64, _ []float64) float64 { return m.lambda }

// ApplyJump multiplies the state by the lognormal jump exp(μJ + δJ·z).
func (m *Merton) ApplyJump(_ float64, x []float64, z float64, dst []float64) error {
	if len(x) != 1 || len(dst) != 1 {
		return ErrDimensionMismatch
	}
	dst[0] = x[0] * math.Exp(m.muJ+m.deltaJ*z)
	return nil
}

// Compensator reports λ·(E[jump]-1) = λ·(exp(μJ+δJ²/2)-1), the drift
// adjustment that makes the discounted process a martingale under a
// risk-neutral μ.
func (m *Merton) Compensator() float64 {
	return m.lambda * (math.Exp(m.muJ+0.5*m.deltaJ*m.deltaJ) - 1)
}

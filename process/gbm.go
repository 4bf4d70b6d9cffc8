// SPDX-License-Identifier: MIT

package process

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// GBM is geometric Brownian motion dS = μS dt + σS dW. One state, one
// factor. Exposes the exact log-normal transition and the Milstein
// derivative, so every discretization scheme applies.
type GBM struct {
	mu, sigma float64
}

// NewGBM validates σ > 0 and returns an immutable model.
func NewGBM(mu, sigma float64) (*GBM, error) {
	if !(sigma > 0) || math.IsInf(sigma, 1) || math.IsInf(mu, 0) || math.IsNaN(mu) {
		return nil, ErrBadParams
	}
	return &GBM{mu: mu, sigma: sigma}, nil
}

// Dim reports the state dimension (1).
func (g *GBM) Dim() int { return 1 }

// Factors reports the driving factor count (1).
func (g *GBM) Factors() int { return 1 }

// Drift writes μ·S.
func (g *GBM) Drift(_ float64, x, dst []float64) error {
	if err := checkShape(x, dst, 1); err != nil {
		return err
	}
	dst[0] = g.mu * x[0]
	return nil
}

// Diffusion writes σ·S.
func (g *GBM) Diffusion(_ float64, x []float64, dst *mat.Dense) error {
	if len(x) != 1 {
		return ErrDimensionMismatch
	}
	dst.Set(0, 0, g.sigma*x[0])
	return nil
}

// DiffusionDeriv writes ∂(σS)/∂S = σ.
func (g *GBM) DiffusionDeriv(_ float64, x, dst []float64) error {
	if err := checkShape(x, dst, 1); err != nil {
		return err
	}
	dst[0] = g.sigma
	return nil
}

// ExactStep samples the exact log-normal transition
// S' = S·exp((μ-σ²/2)dt + σ√dt·z).
func (g *GBM) ExactStep(_, dt float64, x, z, dst []float64) error {
	if len(x) != 1 || len(z) != 1 || len(dst) != 1 {
		return ErrDimensionMismatch
	}
	dst[0] = x[0] * math.Exp((g.mu-0.5*g.sigma*g.sigma)*dt+g.sigma*math.Sqrt(dt)*z[0])
	return nil
}

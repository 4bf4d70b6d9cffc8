// SPDX-License-Identifier: MIT

package process

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Heston is the stochastic-variance model
//
//	dS = μS dt + √v·S dW₁
//	dv = κ(θ - v) dt + ξ√v (ρ dW₁ + sqrt(1-ρ²) dW₂)
//
// State is (S, v); two independent driving factors with the spot–variance
// correlation ρ folded into the diffusion matrix, so simulators feed it
// plain iid normals.
type Heston struct {
	mu, kappa, theta, xi, rho float64
	rhoBar                    float64 // sqrt(1-ρ²), precomputed
}

// NewHeston validates κ, θ, ξ > 0 and ρ ∈ (-1, 1).
func NewHeston(mu, kappa, theta, xi, rho float64) (*Heston, error) {
	if !(kappa > 0) || !(theta > 0) || !(xi > 0) || !(rho > -1 && rho < 1) {
		return nil, ErrBadParams
	}
	return &Heston{
		mu: mu, kappa: kappa, theta: theta, xi: xi, rho: rho,
		rhoBar: math.Sqrt(1 - rho*rho),
	}, nil
}

// Dim reports the state dimension (2: spot, variance).
func (h *Heston) Dim() int { return 2 }

// Factors reports the driving factor count (2).
func (h *Heston) Factors() int { return 2 }

// Feller reports whether the Feller condition 2κθ >= ξ² holds, i.e.
// whether the variance process stays strictly positive.
func (h *Heston) Feller() bool { return 2*h.kappa*h.theta >= h.xi*h.xi }

// Drift writes (μS, κ(θ-v)).
func (h *Heston) Drift(_ float64, x, dst []float64) error {
	if err := checkShape(x, dst, 2); err != nil {
		return err
	}
	dst[0] = h.mu * x[0]
	dst[1] = h.kappa * (h.theta - x[1])
	return nil
}

// Diffusion writes the 2×2 factor loading
//
//	[ √v·S        0            ]
//	[ ξρ√v        ξ·sqrt(1-ρ²)·√v ]
//
// v < 0 is outside the admissible domain.
func (h *Heston) Diffusion(_ float64, x []float64, dst *mat.Dense) error {
	if len(x) != 2 {
		return ErrDimensionMismatch
	}
	v := x[1]
	if v < 0 {
		return ErrStateDomain
	}
	sv := math.Sqrt(v)
	dst.Set(0, 0, sv*x[0])
	dst.Set(0, 1, 0)
	dst.Set(1, 0, h.xi*h.rho*sv)
	dst.Set(1, 1, h.xi*h.rhoBar*sv)
	return nil
}

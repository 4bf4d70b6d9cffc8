// SPDX-License-Identifier: MIT

package process

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// OrnsteinUhlenbeck is the Gaussian mean-reverting process (Vasicek when
// used as a short rate): dX = κ(θ - X) dt + σ dW. The transition is
// Gaussian with closed-form mean and variance, so ExactStep is available.
type OrnsteinUhlenbeck struct {
	kappa, theta, sigma float64
}

// NewOrnsteinUhlenbeck validates κ > 0 and σ > 0.
func NewOrnsteinUhlenbeck(kappa, theta, sigma float64) (*OrnsteinUhlenbeck, error) {
	if !(kappa > 0) || !(sigma > 0) || math.IsNaN(theta) || math.IsInf(theta, 0) {
		return nil, ErrBadParams
	}
	return &OrnsteinUhlenbeck{kappa: kappa, theta: theta, sigma: sigma}, nil
}

// Dim reports the state dimension (1).
func (o *OrnsteinUhlenbeck) Dim() int { return 1 }

// Factors reports the driving factor count (1).
func (o *OrnsteinUhlenbeck) Factors() int { return 1 }

// Drift writes κ(θ - x).
func (o *OrnsteinUhlenbeck) Drift(_ float64, x, dst []float64) error {
	if err := checkShape(x, dst, 1); err != nil {
		return err
	}
	dst[0] = o.kappa * (o.theta - x[0])
	return nil
}

// Diffusion writes the constant σ.
func (o *OrnsteinUhlenbeck) Diffusion(_ float64, x []float64, dst *mat.Dense) error {
	if len(x) != 1 {
		return ErrDimensionMismatch
	}
	dst.Set(0, 0, o.sigma)
	return nil
}

// ExactStep samples the exact Gaussian transition:
// X' = θ + (X-θ)e^{-κdt} + σ·sqrt((1-e^{-2κdt})/(2κ))·z.
func (o *OrnsteinUhlenbeck) ExactStep(_, dt float64, x, z, dst []float64) error {
	if len(x) != 1 || len(z) != 1 || len(dst) != 1 {
		return ErrDimensionMismatch
	}
	decay := math.Exp(-o.kappa * dt)
	sd := o.sigma * math.Sqrt((1-decay*decay)/(2*o.kappa))
	dst[0] = o.theta + (x[0]-o.theta)*decay + sd*z[0]
	return nil
}

// CIR is the Cox–Ingersoll–Ross square-root process
// dX = κ(θ - X) dt + σ√X dW, with admissible domain X >= 0. Evaluating
// the diffusion at negative state fails with ErrStateDomain; the
// simulator's domain policy decides whether that is fatal.
type CIR struct {
	kappa, theta, sigma float64
}

// NewCIR validates κ, θ, σ > 0.
func NewCIR(kappa, theta, sigma float64) (*CIR, error) {
	if !(kappa > 0) || !(theta > 0) || !(sigma > 0) {
		return nil, ErrBadParams
	}
	return &CIR{kappa: kappa, theta: theta, sigma: sigma}, nil
}

// Dim reports the state dimension (1).
func (c *CIR) Dim() int { return 1 }

// Factors reports the driving factor count (1).
func (c *CIR) Factors() int { return 1 }

// Drift writes κ(θ - x).
func (c *CIR) Drift(_ float64, x, dst []float64) error {
	if err := checkShape(x, dst, 1); err != nil {
		return err
	}
	dst[0] = c.kappa * (c.theta - x[0])
	return nil
}

// Diffusion writes σ√x; x < 0 is outside the admissible domain.
func (c *CIR) Diffusion(_ float64, x []float64, dst *mat.Dense) error {
	if len(x) != 1 {
		return ErrDimensionMismatch
	}
	if x[0] < 0 {
		return ErrStateDomain
	}
	dst.Set(0, 0, c.sigma*math.Sqrt(x[0]))
	return nil
}

// DiffusionDeriv writes ∂(σ√x)/∂x = σ/(2√x).
func (c *CIR) DiffusionDeriv(_ float64, x, dst []float64) error {
	if err := checkShape(x, dst, 1); err != nil {
		return err
	}
	if x[0] <= 0 {
		return ErrStateDomain
	}
	dst[0] = c.sigma / (2 * math.Sqrt(x[0]))
	return nil
}

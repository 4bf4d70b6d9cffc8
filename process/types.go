// SPDX-License-Identifier: MIT

package process

import "gonum.org/v1/gonum/mat"

// Process is the minimal capability set of an Itô process model: pure
// evaluation of drift and diffusion coefficients. Implementations are
// immutable after construction and safe for unlimited concurrent reads.
type Process interface {
	// Dim reports the state dimension d.
	Dim() int

	// Factors reports the number m of driving Brownian factors.
	Factors() int

	// Drift writes μ(t, x) into dst (length d).
	Drift(t float64, x, dst []float64) error

	// Diffusion writes σ(t, x) into dst (d × m).
	Diffusion(t float64, x []float64, dst *mat.Dense) error
}

// DiffusionDeriver is the optional Milstein capability for diagonal-noise
// models: the state derivative of each diagonal diffusion coefficient.
type DiffusionDeriver interface {
	// DiffusionDeriv writes ∂σ_i(t,x)/∂x_i into dst (length d).
	DiffusionDeriv(t float64, x, dst []float64) error
}

// ExactStepper is the optional closed-form transition capability: one
// exact step of length dt driven by standard normals z (length Factors()).
// Simulators use it to bypass discretization error entirely.
type ExactStepper interface {
	ExactStep(t, dt float64, x, z, dst []float64) error
}

// JumpDiffuser is the optional jump capability. A simulator thins jumps
// per step (probability ≈ intensity·dt) and applies them with one extra
// standard normal for the jump size.
type JumpDiffuser interface {
	// JumpIntensity reports the instantaneous jump arrival rate λ(t, x).
	JumpIntensity(t float64, x []float64) float64

	// ApplyJump writes the post-jump state into dst given pre-jump state
	// x and a standard normal z driving the jump size.
	ApplyJump(t float64, x []float64, z float64, dst []float64) error
}

// checkShape validates the common Drift/Diffusion slice contract.
func checkShape(x, dst []float64, d int) error {
	if len(x) != d || len(dst) != d {
		return ErrDimensionMismatch
	}
	return nil
}

/// Func is an arbitrary user-defined process: plug in coefficient
// closures. Optional capabilities are exposed when the corresponding
// field is non-nil — Func deliberately implements only the base Process
// interface; wrap it if a custom model needs Milstein or exact stepping.
type Func struct {
	D, M        int
	DriftFn     func(t float64, x, dst []float64) error
	DiffusionFn func(t float64, x []float64, dst *mat.Dense) error
}

// NewFunc validates dimensions and coefficient closures.
func NewFunc(dim, factors int, drift func(t float64, x, dst []float64) error, diffusion func(t float64, x []float64, dst *mat.Dense) error) (*Func, error) {
	if dim < 1 || factors < 1 || drift == nil || diffusion == nil {
		return nil, ErrBadParams
	}
	return &Func{D: dim, M: factors, DriftFn: drift, DiffusionFn: diffusion}, nil
}

// Dim reports the state dimension.
func (f *Func) Dim() int { return f.D }

// Factors reports the driving factor count.
func (f *Func) Factors() int { return f.M }

// Drift evaluates the user drift closure.
func (f *Func) Drift(t float64, x, dst []float64) error {
	if err := checkShape(x, dst, f.D); err != nil {
		return err
	}
	return f.DriftFn(t, x, dst)
}

// Diffusion evaluates the user diffusion closure.
func (f *Func) Diffusion(t float64, x []float64, dst *mat.Dense) error {
	if len(x) != f.D {
		return ErrDimensionMismatch
	}
	return f.DiffusionFn(t, x, dst)
}

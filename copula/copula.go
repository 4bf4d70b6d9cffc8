// SPDX-License-Identifier: MIT

package copula

import (
	"fmt"
	"math"

	"github.com/katalvlaran/quantcore/noise"
	"github.com/katalvlaran/quantcore/sequence"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Sampler draws dependent uniform vectors from a fixed copula family.
// Implementations are immutable after construction and safe for
// concurrent use; all mutable state lives in the caller's Stream.
type Sampler interface {
	// Sample draws count dependent uniform vectors of dimension Dim(),
	// consuming exactly count points from st. The stream's dimension
	// must equal Uniforms().
	Sample(st sequence.Stream, count int) ([][]float64, error)

	// Dim reports the output marginal dimension.
	Dim() int

	// Uniforms reports the stream coordinates consumed per sample.
	Uniforms() int
}

// Family tags the supported copula families for the dispatch constructor.
type Family int

const (
	// Gaussian selects the Gaussian copula.
	Gaussian Family = iota
	// StudentT selects the Student-t copula.
	StudentT
	// Clayton selects the Clayton Archimedean copula.
	Clayton
)

// Params carries family parameters for New. Corr is required for Gaussian
// and StudentT; Nu for StudentT; Dim and Theta for Clayton.
type Params struct {
	Corr  *mat.SymDense
	Nu    float64
	Dim   int
	Theta float64
}

// New constructs a Sampler for the given family and parameters.
func New(family Family, p Params) (Sampler, error) {
	switch family {
	case Gaussian:
		return NewGaussian(p.Corr)
	case StudentT:
		return NewStudentT(p.Corr, p.Nu)
	case Clayton:
		return NewClayton(p.Dim, p.Theta)
	default:
		return nil, ErrUnknownFamily
	}
}

// uniformFloor mirrors noise's clamp: keeps uniforms strictly in (0,1)
// before quantile and logarithm transforms.
const uniformFloor = 0x1p-53

func clampUnit(u float64) float64 {
	if u < uniformFloor {
		return uniformFloor
	}
	if u > 1-uniformFloor {
		return 1 - uniformFloor
	}
	return u
}

// drawUniforms validates common Sample inputs and pulls count points.
func drawUniforms(st sequence.Stream, count, want int) ([][]float64, error) {
	if count < 0 {
		return nil, ErrBadCount
	}
	if st.Dim() != want {
		return nil, fmt.Errorf("stream dim %d, need %d: %w", st.Dim(), want, ErrDimensionMismatch)
	}
	return st.Next(count)
}

// ---------------------------------------------------------------------------
// Gaussian

// GaussianCopula couples marginals through a correlation matrix: dependent
// uniforms are Φ(L·Φ⁻¹(u)) with L the Cholesky factor.
type GaussianCopula struct {
	corr *noise.Correlator
}

// NewGaussian validates and factorizes corr.
func NewGaussian(corr *mat.SymDense) (*GaussianCopula, error) {
	if corr == nil {
		return nil, fmt.Errorf("nil correlation: %w", ErrInvalidParameters)
	}
	c, err := noise.NewCorrelator(corr)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", err, ErrInvalidParameters)
	}
	return &GaussianCopula{corr: c}, nil
}

// Dim reports the marginal dimension.
func (g *GaussianCopula) Dim() int { return g.corr.Dim() }

// Uniforms reports stream coordinates per sample (= Dim).
func (g *GaussianCopula) Uniforms() int { return g.corr.Dim() }

// Sample draws count dependent uniform vectors.
func (g *GaussianCopula) Sample(st sequence.Stream, count int) ([][]float64, error) {
	u, err := drawUniforms(st, count, g.Uniforms())
	if err != nil {
		return nil, err
	}
	z, err := noise.Gaussian(u, noise.InverseCDF)
	if err != nil {
		return nil, err
	}
	if err = g.corr.Apply(z); err != nil {
		return nil, err
	}
	for _, row := range z {
		for j, v := range row {
			row[j] = distuv.UnitNormal.CDF(v)
		}
	}
	return z, nil
}

// ---------------------------------------------------------------------------
// Student-t

// StudentTCopula is the Gaussian copula with chi-square variance mixing:
// T = L·Z / sqrt(W/ν), W ~ χ²(ν), pushed through the t CDF. The extra
// mixing variable consumes one additional stream coordinate per sample.
type StudentTCopula struct {
	corr  *noise.Correlator
	nu    float64
	chi   distuv.ChiSquared
	tdist distuv.StudentsT
}

// NewStudentT validates corr and ν > 0.
func NewStudentT(corr *mat.SymDense, nu float64) (*StudentTCopula, error) {
	if corr == nil || !(nu > 0) || math.IsInf(nu, 1) {
		return nil, fmt.Errorf("need PD correlation and nu > 0: %w", ErrInvalidParameters)
	}
	c, err := noise.NewCorrelator(corr)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", err, ErrInvalidParameters)
	}
	return &StudentTCopula{
		corr:  c,
		nu:    nu,
		chi:   distuv.ChiSquared{K: nu},
		tdist: distuv.StudentsT{Mu: 0, Sigma: 1, Nu: nu},
	}, nil
}

// Dim reports the marginal dimension.
func (s *StudentTCopula) Dim() int { return s.corr.Dim() }

// Uniforms reports stream coordinates per sample: Dim marginals plus the
// chi-square mixer.
func (s *StudentTCopula) Uniforms() int { return s.corr.Dim() + 1 }

// Sample draws count dependent uniform vectors.
func (s *StudentTCopula) Sample(st sequence.Stream, count int) ([][]float64, error) {
	u, err := drawUniforms(st, count, s.Uniforms())
	if err != nil {
		return nil, err
	}
	d := s.Dim()
	out := make([][]float64, count)
	zrow := make([][]float64, 1)
	for i, row := range u {
		z, err := noise.Gaussian([][]float64{row[:d]}, noise.InverseCDF)
		if err != nil {
			return nil, err
		}
		zrow[0] = z[0]
		if err = s.corr.Apply(zrow); err != nil {
			return nil, err
		}
		w := s.chi.Quantile(clampUnit(row[d]))
		scale := math.Sqrt(s.nu / w)
		res := make([]float64, d)
		for j, v := range zrow[0] {
			res[j] = s.tdist.CDF(v * scale)
		}
		out[i] = res
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// Clayton

// ClaytonCopula uses the Marshall–Olkin construction: with V ~ Gamma(1/θ)
// and E_j ~ Exp(1), U_j = ψ(E_j/V) where ψ(t) = (1+t)^(-1/θ) is the
// Clayton generator's Laplace-transform inverse pair.
//
// The Gamma(1/θ) draw is produced from one uniform via the chi-square
// quantile identity Gamma(a,1) = χ²(2a)/2, keeping the whole sampler a
// pure function of the stream.
type ClaytonCopula struct {
	dim   int
	theta float64
	mix   distuv.ChiSquared
}

// NewClayton validates dim >= 2 and θ > 0 (strict positive dependence;
// θ → 0 degenerates to independence and is outside the admissible domain).
func NewClayton(dim int, theta float64) (*ClaytonCopula, error) {
	if dim < 2 || !(theta > 0) || math.IsInf(theta, 1) {
		return nil, fmt.Errorf("need dim >= 2 and theta > 0: %w", ErrInvalidParameters)
	}
	return &ClaytonCopula{
		dim:   dim,
		theta: theta,
		mix:   distuv.ChiSquared{K: 2 / theta},
	}, nil
}

// Dim reports the marginal dimension.
func (c *ClaytonCopula) Dim() int { return c.dim }

// Uniforms reports stream coordinates per sample: dim exponentials plus
// the Gamma mixer.
func (c *ClaytonCopula) Uniforms() int { return c.dim + 1 }

// Sample draws count dependent uniform vectors.
func (c *ClaytonCopula) Sample(st sequence.Stream, count int) ([][]float64, error) {
	u, err := drawUniforms(st, count, c.Uniforms())
	if err != nil {
		return nil, err
	}
	out := make([][]float64, count)
	for i, row := range u {
		v := c.mix.Quantile(clampUnit(row[c.dim])) / 2 // Gamma(1/θ, 1)
		res := make([]float64, c.dim)
		for j := 0; j < c.dim; j++ {
			e := -math.Log(clampUnit(row[j])) // Exp(1)
			res[j] = math.Pow(1+e/v, -1/c.theta)
		}
		out[i] = res
	}
	return out, nil
}

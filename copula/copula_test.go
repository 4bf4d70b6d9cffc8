// SPDX-License-Identifier: MIT

package copula_test

import (
	"testing"

	"github.com/katalvlaran/quantcore/copula"
	"github.com/katalvlaran/quantcore/sequence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

func corr2(rho float64) *mat.SymDense {
	return mat.NewSymDense(2, []float64{1, rho, rho, 1})
}

// marginStats extracts column j and returns mean and variance.
func marginStats(u [][]float64, j int) (mean, variance float64) {
	col := make([]float64, len(u))
	for i, row := range u {
		col[i] = row[j]
	}
	return stat.Mean(col, nil), stat.Variance(col, nil)
}

// kendallTau is the O(n²) concordance estimator used as a structural
// reference; n is kept small.
func kendallTau(u [][]float64) float64 {
	n := len(u)
	var s float64
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			dx := u[i][0] - u[j][0]
			dy := u[i][1] - u[j][1]
			switch {
			case dx*dy > 0:
				s++
			case dx*dy < 0:
				s--
			}
		}
	}
	return 2 * s / float64(n*(n-1))
}

// TestGaussianCopula_UniformMarginsAndCorrelation verifies uniform
// marginals and that normal scores recover the target correlation.
func TestGaussianCopula_UniformMarginsAndCorrelation(t *testing.T) {
	const rho = 0.8
	cop, err := copula.NewGaussian(corr2(rho))
	require.NoError(t, err)
	require.Equal(t, 2, cop.Dim())
	require.Equal(t, 2, cop.Uniforms())

	st, _ := sequence.NewSplitMix(101, cop.Uniforms())
	u, err := cop.Sample(st, 20000)
	require.NoError(t, err)

	for j := 0; j < 2; j++ {
		mean, variance := marginStats(u, j)
		assert.InDelta(t, 0.5, mean, 0.01, "marginal %d mean", j)
		assert.InDelta(t, 1.0/12, variance, 0.005, "marginal %d variance", j)
	}

	// Normal scores undo the CDF; their correlation is the copula's ρ.
	a := make([]float64, len(u))
	b := make([]float64, len(u))
	for i, row := range u {
		a[i] = distuv.UnitNormal.Quantile(row[0])
		b[i] = distuv.UnitNormal.Quantile(row[1])
	}
	assert.InDelta(t, rho, stat.Correlation(a, b, nil), 0.02)
}

// TestStudentTCopula_UniformMargins verifies uniform marginals and
// positive concordance under a heavy-tailed mixer.
func TestStudentTCopula_UniformMargins(t *testing.T) {
	cop, err := copula.NewStudentT(corr2(0.5), 4)
	require.NoError(t, err)
	require.Equal(t, 3, cop.Uniforms(), "dim marginals + chi-square mixer")

	st, _ := sequence.NewSplitMix(55, cop.Uniforms())
	u, err := cop.Sample(st, 20000)
	require.NoError(t, err)

	for j := 0; j < 2; j++ {
		mean, variance := marginStats(u, j)
		assert.InDelta(t, 0.5, mean, 0.01, "marginal %d mean", j)
		assert.InDelta(t, 1.0/12, variance, 0.005, "marginal %d variance", j)
	}

	// Kendall's tau of an elliptical copula is (2/π)·asin(ρ) ≈ 0.333.
	tau := kendallTau(u[:2000])
	assert.InDelta(t, 0.333, tau, 0.05)
}

// TestClaytonCopula_KendallTau verifies the Archimedean identity
// τ = θ/(θ+2) on sampled data.
func TestClaytonCopula_KendallTau(t *testing.T) {
	const theta = 2.0
	cop, err := copula.NewClayton(2, theta)
	require.NoError(t, err)
	require.Equal(t, 3, cop.Uniforms(), "dim exponentials + gamma mixer")

	st, _ := sequence.NewSplitMix(9000, cop.Uniforms())
	u, err := cop.Sample(st, 2000)
	require.NoError(t, err)

	for j := 0; j < 2; j++ {
		mean, _ := marginStats(u, j)
		assert.InDelta(t, 0.5, mean, 0.02, "marginal %d mean", j)
	}
	assert.InDelta(t, theta/(theta+2), kendallTau(u), 0.05)
}

// TestCopula_Reproducible verifies the sampler is a pure transform of the
// stream: same seed, same output.
func TestCopula_Reproducible(t *testing.T) {
	cop, err := copula.NewClayton(3, 1.5)
	require.NoError(t, err)

	s1, _ := sequence.NewSplitMix(7, cop.Uniforms())
	s2, _ := sequence.NewSplitMix(7, cop.Uniforms())
	u1, err := cop.Sample(s1, 64)
	require.NoError(t, err)
	u2, err := cop.Sample(s2, 64)
	require.NoError(t, err)
	assert.Equal(t, u1, u2)
}

// TestCopula_ParameterValidation exercises the admissible-domain checks.
func TestCopula_ParameterValidation(t *testing.T) {
	_, err := copula.NewGaussian(nil)
	assert.ErrorIs(t, err, copula.ErrInvalidParameters)

	nonPD := mat.NewSymDense(3, []float64{
		1, 0.9, -0.9,
		0.9, 1, 0.9,
		-0.9, 0.9, 1,
	})
	_, err = copula.NewGaussian(nonPD)
	assert.ErrorIs(t, err, copula.ErrInvalidParameters)

	_, err = copula.NewStudentT(corr2(0.5), 0)
	assert.ErrorIs(t, err, copula.ErrInvalidParameters)

	_, err = copula.NewClayton(1, 1)
	assert.ErrorIs(t, err, copula.ErrInvalidParameters)
	_, err = copula.NewClayton(2, 0)
	assert.ErrorIs(t, err, copula.ErrInvalidParameters)
}

// TestCopula_FamilyDispatch covers the New dispatch constructor.
func TestCopula_FamilyDispatch(t *testing.T) {
	g, err := copula.New(copula.Gaussian, copula.Params{Corr: corr2(0.3)})
	require.NoError(t, err)
	assert.Equal(t, 2, g.Dim())

	tc, err := copula.New(copula.StudentT, copula.Params{Corr: corr2(0.3), Nu: 5})
	require.NoError(t, err)
	assert.Equal(t, 3, tc.Uniforms())

	cl, err := copula.New(copula.Clayton, copula.Params{Dim: 4, Theta: 0.7})
	require.NoError(t, err)
	assert.Equal(t, 4, cl.Dim())

	_, err = copula.New(copula.Family(42), copula.Params{})
	assert.ErrorIs(t, err, copula.ErrUnknownFamily)
}

// TestCopula_StreamDimensionMismatch verifies the wiring check between
// sampler and stream.
func TestCopula_StreamDimensionMismatch(t *testing.T) {
	cop, err := copula.NewGaussian(corr2(0.2))
	require.NoError(t, err)

	st, _ := sequence.NewSplitMix(1, 5)
	_, err = cop.Sample(st, 10)
	assert.ErrorIs(t, err, copula.ErrDimensionMismatch)

	st2, _ := sequence.NewSplitMix(1, 2)
	_, err = cop.Sample(st2, -1)
	assert.ErrorIs(t, err, copula.ErrBadCount)
}

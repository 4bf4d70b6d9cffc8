// SPDX-License-Identifier: MIT

package pde_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/quantcore/bs"
	"github.com/katalvlaran/quantcore/pde"
	"github.com/katalvlaran/quantcore/process"
	"github.com/katalvlaran/quantcore/sequence"
	"github.com/katalvlaran/quantcore/simulate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// uniformAxis returns n evenly spaced points on [lo, hi].
func uniformAxis(lo, hi float64, n int) []float64 {
	ax := make([]float64, n)
	for i := range ax {
		ax[i] = lo + (hi-lo)*float64(i)/float64(n-1)
	}
	return ax
}

// uniformTimes returns n+1 levels on [0, T].
func uniformTimes(T float64, n int) []float64 {
	ts := make([]float64, n+1)
	for i := range ts {
		ts[i] = T * float64(i) / float64(n)
	}
	return ts
}

// diffusionOnly is a constant-coefficient model for invariance checks.
func diffusionOnly(dim int, sigma float64) process.Process {
	p, _ := process.NewFunc(dim, dim,
		func(_ float64, _, dst []float64) error {
			for k := range dst {
				dst[k] = 0
			}
			return nil
		},
		func(_ float64, _ []float64, dst *mat.Dense) error {
			dst.Zero()
			for k := 0; k < dim; k++ {
				dst.Set(k, k, sigma)
			}
			return nil
		})
	return p
}

// TestSolve_CFLRejection is the stability scenario: explicit scheme with
// a step far beyond the CFL bound and auto-adjustment off must fail with
// ErrUnstableStep before any stepping.
func TestSolve_CFLRejection(t *testing.T) {
	gbm, _ := process.NewGBM(0.05, 0.2)
	grid, err := pde.NewGrid(uniformAxis(80, 120, 21))
	require.NoError(t, err)
	bcs := []pde.BoundaryPair{{Lower: pde.DirichletConst(0), Upper: pde.DirichletConst(20)}}

	opts := pde.DefaultOptions()
	opts.Scheme = pde.Explicit
	opts.Rate = 0.05

	payoff := func(x []float64) float64 { return math.Max(x[0]-100, 0) }
	_, _, err = pde.Solve(gbm, payoff, grid, bcs, []float64{0, 0.05}, &opts)
	assert.ErrorIs(t, err, pde.ErrUnstableStep)
}

// TestSolve_CFLAutoAdjust turns auto-adjustment on for the same setup
// and expects substepped success with the halvings reported.
func TestSolve_CFLAutoAdjust(t *testing.T) {
	gbm, _ := process.NewGBM(0.05, 0.2)
	grid, _ := pde.NewGrid(uniformAxis(80, 120, 21))
	bcs := []pde.BoundaryPair{{Lower: pde.DirichletConst(0), Upper: pde.DirichletConst(20)}}

	opts := pde.DefaultOptions()
	opts.Scheme = pde.Explicit
	opts.Rate = 0.05
	opts.AutoAdjust = true

	payoff := func(x []float64) float64 { return math.Max(x[0]-100, 0) }
	surf, rep, err := pde.Solve(gbm, payoff, grid, bcs, []float64{0, 0.05}, &opts)
	require.NoError(t, err)
	assert.Greater(t, rep.Refined, 0)
	assert.Greater(t, rep.Steps, 1, "level was substepped")
	assert.NotNil(t, surf)
}

// TestSolve_MatchesBlackScholes prices a European call on a
// Crank-Nicolson lattice and compares against the closed form.
func TestSolve_MatchesBlackScholes(t *testing.T) {
	const (
		rate, vol = 0.05, 0.2
		strike, T = 100.0, 1.0
	)
	gbm, _ := process.NewGBM(rate, vol)
	grid, _ := pde.NewGrid(uniformAxis(0, 300, 151))
	times := uniformTimes(T, 50)

	bcs := []pde.BoundaryPair{{
		Lower: pde.DirichletConst(0),
		Upper: pde.Boundary{Kind: pde.Dirichlet, Value: func(t float64, x []float64) float64 {
			return x[0] - strike*math.Exp(-rate*(T-t))
		}},
	}}
	opts := pde.DefaultOptions()
	opts.Rate = rate
	payoff := func(x []float64) float64 { return math.Max(x[0]-strike, 0) }

	surf, _, err := pde.Solve(gbm, payoff, grid, bcs, times, &opts)
	require.NoError(t, err)

	ref := bs.Vanilla{Strike: strike, Expiry: T, Rate: rate, Carry: rate, Vol: vol, Call: true}
	for _, spot := range []float64{80, 100, 120} {
		got, err := surf.Value(0, []float64{spot})
		require.NoError(t, err)
		assert.InDelta(t, ref.Price(spot), got, 0.1, "spot %g", spot)
	}
}

// TestSolve_ConsistentWithMonteCarlo prices the same European call on
// the lattice and by path simulation; the two estimates must agree
// within the Monte-Carlo statistical tolerance.
func TestSolve_ConsistentWithMonteCarlo(t *testing.T) {
	const (
		rate, vol = 0.05, 0.2
		strike, T = 100.0, 1.0
		spot      = 100.0
		paths     = 20000
	)
	gbm, _ := process.NewGBM(rate, vol)

	grid, _ := pde.NewGrid(uniformAxis(0, 300, 151))
	bcs := []pde.BoundaryPair{{
		Lower: pde.DirichletConst(0),
		Upper: pde.Boundary{Kind: pde.Dirichlet, Value: func(t float64, x []float64) float64 {
			return x[0] - strike*math.Exp(-rate*(T-t))
		}},
	}}
	opts := pde.DefaultOptions()
	opts.Rate = rate
	payoff := func(x []float64) float64 { return math.Max(x[0]-strike, 0) }
	surf, _, err := pde.Solve(gbm, payoff, grid, bcs, uniformTimes(T, 50), &opts)
	require.NoError(t, err)
	lattice, err := surf.Value(0, []float64{spot})
	require.NoError(t, err)

	st, _ := sequence.NewSplitMix(314, 1)
	sOpts := simulate.DefaultOptions()
	sOpts.Scheme = simulate.Exact
	batch, _, err := simulate.Simulate(gbm, []float64{spot}, st, uniformTimes(T, 10), paths, &sOpts)
	require.NoError(t, err)

	sum := 0.0
	for p := 0; p < paths; p++ {
		sum += math.Max(batch.Terminal(p)[0]-strike, 0)
	}
	mc := math.Exp(-rate*T) * sum / paths

	assert.InDelta(t, lattice, mc, 0.6)
}

// TestSolve_DirichletExact verifies every boundary node satisfies its
// Dirichlet condition with exact equality at every level.
func TestSolve_DirichletExact(t *testing.T) {
	gbm, _ := process.NewGBM(0.05, 0.2)
	grid, _ := pde.NewGrid(uniformAxis(50, 150, 11))
	times := uniformTimes(1, 4)

	lower := func(t float64, _ []float64) float64 { return 1 + t }
	upper := func(t float64, _ []float64) float64 { return 2 * t }
	bcs := []pde.BoundaryPair{{
		Lower: pde.Boundary{Kind: pde.Dirichlet, Value: lower},
		Upper: pde.Boundary{Kind: pde.Dirichlet, Value: upper},
	}}

	surf, _, err := pde.Solve(gbm, func(x []float64) float64 { return x[0] }, grid, bcs, times, nil)
	require.NoError(t, err)

	n := grid.Len(0)
	for m := 0; m < len(times)-1; m++ {
		assert.Equal(t, lower(times[m], nil), surf.At(m, 0), "level %d lower", m)
		assert.Equal(t, upper(times[m], nil), surf.At(m, n-1), "level %d upper", m)
	}
}

// TestSolve_NeumannAndRobin uses a linear-invariant setup — pure
// diffusion, terminal V = x — where both derivative conditions hold
// exactly, so the solution must stay V = x to solver precision.
func TestSolve_NeumannAndRobin(t *testing.T) {
	p := diffusionOnly(1, 0.5)
	grid, _ := pde.NewGrid(uniformAxis(0, 1, 21))
	times := uniformTimes(1, 10)

	for name, bcs := range map[string][]pde.BoundaryPair{
		"neumann": {{Lower: pde.NeumannConst(1), Upper: pde.NeumannConst(1)}},
		"robin": {{
			// V + V' = x + 1 on both faces, exact for V = x.
			Lower: pde.Boundary{Kind: pde.Robin, Alpha: 1, Beta: 1,
				Value: func(_ float64, x []float64) float64 { return x[0] + 1 }},
			Upper: pde.Boundary{Kind: pde.Robin, Alpha: 1, Beta: 1,
				Value: func(_ float64, x []float64) float64 { return x[0] + 1 }},
		}},
	} {
		opts := pde.DefaultOptions()
		opts.Scheme = pde.Implicit
		surf, _, err := pde.Solve(p, func(x []float64) float64 { return x[0] }, grid, bcs, times, &opts)
		require.NoError(t, err, name)

		ax := grid.Axis(0)
		for i, x := range ax {
			assert.InDelta(t, x, surf.At(0, i), 1e-8, "%s node %d", name, i)
		}
	}
}

// TestSolve_AmericanPutDominates verifies the early-exercise projection:
// the American value dominates both intrinsic value and the European
// solve everywhere.
func TestSolve_AmericanPutDominates(t *testing.T) {
	const (
		rate, vol = 0.06, 0.25
		strike, T = 100.0, 1.0
	)
	gbm, _ := process.NewGBM(rate, vol)
	grid, _ := pde.NewGrid(uniformAxis(0, 300, 121))
	times := uniformTimes(T, 40)

	intrinsic := func(_ float64, x []float64) float64 { return math.Max(strike-x[0], 0) }
	bcs := []pde.BoundaryPair{{
		Lower: pde.Boundary{Kind: pde.Dirichlet, Value: intrinsic},
		Upper: pde.DirichletConst(0),
	}}
	payoff := func(x []float64) float64 { return math.Max(strike-x[0], 0) }
	opts := pde.DefaultOptions()
	opts.Rate = rate

	euro, _, err := pde.Solve(gbm, payoff, grid, bcs, times, &opts)
	require.NoError(t, err)

	opts.Obstacle = intrinsic
	amer, _, err := pde.Solve(gbm, payoff, grid, bcs, times, &opts)
	require.NoError(t, err)

	for i := 0; i < grid.Len(0); i++ {
		x := grid.Axis(0)[i]
		assert.GreaterOrEqual(t, amer.At(0, i)+1e-12, math.Max(strike-x, 0), "intrinsic at %g", x)
		assert.GreaterOrEqual(t, amer.At(0, i)+1e-12, euro.At(0, i), "european at %g", x)
	}
	// Deep in the money the American put exercises: value equals intrinsic.
	assert.InDelta(t, strike-10, amer.At(0, 4), 1e-9)
}

// TestSolve_ADIInvariant checks the Douglas splitting on a 2-D pure
// diffusion with a harmonic terminal condition V = x + y: every stage
// preserves it exactly, so the surface must stay V = x + y.
func TestSolve_ADIInvariant(t *testing.T) {
	p := diffusionOnly(2, 0.3)
	grid, err := pde.NewGrid(uniformAxis(0, 1, 9), uniformAxis(0, 2, 11))
	require.NoError(t, err)
	times := uniformTimes(0.5, 5)

	plane := func(_ float64, x []float64) float64 { return x[0] + x[1] }
	bcs := []pde.BoundaryPair{
		{Lower: pde.Boundary{Kind: pde.Dirichlet, Value: plane}, Upper: pde.Boundary{Kind: pde.Dirichlet, Value: plane}},
		{Lower: pde.Boundary{Kind: pde.Dirichlet, Value: plane}, Upper: pde.Boundary{Kind: pde.Dirichlet, Value: plane}},
	}

	for _, order := range [][]int{nil, {1, 0}} {
		opts := pde.DefaultOptions()
		opts.SweepOrder = order
		surf, _, err := pde.Solve(p, func(x []float64) float64 { return x[0] + x[1] }, grid, bcs, times, &opts)
		require.NoError(t, err)

		x := make([]float64, 2)
		for n := 0; n < grid.Nodes(); n++ {
			grid.Coord(n, x)
			assert.InDelta(t, x[0]+x[1], surf.At(0, n), 1e-8, "order %v node %d", order, n)
		}
	}
}

// TestSurface_Queries checks interpolation behaviour and the domain
// guard.
func TestSurface_Queries(t *testing.T) {
	p := diffusionOnly(1, 0.5)
	grid, _ := pde.NewGrid(uniformAxis(0, 1, 11))
	times := uniformTimes(1, 4)
	bcs := []pde.BoundaryPair{{Lower: pde.NeumannConst(1), Upper: pde.NeumannConst(1)}}
	opts := pde.DefaultOptions()
	opts.Scheme = pde.Implicit

	surf, _, err := pde.Solve(p, func(x []float64) float64 { return x[0] }, grid, bcs, times, &opts)
	require.NoError(t, err)

	// V = x everywhere, so any in-domain query returns x.
	for _, q := range []struct{ t, x float64 }{{0, 0.5}, {0.37, 0.25}, {1, 0.05}} {
		got, err := surf.Value(q.t, []float64{q.x})
		require.NoError(t, err)
		assert.InDelta(t, q.x, got, 1e-8)
	}

	_, err = surf.Value(-0.1, []float64{0.5})
	assert.ErrorIs(t, err, pde.ErrBadQuery)
	_, err = surf.Value(0.5, []float64{1.5})
	assert.ErrorIs(t, err, pde.ErrBadQuery)
	_, err = surf.Value(0.5, []float64{0.5, 0.5})
	assert.ErrorIs(t, err, pde.ErrBadQuery)
}

// TestSolve_Validation sweeps the construction-time error taxonomy.
func TestSolve_Validation(t *testing.T) {
	gbm, _ := process.NewGBM(0.05, 0.2)
	grid, _ := pde.NewGrid(uniformAxis(50, 150, 11))
	good := []pde.BoundaryPair{{Lower: pde.DirichletConst(0), Upper: pde.DirichletConst(0)}}
	payoff := func(x []float64) float64 { return x[0] }
	times := []float64{0, 1}

	_, err := pde.NewGrid([]float64{0, 1})
	assert.ErrorIs(t, err, pde.ErrBadGrid)
	_, err = pde.NewGrid([]float64{0, 1, 1})
	assert.ErrorIs(t, err, pde.ErrBadGrid)

	_, _, err = pde.Solve(gbm, nil, grid, good, times, nil)
	assert.ErrorIs(t, err, pde.ErrBadTerminal)

	_, _, err = pde.Solve(gbm, payoff, grid, good, []float64{1}, nil)
	assert.ErrorIs(t, err, pde.ErrBadTimes)

	_, _, err = pde.Solve(gbm, payoff, grid, nil, times, nil)
	assert.ErrorIs(t, err, pde.ErrBadBoundary)

	bad := []pde.BoundaryPair{{Lower: pde.Boundary{Kind: pde.Robin, Alpha: 1, Beta: 0,
		Value: func(float64, []float64) float64 { return 0 }}, Upper: pde.DirichletConst(0)}}
	_, _, err = pde.Solve(gbm, payoff, grid, bad, times, nil)
	assert.ErrorIs(t, err, pde.ErrBadBoundary)

	hes, _ := process.NewHeston(0.02, 1.5, 0.04, 0.4, -0.6)
	_, _, err = pde.Solve(hes, payoff, grid, good, times, nil)
	assert.ErrorIs(t, err, pde.ErrDimensionMismatch)

	opts := pde.DefaultOptions()
	opts.Scheme = pde.Scheme(7)
	_, _, err = pde.Solve(gbm, payoff, grid, good, times, &opts)
	assert.ErrorIs(t, err, pde.ErrBadConfig)

	grid2, _ := pde.NewGrid(uniformAxis(0, 1, 5), uniformAxis(0, 1, 5))
	two := []pde.BoundaryPair{good[0], {Lower: pde.NeumannConst(0), Upper: pde.DirichletConst(0)}}
	p2 := diffusionOnly(2, 0.3)
	_, _, err = pde.Solve(p2, payoff, grid2, two, times, nil)
	assert.ErrorIs(t, err, pde.ErrBadBoundary)

	opts = pde.DefaultOptions()
	opts.SweepOrder = []int{0, 0}
	twoD := []pde.BoundaryPair{
		{Lower: pde.DirichletConst(0), Upper: pde.DirichletConst(0)},
		{Lower: pde.DirichletConst(0), Upper: pde.DirichletConst(0)},
	}
	_, _, err = pde.Solve(p2, payoff, grid2, twoD, times, &opts)
	assert.ErrorIs(t, err, pde.ErrBadConfig)
}

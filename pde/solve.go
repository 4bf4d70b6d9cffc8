// SPDX-License-Identifier: MIT

package pde

import (
	"fmt"
	"math"

	"github.com/katalvlaran/quantcore/process"
	"gonum.org/v1/gonum/mat"
)

// Solve integrates the backward Feynman-Kac equation
//
//	∂V/∂t + b·∇V + ½ tr(σσᵀ·∇²V) - r·V = 0
//
// from the terminal condition at times[len-1] down to times[0] on the
// grid g, with drift b and diffusion σ supplied by the model p and the
// discount r by opts.Rate. bcs carries one BoundaryPair per axis.
//
// The returned Surface holds every time level; the Report carries
// stability and grid-quality diagnostics. On multi-dimensional grids the
// time update is a Douglas dimension-splitting pass (mixed-derivative
// terms explicit) and every face must be Dirichlet.
func Solve(p process.Process, terminal func(x []float64) float64, g *Grid, bcs []BoundaryPair, times []float64, opts *Options) (*Surface, *Report, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	s, err := newSolver(p, terminal, g, bcs, times, &o)
	if err != nil {
		return nil, nil, err
	}
	surf, err := s.run()
	if err != nil {
		return nil, nil, err
	}
	return surf, &s.rep, nil
}

type solver struct {
	p        process.Process
	terminal func(x []float64) float64
	g        *Grid
	bcs      []BoundaryPair
	times    []float64
	o        *Options
	ls       LinearSolver
	order    []int

	dim int
	rep Report

	// scratch, reused across nodes and steps
	x   []float64
	mu  []float64
	sig *mat.Dense
	aM  *mat.Dense
	sub []float64
	dia []float64
	sup []float64
	rhs []float64
	sol []float64
}

func newSolver(p process.Process, terminal func(x []float64) float64, g *Grid, bcs []BoundaryPair, times []float64, o *Options) (*solver, error) {
	if g == nil {
		return nil, ErrBadGrid
	}
	if terminal == nil {
		return nil, ErrBadTerminal
	}
	if p.Dim() != g.Dim() {
		return nil, fmt.Errorf("model dim %d, grid dim %d: %w", p.Dim(), g.Dim(), ErrDimensionMismatch)
	}
	if len(times) < 2 {
		return nil, ErrBadTimes
	}
	for i := 1; i < len(times); i++ {
		if times[i] <= times[i-1] {
			return nil, ErrBadTimes
		}
	}
	if len(bcs) != g.Dim() {
		return nil, fmt.Errorf("%d boundary pairs for %d axes: %w", len(bcs), g.Dim(), ErrBadBoundary)
	}
	for k, bp := range bcs {
		for _, b := range [2]Boundary{bp.Lower, bp.Upper} {
			if b.Value == nil {
				return nil, fmt.Errorf("axis %d: nil boundary value: %w", k, ErrBadBoundary)
			}
			if b.Kind == Robin && b.Beta == 0 {
				return nil, fmt.Errorf("axis %d: Robin with zero Beta: %w", k, ErrBadBoundary)
			}
			if g.Dim() > 1 && b.Kind != Dirichlet {
				return nil, fmt.Errorf("axis %d: dimension splitting supports Dirichlet faces only: %w", k, ErrBadBoundary)
			}
		}
	}
	if o.Scheme < Explicit || o.Scheme > CrankNicolson {
		return nil, fmt.Errorf("scheme %d: %w", o.Scheme, ErrBadConfig)
	}
	if o.MaxRetries < 0 {
		return nil, fmt.Errorf("negative MaxRetries: %w", ErrBadConfig)
	}
	order, err := sweepOrder(o.SweepOrder, g.Dim())
	if err != nil {
		return nil, err
	}

	s := &solver{
		p: p, terminal: terminal, g: g, bcs: bcs, times: times, o: o,
		ls:    o.Solver,
		order: order,
		dim:   g.Dim(),
		x:     make([]float64, g.Dim()),
		mu:    make([]float64, g.Dim()),
		sig:   mat.NewDense(p.Dim(), p.Factors(), nil),
		aM:    mat.NewDense(g.Dim(), g.Dim(), nil),
	}
	if s.ls == nil {
		s.ls = gonumTridiag{}
	}
	maxAxis := 0
	for k := 0; k < g.Dim(); k++ {
		if g.Len(k) > maxAxis {
			maxAxis = g.Len(k)
		}
	}
	s.sub = make([]float64, maxAxis-1)
	s.sup = make([]float64, maxAxis-1)
	s.dia = make([]float64, maxAxis)
	s.rhs = make([]float64, maxAxis)
	s.sol = make([]float64, maxAxis)
	return s, nil
}

// sweepOrder validates a user order or defaults to ascending axes.
func sweepOrder(order []int, dim int) ([]int, error) {
	if len(order) == 0 {
		out := make([]int, dim)
		for k := range out {
			out[k] = k
		}
		return out, nil
	}
	if len(order) != dim {
		return nil, fmt.Errorf("sweep order length %d for %d axes: %w", len(order), dim, ErrBadConfig)
	}
	seen := make([]bool, dim)
	for _, k := range order {
		if k < 0 || k >= dim || seen[k] {
			return nil, fmt.Errorf("sweep order is not a permutation: %w", ErrBadConfig)
		}
		seen[k] = true
	}
	return append([]int(nil), order...), nil
}

func (s *solver) run() (*Surface, error) {
	levels := len(s.times)
	surf := newSurface(s.times, s.g)

	v := make([]float64, s.g.Nodes())
	for n := range v {
		s.g.Coord(n, s.x)
		v[n] = s.terminal(s.x)
	}
	surf.set(levels-1, v)

	// Stability is checked for every level before any stepping, so an
	// unstable explicit configuration is rejected up front.
	subs, err := s.cflSubsteps()
	if err != nil {
		return nil, err
	}

	for m := levels - 2; m >= 0; m-- {
		t0, t1 := s.times[m], s.times[m+1]
		k := subs[m]
		h := (t1 - t0) / float64(k)
		for j := 0; j < k; j++ {
			tb := t1 - float64(j)*h
			ta := tb - h
			if j == k-1 {
				ta = t0
			}
			if s.dim == 1 {
				err = s.step1D(v, ta, tb)
			} else {
				err = s.stepADI(v, ta, tb)
			}
			if err != nil {
				return nil, fmt.Errorf("level %d: %w", m, err)
			}
			s.project(v, ta)
			s.rep.Steps++
		}
		surf.set(m, v)
	}
	return surf, nil
}

// coeffs evaluates drift and ½σσᵀ at (t, node n) into s.mu and s.aM.
func (s *solver) coeffs(t float64, n int) error {
	s.g.Coord(n, s.x)
	if err := s.p.Drift(t, s.x, s.mu); err != nil {
		return fmt.Errorf("node %d: %w", n, err)
	}
	if err := s.p.Diffusion(t, s.x, s.sig); err != nil {
		return fmt.Errorf("node %d: %w", n, err)
	}
	s.aM.Mul(s.sig, s.sig.T())
	s.aM.Scale(0.5, s.aM)
	return nil
}

// cflSubsteps returns per-level substep counts. For implicit schemes it
// is all ones; for the explicit scheme each level is checked against
//
//	dt · max over interior nodes of ( Σ_k (2a_kk/h_k² + |b_k|/h_k)
//	                                + Σ_{k<l} 2|a_kl|/(h_k h_l) + r ) ≤ 1
//
// with h the smaller neighbour spacing. On violation the level's step is
// halved up to MaxRetries times when AutoAdjust is on, otherwise the
// solve fails with ErrUnstableStep.
func (s *solver) cflSubsteps() ([]int, error) {
	subs := make([]int, len(s.times)-1)
	for m := range subs {
		subs[m] = 1
	}
	if s.o.Scheme != Explicit {
		return subs, nil
	}
	for m := range subs {
		dt := s.times[m+1] - s.times[m]
		rate, err := s.maxRate(0.5 * (s.times[m] + s.times[m+1]))
		if err != nil {
			return nil, err
		}
		ratio := dt * rate
		if ratio <= 1 {
			continue
		}
		if !s.o.AutoAdjust {
			return nil, fmt.Errorf("level %d: CFL ratio %.3g: %w", m, ratio, ErrUnstableStep)
		}
		k, halvings := 1, 0
		for dt/float64(k)*rate > 1 && halvings < s.o.MaxRetries {
			k *= 2
			halvings++
		}
		if dt/float64(k)*rate > 1 {
			return nil, fmt.Errorf("level %d: CFL ratio %.3g after %d halvings: %w",
				m, dt/float64(k)*rate, halvings, ErrUnstableStep)
		}
		subs[m] = k
		s.rep.Refined += halvings
	}
	return subs, nil
}

// maxRate scans interior nodes for the largest explicit-update rate.
func (s *solver) maxRate(t float64) (float64, error) {
	mi := make([]int, s.dim)
	for k := range mi {
		mi[k] = 1
	}
	worst := 0.0
	for {
		n := s.g.index(mi)
		if err := s.coeffs(t, n); err != nil {
			return 0, err
		}
		rate := math.Abs(s.o.Rate)
		hs := make([]float64, s.dim)
		for k := 0; k < s.dim; k++ {
			ax := s.g.Axis(k)
			hm := ax[mi[k]] - ax[mi[k]-1]
			hp := ax[mi[k]+1] - ax[mi[k]]
			hs[k] = math.Min(hm, hp)
			rate += 2*s.aM.At(k, k)/(hs[k]*hs[k]) + math.Abs(s.mu[k])/hs[k]
		}
		for k := 0; k < s.dim; k++ {
			for l := k + 1; l < s.dim; l++ {
				rate += 2 * math.Abs(s.aM.At(k, l)) / (hs[k] * hs[l])
			}
		}
		if rate > worst {
			worst = rate
		}
		if !nextInterior(mi, s.g) {
			return worst, nil
		}
	}
}

// nextInterior advances a multi-index over interior nodes (1..len-2 per
// axis), last axis fastest; it reports false after the final node.
func nextInterior(mi []int, g *Grid) bool {
	for k := len(mi) - 1; k >= 0; k-- {
		mi[k]++
		if mi[k] <= g.Len(k)-2 {
			return true
		}
		mi[k] = 1
	}
	return false
}

// step1D advances v backward from tb to ta with one θ-scheme update:
//
//	(I - θ·dt·L) v_new = (I + (1-θ)·dt·L) v_old
//
// with L frozen at the substep midpoint and boundary rows evaluated at
// the target time ta.
func (s *solver) step1D(v []float64, ta, tb float64) error {
	ax := s.g.Axis(0)
	n := len(ax)
	th := s.o.Scheme.theta()
	dt := tb - ta
	tm := 0.5 * (ta + tb)

	for i := 1; i < n-1; i++ {
		if err := s.coeffs(tm, i); err != nil {
			return err
		}
		l, c, u, up := axisStencil(ax[i]-ax[i-1], ax[i+1]-ax[i], s.aM.At(0, 0), s.mu[0])
		if up {
			s.rep.Upwinded++
			s.rep.GridTooCoarse = true
		}
		c -= s.o.Rate

		s.sub[i-1] = -th * dt * l
		s.dia[i] = 1 - th*dt*c
		s.sup[i] = -th * dt * u
		s.rhs[i] = v[i] + (1-th)*dt*(l*v[i-1]+c*v[i]+u*v[i+1])
	}

	s.x[0] = ax[0]
	d, o, r := boundaryRow(s.bcs[0].Lower, ta, s.x, ax[1]-ax[0], true)
	s.dia[0], s.sup[0], s.rhs[0] = d, o, r

	s.x[0] = ax[n-1]
	d, o, r = boundaryRow(s.bcs[0].Upper, ta, s.x, ax[n-1]-ax[n-2], false)
	s.dia[n-1], s.sub[n-2], s.rhs[n-1] = d, o, r

	if err := s.ls.SolveTridiag(s.sub[:n-1], s.dia[:n], s.sup[:n-1], s.rhs[:n], s.sol[:n]); err != nil {
		return err
	}
	copy(v, s.sol[:n])
	return nil
}

// project applies the early-exercise floor and re-pins Dirichlet faces,
// so boundary values hold exactly after every update.
func (s *solver) project(v []float64, t float64) {
	if s.o.Obstacle != nil {
		for n := range v {
			s.g.Coord(n, s.x)
			if iv := s.o.Obstacle(t, s.x); v[n] < iv {
				v[n] = iv
			}
		}
	}
	for k := 0; k < s.dim; k++ {
		if s.bcs[k].Lower.Kind == Dirichlet {
			s.eachFaceNode(k, 0, func(n int) {
				s.g.Coord(n, s.x)
				v[n] = s.bcs[k].Lower.Value(t, s.x)
			})
		}
		if s.bcs[k].Upper.Kind == Dirichlet {
			s.eachFaceNode(k, s.g.Len(k)-1, func(n int) {
				s.g.Coord(n, s.x)
				v[n] = s.bcs[k].Upper.Value(t, s.x)
			})
		}
	}
}

// eachFaceNode visits every node with axis-k index fixed to face.
func (s *solver) eachFaceNode(k, face int, fn func(n int)) {
	mi := make([]int, s.dim)
	mi[k] = face
	for {
		fn(s.g.index(mi))
		done := true
		for j := s.dim - 1; j >= 0; j-- {
			if j == k {
				continue
			}
			mi[j]++
			if mi[j] < s.g.Len(j) {
				done = false
				break
			}
			mi[j] = 0
		}
		if done {
			return
		}
	}
}

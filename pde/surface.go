// SPDX-License-Identifier: MIT

package pde

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/interp"
)

// Surface is the completed solve result: one value per (time level, grid
// node). Off-grid queries interpolate linearly in time and piecewise
// linearly in space.
type Surface struct {
	times []float64
	g     *Grid
	vals  [][]float64
}

func newSurface(times []float64, g *Grid) *Surface {
	return &Surface{
		times: append([]float64(nil), times...),
		g:     g,
		vals:  make([][]float64, len(times)),
	}
}

func (s *Surface) set(level int, v []float64) {
	s.vals[level] = append([]float64(nil), v...)
}

// Times returns the time levels, ascending.
func (s *Surface) Times() []float64 { return s.times }

// Grid returns the spatial grid the surface is defined on.
func (s *Surface) Grid() *Grid { return s.g }

// Level returns the node values at time level m (flat, row-major, last
// axis fastest). The slice is a view; treat it as read-only.
func (s *Surface) Level(m int) []float64 { return s.vals[m] }

// At returns the value at time level m and flat node n.
func (s *Surface) At(m, n int) float64 { return s.vals[m][n] }

// Value interpolates the surface at an arbitrary (t, x) inside the
// covered domain: linear in t between bracketing levels, piecewise
// multilinear in space.
func (s *Surface) Value(t float64, x []float64) (float64, error) {
	if len(x) != s.g.Dim() {
		return 0, fmt.Errorf("query dim %d, grid dim %d: %w", len(x), s.g.Dim(), ErrBadQuery)
	}
	if t < s.times[0] || t > s.times[len(s.times)-1] {
		return 0, fmt.Errorf("t=%g outside [%g, %g]: %w", t, s.times[0], s.times[len(s.times)-1], ErrBadQuery)
	}
	for k := range x {
		ax := s.g.Axis(k)
		if x[k] < ax[0] || x[k] > ax[len(ax)-1] {
			return 0, fmt.Errorf("x[%d]=%g outside axis span: %w", k, x[k], ErrBadQuery)
		}
	}

	hi := sort.SearchFloat64s(s.times, t)
	if hi == 0 {
		hi = 1
	}
	if hi == len(s.times) {
		hi = len(s.times) - 1
	}
	lo := hi - 1

	vLo, err := s.spatial(lo, x)
	if err != nil || t == s.times[lo] {
		return vLo, err
	}
	vHi, err := s.spatial(hi, x)
	if err != nil {
		return 0, err
	}
	w := (t - s.times[lo]) / (s.times[hi] - s.times[lo])
	return (1-w)*vLo + w*vHi, nil
}

// spatial evaluates level m at x. The one-dimensional case delegates to
// gonum's interp.PiecewiseLinear; higher dimensions reduce axis by axis.
func (s *Surface) spatial(m int, x []float64) (float64, error) {
	if s.g.Dim() == 1 {
		var pl interp.PiecewiseLinear
		if err := pl.Fit(s.g.Axis(0), s.vals[m]); err != nil {
			return 0, fmt.Errorf("%v: %w", err, ErrBadQuery)
		}
		return pl.Predict(x[0]), nil
	}
	return s.multilinear(s.vals[m], x), nil
}

// multilinear blends the 2^d cell corners surrounding x.
func (s *Surface) multilinear(v []float64, x []float64) float64 {
	d := s.g.Dim()
	idx := make([]int, d)
	wgt := make([]float64, d)
	for k := 0; k < d; k++ {
		ax := s.g.Axis(k)
		i := sort.SearchFloat64s(ax, x[k])
		if i > 0 {
			i--
		}
		if i == len(ax)-1 {
			i--
		}
		idx[k] = i
		wgt[k] = (x[k] - ax[i]) / (ax[i+1] - ax[i])
	}
	out := 0.0
	for corner := 0; corner < 1<<d; corner++ {
		w := 1.0
		n := 0
		for k := 0; k < d; k++ {
			bit := (corner >> k) & 1
			if bit == 1 {
				w *= wgt[k]
			} else {
				w *= 1 - wgt[k]
			}
			n += (idx[k] + bit) * s.g.strides[k]
		}
		out += w * v[n]
	}
	return out
}

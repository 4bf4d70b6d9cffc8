// SPDX-License-Identifier: MIT

package sequence

import (
	"fmt"
	"math/bits"
)

// SobolOptions configures a Sobol stream.
//   - Burn: number of leading points to drop. The sequence starts at the
//     all-zero point; pair Burn=1 with inverse-CDF Gaussian transforms if
//     the downstream code cannot tolerate an exact 0 coordinate.
//     (noise.Gaussian clamps uniforms, so the default Burn=0 is safe there
//     and preserves block equidistribution.)
type SobolOptions struct {
	Burn uint64
}

// DefaultSobolOptions returns production-safe defaults.
func DefaultSobolOptions() SobolOptions {
	return SobolOptions{Burn: 0}
}

// Sobol is a quasi-random (low-discrepancy) Stream over [0,1)^dim built
// from the embedded Joe–Kuo direction numbers. Points are produced in
// Gray-code order; every aligned block of 2^m consecutive points places
// exactly one point in each interval of width 2^-m, per coordinate.
// The sequence is 2^32 points deep; Next fails with ErrExhausted past
// that index.
//
// Split partitions the sequence by leapfrogging: child i of k takes points
// i, i+k, i+2k, ... . Leapfrogged sub-streams remain deterministic and
// disjoint but only the unsplit sequence carries the full low-discrepancy
// guarantee; prefer index-based partitioning (one point per path) when
// parallelizing quasi-random Monte-Carlo.
type Sobol struct {
	dirs   [][]uint32
	dim    int
	start  uint64 // absolute index of the next point before striding
	stride uint64 // distance between consecutive points (1 unless split)
	n      uint64 // points already produced through this cursor
}

// NewSobol returns a Sobol Stream of the given dimension.
// Dimensions above MaxDim fail with ErrDimensionUnsupported.
func NewSobol(dim int, opts *SobolOptions) (*Sobol, error) {
	if dim < 1 {
		return nil, ErrBadDimension
	}
	if dim > MaxDim {
		return nil, fmt.Errorf("sobol dimension %d > %d: %w", dim, MaxDim, ErrDimensionUnsupported)
	}
	o := DefaultSobolOptions()
	if opts != nil {
		o = *opts
	}
	return &Sobol{
		dirs:   directions(dim),
		dim:    dim,
		start:  o.Burn,
		stride: 1,
	}, nil
}

// point writes the Sobol point with absolute index idx into dst.
// x_idx = XOR of v_{j+1} over the set bits j of gray(idx).
func (s *Sobol) point(idx uint64, dst []float64) {
	g := idx ^ (idx >> 1)
	for d := 0; d < s.dim; d++ {
		var x uint32
		v := s.dirs[d]
		for gg := g; gg != 0; gg &= gg - 1 {
			x ^= v[bits.TrailingZeros64(gg)]
		}
		dst[d] = float64(x) / (1 << sobolBits)
	}
}

// Next returns count points in [0,1)^dim. The sequence holds 2^32
// points; draws past the last index fail with ErrExhausted.
func (s *Sobol) Next(count int) ([][]float64, error) {
	if count < 0 {
		return nil, ErrBadCount
	}
	out := make([][]float64, count)
	for i := range out {
		idx := s.start + s.n*s.stride
		if idx>>sobolBits != 0 {
			return nil, fmt.Errorf("index %d: %w", idx, ErrExhausted)
		}
		row := make([]float64, s.dim)
		s.point(idx, row)
		s.n++
		out[i] = row
	}
	return out, nil
}

// Skip advances the cursor by n points in O(1): the state is recomputed
// directly from the target index, so skipping never drifts from drawing.
func (s *Sobol) Skip(n uint64) error {
	s.n += n
	return nil
}

// Split partitions the remaining sequence into k leapfrogged sub-streams.
// The parent cursor is exhausted by the split (its points now belong to
// the children); further parent draws would alias child points, so the
// parent is advanced onto child 0's lane.
func (s *Sobol) Split(k int) ([]Stream, error) {
	if k < 1 {
		return nil, ErrBadSplit
	}
	base := s.start + s.n*s.stride
	stride := s.stride * uint64(k)
	out := make([]Stream, k)
	for i := 0; i < k; i++ {
		out[i] = &Sobol{
			dirs:   s.dirs,
			dim:    s.dim,
			start:  base + uint64(i)*s.stride,
			stride: stride,
		}
	}
	s.start = base
	s.stride = stride
	s.n = 0
	return out, nil
}

// Dim reports the point dimension.
func (s *Sobol) Dim() int { return s.dim }

// Clone returns an independent copy at the current cursor position.
// The direction matrix is immutable after construction and safely shared.
func (s *Sobol) Clone() Stream {
	cp := *s
	return &cp
}

// Index reports the absolute sequence index of the next point.
func (s *Sobol) Index() uint64 { return s.start + s.n*s.stride }

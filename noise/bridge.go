// SPDX-License-Identifier: MIT

package noise

import "math"

// Bridge is a Brownian-bridge path constructor over a fixed time grid
// t_0 < t_1 < ... < t_n. Instead of accumulating increments left to
// right, it sets the terminal value first and then recursively fills
// midpoints conditional on both neighbours, using the exact conditional
// law of the Wiener process:
//
//	W(t_m) | W(t_a), W(t_b) ~ N( ((t_b-t_m)W(t_a)+(t_m-t_a)W(t_b))/(t_b-t_a),
//	                             (t_m-t_a)(t_b-t_m)/(t_b-t_a) )
//
// Spans are bisected widest-first, so earlier-consumed normals carry the
// larger conditional-variance shares, which is exactly what quasi-random
// points want: the lowest (best equidistributed) Sobol dimensions drive
// the coarse shape of the path.
//
// All indexing, support points and conditional weights are precomputed at
// construction; Transform is a pure O(n) pass. Immutable and safe for
// concurrent use across paths.
type Bridge struct {
	times []float64

	bridgeIdx []int // point built at construction step i (1-based point index)
	leftIdx   []int // left support point (0 means t_0, where W=0)
	rightIdx  []int // right support point
	leftW     []float64
	rightW    []float64
	stdDev    []float64
}

// NewBridge precomputes the construction order and conditional weights
// for the given strictly increasing time grid.
func NewBridge(times []float64) (*Bridge, error) {
	if len(times) < 2 {
		return nil, ErrBadTimeGrid
	}
	for i := 1; i < len(times); i++ {
		if times[i] <= times[i-1] {
			return nil, ErrBadTimeGrid
		}
	}
	n := len(times) - 1

	b := &Bridge{
		times:     append([]float64(nil), times...),
		bridgeIdx: make([]int, n),
		leftIdx:   make([]int, n),
		rightIdx:  make([]int, n),
		leftW:     make([]float64, n),
		rightW:    make([]float64, n),
		stdDev:    make([]float64, n),
	}

	b.bridgeIdx[0] = n
	b.rightIdx[0] = n
	b.stdDev[0] = math.Sqrt(times[n] - times[0])

	// Unbuilt spans between already built support points, bisected
	// widest-first (ties go to the earliest listed span) so variance
	// shares decrease with the construction step.
	type span struct{ pa, pb int }
	spans := []span{{0, n}}
	for i := 1; i < n; i++ {
		best := 0
		for s := 1; s < len(spans); s++ {
			if times[spans[s].pb]-times[spans[s].pa] > times[spans[best].pb]-times[spans[best].pa] {
				best = s
			}
		}
		pa, pb := spans[best].pa, spans[best].pb
		spans = append(spans[:best], spans[best+1:]...)

		pm := pa + (pb-pa)/2
		tm, ta, tb := times[pm], times[pa], times[pb]
		b.bridgeIdx[i] = pm
		b.leftIdx[i] = pa
		b.rightIdx[i] = pb
		b.leftW[i] = (tb - tm) / (tb - ta)
		b.rightW[i] = (tm - ta) / (tb - ta)
		b.stdDev[i] = math.Sqrt((tm - ta) * (tb - tm) / (tb - ta))

		if pm-pa >= 2 {
			spans = append(spans, span{pa, pm})
		}
		if pb-pm >= 2 {
			spans = append(spans, span{pm, pb})
		}
	}
	return b, nil
}

// Steps reports the number of normals consumed (and Wiener values
// produced) per path: len(times)-1.
func (b *Bridge) Steps() int { return len(b.times) - 1 }

// Transform maps z (Steps() standard normals, variance-ordered) to Wiener
// path values w, where w[p-1] = W(times[p]) and W(times[0]) = 0.
// It returns w for chaining; w must have length Steps().
func (b *Bridge) Transform(z, w []float64) []float64 {
	n := b.Steps()
	w[n-1] = b.stdDev[0] * z[0]
	for i := 1; i < n; i++ {
		var wl float64
		if b.leftIdx[i] > 0 {
			wl = w[b.leftIdx[i]-1]
		}
		wr := w[b.rightIdx[i]-1]
		w[b.bridgeIdx[i]-1] = b.leftW[i]*wl + b.rightW[i]*wr + b.stdDev[i]*z[i]
	}
	return w
}

// Increments rewrites Wiener values w (as produced by Transform) into
// per-step increments dW_i = W(t_{i+1}) - W(t_i), in place.
func (b *Bridge) Increments(w []float64) []float64 {
	for i := b.Steps() - 1; i > 0; i-- {
		w[i] -= w[i-1]
	}
	return w
}

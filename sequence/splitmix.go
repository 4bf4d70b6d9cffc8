// SPDX-License-Identifier: MIT

package sequence

import (
	"math/bits"

	"golang.org/x/exp/rand"
)

// SplitMix is a counter-based pseudo-random Stream after Steele, Lea & Flood,
// "Fast Splittable Pseudorandom Number Generators" (OOPSLA 2014) — the
// generator behind Java's SplittableRandom. The state is a 64-bit counter
// advanced by an odd step ("gamma"); each output is a strong 64-bit mix of
// the counter. Because the state is a pure counter:
//
//   - Skip(n) is O(1): state += n·dim·gamma.
//   - Split derives child (seed, gamma) pairs from dedicated counter
//     positions via mix64/mixGamma — a documented splitting algorithm, not
//     re-seeding with derived integers.
//
// The zero value is not usable; construct with NewSplitMix.
type SplitMix struct {
	seed  uint64 // counter
	gamma uint64 // odd increment, per-stream
	dim   int
}

// goldenGamma is the fractional part of the golden ratio in 64-bit fixed
// point, the canonical root-stream increment.
const goldenGamma = 0x9E3779B97F4A7C15

// NewSplitMix returns a pseudo-random Stream of dim-dimensional points
// seeded with seed. Distinct seeds give distinct, overwhelmingly
// independent sequences.
func NewSplitMix(seed uint64, dim int) (*SplitMix, error) {
	if dim < 1 {
		return nil, ErrBadDimension
	}
	// Mix the raw seed once so that adjacent user seeds land far apart.
	return &SplitMix{seed: mix64(seed), gamma: goldenGamma, dim: dim}, nil
}

// mix64 is Stafford's "variant 13" 64-bit finalizer.
func mix64(z uint64) uint64 {
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return z ^ (z >> 31)
}

// mixGamma produces a valid stream increment: odd, and with enough bit
// transitions to avoid weak counters (Steele et al., §5.3).
func mixGamma(z uint64) uint64 {
	z = (z ^ (z >> 33)) * 0xFF51AFD7ED558CCD // MurmurHash3 finalizer
	z = (z ^ (z >> 33)) * 0xC4CEB9FE1A85EC53
	z = (z ^ (z >> 33)) | 1
	if bits.OnesCount64(z^(z>>1)) < 24 {
		z ^= 0xAAAAAAAAAAAAAAAA
	}
	return z
}

// nextUint64 advances the counter one position and mixes it.
func (s *SplitMix) nextUint64() uint64 {
	s.seed += s.gamma
	return mix64(s.seed)
}

// toUnit maps a uint64 to [0,1) using its top 53 bits, so the result is an
// exactly representable dyadic rational.
func toUnit(u uint64) float64 {
	return float64(u>>11) / (1 << 53)
}

// Next returns count points in [0,1)^dim.
func (s *SplitMix) Next(count int) ([][]float64, error) {
	if count < 0 {
		return nil, ErrBadCount
	}
	out := make([][]float64, count)
	for i := range out {
		row := make([]float64, s.dim)
		for j := range row {
			row[j] = toUnit(s.nextUint64())
		}
		out[i] = row
	}
	return out, nil
}

// Skip advances the cursor by n points in O(1).
func (s *SplitMix) Skip(n uint64) error {
	s.seed += s.gamma * n * uint64(s.dim)
	return nil
}

// Split derives k independent sub-streams. Child i consumes the counter
// positions base+(2i+1)·gamma and base+(2i+2)·gamma for its seed and gamma;
// the parent cursor then advances past all 2k positions, so no counter value
// is ever used by more than one stream.
func (s *SplitMix) Split(k int) ([]Stream, error) {
	if k < 1 {
		return nil, ErrBadSplit
	}
	base := s.seed
	out := make([]Stream, k)
	for i := 0; i < k; i++ {
		childSeed := mix64(base + (2*uint64(i)+1)*s.gamma)
		childGamma := mixGamma(base + (2*uint64(i)+2)*s.gamma)
		out[i] = &SplitMix{seed: childSeed, gamma: childGamma, dim: s.dim}
	}
	s.seed = base + 2*uint64(k)*s.gamma
	return out, nil
}

// Dim reports the point dimension.
func (s *SplitMix) Dim() int { return s.dim }

// Clone returns an independent copy at the current cursor position.
func (s *SplitMix) Clone() Stream {
	cp := *s
	return &cp
}

// Source exposes the stream as a golang.org/x/exp/rand.Source, so gonum
// samplers (distuv, distmv) can draw from it directly. The returned Source
// shares the stream's cursor: draws through either advance both.
func (s *SplitMix) Source() rand.Source {
	return (*splitMixSource)(s)
}

// splitMixSource adapts SplitMix to rand.Source.
type splitMixSource SplitMix

func (src *splitMixSource) Uint64() uint64 {
	return (*SplitMix)(src).nextUint64()
}

func (src *splitMixSource) Seed(seed uint64) {
	src.seed = mix64(seed)
}

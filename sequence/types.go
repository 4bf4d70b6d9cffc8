// SPDX-License-Identifier: MIT

package sequence

// Stream is an exclusively-owned cursor over a deterministic sequence of
// points in [0,1)^d. Implementations must be reproducible: identical
// seed/dimension/skip state yields identical output regardless of how the
// draws are grouped into Next calls.
//
// A Stream is NOT safe for concurrent use. To parallelize, call Split and
// hand each sub-stream to exactly one goroutine.
type Stream interface {
	// Next returns count points, each of dimension Dim(), advancing the
	// cursor by count points. count == 0 yields an empty (non-nil) slice.
	Next(count int) ([][]float64, error)

	// Skip advances the cursor by n points without producing them.
	Skip(n uint64) error

	// Split derives k independent sub-streams from the current state.
	// Derivation is deterministic given the state and the split index.
	// The parent cursor advances so that parent and children never
	// reuse the same underlying counter positions.
	Split(k int) ([]Stream, error)

	// Dim reports the point dimension, fixed at construction.
	Dim() int

	// Clone returns an independent copy of the stream at its current
	// cursor position. Clones replay the identical remaining sequence.
	Clone() Stream
}

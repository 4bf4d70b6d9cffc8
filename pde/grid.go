// SPDX-License-Identifier: MIT

package pde

import "fmt"

// Grid is a tensor product of strictly increasing coordinate axes, one
// per state dimension. Axes may be non-uniform. Node values are stored
// flat in row-major order: the LAST axis varies fastest.
type Grid struct {
	axes    [][]float64
	strides []int
	nodes   int
}

// NewGrid validates and copies the axes. Every axis needs at least three
// points so that each line has an interior.
func NewGrid(axes ...[]float64) (*Grid, error) {
	if len(axes) == 0 {
		return nil, ErrBadGrid
	}
	g := &Grid{
		axes:    make([][]float64, len(axes)),
		strides: make([]int, len(axes)),
		nodes:   1,
	}
	for k, ax := range axes {
		if len(ax) < 3 {
			return nil, fmt.Errorf("axis %d has %d points: %w", k, len(ax), ErrBadGrid)
		}
		for i := 1; i < len(ax); i++ {
			if ax[i] <= ax[i-1] {
				return nil, fmt.Errorf("axis %d not strictly increasing at %d: %w", k, i, ErrBadGrid)
			}
		}
		g.axes[k] = append([]float64(nil), ax...)
		g.nodes *= len(ax)
	}
	stride := 1
	for k := len(axes) - 1; k >= 0; k-- {
		g.strides[k] = stride
		stride *= len(axes[k])
	}
	return g, nil
}

// Dim reports the number of axes.
func (g *Grid) Dim() int { return len(g.axes) }

// Nodes reports the total node count (product of axis lengths).
func (g *Grid) Nodes() int { return g.nodes }

// Axis returns a read-only view of axis k's coordinates.
func (g *Grid) Axis(k int) []float64 { return g.axes[k] }

// Len reports the point count of axis k.
func (g *Grid) Len(k int) int { return len(g.axes[k]) }

// Coord writes the spatial coordinate of flat node n into x.
func (g *Grid) Coord(n int, x []float64) {
	for k := range g.axes {
		x[k] = g.axes[k][(n/g.strides[k])%len(g.axes[k])]
	}
}

// index folds a multi-index into the flat node number.
func (g *Grid) index(mi []int) int {
	n := 0
	for k, i := range mi {
		n += i * g.strides[k]
	}
	return n
}

// SPDX-License-Identifier: MIT

package noise

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Correlator imposes a fixed correlation structure on iid standard
// normals by multiplying with the lower Cholesky factor L of the
// correlation matrix. Immutable after construction; safe for concurrent
// reads across simulations.
type Correlator struct {
	dim int
	l   *mat.TriDense
}

// NewCorrelator validates corr (unit diagonal, entries in [-1,1],
// symmetric by type) and factorizes it. A matrix that admits no Cholesky
// factorization yields ErrNonPositiveDefinite.
func NewCorrelator(corr *mat.SymDense) (*Correlator, error) {
	n := corr.SymmetricDim()
	for i := 0; i < n; i++ {
		if math.Abs(corr.At(i, i)-1) > 1e-12 {
			return nil, ErrBadCorrelation
		}
		for j := 0; j < i; j++ {
			if v := corr.At(i, j); v < -1 || v > 1 {
				return nil, ErrBadCorrelation
			}
		}
	}

	var chol mat.Cholesky
	if ok := chol.Factorize(corr); !ok {
		return nil, ErrNonPositiveDefinite
	}
	l := mat.NewTriDense(n, mat.Lower, nil)
	chol.LTo(l)
	return &Correlator{dim: n, l: l}, nil
}

// Dim reports the correlation dimension.
func (c *Correlator) Dim() int { return c.dim }

// Apply correlates each row in place: z_i ← L·z_i.
func (c *Correlator) Apply(z [][]float64) error {
	buf := make([]float64, c.dim)
	for _, row := range z {
		if len(row) != c.dim {
			return ErrDimensionMismatch
		}
		for i := 0; i < c.dim; i++ {
			var acc float64
			for j := 0; j <= i; j++ {
				acc += c.l.At(i, j) * row[j]
			}
			buf[i] = acc
		}
		copy(row, buf)
	}
	return nil
}

// L returns a copy of the lower Cholesky factor.
func (c *Correlator) L() *mat.TriDense {
	out := mat.NewTriDense(c.dim, mat.Lower, nil)
	out.Copy(c.l)
	return out
}
